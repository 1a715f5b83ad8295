package catalog

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/coursedeck/coursedeck/internal/api"
	"github.com/coursedeck/coursedeck/internal/model"
	"github.com/coursedeck/coursedeck/internal/session"
)

func TestFilter(t *testing.T) {
	courses := []model.Course{
		{ID: 1, Title: "Intro to X"},
		{ID: 2, Title: "Advanced Y"},
	}

	tests := []struct {
		name     string
		term     string
		expected []int64
	}{
		{"case-insensitive match", "intro", []int64{1}},
		{"empty term keeps all", "", []int64{1, 2}},
		{"no match", "zzz", nil},
		{"substring in the middle", "VANCED", []int64{2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Filter(courses, tt.term)
			if len(result) != len(tt.expected) {
				t.Fatalf("Filter(%q) returned %d courses, expected %d", tt.term, len(result), len(tt.expected))
			}
			for i, id := range tt.expected {
				if result[i].ID != id {
					t.Errorf("Filter(%q)[%d].ID = %d, expected %d", tt.term, i, result[i].ID, id)
				}
			}
		})
	}
}

func TestFilter_PreservesOrder(t *testing.T) {
	courses := []model.Course{
		{ID: 3, Title: "Go basics"},
		{ID: 1, Title: "More Go"},
		{ID: 2, Title: "Go advanced"},
	}

	result := Filter(courses, "go")
	if len(result) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(result))
	}
	for i, id := range []int64{3, 1, 2} {
		if result[i].ID != id {
			t.Errorf("result[%d].ID = %d, expected %d (original order must be preserved)", i, result[i].ID, id)
		}
	}
}

func TestService_LoadReplacesCache(t *testing.T) {
	payloads := []string{
		`{"courses":[{"id":1,"title":"First"}]}`,
		`{"courses":[{"id":2,"title":"Second"},{"id":3,"title":"Third"}]}`,
	}
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(payloads[calls]))
		calls++
	}))
	defer server.Close()

	store := session.NewStore(test.NewApp())
	service := NewService(api.NewClient(server.URL, store))

	first, err := service.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(first) != 1 || first[0].ID != 1 {
		t.Fatalf("unexpected first load: %+v", first)
	}

	second, err := service.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(second) != 2 {
		t.Fatalf("unexpected second load: %+v", second)
	}

	cached := service.Courses()
	if len(cached) != 2 || cached[0].ID != 2 {
		t.Errorf("cache should hold the replacement set, got %+v", cached)
	}
}

func TestService_LoadErrorLeavesNoCourses(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"Missing Authorization Header"}`))
	}))
	defer server.Close()

	store := session.NewStore(test.NewApp())
	service := NewService(api.NewClient(server.URL, store))

	if _, err := service.Load(); err == nil {
		t.Fatal("expected error from rejected load")
	}
	if got := service.Courses(); len(got) != 0 {
		t.Errorf("cache should stay empty after a failed load, got %+v", got)
	}
}
