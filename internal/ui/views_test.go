package ui

import (
	"strings"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"

	"github.com/coursedeck/coursedeck/internal/model"
	"github.com/coursedeck/coursedeck/internal/resolve"
)

func TestDashboardViewPlaceholder(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	view := NewDashboardView(NewLocalization())

	view.SetCourses(nil)
	if !view.placeholder.Visible() {
		t.Error("expected placeholder for empty course list")
	}

	view.SetCourses([]model.Course{{ID: 1, Title: "Intro to Go"}})
	if view.placeholder.Visible() {
		t.Error("expected placeholder hidden once courses exist")
	}
	if len(view.courseList.Objects) != 1 {
		t.Errorf("expected 1 course card, got %d", len(view.courseList.Objects))
	}

	// A narrowed result set replaces the cards wholesale.
	view.SetCourses([]model.Course{})
	if !view.placeholder.Visible() {
		t.Error("expected placeholder after filtering away all courses")
	}
	if len(view.courseList.Objects) != 0 {
		t.Errorf("expected no course cards, got %d", len(view.courseList.Objects))
	}
}

func TestDashboardViewSearchCallback(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	view := NewDashboardView(NewLocalization())

	var got string
	view.SetCallbacks(func(term string) { got = term }, nil)

	view.searchEntry.SetText("go")
	if got != "go" {
		t.Errorf("expected search callback with %q, got %q", "go", got)
	}

	view.ClearSearch()
	if got != "go" {
		t.Error("expected ClearSearch not to fire the search callback")
	}
	if view.searchEntry.Text != "" {
		t.Errorf("expected cleared search entry, got %q", view.searchEntry.Text)
	}
}

func TestCourseDetailChapterHeaders(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	view := NewCourseDetailView(NewLocalization())
	service := resolve.NewService(nil, func(string) error { return nil })

	groups := []model.ChapterGroup{
		{Items: []model.Item{{ID: 1, Title: "Orphan", DisplayType: model.DisplayTypeArticle}}},
		{Index: 1, Title: "Basics", Items: []model.Item{{ID: 2, Title: "Welcome", DisplayType: model.DisplayTypeVideo}}},
	}

	view.SetCurriculum(7, groups, service)

	// Header, row, header, row.
	if len(view.chapterBox.Objects) != 4 {
		t.Fatalf("expected 4 curriculum objects, got %d", len(view.chapterBox.Objects))
	}

	// One video lecture registered exactly one control.
	if len(view.rows) != 1 {
		t.Errorf("expected 1 control routed to rows, got %d", len(view.rows))
	}
	for id := range view.rows {
		if _, exists := service.Control(id); !exists {
			t.Errorf("row references unregistered control %q", id)
		}
	}
}

func TestCourseDetailChapterHeaderIndexFallback(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	view := NewCourseDetailView(NewLocalization())

	tests := []struct {
		name  string
		group model.ChapterGroup
		want  string
	}{
		{"known index", model.ChapterGroup{Index: 2, Title: "Basics"}, "Chapter 2: Basics"},
		{"unknown index", model.ChapterGroup{Index: 0, Title: "Basics"}, "Chapter *: Basics"},
		{"implicit leading group", model.ChapterGroup{}, "*"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := view.makeChapterHeader(tt.group).(*fyne.Container)
			label := header.Objects[1].(*widget.Label)
			if label.Text != tt.want {
				t.Errorf("expected header %q, got %q", tt.want, label.Text)
			}
		})
	}
}

func TestCourseDetailShowErrorClearsRows(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	view := NewCourseDetailView(NewLocalization())
	service := resolve.NewService(nil, func(string) error { return nil })

	groups := []model.ChapterGroup{
		{Index: 1, Title: "Basics", Items: []model.Item{{ID: 2, Title: "Welcome", DisplayType: model.DisplayTypeVideo}}},
	}
	view.SetCurriculum(7, groups, service)
	view.ShowError("API Error")

	if len(view.rows) != 0 {
		t.Errorf("expected no rows after error, got %d", len(view.rows))
	}
	if !view.errorLabel.Visible() || view.errorLabel.Text != "API Error" {
		t.Errorf("expected visible error label, got visible=%v text=%q", view.errorLabel.Visible(), view.errorLabel.Text)
	}
}

func TestLoginViewSubmitDispatch(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	view := NewLoginView(NewLocalization())

	var gotToken, gotEmail, gotPassword string
	view.SetCallbacks(
		func(token string) { gotToken = token },
		func(email, password string) { gotEmail, gotPassword = email, password },
		nil,
	)

	view.tokenEntry.SetText("  tok-123  ")
	view.submit()
	if gotToken != "tok-123" {
		t.Errorf("expected trimmed token callback, got %q", gotToken)
	}

	view.tabs.SelectIndex(1)
	view.emailEntry.SetText("user@example.com")
	view.passwordEntry.SetText("hunter2")
	view.submit()
	if gotEmail != "user@example.com" || gotPassword != "hunter2" {
		t.Errorf("expected credential callback, got %q/%q", gotEmail, gotPassword)
	}
}

func TestLoginViewEmptySubmitIgnored(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	view := NewLoginView(NewLocalization())

	called := false
	view.SetCallbacks(func(string) { called = true }, func(string, string) { called = true }, nil)

	view.submit()
	if called {
		t.Error("expected empty submit to be ignored")
	}
}

func TestLoginViewErrorLifecycle(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	view := NewLoginView(NewLocalization())

	view.ShowError("Invalid token")
	if !view.errorLabel.Visible() {
		t.Fatal("expected visible error label")
	}
	if !strings.Contains(view.errorLabel.Text, "Invalid token") {
		t.Errorf("unexpected error text %q", view.errorLabel.Text)
	}

	view.ClearInputs()
	if view.errorLabel.Visible() {
		t.Error("expected error cleared with inputs")
	}
}
