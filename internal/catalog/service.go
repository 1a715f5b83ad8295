package catalog

import (
	"strings"
	"sync"

	"github.com/coursedeck/coursedeck/internal/api"
	"github.com/coursedeck/coursedeck/internal/model"
)

// Service fetches and caches the course catalog for the current session.
// The cached set is only ever replaced wholesale by a fresh Load.
type Service struct {
	api *api.Client

	mu      sync.RWMutex
	courses []model.Course
}

// NewService creates a catalog service over the given API client.
func NewService(client *api.Client) *Service {
	return &Service{api: client}
}

// Load fetches the course list and replaces the cached set. The only
// anticipated failure mode is token rejection, so callers treat any error
// as a session-ending event.
func (s *Service) Load() ([]model.Course, error) {
	courses, err := s.api.Courses()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.courses = courses
	s.mu.Unlock()

	return courses, nil
}

// Courses returns the cached course set from the last successful Load.
func (s *Service) Courses() []model.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Course(nil), s.courses...)
}

// Filter returns the courses whose title contains term, case-insensitively,
// preserving order. Pure and synchronous; callers must always filter the
// full cached set, never an already-filtered subset.
func Filter(courses []model.Course, term string) []model.Course {
	needle := strings.ToLower(term)
	filtered := make([]model.Course, 0, len(courses))
	for _, course := range courses {
		if strings.Contains(strings.ToLower(course.Title), needle) {
			filtered = append(filtered, course)
		}
	}
	return filtered
}
