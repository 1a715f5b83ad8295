package ui

import (
	"sync"
	"time"

	"fyne.io/fyne/v2"
)

// View names registered with the router.
const (
	ViewLogin     = "login"
	ViewDashboard = "dashboard"
	ViewDetail    = "detail"
)

// View is a top-level surface the router can switch to. SetActive is applied
// a short delay after the view becomes visible so a transition effect has an
// observable staging point.
type View interface {
	Container() fyne.CanvasObject
	SetActive(active bool)
}

// ViewRouter switches between registered top-level views. It is purely
// presentational: it holds no business state and issues no network calls.
type ViewRouter struct {
	mu      sync.Mutex
	views   map[string]View
	current string
}

// NewViewRouter creates an empty view router
func NewViewRouter() *ViewRouter {
	return &ViewRouter{views: make(map[string]View)}
}

// Register adds a view under the given name
func (r *ViewRouter) Register(name string, view View) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.views[name] = view
}

// Current returns the name of the currently shown view
func (r *ViewRouter) Current() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Show hides all registered views, makes the requested one visible, and
// applies the active flag after a short fixed delay. Showing an unknown
// name hides everything and is otherwise a no-op.
func (r *ViewRouter) Show(name string) {
	r.mu.Lock()
	target, exists := r.views[name]
	for viewName, view := range r.views {
		if viewName != name {
			view.SetActive(false)
			view.Container().Hide()
		}
	}
	if exists {
		r.current = name
	}
	r.mu.Unlock()

	if !exists {
		return
	}

	target.Container().Show()
	time.AfterFunc(ViewTransitionDelay, func() {
		fyne.Do(func() {
			target.SetActive(true)
		})
	})
}
