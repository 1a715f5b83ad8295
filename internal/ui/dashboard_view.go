package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/coursedeck/coursedeck/internal/model"
)

// DashboardView lists the user's purchased courses with client-side search.
type DashboardView struct {
	root         *fyne.Container
	localization *Localization

	searchEntry *widget.Entry
	courseList  *fyne.Container
	placeholder *widget.Label
	spinner     *widget.ProgressBarInfinite
	active      bool

	// Callbacks
	onSearch     func(term string)
	onOpenCourse func(course model.Course)
}

// NewDashboardView creates the dashboard view
func NewDashboardView(localization *Localization) *DashboardView {
	dv := &DashboardView{localization: localization}
	dv.createUI()
	return dv
}

// SetCallbacks sets the dashboard action callbacks
func (dv *DashboardView) SetCallbacks(
	onSearch func(term string),
	onOpenCourse func(course model.Course),
) {
	dv.onSearch = onSearch
	dv.onOpenCourse = onOpenCourse
}

// Container returns the view's root canvas object
func (dv *DashboardView) Container() fyne.CanvasObject {
	return dv.root
}

// SetActive marks the view as the currently presented one
func (dv *DashboardView) SetActive(active bool) {
	dv.active = active
	if active {
		dv.root.Refresh()
	}
}

// SetBusy toggles the course loading indicator
func (dv *DashboardView) SetBusy(busy bool) {
	if busy {
		dv.spinner.Show()
	} else {
		dv.spinner.Hide()
	}
}

// ClearSearch resets the search entry without firing the search callback
func (dv *DashboardView) ClearSearch() {
	dv.searchEntry.OnChanged = nil
	dv.searchEntry.SetText("")
	dv.searchEntry.OnChanged = dv.handleSearch
}

// SetCourses replaces the rendered course list. An empty slice shows the
// placeholder text instead.
func (dv *DashboardView) SetCourses(courses []model.Course) {
	dv.courseList.RemoveAll()

	if len(courses) == 0 {
		dv.placeholder.Show()
		dv.courseList.Refresh()
		return
	}
	dv.placeholder.Hide()

	for _, course := range courses {
		dv.courseList.Add(dv.makeCourseCard(course))
	}
	dv.courseList.Refresh()
}

func (dv *DashboardView) makeCourseCard(course model.Course) fyne.CanvasObject {
	title := widget.NewLabel(course.Title)
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Wrapping = fyne.TextWrapWord

	meta := widget.NewLabel(fmt.Sprintf("%s: %d", dv.localization.GetText(KeyCourseIDPrefix), course.ID))
	meta.Importance = widget.LowImportance

	card := container.NewVBox(title, meta, widget.NewSeparator())

	tapped := course
	button := widget.NewButton("", func() {
		if dv.onOpenCourse != nil {
			dv.onOpenCourse(tapped)
		}
	})
	button.Importance = widget.LowImportance

	return container.NewStack(button, card)
}

func (dv *DashboardView) createUI() {
	dv.searchEntry = widget.NewEntry()
	dv.searchEntry.SetPlaceHolder(dv.localization.GetText(KeySearchCourses))
	dv.searchEntry.OnChanged = dv.handleSearch

	dv.spinner = widget.NewProgressBarInfinite()
	dv.spinner.Hide()

	dv.placeholder = widget.NewLabel(dv.localization.GetText(KeyNoCourses))
	dv.placeholder.Alignment = fyne.TextAlignCenter
	dv.placeholder.Importance = widget.LowImportance
	dv.placeholder.Hide()

	dv.courseList = container.NewVBox()

	header := container.NewVBox(dv.searchEntry, dv.spinner)
	body := container.NewScroll(container.NewVBox(dv.placeholder, dv.courseList))

	dv.root = container.NewBorder(header, nil, nil, nil, body)
}

func (dv *DashboardView) handleSearch(term string) {
	if dv.onSearch != nil {
		dv.onSearch(term)
	}
}
