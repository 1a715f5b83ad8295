package ui

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/coursedeck/coursedeck/internal/model"
	"github.com/coursedeck/coursedeck/internal/resolve"
)

// CourseDetailView renders one course's curriculum as chapter sections with
// lecture rows. Rows are rebuilt from scratch on every SetCurriculum call.
type CourseDetailView struct {
	root         *fyne.Container
	localization *Localization

	titleLabel   *widget.Label
	chapterBox   *fyne.Container
	spinner      *widget.ProgressBarInfinite
	loadingLabel *widget.Label
	errorLabel   *widget.Label
	rows         map[string]*LectureRow // control ID -> owning row
	active       bool

	// Callbacks
	onBack          func()
	onResolve       func(controlID, quality string)
	onLoadQualities func(controlID string)
}

// NewCourseDetailView creates the course detail view
func NewCourseDetailView(localization *Localization) *CourseDetailView {
	cv := &CourseDetailView{
		localization: localization,
		rows:         make(map[string]*LectureRow),
	}
	cv.createUI()
	return cv
}

// SetCallbacks sets the detail view action callbacks
func (cv *CourseDetailView) SetCallbacks(
	onBack func(),
	onResolve func(controlID, quality string),
	onLoadQualities func(controlID string),
) {
	cv.onBack = onBack
	cv.onResolve = onResolve
	cv.onLoadQualities = onLoadQualities
}

// Container returns the view's root canvas object
func (cv *CourseDetailView) Container() fyne.CanvasObject {
	return cv.root
}

// SetActive marks the view as the currently presented one
func (cv *CourseDetailView) SetActive(active bool) {
	cv.active = active
	if active {
		cv.root.Refresh()
	}
}

// ShowLoading clears the previous curriculum and shows the fetch indicator
func (cv *CourseDetailView) ShowLoading(courseTitle string) {
	cv.titleLabel.SetText(courseTitle)
	cv.errorLabel.Hide()
	cv.chapterBox.RemoveAll()
	cv.rows = make(map[string]*LectureRow)
	cv.spinner.Show()
	cv.loadingLabel.Show()
}

// ShowError replaces the curriculum area with an error message
func (cv *CourseDetailView) ShowError(message string) {
	cv.spinner.Hide()
	cv.loadingLabel.Hide()
	cv.chapterBox.RemoveAll()
	cv.rows = make(map[string]*LectureRow)
	cv.errorLabel.SetText(message)
	cv.errorLabel.Show()
}

// SetCurriculum renders the normalized chapter groups. register is called for
// every video lecture and attachment to obtain its resolution control.
func (cv *CourseDetailView) SetCurriculum(
	courseID int64,
	groups []model.ChapterGroup,
	resolver resolve.Resolver,
) {
	cv.spinner.Hide()
	cv.loadingLabel.Hide()
	cv.errorLabel.Hide()
	cv.chapterBox.RemoveAll()
	cv.rows = make(map[string]*LectureRow)

	for _, group := range groups {
		cv.chapterBox.Add(cv.makeChapterHeader(group))
		for _, item := range group.Items {
			row := cv.makeRow(courseID, item, resolver)
			for _, id := range row.ControlIDs() {
				cv.rows[id] = row
			}
			cv.chapterBox.Add(row)
		}
	}
	cv.chapterBox.Refresh()
}

// ApplyControl routes a control update to the row that owns it
func (cv *CourseDetailView) ApplyControl(control *resolve.Control) {
	if row, exists := cv.rows[control.ID]; exists {
		row.ApplyControl(control)
	}
}

// makeChapterHeader renders "Chapter N: Title", with * standing in for an
// unknown index. Items arriving before the first chapter record get an
// untitled asterisk header instead.
func (cv *CourseDetailView) makeChapterHeader(group model.ChapterGroup) fyne.CanvasObject {
	text := "*"
	if group.Title != "" {
		index := "*"
		if group.Index > 0 {
			index = strconv.Itoa(group.Index)
		}
		text = fmt.Sprintf("%s %s: %s", cv.localization.GetText(KeyChapter), index, group.Title)
	}

	header := widget.NewLabel(text)
	header.TextStyle = fyne.TextStyle{Bold: true}
	return container.NewVBox(widget.NewSeparator(), header)
}

func (cv *CourseDetailView) makeRow(courseID int64, item model.Item, resolver resolve.Resolver) *LectureRow {
	var primary *resolve.Control
	if item.IsVideo() {
		primary = resolver.RegisterLecture(courseID, item.ID, item.Title)
	}

	attachments := make([]*resolve.Control, 0, len(item.Attachments))
	for _, attachment := range item.Attachments {
		attachments = append(attachments, resolver.RegisterAttachment(courseID, item.ID, attachment.ID, attachment.DisplayName()))
	}

	return NewLectureRow(cv.localization, item, primary, attachments, cv.onResolve, cv.onLoadQualities)
}

func (cv *CourseDetailView) createUI() {
	backBtn := widget.NewButton(fmt.Sprintf("%s %s", IconBack, cv.localization.GetText(KeyBack)), func() {
		if cv.onBack != nil {
			cv.onBack()
		}
	})

	cv.titleLabel = widget.NewLabel("")
	cv.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	cv.titleLabel.Wrapping = fyne.TextWrapWord

	cv.spinner = widget.NewProgressBarInfinite()
	cv.spinner.Hide()

	cv.loadingLabel = widget.NewLabel(cv.localization.GetText(KeyLoadingCurriculum))
	cv.loadingLabel.Alignment = fyne.TextAlignCenter
	cv.loadingLabel.Importance = widget.LowImportance
	cv.loadingLabel.Hide()

	cv.errorLabel = widget.NewLabel("")
	cv.errorLabel.Importance = widget.DangerImportance
	cv.errorLabel.Wrapping = fyne.TextWrapWord
	cv.errorLabel.Hide()

	cv.chapterBox = container.NewVBox()

	header := container.NewBorder(nil, nil, backBtn, nil, cv.titleLabel)
	body := container.NewScroll(container.NewVBox(cv.spinner, cv.loadingLabel, cv.errorLabel, cv.chapterBox))

	cv.root = container.NewBorder(header, nil, nil, nil, body)
}
