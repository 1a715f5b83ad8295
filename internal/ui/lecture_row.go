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

// qualitySelect is a Select whose first tap triggers lazy quality discovery.
// The options list is populated asynchronously once the discovery finishes.
type qualitySelect struct {
	widget.Select
	onFirstTap func()
}

func newQualitySelect(placeholder string, onFirstTap func()) *qualitySelect {
	qs := &qualitySelect{onFirstTap: onFirstTap}
	qs.PlaceHolder = placeholder
	qs.ExtendBaseWidget(qs)
	return qs
}

// Tapped fires the discovery trigger before opening the dropdown.
func (qs *qualitySelect) Tapped(event *fyne.PointEvent) {
	if qs.onFirstTap != nil {
		qs.onFirstTap()
	}
	qs.Select.Tapped(event)
}

// LectureRow is a custom widget representing one curriculum item: its icon,
// index and title, plus the download controls for video lectures and their
// attachments.
type LectureRow struct {
	widget.BaseWidget

	localization *Localization
	item         model.Item

	primary     *resolve.Control
	indexLabel  *widget.Label
	quality     *qualitySelect
	downloadBtn *widget.Button
	lockedBadge *widget.Label
	attachBtns  map[string]*widget.Button // control ID -> button
	attachCtrls []*resolve.Control        // in display order

	qualityByLabel map[string]string // rendered option -> raw backend value

	onResolve       func(controlID, quality string)
	onLoadQualities func(controlID string)

	content *fyne.Container
}

// NewLectureRow creates a row for a curriculum item. primary is the control
// for the lecture video (nil for non-video items); attachments carries one
// control per supplementary asset, in display order.
func NewLectureRow(
	localization *Localization,
	item model.Item,
	primary *resolve.Control,
	attachments []*resolve.Control,
	onResolve func(controlID, quality string),
	onLoadQualities func(controlID string),
) *LectureRow {
	row := &LectureRow{
		localization:    localization,
		item:            item,
		primary:         primary,
		attachBtns:      make(map[string]*widget.Button),
		attachCtrls:     attachments,
		onResolve:       onResolve,
		onLoadQualities: onLoadQualities,
	}

	row.ExtendBaseWidget(row)
	row.createContent()
	return row
}

// ControlIDs returns the IDs of all controls rendered by this row.
func (row *LectureRow) ControlIDs() []string {
	ids := make([]string, 0, len(row.attachCtrls)+1)
	if row.primary != nil {
		ids = append(ids, row.primary.ID)
	}
	for _, control := range row.attachCtrls {
		ids = append(ids, control.ID)
	}
	return ids
}

func (row *LectureRow) createContent() {
	indexText := "*."
	if row.item.Index > 0 {
		indexText = fmt.Sprintf("%d.", row.item.Index)
	}
	row.indexLabel = widget.NewLabel(indexText)
	indexCell := container.NewGridWrap(fyne.NewSize(CurriculumIndexWidth, row.indexLabel.MinSize().Height), row.indexLabel)

	title := widget.NewLabel(fmt.Sprintf("%s %s", row.item.Icon(), row.item.Title))
	title.Wrapping = fyne.TextWrapWord

	actions := container.NewHBox()

	if row.primary != nil {
		row.quality = newQualitySelect(row.localization.GetText(KeyDefaultQuality), func() {
			if row.onLoadQualities != nil {
				row.onLoadQualities(row.primary.ID)
			}
		})

		row.downloadBtn = widget.NewButton(row.idleLabel(row.primary), func() {
			if row.onResolve != nil {
				row.onResolve(row.primary.ID, row.selectedQuality())
			}
		})

		row.lockedBadge = widget.NewLabel(fmt.Sprintf("%s %s", IconLocked, row.localization.GetText(KeyDRMLocked)))
		row.lockedBadge.Importance = widget.WarningImportance
		row.lockedBadge.Hide()

		actions.Add(row.quality)
		actions.Add(row.downloadBtn)
		actions.Add(row.lockedBadge)
	}

	for _, control := range row.attachCtrls {
		ctrl := control
		button := widget.NewButton(row.idleLabel(ctrl), func() {
			if row.onResolve != nil {
				row.onResolve(ctrl.ID, "")
			}
		})
		row.attachBtns[ctrl.ID] = button
		actions.Add(button)
	}

	row.content = container.NewBorder(nil, nil, indexCell, actions, title)
}

// CreateRenderer creates the widget renderer
func (row *LectureRow) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(row.content)
}

// ApplyControl updates the row's widgets to reflect a control state change.
// Controls not belonging to this row are ignored.
func (row *LectureRow) ApplyControl(control *resolve.Control) {
	if row.primary != nil && control.ID == row.primary.ID {
		row.applyQualityState(control)
		row.applyResolveState(control, row.downloadBtn)
		return
	}
	if button, exists := row.attachBtns[control.ID]; exists {
		row.applyResolveState(control, button)
	}
}

func (row *LectureRow) applyQualityState(control *resolve.Control) {
	switch control.QualityState {
	case model.QualityStateLoading:
		row.quality.PlaceHolder = row.localization.GetText(KeyLoadingQualities)
		row.quality.Refresh()
	case model.QualityStateLoaded:
		row.qualityByLabel = make(map[string]string, len(control.Qualities))
		options := []string{row.localization.GetText(KeyDefaultQuality)}
		for _, quality := range control.Qualities {
			label := qualityLabel(quality)
			row.qualityByLabel[label] = quality
			options = append(options, label)
		}
		row.quality.PlaceHolder = row.localization.GetText(KeyDefaultQuality)
		row.quality.SetOptions(options)
	case model.QualityStateLoadedEmpty:
		row.quality.PlaceHolder = row.localization.GetText(KeyDefaultQuality)
		row.quality.SetOptions([]string{row.localization.GetText(KeyDefaultQuality)})
	case model.QualityStateLockedForDRM:
		drm := row.localization.GetText(KeyDRMProtected)
		row.quality.PlaceHolder = drm
		row.quality.SetOptions([]string{drm})
		row.quality.Disable()
	default:
		row.quality.PlaceHolder = row.localization.GetText(KeyDefaultQuality)
		row.quality.Refresh()
	}
}

func (row *LectureRow) applyResolveState(control *resolve.Control, button *widget.Button) {
	switch control.State {
	case model.ResolveStateIdle:
		button.SetText(row.idleLabel(control))
		button.Enable()
	case model.ResolveStateResolving:
		button.SetText(fmt.Sprintf("%s %s", IconResolving, row.localization.GetText(KeyResolving)))
		button.Disable()
	case model.ResolveStateSucceeded:
		button.SetText(fmt.Sprintf("✅ %s", row.localization.GetText(KeyStarting)))
		button.Disable()
	case model.ResolveStateFailed:
		button.SetText(fmt.Sprintf("%s %s", IconFailed, row.localization.GetText(KeyFailed)))
		button.Disable()
	case model.ResolveStateLocked:
		if control.IsAttachment() {
			button.SetText(fmt.Sprintf("%s %s", IconLocked, row.localization.GetText(KeyDRMLocked)))
			button.Disable()
			return
		}
		row.showLocked()
	}
}

// showLocked swaps the quality select and download button for a static badge.
// There is no way back: locked content stays locked for the session.
func (row *LectureRow) showLocked() {
	row.quality.Hide()
	row.downloadBtn.Hide()
	row.lockedBadge.Show()
}

func (row *LectureRow) idleLabel(control *resolve.Control) string {
	if control.IsAttachment() {
		return fmt.Sprintf("%s %s", IconAttach, control.Label)
	}
	return fmt.Sprintf("%s %s", IconDownload, row.localization.GetText(KeyVideo))
}

// selectedQuality maps the select's value to the request parameter: the
// default option and an untouched select both mean "let the backend choose".
func (row *LectureRow) selectedQuality() string {
	if row.quality == nil {
		return ""
	}
	selected := row.quality.Selected
	if selected == "" || selected == row.localization.GetText(KeyDefaultQuality) {
		return ""
	}
	if raw, exists := row.qualityByLabel[selected]; exists {
		return raw
	}
	return selected
}

// qualityLabel renders a raw quality value as a resolution ("1080" -> "1080p").
func qualityLabel(quality string) string {
	if _, err := strconv.Atoi(quality); err == nil {
		return quality + "p"
	}
	return quality
}
