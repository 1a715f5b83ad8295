package ui

import (
	"sort"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/coursedeck/coursedeck/internal/config"
)

// ShowSettingsDialog presents the backend URL and language settings. onSave
// receives the new backend URL after it has been persisted.
func ShowSettingsDialog(
	window fyne.Window,
	settings *config.Settings,
	localization *Localization,
	onSave func(backendURL string),
) {
	urlEntry := widget.NewEntry()
	urlEntry.SetText(settings.GetBackendURL())

	languages := localization.GetAvailableLanguages()
	codes := make([]string, 0, len(languages))
	for code := range languages {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	names := make([]string, 0, len(codes))
	for _, code := range codes {
		names = append(names, languages[code])
	}

	langSelect := widget.NewSelect(names, nil)
	if name, exists := languages[settings.GetLanguage()]; exists {
		langSelect.SetSelected(name)
	}

	items := []*widget.FormItem{
		widget.NewFormItem(localization.GetText(KeyBackendURL), urlEntry),
		widget.NewFormItem(localization.GetText(KeyLanguage), langSelect),
	}

	form := dialog.NewForm(
		localization.GetText(KeySettings),
		localization.GetText(KeySave),
		localization.GetText(KeyCancel),
		items,
		func(confirmed bool) {
			if !confirmed {
				return
			}

			backendURL := strings.TrimRight(strings.TrimSpace(urlEntry.Text), "/")
			settings.SetBackendURL(backendURL)

			previousLanguage := settings.GetLanguage()
			for code, name := range languages {
				if name == langSelect.Selected {
					settings.SetLanguage(code)
					localization.SetLanguage(code)
					break
				}
			}

			if onSave != nil {
				onSave(settings.GetBackendURL())
			}

			// Widgets built before the switch keep their old texts.
			if settings.GetLanguage() != previousLanguage {
				dialog.ShowInformation(
					localization.GetText(KeySettingsSaved),
					localization.GetText(KeyRestartForLanguage),
					window,
				)
			}
		},
		window,
	)
	form.Resize(fyne.NewSize(420, form.MinSize().Height))
	form.Show()
}

// ShowHelpDialog explains how to obtain an access token.
func ShowHelpDialog(window fyne.Window, localization *Localization) {
	body := widget.NewLabel(localization.GetText(KeyHelpBody))
	body.Wrapping = fyne.TextWrapWord

	help := dialog.NewCustom(localization.GetText(KeyHelpTitle), "OK", body, window)
	help.Resize(fyne.NewSize(420, 220))
	help.Show()
}
