package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// LoginView is the login overlay with two alternative credential paths:
// a raw access token, or an email/password pair.
type LoginView struct {
	root         *fyne.Container
	localization *Localization

	tabs          *container.AppTabs
	tokenEntry    *widget.Entry
	emailEntry    *widget.Entry
	passwordEntry *widget.Entry
	loginBtn      *widget.Button
	spinner       *widget.ProgressBarInfinite
	errorLabel    *widget.Label
	active        bool

	// Callbacks
	onTokenLogin      func(token string)
	onCredentialLogin func(email, password string)
	onShowHelp        func()
}

// NewLoginView creates the login view
func NewLoginView(localization *Localization) *LoginView {
	lv := &LoginView{localization: localization}
	lv.createUI()
	return lv
}

// SetCallbacks sets the login action callbacks
func (lv *LoginView) SetCallbacks(
	onTokenLogin func(token string),
	onCredentialLogin func(email, password string),
	onShowHelp func(),
) {
	lv.onTokenLogin = onTokenLogin
	lv.onCredentialLogin = onCredentialLogin
	lv.onShowHelp = onShowHelp
}

// Container returns the view's root canvas object
func (lv *LoginView) Container() fyne.CanvasObject {
	return lv.root
}

// SetActive marks the view as the currently presented one
func (lv *LoginView) SetActive(active bool) {
	lv.active = active
	if active {
		lv.root.Refresh()
	}
}

// SetBusy toggles the in-flight indicator and disables the submit button
func (lv *LoginView) SetBusy(busy bool) {
	if busy {
		lv.loginBtn.Disable()
		lv.spinner.Show()
	} else {
		lv.loginBtn.Enable()
		lv.spinner.Hide()
	}
}

// ShowError surfaces a login failure message
func (lv *LoginView) ShowError(message string) {
	lv.errorLabel.SetText(message)
	lv.errorLabel.Show()
}

// ClearError hides the error message
func (lv *LoginView) ClearError() {
	lv.errorLabel.SetText("")
	lv.errorLabel.Hide()
}

// ClearInputs wipes all entered credentials, e.g. after logout
func (lv *LoginView) ClearInputs() {
	lv.tokenEntry.SetText("")
	lv.emailEntry.SetText("")
	lv.passwordEntry.SetText("")
	lv.ClearError()
}

func (lv *LoginView) createUI() {
	lv.tokenEntry = widget.NewEntry()
	lv.tokenEntry.SetPlaceHolder(lv.localization.GetText(KeyTokenPlaceholder))
	lv.tokenEntry.OnSubmitted = func(string) { lv.submit() }

	lv.emailEntry = widget.NewEntry()
	lv.emailEntry.SetPlaceHolder(lv.localization.GetText(KeyEmail))
	lv.passwordEntry = widget.NewPasswordEntry()
	lv.passwordEntry.SetPlaceHolder(lv.localization.GetText(KeyPassword))
	lv.passwordEntry.OnSubmitted = func(string) { lv.submit() }

	lv.tabs = container.NewAppTabs(
		container.NewTabItem(lv.localization.GetText(KeyTokenTab), container.NewVBox(lv.tokenEntry)),
		container.NewTabItem(lv.localization.GetText(KeyCredentialsTab), container.NewVBox(lv.emailEntry, lv.passwordEntry)),
	)
	// Switching the credential path dismisses a stale error.
	lv.tabs.OnSelected = func(*container.TabItem) { lv.ClearError() }

	lv.loginBtn = widget.NewButton(lv.localization.GetText(KeySignIn), lv.submit)
	lv.loginBtn.Importance = widget.HighImportance

	lv.spinner = widget.NewProgressBarInfinite()
	lv.spinner.Hide()

	lv.errorLabel = widget.NewLabel("")
	lv.errorLabel.Importance = widget.DangerImportance
	lv.errorLabel.Wrapping = fyne.TextWrapWord
	lv.errorLabel.Hide()

	helpLink := widget.NewButton(lv.localization.GetText(KeyHelp), func() {
		if lv.onShowHelp != nil {
			lv.onShowHelp()
		}
	})
	helpLink.Importance = widget.LowImportance

	title := widget.NewLabel(lv.localization.GetText(KeyAppTitle))
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Alignment = fyne.TextAlignCenter

	form := container.NewVBox(
		title,
		lv.tabs,
		lv.loginBtn,
		lv.spinner,
		lv.errorLabel,
		helpLink,
	)

	lv.root = container.NewCenter(container.NewGridWrap(fyne.NewSize(360, 320), form))
}

// submit dispatches to the path matching the selected tab. Empty inputs are
// ignored without an error, matching the form's inline validation.
func (lv *LoginView) submit() {
	lv.ClearError()

	if lv.tabs.SelectedIndex() == 0 {
		token := strings.TrimSpace(lv.tokenEntry.Text)
		if token == "" {
			return
		}
		if lv.onTokenLogin != nil {
			lv.onTokenLogin(token)
		}
		return
	}

	email := strings.TrimSpace(lv.emailEntry.Text)
	password := strings.TrimSpace(lv.passwordEntry.Text)
	if email == "" || password == "" {
		return
	}
	if lv.onCredentialLogin != nil {
		lv.onCredentialLogin(email, password)
	}
}
