package ui

import (
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/coursedeck/coursedeck/internal/api"
	"github.com/coursedeck/coursedeck/internal/auth"
	"github.com/coursedeck/coursedeck/internal/catalog"
	"github.com/coursedeck/coursedeck/internal/config"
	"github.com/coursedeck/coursedeck/internal/curriculum"
	"github.com/coursedeck/coursedeck/internal/model"
	"github.com/coursedeck/coursedeck/internal/platform"
	"github.com/coursedeck/coursedeck/internal/resolve"
	"github.com/coursedeck/coursedeck/internal/session"
)

// RootUI owns the window, the services and the view router, and wires the
// service callbacks to view updates. All service callbacks arrive on
// background goroutines and are marshalled onto the UI thread here.
type RootUI struct {
	app    fyne.App
	window fyne.Window

	localization *Localization
	settings     *config.Settings

	apiClient    *api.Client
	sessionStore *session.Store
	authFlow     *auth.Flow
	catalogSvc   *catalog.Service
	resolveSvc   *resolve.Service

	router        *ViewRouter
	loginView     *LoginView
	dashboardView *DashboardView
	detailView    *CourseDetailView
	toolbar       *fyne.Container
}

// NewRootUI creates the root UI and all services behind it.
func NewRootUI(app fyne.App, window fyne.Window) *RootUI {
	ui := &RootUI{app: app, window: window}

	ui.settings = config.NewSettings(app)
	ui.localization = NewLocalization()
	ui.localization.SetLanguage(ui.settings.GetLanguage())

	ui.sessionStore = session.NewStore(app)
	ui.apiClient = api.NewClient(ui.settings.GetBackendURL(), ui.sessionStore)
	ui.authFlow = auth.NewFlow(ui.apiClient, ui.sessionStore)
	ui.catalogSvc = catalog.NewService(ui.apiClient)
	ui.resolveSvc = resolve.NewService(ui.apiClient, platform.OpenInBrowser)

	ui.createViews()
	ui.wireCallbacks()

	return ui
}

// Content returns the root canvas object for the window.
func (ui *RootUI) Content() fyne.CanvasObject {
	stack := container.NewStack(
		ui.loginView.Container(),
		ui.dashboardView.Container(),
		ui.detailView.Container(),
	)
	return container.NewBorder(ui.toolbar, nil, nil, nil, stack)
}

// Start shows the initial view and silently restores a persisted session.
func (ui *RootUI) Start() {
	ui.router.Show(ViewLogin)
	go ui.authFlow.Restore()
}

func (ui *RootUI) createViews() {
	ui.loginView = NewLoginView(ui.localization)
	ui.dashboardView = NewDashboardView(ui.localization)
	ui.detailView = NewCourseDetailView(ui.localization)

	ui.router = NewViewRouter()
	ui.router.Register(ViewLogin, ui.loginView)
	ui.router.Register(ViewDashboard, ui.dashboardView)
	ui.router.Register(ViewDetail, ui.detailView)

	settingsBtn := widget.NewButton(fmt.Sprintf("%s %s", IconSettings, ui.localization.GetText(KeySettings)), ui.showSettings)
	settingsBtn.Importance = widget.LowImportance
	logoutBtn := widget.NewButton(fmt.Sprintf("%s %s", IconLogout, ui.localization.GetText(KeyLogout)), ui.authFlow.Logout)
	logoutBtn.Importance = widget.LowImportance

	ui.toolbar = container.NewHBox(layout.NewSpacer(), settingsBtn, logoutBtn)
	ui.toolbar.Hide()
}

func (ui *RootUI) wireCallbacks() {
	ui.loginView.SetCallbacks(
		func(token string) { go ui.authFlow.LoginWithToken(token) },
		func(email, password string) { go ui.authFlow.LoginWithCredentials(email, password) },
		func() { ShowHelpDialog(ui.window, ui.localization) },
	)

	ui.dashboardView.SetCallbacks(ui.searchCourses, ui.openCourse)

	ui.detailView.SetCallbacks(
		func() { ui.router.Show(ViewDashboard) },
		ui.resolveSvc.Resolve,
		ui.resolveSvc.LoadQualities,
	)

	ui.authFlow.SetChangeCallback(ui.onAuthChange)
	ui.resolveSvc.SetUpdateCallback(ui.onControlUpdate)
}

func (ui *RootUI) onAuthChange(state model.AuthState, message string) {
	fyne.Do(func() {
		switch state {
		case model.AuthStateAuthenticating:
			ui.loginView.SetBusy(true)

		case model.AuthStateLoggedIn:
			ui.loginView.SetBusy(false)
			ui.loginView.ClearInputs()
			ui.toolbar.Show()
			ui.router.Show(ViewDashboard)
			go ui.loadCourses()

		case model.AuthStateLoginFailed:
			ui.loginView.SetBusy(false)
			ui.toolbar.Hide()
			ui.router.Show(ViewLogin)
			if message != "" {
				ui.loginView.ShowError(message)
			}

		case model.AuthStateLoggedOut:
			ui.loginView.SetBusy(false)
			ui.loginView.ClearInputs()
			ui.dashboardView.ClearSearch()
			ui.toolbar.Hide()
			ui.router.Show(ViewLogin)
		}
	})
}

// loadCourses fetches the catalog after login. A failing fetch ends the
// session: token rejection is its only anticipated failure mode.
func (ui *RootUI) loadCourses() {
	fyne.Do(func() { ui.dashboardView.SetBusy(true) })

	courses, err := ui.catalogSvc.Load()
	if err != nil {
		fyne.Do(func() { ui.dashboardView.SetBusy(false) })
		ui.authFlow.Expire(err)
		return
	}

	fyne.Do(func() {
		ui.dashboardView.SetBusy(false)
		ui.dashboardView.SetCourses(courses)
	})
}

func (ui *RootUI) searchCourses(term string) {
	ui.dashboardView.SetCourses(catalog.Filter(ui.catalogSvc.Courses(), term))
}

func (ui *RootUI) openCourse(course model.Course) {
	ui.resolveSvc.Reset()
	ui.detailView.ShowLoading(course.Title)
	ui.router.Show(ViewDetail)

	go func() {
		records, err := ui.apiClient.Curriculum(course.ID)
		if err != nil {
			fyne.Do(func() { ui.detailView.ShowError(err.Error()) })
			return
		}

		groups := curriculum.Normalize(records)
		fyne.Do(func() {
			ui.detailView.SetCurriculum(course.ID, groups, ui.resolveSvc)
		})
	}()
}

func (ui *RootUI) onControlUpdate(control *resolve.Control) {
	fyne.Do(func() {
		ui.detailView.ApplyControl(control)

		// One dialog per failure: the revert back to Idle passes through
		// here too but carries a different state.
		if control.State == model.ResolveStateFailed && control.LastError != "" {
			dialog.ShowError(errors.New(control.LastError), ui.window)
		}
	})
}

func (ui *RootUI) showSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.apiClient.SetBaseURL)
}
