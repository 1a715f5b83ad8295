package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/coursedeck/coursedeck/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.coursedeck.coursedeck"
	AppName = "CourseDeck"
)

func main() {
	// Log version information
	fmt.Printf("CourseDeck v%s starting...\n", version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	// Create and setup UI, then restore any persisted session
	root := ui.NewRootUI(myApp, myWindow)
	myWindow.SetContent(root.Content())
	root.Start()

	// Show and run
	myWindow.ShowAndRun()
}
