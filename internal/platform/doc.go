// Package platform contains OS integration glue: handing resolved download
// URLs to the system browser via the running Fyne app.
package platform
