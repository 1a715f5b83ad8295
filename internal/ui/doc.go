// Package ui contains the Fyne-based desktop user interface: the login,
// dashboard and course-detail views, the view router, and the per-item rows
// that reflect resolution state. It wires user interactions to the auth,
// catalog and resolve services. All UI strings are localized via Localization.
package ui
