package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyBackendURL = "backend_url"
	KeyLanguage   = "app_language"
)

// Default values
const (
	DefaultBackendURL = "http://localhost:8000"
	DefaultLanguage   = "system"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetBackendURL returns the configured backend base URL
func (s *Settings) GetBackendURL() string {
	backendURL := s.app.Preferences().String(KeyBackendURL)
	if backendURL == "" {
		s.SetBackendURL(DefaultBackendURL)
		return DefaultBackendURL
	}
	return backendURL
}

// SetBackendURL sets the backend base URL
func (s *Settings) SetBackendURL(backendURL string) {
	if backendURL == "" {
		backendURL = DefaultBackendURL
	}
	s.app.Preferences().SetString(KeyBackendURL, backendURL)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}
