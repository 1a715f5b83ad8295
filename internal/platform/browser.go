package platform

import (
	"fmt"
	"net/url"

	"fyne.io/fyne/v2"
)

// OpenInBrowser opens the given URL in the system browser. The actual file
// transfer happens entirely outside this app.
func OpenInBrowser(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("parse url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("refusing to open non-http URL: %s", parsed.Scheme)
	}
	return fyne.CurrentApp().OpenURL(parsed)
}
