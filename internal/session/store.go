package session

import (
	"sync"

	"fyne.io/fyne/v2"
)

// TokenKey is the single Fyne preferences key holding the persisted session
// token. Absence means logged out.
const TokenKey = "session_token"

// Store holds the current session token and mirrors it to durable Fyne
// preferences. It is read by every authenticated API call and written only
// by the authentication flow; the in-memory and persisted values are updated
// together so they never diverge after a successful write.
type Store struct {
	prefs fyne.Preferences

	mu    sync.RWMutex
	token string
}

// NewStore creates a session store backed by the app preferences, loading any
// previously persisted token.
func NewStore(app fyne.App) *Store {
	s := &Store{prefs: app.Preferences()}
	s.token = s.prefs.String(TokenKey)
	return s
}

// Get returns the current token and whether one is present.
func (s *Store) Get() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.token != ""
}

// Set persists the token and updates the in-memory value.
func (s *Store) Set(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs.SetString(TokenKey, token)
	s.token = token
}

// Clear removes the token from durable storage and memory.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs.RemoveValue(TokenKey)
	s.token = ""
}
