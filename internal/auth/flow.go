package auth

import (
	"log"
	"sync"

	"github.com/coursedeck/coursedeck/internal/api"
	"github.com/coursedeck/coursedeck/internal/model"
	"github.com/coursedeck/coursedeck/internal/session"
)

// ExpiredMessage is shown when a previously persisted token is rejected on
// startup. Deliberately generic: the silent restore path never surfaces raw
// backend detail, unlike an explicit login attempt.
const ExpiredMessage = "Session expired, please sign in again"

// Flow drives the authentication state machine:
// LoggedOut -> Authenticating -> (LoggedIn | LoginFailed).
// It is the single writer of the session store.
type Flow struct {
	api   *api.Client
	store *session.Store

	mu       sync.Mutex
	state    model.AuthState
	onChange func(state model.AuthState, message string)
}

// NewFlow creates an authentication flow over the given client and store.
func NewFlow(client *api.Client, store *session.Store) *Flow {
	return &Flow{
		api:   client,
		store: store,
		state: model.AuthStateLoggedOut,
	}
}

// SetChangeCallback sets the callback invoked on every state transition.
// The message is non-empty only for LoginFailed.
func (f *Flow) SetChangeCallback(callback func(state model.AuthState, message string)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.onChange = callback
}

// State returns the current authentication state.
func (f *Flow) State() model.AuthState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// LoginWithToken validates a raw access token and, on success, makes it the
// session token. On failure the backend message is surfaced verbatim.
func (f *Flow) LoginWithToken(token string) error {
	f.setState(model.AuthStateAuthenticating, "")

	if err := f.api.Authenticate(token); err != nil {
		log.Printf("token login rejected: %v", err)
		f.setState(model.AuthStateLoginFailed, err.Error())
		return err
	}

	f.store.Set(token)
	f.setState(model.AuthStateLoggedIn, "")
	return nil
}

// LoginWithCredentials exchanges email/password for a token. The session
// token is the one returned by the backend, never the submitted password.
func (f *Flow) LoginWithCredentials(email, password string) error {
	f.setState(model.AuthStateAuthenticating, "")

	token, err := f.api.Login(email, password)
	if err != nil {
		log.Printf("credential login rejected: %v", err)
		f.setState(model.AuthStateLoginFailed, err.Error())
		return err
	}

	f.store.Set(token)
	f.setState(model.AuthStateLoggedIn, "")
	return nil
}

// Restore silently re-validates a persisted token on startup. Returns false
// if no token was stored or the token was rejected; a rejected token is
// cleared and only the generic expiry message is surfaced.
func (f *Flow) Restore() bool {
	token, ok := f.store.Get()
	if !ok {
		return false
	}

	f.setState(model.AuthStateAuthenticating, "")

	if err := f.api.Authenticate(token); err != nil {
		log.Printf("persisted token rejected, clearing session: %v", err)
		f.store.Clear()
		f.setState(model.AuthStateLoginFailed, ExpiredMessage)
		return false
	}

	f.setState(model.AuthStateLoggedIn, "")
	return true
}

// Expire ends the session after an authenticated call failed mid-session.
// The catalog load is the expected trigger: its only anticipated failure
// mode is token rejection.
func (f *Flow) Expire(cause error) {
	f.store.Clear()
	message := ExpiredMessage
	if cause != nil {
		log.Printf("session expired: %v", cause)
		message = "Session expired or error: " + cause.Error()
	}
	f.setState(model.AuthStateLoginFailed, message)
}

// Logout clears the session and returns to the logged-out state.
func (f *Flow) Logout() {
	f.store.Clear()
	f.setState(model.AuthStateLoggedOut, "")
}

func (f *Flow) setState(state model.AuthState, message string) {
	f.mu.Lock()
	f.state = state
	callback := f.onChange
	f.mu.Unlock()

	if callback != nil {
		callback(state, message)
	}
}
