package model

// AuthState represents the state of the authentication flow
type AuthState string

const (
	// AuthStateLoggedOut means no session exists
	AuthStateLoggedOut AuthState = "LoggedOut"

	// AuthStateAuthenticating means a login or token validation is in flight
	AuthStateAuthenticating AuthState = "Authenticating"

	// AuthStateLoggedIn means a session token has been validated and stored
	AuthStateLoggedIn AuthState = "LoggedIn"

	// AuthStateLoginFailed means the last login attempt was rejected
	AuthStateLoginFailed AuthState = "LoginFailed"
)

// String returns the string representation of AuthState
func (as AuthState) String() string {
	return string(as)
}

// IsBusy returns true while a login or token validation is in flight
func (as AuthState) IsBusy() bool {
	return as == AuthStateAuthenticating
}

// IsLoggedOut returns true if the login surface should be shown
func (as AuthState) IsLoggedOut() bool {
	return as == AuthStateLoggedOut || as == AuthStateLoginFailed
}

// QualityState represents the state of lazy quality discovery on one control
type QualityState string

const (
	// QualityStateNotLoaded means discovery has not produced options yet
	QualityStateNotLoaded QualityState = "NotLoaded"

	// QualityStateLoading means the quality listing call is in flight
	QualityStateLoading QualityState = "Loading"

	// QualityStateLoaded means a non-empty quality list was returned
	QualityStateLoaded QualityState = "Loaded"

	// QualityStateLockedForDRM means the asset is rights-protected
	QualityStateLockedForDRM QualityState = "LockedForDRM"

	// QualityStateLoadedEmpty means discovery succeeded with no options
	QualityStateLoadedEmpty QualityState = "LoadedEmpty"
)

// String returns the string representation of QualityState
func (qs QualityState) String() string {
	return string(qs)
}

// IsSettled returns true once discovery has produced a final answer
func (qs QualityState) IsSettled() bool {
	return qs == QualityStateLoaded || qs == QualityStateLockedForDRM || qs == QualityStateLoadedEmpty
}

// ResolveState represents the state of a download-resolution control
type ResolveState string

const (
	// ResolveStateIdle means the control is interactive and waiting
	ResolveStateIdle ResolveState = "Idle"

	// ResolveStateResolving means the resolve call is in flight
	ResolveStateResolving ResolveState = "Resolving"

	// ResolveStateSucceeded means a URL was resolved and opened
	ResolveStateSucceeded ResolveState = "Succeeded"

	// ResolveStateLocked means the asset is rights-protected; terminal
	ResolveStateLocked ResolveState = "Locked"

	// ResolveStateFailed means the last resolution attempt errored
	ResolveStateFailed ResolveState = "Failed"
)

// String returns the string representation of ResolveState
func (rs ResolveState) String() string {
	return string(rs)
}

// IsBusy returns true while a resolution call is in flight
func (rs ResolveState) IsBusy() bool {
	return rs == ResolveStateResolving
}

// IsTransient returns true for states that auto-revert to Idle
func (rs ResolveState) IsTransient() bool {
	return rs == ResolveStateSucceeded || rs == ResolveStateFailed
}

// IsTerminal returns true if the control accepts no further interaction
func (rs ResolveState) IsTerminal() bool {
	return rs == ResolveStateLocked
}
