package model

import "testing"

func TestResolveState_IsBusy(t *testing.T) {
	tests := []struct {
		state    ResolveState
		expected bool
	}{
		{ResolveStateIdle, false},
		{ResolveStateResolving, true},
		{ResolveStateSucceeded, false},
		{ResolveStateLocked, false},
		{ResolveStateFailed, false},
	}

	for _, test := range tests {
		result := test.state.IsBusy()
		if result != test.expected {
			t.Errorf("ResolveState(%s).IsBusy() = %v, expected %v", test.state, result, test.expected)
		}
	}
}

func TestResolveState_IsTransient(t *testing.T) {
	tests := []struct {
		state    ResolveState
		expected bool
	}{
		{ResolveStateIdle, false},
		{ResolveStateResolving, false},
		{ResolveStateSucceeded, true},
		{ResolveStateLocked, false},
		{ResolveStateFailed, true},
	}

	for _, test := range tests {
		result := test.state.IsTransient()
		if result != test.expected {
			t.Errorf("ResolveState(%s).IsTransient() = %v, expected %v", test.state, result, test.expected)
		}
	}
}

func TestResolveState_IsTerminal(t *testing.T) {
	tests := []struct {
		state    ResolveState
		expected bool
	}{
		{ResolveStateIdle, false},
		{ResolveStateResolving, false},
		{ResolveStateSucceeded, false},
		{ResolveStateLocked, true},
		{ResolveStateFailed, false},
	}

	for _, test := range tests {
		result := test.state.IsTerminal()
		if result != test.expected {
			t.Errorf("ResolveState(%s).IsTerminal() = %v, expected %v", test.state, result, test.expected)
		}
	}
}

func TestQualityState_IsSettled(t *testing.T) {
	tests := []struct {
		state    QualityState
		expected bool
	}{
		{QualityStateNotLoaded, false},
		{QualityStateLoading, false},
		{QualityStateLoaded, true},
		{QualityStateLockedForDRM, true},
		{QualityStateLoadedEmpty, true},
	}

	for _, test := range tests {
		result := test.state.IsSettled()
		if result != test.expected {
			t.Errorf("QualityState(%s).IsSettled() = %v, expected %v", test.state, result, test.expected)
		}
	}
}

func TestAuthState_IsLoggedOut(t *testing.T) {
	tests := []struct {
		state    AuthState
		expected bool
	}{
		{AuthStateLoggedOut, true},
		{AuthStateAuthenticating, false},
		{AuthStateLoggedIn, false},
		{AuthStateLoginFailed, true},
	}

	for _, test := range tests {
		result := test.state.IsLoggedOut()
		if result != test.expected {
			t.Errorf("AuthState(%s).IsLoggedOut() = %v, expected %v", test.state, result, test.expected)
		}
	}
}

func TestAuthState_String(t *testing.T) {
	state := AuthStateAuthenticating
	expected := "Authenticating"
	result := state.String()

	if result != expected {
		t.Errorf("AuthState.String() = %s, expected %s", result, expected)
	}
}
