package session

import "sync"

// Session is the application state shared between the CLI and the
// sub-account provisioner. PrimaryAccount is set when the wallet connects;
// SubAccount is written exactly once per successful creation and is empty
// until then. Absence of a value is represented by the empty string, never
// by a placeholder address.
type Session struct {
	mu         sync.RWMutex
	primary    string
	subAccount string
}

// New returns an empty, unconnected session.
func New() *Session {
	return &Session{}
}

// SetPrimaryAccount records the connected primary account address.
func (s *Session) SetPrimaryAccount(address string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.primary = address
}

// PrimaryAccount returns the connected primary account, or "" when the
// session is not connected.
func (s *Session) PrimaryAccount() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.primary
}

// Connected reports whether a primary account is known.
func (s *Session) Connected() bool {
	return s.PrimaryAccount() != ""
}

// SetSubAccount records a provider-confirmed sub-account address. A later
// successful creation overwrites the previous value; the session keeps no
// history.
func (s *Session) SetSubAccount(address string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subAccount = address
}

// SubAccount returns the cached sub-account address, or "" when none has
// been created or restored.
func (s *Session) SubAccount() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.subAccount
}

// HasSubAccount reports whether a sub-account address is cached.
func (s *Session) HasSubAccount() bool {
	return s.SubAccount() != ""
}
