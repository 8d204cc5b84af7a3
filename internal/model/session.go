package model

import "strings"

// DeviceID identifies one browser (or CLI install) and its persisted state
type DeviceID string

// View is the screen a device is currently on
type View string

const (
	ViewRoleSelect View = "role-select" // initial
	ViewAuth       View = "auth"
	ViewDashboard  View = "dashboard"
)

// Valid reports whether v names a known screen
func (v View) Valid() bool {
	switch v {
	case ViewRoleSelect, ViewAuth, ViewDashboard:
		return true
	}
	return false
}

// DefaultUser is the display name used when authentication is submitted without a nickname
const DefaultUser = "Admin"

// Session is the per-device navigation and authentication state
type Session struct {
	View        View
	Role        Role // nil until a role is selected
	IsLoggedIn  bool
	CurrentUser string
}

// NewSession returns the initial state: role selection, nobody logged in
func NewSession() *Session {
	return &Session{View: ViewRoleSelect}
}

// HasRole reports whether a role has been selected
func (s *Session) HasRole() bool {
	return s.Role != nil
}

// Valid reports whether the session satisfies its invariants:
// logged in implies dashboard with a role, auth implies a role,
// and the dashboard is only reachable when logged in.
func (s *Session) Valid() bool {
	if !s.View.Valid() {
		return false
	}
	if s.IsLoggedIn && (s.View != ViewDashboard || s.Role == nil) {
		return false
	}
	if !s.IsLoggedIn && (s.View == ViewDashboard || s.CurrentUser != "") {
		return false
	}
	if s.View == ViewAuth && s.Role == nil {
		return false
	}
	return true
}

// Repair moves an invalid session to the nearest valid state.
// It returns true if anything changed.
func (s *Session) Repair() bool {
	if s.Valid() {
		return false
	}

	if !s.View.Valid() {
		s.View = ViewRoleSelect
	}

	if s.IsLoggedIn && s.Role == nil {
		*s = *NewSession()
		return true
	}

	if s.IsLoggedIn {
		s.View = ViewDashboard
		if s.CurrentUser == "" {
			s.CurrentUser = DefaultUser
		}
		return true
	}

	s.CurrentUser = ""
	if s.View == ViewDashboard {
		s.View = ViewAuth
	}
	if s.View == ViewAuth && s.Role == nil {
		s.View = ViewRoleSelect
	}
	return true
}

// AuthMode selects the tab of the authentication form
type AuthMode string

const (
	AuthModeLogin    AuthMode = "login"
	AuthModeRegister AuthMode = "register"
)

// ParseAuthMode returns the mode for s, defaulting to login
func ParseAuthMode(s string) AuthMode {
	if AuthMode(strings.ToLower(strings.TrimSpace(s))) == AuthModeRegister {
		return AuthModeRegister
	}
	return AuthModeLogin
}

// AuthForm is a submitted login or registration form.
// None of the fields are verified.
type AuthForm struct {
	Mode           AuthMode
	Nickname       string
	Password       string
	FirstName      string
	LastName       string
	Weapon         string
	FavoritePlayer string
}

// DisplayName returns the trimmed nickname, or DefaultUser when it is blank
func (f AuthForm) DisplayName() string {
	if name := strings.TrimSpace(f.Nickname); name != "" {
		return name
	}
	return DefaultUser
}
