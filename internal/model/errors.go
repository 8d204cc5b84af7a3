package model

import "errors"

// Common errors used across the application
var (
	// Sample data errors
	ErrPlayerNotFound     = errors.New("player not found")
	ErrTournamentNotFound = errors.New("tournament not found")

	// Session errors
	ErrInvalidRole     = errors.New("invalid role")
	ErrRoleNotSelected = errors.New("no role selected")
	ErrAlreadyLoggedIn = errors.New("already logged in")
	ErrInvalidDevice   = errors.New("invalid device id")
)
