package handler

import (
	"net/http"

	"github.com/pr-poehali-dev/major-registration-portal/internal/api/apierr"
)

// Re-export from apierr for convenience
type APIError = apierr.APIError
type ErrorResponse = apierr.ErrorResponse

// Re-export error codes
const (
	CodeInvalidRequest     = apierr.CodeInvalidRequest
	CodeInvalidRole        = apierr.CodeInvalidRole
	CodeRoleNotSelected    = apierr.CodeRoleNotSelected
	CodeAlreadyLoggedIn    = apierr.CodeAlreadyLoggedIn
	CodePlayerNotFound     = apierr.CodePlayerNotFound
	CodeTournamentNotFound = apierr.CodeTournamentNotFound
	CodeInternalError      = apierr.CodeInternalError
)

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return apierr.NewInvalidRequestError(message)
}
