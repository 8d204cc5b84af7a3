package apierr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pr-poehali-dev/major-registration-portal/internal/model"
)

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{model.ErrInvalidRole, http.StatusBadRequest, CodeInvalidRole},
		{model.ErrInvalidDevice, http.StatusBadRequest, CodeInvalidDevice},
		{model.ErrRoleNotSelected, http.StatusConflict, CodeRoleNotSelected},
		{model.ErrAlreadyLoggedIn, http.StatusConflict, CodeAlreadyLoggedIn},
		{model.ErrPlayerNotFound, http.StatusNotFound, CodePlayerNotFound},
		{model.ErrTournamentNotFound, http.StatusNotFound, CodeTournamentNotFound},
		{fmt.Errorf("load session: %w", model.ErrPlayerNotFound), http.StatusNotFound, CodePlayerNotFound},
		{NewInvalidRequestError("bad"), http.StatusBadRequest, CodeInvalidRequest},
		{NewNotFoundError(), http.StatusNotFound, CodeNotFound},
		{errors.New("redis down"), http.StatusInternalServerError, CodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			rr := httptest.NewRecorder()
			WriteError(rr, tt.err)

			assert.Equal(t, tt.status, rr.Code)
			assert.Equal(t, tt.status, Status(tt.err))
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

			var resp ErrorResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, tt.code, resp.Error.Code)
			assert.NotEmpty(t, resp.Error.Message)
		})
	}
}

func TestInternalErrorHidesDetails(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteError(rr, errors.New("dial tcp 10.0.0.1:6379: connection refused"))

	assert.NotContains(t, rr.Body.String(), "10.0.0.1")
}
