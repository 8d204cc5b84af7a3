package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/pr-poehali-dev/major-registration-portal/internal/api/middleware"
	"github.com/pr-poehali-dev/major-registration-portal/internal/api/request"
	"github.com/pr-poehali-dev/major-registration-portal/internal/api/response"
	"github.com/pr-poehali-dev/major-registration-portal/internal/model"
	"github.com/pr-poehali-dev/major-registration-portal/internal/services/session"
	"github.com/pr-poehali-dev/major-registration-portal/internal/web/sse"
)

// SessionHandler handles the session state machine endpoints
type SessionHandler struct {
	controller  *session.Controller
	broadcaster *sse.Broadcaster
}

// NewSessionHandler creates a new session handler.
// A nil broadcaster disables cross-tab notifications.
func NewSessionHandler(controller *session.Controller, broadcaster *sse.Broadcaster) *SessionHandler {
	return &SessionHandler{
		controller:  controller,
		broadcaster: broadcaster,
	}
}

// Get handles GET /api/v1/session
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	device := middleware.MustGetDevice(r.Context())

	sess, err := h.controller.Load(r.Context(), device)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionFromModel(device, sess))
}

// SelectRole handles POST /api/v1/session/role
func (h *SessionHandler) SelectRole(w http.ResponseWriter, r *http.Request) {
	var req request.SelectRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Role == "" {
		WriteError(w, NewInvalidRequestError("role is required"))
		return
	}

	role, err := model.ParseRole(req.Role)
	if err != nil {
		WriteError(w, err)
		return
	}

	device := middleware.MustGetDevice(r.Context())
	sess, err := h.controller.SelectRole(r.Context(), device, role)
	h.respond(w, device, sess, err)
}

// Back handles POST /api/v1/session/back
func (h *SessionHandler) Back(w http.ResponseWriter, r *http.Request) {
	device := middleware.MustGetDevice(r.Context())
	sess, changed, err := h.controller.Back(r.Context(), device)
	if err == nil && !changed {
		response.JSON(w, http.StatusOK, response.SessionFromModel(device, sess))
		return
	}
	h.respond(w, device, sess, err)
}

// Authenticate handles POST /api/v1/session/auth.
// An empty body is a login with the default user name.
func (h *SessionHandler) Authenticate(w http.ResponseWriter, r *http.Request) {
	var req request.AuthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	form := model.AuthForm{
		Mode:           model.ParseAuthMode(req.Mode),
		Nickname:       req.Nickname,
		Password:       req.Password,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Weapon:         req.Weapon,
		FavoritePlayer: req.FavoritePlayer,
	}

	device := middleware.MustGetDevice(r.Context())
	sess, err := h.controller.Authenticate(r.Context(), device, form)
	h.respond(w, device, sess, err)
}

// Logout handles POST /api/v1/session/logout
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	device := middleware.MustGetDevice(r.Context())
	sess, err := h.controller.Logout(r.Context(), device)
	h.respond(w, device, sess, err)
}

func (h *SessionHandler) respond(w http.ResponseWriter, device model.DeviceID, sess *model.Session, err error) {
	if err != nil {
		WriteError(w, err)
		return
	}

	if h.broadcaster != nil {
		h.broadcaster.BroadcastSessionChanged(device, sess, "")
	}
	response.JSON(w, http.StatusOK, response.SessionFromModel(device, sess))
}
