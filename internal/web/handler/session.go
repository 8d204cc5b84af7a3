package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/pr-poehali-dev/major-registration-portal/internal/model"
	"github.com/pr-poehali-dev/major-registration-portal/internal/services/session"
	"github.com/pr-poehali-dev/major-registration-portal/internal/web/middleware"
	"github.com/pr-poehali-dev/major-registration-portal/internal/web/sse"
)

// SessionHandler handles the role, back, auth and logout actions
type SessionHandler struct {
	controller  *session.Controller
	broadcaster *sse.Broadcaster
	logger      *slog.Logger
}

// NewSessionHandler creates a new SessionHandler
func NewSessionHandler(controller *session.Controller, broadcaster *sse.Broadcaster, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		controller:  controller,
		broadcaster: broadcaster,
		logger:      logger,
	}
}

// SelectRole handles the role selection cards
func (h *SessionHandler) SelectRole(w http.ResponseWriter, r *http.Request) {
	if !h.parseForm(w, r) {
		return
	}

	role, err := model.ParseRole(r.FormValue("role"))
	if err != nil {
		middleware.SetFlash(w, "error", "Ошибка", "Неизвестная роль")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	device := middleware.GetDevice(r.Context())
	sess, err := h.controller.SelectRole(r.Context(), device, role)
	if errors.Is(err, model.ErrAlreadyLoggedIn) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	h.finish(w, r, sess, err)
}

// Back returns from the auth screen to role selection
func (h *SessionHandler) Back(w http.ResponseWriter, r *http.Request) {
	if !h.parseForm(w, r) {
		return
	}

	device := middleware.GetDevice(r.Context())
	sess, changed, err := h.controller.Back(r.Context(), device)
	if err == nil && !changed {
		// Nothing to tell the other tabs
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	h.finish(w, r, sess, err)
}

// Authenticate accepts the login or register form
func (h *SessionHandler) Authenticate(w http.ResponseWriter, r *http.Request) {
	if !h.parseForm(w, r) {
		return
	}

	form := model.AuthForm{
		Mode:           model.ParseAuthMode(r.FormValue("mode")),
		Nickname:       r.FormValue("nickname"),
		Password:       r.FormValue("password"),
		FirstName:      r.FormValue("firstName"),
		LastName:       r.FormValue("lastName"),
		Weapon:         r.FormValue("weapon"),
		FavoritePlayer: r.FormValue("favoritePlayer"),
	}

	device := middleware.GetDevice(r.Context())
	sess, err := h.controller.Authenticate(r.Context(), device, form)
	if errors.Is(err, model.ErrRoleNotSelected) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if err == nil {
		middleware.SetFlash(w, "success", "Вход выполнен", "Добро пожаловать в систему MAJOR!")
	}
	h.finish(w, r, sess, err)
}

// Logout clears the device's session
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if !h.parseForm(w, r) {
		return
	}

	device := middleware.GetDevice(r.Context())
	sess, err := h.controller.Logout(r.Context(), device)
	if err == nil {
		middleware.SetFlash(w, "info", "Выход выполнен", "До встречи на турнире!")
	}
	h.finish(w, r, sess, err)
}

// parseForm parses the posted form. On a malformed body it shows an error
// toast, redirects home and returns false.
func (h *SessionHandler) parseForm(w http.ResponseWriter, r *http.Request) bool {
	if err := r.ParseForm(); err != nil {
		h.logger.Warn("malformed form",
			slog.String("path", r.URL.Path),
			slog.Any("error", err))
		middleware.SetFlash(w, "error", "Ошибка", "Некорректные данные формы")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return false
	}
	return true
}

// finish tells the device's other tabs about the change and redirects home
func (h *SessionHandler) finish(w http.ResponseWriter, r *http.Request, sess *model.Session, err error) {
	device := middleware.GetDevice(r.Context())
	if err != nil {
		h.logger.Error("session transition failed",
			slog.String("device", string(device)),
			slog.String("path", r.URL.Path),
			slog.Any("error", err))
		middleware.ErrorPage(w, r, err)
		return
	}

	h.broadcaster.BroadcastSessionChanged(device, sess, r.FormValue("tab"))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
