package handler

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pr-poehali-dev/major-registration-portal/internal/dependencies/ids"
	"github.com/pr-poehali-dev/major-registration-portal/internal/model"
	"github.com/pr-poehali-dev/major-registration-portal/internal/services/catalog"
	"github.com/pr-poehali-dev/major-registration-portal/internal/web/middleware"
	"github.com/pr-poehali-dev/major-registration-portal/internal/web/templates/components"
	"github.com/pr-poehali-dev/major-registration-portal/internal/web/templates/pages"
)

// PlayerHandler opens the player statistics dialog
type PlayerHandler struct {
	catalog *catalog.Service
	ids     ids.Generator
}

// NewPlayerHandler creates a new PlayerHandler
func NewPlayerHandler(catalogService *catalog.Service, generator ids.Generator) *PlayerHandler {
	return &PlayerHandler{
		catalog: catalogService,
		ids:     generator,
	}
}

// Show renders the dashboard with the dialog open, or only the dialog for htmx
func (h *PlayerHandler) Show(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())
	if sess.View != model.ViewDashboard {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	id := model.PlayerID(mux.Vars(r)["id"])
	dialog, err := h.catalog.PlayerDialog(id)
	if err != nil {
		if !errors.Is(err, model.ErrPlayerNotFound) {
			middleware.ErrorPage(w, r, err)
			return
		}
		if isHTMX(r) {
			http.Error(w, "Игрок не найден", http.StatusNotFound)
			return
		}
		middleware.SetFlash(w, "error", "Ошибка", "Игрок не найден")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if isHTMX(r) {
		renderPage(w, r, http.StatusOK, components.PlayerDialog(dialog))
		return
	}

	data := dashboardData(r, h.catalog, h.ids)
	data.Title = dialog.Player.Nickname
	data.Dialog = dialog
	renderPage(w, r, http.StatusOK, pages.Dashboard(data))
}
