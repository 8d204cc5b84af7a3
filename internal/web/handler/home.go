package handler

import (
	"net/http"

	"github.com/pr-poehali-dev/major-registration-portal/internal/dependencies/ids"
	"github.com/pr-poehali-dev/major-registration-portal/internal/model"
	"github.com/pr-poehali-dev/major-registration-portal/internal/services/catalog"
	"github.com/pr-poehali-dev/major-registration-portal/internal/web/middleware"
	"github.com/pr-poehali-dev/major-registration-portal/internal/web/templates/pages"
)

// HomeHandler renders whichever screen the device's session is on
type HomeHandler struct {
	catalog *catalog.Service
	ids     ids.Generator
}

// NewHomeHandler creates a new HomeHandler
func NewHomeHandler(catalogService *catalog.Service, generator ids.Generator) *HomeHandler {
	return &HomeHandler{
		catalog: catalogService,
		ids:     generator,
	}
}

// Home renders the current view
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())

	switch sess.View {
	case model.ViewAuth:
		data := pages.AuthData{
			PageData: pageData(r, "Вход", h.ids),
			Role:     sess.Role,
			Mode:     model.ParseAuthMode(r.URL.Query().Get("mode")),
		}
		renderPage(w, r, http.StatusOK, pages.Auth(data))

	case model.ViewDashboard:
		renderPage(w, r, http.StatusOK, pages.Dashboard(dashboardData(r, h.catalog, h.ids)))

	default:
		data := pages.RoleSelectData{
			PageData: pageData(r, "Выбор роли", h.ids),
			Roles:    model.Roles(),
		}
		renderPage(w, r, http.StatusOK, pages.RoleSelect(data))
	}
}
