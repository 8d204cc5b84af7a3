package handler

import (
	"net/http"

	"github.com/a-h/templ"

	"github.com/pr-poehali-dev/major-registration-portal/internal/dependencies/ids"
	"github.com/pr-poehali-dev/major-registration-portal/internal/services/catalog"
	"github.com/pr-poehali-dev/major-registration-portal/internal/web/middleware"
	"github.com/pr-poehali-dev/major-registration-portal/internal/web/templates/layout"
	"github.com/pr-poehali-dev/major-registration-portal/internal/web/templates/pages"
)

// pageData builds the layout data shared by every full page
func pageData(r *http.Request, title string, generator ids.Generator) layout.PageData {
	return layout.PageData{
		Title:   title,
		Flash:   middleware.GetFlash(r.Context()),
		Session: middleware.GetSession(r.Context()),
		TabID:   generator.TabID(),
	}
}

// renderPage writes a full HTML page
func renderPage(w http.ResponseWriter, r *http.Request, status int, component templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := component.Render(r.Context(), w); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// dashboardData collects the schedule and player list
func dashboardData(r *http.Request, catalogService *catalog.Service, generator ids.Generator) pages.DashboardData {
	return pages.DashboardData{
		PageData:    pageData(r, "Панель", generator),
		Tournaments: catalogService.ListTournaments(),
		Players:     catalogService.ListPlayers(),
	}
}

// isHTMX reports whether the request came from htmx
func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}
