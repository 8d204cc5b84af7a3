package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pr-poehali-dev/major-registration-portal/internal/dependencies/clock"
	"github.com/pr-poehali-dev/major-registration-portal/internal/dependencies/ids"
	"github.com/pr-poehali-dev/major-registration-portal/internal/services/catalog"
	"github.com/pr-poehali-dev/major-registration-portal/internal/services/session"
	"github.com/pr-poehali-dev/major-registration-portal/internal/web/handler"
	"github.com/pr-poehali-dev/major-registration-portal/internal/web/middleware"
	"github.com/pr-poehali-dev/major-registration-portal/internal/web/sse"
)

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger            *slog.Logger
	SessionController *session.Controller
	CatalogService    *catalog.Service
	IDs               ids.Generator
	Clock             clock.Clock
	HubManager        *sse.HubManager
	// Broadcaster is shared with the API so both notify the same tabs (optional)
	Broadcaster       *sse.Broadcaster
	StaticDir         string // Path to static files directory
}

// NewRouter creates a new web router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)
	flashMiddleware := middleware.Flash()
	deviceMiddleware := middleware.Device(cfg.IDs)
	sessionMiddleware := middleware.Session(cfg.SessionController, cfg.Logger)

	// Apply global middleware to all routes
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	// Create SSE hub manager if not provided
	hubManager := cfg.HubManager
	if hubManager == nil {
		hubManager = sse.NewHubManager(cfg.Logger)
	}
	broadcaster := cfg.Broadcaster
	if broadcaster == nil {
		clk := cfg.Clock
		if clk == nil {
			clk = clock.New()
		}
		broadcaster = sse.NewBroadcaster(hubManager, clk, cfg.Logger)
	}

	// Create handlers
	homeHandler := handler.NewHomeHandler(cfg.CatalogService, cfg.IDs)
	sessionHandler := handler.NewSessionHandler(cfg.SessionController, broadcaster, cfg.Logger)
	playerHandler := handler.NewPlayerHandler(cfg.CatalogService, cfg.IDs)
	eventsHandler := handler.NewEventsHandler(hubManager)

	// Static files
	if cfg.StaticDir != "" {
		staticHandler := http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir)))
		r.PathPrefix("/static/").Handler(staticHandler)
	}

	// Screens render from the restored session
	screens := r.NewRoute().Subrouter()
	screens.Use(flashMiddleware)
	screens.Use(deviceMiddleware)
	screens.Use(sessionMiddleware)
	screens.HandleFunc("/", homeHandler.Home).Methods(http.MethodGet)
	screens.HandleFunc("/players/{id}", playerHandler.Show).Methods(http.MethodGet)

	// Actions load the session themselves under the device lock
	actions := r.NewRoute().Subrouter()
	actions.Use(deviceMiddleware)
	actions.HandleFunc("/role", sessionHandler.SelectRole).Methods(http.MethodPost)
	actions.HandleFunc("/back", sessionHandler.Back).Methods(http.MethodPost)
	actions.HandleFunc("/auth", sessionHandler.Authenticate).Methods(http.MethodPost)
	actions.HandleFunc("/logout", sessionHandler.Logout).Methods(http.MethodPost)
	actions.HandleFunc("/events", eventsHandler.Events).Methods(http.MethodGet)

	return r
}
