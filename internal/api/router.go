package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pr-poehali-dev/major-registration-portal/internal/api/apierr"
	"github.com/pr-poehali-dev/major-registration-portal/internal/api/handler"
	"github.com/pr-poehali-dev/major-registration-portal/internal/api/middleware"
	"github.com/pr-poehali-dev/major-registration-portal/internal/api/response"
	"github.com/pr-poehali-dev/major-registration-portal/internal/dependencies/ids"
	"github.com/pr-poehali-dev/major-registration-portal/internal/services/catalog"
	"github.com/pr-poehali-dev/major-registration-portal/internal/services/session"
	"github.com/pr-poehali-dev/major-registration-portal/internal/web/sse"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger            *slog.Logger
	SessionController *session.Controller
	CatalogService    *catalog.Service
	IDs               ids.Generator
	// Broadcaster notifies open browser tabs of API-driven changes (optional)
	Broadcaster *sse.Broadcaster
	// Health checks the storage backend (optional)
	Health func(ctx context.Context) error
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	sessionHandler := handler.NewSessionHandler(cfg.SessionController, cfg.Broadcaster)
	catalogHandler := handler.NewCatalogHandler(cfg.CatalogService)

	// Create middleware
	deviceMiddleware := middleware.Device(cfg.IDs)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)
	api.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		apierr.WriteError(w, apierr.NewNotFoundError())
	})

	// Health check endpoint
	api.HandleFunc("/health", healthHandler(cfg.Health, cfg.Logger)).Methods(http.MethodGet)

	// Catalog routes (no device needed)
	api.HandleFunc("/players", catalogHandler.ListPlayers).Methods(http.MethodGet)
	api.HandleFunc("/players/{id}", catalogHandler.GetPlayer).Methods(http.MethodGet)
	api.HandleFunc("/players/{id}/stats", catalogHandler.GetPlayerStats).Methods(http.MethodGet)
	api.HandleFunc("/tournaments", catalogHandler.ListTournaments).Methods(http.MethodGet)
	api.HandleFunc("/tournaments/{id}", catalogHandler.GetTournament).Methods(http.MethodGet)

	// Session routes (device-scoped)
	sessions := api.PathPrefix("/session").Subrouter()
	sessions.Use(deviceMiddleware)
	sessions.HandleFunc("", sessionHandler.Get).Methods(http.MethodGet)
	sessions.HandleFunc("/role", sessionHandler.SelectRole).Methods(http.MethodPost)
	sessions.HandleFunc("/back", sessionHandler.Back).Methods(http.MethodPost)
	sessions.HandleFunc("/auth", sessionHandler.Authenticate).Methods(http.MethodPost)
	sessions.HandleFunc("/logout", sessionHandler.Logout).Methods(http.MethodPost)

	return r
}

func healthHandler(check func(ctx context.Context) error, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if check != nil {
			if err := check(r.Context()); err != nil {
				logger.Warn("health check failed", slog.Any("error", err))
				response.JSON(w, http.StatusServiceUnavailable, response.Health{Status: "unavailable"})
				return
			}
		}
		response.JSON(w, http.StatusOK, response.Health{Status: "ok"})
	}
}
