package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/pr-poehali-dev/major-registration-portal/internal/model"
	"github.com/pr-poehali-dev/major-registration-portal/internal/services/session"
)

const (
	sessionContextKey contextKey = "session"
)

// GetSession retrieves the device's session from the request context.
// Returns nil if the Session middleware has not run.
func GetSession(ctx context.Context) *model.Session {
	sess, _ := ctx.Value(sessionContextKey).(*model.Session)
	return sess
}

// Session returns middleware that restores the device's session and adds it
// to the context. Requires the Device middleware to be applied first.
func Session(controller *session.Controller, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			device := GetDevice(r.Context())

			sess, err := controller.Load(r.Context(), device)
			if err != nil {
				logger.Error("failed to load session",
					slog.String("device", string(device)),
					slog.Any("error", err))
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				return
			}

			ctx := context.WithValue(r.Context(), sessionContextKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
