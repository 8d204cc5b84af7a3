package middleware

import (
	"context"
	"net/http"

	"github.com/pr-poehali-dev/major-registration-portal/internal/dependencies/ids"
	"github.com/pr-poehali-dev/major-registration-portal/internal/model"
)

type contextKey string

const (
	// DeviceCookieName is the cookie that names the browser's storage namespace
	DeviceCookieName = "device"

	deviceContextKey contextKey = "device"

	deviceCookieMaxAge = 86400 * 365
)

// GetDevice retrieves the device ID from the request context
func GetDevice(ctx context.Context) model.DeviceID {
	device, _ := ctx.Value(deviceContextKey).(model.DeviceID)
	return device
}

// WithDevice returns a copy of ctx carrying the device ID
func WithDevice(ctx context.Context, device model.DeviceID) context.Context {
	return context.WithValue(ctx, deviceContextKey, device)
}

// Device returns middleware that identifies the browser.
// A missing or malformed device cookie is replaced with a fresh ID.
func Device(generator ids.Generator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var device model.DeviceID
			if cookie, err := r.Cookie(DeviceCookieName); err == nil && ids.ValidDeviceID(model.DeviceID(cookie.Value)) {
				device = model.DeviceID(cookie.Value)
			} else {
				device = generator.DeviceID()
			}

			// Refresh on every request so the cookie outlives idle periods
			http.SetCookie(w, &http.Cookie{
				Name:     DeviceCookieName,
				Value:    string(device),
				Path:     "/",
				MaxAge:   deviceCookieMaxAge,
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})

			next.ServeHTTP(w, r.WithContext(WithDevice(r.Context(), device)))
		})
	}
}
