package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/pr-poehali-dev/major-registration-portal/internal/api/apierr"
	"github.com/pr-poehali-dev/major-registration-portal/internal/dependencies/ids"
	"github.com/pr-poehali-dev/major-registration-portal/internal/model"
)

type contextKey string

const (
	// DeviceHeader carries the device ID on API requests and responses
	DeviceHeader = "X-Device-ID"
	// DeviceCookie is the browser's device cookie, shared with the web interface
	DeviceCookie = "device"

	deviceContextKey contextKey = "device"
)

// Device creates middleware that identifies the calling device.
// The X-Device-ID header wins over the device cookie; a request with
// neither gets a fresh ID. The resolved ID is echoed in X-Device-ID.
func Device(generator ids.Generator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			device, ok := extractDevice(r)
			if !ok {
				apierr.WriteError(w, model.ErrInvalidDevice)
				return
			}
			if device == "" {
				device = generator.DeviceID()
			}

			w.Header().Set(DeviceHeader, string(device))
			ctx := context.WithValue(r.Context(), deviceContextKey, device)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractDevice returns the device from the request, "" if none was sent,
// and false if the sent value is malformed
func extractDevice(r *http.Request) (model.DeviceID, bool) {
	if header := strings.TrimSpace(r.Header.Get(DeviceHeader)); header != "" {
		device := model.DeviceID(header)
		return device, ids.ValidDeviceID(device)
	}

	// Fall back to cookie; a bad cookie is replaced rather than rejected
	if cookie, err := r.Cookie(DeviceCookie); err == nil {
		device := model.DeviceID(cookie.Value)
		if ids.ValidDeviceID(device) {
			return device, true
		}
	}

	return "", true
}

// GetDevice returns the device ID from the request context
func GetDevice(ctx context.Context) model.DeviceID {
	device, _ := ctx.Value(deviceContextKey).(model.DeviceID)
	return device
}

// MustGetDevice returns the device ID or panics
func MustGetDevice(ctx context.Context) model.DeviceID {
	device := GetDevice(ctx)
	if device == "" {
		panic("no device in context - device middleware not applied?")
	}
	return device
}
