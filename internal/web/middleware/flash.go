package middleware

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/pr-poehali-dev/major-registration-portal/internal/web/templates/layout"
)

const (
	flashCookieName = "flash"
	flashContextKey = contextKey("flash")
)

// GetFlash retrieves the flash message from the request context
// Returns nil if no flash message is set
func GetFlash(ctx context.Context) *layout.FlashMessage {
	flash, _ := ctx.Value(flashContextKey).(*layout.FlashMessage)
	return flash
}

// SetFlash sets a toast to be displayed on the next request
func SetFlash(w http.ResponseWriter, flashType, title, message string) {
	// Query-encoded so non-ASCII text survives cookie sanitising
	value := url.Values{
		"type":    {flashType},
		"title":   {title},
		"message": {message},
	}.Encode()
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   60, // 1 minute expiry
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Flash returns middleware that reads and clears flash messages
func Flash() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var flash *layout.FlashMessage

			cookie, err := r.Cookie(flashCookieName)
			if err == nil && cookie.Value != "" {
				flash = parseFlash(cookie.Value)

				// Clear the cookie
				http.SetCookie(w, &http.Cookie{
					Name:     flashCookieName,
					Value:    "",
					Path:     "/",
					MaxAge:   -1,
					Expires:  time.Unix(0, 0),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := context.WithValue(r.Context(), flashContextKey, flash)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func parseFlash(value string) *layout.FlashMessage {
	values, err := url.ParseQuery(value)
	if err != nil {
		return nil
	}
	flash := &layout.FlashMessage{
		Type:    values.Get("type"),
		Title:   values.Get("title"),
		Message: values.Get("message"),
	}
	if flash.Title == "" && flash.Message == "" {
		return nil
	}
	if flash.Type == "" {
		flash.Type = "info"
	}
	return flash
}
