package middleware

import (
	"log/slog"
	"net/http"

	"github.com/pr-poehali-dev/major-registration-portal/internal/middleware"
)

// Recovery creates panic recovery middleware for the web interface
// Returns an HTML error page on panic
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger, ErrorPage)
}

// ErrorPage writes the generic 500 page
func ErrorPage(w http.ResponseWriter, _ *http.Request, _ any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write([]byte(`<!DOCTYPE html>
<html lang="ru">
<head><meta charset="utf-8"><title>Ошибка | MAJOR</title></head>
<body>
<h1>Внутренняя ошибка сервера</h1>
<p>Что-то пошло не так. Попробуйте позже.</p>
<p><a href="/">На главную</a></p>
</body>
</html>`))
}
