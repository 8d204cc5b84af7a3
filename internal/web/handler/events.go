package handler

import (
	"net/http"

	"github.com/pr-poehali-dev/major-registration-portal/internal/web/middleware"
	"github.com/pr-poehali-dev/major-registration-portal/internal/web/sse"
)

// EventsHandler streams session changes to every open tab of a device
type EventsHandler struct {
	hubManager *sse.HubManager
}

// NewEventsHandler creates a new EventsHandler
func NewEventsHandler(hubManager *sse.HubManager) *EventsHandler {
	return &EventsHandler{hubManager: hubManager}
}

// Events handles the SSE connection for one tab
func (h *EventsHandler) Events(w http.ResponseWriter, r *http.Request) {
	device := middleware.GetDevice(r.Context())
	sse.ServeSSE(w, r, h.hubManager, device, r.URL.Query().Get("tab"))
}
