package sse

import (
	"net/http"
	"strconv"
	"time"

	"github.com/pr-poehali-dev/major-registration-portal/internal/model"
)

const (
	// Time between keepalive pings
	pingPeriod = 30 * time.Second

	// Buffer size for outgoing messages
	sendBufferSize = 16

	// Reconnect delay suggested to the browser, in milliseconds
	retryMillis = 3000
)

// Client represents one connected browser tab
type Client struct {
	hub         *Hub
	tabID       string
	send        chan []byte
	connectedAt time.Time
}

// NewClient creates a new SSE client
func NewClient(hub *Hub, tabID string) *Client {
	return &Client{
		hub:         hub,
		tabID:       tabID,
		send:        make(chan []byte, sendBufferSize),
		connectedAt: time.Now(),
	}
}

// ServeSSE connects one tab of a device and streams its events
func ServeSSE(w http.ResponseWriter, r *http.Request, hubs *HubManager, device model.DeviceID, tabID string) {
	// Check if SSE is supported
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}

	// Set SSE headers
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no") // Disable nginx buffering

	client, ok := hubs.Connect(device, tabID)
	if !ok {
		http.Error(w, "Stream closed", http.StatusServiceUnavailable)
		return
	}

	// Ensure cleanup on disconnect
	defer client.hub.Unregister(client)

	// Send reconnect hint and initial connection event
	_, _ = w.Write([]byte("retry: " + strconv.Itoa(retryMillis) + "\n\n"))
	_, _ = w.Write([]byte("event: connected\ndata: {\"status\":\"connected\"}\n\n"))
	flusher.Flush()

	// Create ticker for keepalive
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case message, ok := <-client.send:
			if !ok {
				// Hub closed the channel
				return
			}
			if _, err := w.Write(message); err != nil {
				return
			}
			flusher.Flush()

		case <-ticker.C:
			// Send keepalive comment
			if _, err := w.Write([]byte(": keepalive\n\n")); err != nil {
				return
			}
			flusher.Flush()

		case <-r.Context().Done():
			// Client disconnected
			return
		}
	}
}
