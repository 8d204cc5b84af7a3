package sse

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/pr-poehali-dev/major-registration-portal/internal/model"
)

// Hub manages SSE clients for a single device: one client per open tab.
// Clients join and leave under mu, so a hub never gains a client after Close.
type Hub struct {
	device  model.DeviceID
	clients map[*Client]bool
	closed  bool
	mu      sync.RWMutex
	logger  *slog.Logger

	broadcast chan []byte
	done      chan struct{}
	closeOnce sync.Once
}

// NewHub creates a new Hub for a device
func NewHub(device model.DeviceID, logger *slog.Logger) *Hub {
	return &Hub{
		device:    device,
		clients:   make(map[*Client]bool),
		logger:    logger.With(slog.String("device", string(device))),
		broadcast: make(chan []byte, 256),
		done:      make(chan struct{}),
	}
}

// Run starts the hub's event loop
func (h *Hub) Run() {
	h.logger.Debug("sse hub started")
	for {
		select {
		case message := <-h.broadcast:
			h.mu.RLock()
			sentCount := 0
			droppedCount := 0
			for client := range h.clients {
				select {
				case client.send <- message:
					sentCount++
				default:
					droppedCount++
					h.logger.Warn("sse message dropped - client buffer full",
						slog.String("tab", client.tabID))
				}
			}
			h.mu.RUnlock()
			if droppedCount > 0 {
				h.logger.Warn("sse broadcast partial failure",
					slog.Int("sent", sentCount),
					slog.Int("dropped", droppedCount))
			}

		case <-h.done:
			h.logger.Debug("sse hub stopped")
			return
		}
	}
}

// Register adds a client to the hub.
// It returns false if the hub has already been closed.
func (h *Hub) Register(client *Client) bool {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return false
	}
	h.clients[client] = true
	clientCount := len(h.clients)
	h.mu.Unlock()

	h.logger.Info("sse client registered",
		slog.String("tab", client.tabID),
		slog.Int("total_clients", clientCount))
	return true
}

// Unregister removes a client from the hub and closes its channel
func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	if _, ok := h.clients[client]; !ok {
		h.mu.Unlock()
		return
	}
	delete(h.clients, client)
	close(client.send)
	clientCount := len(h.clients)
	h.mu.Unlock()

	h.logger.Info("sse client unregistered",
		slog.String("tab", client.tabID),
		slog.Duration("connection_duration", time.Since(client.connectedAt)),
		slog.Int("total_clients", clientCount))
}

// Broadcast sends a message to all clients
func (h *Hub) Broadcast(message []byte) {
	select {
	case h.broadcast <- message:
	default:
		h.logger.Warn("sse broadcast dropped - hub buffer full")
	}
}

// BroadcastEvent sends an SSE event with a name and data
func (h *Hub) BroadcastEvent(eventName, data string) {
	h.Broadcast(formatSSEMessage(eventName, data))
}

// Close disconnects every client and stops the hub
func (h *Hub) Close() {
	h.closeOnce.Do(func() {
		h.mu.Lock()
		h.closed = true
		clientCount := len(h.clients)
		for client := range h.clients {
			close(client.send)
			delete(h.clients, client)
		}
		h.mu.Unlock()
		close(h.done)
		h.logger.Debug("sse hub closed", slog.Int("disconnected_clients", clientCount))
	})
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// formatSSEMessage formats an SSE message with event name and data
// Multi-line data is properly formatted with "data: " prefix on each line
func formatSSEMessage(eventName, data string) []byte {
	var b strings.Builder
	b.WriteString("event: " + eventName + "\n")
	// SSE requires each line of data to be prefixed with "data: "
	for _, line := range splitLines(data) {
		b.WriteString("data: " + line + "\n")
	}
	b.WriteString("\n")
	return []byte(b.String())
}

// splitLines splits a string into lines, handling various line endings
func splitLines(s string) []string {
	var lines []string
	var current strings.Builder
	for _, r := range s {
		if r == '\n' {
			lines = append(lines, current.String())
			current.Reset()
		} else if r != '\r' {
			current.WriteRune(r)
		}
	}
	if current.Len() > 0 {
		lines = append(lines, current.String())
	}
	if len(lines) == 0 {
		lines = append(lines, "")
	}
	return lines
}

// HubManager manages hubs for all devices with open tabs
type HubManager struct {
	hubs   map[model.DeviceID]*Hub
	mu     sync.RWMutex
	logger *slog.Logger
}

// NewHubManager creates a new HubManager
func NewHubManager(logger *slog.Logger) *HubManager {
	return &HubManager{
		hubs:   make(map[model.DeviceID]*Hub),
		logger: logger.With(slog.String("component", "sse")),
	}
}

// Connect registers a new tab on the device's hub. The hub lookup and the
// registration happen under one lock, so CleanupEmptyHubs cannot close the
// hub in between.
func (m *HubManager) Connect(device model.DeviceID, tabID string) (*Client, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	hub := m.hubLocked(device)
	client := NewClient(hub, tabID)
	if !hub.Register(client) {
		return nil, false
	}
	return client, true
}

// hubLocked returns the device's hub, creating one if it doesn't exist.
// m.mu must be held.
func (m *HubManager) hubLocked(device model.DeviceID) *Hub {
	if hub, ok := m.hubs[device]; ok {
		return hub
	}

	hub := NewHub(device, m.logger)
	m.hubs[device] = hub
	go hub.Run()
	return hub
}

// GetHub returns the hub for a device, or nil if it doesn't exist
func (m *HubManager) GetHub(device model.DeviceID) *Hub {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.hubs[device]
}

// RemoveHub removes and closes a hub
func (m *HubManager) RemoveHub(device model.DeviceID) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if hub, ok := m.hubs[device]; ok {
		hub.Close()
		delete(m.hubs, device)
		m.logger.Debug("sse hub removed", slog.String("device", string(device)))
	}
}

// HubCount returns the number of live hubs
func (m *HubManager) HubCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.hubs)
}

// CleanupEmptyHubs removes hubs with no clients
func (m *HubManager) CleanupEmptyHubs() {
	m.mu.Lock()
	defer m.mu.Unlock()

	removedCount := 0
	for device, hub := range m.hubs {
		if hub.ClientCount() == 0 {
			hub.Close()
			delete(m.hubs, device)
			removedCount++
		}
	}
	if removedCount > 0 {
		m.logger.Info("sse empty hubs cleaned up", slog.Int("removed", removedCount))
	}
}

// RunJanitor calls CleanupEmptyHubs every interval until ctx is done
func (m *HubManager) RunJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			m.CleanupEmptyHubs()
		case <-ctx.Done():
			return
		}
	}
}

// CloseAll closes every hub, disconnecting all clients
func (m *HubManager) CloseAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for device, hub := range m.hubs {
		hub.Close()
		delete(m.hubs, device)
	}
}
