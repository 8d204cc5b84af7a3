package sse

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/pr-poehali-dev/major-registration-portal/internal/dependencies/clock"
	"github.com/pr-poehali-dev/major-registration-portal/internal/model"
)

// EventSessionChanged is the SSE event name sent when a device's session changes
const EventSessionChanged = "session-changed"

// Broadcaster tells a device's other tabs that its session changed
type Broadcaster struct {
	hubManager *HubManager
	clock      clock.Clock
	logger     *slog.Logger
}

// NewBroadcaster creates a new Broadcaster
func NewBroadcaster(hubManager *HubManager, clock clock.Clock, logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		hubManager: hubManager,
		clock:      clock,
		logger:     logger.With(slog.String("component", "sse-broadcaster")),
	}
}

// SessionChangedData is the JSON body of a session-changed event
type SessionChangedData struct {
	View        string `json:"view"`
	Role        string `json:"role,omitempty"`
	IsLoggedIn  bool   `json:"isLoggedIn"`
	CurrentUser string `json:"currentUser,omitempty"`
	// Origin is the tab that made the change; that tab ignores the event
	Origin    string `json:"origin,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

// NewSessionChangedData builds the event body from the session after the change
func NewSessionChangedData(sess *model.Session, origin string, at time.Time) SessionChangedData {
	return SessionChangedData{
		View:        string(sess.View),
		Role:        model.RoleName(sess.Role),
		IsLoggedIn:  sess.IsLoggedIn,
		CurrentUser: sess.CurrentUser,
		Origin:      origin,
		Timestamp:   at.Unix(),
	}
}

// BroadcastSessionChanged notifies every open tab of the device.
// Devices without open tabs are skipped.
func (b *Broadcaster) BroadcastSessionChanged(device model.DeviceID, sess *model.Session, origin string) {
	hub := b.hubManager.GetHub(device)
	if hub == nil {
		return
	}

	data, err := json.Marshal(NewSessionChangedData(sess, origin, b.clock.Now()))
	if err != nil {
		b.logger.Error("sse failed to encode session event",
			slog.String("device", string(device)),
			slog.Any("error", err))
		return
	}

	hub.BroadcastEvent(EventSessionChanged, string(data))
}
