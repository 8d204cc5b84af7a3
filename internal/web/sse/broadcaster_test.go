package sse

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pr-poehali-dev/major-registration-portal/internal/dependencies/mocks"
	"github.com/pr-poehali-dev/major-registration-portal/internal/model"
	"github.com/pr-poehali-dev/major-registration-portal/internal/testutil"
)

func TestBroadcaster_BroadcastSessionChanged(t *testing.T) {
	manager := NewHubManager(testutil.NopLogger())
	defer manager.CloseAll()
	clk := mocks.NewMockClock(time.Date(2024, 12, 10, 16, 0, 0, 0, time.UTC))
	broadcaster := NewBroadcaster(manager, clk, testutil.NopLogger())

	client, ok := manager.Connect("device-1", "tab-2")
	require.True(t, ok)

	sess := &model.Session{
		View:        model.ViewDashboard,
		Role:        model.AdminRole{},
		IsLoggedIn:  true,
		CurrentUser: "Admin",
	}
	broadcaster.BroadcastSessionChanged("device-1", sess, "tab-1")

	select {
	case msg := <-client.send:
		text := string(msg)
		require.True(t, strings.HasPrefix(text, "event: session-changed\ndata: "))

		body := strings.TrimSuffix(strings.TrimPrefix(text, "event: session-changed\ndata: "), "\n\n")
		var data SessionChangedData
		require.NoError(t, json.Unmarshal([]byte(body), &data))
		assert.Equal(t, SessionChangedData{
			View:        "dashboard",
			Role:        "admin",
			IsLoggedIn:  true,
			CurrentUser: "Admin",
			Origin:      "tab-1",
			Timestamp:   clk.Now().Unix(),
		}, data)
	case <-time.After(100 * time.Millisecond):
		t.Fatal("client did not receive session event")
	}
}

func TestBroadcaster_NoHubIsNoop(t *testing.T) {
	manager := NewHubManager(testutil.NopLogger())
	broadcaster := NewBroadcaster(manager, mocks.NewMockClock(time.Now()), testutil.NopLogger())

	broadcaster.BroadcastSessionChanged("device-1", model.NewSession(), "")

	assert.Equal(t, 0, manager.HubCount())
}

func TestNewSessionChangedData(t *testing.T) {
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	sess := &model.Session{View: model.ViewAuth, Role: model.PlayerRole{}}

	data := NewSessionChangedData(sess, "", at)

	assert.Equal(t, SessionChangedData{
		View:      "auth",
		Role:      "player",
		Timestamp: at.Unix(),
	}, data)

	body, err := json.Marshal(data)
	require.NoError(t, err)
	assert.JSONEq(t, `{"view":"auth","role":"player","isLoggedIn":false,"timestamp":1704067200}`, string(body))
}
