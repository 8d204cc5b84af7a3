package web_test

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pr-poehali-dev/major-registration-portal/internal/model"
	"github.com/pr-poehali-dev/major-registration-portal/internal/web/sse"
)

// TestSSE_EndpointHeaders verifies the SSE endpoint returns correct headers
func TestSSE_EndpointHeaders(t *testing.T) {
	ts := newWebTestServer(t)
	ts.home()

	req := httptest.NewRequest(http.MethodGet, "/events?tab=tab-1", nil)
	ts.cookies.addTo(req)

	// Use a context with timeout since SSE is a long-running connection
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	req = req.WithContext(ctx)

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)

	assert.Equal(t, "text/event-stream", rr.Header().Get("Content-Type"))
	assert.Equal(t, "no-cache", rr.Header().Get("Cache-Control"))
	assert.Equal(t, "keep-alive", rr.Header().Get("Connection"))
	assert.Equal(t, "no", rr.Header().Get("X-Accel-Buffering"))
}

// TestSSE_InitialEvents verifies the SSE endpoint sends retry and connected events
func TestSSE_InitialEvents(t *testing.T) {
	ts := newWebTestServer(t)
	ts.home()

	req := httptest.NewRequest(http.MethodGet, "/events?tab=tab-1", nil)
	ts.cookies.addTo(req)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	req = req.WithContext(ctx)

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)

	body := rr.Body.String()
	assert.Contains(t, body, "retry: 3000", "Expected retry header in SSE response")
	assert.Contains(t, body, "event: connected", "Expected connected event in SSE response")
	assert.Contains(t, body, `data: {"status":"connected"}`, "Expected connected event data")
}

// TestSSE_HubPerDevice verifies the hub is created on first connection and keyed by device
func TestSSE_HubPerDevice(t *testing.T) {
	ts := newWebTestServer(t)
	ts.home()
	device := model.DeviceID(ts.cookies.device())

	assert.Nil(t, ts.app.HubManager.GetHub(device), "Hub should not exist before SSE connection")

	req := httptest.NewRequest(http.MethodGet, "/events?tab=tab-1", nil)
	ts.cookies.addTo(req)
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req.WithContext(ctx))

	assert.NotNil(t, ts.app.HubManager.GetHub(device), "Hub should exist after SSE connection")
	assert.Equal(t, 1, ts.app.HubManager.HubCount())
}

// TestSSE_OtherTabNotified verifies a change in one tab reaches the device's other tabs
func TestSSE_OtherTabNotified(t *testing.T) {
	ts := newWebTestServer(t)
	server := httptest.NewServer(ts.handler)
	defer server.Close()

	// Establish the device
	ts.home()
	device := ts.cookies.device()

	client := &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	// Tab 2 listens
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, server.URL+"/events?tab=tab-2", nil)
	req.AddCookie(&http.Cookie{Name: "device", Value: device})
	resp, err := client.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)
	readUntil(t, reader, "event: connected")
	_, _ = reader.ReadString('\n') // connected data

	// Wait for the hub to register the tab
	hub := ts.app.HubManager.GetHub(model.DeviceID(device))
	require.NotNil(t, hub)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	// Tab 1 selects a role
	form := url.Values{"role": {"admin"}, "tab": {"tab-1"}}
	postReq, _ := http.NewRequest(http.MethodPost, server.URL+"/role", strings.NewReader(form.Encode()))
	postReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	postReq.AddCookie(&http.Cookie{Name: "device", Value: device})
	postResp, err := client.Do(postReq)
	require.NoError(t, err)
	_ = postResp.Body.Close()
	require.Equal(t, http.StatusSeeOther, postResp.StatusCode)

	readUntil(t, reader, "event: "+sse.EventSessionChanged)
	line, err := reader.ReadString('\n')
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(line, "data: "))

	var data sse.SessionChangedData
	require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(strings.TrimSpace(line), "data: ")), &data))
	assert.Equal(t, "auth", data.View)
	assert.Equal(t, "admin", data.Role)
	assert.Equal(t, "tab-1", data.Origin)
}

// TestSSE_NoOpBackNotBroadcast verifies Back outside the auth view sends nothing to other tabs
func TestSSE_NoOpBackNotBroadcast(t *testing.T) {
	ts := newWebTestServer(t)
	server := httptest.NewServer(ts.handler)
	defer server.Close()

	ts.home()
	device := ts.cookies.device()

	client := &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	post := func(path string, form url.Values) {
		req, _ := http.NewRequest(http.MethodPost, server.URL+path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.AddCookie(&http.Cookie{Name: "device", Value: device})
		resp, err := client.Do(req)
		require.NoError(t, err)
		_ = resp.Body.Close()
		require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, server.URL+"/events?tab=tab-2", nil)
	req.AddCookie(&http.Cookie{Name: "device", Value: device})
	resp, err := client.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	reader := bufio.NewReader(resp.Body)
	readUntil(t, reader, "event: connected")
	_, _ = reader.ReadString('\n')

	// Still on role select, so Back changes nothing
	post("/back", url.Values{"tab": {"tab-1"}})
	// A real change follows; it must be the first event tab 2 sees
	post("/role", url.Values{"role": {"player"}, "tab": {"tab-1"}})

	readUntil(t, reader, "event: "+sse.EventSessionChanged)
	line, err := reader.ReadString('\n')
	require.NoError(t, err)

	var data sse.SessionChangedData
	require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(strings.TrimSpace(line), "data: ")), &data))
	assert.Equal(t, "auth", data.View)
	assert.Equal(t, "player", data.Role)
}

// TestSSE_MultipleTabs verifies several tabs of one device share a hub
func TestSSE_MultipleTabs(t *testing.T) {
	ts := newWebTestServer(t)
	ts.home()
	second := ts.sameDevice()

	done := make(chan struct{})
	for i, tab := range []*webTestServer{ts, second} {
		go func(tab *webTestServer, name string) {
			req := httptest.NewRequest(http.MethodGet, "/events?tab="+name, nil)
			tab.cookies.addTo(req)
			ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
			defer cancel()
			rr := httptest.NewRecorder()
			tab.handler.ServeHTTP(rr, req.WithContext(ctx))
			done <- struct{}{}
		}(tab, "tab-"+string(rune('1'+i)))
	}
	<-done
	<-done

	assert.Equal(t, 1, ts.app.HubManager.HubCount())
}

// readUntil reads lines until one contains want
func readUntil(t *testing.T, reader *bufio.Reader, want string) {
	t.Helper()
	for {
		line, err := reader.ReadString('\n')
		require.NoError(t, err, "stream ended before %q", want)
		if strings.Contains(line, want) {
			return
		}
	}
}
