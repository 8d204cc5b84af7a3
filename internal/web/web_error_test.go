package web_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pr-poehali-dev/major-registration-portal/internal/dependencies/mocks"
	"github.com/pr-poehali-dev/major-registration-portal/internal/metrics"
	"github.com/pr-poehali-dev/major-registration-portal/internal/model"
	"github.com/pr-poehali-dev/major-registration-portal/internal/sampledata"
	"github.com/pr-poehali-dev/major-registration-portal/internal/services/catalog"
	"github.com/pr-poehali-dev/major-registration-portal/internal/services/session"
	"github.com/pr-poehali-dev/major-registration-portal/internal/testutil"
	"github.com/pr-poehali-dev/major-registration-portal/internal/web"
)

// brokenStorage fails every operation
type brokenStorage struct{}

func (brokenStorage) GetItems(context.Context, model.DeviceID) (map[string]string, error) {
	return nil, errors.New("storage offline")
}

func (brokenStorage) SetItems(context.Context, model.DeviceID, map[string]string) error {
	return errors.New("storage offline")
}

func (brokenStorage) RemoveItems(context.Context, model.DeviceID, ...string) error {
	return errors.New("storage offline")
}

func newBrokenRouter(t *testing.T) http.Handler {
	t.Helper()
	set, err := sampledata.Default()
	require.NoError(t, err)
	m := metrics.NewMock()
	return web.NewRouter(web.RouterConfig{
		Logger:            testutil.NopLogger(),
		SessionController: session.NewController(brokenStorage{}, m, testutil.NopLogger()),
		CatalogService:    catalog.New(set, m),
		IDs:               mocks.NewMockIDs(),
	})
}

func TestStorageFailureOnPage(t *testing.T) {
	router := newBrokenRouter(t)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestStorageFailureOnAction(t *testing.T) {
	router := newBrokenRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/role", nil)
	req.PostForm = url.Values{"role": {"player"}}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, "h1", "Внутренняя ошибка сервера")
}

func TestMethodNotAllowed(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/logout")
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestUnknownRoute(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/lobby/ABC123")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestBackOutsideAuthIsHarmless(t *testing.T) {
	ts := newWebTestServer(t)
	ts.login("player", "s1mple")

	rr := ts.post("/back", nil)
	assert.Equal(t, http.StatusSeeOther, rr.Code)

	doc := ts.home()
	assertContainsElement(t, doc, "#dashboard")
}

func TestRepairedSessionRendersValidScreen(t *testing.T) {
	ts := newWebTestServer(t)
	ts.home()

	// A logged-in flag without a role cannot be shown
	device := model.DeviceID(ts.cookies.device())
	require.NoError(t, ts.app.Storage.SetItems(context.Background(), device, map[string]string{
		"currentView": "dashboard",
		"isLoggedIn":  "true",
		"currentUser": "ghost",
	}))

	doc := ts.home()
	assertContainsElement(t, doc, "#role-select")
	assert.Equal(t, 1, ts.app.MockMetrics.SessionRepairs())
}

func TestStaticFileServing(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "css"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "css", "major.css"), []byte("body{}"), 0o600))

	ts := newWebTestServer(t)
	router := web.NewRouter(web.RouterConfig{
		Logger:            testutil.NopLogger(),
		SessionController: ts.app.SessionController,
		CatalogService:    ts.app.CatalogService,
		IDs:               ts.app.IDs,
		StaticDir:         dir,
	})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/static/css/major.css", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "body{}", rr.Body.String())
}
