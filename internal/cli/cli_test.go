package cli_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/pr-poehali-dev/major-registration-portal/internal/api"
	"github.com/pr-poehali-dev/major-registration-portal/internal/cli"
	"github.com/pr-poehali-dev/major-registration-portal/internal/factory"
	"github.com/pr-poehali-dev/major-registration-portal/internal/testutil"
	"github.com/pr-poehali-dev/major-registration-portal/internal/web"
)

type CLISuite struct {
	suite.Suite
	app        *factory.TestApp
	server     *httptest.Server
	deviceFile string
}

func TestCLISuite(t *testing.T) {
	suite.Run(t, new(CLISuite))
}

func (s *CLISuite) SetupTest() {
	s.T().Setenv("MAJORCTL_DEVICE", "")
	s.app = factory.NewTestApp()

	logger := testutil.NopLogger()
	mux := http.NewServeMux()
	mux.Handle("/api/", api.NewRouter(api.RouterConfig{
		Logger:            logger,
		SessionController: s.app.SessionController,
		CatalogService:    s.app.CatalogService,
		IDs:               s.app.IDs,
		Broadcaster:       s.app.Broadcaster,
		Health:            s.app.Ping,
	}))
	mux.Handle("/", web.NewRouter(web.RouterConfig{
		Logger:            logger,
		SessionController: s.app.SessionController,
		CatalogService:    s.app.CatalogService,
		IDs:               s.app.IDs,
		HubManager:        s.app.HubManager,
		Broadcaster:       s.app.Broadcaster,
	}))
	s.server = httptest.NewServer(mux)
	s.deviceFile = filepath.Join(s.T().TempDir(), "device")
}

func (s *CLISuite) TearDownTest() {
	s.server.Close()
	_ = s.app.Close()
}

func (s *CLISuite) run(output string, args ...string) (string, error) {
	var buf bytes.Buffer
	cmd := cli.NewRootCmd()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(append([]string{
		"--server", s.server.URL,
		"--device-file", s.deviceFile,
		"--output", output,
	}, args...))
	err := cmd.Execute()
	return buf.String(), err
}

func (s *CLISuite) TestHealth() {
	out, err := s.run("text", "health")
	s.Require().NoError(err)
	s.Contains(out, "Status: ok")
}

func (s *CLISuite) TestDeviceIsSavedOnFirstCall() {
	out, err := s.run("text", "session", "show")
	s.Require().NoError(err)
	s.Contains(out, "View: role-select")

	data, err := os.ReadFile(s.deviceFile)
	s.Require().NoError(err)
	s.Equal("00000000-0000-4000-8000-000000000001", string(data))

	// Second call reuses it instead of getting a new one
	out, err = s.run("text", "session", "show")
	s.Require().NoError(err)
	s.Contains(out, "Device: 00000000-0000-4000-8000-000000000001")
}

func (s *CLISuite) TestSessionFlow() {
	out, err := s.run("text", "session", "role", "admin")
	s.Require().NoError(err)
	s.Contains(out, "View: auth")
	s.Contains(out, "Role: Администратор (admin)")

	out, err = s.run("text", "session", "auth", "--nickname", "organizer")
	s.Require().NoError(err)
	s.Contains(out, "View: dashboard")
	s.Contains(out, "User: organizer")
	s.Contains(out, "Management: available")

	out, err = s.run("json", "session", "show")
	s.Require().NoError(err)
	var sess cli.Session
	s.Require().NoError(json.Unmarshal([]byte(out), &sess))
	s.True(sess.IsLoggedIn)
	s.Equal("organizer", sess.CurrentUser)

	out, err = s.run("text", "session", "logout")
	s.Require().NoError(err)
	s.Contains(out, "View: role-select")
	s.Contains(out, "User: not logged in")
}

func (s *CLISuite) TestSessionBack() {
	_, err := s.run("text", "session", "role", "player")
	s.Require().NoError(err)

	out, err := s.run("text", "session", "back")
	s.Require().NoError(err)
	s.Contains(out, "View: role-select")
	s.Contains(out, "Role: -")
}

func (s *CLISuite) TestAuthWithoutRoleFails() {
	_, err := s.run("text", "session", "auth", "--nickname", "x")
	s.Require().Error(err)
	s.Contains(err.Error(), "ROLE_NOT_SELECTED")
}

func (s *CLISuite) TestAuthRejectsBadMode() {
	_, err := s.run("text", "session", "auth", "--mode", "guest")
	s.Require().Error(err)
	s.Contains(err.Error(), "--mode")
}

func (s *CLISuite) TestPlayersList() {
	out, err := s.run("json", "players", "list")
	s.Require().NoError(err)

	var players []cli.Player
	s.Require().NoError(json.Unmarshal([]byte(out), &players))
	s.Require().Len(players, 3)
	s.Equal("s1mple", players[0].Nickname)

	out, err = s.run("text", "players", "list")
	s.Require().NoError(err)
	s.Contains(out, "Players (3):")
	s.Contains(out, "electronic")
}

func (s *CLISuite) TestPlayerStats() {
	out, err := s.run("text", "players", "stats", "1")
	s.Require().NoError(err)
	s.Contains(out, "s1mple - Александр Иванов")
	s.Contains(out, "K/D: 1.40")
	s.Contains(out, "(73 matches)")
}

func (s *CLISuite) TestUnknownPlayer() {
	_, err := s.run("text", "players", "show", "42")
	s.Require().Error(err)
	s.Contains(err.Error(), "PLAYER_NOT_FOUND")
}

func (s *CLISuite) TestTournaments() {
	out, err := s.run("text", "tournaments")
	s.Require().NoError(err)
	s.Contains(out, "Tournaments (3):")
	s.Contains(out, "15.12.2024 14:00")
	s.Contains(out, "MAJOR 2024 Winter Qualifier")

	out, err = s.run("text", "tournaments", "show", "3")
	s.Require().NoError(err)
	s.Contains(out, "Tournament: MAJOR 2024 Fall Finals (3)")
}
