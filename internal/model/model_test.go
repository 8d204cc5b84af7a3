package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type ModelSuite struct {
	suite.Suite
}

func TestModelSuite(t *testing.T) {
	suite.Run(t, new(ModelSuite))
}

// Stats tests

func (s *ModelSuite) TestFormatKDTwoDecimals() {
	stats := Stats{Kills: 1247, Deaths: 892}
	s.Equal("1.40", stats.FormatKD())

	stats = Stats{Kills: 1089, Deaths: 945}
	s.Equal("1.15", stats.FormatKD())

	stats = Stats{Kills: 967, Deaths: 823}
	s.Equal("1.17", stats.FormatKD())
}

func (s *ModelSuite) TestFormatKDZeroDeaths() {
	s.Equal("Infinity", Stats{Kills: 10}.FormatKD())
	s.Equal("NaN", Stats{}.FormatKD())
}

func (s *ModelSuite) TestMatches() {
	s.Equal(73, Stats{Wins: 45, Losses: 23, Draws: 5}.Matches())
}

func (s *ModelSuite) TestCloneDoesNotShareTournaments() {
	p := &Player{ID: "1", Stats: Stats{Tournaments: []string{"A", "B"}}}
	c := p.Clone()
	c.Stats.Tournaments[0] = "changed"
	s.Equal("A", p.Stats.Tournaments[0])
}

// Tournament tests

func (s *ModelSuite) TestStatusLabels() {
	s.Equal("В ЭФИРЕ", TournamentLive.Label())
	s.Equal("СКОРО", TournamentUpcoming.Label())
	s.Equal("ЗАВЕРШЁН", TournamentCompleted.Label())
	s.False(TournamentStatus("cancelled").Valid())
}

func (s *ModelSuite) TestDateDisplay() {
	d, err := ParseDate("2024-12-15")
	s.Require().NoError(err)
	s.Equal("15.12.2024", d.Display())
	s.Equal("2024-12-15", d.String())
	s.Equal(NewDate(2024, time.December, 15), d)
}

func (s *ModelSuite) TestParseDateInvalid() {
	_, err := ParseDate("15/12/2024")
	s.Error(err)
}

// Role tests

func (s *ModelSuite) TestParseRole() {
	r, err := ParseRole("player")
	s.Require().NoError(err)
	s.Equal(PlayerRole{}, r)

	r, err = ParseRole(" Admin ")
	s.Require().NoError(err)
	s.Equal(AdminRole{}, r)

	_, err = ParseRole("spectator")
	s.ErrorIs(err, ErrInvalidRole)
}

func (s *ModelSuite) TestOnlyAdminCanManage() {
	s.False(PlayerRole{}.CanManage())
	s.True(AdminRole{}.CanManage())
}

func (s *ModelSuite) TestRoleName() {
	s.Equal("", RoleName(nil))
	s.Equal("admin", RoleName(AdminRole{}))
}

// Session tests

func (s *ModelSuite) TestNewSessionIsValid() {
	sess := NewSession()
	s.Equal(ViewRoleSelect, sess.View)
	s.True(sess.Valid())
	s.False(sess.Repair())
}

func (s *ModelSuite) TestRepairLoggedInWithoutRoleResets() {
	sess := &Session{View: ViewDashboard, IsLoggedIn: true, CurrentUser: "x"}
	s.True(sess.Repair())
	s.Equal(NewSession(), sess)
}

func (s *ModelSuite) TestRepairLoggedInForcesDashboard() {
	sess := &Session{View: ViewAuth, Role: PlayerRole{}, IsLoggedIn: true, CurrentUser: "s1mple"}
	s.True(sess.Repair())
	s.Equal(ViewDashboard, sess.View)
	s.Equal("s1mple", sess.CurrentUser)
}

func (s *ModelSuite) TestRepairDashboardWithoutLogin() {
	sess := &Session{View: ViewDashboard, Role: AdminRole{}}
	s.True(sess.Repair())
	s.Equal(ViewAuth, sess.View)

	sess = &Session{View: ViewDashboard}
	s.True(sess.Repair())
	s.Equal(ViewRoleSelect, sess.View)
}

func (s *ModelSuite) TestRepairAuthWithoutRole() {
	sess := &Session{View: ViewAuth}
	s.True(sess.Repair())
	s.Equal(ViewRoleSelect, sess.View)
}

func (s *ModelSuite) TestRepairUnknownView() {
	sess := &Session{View: "lobby", Role: PlayerRole{}}
	s.True(sess.Repair())
	s.Equal(ViewRoleSelect, sess.View)
	s.Equal(PlayerRole{}, sess.Role)
}

// Auth form tests

func (s *ModelSuite) TestDisplayNameFallsBackToDefault() {
	s.Equal("Admin", AuthForm{}.DisplayName())
	s.Equal("Admin", AuthForm{Nickname: "   "}.DisplayName())
	s.Equal("s1mple", AuthForm{Nickname: " s1mple "}.DisplayName())
}

func (s *ModelSuite) TestParseAuthMode() {
	s.Equal(AuthModeRegister, ParseAuthMode("register"))
	s.Equal(AuthModeLogin, ParseAuthMode(""))
	s.Equal(AuthModeLogin, ParseAuthMode("other"))
}

// Dialog tests

func (s *ModelSuite) TestDialogOpenFor() {
	var d Dialog
	s.False(d.Visible())

	p := &Player{ID: "1"}
	d.OpenFor(p)
	s.True(d.Visible())
	s.Same(p, d.Player)

	d.OpenFor(nil)
	s.False(d.Visible())

	var missing *Dialog
	s.False(missing.Visible())
}
