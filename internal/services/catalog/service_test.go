package catalog

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/pr-poehali-dev/major-registration-portal/internal/metrics"
	"github.com/pr-poehali-dev/major-registration-portal/internal/model"
	"github.com/pr-poehali-dev/major-registration-portal/internal/sampledata"
)

type ServiceSuite struct {
	suite.Suite
	metrics *metrics.Mock
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	set, err := sampledata.Default()
	s.Require().NoError(err)
	s.metrics = metrics.NewMock()
	s.service = New(set, s.metrics)
}

func (s *ServiceSuite) TestListPlayersInOrder() {
	players := s.service.ListPlayers()
	s.Require().Len(players, 3)
	s.Equal("s1mple", players[0].Nickname)
	s.Equal("electronic", players[1].Nickname)
	s.Equal("flamie", players[2].Nickname)
}

func (s *ServiceSuite) TestGetPlayer() {
	player, err := s.service.GetPlayer("2")
	s.Require().NoError(err)
	s.Equal("Дмитрий Петров", player.FullName())
	s.Equal(1089, player.Stats.Kills)
	s.Equal([]string{"MAJOR 2024 Spring", "MAJOR 2024 Summer"}, player.Stats.Tournaments)
}

func (s *ServiceSuite) TestGetPlayerNotFound() {
	_, err := s.service.GetPlayer("42")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *ServiceSuite) TestReturnedPlayersAreCopies() {
	player, err := s.service.GetPlayer("1")
	s.Require().NoError(err)
	player.Nickname = "changed"
	player.Stats.Tournaments[0] = "changed"

	again, err := s.service.GetPlayer("1")
	s.Require().NoError(err)
	s.Equal("s1mple", again.Nickname)
	s.Equal("MAJOR 2024 Spring", again.Stats.Tournaments[0])

	list := s.service.ListPlayers()
	list[0].Stats.Kills = 0
	s.Equal(1247, s.service.ListPlayers()[0].Stats.Kills)
}

func (s *ServiceSuite) TestSampleSetIsNotShared() {
	set, err := sampledata.Default()
	s.Require().NoError(err)
	service := New(set, s.metrics)

	set.Players[0].Nickname = "changed"
	set.Tournaments[0].Name = "changed"

	player, err := service.GetPlayer("1")
	s.Require().NoError(err)
	s.Equal("s1mple", player.Nickname)
	s.Equal("MAJOR 2024 Winter Qualifier", service.ListTournaments()[0].Name)
}

func (s *ServiceSuite) TestListTournamentsInOrder() {
	tournaments := s.service.ListTournaments()
	s.Require().Len(tournaments, 3)
	s.Equal("MAJOR 2024 Winter Qualifier", tournaments[0].Name)
	s.Equal("СКОРО", tournaments[0].Status.Label())
	s.Equal("Regional Championship", tournaments[1].Name)
	s.Equal("В ЭФИРЕ", tournaments[1].Status.Label())
	s.Equal("MAJOR 2024 Fall Finals", tournaments[2].Name)
	s.Equal("ЗАВЕРШЁН", tournaments[2].Status.Label())
}

func (s *ServiceSuite) TestGetTournament() {
	t, err := s.service.GetTournament("2")
	s.Require().NoError(err)
	s.Equal("Regional Championship", t.Name)
	s.Equal("10.12.2024", t.Date.Display())

	_, err = s.service.GetTournament("99")
	s.ErrorIs(err, model.ErrTournamentNotFound)
}

func (s *ServiceSuite) TestPlayerDialog() {
	dialog, err := s.service.PlayerDialog("3")
	s.Require().NoError(err)
	s.True(dialog.Open)
	s.Equal("flamie", dialog.Player.Nickname)
	s.Equal("1.17", dialog.Player.Stats.FormatKD())
	s.Equal([]string{"MAJOR 2024 Summer", "Regional Cup"}, dialog.Player.Stats.Tournaments)
	s.Equal(1, s.metrics.DialogOpens("3"))
}

func (s *ServiceSuite) TestPlayerDialogNotFound() {
	dialog, err := s.service.PlayerDialog("0")
	s.ErrorIs(err, model.ErrPlayerNotFound)
	s.Nil(dialog)
	s.Equal(0, s.metrics.DialogOpens("0"))
}
