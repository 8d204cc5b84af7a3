package sampledata

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/pr-poehali-dev/major-registration-portal/internal/model"
)

type SampleDataSuite struct {
	suite.Suite
}

func TestSampleDataSuite(t *testing.T) {
	suite.Run(t, new(SampleDataSuite))
}

func (s *SampleDataSuite) TestDefaultPlayers() {
	set, err := Default()
	s.Require().NoError(err)
	s.Require().Len(set.Players, 3)

	first := set.Players[0]
	s.Equal(model.PlayerID("1"), first.ID)
	s.Equal("Александр", first.FirstName)
	s.Equal("Иванов", first.LastName)
	s.Equal("s1mple", first.Nickname)
	s.Equal("AWP", first.FavoriteWeapon)
	s.Equal("ZywOo", first.FavoritePlayer)
	s.Equal(model.Stats{
		Kills: 1247, Deaths: 892, Wins: 45, Losses: 23, Draws: 5,
		Tournaments: []string{"MAJOR 2024 Spring", "MAJOR 2024 Summer", "Regional Cup"},
	}, first.Stats)

	s.Equal("electronic", set.Players[1].Nickname)
	s.Equal("flamie", set.Players[2].Nickname)
}

func (s *SampleDataSuite) TestDefaultTournamentsInOrder() {
	set, err := Default()
	s.Require().NoError(err)
	s.Require().Len(set.Tournaments, 3)

	s.Equal("MAJOR 2024 Winter Qualifier", set.Tournaments[0].Name)
	s.Equal(model.TournamentUpcoming, set.Tournaments[0].Status)
	s.Equal(model.NewDate(2024, time.December, 15), set.Tournaments[0].Date)
	s.Equal("14:00", set.Tournaments[0].Time)

	s.Equal("Regional Championship", set.Tournaments[1].Name)
	s.Equal(model.TournamentLive, set.Tournaments[1].Status)

	s.Equal("MAJOR 2024 Fall Finals", set.Tournaments[2].Name)
	s.Equal(model.TournamentCompleted, set.Tournaments[2].Status)
	s.Equal("28.11.2024", set.Tournaments[2].Date.Display())
}

func (s *SampleDataSuite) TestLoadRejectsDuplicatePlayer() {
	_, err := Load(strings.NewReader(`
players:
  - id: "1"
    nickname: a
  - id: "1"
    nickname: b
`))
	s.ErrorContains(err, "duplicate player id")
}

func (s *SampleDataSuite) TestLoadRejectsInvalidStatus() {
	_, err := Load(strings.NewReader(`
tournaments:
  - id: "1"
    name: Cup
    date: "2024-01-01"
    time: "10:00"
    status: postponed
`))
	s.ErrorContains(err, "invalid status")
}

func (s *SampleDataSuite) TestLoadRejectsBadDate() {
	_, err := Load(strings.NewReader(`
tournaments:
  - id: "1"
    name: Cup
    date: "01.01.2024"
    status: live
`))
	s.Error(err)
}

func (s *SampleDataSuite) TestLoadRejectsUnknownField() {
	_, err := Load(strings.NewReader(`
players:
  - id: "1"
    rank: global elite
`))
	s.Error(err)
}

func (s *SampleDataSuite) TestLoadFile() {
	path := filepath.Join(s.T().TempDir(), "data.yaml")
	s.Require().NoError(os.WriteFile(path, []byte(`
players:
  - id: "9"
    nickname: device
`), 0o600))

	set, err := LoadFile(path)
	s.Require().NoError(err)
	s.Require().Len(set.Players, 1)
	s.Equal("device", set.Players[0].Nickname)
	s.Empty(set.Tournaments)
}

func (s *SampleDataSuite) TestLoadFileMissing() {
	_, err := LoadFile(filepath.Join(s.T().TempDir(), "missing.yaml"))
	s.Error(err)
}
