package catalog

import (
	"github.com/pr-poehali-dev/major-registration-portal/internal/metrics"
	"github.com/pr-poehali-dev/major-registration-portal/internal/model"
	"github.com/pr-poehali-dev/major-registration-portal/internal/sampledata"
)

// Service answers read-only queries over the sample set.
// Every returned value is a copy; the sample set itself is never mutated.
type Service struct {
	metrics     metrics.Metrics
	players     []model.Player
	tournaments []model.Tournament
	playerIndex map[model.PlayerID]int
}

// New creates a catalog over the given sample set
func New(set *sampledata.Set, metrics metrics.Metrics) *Service {
	s := &Service{
		metrics:     metrics,
		players:     make([]model.Player, len(set.Players)),
		tournaments: make([]model.Tournament, len(set.Tournaments)),
		playerIndex: make(map[model.PlayerID]int, len(set.Players)),
	}
	for i := range set.Players {
		s.players[i] = *set.Players[i].Clone()
		s.playerIndex[set.Players[i].ID] = i
	}
	copy(s.tournaments, set.Tournaments)
	return s
}

// ListPlayers returns all players in sample order
func (s *Service) ListPlayers() []*model.Player {
	result := make([]*model.Player, len(s.players))
	for i := range s.players {
		result[i] = s.players[i].Clone()
	}
	return result
}

// GetPlayer returns a single player
func (s *Service) GetPlayer(id model.PlayerID) (*model.Player, error) {
	i, ok := s.playerIndex[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return s.players[i].Clone(), nil
}

// ListTournaments returns all tournaments in sample order
func (s *Service) ListTournaments() []model.Tournament {
	result := make([]model.Tournament, len(s.tournaments))
	copy(result, s.tournaments)
	return result
}

// GetTournament returns a single tournament
func (s *Service) GetTournament(id model.TournamentID) (*model.Tournament, error) {
	for i := range s.tournaments {
		if s.tournaments[i].ID == id {
			t := s.tournaments[i]
			return &t, nil
		}
	}
	return nil, model.ErrTournamentNotFound
}

// PlayerDialog returns the stats dialog opened for the given player
func (s *Service) PlayerDialog(id model.PlayerID) (*model.Dialog, error) {
	player, err := s.GetPlayer(id)
	if err != nil {
		return nil, err
	}
	dialog := &model.Dialog{}
	dialog.OpenFor(player)
	s.metrics.IncDialogOpen(string(id))
	return dialog, nil
}
