package response

import (
	"github.com/pr-poehali-dev/major-registration-portal/internal/model"
)

// Session represents a device's session in API responses
type Session struct {
	Device      string  `json:"device"`
	View        string  `json:"view"`
	Role        *string `json:"role"`
	RoleLabel   string  `json:"roleLabel,omitempty"`
	IsLoggedIn  bool    `json:"isLoggedIn"`
	CurrentUser string  `json:"currentUser"`
	CanManage   bool    `json:"canManage"`
}

// SessionFromModel converts a model.Session
func SessionFromModel(device model.DeviceID, s *model.Session) Session {
	resp := Session{
		Device:      string(device),
		View:        string(s.View),
		IsLoggedIn:  s.IsLoggedIn,
		CurrentUser: s.CurrentUser,
	}
	if s.Role != nil {
		name := s.Role.Name()
		resp.Role = &name
		resp.RoleLabel = s.Role.Label()
		resp.CanManage = s.Role.CanManage()
	}
	return resp
}

// Stats represents a player's statistics card
type Stats struct {
	Kills       int      `json:"kills"`
	Deaths      int      `json:"deaths"`
	Wins        int      `json:"wins"`
	Losses      int      `json:"losses"`
	Draws       int      `json:"draws"`
	Matches     int      `json:"matches"`
	KD          string   `json:"kd"`
	Tournaments []string `json:"tournaments"`
}

// StatsFromModel converts model.Stats
func StatsFromModel(s model.Stats) Stats {
	tournaments := make([]string, len(s.Tournaments))
	copy(tournaments, s.Tournaments)
	return Stats{
		Kills:       s.Kills,
		Deaths:      s.Deaths,
		Wins:        s.Wins,
		Losses:      s.Losses,
		Draws:       s.Draws,
		Matches:     s.Matches(),
		KD:          s.FormatKD(),
		Tournaments: tournaments,
	}
}

// Player represents a player in API responses
type Player struct {
	ID             string `json:"id"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	FullName       string `json:"fullName"`
	Nickname       string `json:"nickname"`
	FavoriteWeapon string `json:"favoriteWeapon"`
	FavoritePlayer string `json:"favoritePlayer"`
	Stats          Stats  `json:"stats"`
}

// PlayerFromModel converts a model.Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		ID:             string(p.ID),
		FirstName:      p.FirstName,
		LastName:       p.LastName,
		FullName:       p.FullName(),
		Nickname:       p.Nickname,
		FavoriteWeapon: p.FavoriteWeapon,
		FavoritePlayer: p.FavoritePlayer,
		Stats:          StatsFromModel(p.Stats),
	}
}

// PlayerStats is the stats dialog of one player
type PlayerStats struct {
	PlayerID string `json:"playerId"`
	Nickname string `json:"nickname"`
	FullName string `json:"fullName"`
	Stats    Stats  `json:"stats"`
}

// PlayerStatsFromDialog converts an open model.Dialog
func PlayerStatsFromDialog(d *model.Dialog) PlayerStats {
	return PlayerStats{
		PlayerID: string(d.Player.ID),
		Nickname: d.Player.Nickname,
		FullName: d.Player.FullName(),
		Stats:    StatsFromModel(d.Player.Stats),
	}
}

// Tournament represents a tournament in API responses
type Tournament struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Date        string `json:"date"`
	DisplayDate string `json:"displayDate"`
	Time        string `json:"time"`
	Status      string `json:"status"`
	StatusLabel string `json:"statusLabel"`
}

// TournamentFromModel converts a model.Tournament
func TournamentFromModel(t model.Tournament) Tournament {
	return Tournament{
		ID:          string(t.ID),
		Name:        t.Name,
		Date:        t.Date.String(),
		DisplayDate: t.Date.Display(),
		Time:        t.Time,
		Status:      string(t.Status),
		StatusLabel: t.Status.Label(),
	}
}

// Health is the health check response
type Health struct {
	Status string `json:"status"`
}
