package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		_, _ = fmt.Fprintln(o.w, string(data))
	} else {
		_, _ = fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Session:
		o.printSession(v)
	case []Player:
		o.printPlayers(v)
	case Player:
		o.printPlayer(v)
	case PlayerStats:
		o.printPlayerStats(v)
	case []Tournament:
		o.printTournaments(v)
	case Tournament:
		o.printTournament(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Session response type (matches API)
type Session struct {
	Device      string  `json:"device"`
	View        string  `json:"view"`
	Role        *string `json:"role"`
	RoleLabel   string  `json:"roleLabel,omitempty"`
	IsLoggedIn  bool    `json:"isLoggedIn"`
	CurrentUser string  `json:"currentUser"`
	CanManage   bool    `json:"canManage"`
}

// Stats response type
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

// Player response type
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

// PlayerStats response type
type PlayerStats struct {
	PlayerID string `json:"playerId"`
	Nickname string `json:"nickname"`
	FullName string `json:"fullName"`
	Stats    Stats  `json:"stats"`
}

// Tournament response type
type Tournament struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Date        string `json:"date"`
	DisplayDate string `json:"displayDate"`
	Time        string `json:"time"`
	Status      string `json:"status"`
	StatusLabel string `json:"statusLabel"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(o.w, format, args...)
}

func (o *Output) printSession(s Session) {
	o.printf("Device: %s\n", s.Device)
	o.printf("View: %s\n", s.View)
	if s.Role != nil {
		o.printf("Role: %s (%s)\n", s.RoleLabel, *s.Role)
	} else {
		o.printf("Role: -\n")
	}
	if s.IsLoggedIn {
		o.printf("User: %s\n", s.CurrentUser)
	} else {
		o.printf("User: not logged in\n")
	}
	if s.CanManage {
		o.printf("Management: available\n")
	}
}

func (o *Output) printPlayers(players []Player) {
	o.printf("Players (%d):\n", len(players))
	for _, p := range players {
		o.printf("  %s  %-12s %-20s kills %d, wins %d\n", p.ID, p.Nickname, p.FullName, p.Stats.Kills, p.Stats.Wins)
	}
}

func (o *Output) printPlayer(p Player) {
	o.printf("Player: %s (%s)\n", p.Nickname, p.ID)
	o.printf("Name: %s\n", p.FullName)
	o.printf("Favorite weapon: %s\n", p.FavoriteWeapon)
	o.printf("Favorite player: %s\n", p.FavoritePlayer)
	o.printStats(p.Stats)
}

func (o *Output) printPlayerStats(s PlayerStats) {
	o.printf("%s - %s\n", s.Nickname, s.FullName)
	o.printStats(s.Stats)
}

func (o *Output) printStats(s Stats) {
	o.printf("Kills: %d  Deaths: %d  K/D: %s\n", s.Kills, s.Deaths, s.KD)
	o.printf("Wins: %d  Losses: %d  Draws: %d  (%d matches)\n", s.Wins, s.Losses, s.Draws, s.Matches)
	if len(s.Tournaments) > 0 {
		o.printf("Tournaments: %s\n", strings.Join(s.Tournaments, ", "))
	}
}

func (o *Output) printTournaments(tournaments []Tournament) {
	o.printf("Tournaments (%d):\n", len(tournaments))
	for _, t := range tournaments {
		o.printf("  %s  %s %s  %-30s [%s]\n", t.ID, t.DisplayDate, t.Time, t.Name, t.StatusLabel)
	}
}

func (o *Output) printTournament(t Tournament) {
	o.printf("Tournament: %s (%s)\n", t.Name, t.ID)
	o.printf("When: %s %s\n", t.DisplayDate, t.Time)
	o.printf("Status: %s\n", t.StatusLabel)
}

func (o *Output) printHealthResult(h HealthResult) {
	o.printf("Status: %s\n", h.Status)
}
