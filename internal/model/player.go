package model

import (
	"math"
	"strconv"
)

// PlayerID uniquely identifies a player in the sample set
type PlayerID string

// Player is a tournament participant with their career statistics
type Player struct {
	ID             PlayerID `yaml:"id" json:"id"`
	FirstName      string   `yaml:"firstName" json:"firstName"`
	LastName       string   `yaml:"lastName" json:"lastName"`
	Nickname       string   `yaml:"nickname" json:"nickname"`
	FavoriteWeapon string   `yaml:"favoriteWeapon" json:"favoriteWeapon"`
	FavoritePlayer string   `yaml:"favoritePlayer" json:"favoritePlayer"`
	Stats          Stats    `yaml:"stats" json:"stats"`
}

// Stats holds a player's match record
type Stats struct {
	Kills       int      `yaml:"kills" json:"kills"`
	Deaths      int      `yaml:"deaths" json:"deaths"`
	Wins        int      `yaml:"wins" json:"wins"`
	Losses      int      `yaml:"losses" json:"losses"`
	Draws       int      `yaml:"draws" json:"draws"`
	Tournaments []string `yaml:"tournaments" json:"tournaments"` // in participation order
}

// FullName returns "FirstName LastName"
func (p *Player) FullName() string {
	return p.FirstName + " " + p.LastName
}

// Clone returns a deep copy of the player
func (p *Player) Clone() *Player {
	c := *p
	c.Stats.Tournaments = append([]string(nil), p.Stats.Tournaments...)
	return &c
}

// KDRatio returns kills divided by deaths.
// There is no zero guard: x/0 is +Inf and 0/0 is NaN.
func (s Stats) KDRatio() float64 {
	return float64(s.Kills) / float64(s.Deaths)
}

// FormatKD renders the K/D ratio with two decimals
func (s Stats) FormatKD() string {
	kd := s.KDRatio()
	switch {
	case math.IsNaN(kd):
		return "NaN"
	case math.IsInf(kd, 1):
		return "Infinity"
	}
	return strconv.FormatFloat(kd, 'f', 2, 64)
}

// Matches returns the total number of matches played
func (s Stats) Matches() int {
	return s.Wins + s.Losses + s.Draws
}
