package model

// TournamentID uniquely identifies a tournament in the sample set
type TournamentID string

// TournamentStatus is the lifecycle stage of a tournament
type TournamentStatus string

const (
	TournamentUpcoming  TournamentStatus = "upcoming"
	TournamentLive      TournamentStatus = "live"
	TournamentCompleted TournamentStatus = "completed"
)

// Valid reports whether the status is one of the known stages
func (s TournamentStatus) Valid() bool {
	switch s {
	case TournamentUpcoming, TournamentLive, TournamentCompleted:
		return true
	}
	return false
}

// Label returns the badge text shown for the status
func (s TournamentStatus) Label() string {
	switch s {
	case TournamentLive:
		return "В ЭФИРЕ"
	case TournamentUpcoming:
		return "СКОРО"
	case TournamentCompleted:
		return "ЗАВЕРШЁН"
	}
	return string(s)
}

// BadgeClass returns the CSS classes for the status badge
func (s TournamentStatus) BadgeClass() string {
	switch s {
	case TournamentLive:
		return "bg-secondary text-black"
	case TournamentUpcoming:
		return "bg-primary text-black"
	case TournamentCompleted:
		return "bg-muted text-muted-foreground"
	}
	return ""
}

// Tournament is a scheduled event
type Tournament struct {
	ID     TournamentID     `yaml:"id" json:"id"`
	Name   string           `yaml:"name" json:"name"`
	Date   Date             `yaml:"date" json:"date"`
	Time   string           `yaml:"time" json:"time"` // local time, HH:MM
	Status TournamentStatus `yaml:"status" json:"status"`
}
