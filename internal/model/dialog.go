package model

// Dialog is the player statistics dialog on the dashboard
type Dialog struct {
	Player *Player
	Open   bool
}

// OpenFor shows the dialog for the given player
func (d *Dialog) OpenFor(p *Player) {
	d.Player = p
	d.Open = p != nil
}

// Visible reports whether there is a player to show
func (d *Dialog) Visible() bool {
	return d != nil && d.Open && d.Player != nil
}
