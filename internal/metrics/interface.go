package metrics

// Metrics defines the interface for collecting application metrics.
// Controllers depend on this rather than on Prometheus directly.
type Metrics interface {
	// IncTransition counts a session state change into the given view
	IncTransition(view string)
	// IncLogin counts a successful authentication for the given role
	IncLogin(role string)
	IncLogout()
	// IncDialogOpen counts a stats dialog opened for the given player
	IncDialogOpen(playerID string)
	// IncSessionRepair counts persisted sessions that had to be repaired on load
	IncSessionRepair()
}
