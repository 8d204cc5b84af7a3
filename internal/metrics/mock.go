package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu             sync.Mutex
	transitions    map[string]int
	logins         map[string]int
	logouts        int
	dialogOpens    map[string]int
	sessionRepairs int
}

var _ Metrics = (*Mock)(nil)

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		transitions: make(map[string]int),
		logins:      make(map[string]int),
		dialogOpens: make(map[string]int),
	}
}

func (m *Mock) IncTransition(view string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transitions[view]++
}

func (m *Mock) IncLogin(role string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logins[role]++
}

func (m *Mock) IncLogout() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logouts++
}

func (m *Mock) IncDialogOpen(playerID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dialogOpens[playerID]++
}

func (m *Mock) IncSessionRepair() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessionRepairs++
}

// Transitions returns how many transitions into view were recorded.
func (m *Mock) Transitions(view string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.transitions[view]
}

// Logins returns how many logins were recorded for role.
func (m *Mock) Logins(role string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.logins[role]
}

// Logouts returns the number of times IncLogout was called.
func (m *Mock) Logouts() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.logouts
}

// DialogOpens returns how many dialogs were opened for playerID.
func (m *Mock) DialogOpens(playerID string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.dialogOpens[playerID]
}

// SessionRepairs returns the number of times IncSessionRepair was called.
func (m *Mock) SessionRepairs() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessionRepairs
}
