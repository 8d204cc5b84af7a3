package mocks

import (
	"fmt"
	"sync"

	"github.com/pr-poehali-dev/major-registration-portal/internal/dependencies/ids"
	"github.com/pr-poehali-dev/major-registration-portal/internal/model"
)

// MockIDs is a mock implementation of ids.Generator for testing
type MockIDs struct {
	mu sync.Mutex

	// DeviceIDResults is a queue of results to return from DeviceID
	DeviceIDResults []model.DeviceID
	deviceIDIndex   int

	tabIndex int
}

// Ensure MockIDs implements Generator
var _ ids.Generator = (*MockIDs)(nil)

// NewMockIDs creates a new MockIDs
func NewMockIDs() *MockIDs {
	return &MockIDs{}
}

// DeviceID returns the next queued result, or a sequential placeholder if none remain
func (m *MockIDs) DeviceID() model.DeviceID {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.deviceIDIndex >= len(m.DeviceIDResults) {
		m.deviceIDIndex++
		return model.DeviceID(fmt.Sprintf("00000000-0000-4000-8000-%012d", m.deviceIDIndex))
	}
	result := m.DeviceIDResults[m.deviceIDIndex]
	m.deviceIDIndex++
	return result
}

// TabID returns "tab-1", "tab-2", ...
func (m *MockIDs) TabID() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.tabIndex++
	return fmt.Sprintf("tab-%d", m.tabIndex)
}

// QueueDeviceID adds values to the DeviceID result queue
func (m *MockIDs) QueueDeviceID(values ...model.DeviceID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeviceIDResults = append(m.DeviceIDResults, values...)
}

// Reset clears all queued results
func (m *MockIDs) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeviceIDResults = nil
	m.deviceIDIndex = 0
	m.tabIndex = 0
}
