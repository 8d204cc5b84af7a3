package memory

import (
	"context"
	"sync"
	"time"

	"github.com/pr-poehali-dev/major-registration-portal/internal/dependencies/clock"
	"github.com/pr-poehali-dev/major-registration-portal/internal/model"
	"github.com/pr-poehali-dev/major-registration-portal/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	clock   clock.Clock
	ttl     time.Duration
	devices map[model.DeviceID]*deviceItems
}

type deviceItems struct {
	items     map[string]string
	touchedAt time.Time
}

// New creates a new in-memory storage instance.
// Devices idle for longer than ttl are forgotten; a zero ttl keeps them forever.
func New(clk clock.Clock, ttl time.Duration) *Storage {
	return &Storage{
		clock:   clk,
		ttl:     ttl,
		devices: make(map[model.DeviceID]*deviceItems),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) GetItems(ctx context.Context, device model.DeviceID) (map[string]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[string]string)
	d, ok := s.devices[device]
	if !ok || s.expired(d) {
		return result, nil
	}
	for k, v := range d.items {
		result[k] = v
	}
	return result, nil
}

func (s *Storage) SetItems(ctx context.Context, device model.DeviceID, items map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.devices[device]
	if !ok || s.expired(d) {
		d = &deviceItems{items: make(map[string]string, len(items))}
		s.devices[device] = d
	}
	for k, v := range items {
		d.items[k] = v
	}
	d.touchedAt = s.clock.Now()
	return nil
}

func (s *Storage) RemoveItems(ctx context.Context, device model.DeviceID, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.devices[device]
	if !ok {
		return nil
	}
	for _, k := range keys {
		delete(d.items, k)
	}
	if len(d.items) == 0 {
		delete(s.devices, device)
		return nil
	}
	d.touchedAt = s.clock.Now()
	return nil
}

// Sweep drops every expired device and returns how many were removed
func (s *Storage) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, d := range s.devices {
		if s.expired(d) {
			delete(s.devices, id)
			removed++
		}
	}
	return removed
}

// DeviceCount returns the number of devices currently held
func (s *Storage) DeviceCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.devices)
}

// expired must be called with the lock held
func (s *Storage) expired(d *deviceItems) bool {
	return s.ttl > 0 && s.clock.Now().Sub(d.touchedAt) > s.ttl
}
