package session

import (
	"sync"

	"github.com/pr-poehali-dev/major-registration-portal/internal/model"
)

// deviceLocks serializes load/save pairs per device
type deviceLocks struct {
	mu    sync.Mutex
	locks map[model.DeviceID]*deviceLock
}

type deviceLock struct {
	mu   sync.Mutex
	refs int
}

func newDeviceLocks() *deviceLocks {
	return &deviceLocks{locks: make(map[model.DeviceID]*deviceLock)}
}

// lock blocks until the device is free and returns the matching unlock
func (l *deviceLocks) lock(id model.DeviceID) func() {
	l.mu.Lock()
	dl, ok := l.locks[id]
	if !ok {
		dl = &deviceLock{}
		l.locks[id] = dl
	}
	dl.refs++
	l.mu.Unlock()

	dl.mu.Lock()
	return func() {
		dl.mu.Unlock()

		l.mu.Lock()
		dl.refs--
		if dl.refs == 0 {
			delete(l.locks, id)
		}
		l.mu.Unlock()
	}
}

func (l *deviceLocks) len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
