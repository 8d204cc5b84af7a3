package storage

import (
	"context"

	"github.com/pr-poehali-dev/major-registration-portal/internal/model"
)

// Storage is a per-device string key/value store.
// It plays the part of a browser's local storage on the server.
type Storage interface {
	// GetItems returns every key held for the device.
	// An unknown device yields an empty map, not an error.
	GetItems(ctx context.Context, device model.DeviceID) (map[string]string, error)

	// SetItems writes the given keys, leaving other keys untouched
	SetItems(ctx context.Context, device model.DeviceID, items map[string]string) error

	// RemoveItems deletes the given keys; missing keys are ignored
	RemoveItems(ctx context.Context, device model.DeviceID, keys ...string) error
}
