package ids

import (
	"github.com/google/uuid"

	"github.com/pr-poehali-dev/major-registration-portal/internal/model"
)

// Generator issues identifiers and can be mocked for testing
type Generator interface {
	// DeviceID returns a fresh device identifier
	DeviceID() model.DeviceID
	// TabID returns a fresh identifier for one rendered page
	TabID() string
}

// UUIDGenerator implements Generator with random (v4) UUIDs
type UUIDGenerator struct{}

// New creates a new UUIDGenerator
func New() *UUIDGenerator {
	return &UUIDGenerator{}
}

// DeviceID returns a random UUID
func (g *UUIDGenerator) DeviceID() model.DeviceID {
	return model.DeviceID(uuid.NewString())
}

// TabID returns a random UUID
func (g *UUIDGenerator) TabID() string {
	return uuid.NewString()
}

// ValidDeviceID reports whether id looks like an issued device identifier
func ValidDeviceID(id model.DeviceID) bool {
	if id == "" {
		return false
	}
	_, err := uuid.Parse(string(id))
	return err == nil
}
