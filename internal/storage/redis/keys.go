package redis

import (
	"fmt"

	"github.com/pr-poehali-dev/major-registration-portal/internal/model"
)

// Key prefix for all application data
const keyPrefix = "major"

// deviceKey returns the Redis key for the hash holding a device's items
func deviceKey(id model.DeviceID) string {
	return fmt.Sprintf("%s:device:%s", keyPrefix, id)
}
