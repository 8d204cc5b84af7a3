package cli

import (
	"os"
	"path/filepath"
	"strings"
)

// Config holds CLI configuration
type Config struct {
	ServerURL  string
	Device     string
	DeviceFile string
	Output     string
	Verbose    bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL:  getEnvOrDefault("MAJORCTL_SERVER", "http://localhost:8080"),
		Device:     os.Getenv("MAJORCTL_DEVICE"),
		DeviceFile: getEnvOrDefault("MAJORCTL_DEVICE_FILE", defaultDeviceFile()),
		Output:     "text",
		Verbose:    false,
	}
}

// LoadDevice loads the device ID from file if not already set
func (c *Config) LoadDevice() error {
	if c.Device != "" {
		return nil
	}

	data, err := os.ReadFile(c.DeviceFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // First run; the server assigns one
		}
		return err
	}

	c.Device = strings.TrimSpace(string(data))
	return nil
}

// SaveDevice saves the device ID to the device file
func (c *Config) SaveDevice(device string) error {
	c.Device = device

	dir := filepath.Dir(c.DeviceFile)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	return os.WriteFile(c.DeviceFile, []byte(device), 0600)
}

func defaultDeviceFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".majorctl/device"
	}
	return filepath.Join(home, ".majorctl", "device")
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
