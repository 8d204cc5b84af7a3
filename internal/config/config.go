// Package config reads server settings from the environment.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// Log formats
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Config holds server settings
type Config struct {
	Host        string
	Port        int
	StorageType string
	RedisURL    string
	DeviceTTL   time.Duration
	LogFormat   string
	LogLevel    slog.Level
	StaticDir   string
	SampleData  string
	// JanitorInterval is how often idle hubs and expired devices are swept
	JanitorInterval time.Duration
}

// Addr returns the listen address
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load reads .env (if present) into the environment and builds a Config from it
func Load() (Config, error) {
	// A missing .env is normal outside local development
	_ = godotenv.Load()
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config using lookup for each variable
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	get := func(key, def string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return def
	}

	cfg := Config{
		Host:        get("HOST", ""),
		StorageType: strings.ToLower(get("STORAGE_TYPE", "memory")),
		RedisURL:    get("REDIS_URL", ""),
		LogFormat:   strings.ToLower(get("LOG_FORMAT", LogFormatJSON)),
		StaticDir:   get("STATIC_DIR", ""),
		SampleData:  get("SAMPLE_DATA", ""),
	}

	port, err := strconv.Atoi(get("PORT", "8080"))
	if err != nil || port <= 0 || port > 65535 {
		return Config{}, fmt.Errorf("invalid PORT %q", get("PORT", ""))
	}
	cfg.Port = port

	if cfg.DeviceTTL, err = time.ParseDuration(get("DEVICE_TTL", "720h")); err != nil {
		return Config{}, fmt.Errorf("invalid DEVICE_TTL: %w", err)
	}
	if cfg.DeviceTTL <= 0 {
		return Config{}, fmt.Errorf("invalid DEVICE_TTL %s: must be positive", cfg.DeviceTTL)
	}
	if cfg.JanitorInterval, err = time.ParseDuration(get("JANITOR_INTERVAL", "5m")); err != nil {
		return Config{}, fmt.Errorf("invalid JANITOR_INTERVAL: %w", err)
	}
	if cfg.JanitorInterval <= 0 {
		return Config{}, fmt.Errorf("invalid JANITOR_INTERVAL %s: must be positive", cfg.JanitorInterval)
	}

	switch cfg.StorageType {
	case "memory":
	case "redis":
		if cfg.RedisURL == "" {
			return Config{}, fmt.Errorf("REDIS_URL required when STORAGE_TYPE=redis")
		}
	default:
		return Config{}, fmt.Errorf("invalid STORAGE_TYPE %q", cfg.StorageType)
	}

	switch cfg.LogFormat {
	case LogFormatJSON, LogFormatText:
	default:
		return Config{}, fmt.Errorf("invalid LOG_FORMAT %q", cfg.LogFormat)
	}

	level, err := log.ParseLevel(get("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	cfg.LogLevel = slog.Level(level)

	return cfg, nil
}

// NewLogger creates the application logger: JSON lines for production,
// colourised text for a terminal
func NewLogger(cfg Config, w io.Writer) *slog.Logger {
	if cfg.LogFormat == LogFormatText {
		handler := log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      time.Kitchen,
			Level:           log.Level(cfg.LogLevel),
		})
		return slog.New(handler)
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
}
