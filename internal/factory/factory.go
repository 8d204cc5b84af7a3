package factory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/pr-poehali-dev/major-registration-portal/internal/dependencies/clock"
	"github.com/pr-poehali-dev/major-registration-portal/internal/dependencies/ids"
	"github.com/pr-poehali-dev/major-registration-portal/internal/metrics"
	"github.com/pr-poehali-dev/major-registration-portal/internal/sampledata"
	"github.com/pr-poehali-dev/major-registration-portal/internal/services/catalog"
	"github.com/pr-poehali-dev/major-registration-portal/internal/services/session"
	"github.com/pr-poehali-dev/major-registration-portal/internal/storage"
	"github.com/pr-poehali-dev/major-registration-portal/internal/storage/memory"
	redisstorage "github.com/pr-poehali-dev/major-registration-portal/internal/storage/redis"
	"github.com/pr-poehali-dev/major-registration-portal/internal/web/sse"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// DefaultDeviceTTL is how long an idle device's session is kept
const DefaultDeviceTTL = 30 * 24 * time.Hour

// DefaultJanitorInterval is used when RunJanitor is given a non-positive interval
const DefaultJanitorInterval = 5 * time.Minute

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock clock.Clock
	IDs   ids.Generator

	// Observability
	Metrics  metrics.Metrics
	Registry *prometheus.Registry

	// Services
	SampleData        *sampledata.Set
	CatalogService    *catalog.Service
	SessionController *session.Controller
	HubManager        *sse.HubManager
	Broadcaster       *sse.Broadcaster

	logger *slog.Logger
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// DeviceTTL is how long an idle device's keys are kept (optional)
	// If zero, defaults to DefaultDeviceTTL
	DeviceTTL time.Duration
	// SampleDataPath overrides the embedded sample set (optional)
	SampleDataPath string
	// Registry receives the Prometheus collectors (optional)
	// If nil, a fresh registry is created
	Registry *prometheus.Registry
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	deviceTTL := cfg.DeviceTTL
	if deviceTTL < 0 {
		return nil, fmt.Errorf("invalid DeviceTTL %s: must not be negative", deviceTTL)
	}
	if deviceTTL == 0 {
		deviceTTL = DefaultDeviceTTL
	}

	clk := clock.New()

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New(clk, deviceTTL)
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisCfg := *cfg.RedisConfig
		if redisCfg.DeviceTTL == 0 {
			redisCfg.DeviceTTL = deviceTTL
		}
		redisStore, err := redisstorage.New(redisCfg)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	set, err := loadSampleData(cfg.SampleDataPath)
	if err != nil {
		return nil, err
	}

	registry := cfg.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	app := newWithDependencies(store, clk, ids.New(), metrics.NewService(registry), set, logger)
	app.Registry = registry
	return app, nil
}

func loadSampleData(path string) (*sampledata.Set, error) {
	if path == "" {
		return sampledata.Default()
	}
	set, err := sampledata.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load sample data from %s: %w", path, err)
	}
	return set, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, generator ids.Generator, m metrics.Metrics, set *sampledata.Set, logger *slog.Logger) *App {
	// Create services
	catalogService := catalog.New(set, m)
	sessionController := session.NewController(store, m, logger)
	hubManager := sse.NewHubManager(logger)
	broadcaster := sse.NewBroadcaster(hubManager, clk, logger)

	return &App{
		Storage:           store,
		Clock:             clk,
		IDs:               generator,
		Metrics:           m,
		SampleData:        set,
		CatalogService:    catalogService,
		SessionController: sessionController,
		HubManager:        hubManager,
		Broadcaster:       broadcaster,
		logger:            logger,
	}
}

// sweeper is implemented by stores that expire idle devices themselves
type sweeper interface {
	Sweep() int
}

// RunJanitor periodically drops idle SSE hubs and, for the memory store,
// expired devices. It returns when ctx is done.
func (a *App) RunJanitor(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultJanitorInterval
	}
	go a.HubManager.RunJanitor(ctx, interval)

	sw, ok := a.Storage.(sweeper)
	if !ok {
		<-ctx.Done()
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := sw.Sweep(); n > 0 {
				a.logger.Debug("expired idle devices", slog.Int("count", n))
			}
		}
	}
}

// Ping checks the storage backend. Backends without a connection always pass.
func (a *App) Ping(ctx context.Context) error {
	if p, ok := a.Storage.(pinger); ok {
		return p.Ping(ctx)
	}
	return nil
}

type pinger interface {
	Ping(ctx context.Context) error
}

// Close releases the SSE hubs and the storage connection
func (a *App) Close() error {
	a.HubManager.CloseAll()
	if closer, ok := a.Storage.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
