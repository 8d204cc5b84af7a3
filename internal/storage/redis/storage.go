package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pr-poehali-dev/major-registration-portal/internal/model"
	"github.com/pr-poehali-dev/major-registration-portal/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface.
// Each device is one hash; its TTL slides forward on every write.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ping checks the connection
func (s *Storage) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) GetItems(ctx context.Context, device model.DeviceID) (map[string]string, error) {
	items, err := s.client.HGetAll(ctx, deviceKey(device)).Result()
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = make(map[string]string)
	}
	return items, nil
}

func (s *Storage) SetItems(ctx context.Context, device model.DeviceID, items map[string]string) error {
	if len(items) == 0 {
		return nil
	}

	key := deviceKey(device)
	values := make([]any, 0, len(items)*2)
	for k, v := range items {
		values = append(values, k, v)
	}

	// Use pipeline so the write and the expiry refresh go together
	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, key, values...)
	if s.cfg.DeviceTTL > 0 {
		pipe.Expire(ctx, key, s.cfg.DeviceTTL)
	}
	_, err := pipe.Exec(ctx)
	return err
}

func (s *Storage) RemoveItems(ctx context.Context, device model.DeviceID, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	// Redis deletes the hash itself once its last field is gone
	return s.client.HDel(ctx, deviceKey(device), keys...).Err()
}
