package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"greenearth.GO/config"
	"greenearth.GO/core/cache"
)

// ErrNotFound is returned by Load when a visitor has no stored state.
var ErrNotFound = errors.New("session: not found")

const (
	keyPrefix  = "session"
	sessionTag = "session"
)

// SessionRepository stores opaque per-visitor state blobs with a TTL.
type SessionRepository interface {
	Load(ctx context.Context, id string) ([]byte, error)
	Save(ctx context.Context, id string, data []byte) error
	Delete(ctx context.Context, id string) error
	// Sweep drops expired sessions and returns how many were removed.
	Sweep(ctx context.Context) (int, error)
}

// GetSessionRepository picks the backend named by store ("memory" or "redis").
// Redis falls back to memory when config.RedisClient is nil.
func GetSessionRepository(store string, ttl time.Duration) (SessionRepository, error) {
	switch store {
	case "", "memory":
		return NewMemoryRepository(cache.GetInstance(), ttl), nil
	case "redis":
		if config.RedisClient == nil {
			return NewMemoryRepository(cache.GetInstance(), ttl), nil
		}
		return NewRedisRepository(config.RedisClient, ttl), nil
	}
	return nil, fmt.Errorf("unknown session store %q", store)
}

// MemoryRepository keeps sessions in the process cache.
type MemoryRepository struct {
	cache *cache.Cache
	ttl   time.Duration
}

func NewMemoryRepository(c *cache.Cache, ttl time.Duration) *MemoryRepository {
	return &MemoryRepository{cache: c, ttl: ttl}
}

func (r *MemoryRepository) Load(_ context.Context, id string) ([]byte, error) {
	v, ok := r.cache.GetN(keyPrefix, id)
	if !ok {
		return nil, ErrNotFound
	}
	data, ok := v.([]byte)
	if !ok {
		return nil, fmt.Errorf("session %s: unexpected value %T", id, v)
	}
	return data, nil
}

func (r *MemoryRepository) Save(_ context.Context, id string, data []byte) error {
	r.cache.SetN([]interface{}{keyPrefix, id}, data, r.ttl, []string{sessionTag})
	return nil
}

func (r *MemoryRepository) Delete(_ context.Context, id string) error {
	r.cache.DeleteN(keyPrefix, id)
	return nil
}

func (r *MemoryRepository) Sweep(_ context.Context) (int, error) {
	return r.cache.Purge(), nil
}

// RedisRepository stores sessions as redis strings with native expiry.
type RedisRepository struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

func NewRedisRepository(client *redis.Client, ttl time.Duration) *RedisRepository {
	return &RedisRepository{client: client, ttl: ttl, prefix: "greenearth:" + keyPrefix + ":"}
}

func (r *RedisRepository) key(id string) string {
	return r.prefix + id
}

func (r *RedisRepository) Load(ctx context.Context, id string) ([]byte, error) {
	data, err := r.client.Get(ctx, r.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get session %s: %w", id, err)
	}
	return data, nil
}

func (r *RedisRepository) Save(ctx context.Context, id string, data []byte) error {
	if err := r.client.Set(ctx, r.key(id), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set session %s: %w", id, err)
	}
	return nil
}

func (r *RedisRepository) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, r.key(id)).Err(); err != nil {
		return fmt.Errorf("redis del session %s: %w", id, err)
	}
	return nil
}

// Sweep is a no-op: redis expires keys itself.
func (r *RedisRepository) Sweep(_ context.Context) (int, error) {
	return 0, nil
}
