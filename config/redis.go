package config

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisPingTimeout = 2 * time.Second

// RedisClient backs the redis session store. It stays nil when redis is not
// configured or did not answer at startup.
var RedisClient *redis.Client

// InitRedis connects to cfg.Addr and pings it. On a failed ping RedisClient is
// reset to nil and the error is returned; sessions then stay in memory.
func InitRedis(cfg RedisConfig) error {
	RedisClient = nil
	if cfg.Addr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Pass,
		DB:       cfg.DB,
	})
	ctx, cancel := context.WithTimeout(RedisCtx(), redisPingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return fmt.Errorf("redis %s: %w", cfg.Addr, err)
	}
	RedisClient = client
	return nil
}

func RedisCtx() context.Context {
	return context.Background()
}
