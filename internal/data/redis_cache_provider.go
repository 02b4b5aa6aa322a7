package data

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"sweet-booking/internal/config"
	"sweet-booking/internal/metrics"
	"sweet-booking/internal/models"
)

const redisSweetsKey = "cache:sweets"

type RedisCache struct {
	client *redis.Client
	logger *slog.Logger
	ttl    time.Duration
}

func NewRedisCache(cfg *config.Config, logger *slog.Logger) (*RedisCache, error) {
	if cfg.Redis == nil {
		return nil, fmt.Errorf("redis config is required for the redis cache")
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Address,
		Username:     cfg.Redis.Username,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.CacheIndex,
		MinIdleConns: 2,
	})

	return &RedisCache{
		client: client,
		logger: logger,
		ttl:    cfg.Cache.TTL,
	}, nil
}

// Client exposes the underlying connection for metrics instrumentation.
func (r *RedisCache) Client() *redis.Client {
	return r.client
}

func (r *RedisCache) GetSweets(ctx context.Context) ([]models.Sweet, bool) {
	raw, err := r.client.Get(ctx, redisSweetsKey).Result()
	if err != nil {
		if err != redis.Nil {
			r.logger.Error("error executing redis GET", "error", err)
		}
		metrics.CacheMisses.WithLabelValues(cacheName).Inc()
		return nil, false
	}

	var sweets []models.Sweet
	if err := json.Unmarshal([]byte(raw), &sweets); err != nil {
		r.logger.Error("error unmarshalling cached sweets", "error", err)
		metrics.CacheMisses.WithLabelValues(cacheName).Inc()
		return nil, false
	}

	metrics.CacheHits.WithLabelValues(cacheName).Inc()
	return sweets, true
}

func (r *RedisCache) SetSweets(ctx context.Context, sweets []models.Sweet) {
	raw, err := json.Marshal(sweets)
	if err != nil {
		r.logger.Error("error marshalling sweets for cache", "error", err)
		return
	}

	if err := r.client.Set(ctx, redisSweetsKey, raw, r.ttl).Err(); err != nil {
		r.logger.Error("error executing redis SET", "error", err)
	}
}

func (r *RedisCache) Invalidate(ctx context.Context) {
	if err := r.client.Del(ctx, redisSweetsKey).Err(); err != nil {
		r.logger.Error("error executing redis DEL", "error", err)
	}
}

func (r *RedisCache) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
