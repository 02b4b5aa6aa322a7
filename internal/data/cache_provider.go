package data

import (
	"context"
	"log/slog"

	"sweet-booking/internal/config"
	"sweet-booking/internal/metrics"
	"sweet-booking/internal/models"
)

//go:generate mockgen -source=cache_provider.go -destination=../mocks/cache.go -package=mocks

// CacheProvider caches the sweets catalog. The catalog changes rarely, so
// entries only ever age out by TTL.
type CacheProvider interface {
	GetSweets(ctx context.Context) ([]models.Sweet, bool)
	SetSweets(ctx context.Context, sweets []models.Sweet)
	Invalidate(ctx context.Context)
	Ping(ctx context.Context) error
}

// NewCacheProvider returns the cache implementation selected by config.
func NewCacheProvider(cfg *config.Config, logger *slog.Logger) (CacheProvider, error) {
	switch cfg.Cache.Type {
	case metrics.CacheTypeRedis:
		return NewRedisCache(cfg, logger)
	case metrics.CacheTypeMemory:
		fallthrough
	default:
		return NewMemCache(cfg), nil
	}
}
