package data

import (
	"context"
	"sync"
	"time"

	"sweet-booking/internal/config"
	"sweet-booking/internal/metrics"
	"sweet-booking/internal/models"
)

const cacheName = "sweets"

type MemCache struct {
	mutex  sync.RWMutex
	sweets []models.Sweet
	setAt  time.Time
	ttl    time.Duration
	now    func() time.Time
	primed bool
}

func NewMemCache(cfg *config.Config) *MemCache {
	return &MemCache{
		ttl: cfg.Cache.TTL,
		now: time.Now,
	}
}

func (m *MemCache) GetSweets(_ context.Context) ([]models.Sweet, bool) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if !m.primed || m.now().Sub(m.setAt) > m.ttl {
		metrics.CacheMisses.WithLabelValues(cacheName).Inc()
		return nil, false
	}

	metrics.CacheHits.WithLabelValues(cacheName).Inc()

	sweets := make([]models.Sweet, len(m.sweets))
	copy(sweets, m.sweets)
	return sweets, true
}

func (m *MemCache) SetSweets(_ context.Context, sweets []models.Sweet) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.sweets = make([]models.Sweet, len(sweets))
	copy(m.sweets, sweets)
	m.setAt = m.now()
	m.primed = true
}

func (m *MemCache) Invalidate(_ context.Context) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.sweets = nil
	m.primed = false
}

func (m *MemCache) Ping(_ context.Context) error {
	return nil
}
