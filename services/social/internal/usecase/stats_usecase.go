package usecase

import (
	"time"

	"cinesocial/services/social/internal/store"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const statsKey = "stats"

var (
	statsCacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cinesocial_stats_cache_hits_total",
		Help: "Stats reads served from the cache.",
	})
	statsCacheMissesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cinesocial_stats_cache_misses_total",
		Help: "Stats reads that recounted the store.",
	})
)

type StatsUseCase interface {
	Stats() store.Stats
}

// statsUseCase caches the store's counts for ttl so dashboards polling
// /api/v1/stats do not hold the read lock on every request.
type statsUseCase struct {
	store *store.Store
	cache *expirable.LRU[string, store.Stats]
}

// NewStatsUseCase caches for ttl. A non-positive ttl counts on every call.
func NewStatsUseCase(s *store.Store, ttl time.Duration) StatsUseCase {
	uc := &statsUseCase{store: s}
	if ttl > 0 {
		uc.cache = expirable.NewLRU[string, store.Stats](1, nil, ttl)
	}
	return uc
}

func (uc *statsUseCase) Stats() store.Stats {
	if uc.cache == nil {
		return uc.store.Stats()
	}
	if st, ok := uc.cache.Get(statsKey); ok {
		statsCacheHitsTotal.Inc()
		return st
	}
	statsCacheMissesTotal.Inc()
	st := uc.store.Stats()
	uc.cache.Add(statsKey, st)
	return st
}
