// Package cache defines the totals cache contract.
package cache

import "github.com/guttosm/quote-service/internal/domain/model"

// Cache stores computed totals keyed by a state fingerprint.
type Cache interface {
	Get(key uint64) (model.Totals, bool)
	Set(key uint64, value model.Totals)
	Invalidate(key uint64)
	Clear()
	Stop()
}

// Metrics provides cache performance metrics.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// CacheWithMetrics extends Cache with metrics reporting.
type CacheWithMetrics interface {
	Cache
	Metrics() Metrics
}
