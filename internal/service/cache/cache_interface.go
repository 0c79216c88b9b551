// Package cache declares the plan cache contract shared by the service layer.
package cache

import "github.com/guttosm/inventory-optimizer/internal/domain/model"

// Cache defines the interface for plan cache operations. Keys are request
// fingerprints produced by the optimizer service.
type Cache interface {
	Get(key string) (model.Plan, bool)
	Set(key string, value model.Plan)
	Invalidate(key string)
	Clear()
	Stop()
}

// Metrics provides cache performance metrics.
type Metrics struct {
	Hits      int64 `json:"hits"`
	Misses    int64 `json:"misses"`
	Evictions int64 `json:"evictions"`
	Size      int   `json:"size"`
	Capacity  int   `json:"capacity"`
}

// HitRatio returns hits over lookups, or 0 before the first lookup.
func (m Metrics) HitRatio() float64 {
	total := m.Hits + m.Misses
	if total == 0 {
		return 0
	}
	return float64(m.Hits) / float64(total)
}

// CacheWithMetrics extends Cache with metrics reporting.
type CacheWithMetrics interface {
	Cache
	Metrics() Metrics
}
