//go:build !integration

package cache

import (
	"testing"

	"github.com/guttosm/inventory-optimizer/internal/domain/model"
	"github.com/stretchr/testify/assert"
)

type mapCache struct {
	items map[string]model.Plan
	hits  int64
	miss  int64
}

func newMapCache() *mapCache { return &mapCache{items: map[string]model.Plan{}} }

func (m *mapCache) Get(key string) (model.Plan, bool) {
	p, ok := m.items[key]
	if ok {
		m.hits++
	} else {
		m.miss++
	}
	return p, ok
}
func (m *mapCache) Set(key string, value model.Plan) { m.items[key] = value }
func (m *mapCache) Invalidate(key string)            { delete(m.items, key) }
func (m *mapCache) Clear()                           { m.items = map[string]model.Plan{} }
func (m *mapCache) Stop()                            {}
func (m *mapCache) Metrics() Metrics {
	return Metrics{Hits: m.hits, Misses: m.miss, Size: len(m.items), Capacity: len(m.items)}
}

func TestCacheWithMetricsContract(t *testing.T) {
	var c CacheWithMetrics = newMapCache()

	_, found := c.Get("a")
	assert.False(t, found)

	c.Set("a", model.Plan{MinCost: 42})
	got, found := c.Get("a")
	assert.True(t, found)
	assert.Equal(t, 42.0, got.MinCost)

	c.Invalidate("a")
	_, found = c.Get("a")
	assert.False(t, found)

	m := c.Metrics()
	assert.Equal(t, int64(1), m.Hits)
	assert.Equal(t, int64(2), m.Misses)
	c.Stop()
}

func TestMetrics_HitRatio(t *testing.T) {
	tests := []struct {
		name    string
		metrics Metrics
		want    float64
	}{
		{"no lookups", Metrics{}, 0},
		{"all hits", Metrics{Hits: 4}, 1},
		{"mixed", Metrics{Hits: 3, Misses: 1}, 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.metrics.HitRatio(), 1e-9)
		})
	}
}
