package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/guttosm/inventory-optimizer/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShardedCache(t *testing.T) {
	tests := []struct {
		name       string
		numShards  int
		wantShards int
	}{
		{"default shards when zero", 0, 16},
		{"default shards when negative", -1, 16},
		{"rounds up to power of 2", 3, 4},
		{"exact power of 2", 8, 8},
		{"rounds 5 to 8", 5, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewShardedCache(100, time.Minute, tt.numShards)
			defer c.Stop()

			assert.Equal(t, tt.wantShards, c.numShards)
			assert.Equal(t, uint64(tt.wantShards-1), c.shardMask)
			assert.Len(t, c.shards, tt.wantShards)
		})
	}
}

func TestShardedCache_GetSetInvalidate(t *testing.T) {
	c := NewShardedCache(64, time.Minute, 4)
	defer c.Stop()

	plan := model.Plan{MinCost: 240, Orders: []int{50, 0, 70}, Algorithm: "bottomup"}
	c.Set("fingerprint", plan)

	got, ok := c.Get("fingerprint")
	require.True(t, ok)
	assert.Equal(t, plan, got)

	c.Invalidate("fingerprint")
	_, ok = c.Get("fingerprint")
	assert.False(t, ok)
}

func TestShardedCache_ClearAndMetrics(t *testing.T) {
	c := NewShardedCache(64, time.Minute, 4)
	defer c.Stop()

	for i := 0; i < 10; i++ {
		c.Set(fmt.Sprintf("k%d", i), model.Plan{MinCost: float64(i)})
	}
	_, _ = c.Get("k3")
	_, _ = c.Get("nope")

	m := c.Metrics()
	assert.Equal(t, 10, m.Size)
	assert.Equal(t, 64, m.Capacity)
	assert.Equal(t, int64(1), m.Hits)
	assert.Equal(t, int64(1), m.Misses)

	c.Clear()
	assert.Equal(t, 0, c.Metrics().Size)
}

func TestShardedCache_ShardDistribution(t *testing.T) {
	c := NewShardedCache(1024, time.Minute, 8)
	defer c.Stop()

	for i := 0; i < 400; i++ {
		c.Set(fmt.Sprintf("request-%d", i), model.Plan{})
	}

	used := 0
	for _, shard := range c.shards {
		if shard.Metrics().Size > 0 {
			used++
		}
	}
	assert.Equal(t, 8, used, "hashing spreads keys across every shard")

	assert.Same(t, c.getShard("request-7"), c.getShard("request-7"))
}
