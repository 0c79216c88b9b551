// Package service contains the business logic for the inventory optimizer.
package service

import (
	"container/list"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/guttosm/inventory-optimizer/internal/domain/model"
	"github.com/guttosm/inventory-optimizer/internal/metrics"
	"github.com/guttosm/inventory-optimizer/internal/service/cache"
)

// ShardedCache spreads plans over independently locked LRU shards. Keys are
// routed with xxhash so request fingerprints distribute evenly.
type ShardedCache struct {
	shards    []*ttlCache
	numShards int
	shardMask uint64
}

// NewShardedCache creates a sharded cache with the given total capacity and
// TTL. numShards is rounded up to a power of two; zero or less means 16.
func NewShardedCache(capacity int, ttl time.Duration, numShards int) *ShardedCache {
	if numShards <= 0 {
		numShards = 16
	}
	n := 1
	for n < numShards {
		n *= 2
	}
	numShards = n

	perShardCapacity := max(capacity/numShards, 1)

	shards := make([]*ttlCache, numShards)
	for i := range shards {
		shards[i] = newTTLCache(perShardCapacity, ttl)
	}

	return &ShardedCache{
		shards:    shards,
		numShards: numShards,
		shardMask: uint64(numShards - 1),
	}
}

func (sc *ShardedCache) getShard(key string) *ttlCache {
	return sc.shards[xxhash.Sum64String(key)&sc.shardMask]
}

// Get retrieves a plan from the owning shard.
func (sc *ShardedCache) Get(key string) (model.Plan, bool) {
	return sc.getShard(key).Get(key)
}

// Set stores a plan in the owning shard.
func (sc *ShardedCache) Set(key string, value model.Plan) {
	sc.getShard(key).Set(key, value)
}

// Invalidate removes a key from the owning shard.
func (sc *ShardedCache) Invalidate(key string) {
	sc.getShard(key).Invalidate(key)
}

// Clear removes all entries from all shards.
func (sc *ShardedCache) Clear() {
	for _, shard := range sc.shards {
		shard.Clear()
	}
}

// Stop shuts down every shard's cleanup goroutine.
func (sc *ShardedCache) Stop() {
	for _, shard := range sc.shards {
		shard.Stop()
	}
}

// Metrics returns metrics aggregated over all shards and refreshes the
// Prometheus size gauges.
func (sc *ShardedCache) Metrics() cache.Metrics {
	var total cache.Metrics
	for _, shard := range sc.shards {
		m := shard.Metrics()
		total.Hits += m.Hits
		total.Misses += m.Misses
		total.Evictions += m.Evictions
		total.Size += m.Size
		total.Capacity += m.Capacity
	}
	metrics.UpdateCacheMetrics(total.Size, total.Capacity)
	return total
}

// ttlCache is a mutex-guarded LRU with per-entry expiry. It implements
// cache.CacheWithMetrics. The front of order is the most recently used entry.
type ttlCache struct {
	mu        sync.Mutex
	capacity  int
	ttl       time.Duration
	items     map[string]*list.Element
	order     *list.List
	stopCh    chan struct{}
	stopOnce  sync.Once
	hits      atomic.Int64
	misses    atomic.Int64
	evictions atomic.Int64
}

type cacheEntry struct {
	key       string
	plan      model.Plan
	expiresAt time.Time
}

// newTTLCache creates an LRU cache and starts its cleanup goroutine.
func newTTLCache(capacity int, ttl time.Duration) *ttlCache {
	capacity = max(capacity, 1)
	c := &ttlCache{
		capacity: capacity,
		ttl:      ttl,
		items:    make(map[string]*list.Element, capacity),
		order:    list.New(),
		stopCh:   make(chan struct{}),
	}
	go c.startCleanup(time.Minute)
	return c
}

// Stop shuts down the cleanup goroutine. It is safe to call more than once.
func (c *ttlCache) Stop() {
	c.stopOnce.Do(func() { close(c.stopCh) })
}

// Metrics returns current cache performance metrics.
func (c *ttlCache) Metrics() cache.Metrics {
	c.mu.Lock()
	size := c.order.Len()
	c.mu.Unlock()

	return cache.Metrics{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
		Size:      size,
		Capacity:  c.capacity,
	}
}

// Get returns a copy of the cached plan if present and not expired.
func (c *ttlCache) Get(key string) (model.Plan, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		c.misses.Add(1)
		metrics.RecordCacheOperation("get", "miss")
		return model.Plan{}, false
	}

	entry := el.Value.(*cacheEntry)
	if time.Now().After(entry.expiresAt) {
		c.remove(el)
		c.misses.Add(1)
		metrics.RecordCacheOperation("get", "expired")
		return model.Plan{}, false
	}

	c.order.MoveToFront(el)
	c.hits.Add(1)
	metrics.RecordCacheOperation("get", "hit")
	return clonePlan(entry.plan), true
}

// Set adds or refreshes a plan, evicting the least recently used entry
// once capacity is exceeded.
func (c *ttlCache) Set(key string, plan model.Plan) {
	plan = clonePlan(plan)
	expiresAt := time.Now().Add(c.ttl)

	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		entry := el.Value.(*cacheEntry)
		entry.plan, entry.expiresAt = plan, expiresAt
		c.order.MoveToFront(el)
		return
	}

	c.items[key] = c.order.PushFront(&cacheEntry{key: key, plan: plan, expiresAt: expiresAt})
	if c.order.Len() > c.capacity {
		c.remove(c.order.Back())
		c.evictions.Add(1)
		metrics.RecordCacheOperation("evict", "capacity")
	}
	metrics.RecordCacheOperation("set", "success")
}

func (c *ttlCache) startCleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.cleanup()
		case <-c.stopCh:
			return
		}
	}
}

// cleanup drops expired entries, walking from the least recently used end.
func (c *ttlCache) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for el := c.order.Back(); el != nil; {
		prev := el.Prev()
		if now.After(el.Value.(*cacheEntry).expiresAt) {
			c.remove(el)
		}
		el = prev
	}
}

func (c *ttlCache) remove(el *list.Element) {
	entry := c.order.Remove(el).(*cacheEntry)
	delete(c.items, entry.key)
}

// Invalidate removes a specific key.
func (c *ttlCache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		c.remove(el)
		metrics.RecordCacheOperation("invalidate", "success")
	}
}

// Clear drops every entry and resets the counters.
func (c *ttlCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	clear(c.items)
	c.order.Init()
	c.hits.Store(0)
	c.misses.Store(0)
	c.evictions.Store(0)

	metrics.RecordCacheOperation("clear", "success")
}

// clonePlan copies the slices of a plan so cached values never alias
// caller-owned memory.
func clonePlan(p model.Plan) model.Plan {
	p.Orders = slices.Clone(p.Orders)
	p.Days = slices.Clone(p.Days)
	return p
}
