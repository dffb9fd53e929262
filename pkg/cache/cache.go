package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/henribesnard/lucide/pkg/knowledge"
	"github.com/henribesnard/lucide/pkg/metrics"
)

// Cache is the shared, process-wide key-value store keyed by normalized
// (endpoint, params), with TTL computed from the endpoint knowledge base
// and fail-closed error handling (spec.md §4.2).
type Cache struct {
	backend   Backend
	knowledge *knowledge.Base
	metrics   *metrics.Metrics

	// group collapses concurrent Get-miss-then-fetch races for the same
	// key into one winner, following the singleflight pattern used across
	// the corpus's cache-fronted executors.
	group singleflight.Group
}

// New builds a Cache over backend, consulting kb for TTL decisions and m
// for hit/miss/set metrics.
func New(backend Backend, kb *knowledge.Base, m *metrics.Metrics) *Cache {
	return &Cache{backend: backend, knowledge: kb, metrics: m}
}

// Get looks up an endpoint call's cached value. Any backend error is
// logged and treated as a miss — the cache never propagates storage
// errors into the pipeline (spec.md §4.2's failure semantics).
func (c *Cache) Get(ctx context.Context, endpointName string, params map[string]string) (any, bool) {
	key := Key(endpointName, params)
	raw, found, err := c.backend.Get(ctx, key)
	if err != nil {
		slog.Warn("cache get failed, treating as miss", "key", key, "error", err)
		c.metrics.CacheMisses.WithLabelValues(endpointName).Inc()
		return nil, false
	}
	if !found {
		c.metrics.CacheMisses.WithLabelValues(endpointName).Inc()
		return nil, false
	}

	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		slog.Warn("cache value unmarshal failed, treating as miss", "key", key, "error", err)
		c.metrics.CacheMisses.WithLabelValues(endpointName).Inc()
		return nil, false
	}
	c.metrics.CacheHits.WithLabelValues(endpointName).Inc()
	return value, true
}

// Set writes value under the normalized key for (endpointName, params),
// with a TTL derived from the knowledge base and matchStatus (empty string
// if not applicable). A TTL of 0 skips the write entirely; any backend
// error is logged and swallowed.
func (c *Cache) Set(ctx context.Context, endpointName string, params map[string]string, value any, matchStatus string) {
	ttlSeconds := c.knowledge.CacheTTL(endpointName, matchStatus)
	if ttlSeconds == 0 {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		slog.Warn("cache value marshal failed, skipping write", "endpoint", endpointName, "error", err)
		return
	}

	key := Key(endpointName, params)
	var ttl time.Duration
	if ttlSeconds > 0 {
		ttl = time.Duration(ttlSeconds) * time.Second
	} // ttlSeconds == -1: ttl stays zero, meaning "no expiry" to Backend.Set

	if err := c.backend.Set(ctx, key, raw, ttl); err != nil {
		slog.Warn("cache set failed, swallowing", "key", key, "error", err)
		return
	}
	c.metrics.CacheSets.WithLabelValues(endpointName).Inc()
	c.metrics.CacheTTL.WithLabelValues(endpointName).Observe(float64(maxInt(ttlSeconds, 0)))
}

// GetOrFetch resolves a cache stampede: concurrent callers requesting the
// same (endpointName, params) while it is missing collapse into a single
// call to fetch, via golang.org/x/sync/singleflight. fetch also returns the
// matchStatus to key the write's TTL on (spec.md §4.1's adaptive TTL table),
// since that status is only known once the upstream response is in hand;
// pass "" when the endpoint's freshness isn't match-bound.
func (c *Cache) GetOrFetch(ctx context.Context, endpointName string, params map[string]string, fetch func(context.Context) (any, string, error)) (any, bool, error) {
	if value, hit := c.Get(ctx, endpointName, params); hit {
		return value, true, nil
	}

	key := Key(endpointName, params)
	result, err, _ := c.group.Do(key, func() (any, error) {
		value, matchStatus, fetchErr := fetch(ctx)
		if fetchErr != nil {
			return nil, fetchErr
		}
		c.Set(ctx, endpointName, params, value, matchStatus)
		return value, nil
	})
	if err != nil {
		return nil, false, err
	}
	return result, false, nil
}

// Invalidate removes every key matching a path.Match-style glob pattern.
func (c *Cache) Invalidate(ctx context.Context, pattern string) {
	if err := c.backend.DeleteMatching(ctx, pattern); err != nil {
		slog.Warn("cache invalidate failed, swallowing", "pattern", pattern, "error", err)
	}
}

// ClearAll flushes the entire cache.
func (c *Cache) ClearAll(ctx context.Context) {
	if err := c.backend.Flush(ctx); err != nil {
		slog.Warn("cache clear_all failed, swallowing", "error", err)
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
