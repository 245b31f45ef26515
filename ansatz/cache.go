// SPDX-License-Identifier: MIT

package ansatz

import (
	"errors"
	"fmt"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/katalvlaran/ansatz/layer"
)

// ErrInvalidCacheSize indicates a non-positive cache capacity.
var ErrInvalidCacheSize = errors.New("ansatz: cache size must be ≥ 1")

// Cache memoizes Build by Config.Key. Failed builds are not cached.
// Only configs whose layer kinds all belong to the cache's registry are
// memoized; any other config is built directly, as is a config whose
// params cannot be keyed. Safe for concurrent use.
type Cache struct {
	entries *lru.Cache[string, *Template]
	kinds   *layer.Registry
	hits    atomic.Uint64
	misses  atomic.Uint64
	bypass  atomic.Uint64
}

// CacheOption configures a Cache.
type CacheOption func(*Cache)

// WithKinds sets the registry of layer kinds eligible for caching
// (default layer.DefaultRegistry()). Panics on nil.
func WithKinds(reg *layer.Registry) CacheOption {
	if reg == nil {
		panic("ansatz: WithKinds(nil)")
	}

	return func(c *Cache) { c.kinds = reg }
}

// NewCache returns a cache holding at most size templates.
func NewCache(size int, opts ...CacheOption) (*Cache, error) {
	if size < 1 {
		return nil, fmt.Errorf("NewCache(%d): %w", size, ErrInvalidCacheSize)
	}
	entries, err := lru.New[string, *Template](size)
	if err != nil {
		return nil, fmt.Errorf("NewCache(%d): %w", size, err)
	}
	c := &Cache{entries: entries, kinds: layer.DefaultRegistry()}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// cacheable reports whether every kind cfg can reach is registered. Kind
// names alone are keyed, so an unregistered kind could alias another.
func (c *Cache) cacheable(cfg Config) bool {
	d := cfg.withDefaults()
	kinds := []layer.Kind{d.Rotation.Kind, d.Entanglement.Base, d.Entanglement.Dense}
	if k, ok := d.Entanglement.Layer.Kind(); ok {
		kinds = append(kinds, k)
	}
	for _, k := range kinds {
		if !c.kinds.Contains(k) {
			return false
		}
	}

	return true
}

// Build returns a clone of the cached template for cfg, building and
// storing it on a miss. Concurrent misses on one key may both build; the
// results are identical.
func (c *Cache) Build(cfg Config, opts ...Option) (*Template, error) {
	if !c.cacheable(cfg) {
		c.bypass.Add(1)
		return Build(cfg, opts...)
	}
	key, err := cfg.Key()
	if err != nil {
		c.bypass.Add(1)
		o := newBuildOptions(opts...)
		o.logger.Debug("cache bypassed", zap.Error(err))
		return Build(cfg, opts...)
	}
	if t, ok := c.entries.Get(key); ok {
		c.hits.Add(1)
		return t.Clone(), nil
	}

	c.misses.Add(1)
	t, err := Build(cfg, opts...)
	if err != nil {
		return nil, err
	}
	c.entries.Add(key, t)

	return t.Clone(), nil
}

// Len returns the number of cached templates.
func (c *Cache) Len() int { return c.entries.Len() }

// Purge drops every cached template. Counters are kept.
func (c *Cache) Purge() { c.entries.Purge() }

// Counters returns the hit and miss totals.
func (c *Cache) Counters() (hits, misses uint64) {
	return c.hits.Load(), c.misses.Load()
}

// Bypassed returns how many builds skipped the cache.
func (c *Cache) Bypassed() uint64 { return c.bypass.Load() }
