package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/errgroup"

	"github.com/osse101/CarPacks_Go/internal/domain"
	"github.com/osse101/CarPacks_Go/internal/logger"
	"github.com/osse101/CarPacks_Go/internal/metrics"
	"github.com/osse101/CarPacks_Go/internal/repository"
)

// CacheSchemaVersion is the current version of the cache schema.
// Increment this when the cached data structure changes to auto-invalidate old entries.
const CacheSchemaVersion = "1.0"

// Lookup kinds, used as cache key prefixes and metric labels.
const (
	KindPack    = "pack"
	KindWeights = "weights"
	KindPool    = "pool"
)

// warmConcurrency bounds concurrent catalog reads during Warm.
const warmConcurrency = 4

type cachedEntry[T any] struct {
	Version  string
	Value    T
	CachedAt time.Time
}

type lruCache[T any] struct {
	kind string
	lru  *expirable.LRU[string, *cachedEntry[T]]
}

func newLRUCache[T any](kind string, size int, ttl time.Duration) *lruCache[T] {
	return &lruCache[T]{
		kind: kind,
		lru:  expirable.NewLRU[string, *cachedEntry[T]](size, nil, ttl),
	}
}

func (c *lruCache[T]) get(packID string) (T, bool) {
	var zero T
	key := c.kind + ":" + packID
	entry, found := c.lru.Get(key)
	if !found {
		metrics.CatalogCacheLookups.WithLabelValues(c.kind, metrics.CacheResultMiss).Inc()
		return zero, false
	}
	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(key)
		metrics.CatalogCacheLookups.WithLabelValues(c.kind, metrics.CacheResultMiss).Inc()
		return zero, false
	}
	metrics.CatalogCacheLookups.WithLabelValues(c.kind, metrics.CacheResultHit).Inc()
	return entry.Value, true
}

func (c *lruCache[T]) set(packID string, value T) {
	c.lru.Add(c.kind+":"+packID, &cachedEntry[T]{
		Version:  CacheSchemaVersion,
		Value:    value,
		CachedAt: time.Now(),
	})
}

func (c *lruCache[T]) remove(packID string) {
	c.lru.Remove(c.kind + ":" + packID)
}

// CachedCatalog is a read-through cache in front of a repository.Catalog.
// Catalog data is treated as read-only configuration, so entries live until
// they expire or are invalidated. Missing packs are never cached.
type CachedCatalog struct {
	inner   repository.Catalog
	enabled bool
	packs   *lruCache[domain.Pack]
	weights *lruCache[[]domain.RarityWeight]
	pools   *lruCache[[]domain.Card]
}

var _ repository.Catalog = (*CachedCatalog)(nil)

// NewCachedCatalog wraps inner with an expirable LRU per lookup kind.
// A non-positive size or ttl disables caching and every call passes through.
func NewCachedCatalog(inner repository.Catalog, size int, ttl time.Duration) *CachedCatalog {
	c := &CachedCatalog{inner: inner}
	if size <= 0 || ttl <= 0 {
		return c
	}
	c.enabled = true
	c.packs = newLRUCache[domain.Pack](KindPack, size, ttl)
	c.weights = newLRUCache[[]domain.RarityWeight](KindWeights, size, ttl)
	c.pools = newLRUCache[[]domain.Card](KindPool, size, ttl)
	return c
}

// Enabled reports whether lookups are cached.
func (c *CachedCatalog) Enabled() bool {
	return c.enabled
}

// GetPack implements repository.Catalog.
func (c *CachedCatalog) GetPack(ctx context.Context, packID string) (*domain.Pack, error) {
	if c.enabled {
		if p, ok := c.packs.get(packID); ok {
			return &p, nil
		}
	}
	p, err := c.inner.GetPack(ctx, packID)
	if err != nil {
		return nil, err
	}
	if c.enabled && p != nil {
		c.packs.set(packID, *p)
	}
	return p, nil
}

// ListPacks always reads through; it is only used by tooling and Warm.
func (c *CachedCatalog) ListPacks(ctx context.Context) ([]domain.Pack, error) {
	return c.inner.ListPacks(ctx)
}

// GetRarityWeights implements repository.Catalog. The returned slice is a copy.
func (c *CachedCatalog) GetRarityWeights(ctx context.Context, packID string) ([]domain.RarityWeight, error) {
	if c.enabled {
		if w, ok := c.weights.get(packID); ok {
			return append([]domain.RarityWeight(nil), w...), nil
		}
	}
	w, err := c.inner.GetRarityWeights(ctx, packID)
	if err != nil {
		return nil, err
	}
	if c.enabled {
		c.weights.set(packID, append([]domain.RarityWeight(nil), w...))
	}
	return w, nil
}

// GetPoolCards implements repository.Catalog. The returned slice is a copy.
func (c *CachedCatalog) GetPoolCards(ctx context.Context, packID string) ([]domain.Card, error) {
	if c.enabled {
		if cards, ok := c.pools.get(packID); ok {
			return append([]domain.Card(nil), cards...), nil
		}
	}
	cards, err := c.inner.GetPoolCards(ctx, packID)
	if err != nil {
		return nil, err
	}
	if c.enabled {
		c.pools.set(packID, append([]domain.Card(nil), cards...))
	}
	return cards, nil
}

// Invalidate drops every cached entry for a pack.
func (c *CachedCatalog) Invalidate(packID string) {
	if !c.enabled {
		return
	}
	c.packs.remove(packID)
	c.weights.remove(packID)
	c.pools.remove(packID)
}

// Clear removes all entries from the cache.
func (c *CachedCatalog) Clear() {
	if !c.enabled {
		return
	}
	c.packs.lru.Purge()
	c.weights.lru.Purge()
	c.pools.lru.Purge()
}

// Warm preloads pack, weight and pool entries for every pack in the catalog.
func (c *CachedCatalog) Warm(ctx context.Context) error {
	if !c.enabled {
		return nil
	}
	log := logger.FromContext(ctx)

	packs, err := c.inner.ListPacks(ctx)
	if err != nil {
		return fmt.Errorf("failed to list packs: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(warmConcurrency)
	for _, p := range packs {
		c.packs.set(p.ID, p)
		g.Go(func() error {
			w, err := c.inner.GetRarityWeights(gctx, p.ID)
			if err != nil {
				return fmt.Errorf("failed to load weights for pack %s: %w", p.ID, err)
			}
			c.weights.set(p.ID, w)

			cards, err := c.inner.GetPoolCards(gctx, p.ID)
			if err != nil {
				return fmt.Errorf("failed to load pool for pack %s: %w", p.ID, err)
			}
			c.pools.set(p.ID, cards)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	log.Info("Catalog cache warmed", "packs", len(packs))
	return nil
}
