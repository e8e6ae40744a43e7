package repository

import (
	"context"
	"time"

	"horizonbot/internal/service"

	gocache "github.com/patrickmn/go-cache"
)

const knownLocationsKey = "known_locations"

// CachedCatalog keeps the known-location list in memory for a TTL. Every
// other call goes straight to the wrapped catalog.
type CachedCatalog struct {
	service.Catalog
	cache *gocache.Cache
}

// NewCachedCatalog creates a new cached catalog. A ttl of zero or less
// disables caching.
func NewCachedCatalog(catalog service.Catalog, ttl time.Duration) *CachedCatalog {
	c := &CachedCatalog{Catalog: catalog}
	if ttl > 0 {
		c.cache = gocache.New(ttl, 2*ttl)
	}
	return c
}

// ListKnownLocations returns the cached location names, loading them on a miss
func (c *CachedCatalog) ListKnownLocations(ctx context.Context) ([]string, error) {
	if c.cache == nil {
		return c.Catalog.ListKnownLocations(ctx)
	}
	if val, found := c.cache.Get(knownLocationsKey); found {
		return val.([]string), nil
	}

	names, err := c.Catalog.ListKnownLocations(ctx)
	if err != nil {
		return nil, err
	}
	c.cache.SetDefault(knownLocationsKey, names)
	return names, nil
}

// Invalidate drops the cached location names
func (c *CachedCatalog) Invalidate() {
	if c.cache == nil {
		return
	}
	c.cache.Delete(knownLocationsKey)
}
