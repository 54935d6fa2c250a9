// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataset

import (
	"sync"
	"time"

	"github.com/thefledgedhurricane/journal-quality/pkg/types"
)

// DefaultCacheTTL bounds how long a loaded Reference is reused before
// the next access re-reads it from disk.
const DefaultCacheTTL = 24 * time.Hour

// Cache holds one loaded Reference together with its load timestamp.
// Get reloads from source once the entry is older than the TTL. The
// cache is an explicit object owned by the caller; there is no global
// cached state.
type Cache struct {
	cfg types.DatasetConfig
	ttl time.Duration

	mu       sync.Mutex
	ref      *Reference
	loadedAt time.Time

	// now is stubbed in tests to drive expiry.
	now func() time.Time
}

// NewCache returns a cache for cfg. A non-positive cfg.CacheTTL selects
// DefaultCacheTTL.
func NewCache(cfg types.DatasetConfig) *Cache {
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Cache{cfg: cfg, ttl: ttl, now: time.Now}
}

// Get returns the cached Reference, loading or reloading it when the
// cache is empty or stale. A failed reload leaves the cache empty and
// returns the load error.
func (c *Cache) Get() (*Reference, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ref != nil && c.now().Sub(c.loadedAt) < c.ttl {
		return c.ref, nil
	}

	ref, err := Load(c.cfg)
	if err != nil {
		c.ref = nil
		return nil, err
	}
	c.ref = ref
	c.loadedAt = c.now()
	return ref, nil
}
