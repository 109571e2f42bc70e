package server

import (
	"context"
	"sync"
	"time"

	"github.com/mj1618/kodi-search/internal/platform"
)

// SkinCache wraps an Inspector and remembers the active skin for a TTL.
// Condition queries always pass through.
type SkinCache struct {
	inner platform.Inspector
	ttl   time.Duration
	now   func() time.Time

	mu        sync.Mutex
	skin      string
	timestamp time.Time
	valid     bool
}

// NewSkinCache creates a new cache. A ttl of 0 disables caching.
func NewSkinCache(inner platform.Inspector, ttl time.Duration) *SkinCache {
	return &SkinCache{inner: inner, ttl: ttl, now: time.Now}
}

// Condition implements platform.Inspector.
func (c *SkinCache) Condition(ctx context.Context, expr string) (bool, error) {
	return c.inner.Condition(ctx, expr)
}

// Skin returns the cached skin if within TTL, otherwise asks the host.
// Errors are never cached.
func (c *SkinCache) Skin(ctx context.Context) (string, error) {
	if c.ttl == 0 {
		return c.inner.Skin(ctx)
	}

	c.mu.Lock()
	if c.valid && c.now().Sub(c.timestamp) < c.ttl {
		skin := c.skin
		c.mu.Unlock()
		return skin, nil
	}
	c.mu.Unlock()

	skin, err := c.inner.Skin(ctx)
	if err != nil {
		return "", err
	}

	c.mu.Lock()
	c.skin, c.timestamp, c.valid = skin, c.now(), true
	c.mu.Unlock()

	return skin, nil
}

// Invalidate drops the cached skin.
func (c *SkinCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.valid = false
}
