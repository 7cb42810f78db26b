package memcache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// PublicCache fronts the public read endpoints (website settings,
// weekly schedule) with a short-TTL in-process cache.
type PublicCache struct {
	c *gocache.Cache
}

func NewPublicCache(ttl time.Duration) *PublicCache {
	return &PublicCache{
		c: gocache.New(ttl, 2*ttl),
	}
}

func (p *PublicCache) Get(key string) (interface{}, bool) {
	return p.c.Get(key)
}

func (p *PublicCache) Set(key string, value interface{}) {
	p.c.SetDefault(key, value)
}

func (p *PublicCache) Invalidate(key string) {
	p.c.Delete(key)
}
