package services

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// CachedPage is one fully rendered response body.
type CachedPage struct {
	ContentType string
	Body        []byte
}

// PageCache is a time-bounded cache of whole rendered pages keyed by
// request target. Writers never invalidate it; entries simply age out
// after the TTL. Clear drops everything, mainly for tests and admin
// tooling.
type PageCache struct {
	ttl   time.Duration
	cache *gocache.Cache
}

func NewPageCache(ttl time.Duration) *PageCache {
	return &PageCache{
		ttl:   ttl,
		cache: gocache.New(ttl, ttl),
	}
}

func (pc *PageCache) Get(key string) (*CachedPage, bool) {
	entry, ok := pc.cache.Get(key)
	if !ok {
		return nil, false
	}
	return entry.(*CachedPage), true
}

func (pc *PageCache) Set(key string, page *CachedPage) {
	pc.cache.Set(key, page, pc.ttl)
}

func (pc *PageCache) Clear() {
	pc.cache.Flush()
}

func (pc *PageCache) TTL() time.Duration {
	return pc.ttl
}
