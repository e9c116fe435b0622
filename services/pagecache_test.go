package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageCacheRoundTrip(t *testing.T) {
	cache := NewPageCache(time.Minute)

	_, ok := cache.Get("/")
	assert.False(t, ok)

	cache.Set("/", &CachedPage{ContentType: "text/html", Body: []byte("home")})
	page, ok := cache.Get("/")
	require.True(t, ok)
	assert.Equal(t, "text/html", page.ContentType)
	assert.Equal(t, []byte("home"), page.Body)

	// keys are distinct per request target
	_, ok = cache.Get("/?page=2")
	assert.False(t, ok)
}

func TestPageCacheExpires(t *testing.T) {
	cache := NewPageCache(50 * time.Millisecond)
	cache.Set("/", &CachedPage{Body: []byte("stale")})

	time.Sleep(100 * time.Millisecond)
	_, ok := cache.Get("/")
	assert.False(t, ok)
}

func TestPageCacheClear(t *testing.T) {
	cache := NewPageCache(time.Minute)
	cache.Set("/", &CachedPage{Body: []byte("home")})
	cache.Set("/group/cats", &CachedPage{Body: []byte("cats")})

	cache.Clear()

	_, ok := cache.Get("/")
	assert.False(t, ok)
	_, ok = cache.Get("/group/cats")
	assert.False(t, ok)
}
