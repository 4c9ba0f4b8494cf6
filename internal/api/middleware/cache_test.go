package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/medroute/hospital-finder/internal/api/middleware"
	"github.com/medroute/hospital-finder/internal/domain/providers"
	"github.com/stretchr/testify/assert"
)

type memoryCache struct {
	store map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{store: map[string][]byte{}}
}

func (c *memoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	data, ok := c.store[key]
	if !ok {
		return nil, providers.ErrCacheMiss
	}
	return data, nil
}

func (c *memoryCache) Set(ctx context.Context, key string, value []byte, ttlSeconds int) error {
	c.store[key] = value
	return nil
}

func (c *memoryCache) Delete(ctx context.Context, key string) error {
	delete(c.store, key)
	return nil
}

func (c *memoryCache) Exists(ctx context.Context, key string) (bool, error) {
	_, ok := c.store[key]
	return ok, nil
}

func countingHandler(hits *int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*hits++
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"success":true}`))
	})
}

func TestCacheMiddleware_CachesHospitalDetailResponses(t *testing.T) {
	cache := newMemoryCache()
	mw := middleware.NewCacheMiddleware(cache, nil)

	hits := 0
	handler := mw.Middleware(countingHandler(&hits))

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequest("GET", "/api/hospitals/h-1", nil))

	second := httptest.NewRecorder()
	handler.ServeHTTP(second, httptest.NewRequest("GET", "/api/hospitals/h-1", nil))

	assert.Equal(t, 1, hits)
	assert.Equal(t, "MISS", first.Header().Get("X-Cache"))
	assert.Equal(t, "HIT", second.Header().Get("X-Cache"))
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestCacheMiddleware_DistinctPathsGetDistinctEntries(t *testing.T) {
	cache := newMemoryCache()
	mw := middleware.NewCacheMiddleware(cache, nil)

	hits := 0
	handler := mw.Middleware(countingHandler(&hits))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/api/hospitals/h-1", nil))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/api/hospitals/h-2", nil))

	assert.Equal(t, 2, hits)
	assert.Len(t, cache.store, 2)
}

func TestCacheMiddleware_SkipsPostRequests(t *testing.T) {
	cache := newMemoryCache()
	mw := middleware.NewCacheMiddleware(cache, nil)

	hits := 0
	handler := mw.Middleware(countingHandler(&hits))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("POST", "/api/hospitals/h-1", nil))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("POST", "/api/hospitals/h-1", nil))

	assert.Equal(t, 2, hits)
	assert.Empty(t, cache.store)
}

func TestCacheMiddleware_SkipsUnconfiguredRoutes(t *testing.T) {
	cache := newMemoryCache()
	mw := middleware.NewCacheMiddleware(cache, nil)

	hits := 0
	handler := mw.Middleware(countingHandler(&hits))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/health", nil))

	assert.Equal(t, 1, hits)
	assert.Empty(t, cache.store)
}

func TestCacheMiddleware_DoesNotCacheErrors(t *testing.T) {
	cache := newMemoryCache()
	mw := middleware.NewCacheMiddleware(cache, nil)

	handler := mw.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/api/hospitals/h-1", nil))

	assert.Empty(t, cache.store)
}
