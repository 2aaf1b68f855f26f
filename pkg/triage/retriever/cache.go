package retriever

import (
	"context"
	"crypto/md5"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

// ContextCache stores rendered knowledge base context blocks keyed by query.
// Retrieval works identically with or without one; the cache only skips the
// embed+search round trip for repeated queries.
type ContextCache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string)
}

// CacheKey derives a stable key from the query and retrieval parameters.
func CacheKey(query string, maxResults int, threshold float64) string {
	return fmt.Sprintf("%x", md5.Sum([]byte(fmt.Sprintf("%s|%d|%.4f", query, maxResults, threshold))))
}

// MemoryCache is the in-process cache backend.
type MemoryCache struct {
	cache *gocache.Cache
}

func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		cache: gocache.New(ttl, 10*time.Minute),
	}
}

func (m *MemoryCache) Get(_ context.Context, key string) (string, bool) {
	if x, found := m.cache.Get(key); found {
		return x.(string), true
	}
	return "", false
}

func (m *MemoryCache) Set(_ context.Context, key string, value string) {
	m.cache.Set(key, value, gocache.DefaultExpiration)
}

// RedisCache shares the context cache across instances. Failures degrade to
// cache misses; a broken Redis never blocks retrieval.
type RedisCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisCache(rdb *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{
		rdb: rdb,
		ttl: ttl,
	}
}

func (r *RedisCache) Get(ctx context.Context, key string) (string, bool) {
	val, err := r.rdb.Get(ctx, "triage:context:"+key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (r *RedisCache) Set(ctx context.Context, key string, value string) {
	r.rdb.Set(ctx, "triage:context:"+key, value, r.ttl)
}
