package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// listingTTL keeps listing responses hot across the rapid filter/sort
// changes a browsing session produces. The catalog is static, so staleness
// is bounded by alert-worker recomputation, not by upstream churn.
const listingTTL = 5 * time.Minute

// ListingCache caches serialized listing responses keyed by the full
// filter/sort/page tuple. A nil *ListingCache is valid and disables caching,
// which keeps services testable without Redis.
type ListingCache struct {
	redis *RedisClient
}

// NewListingCache creates a ListingCache backed by the given Redis client.
func NewListingCache(redis *RedisClient) *ListingCache {
	return &ListingCache{redis: redis}
}

// Key builds the cache key for one listing request. Platforms are joined in
// request order: the same set in a different order is a different key, which
// is acceptable for a short-TTL cache.
func Key(category, priceRange string, platforms []string, search, sortBy string, page, limit int) string {
	return fmt.Sprintf("listing:%s:%s:%s:%s:%s:%d:%d",
		category, priceRange, strings.Join(platforms, ","), search, sortBy, page, limit)
}

// Get retrieves a cached listing into dst. The bool reports a hit.
func (c *ListingCache) Get(ctx context.Context, key string, dst interface{}) (bool, error) {
	if c == nil || c.redis == nil {
		return false, nil
	}
	raw, err := c.redis.Get(ctx, key)
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return false, fmt.Errorf("failed to unmarshal cached listing: %w", err)
	}
	return true, nil
}

// Set stores a listing response under key.
func (c *ListingCache) Set(ctx context.Context, key string, value interface{}) error {
	if c == nil || c.redis == nil {
		return nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal listing: %w", err)
	}
	return c.redis.Set(ctx, key, string(raw), listingTTL)
}
