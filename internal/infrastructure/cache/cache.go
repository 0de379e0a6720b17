// Package cache provides a short-lived search-result cache backed by Redis.
// Caching is best effort: a miss, a marshalling problem, or an unreachable
// Redis never fails a search, it just skips the cache.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/travel-offers/offer-pricing-service/internal/domain"
)

// SearchCache caches priced search responses keyed by their criteria.
type SearchCache interface {
	// Get returns the cached response for the criteria, if present.
	Get(ctx context.Context, criteria domain.SearchCriteria) (*domain.SearchResponse, bool)

	// Set stores the response for the criteria.
	Set(ctx context.Context, criteria domain.SearchCriteria, resp *domain.SearchResponse) error

	// Close releases the underlying connection.
	Close() error
}

// RedisCache is a SearchCache backed by a Redis instance.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// RedisConfig holds connection settings for the Redis cache.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// NewRedisCache connects to Redis and verifies the connection with a ping.
func NewRedisCache(cfg RedisConfig) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisCache{
		client: client,
		ttl:    cfg.TTL,
	}, nil
}

// Get implements SearchCache.Get.
func (c *RedisCache) Get(ctx context.Context, criteria domain.SearchCriteria) (*domain.SearchResponse, bool) {
	data, err := c.client.Get(ctx, cacheKey(criteria)).Bytes()
	if err != nil {
		return nil, false
	}

	var resp domain.SearchResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, false
	}

	return &resp, true
}

// Set implements SearchCache.Set.
func (c *RedisCache) Set(ctx context.Context, criteria domain.SearchCriteria, resp *domain.SearchResponse) error {
	data, err := json.Marshal(resp)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, cacheKey(criteria), data, c.ttl).Err()
}

// Close implements SearchCache.Close.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

// NoOpCache is a SearchCache that caches nothing. It is used when caching is
// disabled or Redis is unreachable at startup.
type NoOpCache struct{}

// NewNoOpCache creates a NoOpCache.
func NewNoOpCache() *NoOpCache {
	return &NoOpCache{}
}

// Get always misses.
func (c *NoOpCache) Get(ctx context.Context, criteria domain.SearchCriteria) (*domain.SearchResponse, bool) {
	return nil, false
}

// Set discards the response.
func (c *NoOpCache) Set(ctx context.Context, criteria domain.SearchCriteria, resp *domain.SearchResponse) error {
	return nil
}

// Close is a no-op.
func (c *NoOpCache) Close() error {
	return nil
}

// cacheKey derives a stable key from the search criteria. Ticket count is
// part of the key because pricing depends on it.
func cacheKey(criteria domain.SearchCriteria) string {
	keyData := struct {
		Origin        string
		Destination   string
		DepartureDate string
		ReturnDate    string
		Tickets       int
	}{
		Origin:        criteria.Origin,
		Destination:   criteria.Destination,
		DepartureDate: criteria.DepartureDate,
		Tickets:       criteria.Tickets,
	}
	if criteria.ReturnDate != nil {
		keyData.ReturnDate = *criteria.ReturnDate
	}

	data, _ := json.Marshal(keyData)
	hash := sha256.Sum256(data)
	return "offers:" + hex.EncodeToString(hash[:])
}

// Ensure implementations satisfy the interface at compile time.
var (
	_ SearchCache = (*RedisCache)(nil)
	_ SearchCache = (*NoOpCache)(nil)
)
