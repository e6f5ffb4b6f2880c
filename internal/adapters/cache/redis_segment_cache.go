package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"geospend-itinerary-service/internal/domain"
)

// RedisSegmentCache is a Redis-backed cache for road-route segment
// geometries, keyed by the coordinate pair. Keys are expected to come from
// the same coordinate source on every lookup so the fixed-precision key
// stays stable.
type RedisSegmentCache struct {
	Client *redis.Client
	TTL    time.Duration
}

// DefaultSegmentTTL bounds staleness of cached road geometry.
const DefaultSegmentTTL = 7 * 24 * time.Hour

func NewRedisSegmentCache(client *redis.Client, ttl time.Duration) *RedisSegmentCache {
	if ttl <= 0 {
		ttl = DefaultSegmentTTL
	}
	return &RedisSegmentCache{Client: client, TTL: ttl}
}

// NewRedisClient connects to Redis and verifies the connection.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis connect %q: %w", addr, err)
	}

	return client, nil
}

func segmentKey(from, to domain.Coordinates) string {
	return fmt.Sprintf("routeseg:%.6f,%.6f|%.6f,%.6f", from.Lat, from.Lng, to.Lat, to.Lng)
}

// Get fetches a cached segment geometry. A miss returns (nil, nil).
func (c *RedisSegmentCache) Get(ctx context.Context, from, to domain.Coordinates) ([]domain.Coordinates, error) {
	if c.Client == nil {
		return nil, errors.New("segment cache: client is nil")
	}

	raw, err := c.Client.Get(ctx, segmentKey(from, to)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get segment cache: %w", err)
	}

	var path []domain.Coordinates
	if err := json.Unmarshal(raw, &path); err != nil {
		return nil, fmt.Errorf("get segment cache: parse cached geometry: %w", err)
	}

	return path, nil
}

// Put stores a segment geometry with the configured TTL.
func (c *RedisSegmentCache) Put(ctx context.Context, from, to domain.Coordinates, path []domain.Coordinates) error {
	if c.Client == nil {
		return errors.New("segment cache: client is nil")
	}

	if len(path) == 0 {
		return nil
	}

	raw, err := json.Marshal(path)
	if err != nil {
		return fmt.Errorf("insert segment cache: marshal geometry: %w", err)
	}

	if err := c.Client.Set(ctx, segmentKey(from, to), raw, c.TTL).Err(); err != nil {
		return fmt.Errorf("insert segment cache: %w", err)
	}

	return nil
}
