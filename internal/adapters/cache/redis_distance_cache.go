package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"trip-route-service/internal/domain"
)

const redisKeyPrefix = "distance:"

// Redis backed cache for routed pair distances. Entries expire so stale road
// network data eventually refreshes.
type RedisDistanceCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisDistanceCache(client *redis.Client, ttl time.Duration) *RedisDistanceCache {
	return &RedisDistanceCache{Client: client, TTL: ttl}
}

func redisKey(origin, destination domain.Point) string {
	return redisKeyPrefix + pointKey(origin) + "|" + pointKey(destination)
}

// Fetch the cached distance for one origin/destination pair.
func (r *RedisDistanceCache) Get(
	ctx context.Context,
	origin, destination domain.Point,
) (float64, bool, error) {
	if r.Client == nil {
		return 0, false, errors.New("distance cache: redis client is nil")
	}

	km, err := r.Client.Get(ctx, redisKey(origin, destination)).Float64()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("get distance cache: redis get: %w", err)
	}

	return km, true, nil
}

// Store the routed distance for one origin/destination pair.
func (r *RedisDistanceCache) Put(
	ctx context.Context,
	origin, destination domain.Point,
	km float64,
) error {
	if r.Client == nil {
		return errors.New("distance cache: redis client is nil")
	}

	if err := r.Client.Set(ctx, redisKey(origin, destination), km, r.TTL).Err(); err != nil {
		return fmt.Errorf("insert distance cache: redis set: %w", err)
	}

	return nil
}
