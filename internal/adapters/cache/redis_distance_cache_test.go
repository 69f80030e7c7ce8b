package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"trip-route-service/internal/domain"
)

func newTestRedisCache(t *testing.T) (*RedisDistanceCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisDistanceCache(client, time.Hour), mr
}

func TestRedisDistanceCacheRoundTrip(t *testing.T) {
	c, _ := newTestRedisCache(t)
	ctx := context.Background()

	origin := domain.Point{Lat: 52.52, Lon: 13.405}
	dest := domain.Point{Lat: 48.8566, Lon: 2.3522}

	if _, ok, err := c.Get(ctx, origin, dest); err != nil || ok {
		t.Fatalf("cold cache: got ok=%v err=%v, want miss", ok, err)
	}

	if err := c.Put(ctx, origin, dest, 1054.2); err != nil {
		t.Fatalf("put: %v", err)
	}

	km, ok, err := c.Get(ctx, origin, dest)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok || km != 1054.2 {
		t.Fatalf("got (%f, %v), want (1054.2, true)", km, ok)
	}
}

func TestRedisDistanceCacheExpiry(t *testing.T) {
	c, mr := newTestRedisCache(t)
	ctx := context.Background()

	origin := domain.Point{Lat: 0, Lon: 0}
	dest := domain.Point{Lat: 0, Lon: 1}

	if err := c.Put(ctx, origin, dest, 111.19); err != nil {
		t.Fatalf("put: %v", err)
	}

	mr.FastForward(2 * time.Hour)

	if _, ok, err := c.Get(ctx, origin, dest); err != nil || ok {
		t.Fatalf("after expiry: got ok=%v err=%v, want miss", ok, err)
	}
}
