package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	redis "github.com/redis/go-redis/v9"
)

func newTestRedisCache(t *testing.T) (*RedisLookupCache, *miniredis.Miniredis) {
	t.Helper()

	srv := miniredis.RunT(t)
	c := NewRedisLookupCache(redis.NewClient(&redis.Options{Addr: srv.Addr()}))
	t.Cleanup(func() { c.Close() })
	return c, srv
}

func TestRedisLookupCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestRedisCache(t)

	if _, ok, err := c.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("Get(missing) = ok=%v err=%v, want miss", ok, err)
	}

	if err := c.Put(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("Put: %v", err)
	}

	value, ok, err := c.Get(ctx, "k")
	if err != nil || !ok {
		t.Fatalf("Get(k) = ok=%v err=%v, want hit", ok, err)
	}
	if string(value) != "v" {
		t.Fatalf("Get(k) = %q, want %q", value, "v")
	}
}

func TestRedisLookupCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, srv := newTestRedisCache(t)

	if err := c.Put(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("Put: %v", err)
	}

	srv.FastForward(2 * time.Minute)

	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Fatal("entry served past its TTL")
	}
}

func TestRedisLookupCacheFromURL(t *testing.T) {
	srv := miniredis.RunT(t)

	c, err := NewRedisLookupCacheFromURL("redis://" + srv.Addr())
	if err != nil {
		t.Fatalf("NewRedisLookupCacheFromURL: %v", err)
	}
	defer c.Close()

	ctx := context.Background()
	if err := c.Put(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if _, ok, _ := c.Get(ctx, "k"); !ok {
		t.Fatal("Get(k) missed after Put")
	}

	if _, err := NewRedisLookupCacheFromURL("://not-a-url"); err == nil {
		t.Fatal("bad URL should fail")
	}
}
