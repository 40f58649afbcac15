package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/iho/goloan/internal/usecase"
)

func TestCacheSetAndGet(t *testing.T) {
	client, mr := newTestRedisClient(t)

	cache := NewCache(client).Namespace("contract")
	ctx := context.Background()

	if err := cache.Set(ctx, "active:co-1", []byte(`{"id":"c-1"}`), time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	val, err := cache.Get(ctx, "active:co-1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}

	if string(val) != `{"id":"c-1"}` {
		t.Fatalf("unexpected value %s", val)
	}

	if !mr.Exists("goloan:cache:contract:active:co-1") {
		t.Fatalf("expected prefixed key in redis")
	}
}

func TestCacheMiss(t *testing.T) {
	client, _ := newTestRedisClient(t)

	_, err := NewCache(client).Get(context.Background(), "absent")
	if !errors.Is(err, usecase.ErrCacheMiss) {
		t.Fatalf("expected ErrCacheMiss, got %v", err)
	}
}

func TestCacheExpires(t *testing.T) {
	client, mr := newTestRedisClient(t)

	cache := NewCache(client)
	ctx := context.Background()

	if err := cache.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	mr.FastForward(2 * time.Minute)

	if _, err := cache.Get(ctx, "k"); !errors.Is(err, usecase.ErrCacheMiss) {
		t.Fatalf("expected expired key to miss, got %v", err)
	}
}

func TestCacheDelete(t *testing.T) {
	client, _ := newTestRedisClient(t)

	cache := NewCache(client)
	ctx := context.Background()

	if err := cache.Set(ctx, "foo", []byte("bar"), time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	if err := cache.Delete(ctx, "foo"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if _, err := cache.Get(ctx, "foo"); !errors.Is(err, usecase.ErrCacheMiss) {
		t.Fatalf("expected miss after delete, got %v", err)
	}
}

func TestCacheGetFailsWhenServerDown(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer client.Close()
	mr.Close()

	_, err := NewCache(client).Get(context.Background(), "k")
	if err == nil || errors.Is(err, usecase.ErrCacheMiss) {
		t.Fatalf("expected connection error, got %v", err)
	}
}

func TestCacheNamespaceAndDefaultTTL(t *testing.T) {
	client, mr := newTestRedisClient(t)

	cache := NewCache(client).Namespace("loans")
	ctx := context.Background()

	if err := cache.Set(ctx, "co-1", []byte("x"), 0); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	key := "goloan:cache:loans:co-1"
	if !mr.Exists(key) {
		t.Fatalf("expected namespaced key %s", key)
	}
	if ttl := mr.TTL(key); ttl != DefaultCacheTTL {
		t.Fatalf("expected default ttl, got %v", ttl)
	}
}
