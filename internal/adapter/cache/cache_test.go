package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"go.uber.org/fx/fxtest"

	"github.com/snstore/backend/internal/config"
)

func TestNoopAlwaysMisses(t *testing.T) {
	var c Noop

	var dest []string
	hit, err := c.Get(context.Background(), "products:list", &dest)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hit {
		t.Fatal("noop cache should never hit")
	}
	if err := c.Set(context.Background(), "products:list", []string{"a"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNewCacheWithoutRedis(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	c := newCache(cacheParams{
		Lifecycle: fxtest.NewLifecycle(t),
		Config:    &config.Config{CacheTTL: time.Minute},
		Logger:    logger,
	})
	if _, ok := c.(Noop); !ok {
		t.Fatalf("expected noop cache, got %T", c)
	}
}

func TestNewCacheWithRedis(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	c := newCache(cacheParams{
		Lifecycle: fxtest.NewLifecycle(t),
		Config:    &config.Config{RedisAddress: "localhost:6379", CacheTTL: time.Minute},
		Logger:    logger,
	})
	rc, ok := c.(*RedisCache)
	if !ok {
		t.Fatalf("expected redis cache, got %T", c)
	}
	if rc.ttl != time.Minute {
		t.Fatalf("unexpected ttl: %s", rc.ttl)
	}
	rc.Close()
}
