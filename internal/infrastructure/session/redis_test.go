package session

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

func newRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client, zerolog.Nop()), mr
}

func TestRedisStore_RoundTrip(t *testing.T) {
	store, _ := newRedisStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, sampleUser()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded == nil || *loaded != *sampleUser() {
		t.Fatalf("round trip mismatch: %+v", loaded)
	}
}

func TestRedisStore_LoadEmptyIsAbsent(t *testing.T) {
	store, _ := newRedisStore(t)

	loaded, err := store.Load(context.Background())
	if err != nil || loaded != nil {
		t.Fatalf("expected absent session, got %+v, %v", loaded, err)
	}
}

func TestRedisStore_LoadCorruptIsAbsent(t *testing.T) {
	store, mr := newRedisStore(t)
	mr.Set(sessionKey, "{not json")

	loaded, err := store.Load(context.Background())
	if err != nil || loaded != nil {
		t.Fatalf("corrupt slot must degrade to absent, got %+v, %v", loaded, err)
	}
}

func TestRedisStore_ClearIsIdempotent(t *testing.T) {
	store, _ := newRedisStore(t)
	ctx := context.Background()

	if err := store.Clear(ctx); err != nil {
		t.Fatalf("clear on empty slot: %v", err)
	}

	if err := store.Save(ctx, sampleUser()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("second Clear: %v", err)
	}
	if loaded, _ := store.Load(ctx); loaded != nil {
		t.Fatalf("expected absent after clear, got %+v", loaded)
	}
}

func TestConnect_FailsFastWhenUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	if _, err := Connect(context.Background(), RedisConfig{Addr: addr}); err == nil {
		t.Fatalf("expected connect failure against closed server")
	}
}
