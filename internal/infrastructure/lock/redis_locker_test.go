package lock

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newLocker(t *testing.T, ttl time.Duration) (*RedisChargeLocker, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisChargeLocker(client, ttl, nil), mr
}

func TestRedisChargeLocker_Acquire(t *testing.T) {
	ctx := context.Background()

	t.Run("second holder is rejected until release", func(t *testing.T) {
		l, _ := newLocker(t, time.Minute)

		release, ok, err := l.Acquire(ctx, "c1")
		if err != nil || !ok {
			t.Fatalf("expected first acquire to succeed, got ok=%v err=%v", ok, err)
		}
		if _, ok, err := l.Acquire(ctx, "c1"); err != nil || ok {
			t.Fatalf("expected second acquire to fail, got ok=%v err=%v", ok, err)
		}
		if _, ok, _ := l.Acquire(ctx, "c2"); !ok {
			t.Fatalf("expected independent charge to be lockable")
		}

		release()
		if _, ok, _ := l.Acquire(ctx, "c1"); !ok {
			t.Fatalf("expected acquire after release to succeed")
		}
	})

	t.Run("expired lock can be taken and stale release is ignored", func(t *testing.T) {
		l, mr := newLocker(t, time.Second)

		staleRelease, ok, _ := l.Acquire(ctx, "c1")
		if !ok {
			t.Fatalf("expected acquire")
		}
		mr.FastForward(2 * time.Second)

		_, ok, _ = l.Acquire(ctx, "c1")
		if !ok {
			t.Fatalf("expected acquire after ttl expiry")
		}
		staleRelease()
		if !mr.Exists(keyPrefix + "c1") {
			t.Fatalf("stale release must not delete the new holder's key")
		}
	})

	t.Run("redis down", func(t *testing.T) {
		l, mr := newLocker(t, time.Minute)
		mr.Close()
		if _, _, err := l.Acquire(ctx, "c1"); err == nil {
			t.Fatalf("expected error")
		}
	})
}
