package database

import (
	"context"
	"testing"

	"paguezap/internal/config"

	"github.com/alicebob/miniredis/v2"
)

func TestConnectRedis(t *testing.T) {
	t.Run("disabled without address", func(t *testing.T) {
		client, err := ConnectRedis(context.Background(), config.RedisConfig{})
		if err != nil || client != nil {
			t.Fatalf("expected nil client and nil error, got %v %v", client, err)
		}
	})

	t.Run("connects", func(t *testing.T) {
		mr := miniredis.RunT(t)
		client, err := ConnectRedis(context.Background(), config.RedisConfig{Addr: mr.Addr()})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		defer client.Close()
	})

	t.Run("unreachable", func(t *testing.T) {
		mr := miniredis.RunT(t)
		addr := mr.Addr()
		mr.Close()
		if _, err := ConnectRedis(context.Background(), config.RedisConfig{Addr: addr}); err == nil {
			t.Fatalf("expected ping error")
		}
	})
}
