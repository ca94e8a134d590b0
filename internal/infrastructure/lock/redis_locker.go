package lock

import (
	"context"
	"time"

	"paguezap/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	keyPrefix  = "paguezap:charge-send:"
	DefaultTTL = 2 * time.Minute
)

// Deletes the key only while it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisChargeLocker guards SendCharge across API replicas and the CLI.
type RedisChargeLocker struct {
	client redis.UniversalClient
	ttl    time.Duration
	logger *zap.Logger
}

var _ interfaces.IChargeLocker = (*RedisChargeLocker)(nil)

func NewRedisChargeLocker(client redis.UniversalClient, ttl time.Duration, logger *zap.Logger) *RedisChargeLocker {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisChargeLocker{client: client, ttl: ttl, logger: logger}
}

func (l *RedisChargeLocker) Acquire(ctx context.Context, chargeID string) (func(), bool, error) {
	key := keyPrefix + chargeID
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}

	release := func() {
		// The caller's context may already be cancelled.
		rctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := releaseScript.Run(rctx, l.client, []string{key}, token).Err(); err != nil {
			l.logger.Warn("release charge lock failed", zap.String("charge_id", chargeID), zap.Error(err))
		}
	}
	return release, true, nil
}
