package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"villa_pricing/internal/infrastructure/config"
	"villa_pricing/internal/usecase/interfaces"
)

var ErrLockNotAcquired = errors.New("lock: not acquired before context deadline")

const (
	keyPrefix     = "lock:"
	defaultTTL    = 10 * time.Second
	retryInterval = 50 * time.Millisecond
)

// releaseScript deletes the key only while it still holds our token, so an
// expired lock taken over by another instance is left alone.
var releaseScript = goredis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker is a single-node redis lock: SET key token NX PX ttl.
type RedisLocker struct {
	rdb    goredis.UniversalClient
	ttl    time.Duration
	logger *zap.Logger
}

var _ interfaces.ILocker = (*RedisLocker)(nil)

// NewRedisClient connects and pings, like any other startup dependency.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig, logger *zap.Logger) (*goredis.Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis connect: %w", err)
	}

	logger.Info("redis connected", zap.String("addr", cfg.Addr))
	return rdb, nil
}

func NewRedisLocker(rdb goredis.UniversalClient, ttl time.Duration, logger *zap.Logger) *RedisLocker {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &RedisLocker{rdb: rdb, ttl: ttl, logger: logger}
}

// Acquire polls until the lock is free or ctx is done.
func (l *RedisLocker) Acquire(ctx context.Context, key string) (func(context.Context) error, error) {
	key = keyPrefix + key
	token := uuid.NewString()

	ticker := time.NewTicker(retryInterval)
	defer ticker.Stop()
	for {
		ok, err := l.rdb.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("lock %s: %w", key, err)
		}
		if ok {
			return l.releaser(key, token), nil
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %s", ErrLockNotAcquired, key)
		case <-ticker.C:
		}
	}
}

func (l *RedisLocker) releaser(key, token string) func(context.Context) error {
	return func(ctx context.Context) error {
		n, err := releaseScript.Run(ctx, l.rdb, []string{key}, token).Int()
		if err != nil {
			return fmt.Errorf("unlock %s: %w", key, err)
		}
		if n == 0 {
			l.logger.Warn("lock expired before release", zap.String("key", key), zap.Duration("ttl", l.ttl))
		}
		return nil
	}
}

// NoopLocker is used when redis is not configured; a single instance relies
// on the in-process mutex alone.
type NoopLocker struct{}

var _ interfaces.ILocker = NoopLocker{}

func (NoopLocker) Acquire(context.Context, string) (func(context.Context) error, error) {
	return func(context.Context) error { return nil }, nil
}
