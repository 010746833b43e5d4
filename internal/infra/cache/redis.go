// Package cache provides the optional Redis-backed response cache.
package cache

import (
	"context"
	"log/slog"
	"time"

	"plantcare/config"
	"plantcare/internal/domain/lifecycle"
	"plantcare/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// ErrMiss is returned by Store.Get when the key is absent.
var ErrMiss = errors.New("cache miss")

// Store is a byte-oriented key/value cache with per-entry TTL.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewRedisClient connects to Redis when configured. It returns nil when the
// redis section is absent so caching stays disabled.
func NewRedisClient(params Params) *redis.Client {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Redis not configured, response caching disabled")

		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			// an unreachable cache only costs latency, so start anyway
			if err := rdb.Ping(ctx).Err(); err != nil {
				params.Logger.Warn("Redis ping failed, cache calls will fall through",
					slog.String("addr", cfg.Addr),
					slog.Any("error", err),
				)
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return errors.WithStack(rdb.Close())
		},
	})

	return rdb
}

type redisStore struct {
	rdb *redis.Client
}

// NewStore adapts a Redis client to Store, or returns nil when rdb is nil.
func NewStore(rdb *redis.Client) Store {
	if rdb == nil {
		return nil
	}

	return &redisStore{rdb: rdb}
}

func (s *redisStore) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := s.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, errors.Wrapf(err, "redis get %s", key)
	}

	return val, nil
}

func (s *redisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return errors.Wrapf(s.rdb.Set(ctx, key, value, ttl).Err(), "redis set %s", key)
}
