package store

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis is the production Store: a go-redis client wrapped with the retry
// policy. The client is constructed (and pinged) once by the platform
// layer; it pools connections and is safe for concurrent use.
type Redis struct {
	client *redis.Client
	policy RetryPolicy
	logger *slog.Logger
}

// RedisOption configures a Redis store.
type RedisOption func(*Redis)

// WithRetryPolicy overrides the default retry policy.
func WithRetryPolicy(p RetryPolicy) RedisOption {
	return func(s *Redis) {
		s.policy = p
	}
}

// WithLogger sets the logger used for retry reporting.
func WithLogger(logger *slog.Logger) RedisOption {
	return func(s *Redis) {
		s.logger = logger
	}
}

// NewRedis wraps an already-connected client.
func NewRedis(client *redis.Client, opts ...RedisOption) *Redis {
	s := &Redis{
		client: client,
		policy: DefaultRetryPolicy(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// transient classifies retryable errors: anything except a key miss or a
// cancelled caller.
func transient(err error) bool {
	if errors.Is(err, redis.Nil) {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return true
}

func (s *Redis) CacheSet(ctx context.Context, key, value string, ttl time.Duration) error {
	_, err := retry(s.policy, s.logger, "cache_set", transient, func() (struct{}, error) {
		return struct{}{}, s.client.Set(ctx, key, value, ttl).Err()
	})
	return err
}

func (s *Redis) CacheGet(ctx context.Context, key string) (string, bool, error) {
	value, err := retry(s.policy, s.logger, "cache_get", transient, func() (string, error) {
		return s.client.Get(ctx, key).Result()
	})
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (s *Redis) Get(ctx context.Context, key string) (string, error) {
	value, ok, err := s.CacheGet(ctx, key)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrKeyNotFound
	}
	return value, nil
}
