//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"scoring-api/internal/scoring/store"
	"scoring-api/pkg/testutil/containers"
)

type RedisStoreSuite struct {
	suite.Suite
	redis *containers.RedisContainer
	store *store.Redis
}

func TestRedisStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisStoreSuite))
}

func (s *RedisStoreSuite) SetupSuite() {
	s.redis = containers.NewRedisContainer(s.T())
	s.store = store.NewRedis(s.redis.Client)
}

func (s *RedisStoreSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
}

func (s *RedisStoreSuite) TestCacheRoundTrip() {
	ctx := context.Background()

	s.Require().NoError(s.store.CacheSet(ctx, "uid:abc", "3.5", time.Hour))

	value, ok, err := s.store.CacheGet(ctx, "uid:abc")
	s.Require().NoError(err)
	s.True(ok)
	s.Equal("3.5", value)
}

func (s *RedisStoreSuite) TestCacheGetMiss() {
	_, ok, err := s.store.CacheGet(context.Background(), "missing")
	s.Require().NoError(err)
	s.False(ok)
}

func (s *RedisStoreSuite) TestGetNotFound() {
	_, err := s.store.Get(context.Background(), "i:404")
	s.Require().ErrorIs(err, store.ErrKeyNotFound)
}

func (s *RedisStoreSuite) TestTTLExpiry() {
	ctx := context.Background()
	s.Require().NoError(s.store.CacheSet(ctx, "k", "v", time.Second))

	time.Sleep(1500 * time.Millisecond)

	_, ok, err := s.store.CacheGet(ctx, "k")
	s.Require().NoError(err)
	s.False(ok)
}
