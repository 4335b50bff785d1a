//go:build integration

package bucket_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"casebook/internal/ratelimit/store/bucket"
	"casebook/pkg/testutil/containers"
)

type RedisBucketSuite struct {
	suite.Suite
	redis *containers.RedisContainer
	store *bucket.Redis
}

func TestRedisBucketSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisBucketSuite))
}

func (s *RedisBucketSuite) SetupSuite() {
	s.redis = containers.GetManager().GetRedis(s.T())
	s.store = bucket.NewRedis(s.redis.Client)
}

func (s *RedisBucketSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
}

func (s *RedisBucketSuite) TestAllowUntilLimit() {
	ctx := context.Background()
	for i := range 3 {
		res, err := s.store.Allow(ctx, "ratelimit:auth:ip:10.0.0.1", 3, time.Minute)
		s.Require().NoError(err)
		s.True(res.Allowed)
		s.Equal(2-i, res.Remaining)
	}
	res, err := s.store.Allow(ctx, "ratelimit:auth:ip:10.0.0.1", 3, time.Minute)
	s.Require().NoError(err)
	s.False(res.Allowed)
	s.Positive(res.RetryAfter)

	ttl, err := s.redis.Client.PTTL(ctx, "ratelimit:auth:ip:10.0.0.1").Result()
	s.Require().NoError(err)
	s.Positive(ttl)
}

func (s *RedisBucketSuite) TestReset() {
	ctx := context.Background()
	_, err := s.store.Allow(ctx, "k", 1, time.Minute)
	s.Require().NoError(err)
	s.Require().NoError(s.store.Reset(ctx, "k"))
	res, err := s.store.Allow(ctx, "k", 1, time.Minute)
	s.Require().NoError(err)
	s.True(res.Allowed)
}
