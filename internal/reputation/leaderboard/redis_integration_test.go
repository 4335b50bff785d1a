//go:build integration

package leaderboard_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"casebook/internal/reputation/leaderboard"
	id "casebook/pkg/domain"
	"casebook/pkg/testutil/containers"
)

type RedisLeaderboardSuite struct {
	suite.Suite
	redis *containers.RedisContainer
	board *leaderboard.Redis
}

func TestRedisLeaderboardSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisLeaderboardSuite))
}

func (s *RedisLeaderboardSuite) SetupSuite() {
	s.redis = containers.GetManager().GetRedis(s.T())
	s.board = leaderboard.NewRedis(s.redis.Client)
}

func (s *RedisLeaderboardSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
}

func (s *RedisLeaderboardSuite) TestRanksBySolvedCases() {
	ctx := context.Background()
	rookie, veteran, middle := id.UserID(uuid.New()), id.UserID(uuid.New()), id.UserID(uuid.New())
	s.Require().NoError(s.board.Record(ctx, rookie, 1, 3.5))
	s.Require().NoError(s.board.Record(ctx, veteran, 30, 4.9))
	s.Require().NoError(s.board.Record(ctx, middle, 7, 4.2))

	top, err := s.board.TopSolvers(ctx, 2)
	s.Require().NoError(err)
	s.Require().Len(top, 2)
	s.Equal(veteran, top[0].UserID)
	s.Equal(30, top[0].SolvedCases)
	s.InDelta(4.9, top[0].AverageRating, 0.0001)
	s.Equal(middle, top[1].UserID)

	s.Require().NoError(s.board.Record(ctx, rookie, 31, 3.5))
	top, err = s.board.TopSolvers(ctx, 1)
	s.Require().NoError(err)
	s.Equal(rookie, top[0].UserID)
}

func (s *RedisLeaderboardSuite) TestEmpty() {
	top, err := s.board.TopSolvers(context.Background(), 10)
	s.Require().NoError(err)
	s.Empty(top)
}

func (s *RedisLeaderboardSuite) TestKeyPrefixIsolatesBoards() {
	ctx := context.Background()
	staging := leaderboard.NewRedis(s.redis.Client, leaderboard.WithKeyPrefix("staging:leaderboard"))
	s.Require().NoError(staging.Record(ctx, id.UserID(uuid.New()), 4, 4.0))

	top, err := s.board.TopSolvers(ctx, 10)
	s.Require().NoError(err)
	s.Empty(top)

	top, err = staging.TopSolvers(ctx, 10)
	s.Require().NoError(err)
	s.Len(top, 1)
}
