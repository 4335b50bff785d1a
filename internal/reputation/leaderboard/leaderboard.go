// Package leaderboard mirrors solver aggregates into ranked sets.
package leaderboard

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	id "casebook/pkg/domain"
)

const defaultKeyPrefix = "casebook:leaderboard"

// Entry is one ranked user.
type Entry struct {
	UserID        id.UserID `json:"user_id"`
	SolvedCases   int       `json:"solved_cases"`
	AverageRating float64   `json:"average_rating"`
}

// Redis keeps two sorted sets keyed by user ID: solved case count and average
// rating. TopSolvers ranks by the first and decorates with the second.
type Redis struct {
	client    *redis.Client
	solvedKey string
	ratingKey string
}

type RedisOption func(*Redis)

// WithKeyPrefix namespaces both sorted sets under prefix.
func WithKeyPrefix(prefix string) RedisOption {
	return func(l *Redis) {
		if prefix != "" {
			l.solvedKey = prefix + ":solved"
			l.ratingKey = prefix + ":rating"
		}
	}
}

func NewRedis(client *redis.Client, opts ...RedisOption) *Redis {
	l := &Redis{client: client}
	WithKeyPrefix(defaultKeyPrefix)(l)
	for _, opt := range opts {
		if opt != nil {
			opt(l)
		}
	}
	return l
}

// Record overwrites the user's scores in one pipeline.
func (l *Redis) Record(ctx context.Context, userID id.UserID, solvedCases int, averageRating float64) error {
	member := userID.String()
	pipe := l.client.TxPipeline()
	pipe.ZAdd(ctx, l.solvedKey, redis.Z{Score: float64(solvedCases), Member: member})
	pipe.ZAdd(ctx, l.ratingKey, redis.Z{Score: averageRating, Member: member})
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("record leaderboard scores: %w", err)
	}
	return nil
}

func (l *Redis) TopSolvers(ctx context.Context, n int) ([]Entry, error) {
	if n <= 0 {
		return []Entry{}, nil
	}
	ranked, err := l.client.ZRevRangeWithScores(ctx, l.solvedKey, 0, int64(n-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("read leaderboard: %w", err)
	}
	if len(ranked) == 0 {
		return []Entry{}, nil
	}
	members := make([]string, len(ranked))
	for i, z := range ranked {
		members[i], _ = z.Member.(string)
	}
	ratings, err := l.client.ZMScore(ctx, l.ratingKey, members...).Result()
	if err != nil {
		return nil, fmt.Errorf("read leaderboard ratings: %w", err)
	}

	out := make([]Entry, 0, len(ranked))
	for i, z := range ranked {
		userID, err := id.ParseUserID(members[i])
		if err != nil {
			continue
		}
		e := Entry{UserID: userID, SolvedCases: int(z.Score)}
		if i < len(ratings) {
			e.AverageRating = ratings[i]
		}
		out = append(out, e)
	}
	return out, nil
}

// Noop discards writes and ranks nobody. Used when Redis is not configured.
type Noop struct{}

func (Noop) Record(context.Context, id.UserID, int, float64) error { return nil }

func (Noop) TopSolvers(context.Context, int) ([]Entry, error) { return []Entry{}, nil }
