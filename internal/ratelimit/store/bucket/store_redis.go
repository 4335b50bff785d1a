package bucket

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"casebook/internal/ratelimit/models"
)

// Redis is a sliding window shared by every instance: one sorted set per key,
// scored by request time in milliseconds.
type Redis struct {
	client *redis.Client
	now    func() time.Time
}

func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client, now: time.Now}
}

// Allow trims the window, counts it, and records the request only when there
// is room. The count and the insert are separate round trips, so concurrent
// callers can overshoot the limit by the number of in-flight requests.
func (s *Redis) Allow(ctx context.Context, key string, limit int, window time.Duration) (*models.Result, error) {
	now := s.now()
	cutoff := strconv.FormatInt(now.Add(-window).UnixMilli(), 10)

	pipe := s.client.TxPipeline()
	pipe.ZRemRangeByScore(ctx, key, "-inf", "("+cutoff)
	count := pipe.ZCard(ctx, key)
	oldest := pipe.ZRangeWithScores(ctx, key, 0, 0)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("read rate limit window: %w", err)
	}

	if int(count.Val()) >= limit {
		resetAt := now.Add(window)
		if zs := oldest.Val(); len(zs) > 0 {
			resetAt = time.UnixMilli(int64(zs[0].Score)).Add(window)
		}
		return &models.Result{
			Allowed:    false,
			Limit:      limit,
			ResetAt:    resetAt,
			RetryAfter: retryAfter(now, resetAt),
		}, nil
	}

	pipe = s.client.TxPipeline()
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(now.UnixMilli()), Member: uuid.NewString()})
	pipe.PExpire(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("record rate limit hit: %w", err)
	}

	resetAt := now.Add(window)
	if zs := oldest.Val(); len(zs) > 0 {
		resetAt = time.UnixMilli(int64(zs[0].Score)).Add(window)
	}
	return &models.Result{
		Allowed:   true,
		Limit:     limit,
		Remaining: limit - int(count.Val()) - 1,
		ResetAt:   resetAt,
	}, nil
}

func (s *Redis) Reset(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}
