//go:build integration

package containers

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

// RedisContainer backs the leaderboard and rate limit bucket suites.
type RedisContainer struct {
	Container testcontainers.Container
	URL       string
	Client    *redis.Client
}

// NewRedisContainer starts redis and returns a connected client. The Manager
// shares the container across suites, so there is no t.Cleanup; Ryuk reaps it.
func NewRedisContainer(t *testing.T) *RedisContainer {
	t.Helper()
	ctx := context.Background()

	container, err := tcredis.Run(ctx, "redis:7-alpine")
	require.NoError(t, err, "start redis container")

	url, err := container.ConnectionString(ctx)
	if err == nil {
		var opts *redis.Options
		if opts, err = redis.ParseURL(url); err == nil {
			client := redis.NewClient(opts)
			if err = client.Ping(ctx).Err(); err == nil {
				return &RedisContainer{Container: container, URL: url, Client: client}
			}
			_ = client.Close()
		}
	}
	_ = container.Terminate(ctx)
	require.NoError(t, err, "connect to redis container")
	return nil
}

// FlushAll empties every key; suites call it from SetupTest.
func (r *RedisContainer) FlushAll(ctx context.Context) error {
	return r.Client.FlushAll(ctx).Err()
}
