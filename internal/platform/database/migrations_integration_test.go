//go:build integration

package database_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"casebook/internal/platform/database"
	"casebook/pkg/testutil/containers"
)

func TestMigrateIsIdempotent(t *testing.T) {
	pg := containers.GetManager().GetPostgres(t)
	ctx := context.Background()

	require.NoError(t, database.Migrate(ctx, pg.DB, nil))
	require.NoError(t, database.Migrate(ctx, pg.DB, nil))

	var version int
	var dirty bool
	require.NoError(t, pg.DB.QueryRowContext(ctx,
		"SELECT version, dirty FROM schema_migrations").Scan(&version, &dirty))
	assert.Equal(t, 6, version)
	assert.False(t, dirty)

	// the shared pool survives the migrator closing
	require.NoError(t, pg.DB.PingContext(ctx))
}
