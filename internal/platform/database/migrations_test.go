package database

import (
	"errors"
	"io"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrationsAreOrdered(t *testing.T) {
	src, err := Source()
	require.NoError(t, err)
	t.Cleanup(func() { _ = src.Close() })

	version, err := src.First()
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)

	versions := []uint{version}
	for {
		next, err := src.Next(version)
		if errors.Is(err, fs.ErrNotExist) {
			break
		}
		require.NoError(t, err)
		versions = append(versions, next)
		version = next
	}
	assert.Equal(t, []uint{1, 2, 3, 4, 5, 6}, versions)
}

func TestEmbeddedMigrationsHaveBodies(t *testing.T) {
	src, err := Source()
	require.NoError(t, err)
	t.Cleanup(func() { _ = src.Close() })

	idents := make([]string, 0, 6)
	for v := uint(1); v <= 6; v++ {
		r, ident, err := src.ReadUp(v)
		require.NoError(t, err, "version %d", v)
		body, err := io.ReadAll(r)
		_ = r.Close()
		require.NoError(t, err)
		assert.NotEmpty(t, body, "version %d", v)
		idents = append(idents, ident)
	}
	assert.Equal(t, []string{"identity", "cases", "hiring", "reputation", "outbox", "jobboard"}, idents)
}
