// Package storage holds the pieces every store shares: the transaction
// runners (in-memory and PostgreSQL) and the executor lookup that lets a
// store join whatever unit of work the caller opened.
package storage

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	txcontext "casebook/pkg/platform/tx"
)

// Executor is the subset of *sql.DB and *sql.Tx the stores use.
type Executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Conn returns the transaction attached to ctx, or db when there is none.
func Conn(ctx context.Context, db *sql.DB) Executor {
	if tx, ok := txcontext.From(ctx); ok {
		return tx
	}
	return db
}

// Snapshotter is implemented by in-memory stores that take part in MemoryTx.
// Snapshot copies the current state and returns a func that restores it.
type Snapshotter interface {
	Snapshot() (restore func())
}

const uniqueViolation = "23505"

// IsUniqueViolation reports whether err is a PostgreSQL unique constraint failure.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == uniqueViolation
	}
	return false
}
