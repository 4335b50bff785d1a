package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	dErrors "casebook/pkg/domain-errors"
	txcontext "casebook/pkg/platform/tx"
)

// PostgresTx runs a unit of work inside a single *sql.Tx carried in the context.
// Nested RunInTx calls join the outer transaction.
type PostgresTx struct {
	db      *sql.DB
	timeout time.Duration
}

func NewPostgresTx(db *sql.DB) *PostgresTx {
	return &PostgresTx{db: db, timeout: defaultTxTimeout}
}

func (t *PostgresTx) RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	if _, ok := txcontext.From(ctx); ok {
		return fn(ctx)
	}
	if err := ctx.Err(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeTimeout, "transaction aborted: context cancelled")
	}
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(txcontext.WithTx(ctx, tx)); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// WithLock runs fn inside the caller's transaction, or opens one so a
// SELECT ... FOR UPDATE inside fn holds its row lock until fn returns.
func WithLock(ctx context.Context, db *sql.DB, fn func(exec Executor) error) error {
	if tx, ok := txcontext.From(ctx); ok {
		return fn(tx)
	}
	return NewPostgresTx(db).RunInTx(ctx, func(txCtx context.Context) error {
		tx, _ := txcontext.From(txCtx)
		return fn(tx)
	})
}
