package storage

import (
	"context"
	"time"

	dErrors "casebook/pkg/domain-errors"
	txcontext "casebook/pkg/platform/tx"
)

const defaultTxTimeout = 5 * time.Second

// MemoryTx serializes units of work over a set of in-memory stores and
// restores every registered store when the unit of work fails.
//
// Nested RunInTx calls join the outer unit of work. Stores that embed
// txcontext.Gated share the coordinator gate, so access from outside a unit
// of work waits for it to commit or roll back.
type MemoryTx struct {
	gate    *txcontext.Gate
	stores  []Snapshotter
	timeout time.Duration
}

// NewMemoryTx registers the stores whose state is rolled back on failure.
func NewMemoryTx(stores ...Snapshotter) *MemoryTx {
	t := &MemoryTx{gate: &txcontext.Gate{}, timeout: defaultTxTimeout}
	t.Register(stores...)
	return t
}

// Register adds stores after construction.
func (t *MemoryTx) Register(stores ...Snapshotter) {
	t.gate.Lock()
	defer t.gate.Unlock()
	for _, s := range stores {
		if g, ok := s.(interface{ UseGate(*txcontext.Gate) }); ok {
			g.UseGate(t.gate)
		}
	}
	t.stores = append(t.stores, stores...)
}

func (t *MemoryTx) RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	if t.gate.HeldBy(ctx) {
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

	t.gate.Lock()
	defer t.gate.Unlock()

	if err := ctx.Err(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeTimeout, "transaction aborted: context cancelled")
	}

	restores := make([]func(), 0, len(t.stores))
	for _, s := range t.stores {
		restores = append(restores, s.Snapshot())
	}

	if err := fn(txcontext.WithMemory(ctx, t.gate)); err != nil {
		for _, restore := range restores {
			restore()
		}
		return err
	}
	return nil
}
