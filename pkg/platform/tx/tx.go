// Package tx carries the active unit of work through a context so stores can
// join it without the service passing handles around.
package tx

import (
	"context"
	"database/sql"
	"sync"
)

type ctxKey struct{}
type memoryKey struct{}

var (
	txKey     = ctxKey{}
	memoryTxn = memoryKey{}
)

// WithTx stores a SQL transaction in context for downstream store usage.
func WithTx(ctx context.Context, tx *sql.Tx) context.Context {
	if tx == nil {
		return ctx
	}
	return context.WithValue(ctx, txKey, tx)
}

// From extracts a SQL transaction from context if present.
func From(ctx context.Context) (*sql.Tx, bool) {
	tx, ok := ctx.Value(txKey).(*sql.Tx)
	return tx, ok
}

// WithMemory marks ctx as running inside the in-memory unit of work that
// holds g exclusively.
func WithMemory(ctx context.Context, g *Gate) context.Context {
	return context.WithValue(ctx, memoryTxn, g)
}

// InMemory reports whether ctx already runs inside an in-memory unit of work.
func InMemory(ctx context.Context) bool {
	g, _ := ctx.Value(memoryTxn).(*Gate)
	return g != nil
}

// Gate is the coordinator lock of an in-memory unit of work. The unit of
// work holds it exclusively from first write to commit or rollback; store
// access from outside takes it too, so no reader observes a write that may
// still be rolled back.
type Gate struct {
	mu sync.RWMutex
}

func (g *Gate) Lock()   { g.mu.Lock() }
func (g *Gate) Unlock() { g.mu.Unlock() }

// HeldBy reports whether ctx runs inside the unit of work holding g.
func (g *Gate) HeldBy(ctx context.Context) bool {
	held, _ := ctx.Value(memoryTxn).(*Gate)
	return held != nil && held == g
}

// Read blocks while a unit of work is open and returns the release func.
// It is a no-op for a nil gate or when ctx already holds g.
func (g *Gate) Read(ctx context.Context) (release func()) {
	if g == nil || g.HeldBy(ctx) {
		return func() {}
	}
	g.mu.RLock()
	return g.mu.RUnlock
}

// Write is Read for mutations made outside any unit of work.
func (g *Gate) Write(ctx context.Context) (release func()) {
	if g == nil || g.HeldBy(ctx) {
		return func() {}
	}
	g.mu.Lock()
	return g.mu.Unlock
}

// Gated is embedded by in-memory stores that a unit of work coordinates.
// The zero value is ungated.
type Gated struct {
	gate *Gate
}

// UseGate attaches the coordinator; call it before the store is shared.
func (g *Gated) UseGate(gate *Gate) { g.gate = gate }

func (g *Gated) ReadGate(ctx context.Context) func()  { return g.gate.Read(ctx) }
func (g *Gated) WriteGate(ctx context.Context) func() { return g.gate.Write(ctx) }

// Active reports whether any unit of work is attached to ctx.
func Active(ctx context.Context) bool {
	if _, ok := From(ctx); ok {
		return true
	}
	return InMemory(ctx)
}
