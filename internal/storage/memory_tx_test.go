package storage

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	txcontext "casebook/pkg/platform/tx"
)

type counterStore struct {
	mu    sync.Mutex
	value int
}

func (c *counterStore) Snapshot() func() {
	c.mu.Lock()
	saved := c.value
	c.mu.Unlock()
	return func() {
		c.mu.Lock()
		c.value = saved
		c.mu.Unlock()
	}
}

func (c *counterStore) add(n int) {
	c.mu.Lock()
	c.value += n
	c.mu.Unlock()
}

// gatedStore shares the coordinator gate the way the in-memory stores do.
type gatedStore struct {
	txcontext.Gated
	counterStore
}

func (g *gatedStore) get(ctx context.Context) int {
	defer g.ReadGate(ctx)()
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.value
}

func (g *gatedStore) set(ctx context.Context, v int) {
	defer g.WriteGate(ctx)()
	g.mu.Lock()
	g.value = v
	g.mu.Unlock()
}

func TestMemoryTx(t *testing.T) {
	t.Run("commits on success", func(t *testing.T) {
		store := &counterStore{}
		runner := NewMemoryTx(store)

		err := runner.RunInTx(context.Background(), func(ctx context.Context) error {
			assert.True(t, txcontext.InMemory(ctx))
			store.add(2)
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 2, store.value)
	})

	t.Run("restores every registered store on failure", func(t *testing.T) {
		first := &counterStore{value: 1}
		second := &counterStore{value: 10}
		runner := NewMemoryTx(first)
		runner.Register(second)

		boom := errors.New("aggregate write failed")
		err := runner.RunInTx(context.Background(), func(ctx context.Context) error {
			first.add(5)
			second.add(5)
			return boom
		})
		require.ErrorIs(t, err, boom)
		assert.Equal(t, 1, first.value)
		assert.Equal(t, 10, second.value)
	})

	t.Run("nested calls join the outer unit of work", func(t *testing.T) {
		store := &counterStore{}
		runner := NewMemoryTx(store)

		err := runner.RunInTx(context.Background(), func(ctx context.Context) error {
			store.add(1)
			return runner.RunInTx(ctx, func(inner context.Context) error {
				store.add(1)
				return errors.New("inner failure")
			})
		})
		require.Error(t, err)
		assert.Equal(t, 0, store.value)
	})

	t.Run("cancelled context aborts before running", func(t *testing.T) {
		runner := NewMemoryTx()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		called := false
		err := runner.RunInTx(ctx, func(context.Context) error {
			called = true
			return nil
		})
		require.Error(t, err)
		assert.False(t, called)
	})

	t.Run("outside reads wait for the unit of work and see the rollback", func(t *testing.T) {
		store := &gatedStore{counterStore: counterStore{value: 1}}
		runner := NewMemoryTx(store)

		written := make(chan struct{})
		release := make(chan struct{})
		done := make(chan error, 1)
		go func() {
			done <- runner.RunInTx(context.Background(), func(ctx context.Context) error {
				store.set(ctx, 99)
				assert.Equal(t, 99, store.get(ctx), "the unit of work reads its own writes")
				close(written)
				<-release
				return errors.New("rolled back")
			})
		}()
		<-written

		read := make(chan int, 1)
		go func() { read <- store.get(context.Background()) }()
		select {
		case v := <-read:
			t.Fatalf("read %d while the unit of work was open", v)
		case <-time.After(50 * time.Millisecond):
		}

		close(release)
		require.Error(t, <-done)
		assert.Equal(t, 1, <-read)
	})

	t.Run("outside writes wait for the unit of work", func(t *testing.T) {
		store := &gatedStore{}
		runner := NewMemoryTx(store)

		entered := make(chan struct{})
		release := make(chan struct{})
		done := make(chan error, 1)
		go func() {
			done <- runner.RunInTx(context.Background(), func(ctx context.Context) error {
				store.set(ctx, 5)
				close(entered)
				<-release
				return errors.New("rolled back")
			})
		}()
		<-entered

		wrote := make(chan struct{})
		go func() {
			store.set(context.Background(), 7)
			close(wrote)
		}()
		close(release)
		require.Error(t, <-done)
		<-wrote
		assert.Equal(t, 7, store.get(context.Background()), "the outside write is not undone by the rollback")
	})

	t.Run("a unit of work on another runner does not hold this gate", func(t *testing.T) {
		store := &gatedStore{}
		runner := NewMemoryTx(store)
		other := NewMemoryTx()

		err := other.RunInTx(context.Background(), func(ctx context.Context) error {
			return runner.RunInTx(ctx, func(inner context.Context) error {
				store.set(inner, 3)
				return nil
			})
		})
		require.NoError(t, err)
		assert.Equal(t, 3, store.get(context.Background()))
	})
}
