package circuit

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBreakerStartsClosed(t *testing.T) {
	b := New("ratelimit")
	assert.Equal(t, "ratelimit", b.Name())
	assert.Equal(t, StateClosed, b.State())
	assert.Equal(t, "closed", b.State().String())
	assert.False(t, b.IsOpen())
}

func TestBreakerTransitions(t *testing.T) {
	t.Run("opens on the threshold failure only", func(t *testing.T) {
		b := New("redis", WithFailureThreshold(2))

		fallback, change := b.RecordFailure()
		assert.False(t, fallback)
		assert.False(t, change.Opened)

		fallback, change = b.RecordFailure()
		assert.True(t, fallback)
		assert.True(t, change.Opened)
		assert.Equal(t, "open", b.State().String())

		fallback, change = b.RecordFailure()
		assert.True(t, fallback)
		assert.False(t, change.Opened)
	})

	t.Run("closes after consecutive successes", func(t *testing.T) {
		b := New("redis", WithFailureThreshold(1), WithSuccessThreshold(2))
		b.RecordFailure()

		primary, change := b.RecordSuccess()
		assert.False(t, primary)
		assert.False(t, change.Closed)

		primary, change = b.RecordSuccess()
		assert.True(t, primary)
		assert.True(t, change.Closed)
		assert.False(t, b.IsOpen())
	})

	t.Run("a failure while open restarts the success count", func(t *testing.T) {
		b := New("redis", WithFailureThreshold(1), WithSuccessThreshold(2))
		b.RecordFailure()
		b.RecordSuccess()
		b.RecordFailure()
		b.RecordSuccess()
		assert.True(t, b.IsOpen())
		b.RecordSuccess()
		assert.False(t, b.IsOpen())
	})

	t.Run("a success while closed clears failures", func(t *testing.T) {
		b := New("redis", WithFailureThreshold(2))
		b.RecordFailure()
		b.RecordSuccess()
		b.RecordFailure()
		assert.False(t, b.IsOpen())
	})

	t.Run("reset closes", func(t *testing.T) {
		b := New("redis", WithFailureThreshold(1))
		b.RecordFailure()
		b.Reset()
		assert.Equal(t, StateClosed, b.State())
	})
}

func TestBreakerIgnoresNonPositiveThresholds(t *testing.T) {
	b := New("redis", WithFailureThreshold(0), WithSuccessThreshold(-1))
	for range 4 {
		b.RecordFailure()
	}
	assert.False(t, b.IsOpen())
	b.RecordFailure()
	assert.True(t, b.IsOpen())
}

func TestBreakerConcurrentUse(t *testing.T) {
	b := New("redis", WithFailureThreshold(50))
	var wg sync.WaitGroup
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b.RecordFailure()
		}()
	}
	wg.Wait()
	assert.True(t, b.IsOpen())
}
