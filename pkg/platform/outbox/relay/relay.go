// Package relay polls the outbox and hands unpublished events to a Publisher.
package relay

import (
	"context"
	"log/slog"
	"time"

	"casebook/internal/platform/metrics"
	"casebook/pkg/platform/outbox"
)

const (
	defaultInterval  = time.Second
	defaultBatchSize = 100
)

// Worker drains the outbox on a fixed interval until its context ends.
type Worker struct {
	source    outbox.Source
	publisher outbox.Publisher
	interval  time.Duration
	batchSize int
	logger    *slog.Logger
	metrics   *metrics.Metrics
}

type Option func(*Worker)

func WithInterval(d time.Duration) Option {
	return func(w *Worker) {
		if d > 0 {
			w.interval = d
		}
	}
}

func WithBatchSize(n int) Option {
	return func(w *Worker) {
		if n > 0 {
			w.batchSize = n
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(w *Worker) {
		w.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(w *Worker) {
		w.metrics = m
	}
}

func New(source outbox.Source, publisher outbox.Publisher, opts ...Option) *Worker {
	w := &Worker{
		source:    source,
		publisher: publisher,
		interval:  defaultInterval,
		batchSize: defaultBatchSize,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run polls until ctx is cancelled. Publish failures are logged and retried
// on the next tick; they never stop the worker.
func (w *Worker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			w.drain(ctx)
		}
	}
}

// drain publishes full batches until the outbox is empty or a batch fails.
func (w *Worker) drain(ctx context.Context) {
	for {
		n, err := w.RelayOnce(ctx)
		if err != nil {
			if ctx.Err() == nil {
				w.logger.ErrorContext(ctx, "outbox relay failed", "error", err)
			}
			return
		}
		if n < w.batchSize {
			return
		}
	}
}

// RelayOnce publishes a single batch and returns how many events it carried.
func (w *Worker) RelayOnce(ctx context.Context) (int, error) {
	n, err := w.source.Claim(ctx, w.batchSize, w.publisher.Publish)
	if err != nil {
		if w.metrics != nil {
			w.metrics.IncrementRelayFailures()
		}
		return 0, err
	}
	if w.metrics != nil {
		w.metrics.ObserveRelayBatch(n)
	}
	if n > 0 {
		w.logger.DebugContext(ctx, "outbox batch relayed", "count", n)
	}
	return n, nil
}
