package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"casebook/pkg/platform/outbox"
	txcontext "casebook/pkg/platform/tx"
)

// Store keeps outbox rows in insertion order.
type Store struct {
	txcontext.Gated
	mu     sync.Mutex
	events []outbox.Event
	now    func() time.Time
}

func New() *Store {
	return &Store{now: time.Now}
}

func (s *Store) Append(ctx context.Context, event outbox.Event) error {
	defer s.WriteGate(ctx)()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

// Claim only marks rows published, so it shares the gate with readers and
// never sees events of an open unit of work.
func (s *Store) Claim(ctx context.Context, limit int, publish func(ctx context.Context, events []outbox.Event) error) (int, error) {
	defer s.ReadGate(ctx)()
	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		batch   []outbox.Event
		indexes []int
	)
	for i, e := range s.events {
		if e.PublishedAt != nil {
			continue
		}
		batch = append(batch, e)
		indexes = append(indexes, i)
		if len(batch) == limit {
			break
		}
	}
	if len(batch) == 0 {
		return 0, nil
	}
	if err := publish(ctx, batch); err != nil {
		return 0, err
	}
	now := s.now()
	for _, i := range indexes {
		s.events[i].PublishedAt = &now
	}
	return len(batch), nil
}

// Events returns every row, published or not.
func (s *Store) Events() []outbox.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.events)
}

// EventsOfType filters Events by type.
func (s *Store) EventsOfType(t outbox.EventType) []outbox.Event {
	var out []outbox.Event
	for _, e := range s.Events() {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

func (s *Store) Snapshot() func() {
	s.mu.Lock()
	saved := slices.Clone(s.events)
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		s.events = saved
		s.mu.Unlock()
	}
}
