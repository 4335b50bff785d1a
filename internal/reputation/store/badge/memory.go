package badge

import (
	"context"
	"sort"
	"sync"

	"casebook/internal/reputation/models"
	id "casebook/pkg/domain"
	"casebook/pkg/platform/sentinel"
	txcontext "casebook/pkg/platform/tx"
)

// InMemory is the badge catalog; names are unique.
type InMemory struct {
	txcontext.Gated
	mu     sync.RWMutex
	badges map[id.BadgeID]*models.Badge
}

func NewInMemory() *InMemory {
	return &InMemory{badges: make(map[id.BadgeID]*models.Badge)}
}

func (s *InMemory) Create(ctx context.Context, b *models.Badge) error {
	defer s.WriteGate(ctx)()
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.badges[b.ID]; exists || s.nameTaken(b.Name, b.ID) {
		return sentinel.ErrAlreadyUsed
	}
	s.badges[b.ID] = b.Clone()
	return nil
}

func (s *InMemory) FindByID(ctx context.Context, badgeID id.BadgeID) (*models.Badge, error) {
	defer s.ReadGate(ctx)()
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.badges[badgeID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return b.Clone(), nil
}

func (s *InMemory) FindByName(ctx context.Context, name string) (*models.Badge, error) {
	defer s.ReadGate(ctx)()
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.badges {
		if b.Name == name {
			return b.Clone(), nil
		}
	}
	return nil, sentinel.ErrNotFound
}

// List returns every badge ordered by name.
func (s *InMemory) List(ctx context.Context) ([]*models.Badge, error) {
	defer s.ReadGate(ctx)()
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Badge, 0, len(s.badges))
	for _, b := range s.badges {
		out = append(out, b.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *InMemory) Execute(ctx context.Context, badgeID id.BadgeID, validate func(*models.Badge) error, mutate func(*models.Badge)) (*models.Badge, error) {
	defer s.WriteGate(ctx)()
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.badges[badgeID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	working := current.Clone()
	if validate != nil {
		if err := validate(working); err != nil {
			return nil, err
		}
	}
	mutate(working)
	if s.nameTaken(working.Name, badgeID) {
		return nil, sentinel.ErrAlreadyUsed
	}
	s.badges[badgeID] = working
	return working.Clone(), nil
}

func (s *InMemory) Snapshot() func() {
	s.mu.RLock()
	badges := make(map[id.BadgeID]*models.Badge, len(s.badges))
	for k, v := range s.badges {
		badges[k] = v.Clone()
	}
	s.mu.RUnlock()
	return func() {
		s.mu.Lock()
		s.badges = badges
		s.mu.Unlock()
	}
}

func (s *InMemory) nameTaken(name string, except id.BadgeID) bool {
	for otherID, b := range s.badges {
		if otherID != except && b.Name == name {
			return true
		}
	}
	return false
}
