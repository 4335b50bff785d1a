package participation

import (
	"context"
	"sort"
	"sync"
	"time"

	"casebook/internal/participation/models"
	id "casebook/pkg/domain"
	"casebook/pkg/platform/sentinel"
	txcontext "casebook/pkg/platform/tx"
)

type pairKey struct {
	userID id.UserID
	caseID id.CaseID
}

// InMemory keys participations by (user, case); the pair key enforces the
// one-record-per-pair invariant.
type InMemory struct {
	txcontext.Gated
	mu    sync.RWMutex
	pairs map[pairKey]*models.Participation
}

func NewInMemory() *InMemory {
	return &InMemory{pairs: make(map[pairKey]*models.Participation)}
}

// Create inserts a record, failing with sentinel.ErrAlreadyUsed when the pair
// already has one.
func (s *InMemory) Create(ctx context.Context, p *models.Participation) error {
	defer s.WriteGate(ctx)()
	s.mu.Lock()
	defer s.mu.Unlock()
	key := pairKey{p.UserID, p.CaseID}
	if _, exists := s.pairs[key]; exists {
		return sentinel.ErrAlreadyUsed
	}
	s.pairs[key] = p.Clone()
	return nil
}

func (s *InMemory) FindByUserAndCase(ctx context.Context, userID id.UserID, caseID id.CaseID) (*models.Participation, error) {
	defer s.ReadGate(ctx)()
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.pairs[pairKey{userID, caseID}]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return p.Clone(), nil
}

func (s *InMemory) ListByCase(ctx context.Context, caseID id.CaseID) ([]*models.Participation, error) {
	return s.collect(ctx, func(p *models.Participation) bool { return p.CaseID == caseID }), nil
}

func (s *InMemory) ListByUser(ctx context.Context, userID id.UserID) ([]*models.Participation, error) {
	return s.collect(ctx, func(p *models.Participation) bool { return p.UserID == userID }), nil
}

func (s *InMemory) CountActiveByUser(ctx context.Context, userID id.UserID) (int, error) {
	defer s.ReadGate(ctx)()
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, p := range s.pairs {
		if p.UserID == userID && p.IsActive() {
			n++
		}
	}
	return n, nil
}

func (s *InMemory) Execute(ctx context.Context, userID id.UserID, caseID id.CaseID, validate func(*models.Participation) error, mutate func(*models.Participation)) (*models.Participation, error) {
	defer s.WriteGate(ctx)()
	s.mu.Lock()
	defer s.mu.Unlock()
	key := pairKey{userID, caseID}
	current, ok := s.pairs[key]
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
	s.pairs[key] = working
	return working.Clone(), nil
}

// DeactivateCase moves every ACTIVE record on caseID to INACTIVE and returns
// the affected users.
func (s *InMemory) DeactivateCase(ctx context.Context, caseID id.CaseID, now time.Time) ([]id.UserID, error) {
	defer s.WriteGate(ctx)()
	s.mu.Lock()
	defer s.mu.Unlock()
	var users []id.UserID
	for key, p := range s.pairs {
		if p.CaseID != caseID || !p.IsActive() {
			continue
		}
		working := p.Clone()
		working.ApplyStatus(models.StatusInactive, now)
		s.pairs[key] = working
		users = append(users, p.UserID)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].String() < users[j].String() })
	return users, nil
}

func (s *InMemory) Snapshot() func() {
	s.mu.RLock()
	pairs := make(map[pairKey]*models.Participation, len(s.pairs))
	for k, v := range s.pairs {
		pairs[k] = v.Clone()
	}
	s.mu.RUnlock()
	return func() {
		s.mu.Lock()
		s.pairs = pairs
		s.mu.Unlock()
	}
}

func (s *InMemory) collect(ctx context.Context, match func(*models.Participation) bool) []*models.Participation {
	defer s.ReadGate(ctx)()
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Participation, 0)
	for _, p := range s.pairs {
		if match(p) {
			out = append(out, p.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].JoinedAt.Equal(out[j].JoinedAt) {
			return out[i].ID.String() < out[j].ID.String()
		}
		return out[i].JoinedAt.Before(out[j].JoinedAt)
	})
	return out
}
