package crimecase

import (
	"context"
	"sort"
	"sync"

	"casebook/internal/cases/models"
	id "casebook/pkg/domain"
	"casebook/pkg/platform/sentinel"
	txcontext "casebook/pkg/platform/tx"
)

// InMemory keeps cases in a map guarded by a RWMutex.
type InMemory struct {
	txcontext.Gated
	mu    sync.RWMutex
	cases map[id.CaseID]*models.CrimeCase
}

func NewInMemory() *InMemory {
	return &InMemory{cases: make(map[id.CaseID]*models.CrimeCase)}
}

func (s *InMemory) Create(ctx context.Context, c *models.CrimeCase) error {
	defer s.WriteGate(ctx)()
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.cases[c.ID]; exists {
		return sentinel.ErrAlreadyUsed
	}
	s.cases[c.ID] = c.Clone()
	return nil
}

func (s *InMemory) FindByID(ctx context.Context, caseID id.CaseID) (*models.CrimeCase, error) {
	defer s.ReadGate(ctx)()
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.cases[caseID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return c.Clone(), nil
}

// List returns matching cases, newest first.
func (s *InMemory) List(ctx context.Context, filter models.Filter) ([]*models.CrimeCase, error) {
	defer s.ReadGate(ctx)()
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.CrimeCase, 0)
	for _, c := range s.cases {
		if filter.Matches(c) {
			out = append(out, c.Clone())
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (s *InMemory) ListSolvedWithoutBadge(ctx context.Context) ([]*models.CrimeCase, error) {
	defer s.ReadGate(ctx)()
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.CrimeCase, 0)
	for _, c := range s.cases {
		if c.Status == models.StatusSolved && !c.BadgeAwarded {
			out = append(out, c.Clone())
		}
	}
	sortNewestFirst(out)
	return out, nil
}

// Execute validates and mutates a case under the store lock, so two
// concurrent transitions observe each other's writes.
func (s *InMemory) Execute(ctx context.Context, caseID id.CaseID, validate func(*models.CrimeCase) error, mutate func(*models.CrimeCase)) (*models.CrimeCase, error) {
	defer s.WriteGate(ctx)()
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.cases[caseID]
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
	s.cases[caseID] = working
	return working.Clone(), nil
}

func (s *InMemory) Delete(ctx context.Context, caseID id.CaseID) error {
	defer s.WriteGate(ctx)()
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.cases[caseID]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.cases, caseID)
	return nil
}

func (s *InMemory) Snapshot() func() {
	s.mu.RLock()
	cases := make(map[id.CaseID]*models.CrimeCase, len(s.cases))
	for k, v := range s.cases {
		cases[k] = v.Clone()
	}
	s.mu.RUnlock()
	return func() {
		s.mu.Lock()
		s.cases = cases
		s.mu.Unlock()
	}
}

func sortNewestFirst(cases []*models.CrimeCase) {
	sort.Slice(cases, func(i, j int) bool {
		if cases[i].PostedAt.Equal(cases[j].PostedAt) {
			return cases[i].ID.String() < cases[j].ID.String()
		}
		return cases[i].PostedAt.After(cases[j].PostedAt)
	})
}
