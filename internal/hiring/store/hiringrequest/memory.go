package hiringrequest

import (
	"context"
	"sort"
	"sync"

	"casebook/internal/hiring/models"
	id "casebook/pkg/domain"
	"casebook/pkg/platform/sentinel"
	txcontext "casebook/pkg/platform/tx"
)

// InMemory holds hiring requests keyed by ID. Create checks for an open
// request on the same (organization, investigator, case) under the write lock.
type InMemory struct {
	txcontext.Gated
	mu       sync.RWMutex
	requests map[id.HiringRequestID]*models.HiringRequest
}

func NewInMemory() *InMemory {
	return &InMemory{requests: make(map[id.HiringRequestID]*models.HiringRequest)}
}

func (s *InMemory) Create(ctx context.Context, r *models.HiringRequest) error {
	defer s.WriteGate(ctx)()
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.requests[r.ID]; exists {
		return sentinel.ErrAlreadyUsed
	}
	for _, existing := range s.requests {
		if !existing.Status.IsTerminal() && existing.SameTriple(r) {
			return sentinel.ErrAlreadyUsed
		}
	}
	s.requests[r.ID] = r.Clone()
	return nil
}

func (s *InMemory) FindByID(ctx context.Context, requestID id.HiringRequestID) (*models.HiringRequest, error) {
	defer s.ReadGate(ctx)()
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.requests[requestID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return r.Clone(), nil
}

func (s *InMemory) ListByOrganization(ctx context.Context, orgID id.UserID) ([]*models.HiringRequest, error) {
	return s.collect(ctx, func(r *models.HiringRequest) bool { return r.OrganizationID == orgID }), nil
}

func (s *InMemory) ListByInvestigator(ctx context.Context, investigatorID id.UserID) ([]*models.HiringRequest, error) {
	return s.collect(ctx, func(r *models.HiringRequest) bool { return r.InvestigatorID == investigatorID }), nil
}

func (s *InMemory) ListByCase(ctx context.Context, caseID id.CaseID) ([]*models.HiringRequest, error) {
	return s.collect(ctx, func(r *models.HiringRequest) bool { return r.CaseID == caseID }), nil
}

func (s *InMemory) Execute(ctx context.Context, requestID id.HiringRequestID, validate func(*models.HiringRequest) error, mutate func(*models.HiringRequest)) (*models.HiringRequest, error) {
	defer s.WriteGate(ctx)()
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.requests[requestID]
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
	s.requests[requestID] = working
	return working.Clone(), nil
}

func (s *InMemory) Snapshot() func() {
	s.mu.RLock()
	requests := make(map[id.HiringRequestID]*models.HiringRequest, len(s.requests))
	for k, v := range s.requests {
		requests[k] = v.Clone()
	}
	s.mu.RUnlock()
	return func() {
		s.mu.Lock()
		s.requests = requests
		s.mu.Unlock()
	}
}

// collect returns matches newest first.
func (s *InMemory) collect(ctx context.Context, match func(*models.HiringRequest) bool) []*models.HiringRequest {
	defer s.ReadGate(ctx)()
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.HiringRequest, 0)
	for _, r := range s.requests {
		if match(r) {
			out = append(out, r.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].RequestedAt.Equal(out[j].RequestedAt) {
			return out[i].ID.String() < out[j].ID.String()
		}
		return out[i].RequestedAt.After(out[j].RequestedAt)
	})
	return out
}
