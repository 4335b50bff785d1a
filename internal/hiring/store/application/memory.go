package application

import (
	"context"
	"sort"
	"sync"

	"casebook/internal/hiring/models"
	id "casebook/pkg/domain"
	"casebook/pkg/platform/sentinel"
	txcontext "casebook/pkg/platform/tx"
)

// InMemory holds applications keyed by ID. Create rejects a second
// application by the same applicant to the same post under the write lock.
type InMemory struct {
	txcontext.Gated
	mu           sync.RWMutex
	applications map[id.ApplicationID]*models.Application
}

func NewInMemory() *InMemory {
	return &InMemory{applications: make(map[id.ApplicationID]*models.Application)}
}

func (s *InMemory) Create(ctx context.Context, a *models.Application) error {
	defer s.WriteGate(ctx)()
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.applications[a.ID]; exists {
		return sentinel.ErrAlreadyUsed
	}
	for _, existing := range s.applications {
		if existing.PostID == a.PostID && existing.ApplicantID == a.ApplicantID {
			return sentinel.ErrAlreadyUsed
		}
	}
	s.applications[a.ID] = a.Clone()
	return nil
}

func (s *InMemory) FindByID(ctx context.Context, applicationID id.ApplicationID) (*models.Application, error) {
	defer s.ReadGate(ctx)()
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.applications[applicationID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return a.Clone(), nil
}

func (s *InMemory) ListByPost(ctx context.Context, postID id.JobPostID) ([]*models.Application, error) {
	return s.collect(ctx, func(a *models.Application) bool { return a.PostID == postID }), nil
}

func (s *InMemory) ListByApplicant(ctx context.Context, applicantID id.UserID) ([]*models.Application, error) {
	return s.collect(ctx, func(a *models.Application) bool { return a.ApplicantID == applicantID }), nil
}

func (s *InMemory) Execute(ctx context.Context, applicationID id.ApplicationID, validate func(*models.Application) error, mutate func(*models.Application)) (*models.Application, error) {
	defer s.WriteGate(ctx)()
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.applications[applicationID]
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
	s.applications[applicationID] = working
	return working.Clone(), nil
}

func (s *InMemory) DeleteByPost(ctx context.Context, postID id.JobPostID) error {
	defer s.WriteGate(ctx)()
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, a := range s.applications {
		if a.PostID == postID {
			delete(s.applications, k)
		}
	}
	return nil
}

func (s *InMemory) Snapshot() func() {
	s.mu.RLock()
	applications := make(map[id.ApplicationID]*models.Application, len(s.applications))
	for k, v := range s.applications {
		applications[k] = v.Clone()
	}
	s.mu.RUnlock()
	return func() {
		s.mu.Lock()
		s.applications = applications
		s.mu.Unlock()
	}
}

// collect returns matches newest first.
func (s *InMemory) collect(ctx context.Context, match func(*models.Application) bool) []*models.Application {
	defer s.ReadGate(ctx)()
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Application, 0)
	for _, a := range s.applications {
		if match(a) {
			out = append(out, a.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID.String() < out[j].ID.String()
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
