package jobpost

import (
	"context"
	"sort"
	"sync"

	"casebook/internal/hiring/models"
	id "casebook/pkg/domain"
	"casebook/pkg/platform/sentinel"
	txcontext "casebook/pkg/platform/tx"
)

type InMemory struct {
	txcontext.Gated
	mu    sync.RWMutex
	posts map[id.JobPostID]*models.JobPost
}

func NewInMemory() *InMemory {
	return &InMemory{posts: make(map[id.JobPostID]*models.JobPost)}
}

func (s *InMemory) Create(ctx context.Context, p *models.JobPost) error {
	defer s.WriteGate(ctx)()
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.posts[p.ID]; exists {
		return sentinel.ErrAlreadyUsed
	}
	s.posts[p.ID] = p.Clone()
	return nil
}

func (s *InMemory) FindByID(ctx context.Context, postID id.JobPostID) (*models.JobPost, error) {
	defer s.ReadGate(ctx)()
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.posts[postID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return p.Clone(), nil
}

// List returns matches newest first.
func (s *InMemory) List(ctx context.Context, filter models.PostFilter) ([]*models.JobPost, error) {
	defer s.ReadGate(ctx)()
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.JobPost, 0)
	for _, p := range s.posts {
		if filter.Matches(p) {
			out = append(out, p.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID.String() < out[j].ID.String()
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *InMemory) Execute(ctx context.Context, postID id.JobPostID, validate func(*models.JobPost) error, mutate func(*models.JobPost)) (*models.JobPost, error) {
	defer s.WriteGate(ctx)()
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.posts[postID]
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
	s.posts[postID] = working
	return working.Clone(), nil
}

func (s *InMemory) Delete(ctx context.Context, postID id.JobPostID) error {
	defer s.WriteGate(ctx)()
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.posts[postID]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.posts, postID)
	return nil
}

func (s *InMemory) Snapshot() func() {
	s.mu.RLock()
	posts := make(map[id.JobPostID]*models.JobPost, len(s.posts))
	for k, v := range s.posts {
		posts[k] = v.Clone()
	}
	s.mu.RUnlock()
	return func() {
		s.mu.Lock()
		s.posts = posts
		s.mu.Unlock()
	}
}
