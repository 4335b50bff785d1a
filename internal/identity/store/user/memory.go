package user

import (
	"context"
	"maps"
	"sort"
	"strings"
	"sync"

	"casebook/internal/identity/models"
	id "casebook/pkg/domain"
	"casebook/pkg/platform/sentinel"
	txcontext "casebook/pkg/platform/tx"
)

// InMemory keeps users in a map guarded by a RWMutex.
// Records are cloned on the way in and out so callers never alias store state.
type InMemory struct {
	txcontext.Gated
	mu         sync.RWMutex
	users      map[id.UserID]*models.User
	byUsername map[string]id.UserID
}

func NewInMemory() *InMemory {
	return &InMemory{
		users:      make(map[id.UserID]*models.User),
		byUsername: make(map[string]id.UserID),
	}
}

func normalizeUsername(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Create inserts a user, failing with sentinel.ErrAlreadyUsed when the
// username (case-insensitive) is taken.
func (s *InMemory) Create(ctx context.Context, u *models.User) error {
	defer s.WriteGate(ctx)()
	s.mu.Lock()
	defer s.mu.Unlock()
	key := normalizeUsername(u.Username)
	if _, taken := s.byUsername[key]; taken {
		return sentinel.ErrAlreadyUsed
	}
	s.users[u.ID] = u.Clone()
	s.byUsername[key] = u.ID
	return nil
}

func (s *InMemory) FindByID(ctx context.Context, userID id.UserID) (*models.User, error) {
	defer s.ReadGate(ctx)()
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[userID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return u.Clone(), nil
}

func (s *InMemory) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	defer s.ReadGate(ctx)()
	s.mu.RLock()
	defer s.mu.RUnlock()
	userID, ok := s.byUsername[normalizeUsername(username)]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return s.users[userID].Clone(), nil
}

func (s *InMemory) ListByRole(ctx context.Context, role models.Role) ([]*models.User, error) {
	defer s.ReadGate(ctx)()
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.User
	for _, u := range s.users {
		if u.Role == role {
			out = append(out, u.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

// Execute validates and mutates a user under the store lock.
// validate runs against the current record; an error aborts without writing.
func (s *InMemory) Execute(ctx context.Context, userID id.UserID, validate func(*models.User) error, mutate func(*models.User)) (*models.User, error) {
	defer s.WriteGate(ctx)()
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.users[userID]
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
	s.users[userID] = working
	return working.Clone(), nil
}

func (s *InMemory) Snapshot() func() {
	s.mu.RLock()
	users := make(map[id.UserID]*models.User, len(s.users))
	for k, v := range s.users {
		users[k] = v.Clone()
	}
	byUsername := maps.Clone(s.byUsername)
	s.mu.RUnlock()
	return func() {
		s.mu.Lock()
		s.users = users
		s.byUsername = byUsername
		s.mu.Unlock()
	}
}
