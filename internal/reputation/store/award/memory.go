package award

import (
	"context"
	"sort"
	"sync"

	"casebook/internal/reputation/models"
	id "casebook/pkg/domain"
	"casebook/pkg/platform/sentinel"
	txcontext "casebook/pkg/platform/tx"
)

type userBadge struct {
	userID  id.UserID
	badgeID id.BadgeID
}

// InMemory stores badge awards. The (user, badge) index enforces at most one
// award per pair.
type InMemory struct {
	txcontext.Gated
	mu     sync.RWMutex
	awards map[id.BadgeAwardID]*models.BadgeAward
	pairs  map[userBadge]id.BadgeAwardID
}

func NewInMemory() *InMemory {
	return &InMemory{
		awards: make(map[id.BadgeAwardID]*models.BadgeAward),
		pairs:  make(map[userBadge]id.BadgeAwardID),
	}
}

func (s *InMemory) Create(ctx context.Context, a *models.BadgeAward) error {
	defer s.WriteGate(ctx)()
	s.mu.Lock()
	defer s.mu.Unlock()
	key := userBadge{a.UserID, a.BadgeID}
	if _, exists := s.pairs[key]; exists {
		return sentinel.ErrAlreadyUsed
	}
	s.awards[a.ID] = a.Clone()
	s.pairs[key] = a.ID
	return nil
}

func (s *InMemory) FindByID(ctx context.Context, awardID id.BadgeAwardID) (*models.BadgeAward, error) {
	defer s.ReadGate(ctx)()
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.awards[awardID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return a.Clone(), nil
}

func (s *InMemory) FindByUserAndBadge(ctx context.Context, userID id.UserID, badgeID id.BadgeID) (*models.BadgeAward, error) {
	defer s.ReadGate(ctx)()
	s.mu.RLock()
	defer s.mu.RUnlock()
	awardID, ok := s.pairs[userBadge{userID, badgeID}]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return s.awards[awardID].Clone(), nil
}

func (s *InMemory) ListByUser(ctx context.Context, userID id.UserID) ([]*models.BadgeAward, error) {
	return s.collect(ctx, func(a *models.BadgeAward) bool { return a.UserID == userID }), nil
}

func (s *InMemory) ListByAwarder(ctx context.Context, awarderID id.UserID) ([]*models.BadgeAward, error) {
	return s.collect(ctx, func(a *models.BadgeAward) bool { return a.AwardedBy != nil && *a.AwardedBy == awarderID }), nil
}

func (s *InMemory) Delete(ctx context.Context, awardID id.BadgeAwardID) error {
	defer s.WriteGate(ctx)()
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.awards[awardID]
	if !ok {
		return sentinel.ErrNotFound
	}
	delete(s.pairs, userBadge{a.UserID, a.BadgeID})
	delete(s.awards, awardID)
	return nil
}

func (s *InMemory) Snapshot() func() {
	s.mu.RLock()
	awards := make(map[id.BadgeAwardID]*models.BadgeAward, len(s.awards))
	for k, v := range s.awards {
		awards[k] = v.Clone()
	}
	pairs := make(map[userBadge]id.BadgeAwardID, len(s.pairs))
	for k, v := range s.pairs {
		pairs[k] = v
	}
	s.mu.RUnlock()
	return func() {
		s.mu.Lock()
		s.awards = awards
		s.pairs = pairs
		s.mu.Unlock()
	}
}

func (s *InMemory) collect(ctx context.Context, match func(*models.BadgeAward) bool) []*models.BadgeAward {
	defer s.ReadGate(ctx)()
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.BadgeAward, 0)
	for _, a := range s.awards {
		if match(a) {
			out = append(out, a.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].AwardedAt.Equal(out[j].AwardedAt) {
			return out[i].BadgeName < out[j].BadgeName
		}
		return out[i].AwardedAt.Before(out[j].AwardedAt)
	})
	return out
}
