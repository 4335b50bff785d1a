package rating

import (
	"context"
	"sort"
	"sync"

	"casebook/internal/reputation/models"
	id "casebook/pkg/domain"
	"casebook/pkg/platform/sentinel"
	txcontext "casebook/pkg/platform/tx"
)

type raterPair struct {
	raterID id.UserID
	ratedID id.UserID
}

// InMemory stores ratings keyed by (rater, rated user).
type InMemory struct {
	txcontext.Gated
	mu      sync.RWMutex
	ratings map[raterPair]*models.Rating
}

func NewInMemory() *InMemory {
	return &InMemory{ratings: make(map[raterPair]*models.Rating)}
}

// Upsert inserts r, or revises the existing row for the same rater and rated
// user in place. The stored row is returned along with whether it was new.
func (s *InMemory) Upsert(ctx context.Context, r *models.Rating) (*models.Rating, bool, error) {
	defer s.WriteGate(ctx)()
	s.mu.Lock()
	defer s.mu.Unlock()
	key := raterPair{r.RaterID, r.RatedUserID}
	if existing, ok := s.ratings[key]; ok {
		working := existing.Clone()
		working.ApplyRevision(r)
		s.ratings[key] = working
		return working.Clone(), false, nil
	}
	s.ratings[key] = r.Clone()
	return r.Clone(), true, nil
}

func (s *InMemory) FindByID(ctx context.Context, ratingID id.RatingID) (*models.Rating, error) {
	defer s.ReadGate(ctx)()
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.ratings {
		if r.ID == ratingID {
			return r.Clone(), nil
		}
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemory) ListByRatedUser(ctx context.Context, userID id.UserID) ([]*models.Rating, error) {
	return s.collect(ctx, func(r *models.Rating) bool { return r.RatedUserID == userID }), nil
}

func (s *InMemory) ListByRater(ctx context.Context, raterID id.UserID) ([]*models.Rating, error) {
	return s.collect(ctx, func(r *models.Rating) bool { return r.RaterID == raterID }), nil
}

// Aggregate computes the mean score and count for userID from the stored rows.
func (s *InMemory) Aggregate(ctx context.Context, userID id.UserID) (models.Aggregate, error) {
	rows, _ := s.ListByRatedUser(ctx, userID)
	return models.Summarize(rows), nil
}

// CategoryTallies groups userID's received ratings by category.
func (s *InMemory) CategoryTallies(ctx context.Context, userID id.UserID) ([]models.CategoryTally, error) {
	rows, _ := s.ListByRatedUser(ctx, userID)
	return models.Tally(rows), nil
}

func (s *InMemory) Delete(ctx context.Context, ratingID id.RatingID) error {
	defer s.WriteGate(ctx)()
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, r := range s.ratings {
		if r.ID == ratingID {
			delete(s.ratings, key)
			return nil
		}
	}
	return sentinel.ErrNotFound
}

func (s *InMemory) Snapshot() func() {
	s.mu.RLock()
	ratings := make(map[raterPair]*models.Rating, len(s.ratings))
	for k, v := range s.ratings {
		ratings[k] = v.Clone()
	}
	s.mu.RUnlock()
	return func() {
		s.mu.Lock()
		s.ratings = ratings
		s.mu.Unlock()
	}
}

func (s *InMemory) collect(ctx context.Context, match func(*models.Rating) bool) []*models.Rating {
	defer s.ReadGate(ctx)()
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Rating, 0)
	for _, r := range s.ratings {
		if match(r) {
			out = append(out, r.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].UpdatedAt.Equal(out[j].UpdatedAt) {
			return out[i].ID.String() < out[j].ID.String()
		}
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out
}
