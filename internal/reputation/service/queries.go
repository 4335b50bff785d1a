package service

import (
	"context"

	"casebook/internal/reputation/leaderboard"
	"casebook/internal/reputation/models"
	id "casebook/pkg/domain"
	dErrors "casebook/pkg/domain-errors"
)

func (s *Service) ListBadges(ctx context.Context, activeOnly bool) ([]*models.Badge, error) {
	all, err := s.badges.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list badges")
	}
	if !activeOnly {
		return all, nil
	}
	out := make([]*models.Badge, 0, len(all))
	for _, b := range all {
		if b.Active {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *Service) GetBadge(ctx context.Context, badgeID id.BadgeID) (*models.Badge, error) {
	b, err := s.badges.FindByID(ctx, badgeID)
	if err != nil {
		return nil, translate(err, "badge", "failed to load badge")
	}
	return b, nil
}

func (s *Service) BadgeByName(ctx context.Context, name string) (*models.Badge, error) {
	b, err := s.badges.FindByName(ctx, name)
	if err != nil {
		return nil, translate(err, "badge", "failed to load badge")
	}
	return b, nil
}

func (s *Service) AwardsForUser(ctx context.Context, userID id.UserID) ([]*models.BadgeAward, error) {
	out, err := s.awards.ListByUser(ctx, userID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list badge awards")
	}
	return out, nil
}

func (s *Service) AwardsByAwarder(ctx context.Context, awarderID id.UserID) ([]*models.BadgeAward, error) {
	out, err := s.awards.ListByAwarder(ctx, awarderID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list badge awards")
	}
	return out, nil
}

func (s *Service) RatingsForUser(ctx context.Context, userID id.UserID) ([]*models.Rating, error) {
	out, err := s.ratings.ListByRatedUser(ctx, userID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list ratings")
	}
	return out, nil
}

func (s *Service) RatingsByRater(ctx context.Context, raterID id.UserID) ([]*models.Rating, error) {
	out, err := s.ratings.ListByRater(ctx, raterID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list ratings")
	}
	return out, nil
}

// RatingStatistics summarizes the ratings userID has received, overall and
// per category.
func (s *Service) RatingStatistics(ctx context.Context, userID id.UserID) (models.Statistics, error) {
	if _, err := s.loadUser(ctx, userID); err != nil {
		return models.Statistics{}, err
	}
	tallies, err := s.ratings.CategoryTallies(ctx, userID)
	if err != nil {
		return models.Statistics{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to tally ratings")
	}
	return models.BuildStatistics(userID, tallies), nil
}

func (s *Service) Progress(ctx context.Context, userID id.UserID, badgeID id.BadgeID) (models.Progress, error) {
	u, err := s.loadUser(ctx, userID)
	if err != nil {
		return models.Progress{}, err
	}
	b, err := s.GetBadge(ctx, badgeID)
	if err != nil {
		return models.Progress{}, err
	}
	return b.ProgressFor(u), nil
}

// EligibleBadges lists active threshold badges the user qualifies for but
// does not hold yet. Badges without thresholds are only ever granted by hand.
func (s *Service) EligibleBadges(ctx context.Context, userID id.UserID) ([]*models.Badge, error) {
	u, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	active, err := s.ListBadges(ctx, true)
	if err != nil {
		return nil, err
	}
	out := make([]*models.Badge, 0)
	for _, b := range active {
		if b.RequiredCases == nil && b.RequiredRating == nil {
			continue
		}
		if b.EligibleFor(u) && !u.HasBadge(b.Name) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *Service) TopSolvers(ctx context.Context, n int) ([]leaderboard.Entry, error) {
	if n <= 0 || n > 100 {
		return nil, dErrors.New(dErrors.CodeValidation, "limit must be between 1 and 100")
	}
	out, err := s.board.TopSolvers(ctx, n)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to read leaderboard")
	}
	return out, nil
}
