package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	idmodels "casebook/internal/identity/models"
	"casebook/internal/platform/tracing"
	"casebook/internal/reputation/models"
	"casebook/internal/reputation/rules"
	id "casebook/pkg/domain"
	dErrors "casebook/pkg/domain-errors"
	"casebook/pkg/platform/outbox"
	"casebook/pkg/platform/sentinel"
	"casebook/pkg/requestcontext"
)

const (
	triggerCaseSolved    = "case_solved"
	triggerRating        = "rating"
	triggerParticipation = "participation"
)

// OnCaseSolved increments the solver's solved count and evaluates automatic
// badges. solvedCasesCount is monotonic, so it is incremented under the user
// row lock rather than recomputed.
func (s *Service) OnCaseSolved(ctx context.Context, solverID id.UserID) (err error) {
	ctx, span := tracer.Start(ctx, "reputation.OnCaseSolved", trace.WithAttributes(
		attribute.String("user_id", solverID.String()),
	))
	defer tracing.End(span, &err)

	return s.recompute(ctx, solverID, triggerCaseSolved, func(txCtx context.Context) (func(*idmodels.User), error) {
		now := requestcontext.Now(txCtx)
		return func(u *idmodels.User) { u.IncrementSolvedCases(now) }, nil
	})
}

// OnRatingSubmitted recomputes the user's average and count from every
// rating row.
func (s *Service) OnRatingSubmitted(ctx context.Context, userID id.UserID) error {
	return s.recompute(ctx, userID, triggerRating, func(txCtx context.Context) (func(*idmodels.User), error) {
		agg, err := s.ratings.Aggregate(txCtx, userID)
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to aggregate ratings")
		}
		now := requestcontext.Now(txCtx)
		return func(u *idmodels.User) { u.ApplyRatingAggregate(agg.Average, agg.Count, now) }, nil
	})
}

// OnParticipationChanged recomputes the user's ACTIVE participation count.
func (s *Service) OnParticipationChanged(ctx context.Context, userID id.UserID) error {
	return s.recompute(ctx, userID, triggerParticipation, func(txCtx context.Context) (func(*idmodels.User), error) {
		n, err := s.participations.CountActiveByUser(txCtx, userID)
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to count active participations")
		}
		now := requestcontext.Now(txCtx)
		return func(u *idmodels.User) { u.ApplyActiveCases(n, now) }, nil
	})
}

// recompute writes one aggregate under the user row lock, then evaluates the
// automatic badge rules against the updated user. A failure anywhere rolls
// back the caller's transaction.
func (s *Service) recompute(ctx context.Context, userID id.UserID, trigger string, prepare func(txCtx context.Context) (func(*idmodels.User), error)) error {
	var updated *idmodels.User
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		mutate, err := prepare(txCtx)
		if err != nil {
			return err
		}
		u, err := s.updateUser(txCtx, userID, mutate)
		if err != nil {
			return err
		}
		u, err = s.evaluate(txCtx, u)
		if err != nil {
			return err
		}
		updated = u
		return s.emit(txCtx, outbox.EventReputationRecomputed, "user", userID.String(), map[string]any{
			"user_id":            userID.String(),
			"trigger":            trigger,
			"solved_cases_count": u.SolvedCasesCount,
			"active_cases_count": u.ActiveCasesCount,
			"average_rating":     u.AverageRating,
			"total_ratings":      u.TotalRatings,
		})
	})
	if err != nil {
		return err
	}
	s.incrementRecompute(trigger)
	s.mirror(ctx, updated)
	return nil
}

// evaluate grants every rule-unlocked badge the user does not hold yet and
// returns the user with a rebuilt badge set.
func (s *Service) evaluate(ctx context.Context, u *idmodels.User) (*idmodels.User, error) {
	awarded := 0
	for _, name := range rules.Unlocked(s.rules, u) {
		if u.HasBadge(name) {
			continue
		}
		granted, err := s.autoAward(ctx, u, name)
		if err != nil {
			return nil, err
		}
		if granted {
			awarded++
		}
	}
	if awarded == 0 {
		return u, nil
	}
	return s.rebuildBadges(ctx, u.ID)
}

// autoAward grants badgeName as a system award. Missing, inactive or
// threshold-failing badges are skipped; an existing award is a no-op.
func (s *Service) autoAward(ctx context.Context, u *idmodels.User, badgeName string) (bool, error) {
	b, err := s.badges.FindByName(ctx, badgeName)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			s.logDebug(ctx, "badge rule skipped: badge not in catalog", "badge", badgeName, "user_id", u.ID.String())
			return false, nil
		}
		return false, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load badge")
	}
	if !b.Active || !b.EligibleFor(u) {
		s.logDebug(ctx, "badge rule skipped: user not eligible", "badge", badgeName, "user_id", u.ID.String())
		return false, nil
	}
	return s.grant(ctx, models.NewBadgeAward(id.BadgeAwardID(uuid.New()), u.ID, b, nil, "", nil, requestcontext.Now(ctx)), "auto")
}

// grant inserts the award unless the pair already has one.
func (s *Service) grant(ctx context.Context, a *models.BadgeAward, source string) (bool, error) {
	if _, err := s.awards.FindByUserAndBadge(ctx, a.UserID, a.BadgeID); err == nil {
		return false, nil
	} else if !errors.Is(err, sentinel.ErrNotFound) {
		return false, dErrors.Wrap(err, dErrors.CodeInternal, "failed to check badge award")
	}
	if err := s.awards.Create(ctx, a); err != nil {
		if errors.Is(err, sentinel.ErrAlreadyUsed) {
			return false, nil
		}
		return false, dErrors.Wrap(err, dErrors.CodeInternal, "failed to award badge")
	}
	payload := map[string]any{
		"award_id":   a.ID.String(),
		"user_id":    a.UserID.String(),
		"badge_id":   a.BadgeID.String(),
		"badge_name": a.BadgeName,
		"source":     source,
	}
	if err := s.emit(ctx, outbox.EventBadgeAwarded, "badge_award", a.ID.String(), payload); err != nil {
		return false, err
	}
	s.logAudit(ctx, "badge_awarded",
		"user_id", a.UserID.String(),
		"badge", a.BadgeName,
		"source", source,
	)
	s.incrementBadgeAwarded(source)
	return true, nil
}

// rebuildBadges replaces the user's badge names with those of the award rows.
func (s *Service) rebuildBadges(ctx context.Context, userID id.UserID) (*idmodels.User, error) {
	awards, err := s.awards.ListByUser(ctx, userID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list badge awards")
	}
	names := make([]string, 0, len(awards))
	for _, a := range awards {
		names = append(names, a.BadgeName)
	}
	now := requestcontext.Now(ctx)
	return s.updateUser(ctx, userID, func(u *idmodels.User) { u.ReplaceBadges(names, now) })
}

// mirror copies the ranking aggregates to the leaderboard. Failures are
// logged and counted; the leaderboard converges on the next write.
func (s *Service) mirror(ctx context.Context, u *idmodels.User) {
	if u == nil || u.Role != idmodels.RoleSolver {
		return
	}
	if err := s.board.Record(ctx, u.ID, u.SolvedCasesCount, u.AverageRating); err != nil {
		s.incrementLeaderboardFailure()
		if s.logger != nil {
			s.logger.WarnContext(ctx, "leaderboard write failed", "user_id", u.ID.String(), "error", err)
		}
	}
}
