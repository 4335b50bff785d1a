package service

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"casebook/internal/platform/tracing"
	"casebook/internal/policy"
	"casebook/internal/reputation/models"
	id "casebook/pkg/domain"
	dErrors "casebook/pkg/domain-errors"
	"casebook/pkg/platform/outbox"
	"casebook/pkg/requestcontext"
)

// Rate records raterID's score for ratedID. A second rating by the same
// rater revises the first in place, so the rated user's count does not grow.
func (s *Service) Rate(ctx context.Context, raterID, ratedID id.UserID, score int, comment, category string, caseID *id.CaseID) (_ *models.Rating, err error) {
	ctx, span := tracer.Start(ctx, "reputation.Rate", trace.WithAttributes(
		attribute.String("rater_id", raterID.String()),
		attribute.String("rated_user_id", ratedID.String()),
		attribute.Int("score", score),
	))
	defer tracing.End(span, &err)

	var (
		stored  *models.Rating
		created bool
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		rater, err := s.loadUser(txCtx, raterID)
		if err != nil {
			return err
		}
		if !policy.CanRate(rater) {
			return dErrors.New(dErrors.CodeForbidden, "only recruiters and organizations can rate users")
		}
		r, err := models.NewRating(id.RatingID(uuid.New()), raterID, ratedID, score, comment, category, caseID, requestcontext.Now(txCtx))
		if err != nil {
			return err
		}
		if _, err := s.loadUser(txCtx, ratedID); err != nil {
			return err
		}
		if err := s.ensureCase(txCtx, caseID); err != nil {
			return err
		}

		stored, created, err = s.ratings.Upsert(txCtx, r)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to save rating")
		}
		if err := s.OnRatingSubmitted(txCtx, ratedID); err != nil {
			return err
		}
		return s.emit(txCtx, outbox.EventRatingSubmitted, "rating", stored.ID.String(), map[string]any{
			"rating_id":     stored.ID.String(),
			"rater_id":      raterID.String(),
			"rated_user_id": ratedID.String(),
			"score":         stored.Score,
			"revised":       !created,
		})
	})
	if err != nil {
		return nil, err
	}

	s.logAudit(ctx, "rating_submitted",
		"rater_id", raterID.String(),
		"rated_user_id", ratedID.String(),
		"score", score,
		"revised", !created,
	)
	s.incrementRating(created)
	return stored, nil
}

// DeleteRating removes a rating and recomputes the rated user's aggregate.
func (s *Service) DeleteRating(ctx context.Context, ratingID id.RatingID, requesterID id.UserID) error {
	var deleted *models.Rating
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		requester, err := s.loadUser(txCtx, requesterID)
		if err != nil {
			return err
		}
		r, err := s.ratings.FindByID(txCtx, ratingID)
		if err != nil {
			return translate(err, "rating", "failed to load rating")
		}
		if !policy.CanDeleteRating(requester, r.RaterID) {
			return dErrors.New(dErrors.CodeForbidden, "only the rater or an organization can delete this rating")
		}
		if err := s.ratings.Delete(txCtx, ratingID); err != nil {
			return translate(err, "rating", "failed to delete rating")
		}
		if err := s.OnRatingSubmitted(txCtx, r.RatedUserID); err != nil {
			return err
		}
		deleted = r
		return s.emit(txCtx, outbox.EventRatingDeleted, "rating", ratingID.String(), map[string]any{
			"rating_id":     ratingID.String(),
			"rated_user_id": r.RatedUserID.String(),
		})
	})
	if err != nil {
		return err
	}
	s.logAudit(ctx, "rating_deleted",
		"rating_id", ratingID.String(),
		"rated_user_id", deleted.RatedUserID.String(),
		"requester_id", requesterID.String(),
	)
	return nil
}
