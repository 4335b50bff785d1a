package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"casebook/internal/platform/tracing"
	"casebook/internal/policy"
	"casebook/internal/reputation/models"
	id "casebook/pkg/domain"
	dErrors "casebook/pkg/domain-errors"
	"casebook/pkg/platform/outbox"
	"casebook/pkg/platform/sentinel"
	"casebook/pkg/requestcontext"
)

// AwardManually grants badgeID to userID on behalf of a recruiter or
// organization.
func (s *Service) AwardManually(ctx context.Context, awarderID, userID id.UserID, badgeID id.BadgeID, reason string, caseID *id.CaseID) (_ *models.BadgeAward, err error) {
	ctx, span := tracer.Start(ctx, "reputation.AwardManually", trace.WithAttributes(
		attribute.String("awarder_id", awarderID.String()),
		attribute.String("user_id", userID.String()),
		attribute.String("badge_id", badgeID.String()),
	))
	defer tracing.End(span, &err)

	var award *models.BadgeAward
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		awarder, err := s.loadUser(txCtx, awarderID)
		if err != nil {
			return err
		}
		if !policy.CanAwardBadge(awarder) {
			return dErrors.New(dErrors.CodeForbidden, "only recruiters and organizations can award badges")
		}
		if awarderID == userID {
			return dErrors.New(dErrors.CodeSelfAward, "users cannot award badges to themselves")
		}
		if _, err := s.loadUser(txCtx, userID); err != nil {
			return err
		}
		b, err := s.badges.FindByID(txCtx, badgeID)
		if err != nil {
			return translate(err, "badge", "failed to load badge")
		}
		if err := s.ensureCase(txCtx, caseID); err != nil {
			return err
		}

		a := models.NewBadgeAward(id.BadgeAwardID(uuid.New()), userID, b, &awarderID, reason, caseID, requestcontext.Now(txCtx))
		granted, err := s.grant(txCtx, a, "manual")
		if err != nil {
			return err
		}
		if !granted {
			return dErrors.New(dErrors.CodeAlreadyAwarded, "user already has this badge")
		}
		award = a
		_, err = s.rebuildBadges(txCtx, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return award, nil
}

// Revoke deletes an award and rebuilds the holder's badge set. Only the
// original awarder or an organization may revoke.
func (s *Service) Revoke(ctx context.Context, awardID id.BadgeAwardID, requesterID id.UserID) (err error) {
	ctx, span := tracer.Start(ctx, "reputation.Revoke", trace.WithAttributes(
		attribute.String("award_id", awardID.String()),
	))
	defer tracing.End(span, &err)

	var revoked *models.BadgeAward
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		requester, err := s.loadUser(txCtx, requesterID)
		if err != nil {
			return err
		}
		a, err := s.awards.FindByID(txCtx, awardID)
		if err != nil {
			return translate(err, "badge award", "failed to load badge award")
		}
		if !policy.CanRevokeAward(requester, a.AwardedBy) {
			return dErrors.New(dErrors.CodeForbidden, "only the original awarder or an organization can revoke this badge")
		}
		if err := s.awards.Delete(txCtx, awardID); err != nil {
			return translate(err, "badge award", "failed to delete badge award")
		}
		if _, err := s.rebuildBadges(txCtx, a.UserID); err != nil {
			return err
		}
		revoked = a
		return s.emit(txCtx, outbox.EventBadgeRevoked, "badge_award", awardID.String(), map[string]any{
			"award_id":   awardID.String(),
			"user_id":    a.UserID.String(),
			"badge_name": a.BadgeName,
		})
	})
	if err != nil {
		return err
	}

	s.logAudit(ctx, "badge_revoked",
		"award_id", awardID.String(),
		"user_id", revoked.UserID.String(),
		"badge", revoked.BadgeName,
		"requester_id", requesterID.String(),
	)
	s.incrementBadgeRevoked()
	return nil
}

// AwardCaseBadge grants badgeName to the solver as a system award tied to
// caseID. An existing award for the pair is left alone.
func (s *Service) AwardCaseBadge(ctx context.Context, solverID id.UserID, caseID id.CaseID, badgeName string) error {
	return s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		b, err := s.badges.FindByName(txCtx, badgeName)
		if err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				return dErrors.New(dErrors.CodeNotFound, "badge not found")
			}
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load badge")
		}
		if _, err := s.loadUser(txCtx, solverID); err != nil {
			return err
		}
		a := models.NewBadgeAward(id.BadgeAwardID(uuid.New()), solverID, b, nil, "awarded for case", &caseID, requestcontext.Now(txCtx))
		granted, err := s.grant(txCtx, a, "case")
		if err != nil || !granted {
			return err
		}
		_, err = s.rebuildBadges(txCtx, solverID)
		return err
	})
}
