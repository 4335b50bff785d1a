package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"casebook/internal/participation/models"
	"casebook/internal/platform/tracing"
	"casebook/internal/policy"
	id "casebook/pkg/domain"
	dErrors "casebook/pkg/domain-errors"
	"casebook/pkg/platform/sentinel"
	"casebook/pkg/requestcontext"
)

// Join adds userID to caseID under role. A missing record is created ACTIVE;
// a non-ACTIVE record is reactivated in place; an ACTIVE record fails with
// AlreadyActive.
func (s *Service) Join(ctx context.Context, userID id.UserID, caseID id.CaseID, role models.Role) (_ *models.Participation, err error) {
	ctx, span := tracer.Start(ctx, "participation.Join", trace.WithAttributes(
		attribute.String("user_id", userID.String()),
		attribute.String("case_id", caseID.String()),
	))
	defer tracing.End(span, &err)

	if role == models.RoleOwner {
		return nil, dErrors.New(dErrors.CodeInvalidRoleChange, "the owner role cannot be joined")
	}
	if !role.IsValid() {
		return nil, dErrors.New(dErrors.CodeValidation, "role is invalid")
	}

	var (
		joined      *models.Participation
		reactivated bool
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		c, err := s.loadCase(txCtx, caseID)
		if err != nil {
			return err
		}
		u, err := s.loadUser(txCtx, userID)
		if err != nil {
			return err
		}
		if !policy.CanJoinCase(u) {
			return dErrors.New(dErrors.CodeForbidden, "only solvers and organizations can join cases")
		}
		if !c.AcceptsParticipants() {
			return dErrors.New(dErrors.CodeForbidden, "case is not open for participants")
		}

		joined, reactivated, err = s.upsertActive(txCtx, userID, caseID, role)
		if err != nil {
			return err
		}
		if err := s.reputation.OnParticipationChanged(txCtx, userID); err != nil {
			return err
		}
		return s.emit(txCtx, joined, "joined")
	})
	if err != nil {
		return nil, err
	}

	s.logAudit(ctx, "participation_joined",
		"user_id", userID.String(),
		"case_id", caseID.String(),
		"role", string(joined.Role),
		"reactivated", reactivated,
	)
	s.incrementJoin(reactivated)
	return joined, nil
}

// EnrollOwner records the posting organization as the case's ACTIVE OWNER.
// The case registry calls it inside the creating unit of work.
func (s *Service) EnrollOwner(ctx context.Context, userID id.UserID, caseID id.CaseID) error {
	return s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		p, _, err := s.upsertActive(txCtx, userID, caseID, models.RoleOwner)
		if err != nil {
			return err
		}
		if err := s.reputation.OnParticipationChanged(txCtx, userID); err != nil {
			return err
		}
		return s.emit(txCtx, p, "owner_enrolled")
	})
}

func (s *Service) upsertActive(ctx context.Context, userID id.UserID, caseID id.CaseID, role models.Role) (*models.Participation, bool, error) {
	now := requestcontext.Now(ctx)
	p, err := s.participations.Execute(ctx, userID, caseID,
		func(p *models.Participation) error { return p.CanReactivate() },
		func(p *models.Participation) { p.Reactivate(role, now) },
	)
	if err == nil {
		return p, true, nil
	}
	if !errors.Is(err, sentinel.ErrNotFound) {
		return nil, false, translateParticipationErr(err, "failed to reactivate participation")
	}

	p, err = models.NewParticipation(id.ParticipationID(uuid.New()), userID, caseID, role, now)
	if err != nil {
		return nil, false, err
	}
	if err := s.participations.Create(ctx, p); err != nil {
		if errors.Is(err, sentinel.ErrAlreadyUsed) {
			return nil, false, dErrors.New(dErrors.CodeAlreadyActive, "already an active participant")
		}
		return nil, false, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create participation")
	}
	return p, false, nil
}

func (s *Service) Leave(ctx context.Context, userID id.UserID, caseID id.CaseID) (*models.Participation, error) {
	return s.setStatus(ctx, "participation.Leave", userID, caseID, models.StatusInactive)
}

func (s *Service) Suspend(ctx context.Context, userID id.UserID, caseID id.CaseID) (*models.Participation, error) {
	return s.setStatus(ctx, "participation.Suspend", userID, caseID, models.StatusSuspended)
}

func (s *Service) Complete(ctx context.Context, userID id.UserID, caseID id.CaseID) (*models.Participation, error) {
	return s.setStatus(ctx, "participation.Complete", userID, caseID, models.StatusCompleted)
}

func (s *Service) setStatus(ctx context.Context, op string, userID id.UserID, caseID id.CaseID, status models.Status) (_ *models.Participation, err error) {
	ctx, span := tracer.Start(ctx, op, trace.WithAttributes(
		attribute.String("user_id", userID.String()),
		attribute.String("case_id", caseID.String()),
	))
	defer tracing.End(span, &err)

	var updated *models.Participation
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		now := requestcontext.Now(txCtx)
		p, err := s.participations.Execute(txCtx, userID, caseID, nil, func(p *models.Participation) {
			p.ApplyStatus(status, now)
		})
		if err != nil {
			return translateParticipationErr(err, "failed to update participation")
		}
		updated = p
		if err := s.reputation.OnParticipationChanged(txCtx, userID); err != nil {
			return err
		}
		return s.emit(txCtx, p, "status_changed")
	})
	if err != nil {
		return nil, err
	}

	s.logAudit(ctx, "participation_status_changed",
		"user_id", userID.String(),
		"case_id", caseID.String(),
		"status", string(status),
	)
	s.incrementTransition(status)
	return updated, nil
}

// ChangeRole moves a participant to newRole. OWNER can be neither left nor
// granted.
func (s *Service) ChangeRole(ctx context.Context, userID id.UserID, caseID id.CaseID, newRole models.Role) (_ *models.Participation, err error) {
	ctx, span := tracer.Start(ctx, "participation.ChangeRole", trace.WithAttributes(
		attribute.String("user_id", userID.String()),
		attribute.String("case_id", caseID.String()),
		attribute.String("role", string(newRole)),
	))
	defer tracing.End(span, &err)

	var updated *models.Participation
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		now := requestcontext.Now(txCtx)
		p, err := s.participations.Execute(txCtx, userID, caseID,
			func(p *models.Participation) error { return p.CanChangeRole(newRole) },
			func(p *models.Participation) { p.ApplyRole(newRole, now) },
		)
		if err != nil {
			return translateParticipationErr(err, "failed to change role")
		}
		updated = p
		return s.emit(txCtx, p, "role_changed")
	})
	if err != nil {
		return nil, err
	}

	s.logAudit(ctx, "participation_role_changed",
		"user_id", userID.String(),
		"case_id", caseID.String(),
		"role", string(newRole),
	)
	s.incrementRoleChange(newRole)
	return updated, nil
}

func (s *Service) PromoteToSolver(ctx context.Context, userID id.UserID, caseID id.CaseID) (*models.Participation, error) {
	return s.ChangeRole(ctx, userID, caseID, models.RoleSolver)
}

func (s *Service) PromoteToLeader(ctx context.Context, userID id.UserID, caseID id.CaseID) (*models.Participation, error) {
	return s.ChangeRole(ctx, userID, caseID, models.RoleLeader)
}

func (s *Service) DemoteToFollower(ctx context.Context, userID id.UserID, caseID id.CaseID) (*models.Participation, error) {
	return s.ChangeRole(ctx, userID, caseID, models.RoleFollower)
}

// Touch bumps lastActivityAt without changing role or status.
func (s *Service) Touch(ctx context.Context, userID id.UserID, caseID id.CaseID) error {
	now := requestcontext.Now(ctx)
	return s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		_, err := s.participations.Execute(txCtx, userID, caseID, nil, func(p *models.Participation) { p.Touch(now) })
		if err != nil {
			return translateParticipationErr(err, "failed to record activity")
		}
		return nil
	})
}

// ReleaseCase deactivates every ACTIVE participation on a case that is being
// deleted and recomputes the affected users' active-case counts.
func (s *Service) ReleaseCase(ctx context.Context, caseID id.CaseID) error {
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		users, err := s.participations.DeactivateCase(txCtx, caseID, requestcontext.Now(txCtx))
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to release case participants")
		}
		for _, userID := range users {
			if err := s.reputation.OnParticipationChanged(txCtx, userID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.incrementReleasedCase()
	return nil
}

// AuthorizeModerator fails with Forbidden unless requester may manage the
// case's participants: the posting organization, an admin, or an ACTIVE
// OWNER or LEADER on the case.
func (s *Service) AuthorizeModerator(ctx context.Context, caseID id.CaseID, requesterID id.UserID) error {
	c, err := s.loadCase(ctx, caseID)
	if err != nil {
		return err
	}
	requester, err := s.loadUser(ctx, requesterID)
	if err != nil {
		return err
	}
	if policy.CanManageCase(requester, c.PostedBy) {
		return nil
	}
	p, err := s.participations.FindByUserAndCase(ctx, requesterID, caseID)
	if err != nil && !errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load participation")
	}
	if p != nil && p.IsActive() && (p.Role == models.RoleOwner || p.Role == models.RoleLeader) {
		return nil
	}
	return dErrors.New(dErrors.CodeForbidden, "only case managers and leaders can manage participants")
}
