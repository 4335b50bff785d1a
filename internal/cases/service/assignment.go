package service

import (
	"context"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"casebook/internal/cases/models"
	"casebook/internal/platform/tracing"
	"casebook/internal/policy"
	id "casebook/pkg/domain"
	dErrors "casebook/pkg/domain-errors"
	"casebook/pkg/platform/outbox"
	"casebook/pkg/requestcontext"
)

// AssignPrimarySolver sets the case's primary solver and adds them to the
// assigned set. The target must be a SOLVER.
func (s *Service) AssignPrimarySolver(ctx context.Context, caseID id.CaseID, solverID id.UserID) (*models.CrimeCase, error) {
	return s.assign(ctx, "cases.AssignPrimarySolver", caseID, solverID, func(c *models.CrimeCase, now time.Time) bool {
		if c.PrimarySolver != nil && *c.PrimarySolver == solverID {
			return false
		}
		c.ApplyPrimarySolver(solverID, now)
		return true
	})
}

// AddAssignedSolver adds a SOLVER to the assigned set. Adding an already
// assigned solver is a no-op.
func (s *Service) AddAssignedSolver(ctx context.Context, caseID id.CaseID, solverID id.UserID) (*models.CrimeCase, error) {
	return s.assign(ctx, "cases.AddAssignedSolver", caseID, solverID, func(c *models.CrimeCase, now time.Time) bool {
		return c.ApplyAssignedSolver(solverID, now)
	})
}

func (s *Service) assign(
	ctx context.Context,
	op string,
	caseID id.CaseID,
	solverID id.UserID,
	apply func(*models.CrimeCase, time.Time) bool,
) (_ *models.CrimeCase, err error) {
	ctx, span := tracer.Start(ctx, op, trace.WithAttributes(
		attribute.String("case_id", caseID.String()),
		attribute.String("solver_id", solverID.String()),
	))
	defer tracing.End(span, &err)

	var updated *models.CrimeCase
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		solver, err := s.loadUser(txCtx, solverID)
		if err != nil {
			return err
		}
		if !policy.CanBeAssigned(solver) {
			return dErrors.New(dErrors.CodeInvalidRole, "only solvers can be assigned to a case")
		}
		now := requestcontext.Now(txCtx)
		changed := false
		c, err := s.cases.Execute(txCtx, caseID, nil, func(c *models.CrimeCase) {
			changed = apply(c, now)
		})
		if err != nil {
			return translateCaseErr(err, "failed to assign solver")
		}
		updated = c
		if !changed {
			return nil
		}
		return s.emit(txCtx, outbox.EventCaseSolverAssigned, c, map[string]any{
			"solver_id": solverID.String(),
			"primary":   c.PrimarySolver != nil && *c.PrimarySolver == solverID,
		})
	})
	if err != nil {
		return nil, err
	}

	s.logAudit(ctx, string(outbox.EventCaseSolverAssigned), "case_id", caseID.String(), "user_id", solverID.String())
	return updated, nil
}

// AwardCaseBadge gives the case's solver badgeName through the reputation
// engine and records it on the case. A case carries a single badge: a second
// call fails with InvalidState.
func (s *Service) AwardCaseBadge(ctx context.Context, caseID id.CaseID, badgeName string) (_ *models.CrimeCase, err error) {
	ctx, span := tracer.Start(ctx, "cases.AwardCaseBadge", trace.WithAttributes(
		attribute.String("case_id", caseID.String()),
		attribute.String("badge", badgeName),
	))
	defer tracing.End(span, &err)

	badgeName = strings.TrimSpace(badgeName)
	if badgeName == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "badge name is required")
	}

	var updated *models.CrimeCase
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		now := requestcontext.Now(txCtx)
		c, err := s.cases.Execute(txCtx, caseID,
			func(c *models.CrimeCase) error { return c.CanAwardBadge() },
			func(c *models.CrimeCase) { c.ApplyBadge(badgeName, now) },
		)
		if err != nil {
			return translateCaseErr(err, "failed to award case badge")
		}
		if err := s.reputation.AwardCaseBadge(txCtx, *c.SolvedBy, caseID, badgeName); err != nil {
			return err
		}
		updated = c
		return s.emit(txCtx, outbox.EventCaseBadgeAwarded, c, map[string]any{
			"badge":     badgeName,
			"solver_id": c.SolvedBy.String(),
		})
	})
	if err != nil {
		return nil, err
	}

	s.logAudit(ctx, string(outbox.EventCaseBadgeAwarded),
		"case_id", caseID.String(),
		"user_id", updated.SolvedBy.String(),
		"badge", badgeName,
	)
	s.incrementCaseBadge()
	return updated, nil
}
