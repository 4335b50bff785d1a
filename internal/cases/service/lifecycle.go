package service

import (
	"context"
	"time"

	"github.com/google/uuid"
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

// Create posts a new OPEN case and enrolls the organization as its ACTIVE
// OWNER in the same unit of work.
func (s *Service) Create(ctx context.Context, orgID id.UserID, req models.NewCaseRequest) (_ *models.CrimeCase, err error) {
	ctx, span := tracer.Start(ctx, "cases.Create", trace.WithAttributes(attribute.String("org_id", orgID.String())))
	defer tracing.End(span, &err)

	org, err := s.loadUser(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if !policy.CanPostCase(org) {
		return nil, dErrors.New(dErrors.CodeForbidden, "only verified organizations can post cases")
	}

	c, err := models.NewCase(id.CaseID(uuid.New()), orgID, req, requestcontext.Now(ctx))
	if err != nil {
		return nil, err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.cases.Create(txCtx, c); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to create case")
		}
		if err := s.participation.EnrollOwner(txCtx, orgID, c.ID); err != nil {
			return err
		}
		return s.emit(txCtx, outbox.EventCaseCreated, c, map[string]any{
			"posted_by": orgID.String(),
			"privacy":   string(c.Privacy),
			"case_type": string(c.CaseType),
		})
	})
	if err != nil {
		return nil, err
	}

	s.logAudit(ctx, string(outbox.EventCaseCreated), "case_id", c.ID.String(), "user_id", orgID.String())
	s.incrementCreated()
	return c, nil
}

// Solve marks the case SOLVED by solverID. The status check runs under the
// case row lock: of two concurrent solves exactly one succeeds and the other
// fails with InvalidState. OnCaseSolved runs in the same unit of work.
func (s *Service) Solve(ctx context.Context, caseID id.CaseID, solverID id.UserID, solution, notes string) (_ *models.CrimeCase, err error) {
	ctx, span := tracer.Start(ctx, "cases.Solve", trace.WithAttributes(
		attribute.String("case_id", caseID.String()),
		attribute.String("solver_id", solverID.String()),
	))
	defer tracing.End(span, &err)
	if s.metrics != nil {
		defer s.metrics.ObserveSolve(time.Now())
	}

	var solved *models.CrimeCase
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.cases.FindByID(txCtx, caseID); err != nil {
			return translateCaseErr(err, "failed to load case")
		}
		solver, err := s.loadUser(txCtx, solverID)
		if err != nil {
			return err
		}
		if !policy.CanSolve(solver) {
			return dErrors.New(dErrors.CodeForbidden, "only solvers can solve cases")
		}
		active, err := s.participation.IsActiveParticipant(txCtx, solverID, caseID)
		if err != nil {
			return err
		}
		if !active {
			return dErrors.New(dErrors.CodeForbidden, "solver has no active participation on this case")
		}

		now := requestcontext.Now(txCtx)
		solved, err = s.cases.Execute(txCtx, caseID,
			func(c *models.CrimeCase) error { return c.CanSolve() },
			func(c *models.CrimeCase) { c.ApplySolution(solverID, solution, notes, now) },
		)
		if err != nil {
			return translateCaseErr(err, "failed to solve case")
		}
		if err := s.reputation.OnCaseSolved(txCtx, solverID); err != nil {
			return err
		}
		return s.emit(txCtx, outbox.EventCaseSolved, solved, map[string]any{
			"solved_by": solverID.String(),
		})
	})
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeInvalidState) {
			s.incrementSolveConflict()
		}
		return nil, err
	}

	s.logAudit(ctx, string(outbox.EventCaseSolved), "case_id", caseID.String(), "user_id", solverID.String())
	s.incrementSolved()
	return solved, nil
}

// Start moves an OPEN case to IN_PROGRESS.
func (s *Service) Start(ctx context.Context, caseID id.CaseID) (*models.CrimeCase, error) {
	return s.transition(ctx, "cases.Start", caseID,
		(*models.CrimeCase).CanStart,
		func(c *models.CrimeCase, now time.Time) { c.ApplyStart(now) },
	)
}

// Pause moves an IN_PROGRESS case back to OPEN.
func (s *Service) Pause(ctx context.Context, caseID id.CaseID) (*models.CrimeCase, error) {
	return s.transition(ctx, "cases.Pause", caseID,
		(*models.CrimeCase).CanPause,
		func(c *models.CrimeCase, now time.Time) { c.ApplyPause(now) },
	)
}

// Close moves an OPEN or IN_PROGRESS case to CLOSED and stamps closedAt.
func (s *Service) Close(ctx context.Context, caseID id.CaseID) (*models.CrimeCase, error) {
	return s.transition(ctx, "cases.Close", caseID,
		(*models.CrimeCase).CanClose,
		func(c *models.CrimeCase, now time.Time) { c.ApplyClose(now) },
	)
}

// Reopen moves a CLOSED case back to OPEN and clears closedAt.
func (s *Service) Reopen(ctx context.Context, caseID id.CaseID) (*models.CrimeCase, error) {
	return s.transition(ctx, "cases.Reopen", caseID,
		(*models.CrimeCase).CanReopen,
		func(c *models.CrimeCase, now time.Time) { c.ApplyReopen(now) },
	)
}

func (s *Service) transition(
	ctx context.Context,
	op string,
	caseID id.CaseID,
	validate func(*models.CrimeCase) error,
	apply func(*models.CrimeCase, time.Time),
) (_ *models.CrimeCase, err error) {
	ctx, span := tracer.Start(ctx, op, trace.WithAttributes(attribute.String("case_id", caseID.String())))
	defer tracing.End(span, &err)

	var updated *models.CrimeCase
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		now := requestcontext.Now(txCtx)
		var from models.Status
		c, err := s.cases.Execute(txCtx, caseID, validate, func(c *models.CrimeCase) {
			from = c.Status
			apply(c, now)
		})
		if err != nil {
			return translateCaseErr(err, "failed to update case")
		}
		updated = c
		return s.emit(txCtx, outbox.EventCaseStatusChanged, updated, map[string]any{
			"from": string(from),
		})
	})
	if err != nil {
		return nil, err
	}

	s.logAudit(ctx, string(outbox.EventCaseStatusChanged),
		"case_id", caseID.String(),
		"status", string(updated.Status),
	)
	s.incrementStatusChange(updated.Status)
	return updated, nil
}

// Delete hard-deletes a case. Only the posting organization or an admin may
// delete; every ACTIVE participation on the case is released first so the
// participants' active-case counts stay correct.
func (s *Service) Delete(ctx context.Context, caseID id.CaseID, requesterID id.UserID) (err error) {
	ctx, span := tracer.Start(ctx, "cases.Delete", trace.WithAttributes(attribute.String("case_id", caseID.String())))
	defer tracing.End(span, &err)

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		c, err := s.cases.FindByID(txCtx, caseID)
		if err != nil {
			return translateCaseErr(err, "failed to load case")
		}
		requester, err := s.loadUser(txCtx, requesterID)
		if err != nil {
			return err
		}
		if !policy.CanDeleteCase(requester, c.PostedBy) {
			return dErrors.New(dErrors.CodeForbidden, "only the posting organization or an admin can delete a case")
		}
		if err := s.participation.ReleaseCase(txCtx, caseID); err != nil {
			return err
		}
		if err := s.cases.Delete(txCtx, caseID); err != nil {
			return translateCaseErr(err, "failed to delete case")
		}
		return s.emit(txCtx, outbox.EventCaseDeleted, c, map[string]any{
			"deleted_by": requesterID.String(),
		})
	})
	if err != nil {
		return err
	}

	s.logAudit(ctx, string(outbox.EventCaseDeleted), "case_id", caseID.String(), "user_id", requesterID.String())
	s.incrementDeleted()
	return nil
}
