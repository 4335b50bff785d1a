package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"casebook/internal/hiring/models"
	"casebook/internal/platform/tracing"
	"casebook/internal/policy"
	id "casebook/pkg/domain"
	dErrors "casebook/pkg/domain-errors"
	"casebook/pkg/platform/outbox"
	"casebook/pkg/platform/sentinel"
	"casebook/pkg/requestcontext"
)

// Create sends a PENDING offer from orgID to investigatorID for caseID.
// Only one open request may exist per (organization, investigator, case);
// offers from other organizations for the same investigator and case are
// allowed.
func (s *Service) Create(ctx context.Context, orgID, investigatorID id.UserID, caseID id.CaseID, terms models.Terms) (_ *models.HiringRequest, err error) {
	ctx, span := tracer.Start(ctx, "hiring.Create", trace.WithAttributes(
		attribute.String("organization_id", orgID.String()),
		attribute.String("investigator_id", investigatorID.String()),
		attribute.String("case_id", caseID.String()),
	))
	defer tracing.End(span, &err)

	var created *models.HiringRequest
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		org, err := s.loadUser(txCtx, orgID)
		if err != nil {
			return err
		}
		if !policy.CanHire(org) {
			return dErrors.New(dErrors.CodeForbidden, "only verified organizations can hire investigators")
		}
		investigator, err := s.loadUser(txCtx, investigatorID)
		if err != nil {
			return err
		}
		if !policy.CanBeHired(investigator) {
			return dErrors.New(dErrors.CodeNotEligible, "investigator is not available for hire")
		}
		if _, err := s.cases.FindByID(txCtx, caseID); err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				return dErrors.New(dErrors.CodeNotFound, "case not found")
			}
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load case")
		}

		r, err := models.NewHiringRequest(id.HiringRequestID(uuid.New()), orgID, investigatorID, caseID, terms, requestcontext.Now(txCtx))
		if err != nil {
			return err
		}
		if err := s.requests.Create(txCtx, r); err != nil {
			if errors.Is(err, sentinel.ErrAlreadyUsed) {
				s.incrementDuplicate()
				return dErrors.New(dErrors.CodeDuplicateRequest, "an open hiring request already exists for this investigator and case")
			}
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to create hiring request")
		}
		created = r
		return s.emit(txCtx, outbox.EventHiringRequested, r)
	})
	if err != nil {
		return nil, err
	}

	s.logAudit(ctx, "hiring_requested",
		"hiring_request_id", created.ID.String(),
		"organization_id", orgID.String(),
		"investigator_id", investigatorID.String(),
		"case_id", caseID.String(),
	)
	s.incrementCreated()
	return created, nil
}

// Accept moves a PENDING request to ACCEPTED.
func (s *Service) Accept(ctx context.Context, requestID id.HiringRequestID, response string) (*models.HiringRequest, error) {
	return s.transition(ctx, "hiring.Accept", requestID,
		func(r *models.HiringRequest) error { return r.CanRespond("accept") },
		func(r *models.HiringRequest) { r.ApplyAccept(response, requestcontext.Now(ctx)) })
}

// Reject moves a PENDING request to DECLINED.
func (s *Service) Reject(ctx context.Context, requestID id.HiringRequestID, response string) (*models.HiringRequest, error) {
	return s.transition(ctx, "hiring.Reject", requestID,
		func(r *models.HiringRequest) error { return r.CanRespond("reject") },
		func(r *models.HiringRequest) { r.ApplyReject(response, requestcontext.Now(ctx)) })
}

func (s *Service) Start(ctx context.Context, requestID id.HiringRequestID) (*models.HiringRequest, error) {
	return s.transition(ctx, "hiring.Start", requestID,
		(*models.HiringRequest).CanStart,
		func(r *models.HiringRequest) { r.ApplyStart(requestcontext.Now(ctx)) })
}

// Complete closes an ACCEPTED or IN_PROGRESS contract.
func (s *Service) Complete(ctx context.Context, requestID id.HiringRequestID) (*models.HiringRequest, error) {
	return s.transition(ctx, "hiring.Complete", requestID,
		(*models.HiringRequest).CanComplete,
		func(r *models.HiringRequest) { r.ApplyComplete(requestcontext.Now(ctx)) })
}

// Cancel withdraws a non-terminal request. Only the requesting organization
// may cancel.
func (s *Service) Cancel(ctx context.Context, requestID id.HiringRequestID, requesterID id.UserID) (*models.HiringRequest, error) {
	return s.transition(ctx, "hiring.Cancel", requestID,
		func(r *models.HiringRequest) error {
			if r.OrganizationID != requesterID {
				return dErrors.New(dErrors.CodeForbidden, "only the requesting organization can cancel")
			}
			return r.CanCancel()
		},
		func(r *models.HiringRequest) { r.ApplyCancel(requestcontext.Now(ctx)) })
}

func (s *Service) transition(ctx context.Context, op string, requestID id.HiringRequestID, validate func(*models.HiringRequest) error, mutate func(*models.HiringRequest)) (_ *models.HiringRequest, err error) {
	ctx, span := tracer.Start(ctx, op, trace.WithAttributes(
		attribute.String("hiring_request_id", requestID.String()),
	))
	defer tracing.End(span, &err)

	var updated *models.HiringRequest
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		r, err := s.requests.Execute(txCtx, requestID, validate, mutate)
		if err != nil {
			return translateRequestErr(err, "failed to update hiring request")
		}
		updated = r
		return s.emit(txCtx, outbox.EventHiringStatusChanged, r)
	})
	if err != nil {
		return nil, err
	}

	s.logAudit(ctx, "hiring_status_changed",
		"hiring_request_id", requestID.String(),
		"status", string(updated.Status),
	)
	s.incrementTransition(updated.Status)
	return updated, nil
}

// AuthorizeInvestigator fails with Forbidden unless actorID is the request's
// investigator.
func (s *Service) AuthorizeInvestigator(ctx context.Context, requestID id.HiringRequestID, actorID id.UserID) error {
	r, err := s.Get(ctx, requestID)
	if err != nil {
		return err
	}
	if r.InvestigatorID != actorID {
		return dErrors.New(dErrors.CodeForbidden, "only the invited investigator can respond")
	}
	return nil
}

// AuthorizeParty fails with Forbidden unless actorID is either side of the
// request.
func (s *Service) AuthorizeParty(ctx context.Context, requestID id.HiringRequestID, actorID id.UserID) error {
	r, err := s.Get(ctx, requestID)
	if err != nil {
		return err
	}
	if r.InvestigatorID != actorID && r.OrganizationID != actorID {
		return dErrors.New(dErrors.CodeForbidden, "not a party to this hiring request")
	}
	return nil
}
