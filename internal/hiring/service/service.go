package service

import (
	"context"
	"errors"
	"log/slog"

	casemodels "casebook/internal/cases/models"
	"casebook/internal/hiring/metrics"
	"casebook/internal/hiring/models"
	idmodels "casebook/internal/identity/models"
	"casebook/internal/platform/tracing"
	id "casebook/pkg/domain"
	dErrors "casebook/pkg/domain-errors"
	"casebook/pkg/platform/outbox"
	"casebook/pkg/platform/sentinel"
	"casebook/pkg/requestcontext"
)

var tracer = tracing.Tracer("casebook/hiring")

type RequestStore interface {
	Create(ctx context.Context, r *models.HiringRequest) error
	FindByID(ctx context.Context, requestID id.HiringRequestID) (*models.HiringRequest, error)
	ListByOrganization(ctx context.Context, orgID id.UserID) ([]*models.HiringRequest, error)
	ListByInvestigator(ctx context.Context, investigatorID id.UserID) ([]*models.HiringRequest, error)
	ListByCase(ctx context.Context, caseID id.CaseID) ([]*models.HiringRequest, error)
	Execute(ctx context.Context, requestID id.HiringRequestID, validate func(*models.HiringRequest) error, mutate func(*models.HiringRequest)) (*models.HiringRequest, error)
}

type PostStore interface {
	Create(ctx context.Context, p *models.JobPost) error
	FindByID(ctx context.Context, postID id.JobPostID) (*models.JobPost, error)
	List(ctx context.Context, filter models.PostFilter) ([]*models.JobPost, error)
	Execute(ctx context.Context, postID id.JobPostID, validate func(*models.JobPost) error, mutate func(*models.JobPost)) (*models.JobPost, error)
	Delete(ctx context.Context, postID id.JobPostID) error
}

type ApplicationStore interface {
	Create(ctx context.Context, a *models.Application) error
	FindByID(ctx context.Context, applicationID id.ApplicationID) (*models.Application, error)
	ListByPost(ctx context.Context, postID id.JobPostID) ([]*models.Application, error)
	ListByApplicant(ctx context.Context, applicantID id.UserID) ([]*models.Application, error)
	Execute(ctx context.Context, applicationID id.ApplicationID, validate func(*models.Application) error, mutate func(*models.Application)) (*models.Application, error)
	DeleteByPost(ctx context.Context, postID id.JobPostID) error
}

type CaseReader interface {
	FindByID(ctx context.Context, caseID id.CaseID) (*casemodels.CrimeCase, error)
}

type UserStore interface {
	FindByID(ctx context.Context, userID id.UserID) (*idmodels.User, error)
}

type StoreTx interface {
	RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error
}

// Service negotiates hiring requests between organizations and investigators.
type Service struct {
	requests RequestStore
	cases    CaseReader
	users    UserStore
	tx       StoreTx
	events   outbox.Store
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithOutbox(events outbox.Store) Option {
	return func(s *Service) {
		s.events = events
	}
}

func New(requests RequestStore, cases CaseReader, users UserStore, tx StoreTx, opts ...Option) *Service {
	s := &Service{
		requests: requests,
		cases:    cases,
		users:    users,
		tx:       tx,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) loadUser(ctx context.Context, userID id.UserID) (*idmodels.User, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "user not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load user")
	}
	return u, nil
}

func translateRequestErr(err error, msg string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, "hiring request not found")
	}
	if dErrors.IsDomain(err) {
		return err
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, msg)
}

func (s *Service) emit(ctx context.Context, eventType outbox.EventType, r *models.HiringRequest) error {
	payload := map[string]any{
		"hiring_request_id": r.ID.String(),
		"organization_id":   r.OrganizationID.String(),
		"investigator_id":   r.InvestigatorID.String(),
		"case_id":           r.CaseID.String(),
		"status":            string(r.Status),
	}
	if err := outbox.Emit(ctx, s.events, eventType, "hiring_request", r.ID.String(), payload); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to record hiring event")
	}
	return nil
}

func (s *Service) logAudit(ctx context.Context, event string, attributes ...any) {
	if s.logger == nil {
		return
	}
	if requestID := requestcontext.RequestID(ctx); requestID != "" {
		attributes = append(attributes, "request_id", requestID)
	}
	args := append(attributes, "event", event, "log_type", "audit")
	s.logger.InfoContext(ctx, event, args...)
}

func (s *Service) incrementCreated() {
	if s.metrics != nil {
		s.metrics.IncrementRequestsCreated()
	}
}

func (s *Service) incrementDuplicate() {
	if s.metrics != nil {
		s.metrics.IncrementDuplicateRequests()
	}
}

func (s *Service) incrementTransition(status models.Status) {
	if s.metrics != nil {
		s.metrics.IncrementTransition(string(status))
	}
}

func (s *Service) incrementJobBoard(action string) {
	if s.metrics != nil {
		s.metrics.IncrementJobBoardAction(action)
	}
}
