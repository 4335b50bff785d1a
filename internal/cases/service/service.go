package service

import (
	"context"
	"errors"
	"log/slog"

	"casebook/internal/cases/metrics"
	"casebook/internal/cases/models"
	idmodels "casebook/internal/identity/models"
	"casebook/internal/platform/tracing"
	"casebook/internal/policy"
	id "casebook/pkg/domain"
	dErrors "casebook/pkg/domain-errors"
	"casebook/pkg/platform/outbox"
	"casebook/pkg/platform/sentinel"
	"casebook/pkg/requestcontext"
)

var tracer = tracing.Tracer("casebook/cases")

type CaseStore interface {
	Create(ctx context.Context, c *models.CrimeCase) error
	FindByID(ctx context.Context, caseID id.CaseID) (*models.CrimeCase, error)
	List(ctx context.Context, filter models.Filter) ([]*models.CrimeCase, error)
	ListSolvedWithoutBadge(ctx context.Context) ([]*models.CrimeCase, error)
	Execute(ctx context.Context, caseID id.CaseID, validate func(*models.CrimeCase) error, mutate func(*models.CrimeCase)) (*models.CrimeCase, error)
	Delete(ctx context.Context, caseID id.CaseID) error
}

type UserStore interface {
	FindByID(ctx context.Context, userID id.UserID) (*idmodels.User, error)
}

// ParticipationLedger is the slice of the participation service the registry
// drives: owner enrollment at creation, the solve gate and release on delete.
type ParticipationLedger interface {
	EnrollOwner(ctx context.Context, userID id.UserID, caseID id.CaseID) error
	IsActiveParticipant(ctx context.Context, userID id.UserID, caseID id.CaseID) (bool, error)
	ReleaseCase(ctx context.Context, caseID id.CaseID) error
}

// ReputationEngine receives the registry's reputation-relevant transitions.
type ReputationEngine interface {
	OnCaseSolved(ctx context.Context, solverID id.UserID) error
	AwardCaseBadge(ctx context.Context, solverID id.UserID, caseID id.CaseID, badgeName string) error
}

// StoreTx runs fn as one unit of work; stores called with txCtx join it.
type StoreTx interface {
	RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error
}

// Service orchestrates the case lifecycle.
type Service struct {
	cases         CaseStore
	users         UserStore
	participation ParticipationLedger
	reputation    ReputationEngine
	tx            StoreTx
	events        outbox.Store
	logger        *slog.Logger
	metrics       *metrics.Metrics
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

func New(cases CaseStore, users UserStore, participation ParticipationLedger, reputation ReputationEngine, tx StoreTx, opts ...Option) *Service {
	s := &Service{
		cases:         cases,
		users:         users,
		participation: participation,
		reputation:    reputation,
		tx:            tx,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns a case by id.
func (s *Service) Get(ctx context.Context, caseID id.CaseID) (*models.CrimeCase, error) {
	c, err := s.cases.FindByID(ctx, caseID)
	if err != nil {
		return nil, translateCaseErr(err, "failed to load case")
	}
	return c, nil
}

// List returns the cases matching filter, newest first.
func (s *Service) List(ctx context.Context, filter models.Filter) ([]*models.CrimeCase, error) {
	out, err := s.cases.List(ctx, filter)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list cases")
	}
	return out, nil
}

// ListSolvedWithoutBadge returns SOLVED cases still waiting for a case badge.
func (s *Service) ListSolvedWithoutBadge(ctx context.Context) ([]*models.CrimeCase, error) {
	out, err := s.cases.ListSolvedWithoutBadge(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list cases awaiting a badge")
	}
	return out, nil
}

// AuthorizeManager fails with Forbidden unless requester posted the case or is
// an admin. Handlers call it before lifecycle and assignment operations.
func (s *Service) AuthorizeManager(ctx context.Context, caseID id.CaseID, requesterID id.UserID) error {
	c, err := s.cases.FindByID(ctx, caseID)
	if err != nil {
		return translateCaseErr(err, "failed to load case")
	}
	requester, err := s.loadUser(ctx, requesterID)
	if err != nil {
		return err
	}
	if !policy.CanManageCase(requester, c.PostedBy) {
		return dErrors.New(dErrors.CodeForbidden, "only the posting organization or an admin can manage this case")
	}
	return nil
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

func translateCaseErr(err error, msg string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, "case not found")
	}
	if dErrors.IsDomain(err) {
		return err
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, msg)
}

func (s *Service) emit(ctx context.Context, eventType outbox.EventType, c *models.CrimeCase, payload map[string]any) error {
	if payload == nil {
		payload = map[string]any{}
	}
	payload["case_id"] = c.ID.String()
	payload["status"] = string(c.Status)
	if err := outbox.Emit(ctx, s.events, eventType, "crime_case", c.ID.String(), payload); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to record case event")
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
		s.metrics.IncrementCreated()
	}
}

func (s *Service) incrementSolved() {
	if s.metrics != nil {
		s.metrics.IncrementSolved()
	}
}

func (s *Service) incrementSolveConflict() {
	if s.metrics != nil {
		s.metrics.IncrementSolveConflict()
	}
}

func (s *Service) incrementStatusChange(status models.Status) {
	if s.metrics != nil {
		s.metrics.IncrementStatusChange(string(status))
	}
}

func (s *Service) incrementDeleted() {
	if s.metrics != nil {
		s.metrics.IncrementDeleted()
	}
}

func (s *Service) incrementCaseBadge() {
	if s.metrics != nil {
		s.metrics.IncrementCaseBadge()
	}
}
