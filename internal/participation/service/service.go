package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	casemodels "casebook/internal/cases/models"
	idmodels "casebook/internal/identity/models"
	"casebook/internal/participation/metrics"
	"casebook/internal/participation/models"
	"casebook/internal/platform/tracing"
	id "casebook/pkg/domain"
	dErrors "casebook/pkg/domain-errors"
	"casebook/pkg/platform/outbox"
	"casebook/pkg/platform/sentinel"
	"casebook/pkg/requestcontext"
)

var tracer = tracing.Tracer("casebook/participation")

type ParticipationStore interface {
	Create(ctx context.Context, p *models.Participation) error
	FindByUserAndCase(ctx context.Context, userID id.UserID, caseID id.CaseID) (*models.Participation, error)
	ListByCase(ctx context.Context, caseID id.CaseID) ([]*models.Participation, error)
	ListByUser(ctx context.Context, userID id.UserID) ([]*models.Participation, error)
	CountActiveByUser(ctx context.Context, userID id.UserID) (int, error)
	Execute(ctx context.Context, userID id.UserID, caseID id.CaseID, validate func(*models.Participation) error, mutate func(*models.Participation)) (*models.Participation, error)
	DeactivateCase(ctx context.Context, caseID id.CaseID, now time.Time) ([]id.UserID, error)
}

// CaseReader is the read side of the case registry the ledger needs to gate
// joins.
type CaseReader interface {
	FindByID(ctx context.Context, caseID id.CaseID) (*casemodels.CrimeCase, error)
}

type UserStore interface {
	FindByID(ctx context.Context, userID id.UserID) (*idmodels.User, error)
}

// ReputationEngine recomputes a user's active-case count and participation
// badges after any status change.
type ReputationEngine interface {
	OnParticipationChanged(ctx context.Context, userID id.UserID) error
}

type StoreTx interface {
	RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error
}

// Service is the participation ledger.
type Service struct {
	participations ParticipationStore
	cases          CaseReader
	users          UserStore
	reputation     ReputationEngine
	tx             StoreTx
	events         outbox.Store
	logger         *slog.Logger
	metrics        *metrics.Metrics
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

func New(participations ParticipationStore, cases CaseReader, users UserStore, reputation ReputationEngine, tx StoreTx, opts ...Option) *Service {
	s := &Service{
		participations: participations,
		cases:          cases,
		users:          users,
		reputation:     reputation,
		tx:             tx,
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

func (s *Service) loadCase(ctx context.Context, caseID id.CaseID) (*casemodels.CrimeCase, error) {
	c, err := s.cases.FindByID(ctx, caseID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "case not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load case")
	}
	return c, nil
}

// translateParticipationErr maps a missing pair to NotParticipating.
func translateParticipationErr(err error, msg string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotParticipating, "user is not participating in this case")
	}
	if dErrors.IsDomain(err) {
		return err
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, msg)
}

func (s *Service) emit(ctx context.Context, p *models.Participation, change string) error {
	payload := map[string]any{
		"participation_id": p.ID.String(),
		"user_id":          p.UserID.String(),
		"case_id":          p.CaseID.String(),
		"role":             string(p.Role),
		"status":           string(p.Status),
		"change":           change,
	}
	if err := outbox.Emit(ctx, s.events, outbox.EventParticipationChanged, "case_participation", p.ID.String(), payload); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to record participation event")
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

func (s *Service) incrementJoin(reactivated bool) {
	if s.metrics != nil {
		s.metrics.IncrementJoin(reactivated)
	}
}

func (s *Service) incrementTransition(status models.Status) {
	if s.metrics != nil {
		s.metrics.IncrementTransition(string(status))
	}
}

func (s *Service) incrementRoleChange(role models.Role) {
	if s.metrics != nil {
		s.metrics.IncrementRoleChange(string(role))
	}
}

func (s *Service) incrementReleasedCase() {
	if s.metrics != nil {
		s.metrics.IncrementReleasedCase()
	}
}
