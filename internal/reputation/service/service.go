package service

import (
	"context"
	"errors"
	"log/slog"

	casemodels "casebook/internal/cases/models"
	idmodels "casebook/internal/identity/models"
	"casebook/internal/platform/tracing"
	"casebook/internal/reputation/leaderboard"
	"casebook/internal/reputation/metrics"
	"casebook/internal/reputation/models"
	"casebook/internal/reputation/rules"
	id "casebook/pkg/domain"
	dErrors "casebook/pkg/domain-errors"
	"casebook/pkg/platform/outbox"
	"casebook/pkg/platform/sentinel"
	"casebook/pkg/requestcontext"
)

var tracer = tracing.Tracer("casebook/reputation")

// UserStore is the identity directory's row-locked write path; aggregate
// fields are only ever written through Execute.
type UserStore interface {
	FindByID(ctx context.Context, userID id.UserID) (*idmodels.User, error)
	Execute(ctx context.Context, userID id.UserID, validate func(*idmodels.User) error, mutate func(*idmodels.User)) (*idmodels.User, error)
}

type BadgeStore interface {
	Create(ctx context.Context, b *models.Badge) error
	FindByID(ctx context.Context, badgeID id.BadgeID) (*models.Badge, error)
	FindByName(ctx context.Context, name string) (*models.Badge, error)
	List(ctx context.Context) ([]*models.Badge, error)
	Execute(ctx context.Context, badgeID id.BadgeID, validate func(*models.Badge) error, mutate func(*models.Badge)) (*models.Badge, error)
}

type AwardStore interface {
	Create(ctx context.Context, a *models.BadgeAward) error
	FindByID(ctx context.Context, awardID id.BadgeAwardID) (*models.BadgeAward, error)
	FindByUserAndBadge(ctx context.Context, userID id.UserID, badgeID id.BadgeID) (*models.BadgeAward, error)
	ListByUser(ctx context.Context, userID id.UserID) ([]*models.BadgeAward, error)
	ListByAwarder(ctx context.Context, awarderID id.UserID) ([]*models.BadgeAward, error)
	Delete(ctx context.Context, awardID id.BadgeAwardID) error
}

type RatingStore interface {
	Upsert(ctx context.Context, r *models.Rating) (*models.Rating, bool, error)
	FindByID(ctx context.Context, ratingID id.RatingID) (*models.Rating, error)
	ListByRatedUser(ctx context.Context, userID id.UserID) ([]*models.Rating, error)
	ListByRater(ctx context.Context, raterID id.UserID) ([]*models.Rating, error)
	Aggregate(ctx context.Context, userID id.UserID) (models.Aggregate, error)
	CategoryTallies(ctx context.Context, userID id.UserID) ([]models.CategoryTally, error)
	Delete(ctx context.Context, ratingID id.RatingID) error
}

// ParticipationCounter reads the ledger's ACTIVE count for a user.
type ParticipationCounter interface {
	CountActiveByUser(ctx context.Context, userID id.UserID) (int, error)
}

type CaseReader interface {
	FindByID(ctx context.Context, caseID id.CaseID) (*casemodels.CrimeCase, error)
}

type Leaderboard interface {
	Record(ctx context.Context, userID id.UserID, solvedCases int, averageRating float64) error
	TopSolvers(ctx context.Context, n int) ([]leaderboard.Entry, error)
}

type StoreTx interface {
	RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error
}

// Service maintains user reputation: aggregate fields, badge awards and
// ratings. Reactive hooks run inside the caller's transaction.
type Service struct {
	users          UserStore
	badges         BadgeStore
	awards         AwardStore
	ratings        RatingStore
	participations ParticipationCounter
	cases          CaseReader
	tx             StoreTx
	board          Leaderboard
	rules          []rules.Rule
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

func WithLeaderboard(board Leaderboard) Option {
	return func(s *Service) {
		if board != nil {
			s.board = board
		}
	}
}

// WithRules replaces the automatic badge rules.
func WithRules(r []rules.Rule) Option {
	return func(s *Service) {
		s.rules = r
	}
}

func New(users UserStore, badges BadgeStore, awards AwardStore, ratings RatingStore, participations ParticipationCounter, cases CaseReader, tx StoreTx, opts ...Option) *Service {
	s := &Service{
		users:          users,
		badges:         badges,
		awards:         awards,
		ratings:        ratings,
		participations: participations,
		cases:          cases,
		tx:             tx,
		board:          leaderboard.Noop{},
		rules:          rules.Default,
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

// updateUser applies mutate under the user row lock.
func (s *Service) updateUser(ctx context.Context, userID id.UserID, mutate func(*idmodels.User)) (*idmodels.User, error) {
	u, err := s.users.Execute(ctx, userID, nil, mutate)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "user not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to update user aggregates")
	}
	return u, nil
}

func (s *Service) ensureCase(ctx context.Context, caseID *id.CaseID) error {
	if caseID == nil {
		return nil
	}
	if _, err := s.cases.FindByID(ctx, *caseID); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeNotFound, "case not found")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load case")
	}
	return nil
}

func translate(err error, what, msg string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, what+" not found")
	}
	if dErrors.IsDomain(err) {
		return err
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, msg)
}

func (s *Service) emit(ctx context.Context, eventType outbox.EventType, aggregateType, aggregateID string, payload map[string]any) error {
	if err := outbox.Emit(ctx, s.events, eventType, aggregateType, aggregateID, payload); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to record reputation event")
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

func (s *Service) logDebug(ctx context.Context, msg string, attributes ...any) {
	if s.logger != nil {
		s.logger.DebugContext(ctx, msg, attributes...)
	}
}

func (s *Service) incrementBadgeAwarded(source string) {
	if s.metrics != nil {
		s.metrics.IncrementBadgeAwarded(source)
	}
}

func (s *Service) incrementBadgeRevoked() {
	if s.metrics != nil {
		s.metrics.IncrementBadgeRevoked()
	}
}

func (s *Service) incrementRating(created bool) {
	if s.metrics != nil {
		s.metrics.IncrementRating(created)
	}
}

func (s *Service) incrementRecompute(trigger string) {
	if s.metrics != nil {
		s.metrics.IncrementRecompute(trigger)
	}
}

func (s *Service) incrementLeaderboardFailure() {
	if s.metrics != nil {
		s.metrics.IncrementLeaderboardFailure()
	}
}
