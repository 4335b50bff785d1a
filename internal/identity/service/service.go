package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/crypto/bcrypt"

	"casebook/internal/identity/models"
	"casebook/internal/platform/metrics"
	"casebook/internal/platform/tracing"
	"casebook/internal/policy"
	id "casebook/pkg/domain"
	dErrors "casebook/pkg/domain-errors"
	"casebook/pkg/platform/outbox"
	"casebook/pkg/platform/sentinel"
	platformstrings "casebook/pkg/platform/strings"
	"casebook/pkg/requestcontext"
)

var tracer = tracing.Tracer("casebook/identity")

type UserStore interface {
	Create(ctx context.Context, u *models.User) error
	FindByID(ctx context.Context, userID id.UserID) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	ListByRole(ctx context.Context, role models.Role) ([]*models.User, error)
	Execute(ctx context.Context, userID id.UserID, validate func(*models.User) error, mutate func(*models.User)) (*models.User, error)
}

// TokenIssuer signs access tokens for authenticated users.
type TokenIssuer interface {
	GenerateAccessToken(userID id.UserID, role string, expiresIn time.Duration) (string, error)
}

type StoreTx interface {
	RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error
}

// Service is the identity directory: registration, login, verification and
// hiring availability.
type Service struct {
	users      UserStore
	tx         StoreTx
	tokens     TokenIssuer
	tokenTTL   time.Duration
	bcryptCost int
	events     outbox.Store
	logger     *slog.Logger
	metrics    *metrics.Metrics
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

func WithTokenIssuer(tokens TokenIssuer, ttl time.Duration) Option {
	return func(s *Service) {
		s.tokens = tokens
		s.tokenTTL = ttl
	}
}

// WithBcryptCost overrides bcrypt.DefaultCost; tests use bcrypt.MinCost.
func WithBcryptCost(cost int) Option {
	return func(s *Service) {
		s.bcryptCost = cost
	}
}

func New(users UserStore, tx StoreTx, opts ...Option) *Service {
	s := &Service{
		users:      users,
		tx:         tx,
		tokenTTL:   time.Hour,
		bcryptCost: bcrypt.DefaultCost,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register creates a user. ADMIN accounts cannot self-register.
func (s *Service) Register(ctx context.Context, req models.RegisterRequest) (_ *models.User, err error) {
	ctx, span := tracer.Start(ctx, "identity.Register")
	defer tracing.End(span, &err)

	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if req.Role == models.RoleAdmin {
		return nil, dErrors.New(dErrors.CodeForbidden, "admin accounts cannot self-register")
	}
	return s.create(ctx, req)
}

// EnsureAdmin seeds an ADMIN account if username is not taken yet.
func (s *Service) EnsureAdmin(ctx context.Context, username, email, password string) (*models.User, error) {
	existing, err := s.users.FindByUsername(ctx, username)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, sentinel.ErrNotFound) {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up admin")
	}
	req := models.RegisterRequest{Username: username, Email: email, Password: password, Role: models.RoleAdmin}
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.create(ctx, req)
}

func (s *Service) create(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	u, err := models.NewUser(id.UserID(uuid.New()), req.Username, req.Email, req.Role, requestcontext.Now(ctx))
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeInvariantViolation) {
			return nil, dErrors.New(dErrors.CodeValidation, err.Error())
		}
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to hash password")
	}
	u.PasswordHash = string(hash)
	u.Specializations = platformstrings.DedupeAndTrimUpper(req.Specializations)

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.users.Create(txCtx, u); err != nil {
			if errors.Is(err, sentinel.ErrAlreadyUsed) {
				return dErrors.New(dErrors.CodeConflict, "username is already taken")
			}
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to create user")
		}
		return s.emit(txCtx, outbox.EventUserRegistered, u)
	})
	if err != nil {
		return nil, err
	}

	s.logAudit(ctx, string(outbox.EventUserRegistered), "user_id", u.ID.String(), "role", string(u.Role))
	if s.metrics != nil {
		s.metrics.IncrementUsersRegistered()
	}
	return u, nil
}

// Login checks the password and issues an access token.
func (s *Service) Login(ctx context.Context, req models.LoginRequest) (_ *models.LoginResult, err error) {
	ctx, span := tracer.Start(ctx, "identity.Login")
	defer tracing.End(span, &err)

	if s.tokens == nil {
		return nil, dErrors.New(dErrors.CodeInternal, "token issuer not configured")
	}
	invalid := dErrors.New(dErrors.CodeUnauthorized, "invalid username or password")
	u, err := s.users.FindByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, invalid
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load user")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		s.logAudit(ctx, "login_failed", "user_id", u.ID.String())
		return nil, invalid
	}
	token, err := s.tokens.GenerateAccessToken(u.ID, string(u.Role), s.tokenTTL)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to issue token")
	}
	return &models.LoginResult{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int(s.tokenTTL.Seconds()),
		User:        u,
	}, nil
}

// VerifyOrganization flips organizationVerified on an ORGANIZATION account.
func (s *Service) VerifyOrganization(ctx context.Context, adminID, orgID id.UserID) (_ *models.User, err error) {
	ctx, span := tracer.Start(ctx, "identity.VerifyOrganization", trace.WithAttributes(attribute.String("org_id", orgID.String())))
	defer tracing.End(span, &err)

	admin, err := s.Get(ctx, adminID)
	if err != nil {
		return nil, err
	}
	if !policy.CanVerifyOrganization(admin) {
		return nil, dErrors.New(dErrors.CodeForbidden, "only admins can verify organizations")
	}

	var updated *models.User
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		now := requestcontext.Now(txCtx)
		u, err := s.users.Execute(txCtx, orgID,
			func(u *models.User) error {
				if u.Role != models.RoleOrganization {
					return dErrors.New(dErrors.CodeInvalidRole, "only organizations can be verified")
				}
				return nil
			},
			func(u *models.User) { u.ApplyVerification(now) },
		)
		if err != nil {
			return translateUserErr(err, "failed to verify organization")
		}
		updated = u
		return s.emit(txCtx, outbox.EventOrganizationVerified, u)
	})
	if err != nil {
		return nil, err
	}

	s.logAudit(ctx, string(outbox.EventOrganizationVerified), "user_id", orgID.String(), "verified_by", adminID.String())
	return updated, nil
}

// SetAvailableForHire toggles a solver's hiring availability and rate.
func (s *Service) SetAvailableForHire(ctx context.Context, userID id.UserID, req models.AvailabilityRequest) (*models.User, error) {
	if req.HourlyRate != nil && *req.HourlyRate < 0 {
		return nil, dErrors.New(dErrors.CodeValidation, "hourly rate cannot be negative")
	}
	var updated *models.User
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		now := requestcontext.Now(txCtx)
		u, err := s.users.Execute(txCtx, userID,
			func(u *models.User) error {
				if u.Role != models.RoleSolver {
					return dErrors.New(dErrors.CodeInvalidRole, "only solvers can be available for hire")
				}
				return nil
			},
			func(u *models.User) { u.ApplyAvailability(req.AvailableForHire, req.HourlyRate, now) },
		)
		if err != nil {
			return translateUserErr(err, "failed to update availability")
		}
		updated = u
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logAudit(ctx, "availability_changed", "user_id", userID.String(), "available", req.AvailableForHire)
	return updated, nil
}

func (s *Service) Get(ctx context.Context, userID id.UserID) (*models.User, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, translateUserErr(err, "failed to load user")
	}
	return u, nil
}

func (s *Service) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	u, err := s.users.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return nil, translateUserErr(err, "failed to load user")
	}
	return u, nil
}

// ListAvailableSolvers returns solvers open to hiring requests.
func (s *Service) ListAvailableSolvers(ctx context.Context) ([]*models.User, error) {
	solvers, err := s.users.ListByRole(ctx, models.RoleSolver)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list solvers")
	}
	out := make([]*models.User, 0, len(solvers))
	for _, u := range solvers {
		if policy.CanBeHired(u) {
			out = append(out, u)
		}
	}
	return out, nil
}

func translateUserErr(err error, msg string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, "user not found")
	}
	if dErrors.IsDomain(err) {
		return err
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, msg)
}

func (s *Service) emit(ctx context.Context, eventType outbox.EventType, u *models.User) error {
	payload := map[string]any{
		"user_id":               u.ID.String(),
		"username":              u.Username,
		"role":                  string(u.Role),
		"organization_verified": u.OrganizationVerified,
	}
	if err := outbox.Emit(ctx, s.events, eventType, "user", u.ID.String(), payload); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to record user event")
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
