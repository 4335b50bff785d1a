package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"casebook/internal/identity/models"
	"casebook/internal/platform/metrics"
	platformmw "casebook/internal/platform/middleware"
	id "casebook/pkg/domain"
	dErrors "casebook/pkg/domain-errors"
	"casebook/pkg/platform/httputil"
	"casebook/pkg/platform/middleware/auth"
	"casebook/pkg/platform/middleware/request"
	"casebook/pkg/requestcontext"
)

// Service is the identity directory as seen by HTTP.
type Service interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.LoginResult, error)
	Get(ctx context.Context, userID id.UserID) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	VerifyOrganization(ctx context.Context, adminID, orgID id.UserID) (*models.User, error)
	SetAvailableForHire(ctx context.Context, userID id.UserID, req models.AvailabilityRequest) (*models.User, error)
	ListAvailableSolvers(ctx context.Context) ([]*models.User, error)
}

type Handler struct {
	users        Service
	logger       *slog.Logger
	metrics      *metrics.Metrics
	jwtValidator auth.JWTValidator
	authLimit    func(http.Handler) http.Handler
}

type Option func(*Handler)

// WithAuthRateLimit guards registration and login with mw.
func WithAuthRateLimit(mw func(http.Handler) http.Handler) Option {
	return func(h *Handler) {
		h.authLimit = mw
	}
}

func New(users Service, logger *slog.Logger, m *metrics.Metrics, jwtValidator auth.JWTValidator, opts ...Option) *Handler {
	h := &Handler{
		users:        users,
		logger:       logger,
		metrics:      m,
		jwtValidator: jwtValidator,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Register adds the public registration and login routes plus the
// authenticated directory routes.
func (h *Handler) Register(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(request.Recovery(h.logger))
		r.Use(request.RequestID)
		r.Use(request.Logger(h.logger))
		r.Use(request.Timeout(30 * time.Second))
		r.Use(request.ContentTypeJSON)
		r.Use(platformmw.Latency(h.metrics))

		r.Group(func(r chi.Router) {
			if h.authLimit != nil {
				r.Use(h.authLimit)
			}
			r.Post("/auth/register", h.handleRegister)
			r.Post("/auth/login", h.handleLogin)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAuth(h.jwtValidator, h.logger))
			r.Get("/users/me", h.handleMe)
			r.Put("/users/me/availability", h.handleSetAvailability)
			r.Get("/users/by-username/{username}", h.handleGetByUsername)
			r.Get("/users/{userID}", h.handleGetUser)
			r.Post("/users/{userID}/verify", h.handleVerifyOrganization)
			r.Get("/solvers/available", h.handleAvailableSolvers)
		})
	})
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.writeError(r.Context(), w, "register", err)
		return
	}
	u, err := h.users.Register(r.Context(), req)
	if err != nil {
		h.writeError(r.Context(), w, "register", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, u)
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.writeError(r.Context(), w, "login", err)
		return
	}
	res, err := h.users.Login(r.Context(), req)
	if err != nil {
		h.writeError(r.Context(), w, "login", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, res)
}

func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	u, err := h.users.Get(r.Context(), requestcontext.UserID(r.Context()))
	if err != nil {
		h.writeError(r.Context(), w, "get current user", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, u)
}

func (h *Handler) handleGetUser(w http.ResponseWriter, r *http.Request) {
	userID, err := id.ParseUserID(chi.URLParam(r, "userID"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid user id"))
		return
	}
	u, err := h.users.Get(r.Context(), userID)
	if err != nil {
		h.writeError(r.Context(), w, "get user", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, u)
}

func (h *Handler) handleGetByUsername(w http.ResponseWriter, r *http.Request) {
	u, err := h.users.GetByUsername(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		h.writeError(r.Context(), w, "get user by username", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, u)
}

func (h *Handler) handleVerifyOrganization(w http.ResponseWriter, r *http.Request) {
	orgID, err := id.ParseUserID(chi.URLParam(r, "userID"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid user id"))
		return
	}
	u, err := h.users.VerifyOrganization(r.Context(), requestcontext.UserID(r.Context()), orgID)
	if err != nil {
		h.writeError(r.Context(), w, "verify organization", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, u)
}

func (h *Handler) handleSetAvailability(w http.ResponseWriter, r *http.Request) {
	var req models.AvailabilityRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.writeError(r.Context(), w, "set availability", err)
		return
	}
	u, err := h.users.SetAvailableForHire(r.Context(), requestcontext.UserID(r.Context()), req)
	if err != nil {
		h.writeError(r.Context(), w, "set availability", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, u)
}

func (h *Handler) handleAvailableSolvers(w http.ResponseWriter, r *http.Request) {
	solvers, err := h.users.ListAvailableSolvers(r.Context())
	if err != nil {
		h.writeError(r.Context(), w, "list available solvers", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"solvers": solvers})
}

func (h *Handler) writeError(ctx context.Context, w http.ResponseWriter, op string, err error) {
	if dErrors.CodeOf(err) == dErrors.CodeInternal {
		h.logger.ErrorContext(ctx, "identity request failed",
			"op", op,
			"error", err,
			"request_id", request.GetRequestID(ctx),
		)
	}
	httputil.WriteError(w, err)
}
