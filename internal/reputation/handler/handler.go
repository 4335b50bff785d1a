package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"casebook/internal/platform/metrics"
	platformmw "casebook/internal/platform/middleware"
	"casebook/internal/reputation/leaderboard"
	"casebook/internal/reputation/models"
	id "casebook/pkg/domain"
	dErrors "casebook/pkg/domain-errors"
	"casebook/pkg/platform/httputil"
	"casebook/pkg/platform/middleware/auth"
	"casebook/pkg/platform/middleware/request"
	"casebook/pkg/requestcontext"
)

const defaultLeaderboardSize = 10

// Service is the reputation engine as seen by HTTP. Aggregate hooks are not
// exposed; they fire from the case and participation services.
type Service interface {
	ListBadges(ctx context.Context, activeOnly bool) ([]*models.Badge, error)
	GetBadge(ctx context.Context, badgeID id.BadgeID) (*models.Badge, error)
	CreateBadge(ctx context.Context, actorID id.UserID, req models.BadgeRequest) (*models.Badge, error)
	UpdateBadge(ctx context.Context, actorID id.UserID, badgeID id.BadgeID, req models.BadgeRequest) (*models.Badge, error)
	DeactivateBadge(ctx context.Context, actorID id.UserID, badgeID id.BadgeID) (*models.Badge, error)
	AwardManually(ctx context.Context, awarderID, userID id.UserID, badgeID id.BadgeID, reason string, caseID *id.CaseID) (*models.BadgeAward, error)
	Revoke(ctx context.Context, awardID id.BadgeAwardID, requesterID id.UserID) error
	AwardsForUser(ctx context.Context, userID id.UserID) ([]*models.BadgeAward, error)
	AwardsByAwarder(ctx context.Context, awarderID id.UserID) ([]*models.BadgeAward, error)
	Progress(ctx context.Context, userID id.UserID, badgeID id.BadgeID) (models.Progress, error)
	EligibleBadges(ctx context.Context, userID id.UserID) ([]*models.Badge, error)
	Rate(ctx context.Context, raterID, ratedID id.UserID, score int, comment, category string, caseID *id.CaseID) (*models.Rating, error)
	DeleteRating(ctx context.Context, ratingID id.RatingID, requesterID id.UserID) error
	RatingsForUser(ctx context.Context, userID id.UserID) ([]*models.Rating, error)
	RatingsByRater(ctx context.Context, raterID id.UserID) ([]*models.Rating, error)
	RatingStatistics(ctx context.Context, userID id.UserID) (models.Statistics, error)
	TopSolvers(ctx context.Context, n int) ([]leaderboard.Entry, error)
}

type Handler struct {
	reputation   Service
	logger       *slog.Logger
	metrics      *metrics.Metrics
	jwtValidator auth.JWTValidator
}

func New(reputation Service, logger *slog.Logger, m *metrics.Metrics, jwtValidator auth.JWTValidator) *Handler {
	return &Handler{
		reputation:   reputation,
		logger:       logger,
		metrics:      m,
		jwtValidator: jwtValidator,
	}
}

func (h *Handler) Register(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(request.Recovery(h.logger))
		r.Use(request.RequestID)
		r.Use(request.Logger(h.logger))
		r.Use(request.Timeout(30 * time.Second))
		r.Use(request.ContentTypeJSON)
		r.Use(platformmw.Latency(h.metrics))
		r.Use(auth.RequireAuth(h.jwtValidator, h.logger))

		r.Get("/badges", h.handleListBadges)
		r.Post("/badges", h.handleCreateBadge)
		r.Get("/badges/{badgeID}", h.handleGetBadge)
		r.Put("/badges/{badgeID}", h.handleUpdateBadge)
		r.Post("/badges/{badgeID}/deactivate", h.handleDeactivateBadge)
		r.Post("/badge-awards", h.handleAward)
		r.Delete("/badge-awards/{awardID}", h.handleRevoke)
		r.Get("/users/{userID}/badge-awards", h.handleAwardsForUser)
		r.Get("/users/{userID}/badge-awards-given", h.handleAwardsGiven)
		r.Get("/users/{userID}/badge-progress/{badgeID}", h.handleProgress)
		r.Get("/users/{userID}/eligible-badges", h.handleEligible)
		r.Post("/users/{userID}/ratings", h.handleRate)
		r.Get("/users/{userID}/ratings", h.handleRatingsForUser)
		r.Get("/users/{userID}/ratings-given", h.handleRatingsGiven)
		r.Get("/users/{userID}/rating-stats", h.handleRatingStats)
		r.Delete("/ratings/{ratingID}", h.handleDeleteRating)
		r.Get("/leaderboard", h.handleLeaderboard)
	})
}

// handleListBadges lists active badges; ?all=true includes deactivated ones.
func (h *Handler) handleListBadges(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	out, err := h.reputation.ListBadges(ctx, r.URL.Query().Get("all") != "true")
	if err != nil {
		h.writeError(ctx, w, "list badges", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"badges": out})
}

func (h *Handler) handleGetBadge(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	badgeID, ok := badgeIDParam(w, r)
	if !ok {
		return
	}
	b, err := h.reputation.GetBadge(ctx, badgeID)
	if err != nil {
		h.writeError(ctx, w, "get badge", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, b)
}

func (h *Handler) handleCreateBadge(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req models.BadgeRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.writeError(ctx, w, "create badge", err)
		return
	}
	b, err := h.reputation.CreateBadge(ctx, requestcontext.UserID(ctx), req)
	if err != nil {
		h.writeError(ctx, w, "create badge", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, b)
}

func (h *Handler) handleUpdateBadge(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	badgeID, ok := badgeIDParam(w, r)
	if !ok {
		return
	}
	var req models.BadgeRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.writeError(ctx, w, "update badge", err)
		return
	}
	b, err := h.reputation.UpdateBadge(ctx, requestcontext.UserID(ctx), badgeID, req)
	if err != nil {
		h.writeError(ctx, w, "update badge", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, b)
}

func (h *Handler) handleDeactivateBadge(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	badgeID, ok := badgeIDParam(w, r)
	if !ok {
		return
	}
	b, err := h.reputation.DeactivateBadge(ctx, requestcontext.UserID(ctx), badgeID)
	if err != nil {
		h.writeError(ctx, w, "deactivate badge", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, b)
}

func (h *Handler) handleAward(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req models.AwardRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.writeError(ctx, w, "award badge", err)
		return
	}
	userID, badgeID, caseID, err := req.Parse()
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	a, err := h.reputation.AwardManually(ctx, requestcontext.UserID(ctx), userID, badgeID, req.Reason, caseID)
	if err != nil {
		h.writeError(ctx, w, "award badge", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, a)
}

func (h *Handler) handleRevoke(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	awardID, err := id.ParseBadgeAwardID(chi.URLParam(r, "awardID"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid badge award id"))
		return
	}
	if err := h.reputation.Revoke(ctx, awardID, requestcontext.UserID(ctx)); err != nil {
		h.writeError(ctx, w, "revoke badge", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleAwardsForUser(w http.ResponseWriter, r *http.Request) {
	h.handleAwardList(h.reputation.AwardsForUser)(w, r)
}

func (h *Handler) handleAwardsGiven(w http.ResponseWriter, r *http.Request) {
	h.handleAwardList(h.reputation.AwardsByAwarder)(w, r)
}

func (h *Handler) handleAwardList(list func(context.Context, id.UserID) ([]*models.BadgeAward, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		userID, ok := userIDParam(w, r)
		if !ok {
			return
		}
		out, err := list(ctx, userID)
		if err != nil {
			h.writeError(ctx, w, "list badge awards", err)
			return
		}
		httputil.WriteJSON(w, http.StatusOK, map[string]any{"badge_awards": out})
	}
}

func (h *Handler) handleProgress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}
	badgeID, ok := badgeIDParam(w, r)
	if !ok {
		return
	}
	p, err := h.reputation.Progress(ctx, userID, badgeID)
	if err != nil {
		h.writeError(ctx, w, "badge progress", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, p)
}

func (h *Handler) handleEligible(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}
	out, err := h.reputation.EligibleBadges(ctx, userID)
	if err != nil {
		h.writeError(ctx, w, "eligible badges", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"badges": out})
}

func (h *Handler) handleRate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ratedID, ok := userIDParam(w, r)
	if !ok {
		return
	}
	var req models.RateRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.writeError(ctx, w, "rate user", err)
		return
	}
	caseID, err := req.ParseCase()
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	rating, err := h.reputation.Rate(ctx, requestcontext.UserID(ctx), ratedID, req.Score, req.Comment, req.Category, caseID)
	if err != nil {
		h.writeError(ctx, w, "rate user", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, rating)
}

func (h *Handler) handleRatingsForUser(w http.ResponseWriter, r *http.Request) {
	h.handleRatingList(h.reputation.RatingsForUser)(w, r)
}

func (h *Handler) handleRatingsGiven(w http.ResponseWriter, r *http.Request) {
	h.handleRatingList(h.reputation.RatingsByRater)(w, r)
}

func (h *Handler) handleRatingStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}
	st, err := h.reputation.RatingStatistics(ctx, userID)
	if err != nil {
		h.writeError(ctx, w, "rating statistics", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, st)
}

func (h *Handler) handleRatingList(list func(context.Context, id.UserID) ([]*models.Rating, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		userID, ok := userIDParam(w, r)
		if !ok {
			return
		}
		out, err := list(ctx, userID)
		if err != nil {
			h.writeError(ctx, w, "list ratings", err)
			return
		}
		httputil.WriteJSON(w, http.StatusOK, map[string]any{"ratings": out})
	}
}

func (h *Handler) handleDeleteRating(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ratingID, err := id.ParseRatingID(chi.URLParam(r, "ratingID"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid rating id"))
		return
	}
	if err := h.reputation.DeleteRating(ctx, ratingID, requestcontext.UserID(ctx)); err != nil {
		h.writeError(ctx, w, "delete rating", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	n := defaultLeaderboardSize
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "limit must be a number"))
			return
		}
		n = parsed
	}
	out, err := h.reputation.TopSolvers(ctx, n)
	if err != nil {
		h.writeError(ctx, w, "leaderboard", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"entries": out})
}

func badgeIDParam(w http.ResponseWriter, r *http.Request) (id.BadgeID, bool) {
	badgeID, err := id.ParseBadgeID(chi.URLParam(r, "badgeID"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid badge id"))
		return id.BadgeID{}, false
	}
	return badgeID, true
}

func userIDParam(w http.ResponseWriter, r *http.Request) (id.UserID, bool) {
	userID, err := id.ParseUserID(chi.URLParam(r, "userID"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid user id"))
		return id.UserID{}, false
	}
	return userID, true
}

func (h *Handler) writeError(ctx context.Context, w http.ResponseWriter, op string, err error) {
	if dErrors.CodeOf(err) == dErrors.CodeInternal {
		h.logger.ErrorContext(ctx, "reputation request failed",
			"op", op,
			"error", err,
			"request_id", request.GetRequestID(ctx),
		)
	}
	httputil.WriteError(w, err)
}
