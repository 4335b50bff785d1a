package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"casebook/internal/participation/models"
	"casebook/internal/platform/metrics"
	platformmw "casebook/internal/platform/middleware"
	id "casebook/pkg/domain"
	dErrors "casebook/pkg/domain-errors"
	"casebook/pkg/platform/httputil"
	"casebook/pkg/platform/middleware/auth"
	"casebook/pkg/platform/middleware/request"
	"casebook/pkg/requestcontext"
)

// Service is the participation ledger as seen by HTTP.
type Service interface {
	Join(ctx context.Context, userID id.UserID, caseID id.CaseID, role models.Role) (*models.Participation, error)
	Leave(ctx context.Context, userID id.UserID, caseID id.CaseID) (*models.Participation, error)
	Suspend(ctx context.Context, userID id.UserID, caseID id.CaseID) (*models.Participation, error)
	Complete(ctx context.Context, userID id.UserID, caseID id.CaseID) (*models.Participation, error)
	ChangeRole(ctx context.Context, userID id.UserID, caseID id.CaseID, newRole models.Role) (*models.Participation, error)
	Touch(ctx context.Context, userID id.UserID, caseID id.CaseID) error
	AuthorizeModerator(ctx context.Context, caseID id.CaseID, requesterID id.UserID) error
	ListByCase(ctx context.Context, caseID id.CaseID) ([]*models.Participation, error)
	ActiveParticipants(ctx context.Context, caseID id.CaseID) ([]*models.Participation, error)
	ListByUser(ctx context.Context, userID id.UserID) ([]*models.Participation, error)
	ActiveCases(ctx context.Context, userID id.UserID) ([]*models.Participation, error)
}

type Handler struct {
	participation Service
	logger        *slog.Logger
	metrics       *metrics.Metrics
	jwtValidator  auth.JWTValidator
}

func New(participation Service, logger *slog.Logger, m *metrics.Metrics, jwtValidator auth.JWTValidator) *Handler {
	return &Handler{
		participation: participation,
		logger:        logger,
		metrics:       m,
		jwtValidator:  jwtValidator,
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

		r.Post("/cases/{caseID}/participants", h.handleJoin)
		r.Get("/cases/{caseID}/participants", h.handleListByCase)
		r.Delete("/cases/{caseID}/participants/me", h.handleLeave)
		r.Post("/cases/{caseID}/participants/me/activity", h.handleTouch)
		r.Post("/cases/{caseID}/participants/{userID}/suspend", h.moderated(h.participation.Suspend))
		r.Post("/cases/{caseID}/participants/{userID}/complete", h.moderated(h.participation.Complete))
		r.Put("/cases/{caseID}/participants/{userID}/role", h.handleChangeRole)
		r.Get("/users/{userID}/participations", h.handleListByUser)
	})
}

func (h *Handler) handleJoin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caseID, ok := caseIDParam(w, r)
	if !ok {
		return
	}
	var req models.JoinRequest
	if r.ContentLength != 0 {
		if err := httputil.DecodeJSON(r, &req); err != nil {
			h.writeError(ctx, w, "join case", err)
			return
		}
	}
	role, err := models.ParseRole(req.Role)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	p, err := h.participation.Join(ctx, requestcontext.UserID(ctx), caseID, role)
	if err != nil {
		h.writeError(ctx, w, "join case", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, p)
}

func (h *Handler) handleLeave(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caseID, ok := caseIDParam(w, r)
	if !ok {
		return
	}
	p, err := h.participation.Leave(ctx, requestcontext.UserID(ctx), caseID)
	if err != nil {
		h.writeError(ctx, w, "leave case", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, p)
}

func (h *Handler) handleTouch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caseID, ok := caseIDParam(w, r)
	if !ok {
		return
	}
	if err := h.participation.Touch(ctx, requestcontext.UserID(ctx), caseID); err != nil {
		h.writeError(ctx, w, "record activity", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// moderated wraps a status change applied to another participant behind the
// moderator check.
func (h *Handler) moderated(apply func(context.Context, id.UserID, id.CaseID) (*models.Participation, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		caseID, userID, ok := pairParams(w, r)
		if !ok {
			return
		}
		if err := h.participation.AuthorizeModerator(ctx, caseID, requestcontext.UserID(ctx)); err != nil {
			h.writeError(ctx, w, "authorize moderator", err)
			return
		}
		p, err := apply(ctx, userID, caseID)
		if err != nil {
			h.writeError(ctx, w, "participation transition", err)
			return
		}
		httputil.WriteJSON(w, http.StatusOK, p)
	}
}

func (h *Handler) handleChangeRole(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caseID, userID, ok := pairParams(w, r)
	if !ok {
		return
	}
	var req models.ChangeRoleRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.writeError(ctx, w, "change role", err)
		return
	}
	role, err := models.ParseRole(req.Role)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := h.participation.AuthorizeModerator(ctx, caseID, requestcontext.UserID(ctx)); err != nil {
		h.writeError(ctx, w, "authorize moderator", err)
		return
	}
	p, err := h.participation.ChangeRole(ctx, userID, caseID, role)
	if err != nil {
		h.writeError(ctx, w, "change role", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, p)
}

func (h *Handler) handleListByCase(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caseID, ok := caseIDParam(w, r)
	if !ok {
		return
	}
	list := h.participation.ListByCase
	if activeOnly(r) {
		list = h.participation.ActiveParticipants
	}
	out, err := list(ctx, caseID)
	if err != nil {
		h.writeError(ctx, w, "list participants", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"participations": out})
}

func (h *Handler) handleListByUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, err := id.ParseUserID(chi.URLParam(r, "userID"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid user id"))
		return
	}
	list := h.participation.ListByUser
	if activeOnly(r) {
		list = h.participation.ActiveCases
	}
	out, err := list(ctx, userID)
	if err != nil {
		h.writeError(ctx, w, "list participations", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"participations": out})
}

func activeOnly(r *http.Request) bool {
	active, _ := strconv.ParseBool(r.URL.Query().Get("active"))
	return active
}

func caseIDParam(w http.ResponseWriter, r *http.Request) (id.CaseID, bool) {
	caseID, err := id.ParseCaseID(chi.URLParam(r, "caseID"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid case id"))
		return id.CaseID{}, false
	}
	return caseID, true
}

func pairParams(w http.ResponseWriter, r *http.Request) (id.CaseID, id.UserID, bool) {
	caseID, ok := caseIDParam(w, r)
	if !ok {
		return id.CaseID{}, id.UserID{}, false
	}
	userID, err := id.ParseUserID(chi.URLParam(r, "userID"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid user id"))
		return id.CaseID{}, id.UserID{}, false
	}
	return caseID, userID, true
}

func (h *Handler) writeError(ctx context.Context, w http.ResponseWriter, op string, err error) {
	if dErrors.CodeOf(err) == dErrors.CodeInternal {
		h.logger.ErrorContext(ctx, "participation request failed",
			"op", op,
			"error", err,
			"request_id", request.GetRequestID(ctx),
		)
	}
	httputil.WriteError(w, err)
}
