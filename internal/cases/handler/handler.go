package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"casebook/internal/cases/models"
	"casebook/internal/platform/metrics"
	platformmw "casebook/internal/platform/middleware"
	id "casebook/pkg/domain"
	dErrors "casebook/pkg/domain-errors"
	"casebook/pkg/platform/httputil"
	"casebook/pkg/platform/middleware/auth"
	"casebook/pkg/platform/middleware/request"
	"casebook/pkg/requestcontext"
)

// Service is the case registry as seen by HTTP.
type Service interface {
	Create(ctx context.Context, orgID id.UserID, req models.NewCaseRequest) (*models.CrimeCase, error)
	Get(ctx context.Context, caseID id.CaseID) (*models.CrimeCase, error)
	List(ctx context.Context, filter models.Filter) ([]*models.CrimeCase, error)
	ListSolvedWithoutBadge(ctx context.Context) ([]*models.CrimeCase, error)
	AuthorizeManager(ctx context.Context, caseID id.CaseID, requesterID id.UserID) error
	Solve(ctx context.Context, caseID id.CaseID, solverID id.UserID, solution, notes string) (*models.CrimeCase, error)
	Start(ctx context.Context, caseID id.CaseID) (*models.CrimeCase, error)
	Pause(ctx context.Context, caseID id.CaseID) (*models.CrimeCase, error)
	Close(ctx context.Context, caseID id.CaseID) (*models.CrimeCase, error)
	Reopen(ctx context.Context, caseID id.CaseID) (*models.CrimeCase, error)
	Delete(ctx context.Context, caseID id.CaseID, requesterID id.UserID) error
	AssignPrimarySolver(ctx context.Context, caseID id.CaseID, solverID id.UserID) (*models.CrimeCase, error)
	AddAssignedSolver(ctx context.Context, caseID id.CaseID, solverID id.UserID) (*models.CrimeCase, error)
	AwardCaseBadge(ctx context.Context, caseID id.CaseID, badgeName string) (*models.CrimeCase, error)
}

type Handler struct {
	cases        Service
	logger       *slog.Logger
	metrics      *metrics.Metrics
	jwtValidator auth.JWTValidator
}

func New(cases Service, logger *slog.Logger, m *metrics.Metrics, jwtValidator auth.JWTValidator) *Handler {
	return &Handler{
		cases:        cases,
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

		r.Post("/cases", h.handleCreate)
		r.Get("/cases", h.handleList)
		r.Get("/cases/awaiting-badge", h.handleAwaitingBadge)
		r.Get("/cases/{caseID}", h.handleGet)
		r.Delete("/cases/{caseID}", h.handleDelete)
		r.Post("/cases/{caseID}/solve", h.handleSolve)

		r.Post("/cases/{caseID}/start", h.managed(h.cases.Start))
		r.Post("/cases/{caseID}/pause", h.managed(h.cases.Pause))
		r.Post("/cases/{caseID}/close", h.managed(h.cases.Close))
		r.Post("/cases/{caseID}/reopen", h.managed(h.cases.Reopen))
		r.Post("/cases/{caseID}/primary-solver", h.handleAssign(h.cases.AssignPrimarySolver))
		r.Post("/cases/{caseID}/solvers", h.handleAssign(h.cases.AddAssignedSolver))
		r.Post("/cases/{caseID}/badge", h.handleAwardBadge)
	})
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req models.NewCaseRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.writeError(ctx, w, "create case", err)
		return
	}
	c, err := h.cases.Create(ctx, requestcontext.UserID(ctx), req)
	if err != nil {
		h.writeError(ctx, w, "create case", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, c)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	filter, err := models.ParseFilter(r.URL.Query())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	out, err := h.cases.List(r.Context(), filter)
	if err != nil {
		h.writeError(r.Context(), w, "list cases", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"cases": out})
}

func (h *Handler) handleAwaitingBadge(w http.ResponseWriter, r *http.Request) {
	out, err := h.cases.ListSolvedWithoutBadge(r.Context())
	if err != nil {
		h.writeError(r.Context(), w, "list cases awaiting badge", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"cases": out})
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	caseID, ok := caseIDParam(w, r)
	if !ok {
		return
	}
	c, err := h.cases.Get(r.Context(), caseID)
	if err != nil {
		h.writeError(r.Context(), w, "get case", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, c)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	caseID, ok := caseIDParam(w, r)
	if !ok {
		return
	}
	ctx := r.Context()
	if err := h.cases.Delete(ctx, caseID, requestcontext.UserID(ctx)); err != nil {
		h.writeError(ctx, w, "delete case", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	caseID, ok := caseIDParam(w, r)
	if !ok {
		return
	}
	ctx := r.Context()
	var req models.SolveRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.writeError(ctx, w, "solve case", err)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.WriteError(w, err)
		return
	}
	c, err := h.cases.Solve(ctx, caseID, requestcontext.UserID(ctx), req.Solution, req.Notes)
	if err != nil {
		h.writeError(ctx, w, "solve case", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, c)
}

// managed wraps a lifecycle transition behind the case-manager check.
func (h *Handler) managed(transition func(context.Context, id.CaseID) (*models.CrimeCase, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caseID, ok := caseIDParam(w, r)
		if !ok {
			return
		}
		ctx := r.Context()
		if err := h.cases.AuthorizeManager(ctx, caseID, requestcontext.UserID(ctx)); err != nil {
			h.writeError(ctx, w, "authorize case manager", err)
			return
		}
		c, err := transition(ctx, caseID)
		if err != nil {
			h.writeError(ctx, w, "case transition", err)
			return
		}
		httputil.WriteJSON(w, http.StatusOK, c)
	}
}

func (h *Handler) handleAssign(assign func(context.Context, id.CaseID, id.UserID) (*models.CrimeCase, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caseID, ok := caseIDParam(w, r)
		if !ok {
			return
		}
		ctx := r.Context()
		var req models.AssignSolverRequest
		if err := httputil.DecodeJSON(r, &req); err != nil {
			h.writeError(ctx, w, "assign solver", err)
			return
		}
		solverID, err := req.Parse()
		if err != nil {
			httputil.WriteError(w, err)
			return
		}
		if err := h.cases.AuthorizeManager(ctx, caseID, requestcontext.UserID(ctx)); err != nil {
			h.writeError(ctx, w, "authorize case manager", err)
			return
		}
		c, err := assign(ctx, caseID, solverID)
		if err != nil {
			h.writeError(ctx, w, "assign solver", err)
			return
		}
		httputil.WriteJSON(w, http.StatusOK, c)
	}
}

func (h *Handler) handleAwardBadge(w http.ResponseWriter, r *http.Request) {
	caseID, ok := caseIDParam(w, r)
	if !ok {
		return
	}
	ctx := r.Context()
	var req models.CaseBadgeRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.writeError(ctx, w, "award case badge", err)
		return
	}
	if err := h.cases.AuthorizeManager(ctx, caseID, requestcontext.UserID(ctx)); err != nil {
		h.writeError(ctx, w, "authorize case manager", err)
		return
	}
	c, err := h.cases.AwardCaseBadge(ctx, caseID, req.BadgeName)
	if err != nil {
		h.writeError(ctx, w, "award case badge", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, c)
}

func caseIDParam(w http.ResponseWriter, r *http.Request) (id.CaseID, bool) {
	caseID, err := id.ParseCaseID(chi.URLParam(r, "caseID"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid case id"))
		return id.CaseID{}, false
	}
	return caseID, true
}

func (h *Handler) writeError(ctx context.Context, w http.ResponseWriter, op string, err error) {
	if dErrors.CodeOf(err) == dErrors.CodeInternal {
		h.logger.ErrorContext(ctx, "case request failed",
			"op", op,
			"error", err,
			"request_id", request.GetRequestID(ctx),
		)
	}
	httputil.WriteError(w, err)
}
