package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"casebook/internal/hiring/models"
	"casebook/internal/platform/metrics"
	platformmw "casebook/internal/platform/middleware"
	id "casebook/pkg/domain"
	dErrors "casebook/pkg/domain-errors"
	"casebook/pkg/platform/httputil"
	"casebook/pkg/platform/middleware/auth"
	"casebook/pkg/platform/middleware/request"
	"casebook/pkg/requestcontext"
)

// Service is hiring negotiation as seen by HTTP.
type Service interface {
	Create(ctx context.Context, orgID, investigatorID id.UserID, caseID id.CaseID, terms models.Terms) (*models.HiringRequest, error)
	Accept(ctx context.Context, requestID id.HiringRequestID, response string) (*models.HiringRequest, error)
	Reject(ctx context.Context, requestID id.HiringRequestID, response string) (*models.HiringRequest, error)
	Start(ctx context.Context, requestID id.HiringRequestID) (*models.HiringRequest, error)
	Complete(ctx context.Context, requestID id.HiringRequestID) (*models.HiringRequest, error)
	Cancel(ctx context.Context, requestID id.HiringRequestID, requesterID id.UserID) (*models.HiringRequest, error)
	AuthorizeInvestigator(ctx context.Context, requestID id.HiringRequestID, actorID id.UserID) error
	AuthorizeParty(ctx context.Context, requestID id.HiringRequestID, actorID id.UserID) error
	Get(ctx context.Context, requestID id.HiringRequestID) (*models.HiringRequest, error)
	ListByOrganization(ctx context.Context, orgID id.UserID) ([]*models.HiringRequest, error)
	ListByInvestigator(ctx context.Context, investigatorID id.UserID) ([]*models.HiringRequest, error)
	ListByCase(ctx context.Context, caseID id.CaseID) ([]*models.HiringRequest, error)
	PendingForInvestigator(ctx context.Context, investigatorID id.UserID) ([]*models.HiringRequest, error)
	ActiveContracts(ctx context.Context, userID id.UserID) ([]*models.HiringRequest, error)
	CompletedContracts(ctx context.Context, userID id.UserID) ([]*models.HiringRequest, error)
	SuccessRate(ctx context.Context, userID id.UserID) (float64, error)
}

// JobBoardService is the recruiter job board as seen by HTTP. Authorization
// happens inside each call from the acting user's ID.
type JobBoardService interface {
	CreatePost(ctx context.Context, recruiterID id.UserID, details models.PostDetails) (*models.JobPost, error)
	ClosePost(ctx context.Context, postID id.JobPostID, actorID id.UserID) (*models.JobPost, error)
	DeletePost(ctx context.Context, postID id.JobPostID, actorID id.UserID) error
	GetPost(ctx context.Context, postID id.JobPostID) (*models.JobPost, error)
	ListPosts(ctx context.Context, filter models.PostFilter) ([]*models.JobPost, error)
	Apply(ctx context.Context, postID id.JobPostID, applicantID id.UserID, coverLetter string) (*models.Application, error)
	ApplicationsForPost(ctx context.Context, postID id.JobPostID, actorID id.UserID) ([]*models.Application, error)
	ApplicationsByApplicant(ctx context.Context, applicantID id.UserID) ([]*models.Application, error)
	AcceptApplication(ctx context.Context, applicationID id.ApplicationID, actorID id.UserID) (*models.Application, error)
	RejectApplication(ctx context.Context, applicationID id.ApplicationID, actorID id.UserID) (*models.Application, error)
	WithdrawApplication(ctx context.Context, applicationID id.ApplicationID, actorID id.UserID) (*models.Application, error)
}

type Handler struct {
	hiring       Service
	logger       *slog.Logger
	metrics      *metrics.Metrics
	jwtValidator auth.JWTValidator
}

func New(hiring Service, logger *slog.Logger, m *metrics.Metrics, jwtValidator auth.JWTValidator) *Handler {
	return &Handler{
		hiring:       hiring,
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

		r.Post("/hiring-requests", h.handleCreate)
		r.Get("/hiring-requests/{requestID}", h.handleGet)
		r.Post("/hiring-requests/{requestID}/accept", h.handleRespond(h.hiring.Accept))
		r.Post("/hiring-requests/{requestID}/reject", h.handleRespond(h.hiring.Reject))
		r.Post("/hiring-requests/{requestID}/start", h.handleStart)
		r.Post("/hiring-requests/{requestID}/complete", h.handleComplete)
		r.Post("/hiring-requests/{requestID}/cancel", h.handleCancel)
		r.Get("/cases/{caseID}/hiring-requests", h.handleListByCase)
		r.Get("/organizations/{userID}/hiring-requests", h.handleListForUser(h.hiring.ListByOrganization))
		r.Get("/investigators/{userID}/hiring-requests", h.handleListForInvestigator)
		r.Get("/users/{userID}/contracts", h.handleContracts)
		r.Get("/users/{userID}/hiring-success-rate", h.handleSuccessRate)
	})
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req models.CreateRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.writeError(ctx, w, "create hiring request", err)
		return
	}
	investigatorID, err := id.ParseUserID(req.InvestigatorID)
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "investigator_id is invalid"))
		return
	}
	caseID, err := id.ParseCaseID(req.CaseID)
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "case_id is invalid"))
		return
	}
	created, err := h.hiring.Create(ctx, requestcontext.UserID(ctx), investigatorID, caseID, req.Terms)
	if err != nil {
		h.writeError(ctx, w, "create hiring request", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID, ok := requestIDParam(w, r)
	if !ok {
		return
	}
	if err := h.hiring.AuthorizeParty(ctx, requestID, requestcontext.UserID(ctx)); err != nil {
		h.writeError(ctx, w, "authorize party", err)
		return
	}
	got, err := h.hiring.Get(ctx, requestID)
	if err != nil {
		h.writeError(ctx, w, "get hiring request", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, got)
}

// handleRespond serves accept and reject; only the invited investigator may
// respond.
func (h *Handler) handleRespond(respond func(context.Context, id.HiringRequestID, string) (*models.HiringRequest, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		requestID, ok := requestIDParam(w, r)
		if !ok {
			return
		}
		var req models.RespondRequest
		if r.ContentLength != 0 {
			if err := httputil.DecodeJSON(r, &req); err != nil {
				h.writeError(ctx, w, "respond to hiring request", err)
				return
			}
		}
		if err := h.hiring.AuthorizeInvestigator(ctx, requestID, requestcontext.UserID(ctx)); err != nil {
			h.writeError(ctx, w, "authorize investigator", err)
			return
		}
		updated, err := respond(ctx, requestID, req.Response)
		if err != nil {
			h.writeError(ctx, w, "respond to hiring request", err)
			return
		}
		httputil.WriteJSON(w, http.StatusOK, updated)
	}
}

func (h *Handler) handleStart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID, ok := requestIDParam(w, r)
	if !ok {
		return
	}
	if err := h.hiring.AuthorizeInvestigator(ctx, requestID, requestcontext.UserID(ctx)); err != nil {
		h.writeError(ctx, w, "authorize investigator", err)
		return
	}
	updated, err := h.hiring.Start(ctx, requestID)
	if err != nil {
		h.writeError(ctx, w, "start hiring request", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, updated)
}

func (h *Handler) handleComplete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID, ok := requestIDParam(w, r)
	if !ok {
		return
	}
	if err := h.hiring.AuthorizeParty(ctx, requestID, requestcontext.UserID(ctx)); err != nil {
		h.writeError(ctx, w, "authorize party", err)
		return
	}
	updated, err := h.hiring.Complete(ctx, requestID)
	if err != nil {
		h.writeError(ctx, w, "complete hiring request", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, updated)
}

func (h *Handler) handleCancel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID, ok := requestIDParam(w, r)
	if !ok {
		return
	}
	updated, err := h.hiring.Cancel(ctx, requestID, requestcontext.UserID(ctx))
	if err != nil {
		h.writeError(ctx, w, "cancel hiring request", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, updated)
}

func (h *Handler) handleListByCase(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caseID, err := id.ParseCaseID(chi.URLParam(r, "caseID"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid case id"))
		return
	}
	out, err := h.hiring.ListByCase(ctx, caseID)
	if err != nil {
		h.writeError(ctx, w, "list hiring requests", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"hiring_requests": out})
}

func (h *Handler) handleListForUser(list func(context.Context, id.UserID) ([]*models.HiringRequest, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		userID, ok := userIDParam(w, r)
		if !ok {
			return
		}
		out, err := list(ctx, userID)
		if err != nil {
			h.writeError(ctx, w, "list hiring requests", err)
			return
		}
		httputil.WriteJSON(w, http.StatusOK, map[string]any{"hiring_requests": out})
	}
}

func (h *Handler) handleListForInvestigator(w http.ResponseWriter, r *http.Request) {
	list := h.hiring.ListByInvestigator
	if r.URL.Query().Get("status") == "pending" {
		list = h.hiring.PendingForInvestigator
	}
	h.handleListForUser(list)(w, r)
}

// handleContracts lists active contracts, or completed ones with
// ?state=completed.
func (h *Handler) handleContracts(w http.ResponseWriter, r *http.Request) {
	list := h.hiring.ActiveContracts
	switch r.URL.Query().Get("state") {
	case "", "active":
	case "completed":
		list = h.hiring.CompletedContracts
	default:
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "state must be active or completed"))
		return
	}
	h.handleListForUser(list)(w, r)
}

func (h *Handler) handleSuccessRate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}
	rate, err := h.hiring.SuccessRate(ctx, userID)
	if err != nil {
		h.writeError(ctx, w, "hiring success rate", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"user_id": userID, "success_rate": rate})
}

func requestIDParam(w http.ResponseWriter, r *http.Request) (id.HiringRequestID, bool) {
	requestID, err := id.ParseHiringRequestID(chi.URLParam(r, "requestID"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid hiring request id"))
		return id.HiringRequestID{}, false
	}
	return requestID, true
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
		h.logger.ErrorContext(ctx, "hiring request failed",
			"op", op,
			"error", err,
			"request_id", request.GetRequestID(ctx),
		)
	}
	httputil.WriteError(w, err)
}
