package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
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

// JobBoardHandler serves /job-posts and /applications.
type JobBoardHandler struct {
	board        JobBoardService
	logger       *slog.Logger
	metrics      *metrics.Metrics
	jwtValidator auth.JWTValidator
}

func NewJobBoard(board JobBoardService, logger *slog.Logger, m *metrics.Metrics, jwtValidator auth.JWTValidator) *JobBoardHandler {
	return &JobBoardHandler{
		board:        board,
		logger:       logger,
		metrics:      m,
		jwtValidator: jwtValidator,
	}
}

func (h *JobBoardHandler) Register(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(request.Recovery(h.logger))
		r.Use(request.RequestID)
		r.Use(request.Logger(h.logger))
		r.Use(request.Timeout(30 * time.Second))
		r.Use(request.ContentTypeJSON)
		r.Use(platformmw.Latency(h.metrics))
		r.Use(auth.RequireAuth(h.jwtValidator, h.logger))

		r.Post("/job-posts", h.handleCreatePost)
		r.Get("/job-posts", h.handleListPosts)
		r.Get("/job-posts/{postID}", h.handleGetPost)
		r.Post("/job-posts/{postID}/close", h.handleClosePost)
		r.Delete("/job-posts/{postID}", h.handleDeletePost)
		r.Post("/job-posts/{postID}/applications", h.handleApply)
		r.Get("/job-posts/{postID}/applications", h.handleListForPost)
		r.Get("/applications", h.handleListMine)
		r.Post("/applications/{applicationID}/accept", h.handleDecide(h.board.AcceptApplication))
		r.Post("/applications/{applicationID}/reject", h.handleDecide(h.board.RejectApplication))
		r.Post("/applications/{applicationID}/withdraw", h.handleDecide(h.board.WithdrawApplication))
	})
}

func (h *JobBoardHandler) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req models.PostDetails
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.writeError(ctx, w, "create job post", err)
		return
	}
	created, err := h.board.CreatePost(ctx, requestcontext.UserID(ctx), req)
	if err != nil {
		h.writeError(ctx, w, "create job post", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, created)
}

// handleListPosts filters on ?status, ?case_type, ?location and
// ?recruiter_id.
func (h *JobBoardHandler) handleListPosts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()
	filter := models.PostFilter{
		CaseType: q.Get("case_type"),
		Location: q.Get("location"),
	}
	switch status := models.PostStatus(strings.ToUpper(q.Get("status"))); status {
	case "", models.PostOpen, models.PostClosed:
		filter.Status = status
	default:
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "status must be OPEN or CLOSED"))
		return
	}
	if raw := q.Get("recruiter_id"); raw != "" {
		recruiterID, err := id.ParseUserID(raw)
		if err != nil {
			httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid recruiter id"))
			return
		}
		filter.RecruiterID = &recruiterID
	}
	out, err := h.board.ListPosts(ctx, filter)
	if err != nil {
		h.writeError(ctx, w, "list job posts", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"job_posts": out})
}

func (h *JobBoardHandler) handleGetPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	postID, ok := postIDParam(w, r)
	if !ok {
		return
	}
	got, err := h.board.GetPost(ctx, postID)
	if err != nil {
		h.writeError(ctx, w, "get job post", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, got)
}

func (h *JobBoardHandler) handleClosePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	postID, ok := postIDParam(w, r)
	if !ok {
		return
	}
	closed, err := h.board.ClosePost(ctx, postID, requestcontext.UserID(ctx))
	if err != nil {
		h.writeError(ctx, w, "close job post", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, closed)
}

func (h *JobBoardHandler) handleDeletePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	postID, ok := postIDParam(w, r)
	if !ok {
		return
	}
	if err := h.board.DeletePost(ctx, postID, requestcontext.UserID(ctx)); err != nil {
		h.writeError(ctx, w, "delete job post", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *JobBoardHandler) handleApply(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	postID, ok := postIDParam(w, r)
	if !ok {
		return
	}
	var req models.ApplyRequest
	if r.ContentLength != 0 {
		if err := httputil.DecodeJSON(r, &req); err != nil {
			h.writeError(ctx, w, "apply to job post", err)
			return
		}
	}
	created, err := h.board.Apply(ctx, postID, requestcontext.UserID(ctx), req.CoverLetter)
	if err != nil {
		h.writeError(ctx, w, "apply to job post", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, created)
}

func (h *JobBoardHandler) handleListForPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	postID, ok := postIDParam(w, r)
	if !ok {
		return
	}
	out, err := h.board.ApplicationsForPost(ctx, postID, requestcontext.UserID(ctx))
	if err != nil {
		h.writeError(ctx, w, "list applications", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"applications": out})
}

func (h *JobBoardHandler) handleListMine(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	out, err := h.board.ApplicationsByApplicant(ctx, requestcontext.UserID(ctx))
	if err != nil {
		h.writeError(ctx, w, "list applications", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"applications": out})
}

func (h *JobBoardHandler) handleDecide(decide func(context.Context, id.ApplicationID, id.UserID) (*models.Application, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		applicationID, err := id.ParseApplicationID(chi.URLParam(r, "applicationID"))
		if err != nil {
			httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid application id"))
			return
		}
		updated, err := decide(ctx, applicationID, requestcontext.UserID(ctx))
		if err != nil {
			h.writeError(ctx, w, "update application", err)
			return
		}
		httputil.WriteJSON(w, http.StatusOK, updated)
	}
}

func postIDParam(w http.ResponseWriter, r *http.Request) (id.JobPostID, bool) {
	postID, err := id.ParseJobPostID(chi.URLParam(r, "postID"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid job post id"))
		return id.JobPostID{}, false
	}
	return postID, true
}

func (h *JobBoardHandler) writeError(ctx context.Context, w http.ResponseWriter, op string, err error) {
	if dErrors.CodeOf(err) == dErrors.CodeInternal {
		h.logger.ErrorContext(ctx, "job board request failed",
			"op", op,
			"error", err,
			"request_id", request.GetRequestID(ctx),
		)
	}
	httputil.WriteError(w, err)
}
