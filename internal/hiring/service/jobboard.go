package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"casebook/internal/hiring/models"
	"casebook/internal/platform/tracing"
	"casebook/internal/policy"
	id "casebook/pkg/domain"
	dErrors "casebook/pkg/domain-errors"
	"casebook/pkg/platform/outbox"
	"casebook/pkg/platform/sentinel"
	"casebook/pkg/requestcontext"
)

// JobBoard runs recruiter job posts and solver applications. It shares the
// negotiation service's user lookup, outbox, logger and metrics.
type JobBoard struct {
	base         *Service
	posts        PostStore
	applications ApplicationStore
}

func NewJobBoard(posts PostStore, applications ApplicationStore, users UserStore, tx StoreTx, opts ...Option) *JobBoard {
	return &JobBoard{
		base:         New(nil, nil, users, tx, opts...),
		posts:        posts,
		applications: applications,
	}
}

// CreatePost opens a job post. Only recruiters post.
func (b *JobBoard) CreatePost(ctx context.Context, recruiterID id.UserID, details models.PostDetails) (_ *models.JobPost, err error) {
	ctx, span := tracer.Start(ctx, "hiring.CreatePost", trace.WithAttributes(
		attribute.String("recruiter_id", recruiterID.String()),
	))
	defer tracing.End(span, &err)

	var created *models.JobPost
	err = b.base.tx.RunInTx(ctx, func(txCtx context.Context) error {
		recruiter, err := b.base.loadUser(txCtx, recruiterID)
		if err != nil {
			return err
		}
		if !policy.CanPostJob(recruiter) {
			return dErrors.New(dErrors.CodeForbidden, "only recruiters can post jobs")
		}
		p, err := models.NewJobPost(id.JobPostID(uuid.New()), recruiterID, details, requestcontext.Now(txCtx))
		if err != nil {
			return err
		}
		if err := b.posts.Create(txCtx, p); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to create job post")
		}
		created = p
		return b.emitPost(txCtx, p)
	})
	if err != nil {
		return nil, err
	}

	b.base.logAudit(ctx, "job_post_created",
		"job_post_id", created.ID.String(),
		"recruiter_id", recruiterID.String(),
	)
	b.base.incrementJobBoard("post_created")
	return created, nil
}

// ClosePost stops a post from taking applications. The recruiter who posted
// it or an admin may close it.
func (b *JobBoard) ClosePost(ctx context.Context, postID id.JobPostID, actorID id.UserID) (_ *models.JobPost, err error) {
	ctx, span := tracer.Start(ctx, "hiring.ClosePost", trace.WithAttributes(
		attribute.String("job_post_id", postID.String()),
	))
	defer tracing.End(span, &err)

	var closed *models.JobPost
	err = b.base.tx.RunInTx(ctx, func(txCtx context.Context) error {
		actor, err := b.base.loadUser(txCtx, actorID)
		if err != nil {
			return err
		}
		p, err := b.posts.Execute(txCtx, postID,
			func(p *models.JobPost) error {
				if !policy.CanManageJobPost(actor, p.RecruiterID) {
					return dErrors.New(dErrors.CodeForbidden, "only the posting recruiter can close this post")
				}
				return p.CanClose()
			},
			func(p *models.JobPost) { p.ApplyClose(requestcontext.Now(txCtx)) })
		if err != nil {
			return translatePostErr(err, "failed to close job post")
		}
		closed = p
		return b.emitPost(txCtx, p)
	})
	if err != nil {
		return nil, err
	}

	b.base.logAudit(ctx, "job_post_closed", "job_post_id", postID.String(), "actor_id", actorID.String())
	b.base.incrementJobBoard("post_closed")
	return closed, nil
}

// DeletePost removes a post and its applications.
func (b *JobBoard) DeletePost(ctx context.Context, postID id.JobPostID, actorID id.UserID) (err error) {
	ctx, span := tracer.Start(ctx, "hiring.DeletePost", trace.WithAttributes(
		attribute.String("job_post_id", postID.String()),
	))
	defer tracing.End(span, &err)

	err = b.base.tx.RunInTx(ctx, func(txCtx context.Context) error {
		actor, err := b.base.loadUser(txCtx, actorID)
		if err != nil {
			return err
		}
		p, err := b.posts.FindByID(txCtx, postID)
		if err != nil {
			return translatePostErr(err, "failed to load job post")
		}
		if !policy.CanManageJobPost(actor, p.RecruiterID) {
			return dErrors.New(dErrors.CodeForbidden, "only the posting recruiter can delete this post")
		}
		if err := b.applications.DeleteByPost(txCtx, postID); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete applications")
		}
		if err := b.posts.Delete(txCtx, postID); err != nil {
			return translatePostErr(err, "failed to delete job post")
		}
		payload := map[string]any{"job_post_id": postID.String(), "deleted": true}
		if err := outbox.Emit(txCtx, b.base.events, outbox.EventJobPostChanged, "job_post", postID.String(), payload); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to record job post event")
		}
		return nil
	})
	if err != nil {
		return err
	}

	b.base.logAudit(ctx, "job_post_deleted", "job_post_id", postID.String(), "actor_id", actorID.String())
	b.base.incrementJobBoard("post_deleted")
	return nil
}

func (b *JobBoard) GetPost(ctx context.Context, postID id.JobPostID) (*models.JobPost, error) {
	p, err := b.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, translatePostErr(err, "failed to load job post")
	}
	return p, nil
}

func (b *JobBoard) ListPosts(ctx context.Context, filter models.PostFilter) ([]*models.JobPost, error) {
	out, err := b.posts.List(ctx, filter)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list job posts")
	}
	return out, nil
}

// Apply records a solver's application to an OPEN post, once per post.
func (b *JobBoard) Apply(ctx context.Context, postID id.JobPostID, applicantID id.UserID, coverLetter string) (_ *models.Application, err error) {
	ctx, span := tracer.Start(ctx, "hiring.Apply", trace.WithAttributes(
		attribute.String("job_post_id", postID.String()),
		attribute.String("applicant_id", applicantID.String()),
	))
	defer tracing.End(span, &err)

	var created *models.Application
	err = b.base.tx.RunInTx(ctx, func(txCtx context.Context) error {
		applicant, err := b.base.loadUser(txCtx, applicantID)
		if err != nil {
			return err
		}
		if !policy.CanApplyToJob(applicant) {
			return dErrors.New(dErrors.CodeForbidden, "only solvers can apply to job posts")
		}
		p, err := b.posts.FindByID(txCtx, postID)
		if err != nil {
			return translatePostErr(err, "failed to load job post")
		}
		if p.Status != models.PostOpen {
			return dErrors.New(dErrors.CodeInvalidState, "job post is closed")
		}
		a, err := models.NewApplication(id.ApplicationID(uuid.New()), postID, applicantID, coverLetter, requestcontext.Now(txCtx))
		if err != nil {
			return err
		}
		if err := b.applications.Create(txCtx, a); err != nil {
			if errors.Is(err, sentinel.ErrAlreadyUsed) {
				return dErrors.New(dErrors.CodeConflict, "already applied to this job post")
			}
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to create application")
		}
		created = a
		return b.emitApplication(txCtx, a)
	})
	if err != nil {
		return nil, err
	}

	b.base.logAudit(ctx, "job_application_submitted",
		"application_id", created.ID.String(),
		"job_post_id", postID.String(),
		"applicant_id", applicantID.String(),
	)
	b.base.incrementJobBoard("applied")
	return created, nil
}

// ApplicationsForPost lists a post's applications for its recruiter.
func (b *JobBoard) ApplicationsForPost(ctx context.Context, postID id.JobPostID, actorID id.UserID) ([]*models.Application, error) {
	p, err := b.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if p.RecruiterID != actorID {
		return nil, dErrors.New(dErrors.CodeForbidden, "only the posting recruiter can view applications")
	}
	out, err := b.applications.ListByPost(ctx, postID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list applications")
	}
	return out, nil
}

func (b *JobBoard) ApplicationsByApplicant(ctx context.Context, applicantID id.UserID) ([]*models.Application, error) {
	out, err := b.applications.ListByApplicant(ctx, applicantID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list applications")
	}
	return out, nil
}

// AcceptApplication and RejectApplication are the post recruiter's answers.
func (b *JobBoard) AcceptApplication(ctx context.Context, applicationID id.ApplicationID, actorID id.UserID) (*models.Application, error) {
	return b.decide(ctx, "hiring.AcceptApplication", applicationID, actorID, models.ApplicationAccepted)
}

func (b *JobBoard) RejectApplication(ctx context.Context, applicationID id.ApplicationID, actorID id.UserID) (*models.Application, error) {
	return b.decide(ctx, "hiring.RejectApplication", applicationID, actorID, models.ApplicationRejected)
}

// WithdrawApplication is the applicant's own retraction.
func (b *JobBoard) WithdrawApplication(ctx context.Context, applicationID id.ApplicationID, actorID id.UserID) (*models.Application, error) {
	return b.decide(ctx, "hiring.WithdrawApplication", applicationID, actorID, models.ApplicationWithdrawn)
}

func (b *JobBoard) decide(ctx context.Context, op string, applicationID id.ApplicationID, actorID id.UserID, target models.ApplicationStatus) (_ *models.Application, err error) {
	ctx, span := tracer.Start(ctx, op, trace.WithAttributes(
		attribute.String("application_id", applicationID.String()),
		attribute.String("status", string(target)),
	))
	defer tracing.End(span, &err)

	var updated *models.Application
	err = b.base.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := b.applications.FindByID(txCtx, applicationID)
		if err != nil {
			return translateApplicationErr(err, "failed to load application")
		}
		if target == models.ApplicationWithdrawn {
			if current.ApplicantID != actorID {
				return dErrors.New(dErrors.CodeForbidden, "only the applicant can withdraw")
			}
		} else {
			p, err := b.posts.FindByID(txCtx, current.PostID)
			if err != nil {
				return translatePostErr(err, "failed to load job post")
			}
			if p.RecruiterID != actorID {
				return dErrors.New(dErrors.CodeForbidden, "only the posting recruiter can decide applications")
			}
		}
		a, err := b.applications.Execute(txCtx, applicationID,
			func(a *models.Application) error { return a.CanDecide(verbFor(target)) },
			func(a *models.Application) { a.ApplyStatus(target, requestcontext.Now(txCtx)) })
		if err != nil {
			return translateApplicationErr(err, "failed to update application")
		}
		updated = a
		return b.emitApplication(txCtx, a)
	})
	if err != nil {
		return nil, err
	}

	b.base.logAudit(ctx, "job_application_changed",
		"application_id", applicationID.String(),
		"status", string(updated.Status),
		"actor_id", actorID.String(),
	)
	b.base.incrementJobBoard("application_" + verbFor(target))
	return updated, nil
}

func verbFor(status models.ApplicationStatus) string {
	switch status {
	case models.ApplicationAccepted:
		return "accept"
	case models.ApplicationRejected:
		return "reject"
	default:
		return "withdraw"
	}
}

func translatePostErr(err error, msg string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, "job post not found")
	}
	if dErrors.IsDomain(err) {
		return err
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, msg)
}

func translateApplicationErr(err error, msg string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, "application not found")
	}
	if dErrors.IsDomain(err) {
		return err
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, msg)
}

func (b *JobBoard) emitPost(ctx context.Context, p *models.JobPost) error {
	payload := map[string]any{
		"job_post_id":  p.ID.String(),
		"recruiter_id": p.RecruiterID.String(),
		"status":       string(p.Status),
	}
	if err := outbox.Emit(ctx, b.base.events, outbox.EventJobPostChanged, "job_post", p.ID.String(), payload); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to record job post event")
	}
	return nil
}

func (b *JobBoard) emitApplication(ctx context.Context, a *models.Application) error {
	payload := map[string]any{
		"application_id": a.ID.String(),
		"job_post_id":    a.PostID.String(),
		"applicant_id":   a.ApplicantID.String(),
		"status":         string(a.Status),
	}
	if err := outbox.Emit(ctx, b.base.events, outbox.EventApplicationChanged, "job_application", a.ID.String(), payload); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to record application event")
	}
	return nil
}
