package models

import (
	"strings"
	"time"

	id "casebook/pkg/domain"
	dErrors "casebook/pkg/domain-errors"
)

type PostStatus string

const (
	PostOpen   PostStatus = "OPEN"
	PostClosed PostStatus = "CLOSED"
)

type ApplicationStatus string

const (
	ApplicationApplied   ApplicationStatus = "APPLIED"
	ApplicationAccepted  ApplicationStatus = "ACCEPTED"
	ApplicationRejected  ApplicationStatus = "REJECTED"
	ApplicationWithdrawn ApplicationStatus = "WITHDRAWN"
)

// JobPost is a recruiter's open call for investigators, independent of any
// case.
type JobPost struct {
	ID          id.JobPostID `json:"id"`
	RecruiterID id.UserID    `json:"recruiter_id"`
	HourlyRate  *float64     `json:"hourly_rate,omitempty"`
	CaseType    string       `json:"case_type,omitempty"`
	Overview    string       `json:"overview"`
	Location    string       `json:"location,omitempty"`
	Status      PostStatus   `json:"status"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

type PostDetails struct {
	HourlyRate *float64 `json:"hourly_rate,omitempty"`
	CaseType   string   `json:"case_type,omitempty"`
	Overview   string   `json:"overview"`
	Location   string   `json:"location,omitempty"`
}

func (d *PostDetails) Normalize() {
	d.CaseType = strings.TrimSpace(d.CaseType)
	d.Overview = strings.TrimSpace(d.Overview)
	d.Location = strings.TrimSpace(d.Location)
}

func (d PostDetails) Validate() error {
	if d.Overview == "" {
		return dErrors.New(dErrors.CodeValidation, "overview is required")
	}
	if len(d.Overview) > 4000 {
		return dErrors.New(dErrors.CodeValidation, "overview must be 4000 characters or less")
	}
	if d.HourlyRate != nil && *d.HourlyRate < 0 {
		return dErrors.New(dErrors.CodeValidation, "hourly rate cannot be negative")
	}
	return nil
}

func NewJobPost(postID id.JobPostID, recruiterID id.UserID, details PostDetails, now time.Time) (*JobPost, error) {
	details.Normalize()
	if err := details.Validate(); err != nil {
		return nil, err
	}
	return &JobPost{
		ID:          postID,
		RecruiterID: recruiterID,
		HourlyRate:  clonePtr(details.HourlyRate),
		CaseType:    details.CaseType,
		Overview:    details.Overview,
		Location:    details.Location,
		Status:      PostOpen,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

func (p *JobPost) CanClose() error {
	if p.Status != PostOpen {
		return dErrors.New(dErrors.CodeInvalidState, "job post is already closed")
	}
	return nil
}

func (p *JobPost) ApplyClose(now time.Time) {
	p.Status = PostClosed
	p.UpdatedAt = now
}

func (p *JobPost) Clone() *JobPost {
	if p == nil {
		return nil
	}
	c := *p
	c.HourlyRate = clonePtr(p.HourlyRate)
	return &c
}

// PostFilter narrows a job post listing. Zero fields match everything;
// CaseType and Location compare case-insensitively.
type PostFilter struct {
	Status      PostStatus
	CaseType    string
	Location    string
	RecruiterID *id.UserID
}

func (f PostFilter) Matches(p *JobPost) bool {
	if f.Status != "" && p.Status != f.Status {
		return false
	}
	if f.CaseType != "" && !strings.EqualFold(p.CaseType, f.CaseType) {
		return false
	}
	if f.Location != "" && !strings.EqualFold(p.Location, f.Location) {
		return false
	}
	if f.RecruiterID != nil && p.RecruiterID != *f.RecruiterID {
		return false
	}
	return true
}

// Application is a solver's answer to a job post. A solver applies to a
// post at most once.
type Application struct {
	ID          id.ApplicationID  `json:"id"`
	PostID      id.JobPostID      `json:"post_id"`
	ApplicantID id.UserID         `json:"applicant_id"`
	CoverLetter string            `json:"cover_letter,omitempty"`
	Status      ApplicationStatus `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

func NewApplication(applicationID id.ApplicationID, postID id.JobPostID, applicantID id.UserID, coverLetter string, now time.Time) (*Application, error) {
	coverLetter = strings.TrimSpace(coverLetter)
	if len(coverLetter) > 4000 {
		return nil, dErrors.New(dErrors.CodeValidation, "cover letter must be 4000 characters or less")
	}
	return &Application{
		ID:          applicationID,
		PostID:      postID,
		ApplicantID: applicantID,
		CoverLetter: coverLetter,
		Status:      ApplicationApplied,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// CanDecide gates accept, reject and withdraw: only APPLIED applications
// move.
func (a *Application) CanDecide(op string) error {
	if a.Status != ApplicationApplied {
		return dErrors.New(dErrors.CodeInvalidState, "cannot "+op+" a "+strings.ToLower(string(a.Status))+" application")
	}
	return nil
}

func (a *Application) ApplyStatus(status ApplicationStatus, now time.Time) {
	a.Status = status
	a.UpdatedAt = now
}

func (a *Application) Clone() *Application {
	if a == nil {
		return nil
	}
	c := *a
	return &c
}

type ApplyRequest struct {
	CoverLetter string `json:"cover_letter,omitempty"`
}
