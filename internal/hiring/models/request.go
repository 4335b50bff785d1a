package models

import (
	"strings"
	"time"

	id "casebook/pkg/domain"
	dErrors "casebook/pkg/domain-errors"
)

type Status string

const (
	StatusPending    Status = "PENDING"
	StatusAccepted   Status = "ACCEPTED"
	StatusDeclined   Status = "DECLINED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
	StatusCancelled  Status = "CANCELLED"
)

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == StatusDeclined || s == StatusCompleted || s == StatusCancelled
}

// IsContract reports whether the investigator is currently engaged.
func (s Status) IsContract() bool {
	return s == StatusAccepted || s == StatusInProgress
}

// Terms are the organization's offer.
type Terms struct {
	Title            string   `json:"title"`
	Description      string   `json:"description,omitempty"`
	ProposedRate     *float64 `json:"proposed_rate,omitempty"`
	ProposedDuration string   `json:"proposed_duration,omitempty"`
	Requirements     string   `json:"requirements,omitempty"`
	ContactInfo      string   `json:"contact_info,omitempty"`
}

func (t *Terms) Normalize() {
	t.Title = strings.TrimSpace(t.Title)
	t.Description = strings.TrimSpace(t.Description)
	t.ProposedDuration = strings.TrimSpace(t.ProposedDuration)
	t.Requirements = strings.TrimSpace(t.Requirements)
	t.ContactInfo = strings.TrimSpace(t.ContactInfo)
}

func (t Terms) Validate() error {
	if t.Title == "" {
		return dErrors.New(dErrors.CodeValidation, "title is required")
	}
	if len(t.Title) > 200 {
		return dErrors.New(dErrors.CodeValidation, "title must be 200 characters or less")
	}
	if t.ProposedRate != nil && *t.ProposedRate < 0 {
		return dErrors.New(dErrors.CodeValidation, "proposed rate cannot be negative")
	}
	return nil
}

// HiringRequest is an offer from an organization to an investigator scoped
// to a case. At most one non-terminal request exists per
// (organization, investigator, case).
type HiringRequest struct {
	ID                   id.HiringRequestID `json:"id"`
	OrganizationID       id.UserID          `json:"organization_id"`
	InvestigatorID       id.UserID          `json:"investigator_id"`
	CaseID               id.CaseID          `json:"case_id"`
	Terms                Terms              `json:"terms"`
	InvestigatorResponse string             `json:"investigator_response,omitempty"`
	Status               Status             `json:"status"`
	RequestedAt          time.Time          `json:"requested_at"`
	RespondedAt          *time.Time         `json:"responded_at,omitempty"`
	AcceptedAt           *time.Time         `json:"accepted_at,omitempty"`
	StartedAt            *time.Time         `json:"started_at,omitempty"`
	CompletedAt          *time.Time         `json:"completed_at,omitempty"`
	CancelledAt          *time.Time         `json:"cancelled_at,omitempty"`
	UpdatedAt            time.Time          `json:"updated_at"`
}

func NewHiringRequest(requestID id.HiringRequestID, orgID, investigatorID id.UserID, caseID id.CaseID, terms Terms, now time.Time) (*HiringRequest, error) {
	terms.Normalize()
	if err := terms.Validate(); err != nil {
		return nil, err
	}
	if orgID == investigatorID {
		return nil, dErrors.New(dErrors.CodeValidation, "an organization cannot hire itself")
	}
	return &HiringRequest{
		ID:             requestID,
		OrganizationID: orgID,
		InvestigatorID: investigatorID,
		CaseID:         caseID,
		Terms:          terms,
		Status:         StatusPending,
		RequestedAt:    now,
		UpdatedAt:      now,
	}, nil
}

func (r *HiringRequest) SameTriple(o *HiringRequest) bool {
	return r.OrganizationID == o.OrganizationID && r.InvestigatorID == o.InvestigatorID && r.CaseID == o.CaseID
}

func (r *HiringRequest) invalid(op string) error {
	return dErrors.New(dErrors.CodeInvalidState, "cannot "+op+" a "+strings.ToLower(string(r.Status))+" hiring request")
}

// CanRespond gates both accept and reject.
func (r *HiringRequest) CanRespond(op string) error {
	if r.Status != StatusPending {
		return r.invalid(op)
	}
	return nil
}

func (r *HiringRequest) ApplyAccept(response string, now time.Time) {
	r.Status = StatusAccepted
	r.InvestigatorResponse = strings.TrimSpace(response)
	r.RespondedAt = &now
	r.AcceptedAt = &now
	r.UpdatedAt = now
}

func (r *HiringRequest) ApplyReject(response string, now time.Time) {
	r.Status = StatusDeclined
	r.InvestigatorResponse = strings.TrimSpace(response)
	r.RespondedAt = &now
	r.UpdatedAt = now
}

func (r *HiringRequest) CanStart() error {
	if r.Status != StatusAccepted {
		return r.invalid("start")
	}
	return nil
}

func (r *HiringRequest) ApplyStart(now time.Time) {
	r.Status = StatusInProgress
	r.StartedAt = &now
	r.UpdatedAt = now
}

func (r *HiringRequest) CanComplete() error {
	if !r.Status.IsContract() {
		return r.invalid("complete")
	}
	return nil
}

func (r *HiringRequest) ApplyComplete(now time.Time) {
	r.Status = StatusCompleted
	r.CompletedAt = &now
	r.UpdatedAt = now
}

func (r *HiringRequest) CanCancel() error {
	if r.Status.IsTerminal() {
		return r.invalid("cancel")
	}
	return nil
}

func (r *HiringRequest) ApplyCancel(now time.Time) {
	r.Status = StatusCancelled
	r.CancelledAt = &now
	r.UpdatedAt = now
}

func (r *HiringRequest) Clone() *HiringRequest {
	if r == nil {
		return nil
	}
	c := *r
	c.Terms.ProposedRate = clonePtr(r.Terms.ProposedRate)
	c.RespondedAt = clonePtr(r.RespondedAt)
	c.AcceptedAt = clonePtr(r.AcceptedAt)
	c.StartedAt = clonePtr(r.StartedAt)
	c.CompletedAt = clonePtr(r.CompletedAt)
	c.CancelledAt = clonePtr(r.CancelledAt)
	return &c
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

type CreateRequest struct {
	InvestigatorID string `json:"investigator_id"`
	CaseID         string `json:"case_id"`
	Terms
}

type RespondRequest struct {
	Response string `json:"response,omitempty"`
}
