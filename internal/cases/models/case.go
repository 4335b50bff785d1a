package models

import (
	"slices"
	"strings"
	"time"

	id "casebook/pkg/domain"
	dErrors "casebook/pkg/domain-errors"
	platformstrings "casebook/pkg/platform/strings"
)

// CrimeCase is the aggregate root of the case registry.
//
// Invariants:
//   - PostedBy is set at creation and never changes
//   - SolvedBy, Solution, SolutionNotes and SolvedAt are set together, only on SOLVED
//   - AssignedSolvers holds no duplicates
//   - BadgeAwarded implies AwardedBadge is set; a case carries at most one badge
type CrimeCase struct {
	ID              id.CaseID   `json:"id"`
	Title           string      `json:"title"`
	Description     string      `json:"description"`
	Location        string      `json:"location"`
	CaseType        CaseType    `json:"case_type"`
	Difficulty      Difficulty  `json:"difficulty"`
	Status          Status      `json:"status"`
	Privacy         Privacy     `json:"privacy"`
	PostedBy        id.UserID   `json:"posted_by"`
	PrimarySolver   *id.UserID  `json:"primary_solver,omitempty"`
	AssignedSolvers []id.UserID `json:"assigned_solvers"`
	SolvedBy        *id.UserID  `json:"solved_by,omitempty"`
	Solution        string      `json:"solution,omitempty"`
	SolutionNotes   string      `json:"solution_notes,omitempty"`
	BadgeAwarded    bool        `json:"badge_awarded"`
	AwardedBadge    string      `json:"awarded_badge,omitempty"`
	BadgeAwardedAt  *time.Time  `json:"badge_awarded_at,omitempty"`
	Tags            []string    `json:"tags"`
	IncidentDate    *time.Time  `json:"incident_date,omitempty"`
	PostedAt        time.Time   `json:"posted_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
	SolvedAt        *time.Time  `json:"solved_at,omitempty"`
	ClosedAt        *time.Time  `json:"closed_at,omitempty"`
}

// NewCase builds an OPEN case posted by organization.
func NewCase(caseID id.CaseID, postedBy id.UserID, details NewCaseRequest, now time.Time) (*CrimeCase, error) {
	details.Normalize()
	if err := details.Validate(); err != nil {
		return nil, err
	}
	privacy := details.Privacy
	if privacy == "" {
		privacy = PrivacyPublic
	}
	return &CrimeCase{
		ID:              caseID,
		Title:           details.Title,
		Description:     details.Description,
		Location:        details.Location,
		CaseType:        details.CaseType,
		Difficulty:      details.Difficulty,
		Status:          StatusOpen,
		Privacy:         privacy,
		PostedBy:        postedBy,
		AssignedSolvers: []id.UserID{},
		Tags:            slices.Clone(details.Tags),
		IncidentDate:    details.IncidentDate,
		PostedAt:        now,
		UpdatedAt:       now,
	}, nil
}

// AcceptsParticipants reports whether join is legal: workable and not private.
func (c *CrimeCase) AcceptsParticipants() bool {
	return c.Status.IsWorkable() && c.Privacy != PrivacyPrivate
}

func (c *CrimeCase) IsSolved() bool {
	return c.SolvedBy != nil
}

// CanSolve checks the lifecycle half of solving; authorization is the service's job.
func (c *CrimeCase) CanSolve() error {
	if !c.Status.IsWorkable() {
		return dErrors.New(dErrors.CodeInvalidState, "case is "+string(c.Status)+"; only OPEN or IN_PROGRESS cases can be solved")
	}
	return nil
}

// ApplySolution records the solution and moves the case to SOLVED.
// Call CanSolve first.
func (c *CrimeCase) ApplySolution(solver id.UserID, solution, notes string, now time.Time) {
	c.Status = StatusSolved
	c.SolvedBy = &solver
	c.Solution = solution
	c.SolutionNotes = notes
	c.SolvedAt = &now
	c.UpdatedAt = now
}

// CanStart: OPEN -> IN_PROGRESS.
func (c *CrimeCase) CanStart() error {
	if c.Status != StatusOpen {
		return dErrors.New(dErrors.CodeInvalidState, "only OPEN cases can be started")
	}
	return nil
}

func (c *CrimeCase) ApplyStart(now time.Time) {
	c.Status = StatusInProgress
	c.UpdatedAt = now
}

// CanPause: IN_PROGRESS -> OPEN.
func (c *CrimeCase) CanPause() error {
	if c.Status != StatusInProgress {
		return dErrors.New(dErrors.CodeInvalidState, "only IN_PROGRESS cases can be paused")
	}
	return nil
}

func (c *CrimeCase) ApplyPause(now time.Time) {
	c.Status = StatusOpen
	c.UpdatedAt = now
}

// CanClose: OPEN or IN_PROGRESS -> CLOSED.
func (c *CrimeCase) CanClose() error {
	if !c.Status.IsWorkable() {
		return dErrors.New(dErrors.CodeInvalidState, "only OPEN or IN_PROGRESS cases can be closed")
	}
	return nil
}

func (c *CrimeCase) ApplyClose(now time.Time) {
	c.Status = StatusClosed
	c.ClosedAt = &now
	c.UpdatedAt = now
}

// CanReopen: CLOSED -> OPEN.
func (c *CrimeCase) CanReopen() error {
	if c.Status != StatusClosed {
		return dErrors.New(dErrors.CodeInvalidState, "only CLOSED cases can be reopened")
	}
	return nil
}

func (c *CrimeCase) ApplyReopen(now time.Time) {
	c.Status = StatusOpen
	c.ClosedAt = nil
	c.UpdatedAt = now
}

func (c *CrimeCase) IsAssigned(solver id.UserID) bool {
	return slices.Contains(c.AssignedSolvers, solver)
}

// ApplyPrimarySolver sets the primary solver and adds them to the assigned set.
func (c *CrimeCase) ApplyPrimarySolver(solver id.UserID, now time.Time) {
	c.PrimarySolver = &solver
	c.ApplyAssignedSolver(solver, now)
	c.UpdatedAt = now
}

// ApplyAssignedSolver adds solver once; repeats are no-ops.
func (c *CrimeCase) ApplyAssignedSolver(solver id.UserID, now time.Time) bool {
	if c.IsAssigned(solver) {
		return false
	}
	c.AssignedSolvers = append(c.AssignedSolvers, solver)
	c.UpdatedAt = now
	return true
}

// CanAwardBadge: the case must be solved and must not already carry a badge.
func (c *CrimeCase) CanAwardBadge() error {
	if c.SolvedBy == nil {
		return dErrors.New(dErrors.CodeInvalidState, "case has no solver to award")
	}
	if c.BadgeAwarded {
		return dErrors.New(dErrors.CodeInvalidState, "case already carries badge "+c.AwardedBadge)
	}
	return nil
}

func (c *CrimeCase) ApplyBadge(badgeName string, now time.Time) {
	c.BadgeAwarded = true
	c.AwardedBadge = badgeName
	c.BadgeAwardedAt = &now
	c.UpdatedAt = now
}

// Clone returns a deep copy.
func (c *CrimeCase) Clone() *CrimeCase {
	if c == nil {
		return nil
	}
	out := *c
	out.AssignedSolvers = slices.Clone(c.AssignedSolvers)
	out.Tags = slices.Clone(c.Tags)
	out.PrimarySolver = clonePtr(c.PrimarySolver)
	out.SolvedBy = clonePtr(c.SolvedBy)
	out.BadgeAwardedAt = clonePtr(c.BadgeAwardedAt)
	out.IncidentDate = clonePtr(c.IncidentDate)
	out.SolvedAt = clonePtr(c.SolvedAt)
	out.ClosedAt = clonePtr(c.ClosedAt)
	return &out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// NewCaseRequest carries the caller-supplied fields of a new case.
type NewCaseRequest struct {
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Location     string     `json:"location"`
	CaseType     CaseType   `json:"case_type"`
	Difficulty   Difficulty `json:"difficulty"`
	Privacy      Privacy    `json:"privacy"`
	Tags         []string   `json:"tags,omitempty"`
	IncidentDate *time.Time `json:"incident_date,omitempty"`
}

func (r *NewCaseRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	r.Location = strings.TrimSpace(r.Location)
	r.Tags = platformstrings.DedupeAndTrimLower(r.Tags)
	r.CaseType = CaseType(normalizeEnum(string(r.CaseType)))
	r.Difficulty = Difficulty(normalizeEnum(string(r.Difficulty)))
	r.Privacy = Privacy(normalizeEnum(string(r.Privacy)))
	if r.CaseType == "" {
		r.CaseType = CaseTypeOther
	}
	if r.Difficulty == "" {
		r.Difficulty = DifficultyMedium
	}
}

func (r *NewCaseRequest) Validate() error {
	if r.Title == "" {
		return dErrors.New(dErrors.CodeValidation, "title is required")
	}
	if len(r.Title) > 200 {
		return dErrors.New(dErrors.CodeValidation, "title must be 200 characters or less")
	}
	if !r.CaseType.IsValid() {
		return dErrors.New(dErrors.CodeValidation, "unknown case type")
	}
	if !r.Difficulty.IsValid() {
		return dErrors.New(dErrors.CodeValidation, "unknown difficulty")
	}
	if r.Privacy != "" && !r.Privacy.IsValid() {
		return dErrors.New(dErrors.CodeValidation, "unknown privacy")
	}
	return nil
}

// Filter narrows List results; zero fields match everything.
type Filter struct {
	Status     Status
	CaseType   CaseType
	Difficulty Difficulty
	Privacy    Privacy
	PostedBy   *id.UserID
	SolvedBy   *id.UserID
}

func (f Filter) Matches(c *CrimeCase) bool {
	if f.Status != "" && c.Status != f.Status {
		return false
	}
	if f.CaseType != "" && c.CaseType != f.CaseType {
		return false
	}
	if f.Difficulty != "" && c.Difficulty != f.Difficulty {
		return false
	}
	if f.Privacy != "" && c.Privacy != f.Privacy {
		return false
	}
	if f.PostedBy != nil && c.PostedBy != *f.PostedBy {
		return false
	}
	if f.SolvedBy != nil && (c.SolvedBy == nil || *c.SolvedBy != *f.SolvedBy) {
		return false
	}
	return true
}
