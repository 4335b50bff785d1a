package models

import (
	"net/url"
	"strings"

	id "casebook/pkg/domain"
	dErrors "casebook/pkg/domain-errors"
)

type SolveRequest struct {
	Solution string `json:"solution"`
	Notes    string `json:"notes,omitempty"`
}

func (r *SolveRequest) Validate() error {
	r.Solution = strings.TrimSpace(r.Solution)
	if r.Solution == "" {
		return dErrors.New(dErrors.CodeValidation, "solution is required")
	}
	return nil
}

type AssignSolverRequest struct {
	SolverID string `json:"solver_id"`
}

func (r AssignSolverRequest) Parse() (id.UserID, error) {
	solverID, err := id.ParseUserID(r.SolverID)
	if err != nil {
		return id.UserID{}, dErrors.New(dErrors.CodeValidation, "solver_id must be a valid id")
	}
	return solverID, nil
}

type CaseBadgeRequest struct {
	BadgeName string `json:"badge_name"`
}

// ParseFilter reads a Filter from list query parameters. Enum values are
// case-insensitive; unknown values are rejected.
func ParseFilter(q url.Values) (Filter, error) {
	var f Filter
	if v := q.Get("status"); v != "" {
		f.Status = Status(normalizeEnum(v))
		if !f.Status.IsValid() {
			return Filter{}, dErrors.New(dErrors.CodeValidation, "unknown status")
		}
	}
	if v := q.Get("case_type"); v != "" {
		f.CaseType = CaseType(normalizeEnum(v))
		if !f.CaseType.IsValid() {
			return Filter{}, dErrors.New(dErrors.CodeValidation, "unknown case_type")
		}
	}
	if v := q.Get("difficulty"); v != "" {
		f.Difficulty = Difficulty(normalizeEnum(v))
		if !f.Difficulty.IsValid() {
			return Filter{}, dErrors.New(dErrors.CodeValidation, "unknown difficulty")
		}
	}
	if v := q.Get("privacy"); v != "" {
		f.Privacy = Privacy(normalizeEnum(v))
		if !f.Privacy.IsValid() {
			return Filter{}, dErrors.New(dErrors.CodeValidation, "unknown privacy")
		}
	}
	for key, dst := range map[string]**id.UserID{"posted_by": &f.PostedBy, "solved_by": &f.SolvedBy} {
		v := q.Get(key)
		if v == "" {
			continue
		}
		userID, err := id.ParseUserID(v)
		if err != nil {
			return Filter{}, dErrors.New(dErrors.CodeValidation, key+" must be a valid id")
		}
		*dst = &userID
	}
	return f, nil
}
