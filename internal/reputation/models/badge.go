package models

import (
	"strings"
	"time"

	idmodels "casebook/internal/identity/models"
	"casebook/internal/policy"
	id "casebook/pkg/domain"
	dErrors "casebook/pkg/domain-errors"
)

type BadgeType string

const (
	BadgeTypeCaseSolver     BadgeType = "CASE_SOLVER"
	BadgeTypeExpert         BadgeType = "EXPERT"
	BadgeTypeRating         BadgeType = "RATING"
	BadgeTypeSpecialization BadgeType = "SPECIALIZATION"
	BadgeTypeMilestone      BadgeType = "MILESTONE"
	BadgeTypeAchievement    BadgeType = "ACHIEVEMENT"
)

func (t BadgeType) IsValid() bool {
	switch t {
	case BadgeTypeCaseSolver, BadgeTypeExpert, BadgeTypeRating, BadgeTypeSpecialization, BadgeTypeMilestone, BadgeTypeAchievement:
		return true
	}
	return false
}

type BadgeTier string

const (
	TierBronze   BadgeTier = "BRONZE"
	TierSilver   BadgeTier = "SILVER"
	TierGold     BadgeTier = "GOLD"
	TierPlatinum BadgeTier = "PLATINUM"
	TierDiamond  BadgeTier = "DIAMOND"
)

func (t BadgeTier) IsValid() bool {
	switch t {
	case TierBronze, TierSilver, TierGold, TierPlatinum, TierDiamond:
		return true
	}
	return false
}

// Badge is a catalog entry. Names are unique; thresholds are optional.
type Badge struct {
	ID                     id.BadgeID `json:"id"`
	Name                   string     `json:"name"`
	DisplayName            string     `json:"display_name"`
	Description            string     `json:"description,omitempty"`
	Icon                   string     `json:"icon,omitempty"`
	Color                  string     `json:"color,omitempty"`
	Type                   BadgeType  `json:"type"`
	Tier                   BadgeTier  `json:"tier"`
	RequiredCases          *int       `json:"required_cases,omitempty"`
	RequiredRating         *float64   `json:"required_rating,omitempty"`
	RequiredCaseType       string     `json:"required_case_type,omitempty"`
	RequiredSpecialization string     `json:"required_specialization,omitempty"`
	Active                 bool       `json:"active"`
	CreatedAt              time.Time  `json:"created_at"`
	UpdatedAt              time.Time  `json:"updated_at"`
}

func NewBadge(badgeID id.BadgeID, req BadgeRequest, now time.Time) (*Badge, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}
	b := &Badge{
		ID:        badgeID,
		Active:    true,
		CreatedAt: now,
	}
	b.ApplyUpdate(req, now)
	return b, nil
}

// ApplyUpdate overwrites every editable field from req.
func (b *Badge) ApplyUpdate(req BadgeRequest, now time.Time) {
	b.Name = req.Name
	b.DisplayName = req.DisplayName
	if b.DisplayName == "" {
		b.DisplayName = req.Name
	}
	b.Description = req.Description
	b.Icon = req.Icon
	b.Color = req.Color
	b.Type = req.Type
	b.Tier = req.Tier
	b.RequiredCases = clonePtr(req.RequiredCases)
	b.RequiredRating = clonePtr(req.RequiredRating)
	b.RequiredCaseType = req.RequiredCaseType
	b.RequiredSpecialization = req.RequiredSpecialization
	b.UpdatedAt = now
}

func (b *Badge) Deactivate(now time.Time) {
	b.Active = false
	b.UpdatedAt = now
}

// EligibleFor checks the badge's own thresholds against the user's
// aggregates. Only solvers earn badges.
func (b *Badge) EligibleFor(u *idmodels.User) bool {
	if !policy.CanEarnBadge(u) {
		return false
	}
	if b.RequiredCases != nil && u.SolvedCasesCount < *b.RequiredCases {
		return false
	}
	if b.RequiredRating != nil && u.AverageRating < *b.RequiredRating {
		return false
	}
	return true
}

// Progress reports how far u is toward the badge's primary threshold. Case
// count wins over rating when both are set; ratings are compared in tenths.
type Progress struct {
	Badge      *Badge  `json:"badge"`
	Current    int     `json:"current"`
	Required   int     `json:"required"`
	Percentage float64 `json:"percentage"`
	Completed  bool    `json:"completed"`
}

func (b *Badge) ProgressFor(u *idmodels.User) Progress {
	p := Progress{Badge: b}
	switch {
	case b.RequiredCases != nil:
		p.Current = u.SolvedCasesCount
		p.Required = *b.RequiredCases
	case b.RequiredRating != nil:
		p.Current = int(u.AverageRating * 10)
		p.Required = int(*b.RequiredRating * 10)
	}
	if p.Required > 0 {
		p.Percentage = float64(p.Current) / float64(p.Required) * 100
		if p.Percentage > 100 {
			p.Percentage = 100
		}
	}
	p.Completed = u.HasBadge(b.Name) || (p.Required > 0 && p.Current >= p.Required)
	return p
}

func (b *Badge) Clone() *Badge {
	if b == nil {
		return nil
	}
	c := *b
	c.RequiredCases = clonePtr(b.RequiredCases)
	c.RequiredRating = clonePtr(b.RequiredRating)
	return &c
}

// BadgeRequest creates or replaces a catalog entry.
type BadgeRequest struct {
	Name                   string    `json:"name" yaml:"name"`
	DisplayName            string    `json:"display_name,omitempty" yaml:"display_name"`
	Description            string    `json:"description,omitempty" yaml:"description"`
	Icon                   string    `json:"icon,omitempty" yaml:"icon"`
	Color                  string    `json:"color,omitempty" yaml:"color"`
	Type                   BadgeType `json:"type" yaml:"type"`
	Tier                   BadgeTier `json:"tier,omitempty" yaml:"tier"`
	RequiredCases          *int      `json:"required_cases,omitempty" yaml:"required_cases"`
	RequiredRating         *float64  `json:"required_rating,omitempty" yaml:"required_rating"`
	RequiredCaseType       string    `json:"required_case_type,omitempty" yaml:"required_case_type"`
	RequiredSpecialization string    `json:"required_specialization,omitempty" yaml:"required_specialization"`
}

func (r *BadgeRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.DisplayName = strings.TrimSpace(r.DisplayName)
	r.Description = strings.TrimSpace(r.Description)
	r.Type = BadgeType(strings.ToUpper(strings.TrimSpace(string(r.Type))))
	r.Tier = BadgeTier(strings.ToUpper(strings.TrimSpace(string(r.Tier))))
	if r.Tier == "" {
		r.Tier = TierBronze
	}
}

func (r BadgeRequest) Validate() error {
	if r.Name == "" {
		return dErrors.New(dErrors.CodeValidation, "badge name is required")
	}
	if len(r.Name) > 100 {
		return dErrors.New(dErrors.CodeValidation, "badge name must be 100 characters or less")
	}
	if !r.Type.IsValid() {
		return dErrors.New(dErrors.CodeValidation, "badge type is invalid")
	}
	if !r.Tier.IsValid() {
		return dErrors.New(dErrors.CodeValidation, "badge tier is invalid")
	}
	if r.RequiredCases != nil && *r.RequiredCases < 0 {
		return dErrors.New(dErrors.CodeValidation, "required cases cannot be negative")
	}
	if r.RequiredRating != nil && (*r.RequiredRating < 0 || *r.RequiredRating > 5) {
		return dErrors.New(dErrors.CodeValidation, "required rating must be between 0 and 5")
	}
	return nil
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
