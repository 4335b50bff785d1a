package models

import (
	"strings"
	"time"

	id "casebook/pkg/domain"
	dErrors "casebook/pkg/domain-errors"
)

// BadgeAward grants one badge to one user; (UserID, BadgeID) is unique.
// AwardedBy is nil for system awards.
type BadgeAward struct {
	ID        id.BadgeAwardID `json:"id"`
	UserID    id.UserID       `json:"user_id"`
	BadgeID   id.BadgeID      `json:"badge_id"`
	BadgeName string          `json:"badge_name"`
	CaseID    *id.CaseID      `json:"case_id,omitempty"`
	AwardedBy *id.UserID      `json:"awarded_by,omitempty"`
	Reason    string          `json:"reason,omitempty"`
	AwardedAt time.Time       `json:"awarded_at"`
}

func NewBadgeAward(awardID id.BadgeAwardID, userID id.UserID, badge *Badge, awardedBy *id.UserID, reason string, caseID *id.CaseID, now time.Time) *BadgeAward {
	return &BadgeAward{
		ID:        awardID,
		UserID:    userID,
		BadgeID:   badge.ID,
		BadgeName: badge.Name,
		CaseID:    clonePtr(caseID),
		AwardedBy: clonePtr(awardedBy),
		Reason:    strings.TrimSpace(reason),
		AwardedAt: now,
	}
}

func (a *BadgeAward) IsSystem() bool {
	return a.AwardedBy == nil
}

func (a *BadgeAward) Clone() *BadgeAward {
	if a == nil {
		return nil
	}
	c := *a
	c.CaseID = clonePtr(a.CaseID)
	c.AwardedBy = clonePtr(a.AwardedBy)
	return &c
}

// AwardRequest is a manual award by a recruiter or organization.
type AwardRequest struct {
	UserID  string `json:"user_id"`
	BadgeID string `json:"badge_id"`
	Reason  string `json:"reason,omitempty"`
	CaseID  string `json:"case_id,omitempty"`
}

// Parse resolves the request's identifiers.
func (r AwardRequest) Parse() (id.UserID, id.BadgeID, *id.CaseID, error) {
	userID, err := id.ParseUserID(r.UserID)
	if err != nil {
		return id.UserID{}, id.BadgeID{}, nil, dErrors.New(dErrors.CodeValidation, "user_id is invalid")
	}
	badgeID, err := id.ParseBadgeID(r.BadgeID)
	if err != nil {
		return id.UserID{}, id.BadgeID{}, nil, dErrors.New(dErrors.CodeValidation, "badge_id is invalid")
	}
	caseID, err := parseOptionalCase(r.CaseID)
	if err != nil {
		return id.UserID{}, id.BadgeID{}, nil, err
	}
	return userID, badgeID, caseID, nil
}

func parseOptionalCase(raw string) (*id.CaseID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	caseID, err := id.ParseCaseID(raw)
	if err != nil {
		return nil, dErrors.New(dErrors.CodeValidation, "case_id is invalid")
	}
	return &caseID, nil
}
