package models

import (
	"strings"
	"time"

	id "casebook/pkg/domain"
	dErrors "casebook/pkg/domain-errors"
)

type Role string

const (
	RoleOwner    Role = "OWNER"
	RoleLeader   Role = "LEADER"
	RoleSolver   Role = "SOLVER"
	RoleFollower Role = "FOLLOWER"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleOwner, RoleLeader, RoleSolver, RoleFollower:
		return true
	}
	return false
}

// ParseRole normalizes a role name; empty defaults to FOLLOWER.
func ParseRole(s string) (Role, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return RoleFollower, nil
	}
	r := Role(s)
	if !r.IsValid() {
		return "", dErrors.New(dErrors.CodeValidation, "role must be one of OWNER, LEADER, SOLVER, FOLLOWER")
	}
	return r, nil
}

// Status is the tagged participation state. No status is terminal: every
// non-ACTIVE status reactivates through Reactivate.
type Status string

const (
	StatusActive    Status = "ACTIVE"
	StatusInactive  Status = "INACTIVE"
	StatusSuspended Status = "SUSPENDED"
	StatusCompleted Status = "COMPLETED"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusSuspended, StatusCompleted:
		return true
	}
	return false
}

// Participation is the membership record for one (user, case) pair. There is
// at most one per pair; rejoining reactivates it.
type Participation struct {
	ID             id.ParticipationID `json:"id"`
	UserID         id.UserID          `json:"user_id"`
	CaseID         id.CaseID          `json:"case_id"`
	Role           Role               `json:"role"`
	Status         Status             `json:"status"`
	JoinedAt       time.Time          `json:"joined_at"`
	LastActivityAt time.Time          `json:"last_activity_at"`
}

func NewParticipation(participationID id.ParticipationID, userID id.UserID, caseID id.CaseID, role Role, now time.Time) (*Participation, error) {
	if !role.IsValid() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "participation role is invalid")
	}
	return &Participation{
		ID:             participationID,
		UserID:         userID,
		CaseID:         caseID,
		Role:           role,
		Status:         StatusActive,
		JoinedAt:       now,
		LastActivityAt: now,
	}, nil
}

func (p *Participation) IsActive() bool {
	return p.Status == StatusActive
}

func (p *Participation) CanReactivate() error {
	if p.IsActive() {
		return dErrors.New(dErrors.CodeAlreadyActive, "already an active participant")
	}
	return nil
}

// Reactivate moves any non-ACTIVE record back to ACTIVE under role. An OWNER
// keeps its role.
func (p *Participation) Reactivate(role Role, now time.Time) {
	p.Status = StatusActive
	if p.Role != RoleOwner {
		p.Role = role
	}
	p.LastActivityAt = now
}

func (p *Participation) ApplyStatus(status Status, now time.Time) {
	p.Status = status
	p.LastActivityAt = now
}

// CanChangeRole enforces that OWNER is neither revoked nor granted after
// creation.
func (p *Participation) CanChangeRole(newRole Role) error {
	if p.Role == RoleOwner {
		return dErrors.New(dErrors.CodeInvalidRoleChange, "the owner role cannot be changed")
	}
	if newRole == RoleOwner {
		return dErrors.New(dErrors.CodeInvalidRoleChange, "the owner role cannot be granted")
	}
	if !newRole.IsValid() {
		return dErrors.New(dErrors.CodeValidation, "role is invalid")
	}
	return nil
}

func (p *Participation) ApplyRole(role Role, now time.Time) {
	p.Role = role
	p.LastActivityAt = now
}

func (p *Participation) Touch(now time.Time) {
	p.LastActivityAt = now
}

func (p *Participation) Clone() *Participation {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

type JoinRequest struct {
	Role string `json:"role"`
}

type ChangeRoleRequest struct {
	Role string `json:"role"`
}
