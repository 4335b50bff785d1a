package models

import (
	"slices"
	"strings"
	"time"

	id "casebook/pkg/domain"
	dErrors "casebook/pkg/domain-errors"
)

// User is the identity directory record. The directory owns role and
// verification flags; the reputation engine owns the aggregate fields
// (AverageRating, TotalRatings, SolvedCasesCount, ActiveCasesCount, Badges).
//
// Invariants:
//   - Username is unique (case-insensitive) and non-empty
//   - AverageRating is the mean of every rating targeting the user, 0 with none
//   - TotalRatings, SolvedCasesCount and ActiveCasesCount are never negative
//   - Badges mirrors the user's BadgeAward rows, sorted, without duplicates
type User struct {
	ID                   id.UserID `json:"id"`
	Username             string    `json:"username"`
	Email                string    `json:"email"`
	PasswordHash         string    `json:"-"`
	Role                 Role      `json:"role"`
	OrganizationVerified bool      `json:"organization_verified"`
	AvailableForHire     bool      `json:"available_for_hire"`
	HourlyRate           *float64  `json:"hourly_rate,omitempty"`
	Specializations      []string  `json:"specializations,omitempty"`
	AverageRating        float64   `json:"average_rating"`
	TotalRatings         int       `json:"total_ratings"`
	SolvedCasesCount     int       `json:"solved_cases_count"`
	ActiveCasesCount     int       `json:"active_cases_count"`
	Badges               []string  `json:"badges"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

func NewUser(userID id.UserID, username, email string, role Role, now time.Time) (*User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "username cannot be empty")
	}
	if len(username) > 64 {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "username must be 64 characters or less")
	}
	if !strings.Contains(email, "@") {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "email is invalid")
	}
	if !role.IsValid() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "role is invalid")
	}
	return &User{
		ID:        userID,
		Username:  username,
		Email:     strings.ToLower(strings.TrimSpace(email)),
		Role:      role,
		Badges:    []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (u *User) HasBadge(name string) bool {
	return slices.Contains(u.Badges, name)
}

// ApplyRatingAggregate replaces the rating aggregate with values recomputed
// from the rating rows.
func (u *User) ApplyRatingAggregate(average float64, count int, now time.Time) {
	u.AverageRating = average
	u.TotalRatings = count
	u.UpdatedAt = now
}

// IncrementSolvedCases is the one aggregate updated by increment; it only grows.
func (u *User) IncrementSolvedCases(now time.Time) {
	u.SolvedCasesCount++
	u.UpdatedAt = now
}

func (u *User) ApplyActiveCases(count int, now time.Time) {
	if count < 0 {
		count = 0
	}
	u.ActiveCasesCount = count
	u.UpdatedAt = now
}

// ReplaceBadges rebuilds the badge set from the award rows.
func (u *User) ReplaceBadges(names []string, now time.Time) {
	set := slices.Clone(names)
	slices.Sort(set)
	u.Badges = slices.Compact(set)
	if u.Badges == nil {
		u.Badges = []string{}
	}
	u.UpdatedAt = now
}

func (u *User) ApplyVerification(now time.Time) {
	u.OrganizationVerified = true
	u.UpdatedAt = now
}

func (u *User) ApplyAvailability(available bool, hourlyRate *float64, now time.Time) {
	u.AvailableForHire = available
	if hourlyRate != nil {
		rate := *hourlyRate
		u.HourlyRate = &rate
	}
	u.UpdatedAt = now
}

// Clone returns a deep copy so stores never share slices with callers.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	c.Specializations = slices.Clone(u.Specializations)
	c.Badges = slices.Clone(u.Badges)
	if u.HourlyRate != nil {
		rate := *u.HourlyRate
		c.HourlyRate = &rate
	}
	return &c
}
