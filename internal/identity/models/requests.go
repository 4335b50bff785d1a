package models

import (
	"strings"

	dErrors "casebook/pkg/domain-errors"
)

type RegisterRequest struct {
	Username        string   `json:"username"`
	Email           string   `json:"email"`
	Password        string   `json:"password"`
	Role            Role     `json:"role"`
	Specializations []string `json:"specializations,omitempty"`
}

func (r *RegisterRequest) Normalize() {
	r.Username = strings.TrimSpace(r.Username)
	r.Email = strings.TrimSpace(r.Email)
	r.Role = Role(strings.ToUpper(strings.TrimSpace(string(r.Role))))
}

func (r *RegisterRequest) Validate() error {
	if r.Username == "" {
		return dErrors.New(dErrors.CodeValidation, "username is required")
	}
	if r.Email == "" {
		return dErrors.New(dErrors.CodeValidation, "email is required")
	}
	if len(r.Password) < 8 {
		return dErrors.New(dErrors.CodeValidation, "password must be at least 8 characters")
	}
	if !r.Role.IsValid() {
		return dErrors.New(dErrors.CodeValidation, "role must be one of ADMIN, ORGANIZATION, SOLVER, RECRUITER")
	}
	return nil
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	User        *User  `json:"user"`
}

type AvailabilityRequest struct {
	AvailableForHire bool     `json:"available_for_hire"`
	HourlyRate       *float64 `json:"hourly_rate,omitempty"`
}
