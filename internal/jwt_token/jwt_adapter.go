package jwttoken

import (
	authmw "casebook/pkg/platform/middleware/auth"
)

// Validator satisfies authmw.JWTValidator so the middleware package stays
// free of the jwt dependency.
type Validator struct {
	service *JWTService
}

func NewValidator(service *JWTService) *Validator {
	return &Validator{service: service}
}

func (v *Validator) ValidateToken(token string) (*authmw.JWTClaims, error) {
	claims, err := v.service.ValidateToken(token)
	if err != nil {
		return nil, err
	}
	return &authmw.JWTClaims{UserID: claims.UserID, Role: claims.Role, JTI: claims.ID}, nil
}
