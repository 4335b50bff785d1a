package testutil

import (
	"net/http"

	id "casebook/pkg/domain"
	dErrors "casebook/pkg/domain-errors"
	authmw "casebook/pkg/platform/middleware/auth"
)

// TokenValidator accepts tokens of the form issued by AsUser and maps them
// back to the user they name. It stands in for the JWT service in handler
// tests so requests go through the real RequireAuth middleware.
type TokenValidator struct {
	Roles map[id.UserID]string
}

func NewTokenValidator() *TokenValidator {
	return &TokenValidator{Roles: make(map[id.UserID]string)}
}

func (v *TokenValidator) ValidateToken(token string) (*authmw.JWTClaims, error) {
	userID, err := id.ParseUserID(token)
	if err != nil {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid token")
	}
	return &authmw.JWTClaims{UserID: userID.String(), Role: v.Roles[userID]}, nil
}

// AsUser sets a bearer token TokenValidator resolves to userID.
func AsUser(req *http.Request, userID id.UserID) *http.Request {
	req.Header.Set("Authorization", "Bearer "+userID.String())
	return req
}
