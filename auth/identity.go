package auth

import (
	"strings"

	"chat-core/errors"
)

// JWTValidator resolves an authenticated identity from a bearer credential.
// It accepts the raw token or the standard "Bearer <token>" form.
type JWTValidator struct{}

func NewJWTValidator() *JWTValidator {
	return &JWTValidator{}
}

func (v *JWTValidator) ResolveIdentity(bearer string) (string, error) {
	tokenStr := strings.TrimPrefix(bearer, "Bearer ")
	if tokenStr == "" {
		return "", errors.ErrMissingBearer
	}

	claims, err := ValidateToken(tokenStr)
	if err != nil {
		return "", err
	}
	if claims.Username == "" {
		return "", errors.ErrUnresolvableIdentity
	}
	return claims.Username, nil
}
