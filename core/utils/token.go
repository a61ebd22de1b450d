package utils

import (
	stderrors "errors"
	"fmt"
	"time"

	"volunteerhub/core/config"
	"volunteerhub/core/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenClaims is the JWT payload for an authenticated NGO admin session
type TokenClaims struct {
	AdminID uuid.UUID `json:"admin_id"`
	NGOCode string    `json:"ngo_code"`
	Email   string    `json:"email"`
	jwt.RegisteredClaims
}

// GenerateToken issues a signed access token for an admin.
func GenerateToken(adminID uuid.UUID, ngoCode, email string) (string, error) {
	cfg := config.Get()

	ttl := time.Duration(cfg.JWT.AccessTTLMins) * time.Minute
	claims := &TokenClaims{
		AdminID: adminID,
		NGOCode: ngoCode,
		Email:   email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   adminID.String(),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			ID:        GenerateID(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWT.Secret))
}

// ValidateAndParseToken verifies the signature and expiry of a token and
// returns its claims.
func ValidateAndParseToken(tokenString string) (*TokenClaims, error) {
	cfg := config.Get()

	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(cfg.JWT.Secret), nil
	})
	if err != nil {
		if stderrors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.NewAppError(errors.ErrTokenExpired, "token expired", err)
		}
		return nil, errors.NewAppError(errors.ErrInvalidTokenFormat, "invalid token", err)
	}
	if !token.Valid {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "invalid token", nil)
	}

	return claims, nil
}

// TokenRemainingTTL returns how long a token stays valid; used to bound the
// blacklist entry on logout.
func TokenRemainingTTL(claims *TokenClaims) time.Duration {
	if claims.ExpiresAt == nil {
		return 0
	}
	remaining := time.Until(claims.ExpiresAt.Time)
	if remaining < 0 {
		return 0
	}
	return remaining
}
