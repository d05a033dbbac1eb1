// Package token implements the token issuer/verifier collaborator with
// HS256-signed JWTs.
package token

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sps-group/user-api/internal/core/domain"
	"github.com/sps-group/user-api/internal/core/ports"
)

// JWTManager issues and verifies bearer tokens carrying the account's
// id, email and privilege type.
type JWTManager struct {
	secret string
	ttl    time.Duration
}

func NewJWTManager(secret string, ttl time.Duration) *JWTManager {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &JWTManager{secret: secret, ttl: ttl}
}

func (m *JWTManager) Issue(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   strconv.Itoa(user.ID),
		"email": user.Email,
		"type":  string(user.Type),
		"exp":   time.Now().Add(m.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(m.secret))
}

// Verify checks signature and expiry and extracts the claims payload.
// Any failure, including a malformed subject, maps to ErrInvalidToken;
// the caller cannot distinguish why a token was rejected.
func (m *JWTManager) Verify(token string) (*ports.TokenClaims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(m.secret), nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	id, err := strconv.Atoi(sub)
	if err != nil || id <= 0 {
		return nil, domain.ErrInvalidToken
	}

	email, _ := claims["email"].(string)
	typ, _ := claims["type"].(string)
	if !domain.UserType(typ).Valid() {
		return nil, domain.ErrInvalidToken
	}

	return &ports.TokenClaims{
		UserID: id,
		Email:  email,
		Type:   domain.UserType(typ),
	}, nil
}
