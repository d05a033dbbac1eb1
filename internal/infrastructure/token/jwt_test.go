package token

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sps-group/user-api/internal/core/domain"
)

func TestJWTManager_IssueVerify_RoundTrip(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)

	signed, err := m.Issue(&domain.User{ID: 7, Email: "a@x.com", Type: domain.TypeAdmin})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := m.Verify(signed)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.UserID != 7 || claims.Email != "a@x.com" || claims.Type != domain.TypeAdmin {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestJWTManager_Verify_WrongSecret(t *testing.T) {
	issuer := NewJWTManager("secret-a", time.Hour)
	verifier := NewJWTManager("secret-b", time.Hour)

	signed, err := issuer.Issue(&domain.User{ID: 1, Email: "a@x.com", Type: domain.TypeUser})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := verifier.Verify(signed); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestJWTManager_Verify_Expired(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   "1",
		"email": "a@x.com",
		"type":  "user",
		"exp":   time.Now().Add(-time.Minute).Unix(),
	})
	signed, err := expired.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := m.Verify(signed); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestJWTManager_Verify_MalformedClaims(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)

	cases := map[string]jwt.MapClaims{
		"missing subject": {"email": "a@x.com", "type": "user", "exp": time.Now().Add(time.Hour).Unix()},
		"bad subject":     {"sub": "zero", "email": "a@x.com", "type": "user", "exp": time.Now().Add(time.Hour).Unix()},
		"unknown type":    {"sub": "1", "email": "a@x.com", "type": "root", "exp": time.Now().Add(time.Hour).Unix()},
	}

	for name, claims := range cases {
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
		if err != nil {
			t.Fatalf("%s: sign: %v", name, err)
		}
		if _, err := m.Verify(signed); !errors.Is(err, domain.ErrInvalidToken) {
			t.Fatalf("%s: expected ErrInvalidToken, got %v", name, err)
		}
	}
}
