package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/sps-group/user-api/internal/core/domain"
)

func newAuthService(repo *stubUserRepo) *AuthService {
	users := NewUserService(repo, &fakeHasher{}, zerolog.Nop())
	return NewAuthService(repo, users, &fakeHasher{}, &fakeIssuer{}, zerolog.Nop())
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	user, err := svc.Register(context.Background(), "alice@example.com", "Alice", "secret1")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.ID != 1 {
		t.Fatalf("expected id 1, got %d", user.ID)
	}
	if user.Type != domain.TypeUser {
		t.Fatalf("self-registration must always produce type user, got %s", user.Type)
	}
	if user.PassHash == "secret1" {
		t.Fatalf("expected password to be hashed")
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	repo.seed("Alice@Example.com", domain.TypeUser, "h:x")
	svc := newAuthService(repo)

	_, err := svc.Register(context.Background(), "alice@example.COM", "Alice", "secret1")
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestAuthService_Register_HasherFailure(t *testing.T) {
	repo := newStubUserRepo()
	users := NewUserService(repo, &fakeHasher{failHash: true}, zerolog.Nop())
	svc := NewAuthService(repo, users, &fakeHasher{failHash: true}, &fakeIssuer{}, zerolog.Nop())

	_, err := svc.Register(context.Background(), "alice@example.com", "Alice", "secret1")
	if err == nil {
		t.Fatalf("expected error")
	}
	// Infrastructure failures must stay distinct from every domain kind.
	for _, domainErr := range []error{
		domain.ErrDuplicateEmail, domain.ErrInvalidCredentials,
		domain.ErrForbidden, domain.ErrUserNotFound,
	} {
		if errors.Is(err, domainErr) {
			t.Fatalf("hasher failure surfaced as domain error %v", domainErr)
		}
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	u := repo.seed("alice@example.com", domain.TypeAdmin, "h:secret1")
	svc := newAuthService(repo)

	token, user, err := svc.Login(context.Background(), "alice@example.com", "secret1")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if token != "token-1" {
		t.Fatalf("unexpected token: %s", token)
	}
	if user.ID != u.ID || user.Type != domain.TypeAdmin {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestAuthService_Login_UniformFailure(t *testing.T) {
	repo := newStubUserRepo()
	repo.seed("known@x.com", domain.TypeUser, "h:rightpass")
	svc := newAuthService(repo)

	_, _, unknownErr := svc.Login(context.Background(), "unknown@x.com", "anything")
	_, _, wrongPassErr := svc.Login(context.Background(), "known@x.com", "wrongpass")

	if !errors.Is(unknownErr, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", unknownErr)
	}
	if !errors.Is(wrongPassErr, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPassErr)
	}
	// No distinguishable signal between the two failure modes.
	if unknownErr.Error() != wrongPassErr.Error() {
		t.Fatalf("failure messages differ: %q vs %q", unknownErr, wrongPassErr)
	}
}

func TestAuthService_Login_SignerFailure(t *testing.T) {
	repo := newStubUserRepo()
	repo.seed("alice@example.com", domain.TypeUser, "h:secret1")
	users := NewUserService(repo, &fakeHasher{}, zerolog.Nop())
	svc := NewAuthService(repo, users, &fakeHasher{}, &fakeIssuer{failIssue: true}, zerolog.Nop())

	_, _, err := svc.Login(context.Background(), "alice@example.com", "secret1")
	if err == nil || errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected infrastructure error, got %v", err)
	}
}
