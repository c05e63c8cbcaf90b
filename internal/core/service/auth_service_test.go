package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/tradepost/marketplace-system/internal/core/domain"
	"github.com/tradepost/marketplace-system/internal/core/ports"
)

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour, discardLogger)

	user, err := svc.Register(context.Background(), ports.RegisterInput{
		FirstName: "Alice", LastName: "Smith", Email: "Alice@Example.com", Password: "pass123",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.Email != "alice@example.com" {
		t.Errorf("email must be normalised, got %q", user.Email)
	}
	if user.IsAdmin {
		t.Error("new accounts must never be admin")
	}
	if user.PasswordHash == "pass123" {
		t.Fatal("password must be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour, discardLogger)

	if _, err := svc.Register(context.Background(), ports.RegisterInput{Email: "a@x.com", Password: "p"}); err != domain.ErrInvalidCredentials {
		t.Fatalf("missing first name: expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Register(context.Background(), ports.RegisterInput{FirstName: "A", Password: "p"}); err != domain.ErrInvalidCredentials {
		t.Fatalf("missing email: expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Register(context.Background(), ports.RegisterInput{FirstName: "A", Email: "a@x.com"}); err != domain.ErrInvalidCredentials {
		t.Fatalf("missing password: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour, discardLogger)

	input := ports.RegisterInput{FirstName: "Bob", Email: "bob@example.com", Password: "pass"}
	if _, err := svc.Register(context.Background(), input); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), input); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour, discardLogger)

	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		FirstName: "Carol", Email: "carol@example.com", Password: "s3cret",
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "carol@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected a token")
	}
	if user == nil || user.FirstName != "Carol" {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["sub"] != user.ID {
		t.Errorf("sub claim: got %v, want %v", claims["sub"], user.ID)
	}
	if claims["is_admin"] != false {
		t.Errorf("is_admin claim: got %v, want false", claims["is_admin"])
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour, discardLogger)

	_, _ = svc.Register(context.Background(), ports.RegisterInput{
		FirstName: "Dora", Email: "dora@example.com", Password: "right",
	})

	if _, _, err := svc.Login(context.Background(), "dora@example.com", "wrong"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "nobody@example.com", "x"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_DeleteAccount(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour, discardLogger)

	user, _ := svc.Register(context.Background(), ports.RegisterInput{
		FirstName: "Eve", Email: "eve@example.com", Password: "pass",
	})

	if err := svc.DeleteAccount(context.Background(), domain.Actor{ID: user.ID}); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := repo.FindByID(context.Background(), user.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("account must be gone, got %v", err)
	}

	if err := svc.DeleteAccount(context.Background(), domain.Actor{ID: "missing"}); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("deleting a missing account must be not-found, got %v", err)
	}
}

func TestAuthService_Profile(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour, discardLogger)

	user, _ := svc.Register(context.Background(), ports.RegisterInput{
		FirstName: "Finn", Email: "finn@example.com", Password: "pass",
	})

	got, err := svc.Profile(context.Background(), domain.Actor{ID: user.ID})
	if err != nil {
		t.Fatalf("profile failed: %v", err)
	}
	if got.Email != "finn@example.com" {
		t.Errorf("unexpected profile: %+v", got)
	}
}
