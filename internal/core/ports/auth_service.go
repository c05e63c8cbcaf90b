package ports

import (
	"context"

	"github.com/tradepost/marketplace-system/internal/core/domain"
)

// RegisterInput carries the already-validated fields for a new account.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// AuthService implements registration, login and self-service account
// operations. It is the only component that sees cleartext passwords.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login verifies credentials and returns a signed bearer token plus the
	// authenticated user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Profile returns the actor's own account.
	Profile(ctx context.Context, actor domain.Actor) (*domain.User, error)
	// DeleteAccount removes the actor's own account. Owned products are not
	// cascaded on this path; only the moderation path cascades.
	DeleteAccount(ctx context.Context, actor domain.Actor) error
}
