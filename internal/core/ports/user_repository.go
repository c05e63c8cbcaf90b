package ports

import (
	"context"
	"time"

	"github.com/tradepost/marketplace-system/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// Create inserts the user and returns it with its assigned ID.
	// Returns domain.ErrEmailTaken when the email unique index rejects it.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	// ListRecent returns the newest users by creation time, newest first.
	ListRecent(ctx context.Context, limit int) ([]*domain.User, error)
	Delete(ctx context.Context, id string) error
	SetAdmin(ctx context.Context, id string, isAdmin bool) error

	// PushFavorite appends productID to the favorites list. The membership
	// check belongs to the caller; two racing pushes may both land.
	PushFavorite(ctx context.Context, userID, productID string) error
	// PullFavorite removes productID from the favorites list. Removing a
	// non-member is a no-op.
	PullFavorite(ctx context.Context, userID, productID string) error

	Count(ctx context.Context) (int64, error)
	CountAdmins(ctx context.Context) (int64, error)
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)
}
