package ports

import (
	"context"

	"github.com/tradepost/marketplace-system/internal/core/domain"
)

// FavoriteService manages the per-user list of favorited listings.
type FavoriteService interface {
	// List returns the actor's favorites resolved to full products, in
	// insertion order. References to deleted products are skipped.
	List(ctx context.Context, actor domain.Actor) ([]*domain.Product, error)
	// Add appends the product to the actor's favorites.
	// Returns domain.ErrDuplicateFavorite when already present.
	Add(ctx context.Context, actor domain.Actor, productID string) error
	// Remove drops the product from the actor's favorites. Removing a
	// non-member is a no-op success.
	Remove(ctx context.Context, actor domain.Actor, productID string) error
}
