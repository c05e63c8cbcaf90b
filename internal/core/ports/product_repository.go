package ports

import (
	"context"
	"time"

	"github.com/tradepost/marketplace-system/internal/core/domain"
)

// ListProductsFilter carries the query parameters for listing products.
// Zero values mean "no filter".
type ListProductsFilter struct {
	OwnerID    string
	Category   string
	Region     string
	ActiveOnly bool
}

// ProductRepository defines persistence operations for listings.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	// FindByIDs resolves a batch of product IDs, preserving the order of ids.
	// IDs that no longer resolve are silently skipped.
	FindByIDs(ctx context.Context, ids []string) ([]*domain.Product, error)
	List(ctx context.Context, filter ListProductsFilter) ([]*domain.Product, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.Product, error)
	// Update persists the mutable fields of p (everything except owner and
	// creation time) and returns the stored document.
	Update(ctx context.Context, p *domain.Product) (*domain.Product, error)
	SetActive(ctx context.Context, id string, active bool) error
	Delete(ctx context.Context, id string) error
	// DeleteByOwner removes every product owned by ownerID and returns the
	// number deleted.
	DeleteByOwner(ctx context.Context, ownerID string) (int64, error)

	Count(ctx context.Context) (int64, error)
	CountActive(ctx context.Context) (int64, error)
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)
}
