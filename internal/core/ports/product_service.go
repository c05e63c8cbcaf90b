package ports

import (
	"context"

	"github.com/tradepost/marketplace-system/internal/core/domain"
)

// ImageInput references an externally hosted listing picture.
type ImageInput struct {
	URL        string
	ExternalID string
}

// CreateProductInput carries the validated draft of a new listing.
type CreateProductInput struct {
	Name         string
	Description  string
	Price        float64
	Category     string
	Region       string
	State        string
	City         string
	Images       []ImageInput
	ContactEmail string
}

// UpdateProductInput is a partial patch: nil fields are left untouched.
// The owner is immutable and deliberately absent.
type UpdateProductInput struct {
	Name         *string
	Description  *string
	Price        *float64
	Category     *string
	Region       *string
	State        *string
	City         *string
	Images       []ImageInput
	ContactEmail *string
	IsActive     *bool
}

// ProductService defines the listing lifecycle use cases.
type ProductService interface {
	Create(ctx context.Context, actor domain.Actor, input CreateProductInput) (*domain.Product, error)
	// Get is a public read: any caller may fetch any listing by ID.
	Get(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context, filter ListProductsFilter) ([]*domain.Product, error)
	Update(ctx context.Context, actor domain.Actor, id string, patch UpdateProductInput) (*domain.Product, error)
	SetActive(ctx context.Context, actor domain.Actor, id string, active bool) (*domain.Product, error)
	Delete(ctx context.Context, actor domain.Actor, id string) error
}
