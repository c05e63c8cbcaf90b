package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tradepost/marketplace-system/internal/core/domain"
	"github.com/tradepost/marketplace-system/internal/core/ports"
)

// ProductService implements the listing lifecycle. Existence is always
// checked before ownership, so a missing listing reports not-found even to
// a caller who would not have been allowed to touch it.
type ProductService struct {
	repo ports.ProductRepository
	log  zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, log zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, log: log}
}

func (s *ProductService) Create(ctx context.Context, actor domain.Actor, input ports.CreateProductInput) (*domain.Product, error) {
	if err := validateDraft(input); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	product := &domain.Product{
		Name:         input.Name,
		Description:  input.Description,
		Price:        input.Price,
		Category:     domain.Category(input.Category),
		Region:       domain.Region(input.Region),
		State:        input.State,
		City:         input.City,
		Images:       toImages(input.Images),
		ContactEmail: input.ContactEmail,
		OwnerID:      actor.ID,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create product")
		return nil, err
	}

	s.log.Info().Str("product_id", created.ID).Str("owner_id", actor.ID).Msg("product created")
	return created, nil
}

func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProductService) List(ctx context.Context, filter ports.ListProductsFilter) ([]*domain.Product, error) {
	return s.repo.List(ctx, filter)
}

func (s *ProductService) Update(ctx context.Context, actor domain.Actor, id string, patch ports.UpdateProductInput) (*domain.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanMutateProduct(actor, product) {
		return nil, domain.ErrForbidden
	}

	if err := applyPatch(product, patch); err != nil {
		return nil, err
	}
	product.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, product)
	if err != nil {
		s.log.Error().Err(err).Str("product_id", id).Msg("failed to update product")
		return nil, err
	}

	s.log.Info().Str("product_id", id).Str("actor_id", actor.ID).Msg("product updated")
	return updated, nil
}

func (s *ProductService) SetActive(ctx context.Context, actor domain.Actor, id string, active bool) (*domain.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanMutateProduct(actor, product) {
		return nil, domain.ErrForbidden
	}

	if err := s.repo.SetActive(ctx, id, active); err != nil {
		return nil, err
	}
	product.IsActive = active
	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, actor domain.Actor, id string) error {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !domain.CanMutateProduct(actor, product) {
		return domain.ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("product_id", id).Str("actor_id", actor.ID).Msg("product deleted")
	return nil
}

func validateDraft(input ports.CreateProductInput) error {
	switch {
	case input.Name == "":
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	case len(input.Name) > domain.MaxProductNameLen:
		return fmt.Errorf("%w: name exceeds %d characters", domain.ErrValidation, domain.MaxProductNameLen)
	case input.Description == "":
		return fmt.Errorf("%w: description is required", domain.ErrValidation)
	case len(input.Description) > domain.MaxProductDescriptionLen:
		return fmt.Errorf("%w: description exceeds %d characters", domain.ErrValidation, domain.MaxProductDescriptionLen)
	case input.Price < 0:
		return fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	case !domain.Category(input.Category).Valid():
		return fmt.Errorf("%w: unknown category %q", domain.ErrValidation, input.Category)
	case !domain.Region(input.Region).Valid():
		return fmt.Errorf("%w: unknown region %q", domain.ErrValidation, input.Region)
	case input.ContactEmail == "":
		return fmt.Errorf("%w: contact_email is required", domain.ErrValidation)
	}
	return nil
}

// applyPatch copies the present patch fields onto the product. The owner is
// immutable and has no corresponding patch field.
func applyPatch(p *domain.Product, patch ports.UpdateProductInput) error {
	if patch.Name != nil {
		if *patch.Name == "" || len(*patch.Name) > domain.MaxProductNameLen {
			return fmt.Errorf("%w: invalid name", domain.ErrValidation)
		}
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		if *patch.Description == "" || len(*patch.Description) > domain.MaxProductDescriptionLen {
			return fmt.Errorf("%w: invalid description", domain.ErrValidation)
		}
		p.Description = *patch.Description
	}
	if patch.Price != nil {
		if *patch.Price < 0 {
			return fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
		}
		p.Price = *patch.Price
	}
	if patch.Category != nil {
		c := domain.Category(*patch.Category)
		if !c.Valid() {
			return fmt.Errorf("%w: unknown category %q", domain.ErrValidation, *patch.Category)
		}
		p.Category = c
	}
	if patch.Region != nil {
		r := domain.Region(*patch.Region)
		if !r.Valid() {
			return fmt.Errorf("%w: unknown region %q", domain.ErrValidation, *patch.Region)
		}
		p.Region = r
	}
	if patch.State != nil {
		p.State = *patch.State
	}
	if patch.City != nil {
		p.City = *patch.City
	}
	if patch.Images != nil {
		p.Images = toImages(patch.Images)
	}
	if patch.ContactEmail != nil {
		if *patch.ContactEmail == "" {
			return fmt.Errorf("%w: contact_email must not be empty", domain.ErrValidation)
		}
		p.ContactEmail = *patch.ContactEmail
	}
	if patch.IsActive != nil {
		p.IsActive = *patch.IsActive
	}
	return nil
}

func toImages(in []ports.ImageInput) []domain.Image {
	if len(in) == 0 {
		return nil
	}
	images := make([]domain.Image, 0, len(in))
	for _, img := range in {
		images = append(images, domain.Image{URL: img.URL, ExternalID: img.ExternalID})
	}
	return images
}
