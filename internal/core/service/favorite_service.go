package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/tradepost/marketplace-system/internal/core/domain"
	"github.com/tradepost/marketplace-system/internal/core/ports"
)

// FavoriteService manages the per-user list of favorited listings. Add is a
// check-then-append: two racing adds can both land, which is accepted over
// paying for a cross-document transaction.
type FavoriteService struct {
	users    ports.UserRepository
	products ports.ProductRepository
	log      zerolog.Logger
}

func NewFavoriteService(users ports.UserRepository, products ports.ProductRepository, log zerolog.Logger) *FavoriteService {
	return &FavoriteService{users: users, products: products, log: log}
}

// List resolves the actor's favorites to full products in insertion order.
// References to listings deleted since they were favorited are skipped, not
// pruned from the stored list.
func (s *FavoriteService) List(ctx context.Context, actor domain.Actor) ([]*domain.Product, error) {
	user, err := s.users.FindByID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	if len(user.Favorites) == 0 {
		return []*domain.Product{}, nil
	}
	return s.products.FindByIDs(ctx, user.Favorites)
}

func (s *FavoriteService) Add(ctx context.Context, actor domain.Actor, productID string) error {
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		return err
	}

	user, err := s.users.FindByID(ctx, actor.ID)
	if err != nil {
		return err
	}
	if user.HasFavorite(productID) {
		return domain.ErrDuplicateFavorite
	}

	if err := s.users.PushFavorite(ctx, actor.ID, productID); err != nil {
		s.log.Error().Err(err).Str("user_id", actor.ID).Str("product_id", productID).Msg("failed to add favorite")
		return err
	}
	return nil
}

// Remove pulls the product out of the favorites unconditionally: removing a
// non-member is a harmless no-op.
func (s *FavoriteService) Remove(ctx context.Context, actor domain.Actor, productID string) error {
	if _, err := s.users.FindByID(ctx, actor.ID); err != nil {
		return err
	}
	return s.users.PullFavorite(ctx, actor.ID, productID)
}
