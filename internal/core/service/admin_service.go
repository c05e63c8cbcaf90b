package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tradepost/marketplace-system/internal/core/domain"
	"github.com/tradepost/marketplace-system/internal/core/ports"
)

const recentLimit = 10
const recentWindow = 30 * 24 * time.Hour

// AdminService is the moderation facade: the elevated-privilege composition
// of the user and product layers plus aggregate dashboard reads.
type AdminService struct {
	users    ports.UserRepository
	products ports.ProductRepository
	log      zerolog.Logger
}

func NewAdminService(users ports.UserRepository, products ports.ProductRepository, log zerolog.Logger) *AdminService {
	return &AdminService{users: users, products: products, log: log}
}

// Stats recomputes the dashboard counters on every call. No caching: a
// moderation dashboard tolerates a momentarily stale read anyway.
func (s *AdminService) Stats(ctx context.Context) (*ports.Stats, error) {
	since := time.Now().UTC().Add(-recentWindow)

	totalUsers, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	adminUsers, err := s.users.CountAdmins(ctx)
	if err != nil {
		return nil, err
	}
	newUsers, err := s.users.CountCreatedSince(ctx, since)
	if err != nil {
		return nil, err
	}
	totalProducts, err := s.products.Count(ctx)
	if err != nil {
		return nil, err
	}
	activeProducts, err := s.products.CountActive(ctx)
	if err != nil {
		return nil, err
	}
	newProducts, err := s.products.CountCreatedSince(ctx, since)
	if err != nil {
		return nil, err
	}

	return &ports.Stats{
		TotalUsers:     totalUsers,
		TotalProducts:  totalProducts,
		ActiveProducts: activeProducts,
		AdminUsers:     adminUsers,
		NewUsers30d:    newUsers,
		NewProducts30d: newProducts,
	}, nil
}

func (s *AdminService) RecentActivity(ctx context.Context) (*ports.RecentActivity, error) {
	users, err := s.users.ListRecent(ctx, recentLimit)
	if err != nil {
		return nil, err
	}
	products, err := s.products.ListRecent(ctx, recentLimit)
	if err != nil {
		return nil, err
	}
	return &ports.RecentActivity{Users: users, Products: products}, nil
}

func (s *AdminService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}

func (s *AdminService) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	return s.products.List(ctx, ports.ListProductsFilter{})
}

// DeleteUserCascade deletes the target's products first, then the account.
// The two steps are not transactional: a failure between them leaves the
// products gone and the user intact, and re-invoking completes the job.
// Messages and other users' favorites referencing the target are left alone.
func (s *AdminService) DeleteUserCascade(ctx context.Context, actor domain.Actor, targetUserID string) (*ports.CascadeResult, error) {
	if _, err := s.users.FindByID(ctx, targetUserID); err != nil {
		return nil, err
	}
	if !domain.CanDeleteUser(actor, targetUserID) {
		return nil, domain.ErrForbidden
	}

	deleted, err := s.products.DeleteByOwner(ctx, targetUserID)
	if err != nil {
		s.log.Error().Err(err).Str("user_id", targetUserID).Msg("cascade: failed to delete owned products")
		return nil, err
	}

	if err := s.users.Delete(ctx, targetUserID); err != nil {
		s.log.Error().Err(err).Str("user_id", targetUserID).Int64("products_deleted", deleted).
			Msg("cascade: products removed but user deletion failed")
		return nil, err
	}

	s.log.Info().
		Str("user_id", targetUserID).
		Str("actor_id", actor.ID).
		Int64("products_deleted", deleted).
		Msg("user deleted with cascade")

	return &ports.CascadeResult{UserID: targetUserID, ProductsDeleted: deleted}, nil
}

func (s *AdminService) ToggleUserAdmin(ctx context.Context, actor domain.Actor, targetUserID string) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, targetUserID)
	if err != nil {
		return nil, err
	}
	if !domain.CanToggleAdmin(actor, targetUserID) {
		return nil, domain.ErrForbidden
	}

	if err := s.users.SetAdmin(ctx, targetUserID, !user.IsAdmin); err != nil {
		return nil, err
	}
	user.IsAdmin = !user.IsAdmin

	s.log.Info().Str("user_id", targetUserID).Bool("is_admin", user.IsAdmin).Str("actor_id", actor.ID).Msg("admin flag toggled")
	return user, nil
}

func (s *AdminService) ToggleProductActive(ctx context.Context, actor domain.Actor, productID string) (*domain.Product, error) {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !domain.CanMutateProduct(actor, product) {
		return nil, domain.ErrForbidden
	}

	if err := s.products.SetActive(ctx, productID, !product.IsActive); err != nil {
		return nil, err
	}
	product.IsActive = !product.IsActive

	s.log.Info().Str("product_id", productID).Bool("is_active", product.IsActive).Str("actor_id", actor.ID).Msg("product active flag toggled")
	return product, nil
}
