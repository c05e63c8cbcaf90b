package ports

import (
	"context"

	"github.com/tradepost/marketplace-system/internal/core/domain"
)

// Stats is the aggregate dashboard view. Recomputed on every call.
type Stats struct {
	TotalUsers      int64 `json:"total_users"`
	TotalProducts   int64 `json:"total_products"`
	ActiveProducts  int64 `json:"active_products"`
	AdminUsers      int64 `json:"admin_users"`
	NewUsers30d     int64 `json:"new_users_30d"`
	NewProducts30d  int64 `json:"new_products_30d"`
}

// RecentActivity lists the newest accounts and listings for the dashboard.
type RecentActivity struct {
	Users    []*domain.User    `json:"users"`
	Products []*domain.Product `json:"products"`
}

// CascadeResult reports what a cascading user deletion removed.
type CascadeResult struct {
	UserID          string `json:"user_id"`
	ProductsDeleted int64  `json:"products_deleted"`
}

// AdminService is the moderation facade: elevated-privilege composition of
// the user, product and policy layers.
type AdminService interface {
	Stats(ctx context.Context) (*Stats, error)
	RecentActivity(ctx context.Context) (*RecentActivity, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
	ListProducts(ctx context.Context) ([]*domain.Product, error)
	// DeleteUserCascade deletes the target's products first, then the
	// account. Safe to re-invoke after a partial failure.
	DeleteUserCascade(ctx context.Context, actor domain.Actor, targetUserID string) (*CascadeResult, error)
	// ToggleUserAdmin flips the target's admin flag and returns the updated
	// user. Admins cannot toggle themselves.
	ToggleUserAdmin(ctx context.Context, actor domain.Actor, targetUserID string) (*domain.User, error)
	// ToggleProductActive flips a listing's active flag and returns it.
	ToggleProductActive(ctx context.Context, actor domain.Actor, productID string) (*domain.Product, error)
}
