package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tradepost/marketplace-system/internal/api/metrics"
	"github.com/tradepost/marketplace-system/internal/core/ports"
)

// AdminHandler exposes the moderation surface. Every route it serves
// sits behind the AdminOnly middleware.
type AdminHandler struct {
	service ports.AdminService
}

func NewAdminHandler(service ports.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

// Stats handles GET /v1/admin/stats.
//
// @Summary      Aggregate platform counters
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.Stats
// @Failure      403  {object}  errorResponse
// @Router       /v1/admin/stats [get]
func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// Activity handles GET /v1/admin/activity.
//
// @Summary      Recent users and products
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.RecentActivity
// @Failure      403  {object}  errorResponse
// @Router       /v1/admin/activity [get]
func (h *AdminHandler) Activity(c echo.Context) error {
	activity, err := h.service.RecentActivity(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, activity)
}

// ListUsers handles GET /v1/admin/users.
//
// @Summary      List all users
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.User
// @Failure      403  {object}  errorResponse
// @Router       /v1/admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.service.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// ListProducts handles GET /v1/admin/products.
//
// @Summary      List all products including inactive
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Product
// @Failure      403  {object}  errorResponse
// @Router       /v1/admin/products [get]
func (h *AdminHandler) ListProducts(c echo.Context) error {
	products, err := h.service.ListProducts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// DeleteUser handles DELETE /v1/admin/users/:id.
//
// @Summary      Delete a user and their products
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  ports.CascadeResult
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	result, err := h.service.DeleteUserCascade(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}

	metrics.CascadeDeletesTotal.Inc()
	metrics.ProductsDeletedTotal.WithLabelValues("cascade").Add(float64(result.ProductsDeleted))
	return c.JSON(http.StatusOK, result)
}

// ToggleUserAdmin handles POST /v1/admin/users/:id/toggle-admin.
//
// @Summary      Flip a user's admin flag
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  domain.User
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/admin/users/{id}/toggle-admin [post]
func (h *AdminHandler) ToggleUserAdmin(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	user, err := h.service.ToggleUserAdmin(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// ToggleProductActive handles POST /v1/admin/products/:id/toggle-active.
//
// @Summary      Flip a product's active flag
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Product ID"
// @Success      200  {object}  domain.Product
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/admin/products/{id}/toggle-active [post]
func (h *AdminHandler) ToggleProductActive(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	product, err := h.service.ToggleProductActive(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}
