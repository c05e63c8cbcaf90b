package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tradepost/marketplace-system/internal/api/metrics"
	"github.com/tradepost/marketplace-system/internal/core/domain"
	"github.com/tradepost/marketplace-system/internal/core/ports"
)

// FavoriteHandler handles HTTP requests for the favorites relation.
type FavoriteHandler struct {
	service ports.FavoriteService
}

func NewFavoriteHandler(service ports.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{service: service}
}

// List handles GET /v1/favorites.
//
// @Summary      List own favorites
// @Tags         favorites
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Product
// @Router       /v1/favorites [get]
func (h *FavoriteHandler) List(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	products, err := h.service.List(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Add handles POST /v1/favorites/:productId.
//
// @Summary      Add a favorite
// @Tags         favorites
// @Produce      json
// @Security     BearerAuth
// @Param        productId  path      string  true  "Product ID"
// @Success      201  {object}  map[string]string
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /v1/favorites/{productId} [post]
func (h *FavoriteHandler) Add(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	productID := c.Param("productId")
	if err := h.service.Add(c.Request().Context(), actor, productID); err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateFavorite):
			metrics.FavoriteOpsTotal.WithLabelValues("add", "conflict").Inc()
		default:
			metrics.FavoriteOpsTotal.WithLabelValues("add", "error").Inc()
		}
		return err
	}

	metrics.FavoriteOpsTotal.WithLabelValues("add", "ok").Inc()
	return c.JSON(http.StatusCreated, map[string]string{"added": productID})
}

// Remove handles DELETE /v1/favorites/:productId.
//
// @Summary      Remove a favorite
// @Tags         favorites
// @Produce      json
// @Security     BearerAuth
// @Param        productId  path      string  true  "Product ID"
// @Success      200  {object}  map[string]string
// @Router       /v1/favorites/{productId} [delete]
func (h *FavoriteHandler) Remove(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	productID := c.Param("productId")
	if err := h.service.Remove(c.Request().Context(), actor, productID); err != nil {
		metrics.FavoriteOpsTotal.WithLabelValues("remove", "error").Inc()
		return err
	}

	metrics.FavoriteOpsTotal.WithLabelValues("remove", "ok").Inc()
	return c.JSON(http.StatusOK, map[string]string{"removed": productID})
}
