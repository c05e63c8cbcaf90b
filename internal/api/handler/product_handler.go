package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tradepost/marketplace-system/internal/api/metrics"
	"github.com/tradepost/marketplace-system/internal/core/ports"
)

// ProductHandler handles HTTP requests for listing operations.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// Create handles POST /v1/products.
//
// @Summary      Publish a new listing
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProductRequest  true  "Listing details"
// @Success      201   {object}  domain.Product
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	product, err := h.service.Create(c.Request().Context(), actor, toCreateProductInput(req))
	if err != nil {
		return err
	}

	metrics.ProductsCreatedTotal.WithLabelValues(string(product.Category)).Inc()
	return c.JSON(http.StatusCreated, product)
}

// Get handles GET /v1/products/:id. Listings are publicly readable once
// created; whether the route itself requires a token is decided by the
// router's catalog visibility setting.
//
// @Summary      Get a listing by ID
// @Tags         products
// @Produce      json
// @Param        id  path      string  true  "Product ID"
// @Success      200  {object}  domain.Product
// @Failure      404  {object}  errorResponse
// @Router       /v1/products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// List handles GET /v1/products.
//
// @Summary      List listings
// @Tags         products
// @Produce      json
// @Param        owner_id  query     string  false  "Filter by owner"
// @Param        category  query     string  false  "Filter by category"
// @Param        region    query     string  false  "Filter by region"
// @Param        active    query     bool    false  "Only active listings"
// @Success      200  {array}  domain.Product
// @Router       /v1/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	filter := ports.ListProductsFilter{
		OwnerID:    c.QueryParam("owner_id"),
		Category:   c.QueryParam("category"),
		Region:     c.QueryParam("region"),
		ActiveOnly: c.QueryParam("active") == "true",
	}

	products, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Update handles PATCH /v1/products/:id.
//
// @Summary      Update a listing
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Product ID"
// @Param        body  body      updateProductRequest  true  "Fields to change"
// @Success      200   {object}  domain.Product
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/products/{id} [patch]
func (h *ProductHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	product, err := h.service.Update(c.Request().Context(), actor, c.Param("id"), toUpdateProductInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// SetActive handles POST /v1/products/:id/active.
//
// @Summary      Activate or deactivate a listing
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Product ID"
// @Param        body  body      setActiveRequest  true  "Desired state"
// @Success      200   {object}  domain.Product
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/products/{id}/active [post]
func (h *ProductHandler) SetActive(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req setActiveRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	product, err := h.service.SetActive(c.Request().Context(), actor, c.Param("id"), req.Active)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Delete handles DELETE /v1/products/:id.
//
// @Summary      Delete a listing
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Product ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	id := c.Param("id")
	if err := h.service.Delete(c.Request().Context(), actor, id); err != nil {
		return err
	}

	cause := "owner"
	if actor.IsAdmin {
		cause = "admin"
	}
	metrics.ProductsDeletedTotal.WithLabelValues(cause).Inc()
	return c.JSON(http.StatusOK, map[string]string{"deleted": id})
}
