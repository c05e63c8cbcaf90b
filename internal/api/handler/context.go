package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tradepost/marketplace-system/internal/core/domain"
)

// ctxActor extracts the claim injected by the Auth middleware into a
// domain.Actor. A missing subject means the middleware did not run or the
// token carried no identity; reject with 401 before any service call.
func ctxActor(c echo.Context) (domain.Actor, error) {
	userID, _ := c.Get("user_id").(string)
	if userID == "" {
		return domain.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	isAdmin, _ := c.Get("is_admin").(bool)
	return domain.Actor{ID: userID, IsAdmin: isAdmin}, nil
}
