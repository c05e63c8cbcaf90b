package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// AdminOnly rejects requests whose resolved claim is not an administrator.
// Runs after Auth; a missing claim reads as non-admin.
func AdminOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			isAdmin, _ := c.Get("is_admin").(bool)
			if !isAdmin {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
