package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/VasBayern/mobile-project/internal/domain/model"
)

// AdminRoleGuard はadminロールのみ通す。
func AdminRoleGuard() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(CtxUserRoleKey).(int)
			if !ok {
				return unauthorized(c)
			}

			if model.Role(role) != model.RoleAdmin {
				return c.JSON(http.StatusForbidden, errorResponse{Message: "admin only"})
			}

			return next(c)
		}
	}
}
