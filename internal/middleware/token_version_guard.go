package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/VasBayern/mobile-project/internal/repository"
)

// TokenVersionGuard はtvクレームがDBのtoken_versionと一致しないトークンを拒否する。
// ログアウトやパスワード変更での失効はこの仕組みで効く。
func TokenVersionGuard(users repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, ok := c.Get(CtxUserIDKey).(int64)
			if !ok || userID <= 0 {
				return unauthorized(c)
			}

			tv, ok := c.Get(CtxTokenVersionKey).(int)
			if !ok || tv < 0 {
				return unauthorized(c)
			}

			user, err := users.FindByID(c.Request().Context(), userID)
			if err != nil {
				return unauthorized(c)
			}

			if user.TokenVersion != tv {
				return unauthorized(c)
			}

			return next(c)
		}
	}
}
