package server

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/VasBayern/mobile-project/internal/config"
	"github.com/VasBayern/mobile-project/internal/handler"
	"github.com/VasBayern/mobile-project/internal/middleware"
	"github.com/VasBayern/mobile-project/internal/repository"
)

// Handlers はルーターに載せるハンドラ一式。
type Handlers struct {
	Auth     *handler.AuthHandler
	User     *handler.UserHandler
	Category *handler.CategoryHandler
	Brand    *handler.BrandHandler
	Color    *handler.ColorHandler
	Ram      *handler.RamHandler
	Rom      *handler.RomHandler
	Product  *handler.ProductHandler
}

// New はロギング・リカバリ・全ルートを載せたechoを組み立てる。
// ★ /api/admin 配下は全部「JWT必須 + token_version一致」。
// ユーザー削除だけはさらにadminロール限定。
func New(cfg config.Config, logger zerolog.Logger, users repository.UserRepository, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomw.Recover())
	e.Use(requestLogger(logger))

	// アップロード画像の配信
	e.Static("/storage", cfg.StorageDir)

	api := e.Group("/api")

	h.Auth.RegisterPublicRoutes(api.Group("/auth"))

	authed := api.Group("", middleware.AuthJWT(cfg), middleware.TokenVersionGuard(users))
	h.Auth.RegisterProtectedRoutes(authed.Group("/auth"))
	h.User.RegisterRoutes(authed)

	admin := authed.Group("/admin")
	h.Category.RegisterRoutes(admin)
	h.Brand.RegisterRoutes(admin)
	h.Color.RegisterRoutes(admin)
	h.Ram.RegisterRoutes(admin)
	h.Rom.RegisterRoutes(admin)
	h.Product.RegisterRoutes(admin)

	h.User.RegisterAdminRoutes(authed.Group("/admin", middleware.AdminRoleGuard()))

	return e
}

func requestLogger(logger zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			requestID := uuid.NewString()
			c.Response().Header().Set(echo.HeaderXRequestID, requestID)

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			logger.Info().
				Str("request_id", requestID).
				Str("method", c.Request().Method).
				Str("path", c.Request().URL.Path).
				Int("status", c.Response().Status).
				Dur("latency", time.Since(start)).
				Msg("request")

			return err
		}
	}
}
