package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/VasBayern/mobile-project/internal/middleware"
	"github.com/VasBayern/mobile-project/internal/usecase"
)

// /me と管理者向けユーザーAPI。
type UserHandler struct {
	uc *usecase.UserUsecase
}

// DI
func NewUserHandler(uc *usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

func (h *UserHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/me", h.me)
	g.PUT("/me", h.updateMe)
}

// RegisterAdminRoutes はAdminRoleGuard配下のエンドポイントを登録する。
func (h *UserHandler) RegisterAdminRoutes(g *echo.Group) {
	g.DELETE("/users/:id", h.destroy)
}

func (h *UserHandler) me(c echo.Context) error {
	userID, ok := c.Get(middleware.CtxUserIDKey).(int64)
	if !ok {
		return writeError(c, usecase.NewHTTPError(http.StatusUnauthorized, "unauthorized"))
	}

	user, err := h.uc.Get(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}
	return respondData(c, http.StatusOK, user)
}

func (h *UserHandler) updateMe(c echo.Context) error {
	userID, ok := c.Get(middleware.CtxUserIDKey).(int64)
	if !ok {
		return writeError(c, usecase.NewHTTPError(http.StatusUnauthorized, "unauthorized"))
	}

	sex, err := formInt(c, "sex")
	if err != nil {
		return badRequest(c, err.Error())
	}

	in := usecase.ProfileUpdateInput{
		Name:     formString(c, "name"),
		Phone:    formString(c, "phone"),
		Sex:      sex,
		Birthday: formString(c, "birthday"),
		Address:  formString(c, "address"),
	}

	file, closeFile, err := formFile(c, "avatar")
	if err == nil {
		defer closeFile()
		in.Avatar = file
	} else if err != errMissing {
		return badRequest(c, "invalid avatar")
	}

	user, err := h.uc.UpdateProfile(c.Request().Context(), userID, in)
	if err != nil {
		return writeError(c, err)
	}
	return respondData(c, http.StatusOK, user)
}

func (h *UserHandler) destroy(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}

	if err := h.uc.Destroy(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return respondMessage(c, http.StatusOK, "deleted")
}
