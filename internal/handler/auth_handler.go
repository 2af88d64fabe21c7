package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/VasBayern/mobile-project/internal/middleware"
	"github.com/VasBayern/mobile-project/internal/usecase"
)

// /authのHTTP
type AuthHandler struct {
	uc *usecase.AuthUsecase
}

// DI
func NewAuthHandler(uc *usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// RegisterPublicRoutes はトークン不要のエンドポイントを登録する。
func (h *AuthHandler) RegisterPublicRoutes(g *echo.Group) {
	g.POST("/register", h.register)
	g.POST("/login", h.login)
	g.POST("/forgot-password", h.forgotPassword)
	g.POST("/reset-password", h.resetPassword)
}

// RegisterProtectedRoutes はAuthJWT配下のエンドポイントを登録する。
func (h *AuthHandler) RegisterProtectedRoutes(g *echo.Group) {
	g.POST("/logout", h.logout)
	g.PUT("/change-password", h.changePassword)
}

type registerRequest struct {
	Name                 string `json:"name" form:"name"`
	Email                string `json:"email" form:"email"`
	Password             string `json:"password" form:"password"`
	PasswordConfirmation string `json:"password_confirmation" form:"password_confirmation"`
}

type loginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type forgotPasswordRequest struct {
	Email string `json:"email" form:"email"`
}

type resetPasswordRequest struct {
	Token                string `json:"token" form:"token"`
	Password             string `json:"password" form:"password"`
	PasswordConfirmation string `json:"password_confirmation" form:"password_confirmation"`
}

type changePasswordRequest struct {
	CurrentPassword      string `json:"current_password" form:"current_password"`
	Password             string `json:"password" form:"password"`
	PasswordConfirmation string `json:"password_confirmation" form:"password_confirmation"`
}

func (h *AuthHandler) register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request")
	}

	user, err := h.uc.Register(c.Request().Context(), usecase.RegisterInput{
		Name:                 req.Name,
		Email:                req.Email,
		Password:             req.Password,
		PasswordConfirmation: req.PasswordConfirmation,
	})
	if err != nil {
		return writeError(c, err)
	}
	return respondData(c, http.StatusCreated, user)
}

func (h *AuthHandler) login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request")
	}

	out, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return writeError(c, err)
	}
	return respondData(c, http.StatusOK, out)
}

func (h *AuthHandler) logout(c echo.Context) error {
	userID, ok := c.Get(middleware.CtxUserIDKey).(int64)
	if !ok {
		return writeError(c, usecase.NewHTTPError(http.StatusUnauthorized, "unauthorized"))
	}

	if err := h.uc.Logout(c.Request().Context(), userID); err != nil {
		return writeError(c, err)
	}
	return respondMessage(c, http.StatusOK, "logged out")
}

func (h *AuthHandler) changePassword(c echo.Context) error {
	userID, ok := c.Get(middleware.CtxUserIDKey).(int64)
	if !ok {
		return writeError(c, usecase.NewHTTPError(http.StatusUnauthorized, "unauthorized"))
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request")
	}

	out, err := h.uc.ChangePassword(c.Request().Context(), userID, usecase.ChangePasswordInput{
		CurrentPassword:      req.CurrentPassword,
		Password:             req.Password,
		PasswordConfirmation: req.PasswordConfirmation,
	})
	if err != nil {
		return writeError(c, err)
	}
	return respondData(c, http.StatusOK, out)
}

func (h *AuthHandler) forgotPassword(c echo.Context) error {
	var req forgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request")
	}

	out, err := h.uc.ForgotPassword(c.Request().Context(), req.Email)
	if err != nil {
		return writeError(c, err)
	}
	return respondData(c, http.StatusOK, out)
}

func (h *AuthHandler) resetPassword(c echo.Context) error {
	var req resetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request")
	}

	if err := h.uc.ResetPassword(c.Request().Context(), usecase.ResetPasswordInput{
		Token:                req.Token,
		Password:             req.Password,
		PasswordConfirmation: req.PasswordConfirmation,
	}); err != nil {
		return writeError(c, err)
	}
	return respondMessage(c, http.StatusOK, "password reset")
}
