package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VasBayern/mobile-project/internal/config"
	"github.com/VasBayern/mobile-project/internal/middleware"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func validClaims() jwt.MapClaims {
	now := time.Now()
	return jwt.MapClaims{
		"sub":  int64(7),
		"role": 1,
		"tv":   2,
		"iat":  now.Unix(),
		"exp":  now.Add(time.Hour).Unix(),
	}
}

func runAuthJWT(t *testing.T, authz string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var captured echo.Context
	h := middleware.AuthJWT(config.Config{JWTSecret: testSecret})(func(c echo.Context) error {
		captured = c
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, h(c))
	return rec, captured
}

func TestAuthJWT_ValidToken(t *testing.T) {
	token := signToken(t, testSecret, validClaims())

	rec, c := runAuthJWT(t, "Bearer "+token)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, int64(7), c.Get(middleware.CtxUserIDKey))
	assert.Equal(t, 1, c.Get(middleware.CtxUserRoleKey))
	assert.Equal(t, 2, c.Get(middleware.CtxTokenVersionKey))
}

func TestAuthJWT_MissingHeader(t *testing.T) {
	rec, _ := runAuthJWT(t, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthJWT_WrongScheme(t *testing.T) {
	rec, _ := runAuthJWT(t, "Basic abcdef")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthJWT_WrongSecret(t *testing.T) {
	token := signToken(t, "other-secret", validClaims())

	rec, _ := runAuthJWT(t, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthJWT_Expired(t *testing.T) {
	claims := validClaims()
	claims["exp"] = time.Now().Add(-time.Hour).Unix()
	token := signToken(t, testSecret, claims)

	rec, _ := runAuthJWT(t, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func runAdminGuard(t *testing.T, role interface{}) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != nil {
		c.Set(middleware.CtxUserRoleKey, role)
	}

	h := middleware.AdminRoleGuard()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, h(c))
	return rec
}

func TestAdminRoleGuard(t *testing.T) {
	assert.Equal(t, http.StatusOK, runAdminGuard(t, 1).Code)
	assert.Equal(t, http.StatusForbidden, runAdminGuard(t, 0).Code)
	assert.Equal(t, http.StatusUnauthorized, runAdminGuard(t, nil).Code)
}
