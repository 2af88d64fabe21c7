package usecase_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/VasBayern/mobile-project/internal/domain/model"
	repo "github.com/VasBayern/mobile-project/internal/repository"
	"github.com/VasBayern/mobile-project/internal/usecase"
)

type issuerStub struct{ lastVersion int }

func (i *issuerStub) Issue(userID int64, role model.Role, tokenVersion int, now time.Time) (string, time.Time, error) {
	i.lastVersion = tokenVersion
	return "signed-token", now.Add(time.Hour), nil
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func newAuthUsecase(users *UserRepoMock) (*usecase.AuthUsecase, *issuerStub) {
	issuer := &issuerStub{}
	cfg := testConfig()
	cfg.ResetTokenTTL = 30 * time.Minute
	return usecase.NewAuthUsecase(users, issuer, cfg, testClock()), issuer
}

func TestRegister_Validation(t *testing.T) {
	uc, _ := newAuthUsecase(new(UserRepoMock))

	_, err := uc.Register(context.Background(), usecase.RegisterInput{
		Email:                "not-an-email",
		Password:             "short",
		PasswordConfirmation: "short",
	})
	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnprocessableEntity, he.Status)
	assert.Contains(t, he.Fields, "name")
	assert.Contains(t, he.Fields, "email")
	assert.Contains(t, he.Fields, "password")
}

func TestRegister_DuplicateEmail(t *testing.T) {
	users := new(UserRepoMock)
	uc, _ := newAuthUsecase(users)

	users.On("FindByEmail", mock.Anything, "taken@example.com").Return(model.User{ID: 1}, nil)

	_, err := uc.Register(context.Background(), usecase.RegisterInput{
		Name:                 "Someone",
		Email:                "taken@example.com",
		Password:             "password123",
		PasswordConfirmation: "password123",
	})
	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Contains(t, he.Fields, "email")
}

func TestRegister_SetsGravatarAndGuestRole(t *testing.T) {
	users := new(UserRepoMock)
	uc, _ := newAuthUsecase(users)

	users.On("FindByEmail", mock.Anything, "new@example.com").Return(model.User{}, repo.ErrNotFound)
	users.On("Create", mock.Anything, mock.MatchedBy(func(u model.User) bool {
		return u.Email == "new@example.com" &&
			u.Role == model.RoleGuest &&
			u.Avatar != "" &&
			bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("password123")) == nil
	})).Return(model.User{ID: 10, Email: "new@example.com"}, nil)

	out, err := uc.Register(context.Background(), usecase.RegisterInput{
		Name:                 "New User",
		Email:                "New@Example.com",
		Password:             "password123",
		PasswordConfirmation: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), out.ID)

	users.AssertExpectations(t)
}

func TestLogin_WrongPassword(t *testing.T) {
	users := new(UserRepoMock)
	uc, _ := newAuthUsecase(users)

	users.On("FindByEmail", mock.Anything, "user@example.com").
		Return(model.User{ID: 1, PasswordHash: hashOf(t, "correct-password")}, nil)

	_, err := uc.Login(context.Background(), usecase.LoginInput{
		Email:    "user@example.com",
		Password: "wrong-password",
	})
	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnprocessableEntity, he.Status)
}

func TestLogin_IssuesBearerToken(t *testing.T) {
	users := new(UserRepoMock)
	uc, issuer := newAuthUsecase(users)

	users.On("FindByEmail", mock.Anything, "user@example.com").
		Return(model.User{ID: 1, TokenVersion: 3, PasswordHash: hashOf(t, "correct-password")}, nil)

	out, err := uc.Login(context.Background(), usecase.LoginInput{
		Email:    "user@example.com",
		Password: "correct-password",
	})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", out.AccessToken)
	assert.Equal(t, "Bearer", out.TokenType)
	assert.Equal(t, 3, issuer.lastVersion)
}

func TestLogout_BumpsTokenVersion(t *testing.T) {
	users := new(UserRepoMock)
	uc, _ := newAuthUsecase(users)

	users.On("BumpTokenVersion", mock.Anything, int64(1)).Return(4, nil)

	require.NoError(t, uc.Logout(context.Background(), 1))
	users.AssertExpectations(t)
}

func TestChangePassword_WrongCurrent(t *testing.T) {
	users := new(UserRepoMock)
	uc, _ := newAuthUsecase(users)

	users.On("FindByID", mock.Anything, int64(1)).
		Return(model.User{ID: 1, PasswordHash: hashOf(t, "old-password")}, nil)

	_, err := uc.ChangePassword(context.Background(), 1, usecase.ChangePasswordInput{
		CurrentPassword:      "not-the-old-one",
		Password:             "new-password",
		PasswordConfirmation: "new-password",
	})
	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Contains(t, he.Fields, "current_password")

	users.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
}

func TestChangePassword_IssuesFreshToken(t *testing.T) {
	users := new(UserRepoMock)
	uc, issuer := newAuthUsecase(users)

	users.On("FindByID", mock.Anything, int64(1)).
		Return(model.User{ID: 1, TokenVersion: 2, PasswordHash: hashOf(t, "old-password")}, nil)
	users.On("UpdatePassword", mock.Anything, int64(1), mock.Anything).Return(nil)
	users.On("BumpTokenVersion", mock.Anything, int64(1)).Return(3, nil)

	out, err := uc.ChangePassword(context.Background(), 1, usecase.ChangePasswordInput{
		CurrentPassword:      "old-password",
		Password:             "new-password",
		PasswordConfirmation: "new-password",
	})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", out.AccessToken)
	// トークンはbump後のversionを持つので古いトークンは失効する
	assert.Equal(t, 3, issuer.lastVersion)
}

func TestForgotPassword_StoresToken(t *testing.T) {
	users := new(UserRepoMock)
	uc, _ := newAuthUsecase(users)

	users.On("FindByEmail", mock.Anything, "user@example.com").Return(model.User{ID: 1}, nil)
	users.On("SetResetToken", mock.Anything, int64(1), mock.Anything, testClock().Now().Add(30*time.Minute)).Return(nil)

	out, err := uc.ForgotPassword(context.Background(), "user@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, out.ResetToken)

	users.AssertExpectations(t)
}

func TestResetPassword_ExpiredToken(t *testing.T) {
	users := new(UserRepoMock)
	uc, _ := newAuthUsecase(users)

	expired := testClock().Now().Add(-time.Minute)
	users.On("FindByResetToken", mock.Anything, "tok").
		Return(model.User{ID: 1, ResetToken: "tok", ResetExpiresAt: &expired}, nil)

	err := uc.ResetPassword(context.Background(), usecase.ResetPasswordInput{
		Token:                "tok",
		Password:             "new-password",
		PasswordConfirmation: "new-password",
	})
	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnprocessableEntity, he.Status)
	assert.Equal(t, "reset token expired", he.Message)
}

func TestResetPassword_RevokesOldTokens(t *testing.T) {
	users := new(UserRepoMock)
	uc, _ := newAuthUsecase(users)

	valid := testClock().Now().Add(time.Minute)
	users.On("FindByResetToken", mock.Anything, "tok").
		Return(model.User{ID: 1, ResetToken: "tok", ResetExpiresAt: &valid}, nil)
	users.On("UpdatePassword", mock.Anything, int64(1), mock.Anything).Return(nil)
	users.On("ClearResetToken", mock.Anything, int64(1)).Return(nil)
	users.On("BumpTokenVersion", mock.Anything, int64(1)).Return(2, nil)

	require.NoError(t, uc.ResetPassword(context.Background(), usecase.ResetPasswordInput{
		Token:                "tok",
		Password:             "new-password",
		PasswordConfirmation: "new-password",
	}))
	users.AssertExpectations(t)
}
