package usecase

import (
	"context"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/VasBayern/mobile-project/internal/config"
	"github.com/VasBayern/mobile-project/internal/domain/model"
	repo "github.com/VasBayern/mobile-project/internal/repository"
)

// TokenIssuer はアクセストークンに署名する。実装はcomposition root側に置き、
// usecaseは署名の詳細を知らない。
type TokenIssuer interface {
	Issue(userID int64, role model.Role, tokenVersion int, now time.Time) (token string, expiresAt time.Time, err error)
}

type AuthUsecase struct {
	users  repo.UserRepository
	issuer TokenIssuer
	cfg    config.Config
	clock  Clock
}

func NewAuthUsecase(users repo.UserRepository, issuer TokenIssuer, cfg config.Config, clock Clock) *AuthUsecase {
	return &AuthUsecase{users: users, issuer: issuer, cfg: cfg, clock: clock}
}

type RegisterInput struct {
	Name                 string
	Email                string
	Password             string
	PasswordConfirmation string
}

type LoginInput struct {
	Email    string
	Password string
}

type TokenOutput struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

type ForgotPasswordOutput struct {
	ResetToken string    `json:"reset_token"`
	ExpiresAt  time.Time `json:"expires_at"`
}

type ResetPasswordInput struct {
	Token                string
	Password             string
	PasswordConfirmation string
}

func validateCredentials(email, password, confirmation string, fields map[string]string) {
	if _, err := mail.ParseAddress(email); err != nil {
		fields["email"] = "invalid email"
	}
	if len(password) < 8 {
		fields["password"] = "password must be at least 8 characters"
	} else if password != confirmation {
		fields["password_confirmation"] = "passwords do not match"
	}
}

func (u *AuthUsecase) Register(ctx context.Context, in RegisterInput) (model.User, error) {
	fields := map[string]string{}
	if strings.TrimSpace(in.Name) == "" {
		fields["name"] = "name required"
	}
	validateCredentials(in.Email, in.Password, in.PasswordConfirmation, fields)
	if len(fields) > 0 {
		return model.User{}, NewValidationError(fields)
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	if _, err := u.users.FindByEmail(ctx, email); err == nil {
		return model.User{}, NewValidationError(map[string]string{"email": "email already taken"})
	} else if err != repo.ErrNotFound {
		return model.User{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, NewHTTPError(http.StatusInternalServerError, "hash error")
	}

	name := strings.TrimSpace(in.Name)
	created, err := u.users.Create(ctx, model.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Avatar:       model.GravatarURL(email, name),
		Role:         model.RoleGuest,
	})
	if err != nil {
		return model.User{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return created, nil
}

func (u *AuthUsecase) Login(ctx context.Context, in LoginInput) (TokenOutput, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	user, err := u.users.FindByEmail(ctx, email)
	if err == repo.ErrNotFound {
		return TokenOutput{}, NewValidationError(map[string]string{"email": "these credentials do not match our records"})
	}
	if err != nil {
		return TokenOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)) != nil {
		return TokenOutput{}, NewValidationError(map[string]string{"email": "these credentials do not match our records"})
	}

	return u.issue(user)
}

func (u *AuthUsecase) issue(user model.User) (TokenOutput, error) {
	token, expiresAt, err := u.issuer.Issue(user.ID, user.Role, user.TokenVersion, u.clock.Now())
	if err != nil {
		return TokenOutput{}, NewHTTPError(http.StatusInternalServerError, "token error")
	}
	return TokenOutput{AccessToken: token, TokenType: "Bearer", ExpiresAt: expiresAt}, nil
}

// Logout はtoken versionを上げて、これ以前に発行した全トークンを失効させる。
func (u *AuthUsecase) Logout(ctx context.Context, userID int64) error {
	if _, err := u.users.BumpTokenVersion(ctx, userID); err != nil {
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

type ChangePasswordInput struct {
	CurrentPassword      string
	Password             string
	PasswordConfirmation string
}

// ChangePassword は現パスワードを検証し、新ハッシュを保存して
// bump後のversionで新トークンを発行する。
func (u *AuthUsecase) ChangePassword(ctx context.Context, userID int64, in ChangePasswordInput) (TokenOutput, error) {
	fields := map[string]string{}
	if len(in.Password) < 8 {
		fields["password"] = "password must be at least 8 characters"
	} else if in.Password != in.PasswordConfirmation {
		fields["password_confirmation"] = "passwords do not match"
	}
	if len(fields) > 0 {
		return TokenOutput{}, NewValidationError(fields)
	}

	user, err := u.users.FindByID(ctx, userID)
	if err == repo.ErrNotFound {
		return TokenOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return TokenOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.CurrentPassword)) != nil {
		return TokenOutput{}, NewValidationError(map[string]string{"current_password": "current password is incorrect"})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return TokenOutput{}, NewHTTPError(http.StatusInternalServerError, "hash error")
	}
	if err := u.users.UpdatePassword(ctx, userID, string(hash)); err != nil {
		return TokenOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	version, err := u.users.BumpTokenVersion(ctx, userID)
	if err != nil {
		return TokenOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	user.TokenVersion = version

	return u.issue(user)
}

// ForgotPassword はワンタイムのリセットトークンを保存する。
// トークンはレスポンスで返す。メール送信は別の関心事。
func (u *AuthUsecase) ForgotPassword(ctx context.Context, email string) (ForgotPasswordOutput, error) {
	user, err := u.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err == repo.ErrNotFound {
		return ForgotPasswordOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return ForgotPasswordOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	token := uuid.NewString()
	expiresAt := u.clock.Now().Add(u.cfg.ResetTokenTTL)
	if err := u.users.SetResetToken(ctx, user.ID, token, expiresAt); err != nil {
		return ForgotPasswordOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return ForgotPasswordOutput{ResetToken: token, ExpiresAt: expiresAt}, nil
}

func (u *AuthUsecase) ResetPassword(ctx context.Context, in ResetPasswordInput) error {
	fields := map[string]string{}
	if in.Token == "" {
		fields["token"] = "token required"
	}
	if len(in.Password) < 8 {
		fields["password"] = "password must be at least 8 characters"
	} else if in.Password != in.PasswordConfirmation {
		fields["password_confirmation"] = "passwords do not match"
	}
	if len(fields) > 0 {
		return NewValidationError(fields)
	}

	user, err := u.users.FindByResetToken(ctx, in.Token)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusUnprocessableEntity, "invalid reset token")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if user.ResetExpiresAt == nil || u.clock.Now().After(*user.ResetExpiresAt) {
		return NewHTTPError(http.StatusUnprocessableEntity, "reset token expired")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "hash error")
	}
	if err := u.users.UpdatePassword(ctx, user.ID, string(hash)); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if err := u.users.ClearResetToken(ctx, user.ID); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if _, err := u.users.BumpTokenVersion(ctx, user.ID); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
