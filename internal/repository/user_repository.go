package repository

import (
	"context"
	"time"

	"github.com/VasBayern/mobile-project/internal/domain/model"
)

type UserRepository interface {
	FindByID(ctx context.Context, id int64) (model.User, error)
	FindByEmail(ctx context.Context, email string) (model.User, error)
	FindByResetToken(ctx context.Context, token string) (model.User, error)
	Create(ctx context.Context, u model.User) (model.User, error)
	Update(ctx context.Context, u model.User) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	// BumpTokenVersion は発行済みトークンを全て無効化して新versionを返す。
	BumpTokenVersion(ctx context.Context, id int64) (int, error)
	SetResetToken(ctx context.Context, id int64, token string, expiresAt time.Time) error
	ClearResetToken(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}
