package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/VasBayern/mobile-project/internal/config"
	"github.com/VasBayern/mobile-project/internal/domain/model"
	repo "github.com/VasBayern/mobile-project/internal/repository"
	"github.com/VasBayern/mobile-project/internal/storage"
)

type UserUsecase struct {
	users     repo.UserRepository
	txManager repo.TransactionManager
	images    *storage.ImageLifecycle
	cfg       config.Config
}

func NewUserUsecase(users repo.UserRepository, txManager repo.TransactionManager, images *storage.ImageLifecycle, cfg config.Config) *UserUsecase {
	return &UserUsecase{users: users, txManager: txManager, images: images, cfg: cfg}
}

type ProfileUpdateInput struct {
	Name     *string
	Phone    *string
	Sex      *int
	Birthday *string
	Address  *string
	Avatar   *storage.File
}

func (u *UserUsecase) Get(ctx context.Context, id int64) (model.User, error) {
	user, err := u.users.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.User{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.User{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return user, nil
}

// UpdateProfile は送られたフィールドだけを更新する。新しいavatarファイルは
// ディレクトリごと置き換え、ファイルなしの改名時は保存済みavatarを
// 新slugにリネームする。
func (u *UserUsecase) UpdateProfile(ctx context.Context, id int64, in ProfileUpdateInput) (model.User, error) {
	fields := map[string]string{}
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		fields["name"] = "name required"
	}
	if in.Sex != nil && (*in.Sex < int(model.SexMale) || *in.Sex > int(model.SexOther)) {
		fields["sex"] = "sex must be 0, 1 or 2"
	}
	var birthday *time.Time
	if in.Birthday != nil && *in.Birthday != "" {
		t, err := time.Parse(u.cfg.DateFormat.Input, *in.Birthday)
		if err != nil {
			fields["birthday"] = "invalid birthday"
		} else {
			birthday = &t
		}
	}
	if len(fields) > 0 {
		return model.User{}, NewValidationError(fields)
	}

	var out model.User
	err := u.txManager.WithinTx(ctx, func(r repo.TxRepos) error {
		user, err := r.Users().FindByID(ctx, id)
		if err != nil {
			return err
		}
		oldName := user.Name

		if in.Name != nil {
			user.Name = strings.TrimSpace(*in.Name)
		}
		if in.Phone != nil {
			user.Phone = *in.Phone
		}
		if in.Sex != nil {
			user.Sex = model.Sex(*in.Sex)
		}
		if birthday != nil {
			user.Birthday = birthday
		}
		if in.Address != nil {
			user.Address = *in.Address
		}

		switch {
		case in.Avatar != nil:
			url, err := u.images.Upload(user.Directory(), user.Name, *in.Avatar)
			if err != nil {
				return err
			}
			user.Avatar = url
		case user.Name != oldName && isStoredAvatar(user.Avatar):
			url, err := u.images.Rename(user.Directory(), oldName, user.Avatar, user.Name)
			if err != nil {
				return err
			}
			user.Avatar = url
		}

		if err := r.Users().Update(ctx, user); err != nil {
			return err
		}
		out = user
		return nil
	})
	if err == repo.ErrNotFound {
		return model.User{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.User{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return out, nil
}

// Gravatarデフォルトは外部URLなのでリネームも削除もしない。
func isStoredAvatar(avatar string) bool {
	return avatar != "" && !strings.Contains(avatar, "gravatar.com")
}

// Destroy はアカウントとavatarディレクトリを削除する。admin限定はルーティング層で担保。
func (u *UserUsecase) Destroy(ctx context.Context, id int64) error {
	user, err := u.users.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.images.RemoveDirectory(user.Directory()); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "image cleanup failed")
	}
	if err := u.users.Delete(ctx, id); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
