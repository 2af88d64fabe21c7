package usecase

import (
	"context"
	"net/http"
	"strings"

	"github.com/VasBayern/mobile-project/internal/config"
	"github.com/VasBayern/mobile-project/internal/domain/model"
	repo "github.com/VasBayern/mobile-project/internal/repository"
	"github.com/VasBayern/mobile-project/internal/slug"
	"github.com/VasBayern/mobile-project/internal/storage"
)

type CategoryUsecase struct {
	categories repo.CategoryRepository
	products   repo.ProductRepository
	txManager  repo.TransactionManager
	images     *storage.ImageLifecycle
	cfg        config.Config
	clock      Clock
}

// DI
func NewCategoryUsecase(
	categories repo.CategoryRepository,
	products repo.ProductRepository,
	txManager repo.TransactionManager,
	images *storage.ImageLifecycle,
	cfg config.Config,
	clock Clock,
) *CategoryUsecase {
	return &CategoryUsecase{
		categories: categories,
		products:   products,
		txManager:  txManager,
		images:     images,
		cfg:        cfg,
		clock:      clock,
	}
}

type CategoryCreateInput struct {
	Name   string
	SortNo int
	Home   int
	Image  *storage.File
}

// CategoryUpdateInput は送られたフィールドだけを更新対象にする。
type CategoryUpdateInput struct {
	Name   *string
	SortNo *int
	Home   *int
	Image  *storage.File
}

func (u *CategoryUsecase) List(ctx context.Context, in ConditionInput) (repo.Page[model.Category], error) {
	cond, err := parseCondition(in, model.CategorySortColumns, u.cfg, u.clock.Now())
	if err != nil {
		return repo.Page[model.Category]{}, err
	}

	page, err := u.categories.List(ctx, cond)
	if err != nil {
		return repo.Page[model.Category]{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return page, nil
}

// Export は条件に合うカテゴリをページネーションなしで全件返す。
func (u *CategoryUsecase) Export(ctx context.Context, in ConditionInput) ([]model.Category, error) {
	cond, err := parseCondition(in, model.CategorySortColumns, u.cfg, u.clock.Now())
	if err != nil {
		return nil, err
	}
	cond.PerPage = 0

	page, err := u.categories.List(ctx, cond)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return page.Items, nil
}

func (u *CategoryUsecase) Create(ctx context.Context, in CategoryCreateInput) (model.Category, error) {
	fields := map[string]string{}
	if strings.TrimSpace(in.Name) == "" {
		fields["name"] = "name required"
	}
	if in.Home != 0 && in.Home != 1 {
		fields["home"] = "home must be 0 or 1"
	}
	if in.Image == nil {
		fields["image"] = "image required"
	}
	if len(fields) > 0 {
		return model.Category{}, NewValidationError(fields)
	}

	name := strings.TrimSpace(in.Name)
	c, err := u.categories.Create(ctx, model.Category{
		Name:   name,
		Slug:   slug.Make(name),
		SortNo: in.SortNo,
		Home:   in.Home,
	})
	if err != nil {
		return model.Category{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	url, err := u.images.Upload(c.Directory(), c.Name, *in.Image)
	if err != nil {
		return model.Category{}, NewHTTPError(http.StatusInternalServerError, "image upload failed")
	}
	c.Image = url
	if err := u.categories.Update(ctx, c); err != nil {
		return model.Category{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return c, nil
}

func (u *CategoryUsecase) Get(ctx context.Context, id int64) (model.Category, error) {
	c, err := u.categories.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.Category{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Category{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return c, nil
}

// Update はカテゴリを更新しつつ保存画像を同期させる。新規アップロードは
// ディレクトリ置き換え、改名だけならファイルを新slugへ移動。
func (u *CategoryUsecase) Update(ctx context.Context, id int64, in CategoryUpdateInput) (model.Category, error) {
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return model.Category{}, NewValidationError(map[string]string{"name": "name required"})
	}
	if in.Home != nil && *in.Home != 0 && *in.Home != 1 {
		return model.Category{}, NewValidationError(map[string]string{"home": "home must be 0 or 1"})
	}

	var out model.Category
	err := u.txManager.WithinTx(ctx, func(r repo.TxRepos) error {
		c, err := r.Categories().FindByID(ctx, id)
		if err != nil {
			return err
		}
		oldName, oldImage := c.Name, c.Image

		if in.Name != nil {
			c.Name = strings.TrimSpace(*in.Name)
			c.Slug = slug.Make(c.Name)
		}
		if in.SortNo != nil {
			c.SortNo = *in.SortNo
		}
		if in.Home != nil {
			c.Home = *in.Home
		}

		if in.Image != nil {
			url, err := u.images.Upload(c.Directory(), c.Name, *in.Image)
			if err != nil {
				return err
			}
			c.Image = url
		} else if in.Name != nil && oldImage != "" {
			url, err := u.images.Rename(c.Directory(), oldName, oldImage, c.Name)
			if err != nil {
				return err
			}
			c.Image = url
		}

		if err := r.Categories().Update(ctx, c); err != nil {
			return err
		}
		out = c
		return nil
	})
	if err == repo.ErrNotFound {
		return model.Category{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		if he, ok := AsHTTPError(err); ok {
			return model.Category{}, he
		}
		return model.Category{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return out, nil
}

// Delete はカテゴリと画像ディレクトリを削除する。配下の商品はFKカスケードで
// 消えるので、その画像ディレクトリもここで掃除する。
func (u *CategoryUsecase) Delete(ctx context.Context, id int64) error {
	c, err := u.categories.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	products, err := u.products.ListByCategory(ctx, id)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	for _, p := range products {
		if err := u.images.RemoveDirectory(p.Directory()); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "image cleanup failed")
		}
	}

	if err := u.images.RemoveDirectory(c.Directory()); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "image cleanup failed")
	}

	if err := u.categories.Delete(ctx, id); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
