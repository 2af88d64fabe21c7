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

type BrandUsecase struct {
	brands    repo.BrandRepository
	products  repo.ProductRepository
	txManager repo.TransactionManager
	images    *storage.ImageLifecycle
	cfg       config.Config
	clock     Clock
}

// DI
func NewBrandUsecase(
	brands repo.BrandRepository,
	products repo.ProductRepository,
	txManager repo.TransactionManager,
	images *storage.ImageLifecycle,
	cfg config.Config,
	clock Clock,
) *BrandUsecase {
	return &BrandUsecase{
		brands:    brands,
		products:  products,
		txManager: txManager,
		images:    images,
		cfg:       cfg,
		clock:     clock,
	}
}

type BrandCreateInput struct {
	Name   string
	SortNo int
	Home   int
	Image  *storage.File
}

type BrandUpdateInput struct {
	Name   *string
	SortNo *int
	Home   *int
	Image  *storage.File
}

func (u *BrandUsecase) List(ctx context.Context, in ConditionInput) (repo.Page[model.Brand], error) {
	cond, err := parseCondition(in, model.BrandSortColumns, u.cfg, u.clock.Now())
	if err != nil {
		return repo.Page[model.Brand]{}, err
	}

	page, err := u.brands.List(ctx, cond)
	if err != nil {
		return repo.Page[model.Brand]{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return page, nil
}

// Export は条件に合うブランドをページネーションなしで全件返す。
func (u *BrandUsecase) Export(ctx context.Context, in ConditionInput) ([]model.Brand, error) {
	cond, err := parseCondition(in, model.BrandSortColumns, u.cfg, u.clock.Now())
	if err != nil {
		return nil, err
	}
	cond.PerPage = 0

	page, err := u.brands.List(ctx, cond)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return page.Items, nil
}

func (u *BrandUsecase) Create(ctx context.Context, in BrandCreateInput) (model.Brand, error) {
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
		return model.Brand{}, NewValidationError(fields)
	}

	name := strings.TrimSpace(in.Name)
	b, err := u.brands.Create(ctx, model.Brand{
		Name:   name,
		Slug:   slug.Make(name),
		SortNo: in.SortNo,
		Home:   in.Home,
	})
	if err != nil {
		return model.Brand{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	url, err := u.images.Upload(b.Directory(), b.Name, *in.Image)
	if err != nil {
		return model.Brand{}, NewHTTPError(http.StatusInternalServerError, "image upload failed")
	}
	b.Image = url
	if err := u.brands.Update(ctx, b); err != nil {
		return model.Brand{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return b, nil
}

func (u *BrandUsecase) Get(ctx context.Context, id int64) (model.Brand, error) {
	b, err := u.brands.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.Brand{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Brand{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return b, nil
}

func (u *BrandUsecase) Update(ctx context.Context, id int64, in BrandUpdateInput) (model.Brand, error) {
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return model.Brand{}, NewValidationError(map[string]string{"name": "name required"})
	}
	if in.Home != nil && *in.Home != 0 && *in.Home != 1 {
		return model.Brand{}, NewValidationError(map[string]string{"home": "home must be 0 or 1"})
	}

	var out model.Brand
	err := u.txManager.WithinTx(ctx, func(r repo.TxRepos) error {
		b, err := r.Brands().FindByID(ctx, id)
		if err != nil {
			return err
		}
		oldName, oldImage := b.Name, b.Image

		if in.Name != nil {
			b.Name = strings.TrimSpace(*in.Name)
			b.Slug = slug.Make(b.Name)
		}
		if in.SortNo != nil {
			b.SortNo = *in.SortNo
		}
		if in.Home != nil {
			b.Home = *in.Home
		}

		if in.Image != nil {
			url, err := u.images.Upload(b.Directory(), b.Name, *in.Image)
			if err != nil {
				return err
			}
			b.Image = url
		} else if in.Name != nil && oldImage != "" {
			url, err := u.images.Rename(b.Directory(), oldName, oldImage, b.Name)
			if err != nil {
				return err
			}
			b.Image = url
		}

		if err := r.Brands().Update(ctx, b); err != nil {
			return err
		}
		out = b
		return nil
	})
	if err == repo.ErrNotFound {
		return model.Brand{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		if he, ok := AsHTTPError(err); ok {
			return model.Brand{}, he
		}
		return model.Brand{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return out, nil
}

// Delete はブランドの商品にもカスケードする。商品側の画像ディレクトリも
// ブランド自身のものと一緒に削除。
func (u *BrandUsecase) Delete(ctx context.Context, id int64) error {
	b, err := u.brands.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	products, err := u.products.ListByBrand(ctx, id)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	for _, p := range products {
		if err := u.images.RemoveDirectory(p.Directory()); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "image cleanup failed")
		}
	}

	if err := u.images.RemoveDirectory(b.Directory()); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "image cleanup failed")
	}

	if err := u.brands.Delete(ctx, id); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
