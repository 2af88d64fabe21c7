package usecase

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/VasBayern/mobile-project/internal/config"
	"github.com/VasBayern/mobile-project/internal/domain/model"
	repo "github.com/VasBayern/mobile-project/internal/repository"
	"github.com/VasBayern/mobile-project/internal/slug"
	"github.com/VasBayern/mobile-project/internal/storage"
)

var priceStep = decimal.NewFromInt(1000)

type ProductUsecase struct {
	products   repo.ProductRepository
	categories repo.CategoryRepository
	brands     repo.BrandRepository
	txManager  repo.TransactionManager
	images     *storage.ImageLifecycle
	cfg        config.Config
	clock      Clock
}

// DI
func NewProductUsecase(
	products repo.ProductRepository,
	categories repo.CategoryRepository,
	brands repo.BrandRepository,
	txManager repo.TransactionManager,
	images *storage.ImageLifecycle,
	cfg config.Config,
	clock Clock,
) *ProductUsecase {
	return &ProductUsecase{
		products:   products,
		categories: categories,
		brands:     brands,
		txManager:  txManager,
		images:     images,
		cfg:        cfg,
		clock:      clock,
	}
}

type ProductCreateInput struct {
	Name                 string
	CategoryID           int64
	BrandID              int64
	PriceCore            decimal.Decimal
	Price                decimal.Decimal
	SortNo               int
	Home                 int
	New                  int
	Introduction         string
	AdditionalIncentives string
	Description          string
	Specification        string
	Images               []storage.File
}

// ProductUpdateInput は送られたフィールドだけを更新対象にする。
// DeleteImages は削除する画像id。全idがその商品のものであること。
type ProductUpdateInput struct {
	Name                 *string
	CategoryID           *int64
	BrandID              *int64
	PriceCore            *decimal.Decimal
	Price                *decimal.Decimal
	SortNo               *int
	Home                 *int
	New                  *int
	Introduction         *string
	AdditionalIncentives *string
	Description          *string
	Specification        *string
	DeleteImages         []int64
	Images               []storage.File
}

func validPrice(p decimal.Decimal) bool {
	return !p.IsNegative() && p.Mod(priceStep).IsZero()
}

func (u *ProductUsecase) List(ctx context.Context, in ConditionInput) (repo.Page[model.Product], error) {
	cond, err := parseCondition(in, model.ProductSortColumns, u.cfg, u.clock.Now())
	if err != nil {
		return repo.Page[model.Product]{}, err
	}

	page, err := u.products.List(ctx, cond)
	if err != nil {
		return repo.Page[model.Product]{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return page, nil
}

// Export は条件に合う商品をページネーションなしで全件返す。
// シートに名前を出すためカテゴリとブランドもロードする。
func (u *ProductUsecase) Export(ctx context.Context, in ConditionInput) ([]model.Product, error) {
	cond, err := parseCondition(in, model.ProductSortColumns, u.cfg, u.clock.Now())
	if err != nil {
		return nil, err
	}
	cond.PerPage = 0

	items, err := u.products.ListWithRelations(ctx, cond)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

func (u *ProductUsecase) Create(ctx context.Context, in ProductCreateInput) (model.Product, error) {
	fields := map[string]string{}
	if strings.TrimSpace(in.Name) == "" {
		fields["name"] = "name required"
	}
	if !validPrice(in.PriceCore) {
		fields["price_core"] = "price_core must be a non-negative multiple of 1000"
	}
	if !validPrice(in.Price) {
		fields["price"] = "price must be a non-negative multiple of 1000"
	}
	if in.Home != 0 && in.Home != 1 {
		fields["home"] = "home must be 0 or 1"
	}
	if in.New != 0 && in.New != 1 {
		fields["new"] = "new must be 0 or 1"
	}
	if _, err := u.categories.FindByID(ctx, in.CategoryID); err == repo.ErrNotFound {
		fields["category_id"] = "category does not exist"
	}
	if _, err := u.brands.FindByID(ctx, in.BrandID); err == repo.ErrNotFound {
		fields["brand_id"] = "brand does not exist"
	}
	if len(fields) > 0 {
		return model.Product{}, NewValidationError(fields)
	}

	name := strings.TrimSpace(in.Name)
	var out model.Product
	err := u.txManager.WithinTx(ctx, func(r repo.TxRepos) error {
		p, err := r.Products().Create(ctx, model.Product{
			Name:                 name,
			Slug:                 slug.Make(name),
			CategoryID:           in.CategoryID,
			BrandID:              in.BrandID,
			PriceCore:            in.PriceCore,
			Price:                in.Price,
			SortNo:               in.SortNo,
			Home:                 in.Home,
			New:                  in.New,
			Introduction:         in.Introduction,
			AdditionalIncentives: in.AdditionalIncentives,
			Description:          in.Description,
			Specification:        in.Specification,
		})
		if err != nil {
			return err
		}

		// 先頭ファイルはslugそのまま、以降は連番サフィックス
		for i, f := range in.Images {
			imageName := p.Name
			if i > 0 {
				imageName = fmt.Sprintf("%s-%d", p.Name, i)
			}
			url, err := u.images.UploadKeep(p.Directory(), imageName, f)
			if err != nil {
				return err
			}
			img, err := r.ProductImages().Create(ctx, model.ProductImage{
				ProductID: p.ID,
				Path:      url,
			})
			if err != nil {
				return err
			}
			p.Images = append(p.Images, img)
		}

		out = p
		return nil
	})
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return out, nil
}

func (u *ProductUsecase) Get(ctx context.Context, id int64) (model.Product, error) {
	p, err := u.products.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

// Update は一連の複合処理を1トランザクションで実行する。フィールド更新、
// 指定画像の削除、slug変更時の残りファイルのリネーム、連番を引き継ぐ追加
// アップロード。失敗したらDB書き込みは全部ロールバック。
// ただし触ってしまったファイルはそのまま残る。
func (u *ProductUsecase) Update(ctx context.Context, id int64, in ProductUpdateInput) (model.Product, error) {
	fields := map[string]string{}
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		fields["name"] = "name required"
	}
	if in.PriceCore != nil && !validPrice(*in.PriceCore) {
		fields["price_core"] = "price_core must be a non-negative multiple of 1000"
	}
	if in.Price != nil && !validPrice(*in.Price) {
		fields["price"] = "price must be a non-negative multiple of 1000"
	}
	if in.Home != nil && *in.Home != 0 && *in.Home != 1 {
		fields["home"] = "home must be 0 or 1"
	}
	if in.New != nil && *in.New != 0 && *in.New != 1 {
		fields["new"] = "new must be 0 or 1"
	}
	if in.CategoryID != nil {
		if _, err := u.categories.FindByID(ctx, *in.CategoryID); err == repo.ErrNotFound {
			fields["category_id"] = "category does not exist"
		}
	}
	if in.BrandID != nil {
		if _, err := u.brands.FindByID(ctx, *in.BrandID); err == repo.ErrNotFound {
			fields["brand_id"] = "brand does not exist"
		}
	}
	if len(fields) > 0 {
		return model.Product{}, NewValidationError(fields)
	}

	var out model.Product
	err := u.txManager.WithinTx(ctx, func(r repo.TxRepos) error {
		p, err := r.Products().FindByID(ctx, id)
		if err != nil {
			return err
		}
		oldName := p.Name

		if in.Name != nil {
			p.Name = strings.TrimSpace(*in.Name)
			p.Slug = slug.Make(p.Name)
		}
		if in.CategoryID != nil {
			p.CategoryID = *in.CategoryID
		}
		if in.BrandID != nil {
			p.BrandID = *in.BrandID
		}
		if in.PriceCore != nil {
			p.PriceCore = *in.PriceCore
		}
		if in.Price != nil {
			p.Price = *in.Price
		}
		if in.SortNo != nil {
			p.SortNo = *in.SortNo
		}
		if in.Home != nil {
			p.Home = *in.Home
		}
		if in.New != nil {
			p.New = *in.New
		}
		if in.Introduction != nil {
			p.Introduction = *in.Introduction
		}
		if in.AdditionalIncentives != nil {
			p.AdditionalIncentives = *in.AdditionalIncentives
		}
		if in.Description != nil {
			p.Description = *in.Description
		}
		if in.Specification != nil {
			p.Specification = *in.Specification
		}

		dir := p.Directory()

		// 未知の画像idなら更新全体を中断
		for _, imgID := range in.DeleteImages {
			img, err := r.ProductImages().FindForProduct(ctx, imgID, p.ID)
			if err != nil {
				if err == repo.ErrNotFound {
					return NewHTTPError(http.StatusNotFound, "image not found")
				}
				return err
			}
			if err := u.images.Remove(dir, img.Path); err != nil {
				return err
			}
			if err := r.ProductImages().Delete(ctx, img.ID); err != nil {
				return err
			}
		}

		if p.Name != oldName {
			remaining, err := r.ProductImages().ListByProduct(ctx, p.ID)
			if err != nil {
				return err
			}
			for _, img := range remaining {
				url, err := u.images.Rename(dir, oldName, img.Path, p.Name)
				if err != nil {
					return err
				}
				if err := r.ProductImages().UpdatePath(ctx, img.ID, url); err != nil {
					return err
				}
			}
		}

		if len(in.Images) > 0 {
			next := 0
			last, err := r.ProductImages().Last(ctx, p.ID)
			switch err {
			case nil:
				next = storage.NextIndex(last.Path, p.Name)
			case repo.ErrNotFound:
				// 画像が空なら連番は振り直し
			default:
				return err
			}

			for i, f := range in.Images {
				imageName := p.Name
				if next+i > 0 {
					imageName = fmt.Sprintf("%s-%d", p.Name, next+i)
				}
				url, err := u.images.UploadKeep(dir, imageName, f)
				if err != nil {
					return err
				}
				if _, err := r.ProductImages().Create(ctx, model.ProductImage{
					ProductID: p.ID,
					Path:      url,
				}); err != nil {
					return err
				}
			}
		}

		if err := r.Products().Update(ctx, p); err != nil {
			return err
		}

		out, err = r.Products().FindByID(ctx, p.ID)
		return err
	})
	if err == repo.ErrNotFound {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		if he, ok := AsHTTPError(err); ok {
			return model.Product{}, he
		}
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return out, nil
}

// Delete は商品行（画像行はカスケード）と画像ディレクトリを削除する。
func (u *ProductUsecase) Delete(ctx context.Context, id int64) error {
	p, err := u.products.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.images.RemoveDirectory(p.Directory()); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "image cleanup failed")
	}

	if err := u.products.Delete(ctx, id); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
