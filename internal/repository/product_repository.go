package repository

import (
	"context"

	"github.com/VasBayern/mobile-project/internal/domain/model"
)

type ProductRepository interface {
	List(ctx context.Context, cond ListCondition) (Page[model.Product], error)
	// ListWithRelations はカテゴリとブランドも一緒にロードする。
	// PerPageが0以下なら該当行を全件返す。
	ListWithRelations(ctx context.Context, cond ListCondition) ([]model.Product, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)
	// ListByCategory / ListByBrand は親削除時の画像ディレクトリ掃除に使う。
	ListByCategory(ctx context.Context, categoryID int64) ([]model.Product, error)
	ListByBrand(ctx context.Context, brandID int64) ([]model.Product, error)
	Create(ctx context.Context, p model.Product) (model.Product, error)
	Update(ctx context.Context, p model.Product) error
	Delete(ctx context.Context, id int64) error
}

// ProductImageRepository は商品画像をid昇順の集合として永続化する。
type ProductImageRepository interface {
	ListByProduct(ctx context.Context, productID int64) ([]model.ProductImage, error)
	// FindForProduct は画像が存在しない、または他の商品のものなら ErrNotFound。
	FindForProduct(ctx context.Context, id, productID int64) (model.ProductImage, error)
	// Last は最後に挿入された画像を返す。
	Last(ctx context.Context, productID int64) (model.ProductImage, error)
	Create(ctx context.Context, img model.ProductImage) (model.ProductImage, error)
	UpdatePath(ctx context.Context, id int64, path string) error
	Delete(ctx context.Context, id int64) error
}
