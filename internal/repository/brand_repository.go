package repository

import (
	"context"

	"github.com/VasBayern/mobile-project/internal/domain/model"
)

type BrandRepository interface {
	List(ctx context.Context, cond ListCondition) (Page[model.Brand], error)
	FindByID(ctx context.Context, id int64) (model.Brand, error)
	Create(ctx context.Context, b model.Brand) (model.Brand, error)
	Update(ctx context.Context, b model.Brand) error
	Delete(ctx context.Context, id int64) error
}
