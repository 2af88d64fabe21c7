package repository

import (
	"context"

	"github.com/VasBayern/mobile-project/internal/domain/model"
)

// Categoryの永続化のみ。
type CategoryRepository interface {
	List(ctx context.Context, cond ListCondition) (Page[model.Category], error)
	FindByID(ctx context.Context, id int64) (model.Category, error)
	Create(ctx context.Context, c model.Category) (model.Category, error)
	Update(ctx context.Context, c model.Category) error
	Delete(ctx context.Context, id int64) error
}
