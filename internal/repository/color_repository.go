package repository

import (
	"context"

	"github.com/VasBayern/mobile-project/internal/domain/model"
)

type ColorRepository interface {
	List(ctx context.Context, cond ListCondition) (Page[model.Color], error)
	FindByID(ctx context.Context, id int64) (model.Color, error)
	Create(ctx context.Context, c model.Color) (model.Color, error)
	Update(ctx context.Context, c model.Color) error
	Delete(ctx context.Context, id int64) error
}
