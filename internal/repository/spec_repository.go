package repository

import (
	"context"

	"github.com/VasBayern/mobile-project/internal/domain/model"
)

// RAMとROMの容量オプションは同じ形だがテーブルが別なので、
// リポジトリも別々に持つ。

type RamRepository interface {
	List(ctx context.Context, cond ListCondition) (Page[model.Ram], error)
	FindByID(ctx context.Context, id int64) (model.Ram, error)
	Create(ctx context.Context, r model.Ram) (model.Ram, error)
	Update(ctx context.Context, r model.Ram) error
	Delete(ctx context.Context, id int64) error
}

type RomRepository interface {
	List(ctx context.Context, cond ListCondition) (Page[model.Rom], error)
	FindByID(ctx context.Context, id int64) (model.Rom, error)
	Create(ctx context.Context, r model.Rom) (model.Rom, error)
	Update(ctx context.Context, r model.Rom) error
	Delete(ctx context.Context, id int64) error
}
