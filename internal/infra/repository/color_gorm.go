package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/VasBayern/mobile-project/internal/domain/model"
	repo "github.com/VasBayern/mobile-project/internal/repository"
)

type ColorGormRepository struct {
	db *gorm.DB
}

// DI
func NewColorGormRepository(db *gorm.DB) *ColorGormRepository {
	return &ColorGormRepository{db: db}
}

func (r *ColorGormRepository) List(ctx context.Context, cond repo.ListCondition) (repo.Page[model.Color], error) {
	return listWithCondition[model.Color](ctx, r.db, cond)
}

func (r *ColorGormRepository) FindByID(ctx context.Context, id int64) (model.Color, error) {
	var c model.Color
	err := r.db.WithContext(ctx).First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Color{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Color{}, err
	}
	return c, nil
}

func (r *ColorGormRepository) Create(ctx context.Context, c model.Color) (model.Color, error) {
	if err := r.db.WithContext(ctx).Create(&c).Error; err != nil {
		return model.Color{}, err
	}
	return c, nil
}

func (r *ColorGormRepository) Update(ctx context.Context, c model.Color) error {
	res := r.db.WithContext(ctx).Model(&model.Color{}).Where("id = ?", c.ID).Updates(map[string]interface{}{
		"name": c.Name,
		"code": c.Code,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *ColorGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Color{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
