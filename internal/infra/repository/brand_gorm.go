package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/VasBayern/mobile-project/internal/domain/model"
	repo "github.com/VasBayern/mobile-project/internal/repository"
)

type BrandGormRepository struct {
	db *gorm.DB
}

// DI
func NewBrandGormRepository(db *gorm.DB) *BrandGormRepository {
	return &BrandGormRepository{db: db}
}

func (r *BrandGormRepository) List(ctx context.Context, cond repo.ListCondition) (repo.Page[model.Brand], error) {
	return listWithCondition[model.Brand](ctx, r.db, cond)
}

func (r *BrandGormRepository) FindByID(ctx context.Context, id int64) (model.Brand, error) {
	var b model.Brand
	err := r.db.WithContext(ctx).First(&b, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Brand{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Brand{}, err
	}
	return b, nil
}

func (r *BrandGormRepository) Create(ctx context.Context, b model.Brand) (model.Brand, error) {
	if err := r.db.WithContext(ctx).Create(&b).Error; err != nil {
		return model.Brand{}, err
	}
	return b, nil
}

func (r *BrandGormRepository) Update(ctx context.Context, b model.Brand) error {
	res := r.db.WithContext(ctx).Model(&model.Brand{}).Where("id = ?", b.ID).Updates(map[string]interface{}{
		"name":    b.Name,
		"slug":    b.Slug,
		"image":   b.Image,
		"sort_no": b.SortNo,
		"home":    b.Home,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *BrandGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Brand{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
