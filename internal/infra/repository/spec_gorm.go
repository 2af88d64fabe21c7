package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/VasBayern/mobile-project/internal/domain/model"
	repo "github.com/VasBayern/mobile-project/internal/repository"
)

type RamGormRepository struct {
	db *gorm.DB
}

// DI
func NewRamGormRepository(db *gorm.DB) *RamGormRepository {
	return &RamGormRepository{db: db}
}

func (r *RamGormRepository) List(ctx context.Context, cond repo.ListCondition) (repo.Page[model.Ram], error) {
	return listWithCondition[model.Ram](ctx, r.db, cond)
}

func (r *RamGormRepository) FindByID(ctx context.Context, id int64) (model.Ram, error) {
	var m model.Ram
	err := r.db.WithContext(ctx).First(&m, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Ram{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Ram{}, err
	}
	return m, nil
}

func (r *RamGormRepository) Create(ctx context.Context, m model.Ram) (model.Ram, error) {
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return model.Ram{}, err
	}
	return m, nil
}

func (r *RamGormRepository) Update(ctx context.Context, m model.Ram) error {
	res := r.db.WithContext(ctx).Model(&model.Ram{}).Where("id = ?", m.ID).Update("name", m.Name)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *RamGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Ram{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

type RomGormRepository struct {
	db *gorm.DB
}

// DI
func NewRomGormRepository(db *gorm.DB) *RomGormRepository {
	return &RomGormRepository{db: db}
}

func (r *RomGormRepository) List(ctx context.Context, cond repo.ListCondition) (repo.Page[model.Rom], error) {
	return listWithCondition[model.Rom](ctx, r.db, cond)
}

func (r *RomGormRepository) FindByID(ctx context.Context, id int64) (model.Rom, error) {
	var m model.Rom
	err := r.db.WithContext(ctx).First(&m, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Rom{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Rom{}, err
	}
	return m, nil
}

func (r *RomGormRepository) Create(ctx context.Context, m model.Rom) (model.Rom, error) {
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return model.Rom{}, err
	}
	return m, nil
}

func (r *RomGormRepository) Update(ctx context.Context, m model.Rom) error {
	res := r.db.WithContext(ctx).Model(&model.Rom{}).Where("id = ?", m.ID).Update("name", m.Name)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *RomGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Rom{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
