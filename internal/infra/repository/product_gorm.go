package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/VasBayern/mobile-project/internal/domain/model"
	repo "github.com/VasBayern/mobile-project/internal/repository"
)

type ProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

func (r *ProductGormRepository) List(ctx context.Context, cond repo.ListCondition) (repo.Page[model.Product], error) {
	return listWithCondition[model.Product](ctx, r.db, cond)
}

func (r *ProductGormRepository) ListWithRelations(ctx context.Context, cond repo.ListCondition) ([]model.Product, error) {
	db := r.db.Preload("Category").Preload("Brand")
	page, err := listWithCondition[model.Product](ctx, db, cond)
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

func (r *ProductGormRepository) FindByID(ctx context.Context, id int64) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).Preload("Images", func(db *gorm.DB) *gorm.DB {
		return db.Order("id asc")
	}).First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

func (r *ProductGormRepository) ListByCategory(ctx context.Context, categoryID int64) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).Where("category_id = ?", categoryID).Find(&products).Error
	return products, err
}

func (r *ProductGormRepository) ListByBrand(ctx context.Context, brandID int64) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).Where("brand_id = ?", brandID).Find(&products).Error
	return products, err
}

func (r *ProductGormRepository) Create(ctx context.Context, p model.Product) (model.Product, error) {
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return model.Product{}, err
	}
	return p, nil
}

func (r *ProductGormRepository) Update(ctx context.Context, p model.Product) error {
	res := r.db.WithContext(ctx).Model(&model.Product{}).Where("id = ?", p.ID).Updates(map[string]interface{}{
		"name":                  p.Name,
		"slug":                  p.Slug,
		"category_id":           p.CategoryID,
		"brand_id":              p.BrandID,
		"price_core":            p.PriceCore,
		"price":                 p.Price,
		"sort_no":               p.SortNo,
		"home":                  p.Home,
		"new":                   p.New,
		"introduction":          p.Introduction,
		"additional_incentives": p.AdditionalIncentives,
		"description":           p.Description,
		"specification":         p.Specification,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *ProductGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Product{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

type ProductImageGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductImageGormRepository(db *gorm.DB) *ProductImageGormRepository {
	return &ProductImageGormRepository{db: db}
}

func (r *ProductImageGormRepository) ListByProduct(ctx context.Context, productID int64) ([]model.ProductImage, error) {
	var images []model.ProductImage
	err := r.db.WithContext(ctx).Where("product_id = ?", productID).Order("id asc").Find(&images).Error
	return images, err
}

func (r *ProductImageGormRepository) FindForProduct(ctx context.Context, id, productID int64) (model.ProductImage, error) {
	var img model.ProductImage
	err := r.db.WithContext(ctx).Where("id = ? AND product_id = ?", id, productID).First(&img).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.ProductImage{}, repo.ErrNotFound
	}
	if err != nil {
		return model.ProductImage{}, err
	}
	return img, nil
}

func (r *ProductImageGormRepository) Last(ctx context.Context, productID int64) (model.ProductImage, error) {
	var img model.ProductImage
	err := r.db.WithContext(ctx).Where("product_id = ?", productID).Order("id desc").First(&img).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.ProductImage{}, repo.ErrNotFound
	}
	if err != nil {
		return model.ProductImage{}, err
	}
	return img, nil
}

func (r *ProductImageGormRepository) Create(ctx context.Context, img model.ProductImage) (model.ProductImage, error) {
	if err := r.db.WithContext(ctx).Create(&img).Error; err != nil {
		return model.ProductImage{}, err
	}
	return img, nil
}

func (r *ProductImageGormRepository) UpdatePath(ctx context.Context, id int64, path string) error {
	res := r.db.WithContext(ctx).Model(&model.ProductImage{}).Where("id = ?", id).Update("path", path)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *ProductImageGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.ProductImage{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
