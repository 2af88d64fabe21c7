package repository

import (
	"context"

	"gorm.io/gorm"

	repo "github.com/VasBayern/mobile-project/internal/repository"
)

type txReposGorm struct {
	categories    repo.CategoryRepository
	brands        repo.BrandRepository
	colors        repo.ColorRepository
	rams          repo.RamRepository
	roms          repo.RomRepository
	products      repo.ProductRepository
	productImages repo.ProductImageRepository
	users         repo.UserRepository
}

func (r *txReposGorm) Categories() repo.CategoryRepository       { return r.categories }
func (r *txReposGorm) Brands() repo.BrandRepository              { return r.brands }
func (r *txReposGorm) Colors() repo.ColorRepository              { return r.colors }
func (r *txReposGorm) Rams() repo.RamRepository                  { return r.rams }
func (r *txReposGorm) Roms() repo.RomRepository                  { return r.roms }
func (r *txReposGorm) Products() repo.ProductRepository          { return r.products }
func (r *txReposGorm) ProductImages() repo.ProductImageRepository { return r.productImages }
func (r *txReposGorm) Users() repo.UserRepository                { return r.users }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// トランザクションのハンドルでリポジトリを作り直す
		r := &txReposGorm{
			categories:    NewCategoryGormRepository(tx),
			brands:        NewBrandGormRepository(tx),
			colors:        NewColorGormRepository(tx),
			rams:          NewRamGormRepository(tx),
			roms:          NewRomGormRepository(tx),
			products:      NewProductGormRepository(tx),
			productImages: NewProductImageGormRepository(tx),
			users:         NewUserGormRepository(tx),
		}
		return fn(r)
	})
}
