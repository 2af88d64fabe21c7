package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/VasBayern/mobile-project/internal/domain/model"
	repo "github.com/VasBayern/mobile-project/internal/repository"
)

type CategoryRepoMock struct{ mock.Mock }

func (m *CategoryRepoMock) List(ctx context.Context, cond repo.ListCondition) (repo.Page[model.Category], error) {
	args := m.Called(ctx, cond)
	page, _ := args.Get(0).(repo.Page[model.Category])
	return page, args.Error(1)
}

func (m *CategoryRepoMock) FindByID(ctx context.Context, id int64) (model.Category, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(model.Category)
	return c, args.Error(1)
}

func (m *CategoryRepoMock) Create(ctx context.Context, c model.Category) (model.Category, error) {
	args := m.Called(ctx, c)
	created, _ := args.Get(0).(model.Category)
	return created, args.Error(1)
}

func (m *CategoryRepoMock) Update(ctx context.Context, c model.Category) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *CategoryRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type BrandRepoMock struct{ mock.Mock }

func (m *BrandRepoMock) List(ctx context.Context, cond repo.ListCondition) (repo.Page[model.Brand], error) {
	panic("not used in these tests")
}

func (m *BrandRepoMock) FindByID(ctx context.Context, id int64) (model.Brand, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(model.Brand)
	return b, args.Error(1)
}

func (m *BrandRepoMock) Create(ctx context.Context, b model.Brand) (model.Brand, error) {
	panic("not used in these tests")
}

func (m *BrandRepoMock) Update(ctx context.Context, b model.Brand) error {
	panic("not used in these tests")
}

func (m *BrandRepoMock) Delete(ctx context.Context, id int64) error {
	panic("not used in these tests")
}

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) List(ctx context.Context, cond repo.ListCondition) (repo.Page[model.Product], error) {
	args := m.Called(ctx, cond)
	page, _ := args.Get(0).(repo.Page[model.Product])
	return page, args.Error(1)
}

func (m *ProductRepoMock) ListWithRelations(ctx context.Context, cond repo.ListCondition) ([]model.Product, error) {
	args := m.Called(ctx, cond)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductRepoMock) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) ListByCategory(ctx context.Context, categoryID int64) ([]model.Product, error) {
	args := m.Called(ctx, categoryID)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductRepoMock) ListByBrand(ctx context.Context, brandID int64) ([]model.Product, error) {
	args := m.Called(ctx, brandID)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductRepoMock) Create(ctx context.Context, p model.Product) (model.Product, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(model.Product)
	return created, args.Error(1)
}

func (m *ProductRepoMock) Update(ctx context.Context, p model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProductRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type ProductImageRepoMock struct{ mock.Mock }

func (m *ProductImageRepoMock) ListByProduct(ctx context.Context, productID int64) ([]model.ProductImage, error) {
	args := m.Called(ctx, productID)
	items, _ := args.Get(0).([]model.ProductImage)
	return items, args.Error(1)
}

func (m *ProductImageRepoMock) FindForProduct(ctx context.Context, id, productID int64) (model.ProductImage, error) {
	args := m.Called(ctx, id, productID)
	img, _ := args.Get(0).(model.ProductImage)
	return img, args.Error(1)
}

func (m *ProductImageRepoMock) Last(ctx context.Context, productID int64) (model.ProductImage, error) {
	args := m.Called(ctx, productID)
	img, _ := args.Get(0).(model.ProductImage)
	return img, args.Error(1)
}

func (m *ProductImageRepoMock) Create(ctx context.Context, img model.ProductImage) (model.ProductImage, error) {
	args := m.Called(ctx, img)
	created, _ := args.Get(0).(model.ProductImage)
	return created, args.Error(1)
}

func (m *ProductImageRepoMock) UpdatePath(ctx context.Context, id int64, path string) error {
	args := m.Called(ctx, id, path)
	return args.Error(0)
}

func (m *ProductImageRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type UserRepoMock struct{ mock.Mock }

func (m *UserRepoMock) FindByID(ctx context.Context, id int64) (model.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) FindByEmail(ctx context.Context, email string) (model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) FindByResetToken(ctx context.Context, token string) (model.User, error) {
	args := m.Called(ctx, token)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) Create(ctx context.Context, u model.User) (model.User, error) {
	args := m.Called(ctx, u)
	created, _ := args.Get(0).(model.User)
	return created, args.Error(1)
}

func (m *UserRepoMock) Update(ctx context.Context, u model.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *UserRepoMock) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

func (m *UserRepoMock) BumpTokenVersion(ctx context.Context, id int64) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

func (m *UserRepoMock) SetResetToken(ctx context.Context, id int64, token string, expiresAt time.Time) error {
	args := m.Called(ctx, id, token, expiresAt)
	return args.Error(0)
}

func (m *UserRepoMock) ClearResetToken(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *UserRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// txManagerStub は本物のトランザクションなしでコールバックを実行する。
// usecaseから見えるWithinTxの挙動はそのまま。
type txManagerStub struct {
	repos txReposStub
}

func (tm *txManagerStub) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return fn(tm.repos)
}

type txReposStub struct {
	categories    repo.CategoryRepository
	brands        repo.BrandRepository
	colors        repo.ColorRepository
	rams          repo.RamRepository
	roms          repo.RomRepository
	products      repo.ProductRepository
	productImages repo.ProductImageRepository
	users         repo.UserRepository
}

func (r txReposStub) Categories() repo.CategoryRepository        { return r.categories }
func (r txReposStub) Brands() repo.BrandRepository               { return r.brands }
func (r txReposStub) Colors() repo.ColorRepository               { return r.colors }
func (r txReposStub) Rams() repo.RamRepository                   { return r.rams }
func (r txReposStub) Roms() repo.RomRepository                   { return r.roms }
func (r txReposStub) Products() repo.ProductRepository           { return r.products }
func (r txReposStub) ProductImages() repo.ProductImageRepository { return r.productImages }
func (r txReposStub) Users() repo.UserRepository                 { return r.users }

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }
