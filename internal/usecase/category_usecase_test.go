package usecase_test

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/VasBayern/mobile-project/internal/config"
	"github.com/VasBayern/mobile-project/internal/domain/model"
	repo "github.com/VasBayern/mobile-project/internal/repository"
	"github.com/VasBayern/mobile-project/internal/storage"
	"github.com/VasBayern/mobile-project/internal/storage/localfs"
	"github.com/VasBayern/mobile-project/internal/usecase"
)

func testConfig() config.Config {
	return config.Config{
		Pagination: config.Pagination{
			PerPage:   []int{10, 25, 50, 100},
			MaxRecord: 100,
		},
		DateFormat: config.DateFormat{
			Input:        "02/01/2006",
			DefaultStart: "01/01/2000",
		},
	}
}

func testLifecycle(t *testing.T) *storage.ImageLifecycle {
	t.Helper()
	return storage.NewImageLifecycle(localfs.New(t.TempDir(), "/storage"))
}

func testClock() fixedClock {
	return fixedClock{now: time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)}
}

func imageFile(name string) *storage.File {
	return &storage.File{Name: name, Reader: strings.NewReader("img")}
}

func newCategoryUsecase(t *testing.T, categories *CategoryRepoMock, products *ProductRepoMock) *usecase.CategoryUsecase {
	t.Helper()
	tx := &txManagerStub{repos: txReposStub{categories: categories, products: products}}
	return usecase.NewCategoryUsecase(categories, products, tx, testLifecycle(t), testConfig(), testClock())
}

func TestCategoryCreate_Validation(t *testing.T) {
	uc := newCategoryUsecase(t, new(CategoryRepoMock), new(ProductRepoMock))

	_, err := uc.Create(context.Background(), usecase.CategoryCreateInput{Home: 3})
	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnprocessableEntity, he.Status)
	assert.Contains(t, he.Fields, "name")
	assert.Contains(t, he.Fields, "home")
	assert.Contains(t, he.Fields, "image")
}

func TestCategoryCreate_StoresSlugAndImage(t *testing.T) {
	categories := new(CategoryRepoMock)
	uc := newCategoryUsecase(t, categories, new(ProductRepoMock))

	categories.On("Create", mock.Anything, mock.MatchedBy(func(c model.Category) bool {
		return c.Name == "Điện thoại" && c.Slug == "dien-thoai"
	})).Return(model.Category{ID: 7, Name: "Điện thoại", Slug: "dien-thoai"}, nil)
	categories.On("Update", mock.Anything, mock.MatchedBy(func(c model.Category) bool {
		return c.ID == 7 && c.Image == "/storage/categories/7/dien-thoai.png"
	})).Return(nil)

	c, err := uc.Create(context.Background(), usecase.CategoryCreateInput{
		Name:  "Điện thoại",
		Image: imageFile("photo.PNG"),
	})
	require.NoError(t, err)
	assert.Equal(t, "/storage/categories/7/dien-thoai.png", c.Image)

	categories.AssertExpectations(t)
}

func TestCategoryGet_NotFound(t *testing.T) {
	categories := new(CategoryRepoMock)
	uc := newCategoryUsecase(t, categories, new(ProductRepoMock))

	categories.On("FindByID", mock.Anything, int64(99)).Return(model.Category{}, repo.ErrNotFound)

	_, err := uc.Get(context.Background(), 99)
	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Status)
	assert.Equal(t, "not found", he.Message)
}

func TestCategoryUpdate_PatchesOnlySuppliedFields(t *testing.T) {
	categories := new(CategoryRepoMock)
	uc := newCategoryUsecase(t, categories, new(ProductRepoMock))

	existing := model.Category{ID: 3, Name: "Tablet", Slug: "tablet", SortNo: 2, Home: 1}
	categories.On("FindByID", mock.Anything, int64(3)).Return(existing, nil)
	categories.On("Update", mock.Anything, mock.MatchedBy(func(c model.Category) bool {
		return c.SortNo == 9 && c.Name == "Tablet" && c.Home == 1
	})).Return(nil)

	sortNo := 9
	out, err := uc.Update(context.Background(), 3, usecase.CategoryUpdateInput{SortNo: &sortNo})
	require.NoError(t, err)
	assert.Equal(t, 9, out.SortNo)
	assert.Equal(t, "tablet", out.Slug)

	categories.AssertExpectations(t)
}

func TestCategoryUpdate_RenameMovesImage(t *testing.T) {
	categories := new(CategoryRepoMock)
	lc := testLifecycle(t)
	tx := &txManagerStub{repos: txReposStub{categories: categories}}
	uc := usecase.NewCategoryUsecase(categories, new(ProductRepoMock), tx, lc, testConfig(), testClock())

	url, err := lc.Upload("categories/3", "Tablet", *imageFile("a.png"))
	require.NoError(t, err)

	existing := model.Category{ID: 3, Name: "Tablet", Slug: "tablet", Image: url}
	categories.On("FindByID", mock.Anything, int64(3)).Return(existing, nil)
	categories.On("Update", mock.Anything, mock.MatchedBy(func(c model.Category) bool {
		return c.Slug == "may-tinh-bang" && c.Image == "/storage/categories/3/may-tinh-bang.png"
	})).Return(nil)

	name := "Máy tính bảng"
	out, err := uc.Update(context.Background(), 3, usecase.CategoryUpdateInput{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "/storage/categories/3/may-tinh-bang.png", out.Image)
}

func TestCategoryDelete_CleansProductDirectories(t *testing.T) {
	categories := new(CategoryRepoMock)
	products := new(ProductRepoMock)
	uc := newCategoryUsecase(t, categories, products)

	categories.On("FindByID", mock.Anything, int64(5)).Return(model.Category{ID: 5}, nil)
	products.On("ListByCategory", mock.Anything, int64(5)).Return([]model.Product{{ID: 11}, {ID: 12}}, nil)
	categories.On("Delete", mock.Anything, int64(5)).Return(nil)

	require.NoError(t, uc.Delete(context.Background(), 5))

	categories.AssertExpectations(t)
	products.AssertExpectations(t)
}

func TestCategoryList_SortWhitelist(t *testing.T) {
	uc := newCategoryUsecase(t, new(CategoryRepoMock), new(ProductRepoMock))

	_, err := uc.List(context.Background(), usecase.ConditionInput{Sort: 42})
	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
	assert.Equal(t, "column not found", he.Message)
}
