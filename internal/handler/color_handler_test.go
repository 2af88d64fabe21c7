package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/VasBayern/mobile-project/internal/config"
	"github.com/VasBayern/mobile-project/internal/domain/model"
	"github.com/VasBayern/mobile-project/internal/handler"
	infraRepo "github.com/VasBayern/mobile-project/internal/infra/repository"
	"github.com/VasBayern/mobile-project/internal/usecase"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func testConfig() config.Config {
	return config.Config{
		Pagination: config.Pagination{PerPage: []int{10, 25, 50, 100}, MaxRecord: 100},
		DateFormat: config.DateFormat{Input: "02/01/2006", DefaultStart: "01/01/2000"},
	}
}

func newColorServer(t *testing.T) *echo.Echo {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Color{}))

	// created_atのデフォルト上限がテスト中に挿入した行を落とさないよう
	// 固定時刻は十分未来に置く
	clock := fixedClock{now: time.Date(2030, 5, 20, 12, 0, 0, 0, time.UTC)}
	uc := usecase.NewColorUsecase(infraRepo.NewColorGormRepository(db), testConfig(), clock)

	e := echo.New()
	handler.NewColorHandler(uc, clock).RegisterRoutes(e.Group("/admin"))
	return e
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestColorCreate_EnvelopeAndPersistence(t *testing.T) {
	e := newColorServer(t)

	rec := doJSON(e, http.MethodPost, "/admin/colors", `{"name":"Midnight Blue","code":"#1A2B3C"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]any)
	assert.Equal(t, "Midnight Blue", data["name"])
	// codeは小文字に正規化される
	assert.Equal(t, "#1a2b3c", data["code"])
}

func TestColorCreate_ValidationEnvelope(t *testing.T) {
	e := newColorServer(t)

	rec := doJSON(e, http.MethodPost, "/admin/colors", `{"name":"","code":"red"}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, false, body["success"])
	errs := body["errors"].(map[string]any)
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "code")
}

func TestColorList_SortRequired(t *testing.T) {
	e := newColorServer(t)

	rec := doJSON(e, http.MethodGet, "/admin/colors", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "sort required", decode(t, rec)["message"])
}

func TestColorList_SortOutOfWhitelist(t *testing.T) {
	e := newColorServer(t)

	rec := doJSON(e, http.MethodGet, "/admin/colors?sort=42", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "column not found", decode(t, rec)["message"])
}

func TestColorDetail_NotFound(t *testing.T) {
	e := newColorServer(t)

	rec := doJSON(e, http.MethodGet, "/admin/colors/999", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not found", decode(t, rec)["message"])
}

func TestColorExport_DownloadHeaders(t *testing.T) {
	e := newColorServer(t)

	rec := doJSON(e, http.MethodPost, "/admin/colors", `{"name":"Red","code":"#f00"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(e, http.MethodGet, "/admin/colors/export?sort=0", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "colors-20052030-120000.xlsx")
	assert.NotEmpty(t, rec.Body.Bytes())
}

func TestColorListPagination(t *testing.T) {
	e := newColorServer(t)

	rec := doJSON(e, http.MethodPost, "/admin/colors", `{"name":"Red","code":"#f00"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = doJSON(e, http.MethodPost, "/admin/colors", `{"name":"Blue","code":"#00f"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(e, http.MethodGet, "/admin/colors?sort=0&per_page=0&page=1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	data := decode(t, rec)["data"].(map[string]any)
	assert.Equal(t, float64(2), data["total"])
	assert.Equal(t, float64(10), data["per_page"])
	items := data["items"].([]any)
	assert.Len(t, items, 2)
}

// Test: per_page未指定はMaxRecordにフォールバック
func TestColorListPagination_AbsentPerPageFallsBackToMaxRecord(t *testing.T) {
	e := newColorServer(t)

	rec := doJSON(e, http.MethodPost, "/admin/colors", `{"name":"Red","code":"#f00"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(e, http.MethodGet, "/admin/colors?sort=0", "")
	require.Equal(t, http.StatusOK, rec.Code)

	data := decode(t, rec)["data"].(map[string]any)
	assert.Equal(t, float64(100), data["per_page"])
}
