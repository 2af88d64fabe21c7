package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/VasBayern/mobile-project/internal/export"
	"github.com/VasBayern/mobile-project/internal/usecase"
)

// /admin/productsのHTTP
type ProductHandler struct {
	uc    *usecase.ProductUsecase
	clock usecase.Clock
}

// DI
func NewProductHandler(uc *usecase.ProductUsecase, clock usecase.Clock) *ProductHandler {
	return &ProductHandler{uc: uc, clock: clock}
}

func (h *ProductHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/products", h.list)
	g.GET("/products/export", h.export)
	g.POST("/products", h.create)
	g.GET("/products/:id", h.detail)
	g.PUT("/products/:id", h.update)
	g.DELETE("/products/:id", h.destroy)
}

func formDecimal(c echo.Context, field string) (*decimal.Decimal, error) {
	s := formString(c, field)
	if s == nil {
		return nil, nil
	}
	d, err := decimal.NewFromString(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (h *ProductHandler) list(c echo.Context) error {
	in, err := conditionInput(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	page, err := h.uc.List(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return respondData(c, http.StatusOK, page)
}

func (h *ProductHandler) export(c echo.Context) error {
	in, err := conditionInput(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	items, err := h.uc.Export(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return respondXLSX(c, export.Filename("products", h.clock.Now()), export.ProductSheet(items))
}

func (h *ProductHandler) create(c echo.Context) error {
	categoryID, err := formInt64(c, "category_id")
	if err != nil {
		return badRequest(c, err.Error())
	}
	brandID, err := formInt64(c, "brand_id")
	if err != nil {
		return badRequest(c, err.Error())
	}
	priceCore, err := formDecimal(c, "price_core")
	if err != nil {
		return badRequest(c, "invalid price_core")
	}
	price, err := formDecimal(c, "price")
	if err != nil {
		return badRequest(c, "invalid price")
	}
	sortNo, err := formInt(c, "sort_no")
	if err != nil {
		return badRequest(c, err.Error())
	}
	home, err := formInt(c, "home")
	if err != nil {
		return badRequest(c, err.Error())
	}
	isNew, err := formInt(c, "new")
	if err != nil {
		return badRequest(c, err.Error())
	}

	in := usecase.ProductCreateInput{
		Name:                 c.FormValue("name"),
		Introduction:         c.FormValue("introduction"),
		AdditionalIncentives: c.FormValue("additional_incentives"),
		Description:          c.FormValue("description"),
		Specification:        c.FormValue("specification"),
	}
	if categoryID != nil {
		in.CategoryID = *categoryID
	}
	if brandID != nil {
		in.BrandID = *brandID
	}
	if priceCore != nil {
		in.PriceCore = *priceCore
	}
	if price != nil {
		in.Price = *price
	}
	if sortNo != nil {
		in.SortNo = *sortNo
	}
	if home != nil {
		in.Home = *home
	}
	if isNew != nil {
		in.New = *isNew
	}

	files, closeFiles, err := formFiles(c, "images")
	if err != nil && err != errMissing {
		return badRequest(c, "invalid images")
	}
	defer closeFiles()
	in.Images = files

	product, err := h.uc.Create(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return respondData(c, http.StatusCreated, product)
}

func (h *ProductHandler) detail(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}

	product, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return respondData(c, http.StatusOK, product)
}

func (h *ProductHandler) update(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}

	in := usecase.ProductUpdateInput{
		Name:                 formString(c, "name"),
		Introduction:         formString(c, "introduction"),
		AdditionalIncentives: formString(c, "additional_incentives"),
		Description:          formString(c, "description"),
		Specification:        formString(c, "specification"),
	}
	if in.CategoryID, err = formInt64(c, "category_id"); err != nil {
		return badRequest(c, err.Error())
	}
	if in.BrandID, err = formInt64(c, "brand_id"); err != nil {
		return badRequest(c, err.Error())
	}
	if in.PriceCore, err = formDecimal(c, "price_core"); err != nil {
		return badRequest(c, "invalid price_core")
	}
	if in.Price, err = formDecimal(c, "price"); err != nil {
		return badRequest(c, "invalid price")
	}
	if in.SortNo, err = formInt(c, "sort_no"); err != nil {
		return badRequest(c, err.Error())
	}
	if in.Home, err = formInt(c, "home"); err != nil {
		return badRequest(c, err.Error())
	}
	if in.New, err = formInt(c, "new"); err != nil {
		return badRequest(c, err.Error())
	}

	deleteIDs, err := formInt64Slice(c, "delete_images")
	if err != nil {
		return badRequest(c, "invalid delete_images")
	}
	in.DeleteImages = deleteIDs

	files, closeFiles, err := formFiles(c, "images")
	if err != nil && err != errMissing {
		return badRequest(c, "invalid images")
	}
	defer closeFiles()
	in.Images = files

	product, err := h.uc.Update(c.Request().Context(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return respondData(c, http.StatusOK, product)
}

// delete_imagesは繰り返しフィールドでも[]付きでも来る
func formInt64Slice(c echo.Context, field string) ([]int64, error) {
	values, err := c.FormParams()
	if err != nil {
		return nil, nil
	}
	vs := values[field]
	if len(vs) == 0 {
		vs = values[field+"[]"]
	}

	var out []int64
	for _, v := range vs {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func (h *ProductHandler) destroy(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return respondMessage(c, http.StatusOK, "deleted")
}
