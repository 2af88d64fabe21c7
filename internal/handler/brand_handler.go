package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/VasBayern/mobile-project/internal/export"
	"github.com/VasBayern/mobile-project/internal/usecase"
)

// /admin/brandsのHTTP
type BrandHandler struct {
	uc    *usecase.BrandUsecase
	clock usecase.Clock
}

// DI
func NewBrandHandler(uc *usecase.BrandUsecase, clock usecase.Clock) *BrandHandler {
	return &BrandHandler{uc: uc, clock: clock}
}

func (h *BrandHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/brands", h.list)
	g.GET("/brands/export", h.export)
	g.POST("/brands", h.create)
	g.GET("/brands/:id", h.detail)
	g.PUT("/brands/:id", h.update)
	g.DELETE("/brands/:id", h.destroy)
}

func (h *BrandHandler) list(c echo.Context) error {
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

func (h *BrandHandler) export(c echo.Context) error {
	in, err := conditionInput(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	items, err := h.uc.Export(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return respondXLSX(c, export.Filename("brands", h.clock.Now()), export.BrandSheet(items))
}

func (h *BrandHandler) create(c echo.Context) error {
	sortNo, err := formInt(c, "sort_no")
	if err != nil {
		return badRequest(c, err.Error())
	}
	home, err := formInt(c, "home")
	if err != nil {
		return badRequest(c, err.Error())
	}

	in := usecase.BrandCreateInput{Name: c.FormValue("name")}
	if sortNo != nil {
		in.SortNo = *sortNo
	}
	if home != nil {
		in.Home = *home
	}

	file, closeFile, err := formFile(c, "image")
	if err == nil {
		defer closeFile()
		in.Image = file
	} else if err != errMissing {
		return badRequest(c, "invalid image")
	}

	brand, err := h.uc.Create(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return respondData(c, http.StatusCreated, brand)
}

func (h *BrandHandler) detail(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}

	brand, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return respondData(c, http.StatusOK, brand)
}

func (h *BrandHandler) update(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}

	sortNo, err := formInt(c, "sort_no")
	if err != nil {
		return badRequest(c, err.Error())
	}
	home, err := formInt(c, "home")
	if err != nil {
		return badRequest(c, err.Error())
	}

	in := usecase.BrandUpdateInput{
		Name:   formString(c, "name"),
		SortNo: sortNo,
		Home:   home,
	}

	file, closeFile, err := formFile(c, "image")
	if err == nil {
		defer closeFile()
		in.Image = file
	} else if err != errMissing {
		return badRequest(c, "invalid image")
	}

	brand, err := h.uc.Update(c.Request().Context(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return respondData(c, http.StatusOK, brand)
}

func (h *BrandHandler) destroy(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return respondMessage(c, http.StatusOK, "deleted")
}
