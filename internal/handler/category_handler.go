package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/VasBayern/mobile-project/internal/export"
	"github.com/VasBayern/mobile-project/internal/usecase"
)

// /admin/categoriesのHTTP
type CategoryHandler struct {
	uc    *usecase.CategoryUsecase
	clock usecase.Clock
}

// DI
func NewCategoryHandler(uc *usecase.CategoryUsecase, clock usecase.Clock) *CategoryHandler {
	return &CategoryHandler{uc: uc, clock: clock}
}

func (h *CategoryHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/categories", h.list)
	g.GET("/categories/export", h.export)
	g.POST("/categories", h.create)
	g.GET("/categories/:id", h.detail)
	g.PUT("/categories/:id", h.update)
	g.DELETE("/categories/:id", h.destroy)
}

func (h *CategoryHandler) list(c echo.Context) error {
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

func (h *CategoryHandler) export(c echo.Context) error {
	in, err := conditionInput(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	items, err := h.uc.Export(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return respondXLSX(c, export.Filename("categories", h.clock.Now()), export.CategorySheet(items))
}

func (h *CategoryHandler) create(c echo.Context) error {
	sortNo, err := formInt(c, "sort_no")
	if err != nil {
		return badRequest(c, err.Error())
	}
	home, err := formInt(c, "home")
	if err != nil {
		return badRequest(c, err.Error())
	}

	in := usecase.CategoryCreateInput{Name: c.FormValue("name")}
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

	category, err := h.uc.Create(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return respondData(c, http.StatusCreated, category)
}

func (h *CategoryHandler) detail(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}

	category, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return respondData(c, http.StatusOK, category)
}

func (h *CategoryHandler) update(c echo.Context) error {
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

	in := usecase.CategoryUpdateInput{
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

	category, err := h.uc.Update(c.Request().Context(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return respondData(c, http.StatusOK, category)
}

func (h *CategoryHandler) destroy(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return respondMessage(c, http.StatusOK, "deleted")
}
