package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/VasBayern/mobile-project/internal/export"
	"github.com/VasBayern/mobile-project/internal/usecase"
)

// /admin/colorsのHTTP
type ColorHandler struct {
	uc    *usecase.ColorUsecase
	clock usecase.Clock
}

// DI
func NewColorHandler(uc *usecase.ColorUsecase, clock usecase.Clock) *ColorHandler {
	return &ColorHandler{uc: uc, clock: clock}
}

func (h *ColorHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/colors", h.list)
	g.GET("/colors/export", h.export)
	g.POST("/colors", h.create)
	g.GET("/colors/:id", h.detail)
	g.PUT("/colors/:id", h.update)
	g.DELETE("/colors/:id", h.destroy)
}

type colorRequest struct {
	Name *string `json:"name" form:"name"`
	Code *string `json:"code" form:"code"`
}

func (h *ColorHandler) list(c echo.Context) error {
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

func (h *ColorHandler) export(c echo.Context) error {
	in, err := conditionInput(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	items, err := h.uc.Export(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return respondXLSX(c, export.Filename("colors", h.clock.Now()), export.ColorSheet(items))
}

func (h *ColorHandler) create(c echo.Context) error {
	var req colorRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request")
	}

	in := usecase.ColorInput{}
	if req.Name != nil {
		in.Name = *req.Name
	}
	if req.Code != nil {
		in.Code = *req.Code
	}

	color, err := h.uc.Create(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return respondData(c, http.StatusCreated, color)
}

func (h *ColorHandler) detail(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}

	color, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return respondData(c, http.StatusOK, color)
}

func (h *ColorHandler) update(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}

	var req colorRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request")
	}

	color, err := h.uc.Update(c.Request().Context(), id, usecase.ColorUpdateInput{
		Name: req.Name,
		Code: req.Code,
	})
	if err != nil {
		return writeError(c, err)
	}
	return respondData(c, http.StatusOK, color)
}

func (h *ColorHandler) destroy(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return respondMessage(c, http.StatusOK, "deleted")
}
