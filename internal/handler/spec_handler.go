package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/VasBayern/mobile-project/internal/export"
	"github.com/VasBayern/mobile-project/internal/usecase"
)

type specRequest struct {
	Name int `json:"name" form:"name"`
}

// /admin/ramsのHTTP
type RamHandler struct {
	uc    *usecase.RamUsecase
	clock usecase.Clock
}

// DI
func NewRamHandler(uc *usecase.RamUsecase, clock usecase.Clock) *RamHandler {
	return &RamHandler{uc: uc, clock: clock}
}

func (h *RamHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/rams", h.list)
	g.GET("/rams/export", h.export)
	g.POST("/rams", h.create)
	g.GET("/rams/:id", h.detail)
	g.PUT("/rams/:id", h.update)
	g.DELETE("/rams/:id", h.destroy)
}

func (h *RamHandler) list(c echo.Context) error {
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

func (h *RamHandler) export(c echo.Context) error {
	in, err := conditionInput(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	items, err := h.uc.Export(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return respondXLSX(c, export.Filename("rams", h.clock.Now()), export.RamSheet(items))
}

func (h *RamHandler) create(c echo.Context) error {
	var req specRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request")
	}

	ram, err := h.uc.Create(c.Request().Context(), usecase.SpecInput{Name: req.Name})
	if err != nil {
		return writeError(c, err)
	}
	return respondData(c, http.StatusCreated, ram)
}

func (h *RamHandler) detail(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}

	ram, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return respondData(c, http.StatusOK, ram)
}

func (h *RamHandler) update(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}

	var req specRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request")
	}

	ram, err := h.uc.Update(c.Request().Context(), id, usecase.SpecInput{Name: req.Name})
	if err != nil {
		return writeError(c, err)
	}
	return respondData(c, http.StatusOK, ram)
}

func (h *RamHandler) destroy(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return respondMessage(c, http.StatusOK, "deleted")
}

// /admin/romsのHTTP
type RomHandler struct {
	uc    *usecase.RomUsecase
	clock usecase.Clock
}

// DI
func NewRomHandler(uc *usecase.RomUsecase, clock usecase.Clock) *RomHandler {
	return &RomHandler{uc: uc, clock: clock}
}

func (h *RomHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/roms", h.list)
	g.GET("/roms/export", h.export)
	g.POST("/roms", h.create)
	g.GET("/roms/:id", h.detail)
	g.PUT("/roms/:id", h.update)
	g.DELETE("/roms/:id", h.destroy)
}

func (h *RomHandler) list(c echo.Context) error {
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

func (h *RomHandler) export(c echo.Context) error {
	in, err := conditionInput(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	items, err := h.uc.Export(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return respondXLSX(c, export.Filename("roms", h.clock.Now()), export.RomSheet(items))
}

func (h *RomHandler) create(c echo.Context) error {
	var req specRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request")
	}

	rom, err := h.uc.Create(c.Request().Context(), usecase.SpecInput{Name: req.Name})
	if err != nil {
		return writeError(c, err)
	}
	return respondData(c, http.StatusCreated, rom)
}

func (h *RomHandler) detail(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}

	rom, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return respondData(c, http.StatusOK, rom)
}

func (h *RomHandler) update(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}

	var req specRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request")
	}

	rom, err := h.uc.Update(c.Request().Context(), id, usecase.SpecInput{Name: req.Name})
	if err != nil {
		return writeError(c, err)
	}
	return respondData(c, http.StatusOK, rom)
}

func (h *RomHandler) destroy(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return badRequest(c, "invalid id")
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return respondMessage(c, http.StatusOK, "deleted")
}
