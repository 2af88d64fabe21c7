package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/VasBayern/mobile-project/internal/export"
	"github.com/VasBayern/mobile-project/internal/usecase"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Envelope はAPI共通のレスポンスボディ。
type Envelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message,omitempty"`
	Data    any               `json:"data,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func respondData(c echo.Context, status int, data any) error {
	return c.JSON(status, Envelope{Success: true, Data: data})
}

func respondMessage(c echo.Context, status int, message string) error {
	return c.JSON(status, Envelope{Success: true, Message: message})
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, Envelope{Success: false, Message: he.Message, Errors: he.Fields})
	}

	//500
	return c.JSON(http.StatusInternalServerError, Envelope{Success: false, Message: "internal error"})
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, Envelope{Success: false, Message: message})
}

func paramID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

// respondXLSX はワークブックをファイルダウンロードとして返す。
func respondXLSX(c echo.Context, filename string, sheet export.Sheet) error {
	res := c.Response()
	res.Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	res.Header().Set(echo.HeaderContentType, xlsxContentType)
	res.WriteHeader(http.StatusOK)
	return export.Write(res, sheet)
}
