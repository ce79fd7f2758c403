package export

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	exportsvc "github.com/Maristella28/Bms-111925/service/export"
)

type Controller struct {
	Svc exportsvc.Service
	Log *slog.Logger
}

// GET /v1/exports/asset-requests.xlsx
func (h *Controller) RequestsXLSX(c echo.Context) error {
	doc, err := h.Svc.RequestsXLSX(c.Request().Context())
	if err != nil {
		h.Log.Error("xlsx export", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+doc.Filename+`"`)
	return c.Blob(http.StatusOK, doc.ContentType, doc.Data)
}

// GET /v1/exports/returns.ics
func (h *Controller) ReturnsCalendar(c echo.Context) error {
	doc, err := h.Svc.ReturnsCalendar(c.Request().Context())
	if err != nil {
		h.Log.Error("calendar export", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+doc.Filename+`"`)
	return c.Blob(http.StatusOK, doc.ContentType, doc.Data)
}
