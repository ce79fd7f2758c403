package dashboard

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	dashsvc "github.com/Maristella28/Bms-111925/service/dashboard"
)

type Controller struct {
	Svc dashsvc.Service
	Log *slog.Logger
}

// GET /v1/dashboard/announcements
func (h *Controller) Announcements(c echo.Context) error {
	out, err := h.Svc.Announcements(c.Request().Context())
	if err != nil {
		h.Log.Error("list announcements", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": out})
}

// GET /v1/dashboard/hotlines
func (h *Controller) Hotlines(c echo.Context) error {
	out, err := h.Svc.Hotlines(c.Request().Context())
	if err != nil {
		h.Log.Error("list hotlines", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": out})
}

// GET /v1/dashboard/programs
//
// Full programs are filtered out server side; residents only see what
// they can still join.
func (h *Controller) Programs(c echo.Context) error {
	out, err := h.Svc.ResidentPrograms(c.Request().Context())
	if err != nil {
		h.Log.Error("list programs", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": out})
}
