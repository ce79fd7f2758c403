package survey

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	surveysvc "github.com/Maristella28/Bms-111925/service/survey"
)

type Controller struct {
	Svc surveysvc.Service
	Log *slog.Logger
}

// GET /v1/households/:id/survey-form
//
// Query params: survey_type (required), questions (repeated, at least
// one), custom_message, sent_at and expires_at as RFC3339.
func (h *Controller) RenderForm(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid household id"})
	}

	in := surveysvc.FormInput{
		HouseholdID:   id,
		TypeLabel:     c.QueryParam("survey_type"),
		Questions:     c.QueryParams()["questions"],
		CustomMessage: c.QueryParam("custom_message"),
	}
	if in.TypeLabel == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "survey_type is required"})
	}
	if v := c.QueryParam("sent_at"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid sent_at"})
		}
		in.SentAt = &t
	}
	if v := c.QueryParam("expires_at"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid expires_at"})
		}
		in.ExpiresAt = &t
	}

	doc, err := h.Svc.RenderForm(c.Request().Context(), in)
	if err != nil {
		h.Log.Error("render survey form", "household_id", id, "err", err)
		switch surveysvc.Code(err) {
		case surveysvc.ErrHouseholdNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"error": "household not found"})
		case surveysvc.ErrNoQuestions:
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "at least one question is required"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
		}
	}

	return c.Blob(http.StatusOK, doc.ContentType, doc.Data)
}
