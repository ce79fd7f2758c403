package assetrequest

import (
	"encoding/base64"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/Maristella28/Bms-111925/model"
	ars "github.com/Maristella28/Bms-111925/service/assetrequest"
	receiptsvc "github.com/Maristella28/Bms-111925/service/receipt"
)

type Controller struct {
	Svc      ars.Service
	Receipts receiptsvc.Service
	V        *validator.Validate
	Log      *slog.Logger
}

// GET /v1/asset-requests
func (h *Controller) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	perPage, _ := strconv.Atoi(c.QueryParam("per_page"))

	out, err := h.Svc.List(c.Request().Context(), page, perPage)
	if err != nil {
		h.Log.Error("asset request list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}

	// Search and view-mode filters are local predicates over the page.
	data := ars.FilterRequests(out.Data, c.QueryParam("search"), c.QueryParam("view"))
	return c.JSON(http.StatusOK, echo.Map{
		"data":         data,
		"current_page": out.CurrentPage,
		"last_page":    out.LastPage,
		"total":        out.Total,
	})
}

// GET /v1/asset-requests/status-counts
func (h *Controller) StatusCounts(c echo.Context) error {
	counts, err := h.Svc.StatusCounts(c.Request().Context())
	if err != nil {
		h.Log.Error("status counts", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
	return c.JSON(http.StatusOK, counts)
}

// GET /v1/asset-tracking
func (h *Controller) Tracking(c echo.Context) error {
	recs, err := h.Svc.Tracking(c.Request().Context())
	if err != nil {
		h.Log.Error("tracking list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
	recs = ars.FilterTracking(recs, c.QueryParam("search"))
	return c.JSON(http.StatusOK, echo.Map{"data": recs})
}

// PATCH /v1/asset-requests/:id
func (h *Controller) UpdateStatus(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	var req UpdateStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "status must be approved or denied"})
	}

	var out *model.AssetRequest
	if req.Status == string(model.RequestApproved) {
		out, err = h.Svc.Approve(c.Request().Context(), id)
	} else {
		out, err = h.Svc.Decline(c.Request().Context(), id)
	}
	if err != nil {
		h.Log.Error("request status update", "id", id, "status", req.Status, "err", err)
		switch ars.Code(err) {
		case ars.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"error": "request not found"})
		case ars.ErrNotPending:
			return c.JSON(http.StatusConflict, echo.Map{"error": "request is no longer pending"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, out)
}

// POST /v1/asset-requests/:id/pay
func (h *Controller) Pay(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	var req PayReq
	if c.Request().ContentLength > 0 {
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid JSON"})
		}
		if err := h.V.Struct(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid amount"})
		}
	}

	out, err := h.Svc.Pay(c.Request().Context(), id, req.AmountPaid)
	if err != nil {
		h.Log.Error("payment", "id", id, "err", err)
		switch ars.Code(err) {
		case ars.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"error": "request not found"})
		case ars.ErrAlreadyPaid:
			return c.JSON(http.StatusConflict, echo.Map{"error": "request already paid"})
		case ars.ErrDenied:
			return c.JSON(http.StatusConflict, echo.Map{"error": "a denied request cannot be paid"})
		case ars.ErrNotApproved:
			return c.JSON(http.StatusConflict, echo.Map{"error": "request must be approved before payment"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"receipt_number": out.ReceiptNumber,
		"amount_paid":    out.AmountPaid,
		"asset_request":  out.Request,
	})
}

// POST /v1/asset-request-items/:id/generate-tracking
func (h *Controller) GenerateTracking(c echo.Context) error {
	itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || itemID <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid item id"})
	}

	var req GenerateTrackingReq
	if c.Request().ContentLength > 0 {
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid JSON"})
		}
	}

	var returnAt *time.Time
	if req.ReturnDate != "" {
		t, err := time.Parse(time.RFC3339, req.ReturnDate)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid return date"})
		}
		returnAt = &t
	}

	out, err := h.Svc.GenerateTracking(c.Request().Context(), itemID, returnAt)
	if err != nil {
		h.Log.Error("generate tracking", "item_id", itemID, "err", err)
		switch ars.Code(err) {
		case ars.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"error": "item not found"})
		case ars.ErrTrackingExists:
			return c.JSON(http.StatusConflict, echo.Map{"error": "tracking number already generated"})
		case ars.ErrNotPaid:
			return c.JSON(http.StatusConflict, echo.Map{"error": "request is not paid yet"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"tracking_number":       out.TrackingNumber,
		"tracking_generated_at": out.GeneratedAt,
		"return_date":           out.ReturnDate,
	})
}

// POST /v1/asset-requests/:id/quick-process
func (h *Controller) QuickProcess(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	out, err := h.Svc.QuickProcess(c.Request().Context(), id)
	if err != nil {
		h.Log.Error("quick process", "id", id, "err", err)
		switch ars.Code(err) {
		case ars.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"error": "request not found"})
		case ars.ErrNotPending:
			return c.JSON(http.StatusConflict, echo.Map{"error": "request is no longer pending"})
		case ars.ErrAlreadyPaid, ars.ErrDenied, ars.ErrNotApproved:
			return c.JSON(http.StatusConflict, echo.Map{"error": "payment failed: " + err.Error()})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
		}
	}

	body := echo.Map{
		"receipt_number": out.ReceiptNumber,
		"amount_paid":    out.AmountPaid,
		"asset_request":  out.Request,
	}
	if out.TrackingErr != nil {
		// Approval and payment are committed; the operator can retry
		// tracking generation on its own.
		body["tracking_error"] = out.TrackingErr.Error()
	} else {
		body["tracking_number"] = out.TrackingNumber
	}
	if out.DocumentErr != nil {
		body["document_error"] = out.DocumentErr.Error()
	} else if out.Document != nil {
		body["document_data"] = base64.StdEncoding.EncodeToString(out.Document.Data)
		body["filename"] = out.Document.Filename
	}
	return c.JSON(http.StatusOK, body)
}

// POST /v1/asset-requests/generate-receipt
func (h *Controller) GenerateReceipt(c echo.Context) error {
	var req GenerateReceiptReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "missing receipt fields"})
	}

	ar, err := h.Svc.Get(c.Request().Context(), req.AssetRequestID)
	if err != nil {
		if ars.Code(err) == ars.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"success": false, "error": "asset request not found"})
		}
		h.Log.Error("generate receipt", "id", req.AssetRequestID, "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "error": "internal error"})
	}
	if ar.ReceiptNumber == nil || *ar.ReceiptNumber != req.ReceiptNumber {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "receipt number does not match this request"})
	}

	doc, err := h.Receipts.Render(c.Request().Context(), ar, req.ReceiptNumber, req.AmountPaid)
	if err != nil {
		h.Log.Error("receipt render", "id", req.AssetRequestID, "err", err)
		switch receiptsvc.Code(err) {
		case receiptsvc.ErrNotPaid, receiptsvc.ErrMissingFields:
			return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "payment is not confirmed for this request"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "error": "failed to generate receipt"})
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":       true,
		"document_data": base64.StdEncoding.EncodeToString(doc.Data),
		"filename":      doc.Filename,
	})
}
