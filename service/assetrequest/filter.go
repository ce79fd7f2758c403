package assetrequest

import (
	"fmt"
	"strings"
	"time"

	"github.com/Maristella28/Bms-111925/model"
)

// Pure, client-local predicates over already-fetched requests. They never
// touch the store; the handlers apply them to the current page.

// FilterRequests matches free text against resident name, resident code
// and asset names, then applies the view-mode selector. The "paid" mode
// selects on payment_status regardless of the status field.
func FilterRequests(reqs []model.AssetRequest, search, viewMode string) []model.AssetRequest {
	search = strings.ToLower(strings.TrimSpace(search))
	out := make([]model.AssetRequest, 0, len(reqs))
	for _, req := range reqs {
		if search != "" && !matchesSearch(&req, search) {
			continue
		}
		switch viewMode {
		case "", "all":
		case "paid":
			if req.PaymentStatus != model.PaymentPaid {
				continue
			}
		default:
			if string(req.Status) != viewMode {
				continue
			}
		}
		out = append(out, req)
	}
	return out
}

func matchesSearch(req *model.AssetRequest, search string) bool {
	if req.Resident != nil {
		if strings.Contains(strings.ToLower(req.Resident.FullName()), search) {
			return true
		}
		if strings.Contains(strings.ToLower(req.Resident.Code), search) {
			return true
		}
	}
	for _, it := range req.Items {
		if strings.Contains(strings.ToLower(it.AssetName), search) {
			return true
		}
	}
	return false
}

// TrackingRecord is a paid request flattened to its first item for the
// tracking view.
type TrackingRecord struct {
	ItemID              int64      `json:"item_id"`
	RequestID           int64      `json:"request_id"`
	ResidentID          string     `json:"resident_id"`
	ResidentName        string     `json:"resident_name"`
	AssetName           string     `json:"asset_name"`
	AssetDescription    string     `json:"asset_description,omitempty"`
	ReceiptNumber       string     `json:"receipt_number,omitempty"`
	AmountPaid          float64    `json:"amount_paid"`
	PaidAt              *time.Time `json:"paid_at,omitempty"`
	RequestDate         time.Time  `json:"request_date"`
	RentalDurationDays  int        `json:"rental_duration_days"`
	ReturnDate          *time.Time `json:"return_date,omitempty"`
	IsReturned          bool       `json:"is_returned"`
	IsOverdue           bool       `json:"is_overdue"`
	TrackingNumber      *string    `json:"tracking_number,omitempty"`
	TrackingGeneratedAt *time.Time `json:"tracking_generated_at,omitempty"`
}

// TrackingRecords projects paid requests onto tracking rows. Requests
// that are not paid are skipped; requests without items are skipped too,
// since there is nothing to track.
func TrackingRecords(reqs []model.AssetRequest) []TrackingRecord {
	out := make([]TrackingRecord, 0, len(reqs))
	for _, req := range reqs {
		if req.PaymentStatus != model.PaymentPaid || len(req.Items) == 0 {
			continue
		}
		first := req.Items[0]
		rec := TrackingRecord{
			ItemID:              first.ID,
			RequestID:           req.ID,
			ResidentID:          residentDisplayID(req.Resident, req.ResidentID),
			AssetName:           first.AssetName,
			AssetDescription:    first.AssetDescription,
			AmountPaid:          req.TotalAmount,
			PaidAt:              req.PaidAt,
			RequestDate:         req.RequestDate,
			RentalDurationDays:  first.RentalDurationDays,
			ReturnDate:          first.ReturnDate,
			IsReturned:          first.IsReturned,
			IsOverdue:           first.IsOverdue,
			TrackingNumber:      first.TrackingNumber,
			TrackingGeneratedAt: first.TrackingGeneratedAt,
		}
		if req.Resident != nil {
			rec.ResidentName = req.Resident.FullName()
		}
		if req.ReceiptNumber != nil {
			rec.ReceiptNumber = *req.ReceiptNumber
		}
		if req.AmountPaid != nil {
			rec.AmountPaid = *req.AmountPaid
		}
		out = append(out, rec)
	}
	return out
}

// residentDisplayID normalizes the resident identifier once, instead of
// re-deriving fallbacks at every render site.
func residentDisplayID(res *model.Resident, residentID int64) string {
	if res != nil && strings.TrimSpace(res.Code) != "" {
		return res.Code
	}
	return fmt.Sprintf("R-%d", residentID)
}

// FilterTracking matches free text against the tracking view's columns,
// including tracking and receipt numbers.
func FilterTracking(recs []TrackingRecord, search string) []TrackingRecord {
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return recs
	}
	out := make([]TrackingRecord, 0, len(recs))
	for _, rec := range recs {
		if strings.Contains(strings.ToLower(rec.ResidentName), search) ||
			strings.Contains(strings.ToLower(rec.ResidentID), search) ||
			strings.Contains(strings.ToLower(rec.AssetName), search) ||
			(rec.TrackingNumber != nil && strings.Contains(strings.ToLower(*rec.TrackingNumber), search)) ||
			strings.Contains(strings.ToLower(rec.ReceiptNumber), search) {
			out = append(out, rec)
		}
	}
	return out
}
