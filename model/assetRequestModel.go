// model/assetRequest.go
package model

import "time"

type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestDenied   RequestStatus = "denied"
)

type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "unpaid"
	PaymentPaid   PaymentStatus = "paid"
)

// AssetRequest is a resident's ask to rent one or more barangay assets.
// paid implies approved, a receipt number and a paid_at timestamp;
// a denied request stays unpaid forever.
type AssetRequest struct {
	ID            int64         `json:"id"`
	ResidentID    int64         `json:"resident_id"`
	Resident      *Resident     `json:"resident,omitempty"`
	Status        RequestStatus `json:"status"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	RequestDate   time.Time     `json:"request_date"`
	TotalAmount   float64       `json:"total_amount"`
	ReceiptNumber *string       `json:"receipt_number,omitempty"`
	AmountPaid    *float64      `json:"amount_paid,omitempty"`
	PaidAt        *time.Time    `json:"paid_at,omitempty"`
	Items         []RequestItem `json:"items"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// RequestItem is one asset line within a request. Items are owned by
// their request and carry the tracking fields once the request is paid.
type RequestItem struct {
	ID                  int64      `json:"id"`
	RequestID           int64      `json:"request_id"`
	AssetID             int64      `json:"asset_id"`
	AssetName           string     `json:"asset_name"`
	AssetDescription    string     `json:"asset_description,omitempty"`
	RentalDurationDays  int        `json:"rental_duration_days"`
	TrackingNumber      *string    `json:"tracking_number,omitempty"`
	TrackingGeneratedAt *time.Time `json:"tracking_generated_at,omitempty"`
	ReturnDate          *time.Time `json:"return_date,omitempty"`
	IsReturned          bool       `json:"is_returned"`
	IsOverdue           bool       `json:"is_overdue"`
}

// Receipt is the proof-of-payment record produced by the Pay transition.
type Receipt struct {
	ReceiptNumber  string    `json:"receipt_number"`
	AmountPaid     float64   `json:"amount_paid"`
	AssetRequestID int64     `json:"asset_request_id"`
	IssuedAt       time.Time `json:"issued_at"`
}

type StatusCounts struct {
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Denied   int64 `json:"denied"`
	Paid     int64 `json:"paid"`
}
