package assetrequest

type UpdateStatusReq struct {
	Status string `json:"status" validate:"required,oneof=approved denied"`
}

type PayReq struct {
	// Optional override; the request's total amount is charged otherwise.
	AmountPaid *float64 `json:"amount_paid" validate:"omitempty,gt=0"`
}

type GenerateTrackingReq struct {
	// ISO-8601; empty means the default return-date policy applies.
	ReturnDate string `json:"return_date" validate:"omitempty"`
}

type GenerateReceiptReq struct {
	AssetRequestID int64   `json:"asset_request_id" validate:"required,gt=0"`
	ReceiptNumber  string  `json:"receipt_number" validate:"required"`
	AmountPaid     float64 `json:"amount_paid" validate:"required,gt=0"`
}
