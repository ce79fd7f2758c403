package receipt

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"time"

	"github.com/Maristella28/Bms-111925/model"
)

// errors used by controllers

type ErrCode string

const (
	ErrNotPaid       ErrCode = "NOT_PAID"
	ErrMissingFields ErrCode = "MISSING_RECEIPT_FIELDS"
	ErrRender        ErrCode = "RENDER_FAILED"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

// Document is a rendered, downloadable receipt.
type Document struct {
	Filename    string
	ContentType string
	Data        []byte
}

type Service interface {
	// Render produces the printable receipt for a paid request. It refuses
	// to render when the request is not paid or the receipt fields are
	// missing, without touching the template.
	Render(ctx context.Context, req *model.AssetRequest, receiptNo string, amountPaid float64) (*Document, error)
}

type service struct {
	tmpl *template.Template
	now  func() time.Time
}

func New() Service {
	return &service{
		tmpl: template.Must(template.New("receipt").Parse(receiptTemplate)),
		now:  time.Now,
	}
}

type receiptView struct {
	ReceiptNumber string
	ResidentName  string
	ResidentCode  string
	RequestID     int64
	RequestDate   string
	PaidAt        string
	AmountPaid    string
	Items         []receiptItemView
	GeneratedAt   string
}

type receiptItemView struct {
	AssetName    string
	DurationDays int
	ReturnDate   string
}

func (s *service) Render(ctx context.Context, req *model.AssetRequest, receiptNo string, amountPaid float64) (*Document, error) {
	if req == nil {
		return nil, makeErr(ErrMissingFields)
	}
	if req.PaymentStatus != model.PaymentPaid {
		return nil, makeErr(ErrNotPaid)
	}
	if receiptNo == "" || amountPaid <= 0 {
		return nil, makeErr(ErrMissingFields)
	}

	view := receiptView{
		ReceiptNumber: receiptNo,
		RequestID:     req.ID,
		RequestDate:   req.RequestDate.Format("January 2, 2006"),
		AmountPaid:    fmt.Sprintf("%.2f", amountPaid),
		GeneratedAt:   s.now().Format("January 2, 2006 at 3:04 PM"),
	}
	if req.Resident != nil {
		view.ResidentName = req.Resident.FullName()
		view.ResidentCode = req.Resident.Code
	}
	if req.PaidAt != nil {
		view.PaidAt = req.PaidAt.Format("January 2, 2006 at 3:04 PM")
	}
	for _, it := range req.Items {
		iv := receiptItemView{AssetName: it.AssetName, DurationDays: it.RentalDurationDays}
		if it.ReturnDate != nil {
			iv.ReturnDate = it.ReturnDate.Format("January 2, 2006 3:04 PM")
		}
		view.Items = append(view.Items, iv)
	}

	var buf bytes.Buffer
	if err := s.tmpl.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("%w: %v", makeErr(ErrRender), err)
	}
	return &Document{
		Filename:    fmt.Sprintf("receipt-%s.html", receiptNo),
		ContentType: "text/html",
		Data:        buf.Bytes(),
	}, nil
}
