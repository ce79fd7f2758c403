package assetrequest

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/Maristella28/Bms-111925/model"
	arepo "github.com/Maristella28/Bms-111925/repository/assetrequest"
	receiptsvc "github.com/Maristella28/Bms-111925/service/receipt"
)

// errors used by controllers

type ErrCode string

const (
	ErrNotFound       ErrCode = "NOT_FOUND"
	ErrNotPending     ErrCode = "NOT_PENDING"
	ErrNotApproved    ErrCode = "NOT_APPROVED"
	ErrAlreadyPaid    ErrCode = "ALREADY_PAID"
	ErrDenied         ErrCode = "REQUEST_DENIED"
	ErrNotPaid        ErrCode = "NOT_PAID"
	ErrTrackingExists ErrCode = "TRACKING_EXISTS"
	ErrNoItems        ErrCode = "NO_ITEMS"
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

// dto

type Page struct {
	Data        []model.AssetRequest `json:"data"`
	CurrentPage int                  `json:"current_page"`
	LastPage    int                  `json:"last_page"`
	Total       int64                `json:"total"`
}

type PaymentResult struct {
	ReceiptNumber string
	AmountPaid    float64
	Request       *model.AssetRequest
}

type TrackingResult struct {
	ItemID         int64
	TrackingNumber string
	GeneratedAt    time.Time
	ReturnDate     time.Time
}

// QuickProcessResult reports the composite operation step by step. A nil
// TrackingErr/DocumentErr means that step succeeded; approval and payment
// failures abort the whole operation instead and come back as the error.
type QuickProcessResult struct {
	Request        *model.AssetRequest
	ReceiptNumber  string
	AmountPaid     float64
	TrackingNumber string
	TrackingErr    error
	Document       *receiptsvc.Document
	DocumentErr    error
}

type Service interface {
	// Reads
	List(ctx context.Context, page, perPage int) (*Page, error)
	Tracking(ctx context.Context) ([]TrackingRecord, error)
	StatusCounts(ctx context.Context) (model.StatusCounts, error)
	Get(ctx context.Context, id int64) (*model.AssetRequest, error)

	// Lifecycle transitions. Approve and Decline require status=pending;
	// a repeat call is rejected, not treated as an idempotent success.
	Approve(ctx context.Context, id int64) (*model.AssetRequest, error)
	Decline(ctx context.Context, id int64) (*model.AssetRequest, error)
	Pay(ctx context.Context, id int64, amountOverride *float64) (*PaymentResult, error)
	GenerateTracking(ctx context.Context, itemID int64, returnAt *time.Time) (*TrackingResult, error)

	// QuickProcess chains Approve, Pay, tracking on the first item and the
	// receipt render in one operator action.
	QuickProcess(ctx context.Context, id int64) (*QuickProcessResult, error)

	// SweepOverdue flags paid, unreturned items past their return date.
	SweepOverdue(ctx context.Context) (int64, error)
}

// ----- Service implementation -----

type service struct {
	db       *sql.DB
	r        arepo.Repo
	receipts receiptsvc.Service
	rdb      *redis.Client
	now      func() time.Time
}

func New(db *sql.DB, r arepo.Repo, receipts receiptsvc.Service, rdb *redis.Client) Service {
	return &service{db: db, r: r, receipts: receipts, rdb: rdb, now: time.Now}
}

func (s *service) List(ctx context.Context, page, perPage int) (*Page, error) {
	data, total, lastPage, err := s.r.ListPage(ctx, page, perPage)
	if err != nil {
		return nil, err
	}
	if page < 1 {
		page = 1
	}
	return &Page{Data: data, CurrentPage: page, LastPage: lastPage, Total: total}, nil
}

func (s *service) Tracking(ctx context.Context) ([]TrackingRecord, error) {
	paid, err := s.r.ListPaid(ctx)
	if err != nil {
		return nil, err
	}
	return TrackingRecords(paid), nil
}

func (s *service) Get(ctx context.Context, id int64) (*model.AssetRequest, error) {
	req, err := s.r.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, makeErr(ErrNotFound)
	}
	return req, err
}

const countsKey = "asset_requests:status_counts"
const countsTTL = 30 * time.Second

// StatusCounts serves the dashboard poll; cached for one poll interval
// and recomputed from the store on a miss or when redis is absent.
func (s *service) StatusCounts(ctx context.Context) (model.StatusCounts, error) {
	if s.rdb != nil {
		if b, err := s.rdb.Get(ctx, countsKey).Bytes(); err == nil {
			var c model.StatusCounts
			if json.Unmarshal(b, &c) == nil {
				return c, nil
			}
		}
	}
	c, err := s.r.StatusCounts(ctx)
	if err != nil {
		return c, err
	}
	if s.rdb != nil {
		if b, err := json.Marshal(c); err == nil {
			s.rdb.Set(ctx, countsKey, b, countsTTL)
		}
	}
	return c, nil
}

func (s *service) invalidateCounts(ctx context.Context) {
	if s.rdb != nil {
		s.rdb.Del(ctx, countsKey)
	}
}

func (s *service) Approve(ctx context.Context, id int64) (*model.AssetRequest, error) {
	return s.decide(ctx, id, model.RequestApproved)
}

func (s *service) Decline(ctx context.Context, id int64) (*model.AssetRequest, error) {
	return s.decide(ctx, id, model.RequestDenied)
}

// decide moves a pending request to approved or denied under a row lock.
func (s *service) decide(ctx context.Context, id int64, to model.RequestStatus) (_ *model.AssetRequest, err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	st, _, _, err := s.r.GetForUpdate(ctx, tx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, makeErr(ErrNotFound)
		}
		return nil, err
	}
	if st != model.RequestPending {
		return nil, makeErr(ErrNotPending)
	}

	if err = s.r.SetStatus(ctx, tx, id, model.RequestPending, to); err != nil {
		return nil, err
	}
	if err = tx.Commit(); err != nil {
		return nil, err
	}

	s.invalidateCounts(ctx)
	return s.r.GetByID(ctx, id)
}

func (s *service) Pay(ctx context.Context, id int64, amountOverride *float64) (_ *PaymentResult, err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	st, ps, total, err := s.r.GetForUpdate(ctx, tx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, makeErr(ErrNotFound)
		}
		return nil, err
	}
	switch {
	case ps == model.PaymentPaid:
		return nil, makeErr(ErrAlreadyPaid)
	case st == model.RequestDenied:
		return nil, makeErr(ErrDenied)
	case st != model.RequestApproved:
		return nil, makeErr(ErrNotApproved)
	}

	amount := total
	if amountOverride != nil {
		amount = *amountOverride
	}
	now := s.now()
	receiptNo := mintToken("RCPT", now)

	if err = s.r.MarkPaid(ctx, tx, id, receiptNo, amount, now); err != nil {
		return nil, err
	}
	if err = tx.Commit(); err != nil {
		return nil, err
	}

	s.invalidateCounts(ctx)
	req, err := s.r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &PaymentResult{ReceiptNumber: receiptNo, AmountPaid: amount, Request: req}, nil
}

func (s *service) GenerateTracking(ctx context.Context, itemID int64, returnAt *time.Time) (_ *TrackingResult, err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	row, err := s.r.GetItemForUpdate(ctx, tx, itemID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, makeErr(ErrNotFound)
		}
		return nil, err
	}
	if row.TrackingNumber != nil {
		return nil, makeErr(ErrTrackingExists)
	}
	if row.ParentPaymentStatus != model.PaymentPaid {
		return nil, makeErr(ErrNotPaid)
	}

	now := s.now()
	ret := DefaultReturnDate(row.RequestDate, row.RentalDurationDays)
	if returnAt != nil {
		ret = *returnAt
	}
	trk := mintToken("TRK", now)

	if err = s.r.SetTracking(ctx, tx, itemID, trk, now, ret); err != nil {
		return nil, err
	}
	if err = tx.Commit(); err != nil {
		return nil, err
	}

	return &TrackingResult{ItemID: itemID, TrackingNumber: trk, GeneratedAt: now, ReturnDate: ret}, nil
}

// QuickProcess runs Approve, Pay, first-item tracking and the receipt
// render in order. Approval or payment failures abort; a tracking failure
// leaves the paid request committed and is reported separately so the
// operator can retry tracking alone; a document failure never fails the
// business effect.
func (s *service) QuickProcess(ctx context.Context, id int64) (*QuickProcessResult, error) {
	if _, err := s.Approve(ctx, id); err != nil {
		return nil, fmt.Errorf("approve: %w", err)
	}

	pay, err := s.Pay(ctx, id, nil)
	if err != nil {
		return nil, fmt.Errorf("pay: %w", err)
	}

	res := &QuickProcessResult{
		Request:       pay.Request,
		ReceiptNumber: pay.ReceiptNumber,
		AmountPaid:    pay.AmountPaid,
	}

	if len(pay.Request.Items) == 0 {
		res.TrackingErr = makeErr(ErrNoItems)
	} else {
		tr, err := s.GenerateTracking(ctx, pay.Request.Items[0].ID, nil)
		if err != nil {
			res.TrackingErr = err
		} else {
			res.TrackingNumber = tr.TrackingNumber
			if req, err := s.r.GetByID(ctx, id); err == nil {
				res.Request = req
			}
		}
	}

	doc, err := s.receipts.Render(ctx, res.Request, res.ReceiptNumber, res.AmountPaid)
	if err != nil {
		res.DocumentErr = err
	} else {
		res.Document = doc
	}
	return res, nil
}

func (s *service) SweepOverdue(ctx context.Context) (int64, error) {
	return s.r.MarkOverdue(ctx, s.now())
}

// DefaultReturnDate is the return deadline used when the operator does
// not pick one: request date plus the rental duration, pinned to 5:00 PM.
func DefaultReturnDate(requestDate time.Time, durationDays int) time.Time {
	if durationDays < 1 {
		durationDays = 1
	}
	d := requestDate.AddDate(0, 0, durationDays)
	return time.Date(d.Year(), d.Month(), d.Day(), 17, 0, 0, 0, d.Location())
}

// mintToken builds RCPT-/TRK- tokens; uniqueness is backed by the unique
// columns on asset_requests and asset_request_items.
func mintToken(prefix string, now time.Time) string {
	id := uuid.New()
	return fmt.Sprintf("%s-%s-%X", prefix, now.Format("20060102"), id[:3])
}
