// repository/assetrequest/repo.go
package assetrequest

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Maristella28/Bms-111925/model"
)

// ItemRow is an item joined with the parent request fields the tracking
// transition needs to check.
type ItemRow struct {
	ItemID              int64
	RequestID           int64
	RentalDurationDays  int
	TrackingNumber      *string
	RequestDate         time.Time
	ParentPaymentStatus model.PaymentStatus
}

type Repo interface {
	// Reads
	ListPage(ctx context.Context, page, perPage int) ([]model.AssetRequest, int64, int, error)
	ListPaid(ctx context.Context) ([]model.AssetRequest, error)
	GetByID(ctx context.Context, id int64) (*model.AssetRequest, error)
	StatusCounts(ctx context.Context) (model.StatusCounts, error)

	// Transitions (row locked by the caller's transaction)
	GetForUpdate(ctx context.Context, tx *sql.Tx, id int64) (model.RequestStatus, model.PaymentStatus, float64, error)
	SetStatus(ctx context.Context, tx *sql.Tx, id int64, from, to model.RequestStatus) error
	MarkPaid(ctx context.Context, tx *sql.Tx, id int64, receiptNo string, amount float64, paidAt time.Time) error
	GetItemForUpdate(ctx context.Context, tx *sql.Tx, itemID int64) (*ItemRow, error)
	SetTracking(ctx context.Context, tx *sql.Tx, itemID int64, trackingNo string, generatedAt, returnDate time.Time) error

	// Maintenance
	MarkOverdue(ctx context.Context, now time.Time) (int64, error)
}

type repo struct {
	db *sql.DB
}

func New(db *sql.DB) Repo { return &repo{db: db} }

const requestCols = `
	r.id, r.resident_id, r.status, r.payment_status, r.request_date,
	r.total_amount, r.receipt_number, r.amount_paid, r.paid_at,
	r.created_at, r.updated_at,
	res.resident_code, res.first_name, res.last_name`

func (r *repo) ListPage(ctx context.Context, page, perPage int) ([]model.AssetRequest, int64, int, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}

	var total int64
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM asset_requests`).Scan(&total); err != nil {
		return nil, 0, 0, err
	}

	const q = `
		SELECT ` + requestCols + `
		FROM asset_requests r
		JOIN residents res ON res.id = r.resident_id
		ORDER BY r.created_at DESC, r.id DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, q, perPage, (page-1)*perPage)
	if err != nil {
		return nil, 0, 0, err
	}
	out, err := scanRequests(rows)
	if err != nil {
		return nil, 0, 0, err
	}
	if err := r.attachItems(ctx, out); err != nil {
		return nil, 0, 0, err
	}

	lastPage := int((total + int64(perPage) - 1) / int64(perPage))
	if lastPage < 1 {
		lastPage = 1
	}
	return out, total, lastPage, nil
}

func (r *repo) ListPaid(ctx context.Context) ([]model.AssetRequest, error) {
	const q = `
		SELECT ` + requestCols + `
		FROM asset_requests r
		JOIN residents res ON res.id = r.resident_id
		WHERE r.payment_status = 'paid'
		ORDER BY r.paid_at DESC, r.id DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	out, err := scanRequests(rows)
	if err != nil {
		return nil, err
	}
	if err := r.attachItems(ctx, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *repo) GetByID(ctx context.Context, id int64) (*model.AssetRequest, error) {
	const q = `
		SELECT ` + requestCols + `
		FROM asset_requests r
		JOIN residents res ON res.id = r.resident_id
		WHERE r.id = $1`
	rows, err := r.db.QueryContext(ctx, q, id)
	if err != nil {
		return nil, err
	}
	out, err := scanRequests(rows)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, sql.ErrNoRows
	}
	if err := r.attachItems(ctx, out); err != nil {
		return nil, err
	}
	return &out[0], nil
}

func (r *repo) StatusCounts(ctx context.Context) (model.StatusCounts, error) {
	const q = `
		SELECT
			COUNT(*) FILTER (WHERE status = 'pending'),
			COUNT(*) FILTER (WHERE status = 'approved'),
			COUNT(*) FILTER (WHERE status = 'denied'),
			COUNT(*) FILTER (WHERE payment_status = 'paid')
		FROM asset_requests`
	var c model.StatusCounts
	err := r.db.QueryRowContext(ctx, q).Scan(&c.Pending, &c.Approved, &c.Denied, &c.Paid)
	return c, err
}

// Transitions

func (r *repo) GetForUpdate(ctx context.Context, tx *sql.Tx, id int64) (model.RequestStatus, model.PaymentStatus, float64, error) {
	const q = `
		SELECT status, payment_status, total_amount
		FROM asset_requests
		WHERE id = $1
		FOR UPDATE`
	var st model.RequestStatus
	var ps model.PaymentStatus
	var amt float64
	err := tx.QueryRowContext(ctx, q, id).Scan(&st, &ps, &amt)
	return st, ps, amt, err
}

func (r *repo) SetStatus(ctx context.Context, tx *sql.Tx, id int64, from, to model.RequestStatus) error {
	// Guard: only move off the expected state.
	const q = `
		UPDATE asset_requests
		SET status = $3,
			updated_at = now()
		WHERE id = $1
		AND status = $2`
	res, err := tx.ExecContext(ctx, q, id, from, to)
	if err != nil {
		return err
	}
	aff, _ := res.RowsAffected()
	if aff == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *repo) MarkPaid(ctx context.Context, tx *sql.Tx, id int64, receiptNo string, amount float64, paidAt time.Time) error {
	const q = `
		UPDATE asset_requests
		SET payment_status = 'paid',
			receipt_number = $2,
			amount_paid = $3,
			paid_at = $4,
			updated_at = now()
		WHERE id = $1
		AND status = 'approved'
		AND payment_status = 'unpaid'`
	res, err := tx.ExecContext(ctx, q, id, receiptNo, amount, paidAt)
	if err != nil {
		return err
	}
	aff, _ := res.RowsAffected()
	if aff == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *repo) GetItemForUpdate(ctx context.Context, tx *sql.Tx, itemID int64) (*ItemRow, error) {
	const q = `
		SELECT i.id, i.request_id, i.rental_duration_days, i.tracking_number,
			r.request_date, r.payment_status
		FROM asset_request_items i
		JOIN asset_requests r ON r.id = i.request_id
		WHERE i.id = $1
		FOR UPDATE OF i`
	row := &ItemRow{}
	err := tx.QueryRowContext(ctx, q, itemID).Scan(
		&row.ItemID, &row.RequestID, &row.RentalDurationDays,
		&row.TrackingNumber, &row.RequestDate, &row.ParentPaymentStatus,
	)
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (r *repo) SetTracking(ctx context.Context, tx *sql.Tx, itemID int64, trackingNo string, generatedAt, returnDate time.Time) error {
	// Guard: a second generation must not overwrite an existing token.
	const q = `
		UPDATE asset_request_items
		SET tracking_number = $2,
			tracking_generated_at = $3,
			return_date = $4
		WHERE id = $1
		AND tracking_number IS NULL`
	res, err := tx.ExecContext(ctx, q, itemID, trackingNo, generatedAt, returnDate)
	if err != nil {
		return err
	}
	aff, _ := res.RowsAffected()
	if aff == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Maintenance

func (r *repo) MarkOverdue(ctx context.Context, now time.Time) (int64, error) {
	const q = `
		UPDATE asset_request_items
		SET is_overdue = TRUE
		WHERE is_returned = FALSE
		AND is_overdue = FALSE
		AND return_date IS NOT NULL
		AND return_date < $1`
	res, err := r.db.ExecContext(ctx, q, now)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// scanning helpers

func scanRequests(rows *sql.Rows) ([]model.AssetRequest, error) {
	defer rows.Close()
	var out []model.AssetRequest
	for rows.Next() {
		var req model.AssetRequest
		res := &model.Resident{}
		if err := rows.Scan(
			&req.ID, &req.ResidentID, &req.Status, &req.PaymentStatus, &req.RequestDate,
			&req.TotalAmount, &req.ReceiptNumber, &req.AmountPaid, &req.PaidAt,
			&req.CreatedAt, &req.UpdatedAt,
			&res.Code, &res.FirstName, &res.LastName,
		); err != nil {
			return nil, err
		}
		res.ID = req.ResidentID
		req.Resident = res
		out = append(out, req)
	}
	return out, rows.Err()
}

func (r *repo) attachItems(ctx context.Context, reqs []model.AssetRequest) error {
	if len(reqs) == 0 {
		return nil
	}
	idx := make(map[int64]int, len(reqs))
	args := make([]any, 0, len(reqs))
	ph := make([]string, 0, len(reqs))
	for i := range reqs {
		idx[reqs[i].ID] = i
		args = append(args, reqs[i].ID)
		ph = append(ph, fmt.Sprintf("$%d", i+1))
	}

	q := `
		SELECT i.id, i.request_id, i.asset_id, a.name, a.description,
			i.rental_duration_days, i.tracking_number, i.tracking_generated_at,
			i.return_date, i.is_returned, i.is_overdue
		FROM asset_request_items i
		JOIN assets a ON a.id = i.asset_id
		WHERE i.request_id IN (` + strings.Join(ph, ",") + `)
		ORDER BY i.id`
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var it model.RequestItem
		if err := rows.Scan(
			&it.ID, &it.RequestID, &it.AssetID, &it.AssetName, &it.AssetDescription,
			&it.RentalDurationDays, &it.TrackingNumber, &it.TrackingGeneratedAt,
			&it.ReturnDate, &it.IsReturned, &it.IsOverdue,
		); err != nil {
			return err
		}
		if i, ok := idx[it.RequestID]; ok {
			reqs[i].Items = append(reqs[i].Items, it)
		}
	}
	return rows.Err()
}
