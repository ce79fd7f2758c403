package export

import (
	"bytes"
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Maristella28/Bms-111925/model"
	arepo "github.com/Maristella28/Bms-111925/repository/assetrequest"
)

type repoMock struct {
	listPageFn func(ctx context.Context, page, perPage int) ([]model.AssetRequest, int64, int, error)
	listPaidFn func(ctx context.Context) ([]model.AssetRequest, error)
}

var _ arepo.Repo = (*repoMock)(nil)

func (m *repoMock) ListPage(ctx context.Context, page, perPage int) ([]model.AssetRequest, int64, int, error) {
	return m.listPageFn(ctx, page, perPage)
}

func (m *repoMock) ListPaid(ctx context.Context) ([]model.AssetRequest, error) {
	return m.listPaidFn(ctx)
}

func (m *repoMock) GetByID(ctx context.Context, id int64) (*model.AssetRequest, error) {
	return nil, sql.ErrNoRows
}

func (m *repoMock) StatusCounts(ctx context.Context) (model.StatusCounts, error) {
	return model.StatusCounts{}, nil
}

func (m *repoMock) GetForUpdate(ctx context.Context, tx *sql.Tx, id int64) (model.RequestStatus, model.PaymentStatus, float64, error) {
	return "", "", 0, sql.ErrNoRows
}

func (m *repoMock) SetStatus(ctx context.Context, tx *sql.Tx, id int64, from, to model.RequestStatus) error {
	return nil
}

func (m *repoMock) MarkPaid(ctx context.Context, tx *sql.Tx, id int64, receiptNo string, amount float64, paidAt time.Time) error {
	return nil
}

func (m *repoMock) GetItemForUpdate(ctx context.Context, tx *sql.Tx, itemID int64) (*arepo.ItemRow, error) {
	return nil, sql.ErrNoRows
}

func (m *repoMock) SetTracking(ctx context.Context, tx *sql.Tx, itemID int64, trackingNo string, generatedAt, returnDate time.Time) error {
	return nil
}

func (m *repoMock) MarkOverdue(ctx context.Context, now time.Time) (int64, error) { return 0, nil }

func exportData() []model.AssetRequest {
	receiptNo := "RCPT-20240311-AB12CD"
	trk := "TRK-20240311-EF34AB"
	returnAt := time.Date(2024, 3, 4, 17, 0, 0, 0, time.UTC)
	return []model.AssetRequest{
		{
			ID:            7,
			ResidentID:    1,
			Resident:      &model.Resident{ID: 1, Code: "RES-001", FirstName: "Juan", LastName: "Dela Cruz"},
			Status:        model.RequestApproved,
			PaymentStatus: model.PaymentPaid,
			RequestDate:   time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
			TotalAmount:   350,
			ReceiptNumber: &receiptNo,
			Items: []model.RequestItem{
				{ID: 71, AssetName: "Plastic Chairs", RentalDurationDays: 3, TrackingNumber: &trk, ReturnDate: &returnAt},
				{ID: 72, AssetName: "Folding Tables", RentalDurationDays: 3, IsReturned: true, ReturnDate: &returnAt},
			},
		},
	}
}

func TestRequestsXLSX(t *testing.T) {
	m := &repoMock{
		listPageFn: func(ctx context.Context, page, perPage int) ([]model.AssetRequest, int64, int, error) {
			require.Equal(t, 1, page)
			return exportData(), 1, 1, nil
		},
	}
	s := New(m)

	doc, err := s.RequestsXLSX(context.Background())
	require.NoError(t, err)
	require.Contains(t, doc.Filename, ".xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(doc.Data))
	require.NoError(t, err)
	defer f.Close()

	const sheet = "Asset Requests"
	a1, err := f.GetCellValue(sheet, "A1")
	require.NoError(t, err)
	require.Equal(t, "Request ID", a1)

	// one row per item
	c2, _ := f.GetCellValue(sheet, "C2")
	require.Equal(t, "Juan Dela Cruz", c2)
	d2, _ := f.GetCellValue(sheet, "D2")
	require.Equal(t, "Plastic Chairs", d2)
	d3, _ := f.GetCellValue(sheet, "D3")
	require.Equal(t, "Folding Tables", d3)
	j2, _ := f.GetCellValue(sheet, "J2")
	require.Equal(t, "TRK-20240311-EF34AB", j2)
}

func TestReturnsCalendar(t *testing.T) {
	m := &repoMock{
		listPaidFn: func(ctx context.Context) ([]model.AssetRequest, error) {
			return exportData(), nil
		},
	}
	s := New(m)

	doc, err := s.ReturnsCalendar(context.Background())
	require.NoError(t, err)
	require.Equal(t, "asset-returns.ics", doc.Filename)

	body := string(doc.Data)
	require.Contains(t, body, "BEGIN:VCALENDAR")
	require.Contains(t, body, "asset-return-71@bms")
	require.Contains(t, body, "Plastic Chairs")
	// returned items do not get an event
	require.NotContains(t, body, "asset-return-72@bms")
}
