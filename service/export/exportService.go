package export

import (
	"bytes"
	"context"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"

	"github.com/Maristella28/Bms-111925/model"
	arepo "github.com/Maristella28/Bms-111925/repository/assetrequest"
)

type Document struct {
	Filename    string
	ContentType string
	Data        []byte
}

type Service interface {
	// RequestsXLSX builds the back-office spreadsheet of all asset
	// requests, one row per item.
	RequestsXLSX(ctx context.Context) (*Document, error)

	// ReturnsCalendar builds an iCalendar feed with one event per paid
	// item's expected return deadline.
	ReturnsCalendar(ctx context.Context) (*Document, error)
}

type service struct {
	r   arepo.Repo
	now func() time.Time
}

func New(r arepo.Repo) Service { return &service{r: r, now: time.Now} }

var xlsxHeader = []string{
	"Request ID", "Resident ID", "Resident", "Asset", "Request Date",
	"Status", "Payment", "Amount", "Receipt No", "Tracking No",
	"Return Date", "Returned",
}

func (s *service) RequestsXLSX(ctx context.Context) (*Document, error) {
	// The report covers everything, not one page.
	reqs, _, _, err := s.r.ListPage(ctx, 1, 10000)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()
	const sheet = "Asset Requests"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	for col, h := range xlsxHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, req := range reqs {
		items := req.Items
		if len(items) == 0 {
			items = []model.RequestItem{{}}
		}
		for _, it := range items {
			setRow(f, sheet, row, &req, &it)
			row++
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return &Document{
		Filename:    fmt.Sprintf("asset-requests-%s.xlsx", s.now().Format("20060102")),
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Data:        buf.Bytes(),
	}, nil
}

func setRow(f *excelize.File, sheet string, row int, req *model.AssetRequest, it *model.RequestItem) {
	vals := []any{
		req.ID, "", "", it.AssetName, req.RequestDate.Format("2006-01-02"),
		string(req.Status), string(req.PaymentStatus), req.TotalAmount,
		"", "", "", it.IsReturned,
	}
	if req.Resident != nil {
		vals[1] = req.Resident.Code
		vals[2] = req.Resident.FullName()
	}
	if req.ReceiptNumber != nil {
		vals[8] = *req.ReceiptNumber
	}
	if it.TrackingNumber != nil {
		vals[9] = *it.TrackingNumber
	}
	if it.ReturnDate != nil {
		vals[10] = it.ReturnDate.Format("2006-01-02 15:04")
	}
	for col, v := range vals {
		cell, _ := excelize.CoordinatesToCellName(col+1, row)
		f.SetCellValue(sheet, cell, v)
	}
}

func (s *service) ReturnsCalendar(ctx context.Context) (*Document, error) {
	paid, err := s.r.ListPaid(ctx)
	if err != nil {
		return nil, err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//Barangay E-Governance//Asset Returns//EN")

	for _, req := range paid {
		for _, it := range req.Items {
			if it.ReturnDate == nil || it.IsReturned {
				continue
			}
			ev := cal.AddEvent(fmt.Sprintf("asset-return-%d@bms", it.ID))
			ev.SetDtStampTime(s.now())
			ev.SetStartAt(*it.ReturnDate)
			ev.SetEndAt(it.ReturnDate.Add(30 * time.Minute))
			summary := fmt.Sprintf("Return due: %s", it.AssetName)
			if req.Resident != nil {
				summary += " (" + req.Resident.FullName() + ")"
			}
			ev.SetSummary(summary)
			if it.TrackingNumber != nil {
				ev.SetDescription("Tracking " + *it.TrackingNumber)
			}
		}
	}

	return &Document{
		Filename:    "asset-returns.ics",
		ContentType: "text/calendar",
		Data:        []byte(cal.Serialize()),
	}, nil
}
