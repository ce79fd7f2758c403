package survey

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"html/template"
	"time"

	"github.com/Maristella28/Bms-111925/model"
	hrepo "github.com/Maristella28/Bms-111925/repository/household"
)

// errors used by controllers

type ErrCode string

const (
	ErrHouseholdNotFound ErrCode = "HOUSEHOLD_NOT_FOUND"
	ErrNoQuestions       ErrCode = "NO_QUESTIONS"
	ErrRender            ErrCode = "RENDER_FAILED"
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

// FormInput describes one survey form to print for a household.
type FormInput struct {
	HouseholdID   int64
	TypeLabel     string
	Questions     []string
	CustomMessage string
	SentAt        *time.Time
	ExpiresAt     *time.Time
}

type Document struct {
	Filename    string
	ContentType string
	Data        []byte
}

type Service interface {
	// RenderForm produces a printable household survey form: one blank
	// answer area per question, with the expiry notice rendered only
	// when an expiry timestamp is present.
	RenderForm(ctx context.Context, in FormInput) (*Document, error)
}

type service struct {
	hr   hrepo.Repo
	tmpl *template.Template
	now  func() time.Time
}

func New(hr hrepo.Repo) Service {
	return &service{
		hr:   hr,
		tmpl: template.Must(template.New("survey").Parse(surveyFormTemplate)),
		now:  time.Now,
	}
}

type questionView struct {
	Number int
	Text   string
}

type formView struct {
	TypeLabel     string
	Household     *model.Household
	SentAt        string
	ExpiresAt     string
	CustomMessage string
	Questions     []questionView
	GeneratedAt   string
}

func (s *service) RenderForm(ctx context.Context, in FormInput) (*Document, error) {
	if len(in.Questions) == 0 {
		return nil, makeErr(ErrNoQuestions)
	}

	hh, err := s.hr.ByID(ctx, in.HouseholdID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, makeErr(ErrHouseholdNotFound)
		}
		return nil, err
	}

	view := formView{
		TypeLabel:     in.TypeLabel,
		Household:     hh,
		CustomMessage: in.CustomMessage,
		GeneratedAt:   s.now().Format("January 2, 2006 at 3:04 PM"),
	}
	if in.SentAt != nil {
		view.SentAt = in.SentAt.Format("January 2, 2006")
	}
	if in.ExpiresAt != nil {
		view.ExpiresAt = in.ExpiresAt.Format("January 2, 2006")
	}
	for i, q := range in.Questions {
		view.Questions = append(view.Questions, questionView{Number: i + 1, Text: q})
	}

	var buf bytes.Buffer
	if err := s.tmpl.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("%w: %v", makeErr(ErrRender), err)
	}
	return &Document{
		Filename:    fmt.Sprintf("household-survey-%s.html", hh.HouseholdNo),
		ContentType: "text/html",
		Data:        buf.Bytes(),
	}, nil
}
