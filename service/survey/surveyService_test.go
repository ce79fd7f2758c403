package survey

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Maristella28/Bms-111925/model"
	hrepo "github.com/Maristella28/Bms-111925/repository/household"
)

type householdMock struct {
	byIDFn func(ctx context.Context, id int64) (*model.Household, error)
}

var _ hrepo.Repo = (*householdMock)(nil)

func (m *householdMock) ByID(ctx context.Context, id int64) (*model.Household, error) {
	return m.byIDFn(ctx, id)
}

func sampleHousehold() *model.Household {
	return &model.Household{
		ID:           5,
		HouseholdNo:  "HH-2024-005",
		HeadFullName: "Juan Dela Cruz",
		Address:      "123 Mabini St, Purok 2",
		MobileNumber: "09171234567",
	}
}

func TestRenderForm_Success(t *testing.T) {
	s := New(&householdMock{
		byIDFn: func(ctx context.Context, id int64) (*model.Household, error) {
			require.Equal(t, int64(5), id)
			return sampleHousehold(), nil
		},
	})

	doc, err := s.RenderForm(context.Background(), FormInput{
		HouseholdID:   5,
		TypeLabel:     "Health & Sanitation Survey",
		Questions:     []string{"How many household members?", "Is there access to clean water?"},
		CustomMessage: "Please answer honestly.",
	})
	require.NoError(t, err)
	require.Equal(t, "household-survey-HH-2024-005.html", doc.Filename)
	require.Equal(t, "text/html", doc.ContentType)

	body := string(doc.Data)
	require.Contains(t, body, "Health &amp; Sanitation Survey")
	require.Contains(t, body, "HH-2024-005")
	require.Contains(t, body, "Juan Dela Cruz")
	require.Contains(t, body, "How many household members?")
	require.Contains(t, body, "Is there access to clean water?")
	require.Contains(t, body, "Please answer honestly.")
}

func TestRenderForm_ExpiryNoticeOnlyWhenSet(t *testing.T) {
	s := New(&householdMock{
		byIDFn: func(ctx context.Context, id int64) (*model.Household, error) {
			return sampleHousehold(), nil
		},
	})
	in := FormInput{
		HouseholdID: 5,
		TypeLabel:   "Census",
		Questions:   []string{"Q1"},
	}

	doc, err := s.RenderForm(context.Background(), in)
	require.NoError(t, err)
	require.NotContains(t, string(doc.Data), "must be completed and returned by")

	exp := time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC)
	in.ExpiresAt = &exp
	doc, err = s.RenderForm(context.Background(), in)
	require.NoError(t, err)
	require.Contains(t, string(doc.Data), "must be completed and returned by April 15, 2024")
}

func TestRenderForm_NoQuestions(t *testing.T) {
	s := New(&householdMock{
		byIDFn: func(ctx context.Context, id int64) (*model.Household, error) {
			t.Fatal("store must not be hit without questions")
			return nil, nil
		},
	})

	_, err := s.RenderForm(context.Background(), FormInput{HouseholdID: 5, TypeLabel: "Census"})
	require.Equal(t, ErrNoQuestions, Code(err))
}

func TestRenderForm_HouseholdNotFound(t *testing.T) {
	s := New(&householdMock{
		byIDFn: func(ctx context.Context, id int64) (*model.Household, error) {
			return nil, sql.ErrNoRows
		},
	})

	_, err := s.RenderForm(context.Background(), FormInput{
		HouseholdID: 404, TypeLabel: "Census", Questions: []string{"Q1"},
	})
	require.Equal(t, ErrHouseholdNotFound, Code(err))
}
