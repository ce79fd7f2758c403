package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Maristella28/Bms-111925/model"
	drepo "github.com/Maristella28/Bms-111925/repository/dashboard"
)

type repoMock struct {
	announcementsFn func(ctx context.Context) ([]model.Announcement, error)
	hotlinesFn      func(ctx context.Context) ([]model.EmergencyHotline, error)
	programsFn      func(ctx context.Context) ([]model.Program, error)
}

var _ drepo.Repo = (*repoMock)(nil)

func (m *repoMock) ListAnnouncements(ctx context.Context) ([]model.Announcement, error) {
	return m.announcementsFn(ctx)
}

func (m *repoMock) ListHotlines(ctx context.Context) ([]model.EmergencyHotline, error) {
	return m.hotlinesFn(ctx)
}

func (m *repoMock) ListPrograms(ctx context.Context) ([]model.Program, error) {
	return m.programsFn(ctx)
}

func TestResidentPrograms_HidesFullOnes(t *testing.T) {
	s := New(&repoMock{
		programsFn: func(ctx context.Context) ([]model.Program, error) {
			return []model.Program{
				{ID: 1, Name: "Feeding Program", MaxBeneficiaries: 50, BeneficiaryCount: 20},
				{ID: 2, Name: "Scholarship", MaxBeneficiaries: 10, BeneficiaryCount: 10, IsFull: true},
				{ID: 3, Name: "Livelihood Training", MaxBeneficiaries: 30, BeneficiaryCount: 29},
			}, nil
		},
	})

	out, err := s.ResidentPrograms(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)
	require.Equal(t, int64(1), out[0].ID)
	require.Equal(t, int64(3), out[1].ID)
}

func TestResidentPrograms_PropagatesError(t *testing.T) {
	boom := errors.New("store down")
	s := New(&repoMock{
		programsFn: func(ctx context.Context) ([]model.Program, error) { return nil, boom },
	})

	_, err := s.ResidentPrograms(context.Background())
	require.ErrorIs(t, err, boom)
}

func TestFeedsPassThrough(t *testing.T) {
	s := New(&repoMock{
		announcementsFn: func(ctx context.Context) ([]model.Announcement, error) {
			return []model.Announcement{{ID: 1, Title: "Barangay Assembly"}}, nil
		},
		hotlinesFn: func(ctx context.Context) ([]model.EmergencyHotline, error) {
			return []model.EmergencyHotline{{ID: 1, Name: "Fire Station", Hotline: "911"}}, nil
		},
	})

	ann, err := s.Announcements(context.Background())
	require.NoError(t, err)
	require.Len(t, ann, 1)

	hot, err := s.Hotlines(context.Background())
	require.NoError(t, err)
	require.Equal(t, "911", hot[0].Hotline)
}
