package dashboard

import (
	"context"

	"github.com/Maristella28/Bms-111925/model"
	drepo "github.com/Maristella28/Bms-111925/repository/dashboard"
)

type Service interface {
	Announcements(ctx context.Context) ([]model.Announcement, error)
	Hotlines(ctx context.Context) ([]model.EmergencyHotline, error)

	// ResidentPrograms lists assistance programs open to new
	// beneficiaries; full programs are filtered out of the feed.
	ResidentPrograms(ctx context.Context) ([]model.Program, error)
}

type service struct{ r drepo.Repo }

func New(r drepo.Repo) Service { return &service{r: r} }

func (s *service) Announcements(ctx context.Context) ([]model.Announcement, error) {
	return s.r.ListAnnouncements(ctx)
}

func (s *service) Hotlines(ctx context.Context) ([]model.EmergencyHotline, error) {
	return s.r.ListHotlines(ctx)
}

func (s *service) ResidentPrograms(ctx context.Context) ([]model.Program, error) {
	all, err := s.r.ListPrograms(ctx)
	if err != nil {
		return nil, err
	}
	open := make([]model.Program, 0, len(all))
	for _, p := range all {
		if !p.IsFull {
			open = append(open, p)
		}
	}
	return open, nil
}
