package dashboard

import (
	"context"
	"database/sql"

	"github.com/Maristella28/Bms-111925/model"
)

type Repo interface {
	ListAnnouncements(ctx context.Context) ([]model.Announcement, error)
	ListHotlines(ctx context.Context) ([]model.EmergencyHotline, error)
	ListPrograms(ctx context.Context) ([]model.Program, error)
}

type repo struct {
	db *sql.DB
}

func New(db *sql.DB) Repo { return &repo{db: db} }

func (r *repo) ListAnnouncements(ctx context.Context) ([]model.Announcement, error) {
	const q = `
		SELECT id, title, body, posted_at
		FROM announcements
		ORDER BY posted_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Announcement
	for rows.Next() {
		var a model.Announcement
		if err := rows.Scan(&a.ID, &a.Title, &a.Body, &a.PostedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *repo) ListHotlines(ctx context.Context) ([]model.EmergencyHotline, error) {
	const q = `
		SELECT id, name, hotline, type, contact_person, email, description, response_procedure
		FROM emergency_hotlines
		ORDER BY name`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.EmergencyHotline
	for rows.Next() {
		var h model.EmergencyHotline
		if err := rows.Scan(
			&h.ID, &h.Name, &h.Hotline, &h.Type,
			&h.ContactPerson, &h.Email, &h.Description, &h.ResponseProcedure,
		); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func (r *repo) ListPrograms(ctx context.Context) ([]model.Program, error) {
	const q = `
		SELECT id, name, description, max_beneficiaries, beneficiary_count
		FROM programs
		ORDER BY name`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Program
	for rows.Next() {
		var p model.Program
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.MaxBeneficiaries, &p.BeneficiaryCount); err != nil {
			return nil, err
		}
		p.IsFull = p.MaxBeneficiaries > 0 && p.BeneficiaryCount >= p.MaxBeneficiaries
		out = append(out, p)
	}
	return out, rows.Err()
}
