package household

import (
	"context"
	"database/sql"

	"github.com/Maristella28/Bms-111925/model"
)

type Repo interface {
	ByID(ctx context.Context, id int64) (*model.Household, error)
}

type repo struct {
	db *sql.DB
}

func New(db *sql.DB) Repo { return &repo{db: db} }

func (r *repo) ByID(ctx context.Context, id int64) (*model.Household, error) {
	const q = `
		SELECT id, household_no, head_full_name, address, mobile_number
		FROM households
		WHERE id = $1`
	h := &model.Household{}
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&h.ID, &h.HouseholdNo, &h.HeadFullName, &h.Address, &h.MobileNumber,
	)
	if err != nil {
		return nil, err
	}
	return h, nil
}
