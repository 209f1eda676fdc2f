package repos

import (
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"phoneshop/internal/domain"
)

type ProfitRepo struct{ db *sqlx.DB }

func NewProfitRepo(db *sqlx.DB) *ProfitRepo { return &ProfitRepo{db: db} }

// List returns profit rows, optionally filtered by type and/or date key.
func (r *ProfitRepo) List(typ, date string) ([]domain.Profit, error) {
	q := `SELECT id, type, date, profit, created_at, COALESCE(updated_at,'') AS updated_at FROM profits`
	where := []string{}
	args := []any{}
	if typ != "" {
		where = append(where, "type = ?")
		args = append(args, typ)
	}
	if date != "" {
		where = append(where, "date = ?")
		args = append(args, date)
	}
	if len(where) > 0 {
		q += " WHERE " + where[0]
		if len(where) > 1 {
			q += " AND " + where[1]
		}
	}
	q += " ORDER BY date DESC, type"

	out := []domain.Profit{}
	err := r.db.Select(&out, q, args...)
	return out, err
}

// Upsert writes the profit figure for (type, date), overwriting any prior
// value for the same key (last write wins).
func (r *ProfitRepo) Upsert(typ, date string, profit float64) error {
	_, err := r.db.Exec(`
	  INSERT INTO profits(id, type, date, profit)
	  VALUES (?, ?, ?, ?)
	  ON CONFLICT(type, date) DO UPDATE SET
	    profit = excluded.profit,
	    updated_at = CURRENT_TIMESTAMP
	`, uuid.NewString(), typ, date, profit)
	return err
}
