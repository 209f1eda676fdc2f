package repos

import (
	"database/sql"
	"strings"

	"phoneshop/internal/domain"

	"github.com/jmoiron/sqlx"
)

type InvestmentRepo struct{ db *sqlx.DB }

func NewInvestmentRepo(db *sqlx.DB) *InvestmentRepo { return &InvestmentRepo{db: db} }

func (r *InvestmentRepo) List() ([]domain.Investment, error) {
	out := []domain.Investment{}
	err := r.db.Select(&out, `
	  SELECT id, name, amount, date, created_at
	  FROM investments
	  ORDER BY date DESC, created_at DESC, id
	`)
	return out, err
}

func (r *InvestmentRepo) Get(id string) (domain.Investment, error) {
	var inv domain.Investment
	err := r.db.Get(&inv, `SELECT id, name, amount, date, created_at FROM investments WHERE id = ?`, id)
	return inv, err
}

func (r *InvestmentRepo) Create(inv *domain.Investment) error {
	_, err := r.db.Exec(`INSERT INTO investments(id, name, amount, date) VALUES (?, ?, ?, ?)`,
		inv.ID, inv.Name, inv.Amount, inv.Date)
	return err
}

// EntryPatch carries a partial update of a {name, amount, date} record.
type EntryPatch struct {
	Name   *string
	Amount *float64
	Date   *string
}

func (p EntryPatch) clauses() ([]string, []any) {
	sets := []string{}
	args := []any{}
	if p.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *p.Name)
	}
	if p.Amount != nil {
		sets = append(sets, "amount = ?")
		args = append(args, *p.Amount)
	}
	if p.Date != nil {
		sets = append(sets, "date = ?")
		args = append(args, *p.Date)
	}
	return sets, args
}

func (r *InvestmentRepo) Update(id string, patch EntryPatch) error {
	sets, args := patch.clauses()
	if len(sets) == 0 {
		var one int
		return r.db.Get(&one, `SELECT 1 FROM investments WHERE id = ?`, id)
	}
	args = append(args, id)
	res, err := r.db.Exec(`UPDATE investments SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete is idempotent.
func (r *InvestmentRepo) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM investments WHERE id = ?`, id)
	return err
}

func (r *InvestmentRepo) TotalsByDate() ([]DateTotal, error) {
	out := []DateTotal{}
	err := r.db.Select(&out, `SELECT date, SUM(amount) AS total FROM investments GROUP BY date`)
	return out, err
}

func (r *InvestmentRepo) TotalsByMonth() ([]DateTotal, error) {
	out := []DateTotal{}
	err := r.db.Select(&out, `
	  SELECT substr(date,1,7) AS date, SUM(amount) AS total
	  FROM investments GROUP BY substr(date,1,7)
	`)
	return out, err
}
