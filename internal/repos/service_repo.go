package repos

import (
	"database/sql"
	"strings"

	"phoneshop/internal/domain"

	"github.com/jmoiron/sqlx"
)

// ServiceRepo stores repair/service tickets. Same record shape as
// investments, but its own table: the two books must not mix.
type ServiceRepo struct{ db *sqlx.DB }

func NewServiceRepo(db *sqlx.DB) *ServiceRepo { return &ServiceRepo{db: db} }

func (r *ServiceRepo) List() ([]domain.ServiceTicket, error) {
	out := []domain.ServiceTicket{}
	err := r.db.Select(&out, `
	  SELECT id, name, amount, date, created_at
	  FROM services
	  ORDER BY date DESC, created_at DESC, id
	`)
	return out, err
}

func (r *ServiceRepo) Get(id string) (domain.ServiceTicket, error) {
	var s domain.ServiceTicket
	err := r.db.Get(&s, `SELECT id, name, amount, date, created_at FROM services WHERE id = ?`, id)
	return s, err
}

func (r *ServiceRepo) Create(s *domain.ServiceTicket) error {
	_, err := r.db.Exec(`INSERT INTO services(id, name, amount, date) VALUES (?, ?, ?, ?)`,
		s.ID, s.Name, s.Amount, s.Date)
	return err
}

func (r *ServiceRepo) Update(id string, patch EntryPatch) error {
	sets, args := patch.clauses()
	if len(sets) == 0 {
		var one int
		return r.db.Get(&one, `SELECT 1 FROM services WHERE id = ?`, id)
	}
	args = append(args, id)
	res, err := r.db.Exec(`UPDATE services SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete is idempotent.
func (r *ServiceRepo) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM services WHERE id = ?`, id)
	return err
}
