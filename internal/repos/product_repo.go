package repos

import (
	"database/sql"
	"strings"

	"phoneshop/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

func (r *ProductRepo) List() ([]domain.Product, error) {
	out := []domain.Product{}
	err := r.db.Select(&out, `
	  SELECT id, name, price, cost, quantity, COALESCE(image,'') AS image, created_at
	  FROM products
	  ORDER BY created_at DESC, id
	`)
	return out, err
}

func (r *ProductRepo) Get(id string) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `
	  SELECT id, name, price, cost, quantity, COALESCE(image,'') AS image, created_at
	  FROM products
	  WHERE id = ?
	`, id)
	return p, err
}

func (r *ProductRepo) Create(p *domain.Product) error {
	_, err := r.db.Exec(`
	  INSERT INTO products(id, name, price, cost, quantity, image)
	  VALUES (?, ?, ?, ?, ?, ?)
	`, p.ID, p.Name, p.Price, p.Cost, p.Quantity, p.Image)
	return err
}

// ProductPatch carries the fields of a partial update; nil means "leave as is".
type ProductPatch struct {
	Name     *string
	Price    *float64
	Cost     *float64
	Quantity *int
	Image    *string
}

// Update applies a partial update. Returns sql.ErrNoRows if the id is unknown.
func (r *ProductRepo) Update(id string, patch ProductPatch) error {
	sets := []string{}
	args := []any{}
	if patch.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *patch.Name)
	}
	if patch.Price != nil {
		sets = append(sets, "price = ?")
		args = append(args, *patch.Price)
	}
	if patch.Cost != nil {
		sets = append(sets, "cost = ?")
		args = append(args, *patch.Cost)
	}
	if patch.Quantity != nil {
		sets = append(sets, "quantity = ?")
		args = append(args, *patch.Quantity)
	}
	if patch.Image != nil {
		sets = append(sets, "image = ?")
		args = append(args, *patch.Image)
	}
	if len(sets) == 0 {
		// Nothing to change; still report unknown ids.
		var one int
		if err := r.db.Get(&one, `SELECT 1 FROM products WHERE id = ?`, id); err != nil {
			return err
		}
		return nil
	}
	args = append(args, id)
	res, err := r.db.Exec(`UPDATE products SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete is idempotent: deleting a missing id is a no-op.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM products WHERE id = ?`, id)
	return err
}

// AdjustStock subtracts "by" units as a single relative update, so two
// concurrent bills never read-modify-write each other's decrement away.
// A product driven to zero or below is removed rather than listed at 0.
// Returns sql.ErrNoRows if the product does not exist.
func (r *ProductRepo) AdjustStock(id string, by int) error {
	res, err := r.db.Exec(`UPDATE products SET quantity = quantity - ? WHERE id = ?`, by, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	_, err = r.db.Exec(`DELETE FROM products WHERE id = ? AND quantity <= 0`, id)
	return err
}
