package repos

import (
	"phoneshop/internal/domain"

	"github.com/jmoiron/sqlx"
)

type BillRepo struct{ db *sqlx.DB }

func NewBillRepo(db *sqlx.DB) *BillRepo { return &BillRepo{db: db} }

// Create persists the bill and its line items in one transaction. The bill
// row is the audit record; stock adjustment happens separately, after this
// commits.
func (r *BillRepo) Create(b *domain.Bill) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`
	  INSERT INTO bills(id, customer_name, customer_phone, customer_email, type, amount, date)
	  VALUES (?, ?, ?, ?, ?, ?, ?)
	`, b.ID, b.CustomerName, b.CustomerPhone, b.CustomerEmail, b.Type, b.Amount, b.Date); err != nil {
		return err
	}
	for i, it := range b.Items {
		var pid any
		if it.ProductID != "" {
			pid = it.ProductID
		}
		if _, err := tx.Exec(`
		  INSERT INTO bill_items(bill_id, line_no, name, qty, price, product_id)
		  VALUES (?, ?, ?, ?, ?, ?)
		`, b.ID, i+1, it.Name, it.Qty, it.Price, pid); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// List returns all bills, most recent date first, items in line order.
func (r *BillRepo) List() ([]domain.Bill, error) {
	bills := []domain.Bill{}
	err := r.db.Select(&bills, `
	  SELECT id, customer_name, COALESCE(customer_phone,'') AS customer_phone,
	         COALESCE(customer_email,'') AS customer_email, type, amount, date, created_at
	  FROM bills
	  ORDER BY date DESC, created_at DESC, id
	`)
	if err != nil || len(bills) == 0 {
		return bills, err
	}

	ids := make([]string, len(bills))
	for i := range bills {
		bills[i].Items = []domain.BillItem{}
		ids[i] = bills[i].ID
	}

	type itemRow struct {
		BillID string `db:"bill_id"`
		domain.BillItem
	}
	query, args, err := sqlx.In(`
	  SELECT bill_id, name, qty, price, COALESCE(product_id,'') AS product_id
	  FROM bill_items
	  WHERE bill_id IN (?)
	  ORDER BY bill_id, line_no
	`, ids)
	if err != nil {
		return nil, err
	}
	var rows []itemRow
	if err := r.db.Select(&rows, query, args...); err != nil {
		return nil, err
	}

	byID := make(map[string]int, len(bills))
	for i := range bills {
		byID[bills[i].ID] = i
	}
	for _, row := range rows {
		i := byID[row.BillID]
		bills[i].Items = append(bills[i].Items, row.BillItem)
	}
	return bills, nil
}

// DateTotal is a per-period revenue/expense aggregate.
type DateTotal struct {
	Date  string  `db:"date"`
	Total float64 `db:"total"`
}

func (r *BillRepo) TotalsByDate() ([]DateTotal, error) {
	out := []DateTotal{}
	err := r.db.Select(&out, `SELECT date, SUM(amount) AS total FROM bills GROUP BY date`)
	return out, err
}

func (r *BillRepo) TotalsByMonth() ([]DateTotal, error) {
	out := []DateTotal{}
	err := r.db.Select(&out, `
	  SELECT substr(date,1,7) AS date, SUM(amount) AS total
	  FROM bills GROUP BY substr(date,1,7)
	`)
	return out, err
}
