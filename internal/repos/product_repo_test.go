package repos_test

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"

	"phoneshop/internal/domain"
	"phoneshop/internal/repos"
)

func memdb(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestAdjustStock(t *testing.T) {
	db := memdb(t)
	r := repos.NewProductRepo(db)
	if err := r.Create(&domain.Product{ID: "p-1", Name: "Back Cover", Price: 299, Quantity: 5}); err != nil {
		t.Fatal(err)
	}

	if err := r.AdjustStock("p-1", 3); err != nil {
		t.Fatal(err)
	}
	p, err := r.Get("p-1")
	if err != nil {
		t.Fatal(err)
	}
	if p.Quantity != 2 {
		t.Fatalf("want qty=2, got %d", p.Quantity)
	}

	// Crossing zero removes the row instead of persisting a negative.
	if err := r.AdjustStock("p-1", 4); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Get("p-1"); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("want ErrNoRows after exhaustion, got %v", err)
	}

	if err := r.AdjustStock("p-1", 1); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("want ErrNoRows for missing product, got %v", err)
	}
}

func TestProductUpdatePartial(t *testing.T) {
	db := memdb(t)
	r := repos.NewProductRepo(db)
	if err := r.Create(&domain.Product{ID: "p-1", Name: "USB Cable", Price: 149, Cost: 60, Quantity: 10}); err != nil {
		t.Fatal(err)
	}

	price := 129.0
	if err := r.Update("p-1", repos.ProductPatch{Price: &price}); err != nil {
		t.Fatal(err)
	}
	p, err := r.Get("p-1")
	if err != nil {
		t.Fatal(err)
	}
	if p.Price != 129 || p.Name != "USB Cable" || p.Quantity != 10 {
		t.Fatalf("partial update touched other fields: %+v", p)
	}

	if err := r.Update("missing", repos.ProductPatch{Price: &price}); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("want ErrNoRows for missing id, got %v", err)
	}
}

func TestProductDeleteIdempotent(t *testing.T) {
	db := memdb(t)
	r := repos.NewProductRepo(db)
	if err := r.Create(&domain.Product{ID: "p-1", Name: "Earphones", Price: 499, Quantity: 3}); err != nil {
		t.Fatal(err)
	}

	if err := r.Delete("p-1"); err != nil {
		t.Fatal(err)
	}
	if err := r.Delete("p-1"); err != nil {
		t.Fatalf("second delete should be a no-op, got %v", err)
	}
}

func TestProductListOrder(t *testing.T) {
	db := memdb(t)
	r := repos.NewProductRepo(db)

	// Distinct created_at values so the most-recent-first order is observable.
	rows := []struct{ id, name, ts string }{
		{"p-old", "Old Phone", "2026-08-01 10:00:00"},
		{"p-new", "New Phone", "2026-08-20 10:00:00"},
		{"p-mid", "Mid Phone", "2026-08-10 10:00:00"},
	}
	for _, row := range rows {
		if _, err := db.Exec(`INSERT INTO products(id, name, price, cost, quantity, created_at)
			VALUES (?, ?, 100, 0, 1, ?)`, row.id, row.name, row.ts); err != nil {
			t.Fatal(err)
		}
	}

	list, err := r.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 3 || list[0].ID != "p-new" || list[1].ID != "p-mid" || list[2].ID != "p-old" {
		t.Fatalf("bad order: %+v", list)
	}
}

func TestSeedAdminIdempotent(t *testing.T) {
	db := memdb(t)
	if err := repos.SeedAdmin(db, "admin", "Passw0rd!"); err != nil {
		t.Fatal(err)
	}
	if err := repos.SeedAdmin(db, "admin", "Passw0rd!"); err != nil {
		t.Fatal(err)
	}
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM users WHERE username='admin'`); err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("want 1 admin row, got %d", n)
	}
}
