package services_test

import (
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phoneshop/internal/domain"
	"phoneshop/internal/repos"
	"phoneshop/internal/services"
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

func seedProduct(t *testing.T, db *sqlx.DB, id, name string, price float64, qty int) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO products(id, name, price, cost, quantity) VALUES (?, ?, ?, 0, ?)`,
		id, name, price, qty)
	if err != nil {
		t.Fatal(err)
	}
}

func newBillingService(db *sqlx.DB) *services.BillingService {
	return services.NewBillingService(repos.NewBillRepo(db), repos.NewProductRepo(db), nil)
}

func TestCreateBill_DecrementsStock(t *testing.T) {
	db := memdb(t)
	seedProduct(t, db, "p-1", "iPhone 12 Battery", 1500, 5)
	svc := newBillingService(db)

	bill, err := svc.Create(services.BillInput{
		CustomerName: "Harish",
		Type:         "Sale",
		Date:         "2026-08-30",
		Items: []services.ItemInput{
			{Name: "iPhone 12 Battery", Qty: 3, Price: 1500, ProductID: "p-1"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 4500.0, bill.Amount)

	p, err := repos.NewProductRepo(db).Get("p-1")
	require.NoError(t, err)
	assert.Equal(t, 2, p.Quantity)
}

func TestCreateBill_DeletesExhaustedProduct(t *testing.T) {
	db := memdb(t)
	seedProduct(t, db, "p-1", "Screen Guard", 199, 5)
	svc := newBillingService(db)

	_, err := svc.Create(services.BillInput{
		CustomerName: "Asha",
		Items: []services.ItemInput{
			{Name: "Screen Guard", Qty: 5, Price: 199, ProductID: "p-1"},
		},
	})
	require.NoError(t, err)

	// Zero stock removes the listing, it is never shown as "0 in stock".
	_, err = repos.NewProductRepo(db).Get("p-1")
	assert.Error(t, err)

	var n int
	require.NoError(t, db.Get(&n, `SELECT COUNT(*) FROM products WHERE id='p-1'`))
	assert.Equal(t, 0, n)
}

func TestCreateBill_MissingProductDoesNotFailBill(t *testing.T) {
	db := memdb(t)
	svc := newBillingService(db)

	bill, err := svc.Create(services.BillInput{
		CustomerName: "Ravi",
		Items: []services.ItemInput{
			{Name: "Old Stock Charger", Qty: 1, Price: 300, ProductID: "gone"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 300.0, bill.Amount)

	var n int
	require.NoError(t, db.Get(&n, `SELECT COUNT(*) FROM bills`))
	assert.Equal(t, 1, n)
}

func TestCreateBill_ItemsWithoutProductSkipStock(t *testing.T) {
	db := memdb(t)
	seedProduct(t, db, "p-1", "Charging Port", 450, 2)
	svc := newBillingService(db)

	bill, err := svc.Create(services.BillInput{
		CustomerName: "Meena",
		Type:         "Service",
		Items: []services.ItemInput{
			{Name: "Charging port replacement labor", Qty: 1, Price: 250},
			{Name: "Charging Port", Qty: 1, Price: 450, ProductID: "p-1"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 700.0, bill.Amount)

	p, err := repos.NewProductRepo(db).Get("p-1")
	require.NoError(t, err)
	assert.Equal(t, 1, p.Quantity)
}

func TestCreateBill_DropsInvalidItemsAndComputesAmount(t *testing.T) {
	db := memdb(t)
	svc := newBillingService(db)

	bill, err := svc.Create(services.BillInput{
		CustomerName: "Kiran",
		Items: []services.ItemInput{
			{Name: "", Qty: 1, Price: 100},            // dropped: no name
			{Name: "Tempered Glass", Qty: 0, Price: 99}, // dropped: qty
			{Name: "Back Cover", Qty: 2, Price: -5},     // dropped: price
			{Name: "USB Cable", Qty: 2, Price: 149.50},
		},
	})
	require.NoError(t, err)
	require.Len(t, bill.Items, 1)
	assert.Equal(t, "USB Cable", bill.Items[0].Name)
	assert.Equal(t, 299.0, bill.Amount)
}

func TestCreateBill_RejectedWhenNoValidItems(t *testing.T) {
	db := memdb(t)
	svc := newBillingService(db)

	_, err := svc.Create(services.BillInput{
		CustomerName: "Nobody",
		Items: []services.ItemInput{
			{Name: "", Qty: 1, Price: 100},
			{Name: "X", Qty: -1, Price: 100},
		},
	})
	require.ErrorIs(t, err, services.ErrNoValidItems)

	// No audit record for a rejected bill.
	var n int
	require.NoError(t, db.Get(&n, `SELECT COUNT(*) FROM bills`))
	assert.Equal(t, 0, n)
}

func TestCreateBill_RequiresCustomerName(t *testing.T) {
	db := memdb(t)
	svc := newBillingService(db)

	_, err := svc.Create(services.BillInput{
		Items: []services.ItemInput{{Name: "USB Cable", Qty: 1, Price: 149}},
	})
	require.ErrorIs(t, err, services.ErrMissingCustomer)
}

func TestCreateBill_RejectsUnknownType(t *testing.T) {
	db := memdb(t)
	svc := newBillingService(db)

	_, err := svc.Create(services.BillInput{
		CustomerName: "Kiran",
		Type:         "Refund",
		Items:        []services.ItemInput{{Name: "USB Cable", Qty: 1, Price: 149}},
	})
	require.ErrorIs(t, err, services.ErrBadBillType)
}

func TestListBills_MostRecentDateFirst(t *testing.T) {
	db := memdb(t)
	svc := newBillingService(db)

	for _, d := range []string{"2026-08-01", "2026-08-15", "2026-08-07"} {
		_, err := svc.Create(services.BillInput{
			CustomerName: "Customer " + d,
			Date:         d,
			Items:        []services.ItemInput{{Name: "Item", Qty: 1, Price: 10}},
		})
		require.NoError(t, err)
	}

	bills, err := svc.List()
	require.NoError(t, err)
	require.Len(t, bills, 3)
	assert.Equal(t, "2026-08-15", bills[0].Date)
	assert.Equal(t, "2026-08-07", bills[1].Date)
	assert.Equal(t, "2026-08-01", bills[2].Date)
	for _, b := range bills {
		assert.NotEmpty(t, b.Items)
	}
}

func TestListBills_ItemsKeepLineOrder(t *testing.T) {
	db := memdb(t)
	svc := newBillingService(db)

	_, err := svc.Create(services.BillInput{
		CustomerName: "Order Check",
		Date:         "2026-08-20",
		Items: []services.ItemInput{
			{Name: "First", Qty: 1, Price: 10},
			{Name: "Second", Qty: 2, Price: 20},
			{Name: "Third", Qty: 3, Price: 30},
		},
	})
	require.NoError(t, err)

	bills, err := svc.List()
	require.NoError(t, err)
	require.Len(t, bills, 1)
	require.Len(t, bills[0].Items, 3)
	assert.Equal(t, []string{"First", "Second", "Third"},
		[]string{bills[0].Items[0].Name, bills[0].Items[1].Name, bills[0].Items[2].Name})
	assert.Equal(t, domain.BillTypeSale, bills[0].Type)
}
