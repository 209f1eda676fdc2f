package domain

// Bill types
const (
	BillTypeSale    = "Sale"
	BillTypeService = "Service"
)

type Product struct {
	ID        string  `db:"id" json:"id"`
	Name      string  `db:"name" json:"name"`
	Price     float64 `db:"price" json:"price"`
	Cost      float64 `db:"cost" json:"cost"`
	Quantity  int     `db:"quantity" json:"quantity"`
	Image     string  `db:"image" json:"image,omitempty"`
	CreatedAt string  `db:"created_at" json:"createdAt"`
}

// BillItem is one line on a bill. ProductID is a weak reference: service
// bills carry free-text labor lines with no product behind them.
type BillItem struct {
	Name      string  `db:"name" json:"name"`
	Qty       int     `db:"qty" json:"qty"`
	Price     float64 `db:"price" json:"price"`
	ProductID string  `db:"product_id" json:"productId,omitempty"`
}

// Bill is immutable once created; there is no update or delete operation.
type Bill struct {
	ID            string     `db:"id" json:"id"`
	CustomerName  string     `db:"customer_name" json:"customerName"`
	CustomerPhone string     `db:"customer_phone" json:"customerPhone,omitempty"`
	CustomerEmail string     `db:"customer_email" json:"customerEmail,omitempty"`
	Type          string     `db:"type" json:"type"` // Sale | Service
	Items         []BillItem `json:"items"`
	Amount        float64    `db:"amount" json:"amount"`
	Date          string     `db:"date" json:"date"` // YYYY-MM-DD
	CreatedAt     string     `db:"created_at" json:"createdAt"`
}

type Investment struct {
	ID        string  `db:"id" json:"id"`
	Name      string  `db:"name" json:"name"`
	Amount    float64 `db:"amount" json:"amount"`
	Date      string  `db:"date" json:"date"`
	CreatedAt string  `db:"created_at" json:"createdAt"`
}

// ServiceTicket records a repair/service job taken in by the shop.
type ServiceTicket struct {
	ID        string  `db:"id" json:"id"`
	Name      string  `db:"name" json:"name"`
	Amount    float64 `db:"amount" json:"amount"`
	Date      string  `db:"date" json:"date"`
	CreatedAt string  `db:"created_at" json:"createdAt"`
}

// Profit types
const (
	ProfitDaily   = "daily"
	ProfitMonthly = "monthly"
)

// Profit is an aggregate row keyed by (type, date): date is YYYY-MM-DD for
// daily rows and YYYY-MM for monthly rows.
type Profit struct {
	ID        string  `db:"id" json:"id"`
	Type      string  `db:"type" json:"type"` // daily | monthly
	Date      string  `db:"date" json:"date"`
	Profit    float64 `db:"profit" json:"profit"`
	CreatedAt string  `db:"created_at" json:"createdAt"`
	UpdatedAt string  `db:"updated_at" json:"updatedAt,omitempty"`
}
