package services

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"phoneshop/internal/domain"
	"phoneshop/internal/repos"
	"phoneshop/internal/validate"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrMissingCustomer = errors.New("customer name required")
	ErrBadBillType     = errors.New("bill type must be Sale or Service")
	ErrNoValidItems    = errors.New("bill needs at least one valid item")
)

// ItemInput is one requested bill line. ProductID links the line to stock;
// lines without it (ad-hoc service labor) never touch inventory.
type ItemInput struct {
	Name      string  `json:"name"`
	Qty       int     `json:"qty"`
	Price     float64 `json:"price"`
	ProductID string  `json:"productId"`
}

type BillInput struct {
	CustomerName  string      `json:"customerName"`
	CustomerPhone string      `json:"customerPhone"`
	CustomerEmail string      `json:"customerEmail"`
	Type          string      `json:"type"`
	Items         []ItemInput `json:"items"`
	Date          string      `json:"date"`
}

type BillingService struct {
	Bills    *repos.BillRepo
	Products *repos.ProductRepo
	Log      *zap.Logger
}

func NewBillingService(bills *repos.BillRepo, products *repos.ProductRepo, logger *zap.Logger) *BillingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BillingService{Bills: bills, Products: products, Log: logger}
}

// Create validates the input, persists the bill, then adjusts stock per line.
//
// The bill row is written first and stands even if stock adjustment fails
// afterwards: each item's adjustment is independent and best-effort, with
// failures logged and skipped rather than aborting the remaining items or
// un-creating the bill.
func (s *BillingService) Create(in BillInput) (*domain.Bill, error) {
	name, ok := validate.Name(in.CustomerName)
	if !ok {
		return nil, ErrMissingCustomer
	}
	billType, ok := validate.BillType(in.Type)
	if !ok {
		return nil, ErrBadBillType
	}
	date := in.Date
	if _, ok := validate.Date(date); !ok {
		date = time.Now().Format("2006-01-02")
	}

	// Drop items that fail validation; the bill carries only what survives.
	items := make([]domain.BillItem, 0, len(in.Items))
	amount := 0.0
	for _, it := range in.Items {
		itemName := strings.TrimSpace(it.Name)
		if itemName == "" || it.Qty <= 0 || it.Price < 0 {
			continue
		}
		items = append(items, domain.BillItem{
			Name:      itemName,
			Qty:       it.Qty,
			Price:     it.Price,
			ProductID: strings.TrimSpace(it.ProductID),
		})
		amount += float64(it.Qty) * it.Price
	}
	if len(items) == 0 {
		return nil, ErrNoValidItems
	}

	bill := &domain.Bill{
		ID:            uuid.NewString(),
		CustomerName:  name,
		CustomerPhone: strings.TrimSpace(in.CustomerPhone),
		CustomerEmail: strings.TrimSpace(in.CustomerEmail),
		Type:          billType,
		Items:         items,
		Amount:        amount, // never trust a client-supplied total
		Date:          date,
	}
	if err := s.Bills.Create(bill); err != nil {
		return nil, err
	}

	for _, it := range items {
		if it.ProductID == "" {
			continue
		}
		err := s.Products.AdjustStock(it.ProductID, it.Qty)
		switch {
		case err == nil:
		case errors.Is(err, sql.ErrNoRows):
			// Bill can reference a product that was deleted meanwhile.
			s.Log.Info("billing.stock.skip_missing",
				zap.String("bill_id", bill.ID), zap.String("product_id", it.ProductID))
		default:
			s.Log.Error("billing.stock.adjust_failed",
				zap.String("bill_id", bill.ID), zap.String("product_id", it.ProductID),
				zap.Int("qty", it.Qty), zap.Error(err))
		}
	}
	return bill, nil
}

func (s *BillingService) List() ([]domain.Bill, error) {
	return s.Bills.List()
}
