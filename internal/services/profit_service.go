package services

import (
	"phoneshop/internal/repos"

	"go.uber.org/zap"
)

// ProfitService derives profit rows from the books: for each day and month,
// profit = bill revenue minus investment expenses.
type ProfitService struct {
	Profits     *repos.ProfitRepo
	Bills       *repos.BillRepo
	Investments *repos.InvestmentRepo
	Log         *zap.Logger
}

func NewProfitService(profits *repos.ProfitRepo, bills *repos.BillRepo, investments *repos.InvestmentRepo, logger *zap.Logger) *ProfitService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProfitService{Profits: profits, Bills: bills, Investments: investments, Log: logger}
}

// Recalculate recomputes every daily and monthly profit row and upserts the
// results. Returns the number of rows written.
func (s *ProfitService) Recalculate() (int, error) {
	written := 0

	daily, err := s.periodProfits(s.Bills.TotalsByDate, s.Investments.TotalsByDate)
	if err != nil {
		return written, err
	}
	for date, profit := range daily {
		if err := s.Profits.Upsert("daily", date, profit); err != nil {
			return written, err
		}
		written++
	}

	monthly, err := s.periodProfits(s.Bills.TotalsByMonth, s.Investments.TotalsByMonth)
	if err != nil {
		return written, err
	}
	for date, profit := range monthly {
		if err := s.Profits.Upsert("monthly", date, profit); err != nil {
			return written, err
		}
		written++
	}

	s.Log.Info("profit.recalculated", zap.Int("rows", written))
	return written, nil
}

func (s *ProfitService) periodProfits(sales, expenses func() ([]repos.DateTotal, error)) (map[string]float64, error) {
	out := map[string]float64{}
	rows, err := sales()
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		out[r.Date] += r.Total
	}
	rows, err = expenses()
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		out[r.Date] -= r.Total
	}
	return out, nil
}
