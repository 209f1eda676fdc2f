package handlers

import (
	applog "phoneshop/internal/log"
	"phoneshop/internal/repos"
	"phoneshop/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	AuthHandler       *AuthHandler
	BillHandler       *BillHandler
	ProductHandler    *ProductHandler
	InvestmentHandler *InvestmentHandler
	ServiceHandler    *ServiceHandler
	ProfitHandler     *ProfitHandler
	PublicHandler     *PublicHandler
}

func NewDeps(db *sqlx.DB, auth *services.AuthService) *Deps {
	productRepo := repos.NewProductRepo(db)
	billRepo := repos.NewBillRepo(db)
	investmentRepo := repos.NewInvestmentRepo(db)
	serviceRepo := repos.NewServiceRepo(db)
	profitRepo := repos.NewProfitRepo(db)

	billingSvc := services.NewBillingService(billRepo, productRepo, applog.L())
	profitSvc := services.NewProfitService(profitRepo, billRepo, investmentRepo, applog.L())

	return &Deps{
		AuthHandler:       &AuthHandler{Auth: auth},
		BillHandler:       &BillHandler{Billing: billingSvc},
		ProductHandler:    &ProductHandler{Products: productRepo},
		InvestmentHandler: &InvestmentHandler{Investments: investmentRepo},
		ServiceHandler:    &ServiceHandler{Services: serviceRepo},
		ProfitHandler:     &ProfitHandler{Profits: profitRepo, Calc: profitSvc},
		PublicHandler:     &PublicHandler{Products: productRepo},
	}
}
