package repo

import (
	"github.com/GlebRadaev/vivento/internal/pg"
	balancerepo "github.com/GlebRadaev/vivento/internal/repo/balance-repo"
	eventrepo "github.com/GlebRadaev/vivento/internal/repo/event-repo"
	guestrepo "github.com/GlebRadaev/vivento/internal/repo/guest-repo"
	ledgerrepo "github.com/GlebRadaev/vivento/internal/repo/ledger-repo"
	paymentrepo "github.com/GlebRadaev/vivento/internal/repo/payment-repo"
	templaterepo "github.com/GlebRadaev/vivento/internal/repo/template-repo"
	userrepo "github.com/GlebRadaev/vivento/internal/repo/user-repo"
	"github.com/GlebRadaev/vivento/internal/service/authservice"
	"github.com/GlebRadaev/vivento/internal/service/balanceservice"
	"github.com/GlebRadaev/vivento/internal/service/eventservice"
	"github.com/GlebRadaev/vivento/internal/service/paymentservice"
	"github.com/GlebRadaev/vivento/internal/service/templateservice"
)

type Repositories struct {
	UserRepo     authservice.Repo
	BalanceRepo  balanceservice.BalanceRepo
	LedgerRepo   balanceservice.LedgerRepo
	PaymentRepo  paymentservice.Repo
	TemplateRepo templateservice.Repo
	EventRepo    eventservice.EventRepo
	GuestRepo    eventservice.GuestRepo
	TxManager    pg.TXManager
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:     userrepo.New(conn),
		BalanceRepo:  balancerepo.New(conn),
		LedgerRepo:   ledgerrepo.New(conn),
		PaymentRepo:  paymentrepo.New(conn),
		TemplateRepo: templaterepo.New(conn),
		EventRepo:    eventrepo.New(conn),
		GuestRepo:    guestrepo.New(conn),
		TxManager:    txManager,
	}
}
