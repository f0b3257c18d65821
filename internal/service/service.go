package service

import (
	"github.com/GlebRadaev/vivento/internal/config"
	"github.com/GlebRadaev/vivento/internal/handlers/auth"
	"github.com/GlebRadaev/vivento/internal/handlers/balance"
	"github.com/GlebRadaev/vivento/internal/handlers/events"
	"github.com/GlebRadaev/vivento/internal/handlers/invite"
	"github.com/GlebRadaev/vivento/internal/handlers/payments"
	"github.com/GlebRadaev/vivento/internal/handlers/templates"
	"github.com/GlebRadaev/vivento/internal/reconcile"
	"github.com/GlebRadaev/vivento/internal/repo"
	"github.com/GlebRadaev/vivento/internal/service/authservice"
	"github.com/GlebRadaev/vivento/internal/service/balanceservice"
	"github.com/GlebRadaev/vivento/internal/service/eventservice"
	"github.com/GlebRadaev/vivento/internal/service/paymentservice"
	"github.com/GlebRadaev/vivento/internal/service/templateservice"
	pkgauth "github.com/GlebRadaev/vivento/pkg/auth"
)

type Services struct {
	AuthService     auth.Service
	BalanceService  balance.Service
	PaymentService  payments.Service
	EventService    events.Service
	InviteService   invite.Service
	TemplateService templates.Service

	// Payments exposes the settle path to the reconciliation worker.
	Payments reconcile.Payments
}

// Clients are the outbound dependencies of the services.
type Clients struct {
	Gateway  paymentservice.Gateway
	Facebook authservice.FacebookClient
	Cache    balanceservice.Cache
	Hash     pkgauth.HashServiceInterface
	JWT      pkgauth.JWTServiceInterface
}

func New(repo *repo.Repositories, cfg *config.Config, clients Clients) *Services {
	balanceService := balanceservice.New(
		repo.BalanceRepo,
		repo.LedgerRepo,
		repo.EventRepo,
		repo.TemplateRepo,
		repo.TxManager,
		clients.Cache,
		balanceservice.Config{
			FreeAllowance: cfg.FreeInvitations,
			CacheTTL:      cfg.BalanceCacheTTL,
		},
	)
	paymentService := paymentservice.New(
		repo.PaymentRepo,
		repo.BalanceRepo,
		repo.LedgerRepo,
		clients.Gateway,
		balanceService,
		repo.TxManager,
		paymentservice.Config{
			MaxAmount:   cfg.PaymentCeiling(),
			CallbackURL: cfg.PublicBaseURL + "/api/payments/callback",
			SuccessURL:  cfg.FrontendURL + "/payment/success",
			ErrorURL:    cfg.FrontendURL + "/payment/error",
		},
	)
	authService := authservice.New(repo.UserRepo, clients.Facebook, clients.Hash, clients.JWT, cfg.JWTTTL)
	eventService := eventservice.New(repo.EventRepo, repo.GuestRepo, repo.TemplateRepo)
	templateService := templateservice.New(repo.TemplateRepo)

	return &Services{
		AuthService:     authService,
		BalanceService:  balanceService,
		PaymentService:  paymentService,
		EventService:    eventService,
		InviteService:   eventService,
		TemplateService: templateService,
		Payments:        paymentService,
	}
}
