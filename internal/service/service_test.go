package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/vivento/internal/config"
	"github.com/GlebRadaev/vivento/internal/pg"
	"github.com/GlebRadaev/vivento/internal/repo"
	"github.com/GlebRadaev/vivento/internal/service/authservice"
	"github.com/GlebRadaev/vivento/internal/service/balanceservice"
	"github.com/GlebRadaev/vivento/internal/service/eventservice"
	"github.com/GlebRadaev/vivento/internal/service/paymentservice"
	"github.com/GlebRadaev/vivento/internal/service/templateservice"
	"github.com/GlebRadaev/vivento/pkg/auth"
	"github.com/GlebRadaev/vivento/pkg/cache"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repos := &repo.Repositories{
		UserRepo:     authservice.NewMockRepo(ctrl),
		BalanceRepo:  balanceservice.NewMockBalanceRepo(ctrl),
		LedgerRepo:   balanceservice.NewMockLedgerRepo(ctrl),
		PaymentRepo:  paymentservice.NewMockRepo(ctrl),
		TemplateRepo: templateservice.NewMockRepo(ctrl),
		EventRepo:    eventservice.NewMockEventRepo(ctrl),
		GuestRepo:    eventservice.NewMockGuestRepo(ctrl),
		TxManager:    pg.NewMockTXManager(ctrl),
	}
	cfg := &config.Config{
		FreeInvitations:  30,
		BalanceCacheTTL:  time.Second,
		MaxPaymentAmount: 1000,
		JWTTTL:           time.Hour,
		PublicBaseURL:    "http://api.local",
		FrontendURL:      "http://app.local",
	}
	clients := Clients{
		Gateway:  paymentservice.NewMockGateway(ctrl),
		Facebook: authservice.NewMockFacebookClient(ctrl),
		Cache:    cache.Noop{},
		Hash:     auth.NewMockHashServiceInterface(ctrl),
		JWT:      auth.NewMockJWTServiceInterface(ctrl),
	}

	services := New(repos, cfg, clients)

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.BalanceService)
	assert.NotNil(t, services.PaymentService)
	assert.NotNil(t, services.EventService)
	assert.NotNil(t, services.InviteService)
	assert.NotNil(t, services.TemplateService)
	assert.Same(t, services.PaymentService, services.Payments)
}
