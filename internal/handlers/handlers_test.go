package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/vivento/internal/handlers/auth"
	"github.com/GlebRadaev/vivento/internal/handlers/balance"
	"github.com/GlebRadaev/vivento/internal/handlers/events"
	"github.com/GlebRadaev/vivento/internal/handlers/invite"
	"github.com/GlebRadaev/vivento/internal/handlers/payments"
	"github.com/GlebRadaev/vivento/internal/handlers/templates"
	"github.com/GlebRadaev/vivento/internal/service"
	pkgauth "github.com/GlebRadaev/vivento/pkg/auth"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		AuthService:     auth.NewMockService(ctrl),
		BalanceService:  balance.NewMockService(ctrl),
		PaymentService:  payments.NewMockService(ctrl),
		EventService:    events.NewMockService(ctrl),
		InviteService:   invite.NewMockService(ctrl),
		TemplateService: templates.NewMockService(ctrl),
	}

	h := New(services, pkgauth.NewMockJWTServiceInterface(ctrl))
	assert.NotNil(t, h, "Handlers should not be nil")
	assert.NotNil(t, h.InviteHandler)
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	authHandler := NewMockAuthHandler(ctrl)
	balanceHandler := NewMockBalanceHandler(ctrl)
	paymentHandler := NewMockPaymentHandler(ctrl)
	eventHandler := NewMockEventHandler(ctrl)
	templateHandler := NewMockTemplateHandler(ctrl)
	inviteHandler := NewMockInviteHandler(ctrl)
	jwt := pkgauth.NewMockJWTServiceInterface(ctrl)

	authHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	authHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	authHandler.EXPECT().Facebook(gomock.Any(), gomock.Any()).AnyTimes()
	authHandler.EXPECT().Me(gomock.Any(), gomock.Any()).AnyTimes()
	balanceHandler.EXPECT().GetBalance(gomock.Any(), gomock.Any()).AnyTimes()
	balanceHandler.EXPECT().GetTransactions(gomock.Any(), gomock.Any()).AnyTimes()
	balanceHandler.EXPECT().ChargeInvitations(gomock.Any(), gomock.Any()).AnyTimes()
	paymentHandler.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).AnyTimes()
	paymentHandler.EXPECT().Callback(gomock.Any(), gomock.Any()).AnyTimes()
	paymentHandler.EXPECT().GetPaymentStatus(gomock.Any(), gomock.Any()).AnyTimes()
	eventHandler.EXPECT().CreateEvent(gomock.Any(), gomock.Any()).AnyTimes()
	eventHandler.EXPECT().ListEvents(gomock.Any(), gomock.Any()).AnyTimes()
	eventHandler.EXPECT().GetEvent(gomock.Any(), gomock.Any()).AnyTimes()
	eventHandler.EXPECT().UpdateEvent(gomock.Any(), gomock.Any()).AnyTimes()
	eventHandler.EXPECT().AddGuest(gomock.Any(), gomock.Any()).AnyTimes()
	eventHandler.EXPECT().ListGuests(gomock.Any(), gomock.Any()).AnyTimes()
	templateHandler.EXPECT().List(gomock.Any(), gomock.Any()).AnyTimes()
	templateHandler.EXPECT().ListByCategory(gomock.Any(), gomock.Any()).AnyTimes()
	templateHandler.EXPECT().Get(gomock.Any(), gomock.Any()).AnyTimes()
	templateHandler.EXPECT().Create(gomock.Any(), gomock.Any()).AnyTimes()
	templateHandler.EXPECT().Update(gomock.Any(), gomock.Any()).AnyTimes()
	templateHandler.EXPECT().Delete(gomock.Any(), gomock.Any()).AnyTimes()
	inviteHandler.EXPECT().GetInvitation(gomock.Any(), gomock.Any()).AnyTimes()
	inviteHandler.EXPECT().RespondRSVP(gomock.Any(), gomock.Any()).AnyTimes()

	jwt.EXPECT().ValidateToken("user-token").Return(&pkgauth.Claims{UserID: 1, Role: "user"}, nil).AnyTimes()
	jwt.EXPECT().ValidateToken("admin-token").Return(&pkgauth.Claims{UserID: 2, Role: "admin"}, nil).AnyTimes()
	jwt.EXPECT().ValidateToken("expired").Return(nil, errors.New("token is expired")).AnyTimes()

	h := &Handlers{
		AuthHandler:     authHandler,
		BalanceHandler:  balanceHandler,
		PaymentHandler:  paymentHandler,
		EventHandler:    eventHandler,
		TemplateHandler: templateHandler,
		InviteHandler:   inviteHandler,
		jwt:             jwt,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		token  string
		status int
	}{
		{"POST", "/api/auth/register", "", http.StatusOK},
		{"POST", "/api/auth/login", "", http.StatusOK},
		{"POST", "/api/auth/facebook", "", http.StatusOK},
		{"GET", "/api/auth/me", "", http.StatusUnauthorized},
		{"GET", "/api/auth/me", "user-token", http.StatusOK},
		{"POST", "/api/payments/callback", "", http.StatusOK},
		{"GET", "/api/templates", "", http.StatusOK},
		{"GET", "/api/templates/category/wedding", "", http.StatusOK},
		{"GET", "/api/templates/3", "", http.StatusOK},
		{"GET", "/api/invite/abc", "", http.StatusOK},
		{"POST", "/api/invite/abc/rsvp", "", http.StatusOK},
		{"GET", "/api/balance", "", http.StatusUnauthorized},
		{"GET", "/api/balance", "expired", http.StatusUnauthorized},
		{"GET", "/api/balance", "user-token", http.StatusOK},
		{"GET", "/api/balance/transactions", "user-token", http.StatusOK},
		{"POST", "/api/payments/create", "", http.StatusUnauthorized},
		{"POST", "/api/payments/create", "user-token", http.StatusOK},
		{"GET", "/api/payments/7/status", "user-token", http.StatusOK},
		{"POST", "/api/events", "user-token", http.StatusOK},
		{"GET", "/api/events", "", http.StatusUnauthorized},
		{"GET", "/api/events/5", "user-token", http.StatusOK},
		{"PUT", "/api/events/5", "user-token", http.StatusOK},
		{"POST", "/api/events/5/charge", "user-token", http.StatusOK},
		{"POST", "/api/events/5/guests", "user-token", http.StatusOK},
		{"GET", "/api/events/5/guests", "user-token", http.StatusOK},
		{"POST", "/api/admin/templates", "", http.StatusUnauthorized},
		{"POST", "/api/admin/templates", "user-token", http.StatusForbidden},
		{"POST", "/api/admin/templates", "admin-token", http.StatusOK},
		{"PUT", "/api/admin/templates/3", "admin-token", http.StatusOK},
		{"DELETE", "/api/admin/templates/3", "user-token", http.StatusForbidden},
		{"DELETE", "/api/admin/templates/3", "admin-token", http.StatusOK},
		{"GET", "/metrics", "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url+" "+tt.token, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
