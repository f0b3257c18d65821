package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/vivento/docs"
	"github.com/GlebRadaev/vivento/internal/domain"
	authhandlers "github.com/GlebRadaev/vivento/internal/handlers/auth"
	balancehandlers "github.com/GlebRadaev/vivento/internal/handlers/balance"
	eventhandlers "github.com/GlebRadaev/vivento/internal/handlers/events"
	invitehandlers "github.com/GlebRadaev/vivento/internal/handlers/invite"
	paymenthandlers "github.com/GlebRadaev/vivento/internal/handlers/payments"
	templatehandlers "github.com/GlebRadaev/vivento/internal/handlers/templates"
	"github.com/GlebRadaev/vivento/internal/service"
	"github.com/GlebRadaev/vivento/pkg/auth"
	"github.com/GlebRadaev/vivento/pkg/metrics"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Facebook(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type BalanceHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
	ChargeInvitations(w http.ResponseWriter, r *http.Request)
}

type PaymentHandler interface {
	CreatePayment(w http.ResponseWriter, r *http.Request)
	Callback(w http.ResponseWriter, r *http.Request)
	GetPaymentStatus(w http.ResponseWriter, r *http.Request)
}

type EventHandler interface {
	CreateEvent(w http.ResponseWriter, r *http.Request)
	ListEvents(w http.ResponseWriter, r *http.Request)
	GetEvent(w http.ResponseWriter, r *http.Request)
	UpdateEvent(w http.ResponseWriter, r *http.Request)
	AddGuest(w http.ResponseWriter, r *http.Request)
	ListGuests(w http.ResponseWriter, r *http.Request)
}

type TemplateHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	ListByCategory(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type InviteHandler interface {
	GetInvitation(w http.ResponseWriter, r *http.Request)
	RespondRSVP(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler     AuthHandler
	BalanceHandler  BalanceHandler
	PaymentHandler  PaymentHandler
	EventHandler    EventHandler
	TemplateHandler TemplateHandler
	InviteHandler   InviteHandler

	jwt auth.JWTServiceInterface
}

func New(s *service.Services, jwt auth.JWTServiceInterface) *Handlers {
	return &Handlers{
		AuthHandler:     authhandlers.New(s.AuthService),
		BalanceHandler:  balancehandlers.New(s.BalanceService),
		PaymentHandler:  paymenthandlers.New(s.PaymentService),
		EventHandler:    eventhandlers.New(s.EventService),
		TemplateHandler: templatehandlers.New(s.TemplateService),
		InviteHandler:   invitehandlers.New(s.InviteService),
		jwt:             jwt,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		metrics.Middleware,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)
			r.Post("/facebook", h.AuthHandler.Facebook)
			r.With(auth.AuthMiddleware(h.jwt)).Get("/me", h.AuthHandler.Me)
		})

		// Gateway notifications carry their own signature instead of a bearer token.
		r.Post("/payments/callback", h.PaymentHandler.Callback)

		r.Route("/templates", func(r chi.Router) {
			r.Get("/", h.TemplateHandler.List)
			r.Get("/category/{category}", h.TemplateHandler.ListByCategory)
			r.Get("/{id}", h.TemplateHandler.Get)
		})

		r.Route("/invite/{token}", func(r chi.Router) {
			r.Get("/", h.InviteHandler.GetInvitation)
			r.Post("/rsvp", h.InviteHandler.RespondRSVP)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware(h.jwt))

			r.Route("/balance", func(r chi.Router) {
				r.Get("/", h.BalanceHandler.GetBalance)
				r.Get("/transactions", h.BalanceHandler.GetTransactions)
			})
			r.Route("/payments", func(r chi.Router) {
				r.Post("/create", h.PaymentHandler.CreatePayment)
				r.Get("/{payment_id}/status", h.PaymentHandler.GetPaymentStatus)
			})
			r.Route("/events", func(r chi.Router) {
				r.Post("/", h.EventHandler.CreateEvent)
				r.Get("/", h.EventHandler.ListEvents)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.EventHandler.GetEvent)
					r.Put("/", h.EventHandler.UpdateEvent)
					r.Post("/charge", h.BalanceHandler.ChargeInvitations)
					r.Post("/guests", h.EventHandler.AddGuest)
					r.Get("/guests", h.EventHandler.ListGuests)
				})
			})

			r.Route("/admin", func(r chi.Router) {
				r.Use(auth.RequireRole(string(domain.RoleAdmin)))
				r.Post("/templates", h.TemplateHandler.Create)
				r.Put("/templates/{id}", h.TemplateHandler.Update)
				r.Delete("/templates/{id}", h.TemplateHandler.Delete)
			})
		})
	})

	return r
}
