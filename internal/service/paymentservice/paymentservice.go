package paymentservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/vivento/internal/domain"
	"github.com/GlebRadaev/vivento/internal/pg"
	"github.com/GlebRadaev/vivento/pkg/epoint"
	"github.com/GlebRadaev/vivento/pkg/metrics"
)

//go:generate mockgen -source=paymentservice.go -destination=mock_paymentservice.go -package=paymentservice

const defaultDescription = "Vivento balance top-up"

type Repo interface {
	Create(ctx context.Context, intent *domain.PaymentIntent) (*domain.PaymentIntent, error)
	FindByOrderID(ctx context.Context, orderID string) (*domain.PaymentIntent, error)
	FindByIDAndUser(ctx context.Context, id, userID int) (*domain.PaymentIntent, error)
	Resolve(ctx context.Context, orderID string, status domain.PaymentStatus, externalID *string) (*domain.PaymentIntent, bool, error)
	FindStalePending(ctx context.Context, before time.Time, limit int) ([]domain.PaymentIntent, error)
}

type BalanceRepo interface {
	Credit(ctx context.Context, userID int, amount decimal.Decimal) (decimal.Decimal, error)
}

type LedgerRepo interface {
	Create(ctx context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error)
}

type Gateway interface {
	Currency() string
	Checkout(req epoint.CheckoutRequest) (*epoint.Checkout, error)
	Verify(data, signature string) bool
	ParseCallback(data string) (*epoint.Callback, error)
}

type BalanceCache interface {
	Invalidate(ctx context.Context, userID int)
}

var (
	ErrInvalidAmount     = errors.New("amount must be positive with at most two decimal places")
	ErrAmountAboveLimit  = errors.New("amount exceeds the allowed maximum")
	ErrInvalidSignature  = errors.New("invalid callback signature")
	ErrPaymentNotFound   = errors.New("payment not found")
	ErrMissingCallbackID = errors.New("callback has no order id")
)

type Config struct {
	// MaxAmount caps a single top-up; zero disables the cap.
	MaxAmount   decimal.Decimal
	CallbackURL string
	SuccessURL  string
	ErrorURL    string
}

type Service struct {
	repo        Repo
	balanceRepo BalanceRepo
	ledgerRepo  LedgerRepo
	gateway     Gateway
	cache       BalanceCache
	txManager   pg.TXManager
	cfg         Config
}

func New(repo Repo, balanceRepo BalanceRepo, ledgerRepo LedgerRepo, gateway Gateway,
	cache BalanceCache, txManager pg.TXManager, cfg Config) *Service {
	return &Service{
		repo:        repo,
		balanceRepo: balanceRepo,
		ledgerRepo:  ledgerRepo,
		gateway:     gateway,
		cache:       cache,
		txManager:   txManager,
		cfg:         cfg,
	}
}

func (s *Service) CreatePayment(ctx context.Context, userID int, amount decimal.Decimal, description string) (*domain.CheckoutSession, error) {
	if !amount.IsPositive() || !amount.Equal(amount.Round(2)) {
		return nil, ErrInvalidAmount
	}
	if s.cfg.MaxAmount.IsPositive() && amount.GreaterThan(s.cfg.MaxAmount) {
		return nil, ErrAmountAboveLimit
	}
	if description == "" {
		description = defaultDescription
	}

	orderID := fmt.Sprintf("%d-%s", userID, uuid.NewString())
	checkout, err := s.gateway.Checkout(epoint.CheckoutRequest{
		OrderID:     orderID,
		Amount:      amount,
		Description: description,
		SuccessURL:  s.cfg.SuccessURL,
		ErrorURL:    s.cfg.ErrorURL,
		CallbackURL: s.cfg.CallbackURL,
	})
	if err != nil {
		zap.L().Error("failed to sign checkout request", zap.String("orderID", orderID), zap.Error(err))
		return nil, err
	}

	intent, err := s.repo.Create(ctx, &domain.PaymentIntent{
		OrderID:     orderID,
		UserID:      userID,
		Amount:      amount,
		Currency:    s.gateway.Currency(),
		Description: description,
		Status:      domain.PaymentPending,
		CheckoutURL: checkout.URL,
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("payment intent created",
		zap.Int("userID", userID),
		zap.String("orderID", orderID),
		zap.String("amount", amount.StringFixed(2)),
	)
	return &domain.CheckoutSession{
		Intent:    intent,
		URL:       checkout.URL,
		Data:      checkout.Data,
		Signature: checkout.Signature,
	}, nil
}

// HandleCallback authenticates a gateway notification and applies it.
func (s *Service) HandleCallback(ctx context.Context, data, signature string) (*domain.CallbackOutcome, error) {
	if !s.gateway.Verify(data, signature) {
		zap.L().Warn("security: rejected payment callback with invalid signature",
			zap.Int("dataLength", len(data)),
		)
		metrics.PaymentCallbacks.WithLabelValues("invalid_signature").Inc()
		return nil, ErrInvalidSignature
	}

	callback, err := s.gateway.ParseCallback(data)
	if err != nil {
		metrics.PaymentCallbacks.WithLabelValues("malformed").Inc()
		return nil, err
	}
	if callback.OrderID == "" {
		metrics.PaymentCallbacks.WithLabelValues("malformed").Inc()
		return nil, ErrMissingCallbackID
	}

	intent, err := s.repo.FindByOrderID(ctx, callback.OrderID)
	if err != nil {
		return nil, err
	}
	if intent == nil {
		zap.L().Warn("callback for unknown order ignored", zap.String("orderID", callback.OrderID))
		metrics.PaymentCallbacks.WithLabelValues("ignored").Inc()
		return &domain.CallbackOutcome{Status: domain.CallbackIgnored, OrderID: callback.OrderID}, nil
	}

	var externalID *string
	if callback.Transaction != "" {
		externalID = &callback.Transaction
	}
	outcome, err := s.Settle(ctx, intent, callback.Succeeded(), externalID, "callback")
	if err != nil {
		metrics.PaymentCallbacks.WithLabelValues("error").Inc()
		return nil, err
	}
	metrics.PaymentCallbacks.WithLabelValues("processed").Inc()
	return outcome, nil
}

// Settle moves a pending intent to its final status. Intents that were
// already resolved are reported with their current status and left alone.
func (s *Service) Settle(ctx context.Context, intent *domain.PaymentIntent, succeeded bool, externalID *string, source string) (*domain.CallbackOutcome, error) {
	target := domain.PaymentFailed
	if succeeded {
		target = domain.PaymentCompleted
	}

	var resolved *domain.PaymentIntent
	var changed bool
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		resolved, changed, err = s.repo.Resolve(ctx, intent.OrderID, target, externalID)
		if err != nil || !changed || target != domain.PaymentCompleted {
			return err
		}

		if _, err := s.balanceRepo.Credit(ctx, resolved.UserID, resolved.Amount); err != nil {
			return err
		}
		_, err = s.ledgerRepo.Create(ctx, &domain.LedgerEntry{
			UserID:      resolved.UserID,
			Amount:      resolved.Amount,
			Category:    domain.CategoryTopUp,
			Description: resolved.Description,
			PaymentID:   &resolved.ID,
			ExternalID:  externalID,
			Status:      string(domain.PaymentCompleted),
		})
		return err
	})
	if err != nil {
		zap.L().Error("failed to settle payment", zap.String("orderID", intent.OrderID), zap.Error(err))
		return nil, err
	}

	if !changed {
		current, err := s.repo.FindByOrderID(ctx, intent.OrderID)
		if err != nil {
			return nil, err
		}
		status := intent.Status
		if current != nil {
			status = current.Status
		}
		zap.L().Info("payment already resolved", zap.String("orderID", intent.OrderID), zap.String("status", string(status)))
		return &domain.CallbackOutcome{Status: domain.CallbackProcessed, OrderID: intent.OrderID, PaymentStatus: status}, nil
	}

	if resolved.Status == domain.PaymentCompleted {
		s.cache.Invalidate(ctx, resolved.UserID)
	}
	metrics.PaymentSettlements.WithLabelValues(source, string(resolved.Status)).Inc()
	zap.L().Info("payment settled",
		zap.String("orderID", resolved.OrderID),
		zap.Int("userID", resolved.UserID),
		zap.String("status", string(resolved.Status)),
		zap.String("source", source),
	)
	return &domain.CallbackOutcome{Status: domain.CallbackProcessed, OrderID: resolved.OrderID, PaymentStatus: resolved.Status}, nil
}

func (s *Service) GetPaymentStatus(ctx context.Context, userID, paymentID int) (*domain.PaymentIntent, error) {
	intent, err := s.repo.FindByIDAndUser(ctx, paymentID, userID)
	if err != nil {
		return nil, err
	}
	if intent == nil {
		return nil, ErrPaymentNotFound
	}
	return intent, nil
}

// PendingBefore lists intents still waiting for the gateway.
func (s *Service) PendingBefore(ctx context.Context, before time.Time, limit int) ([]domain.PaymentIntent, error) {
	return s.repo.FindStalePending(ctx, before, limit)
}
