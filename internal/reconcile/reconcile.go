package reconcile

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/vivento/internal/domain"
	"github.com/GlebRadaev/vivento/pkg/epoint"
)

//go:generate mockgen -source=reconcile.go -destination=mock_reconcile.go -package=reconcile

const source = "reconcile"

type Payments interface {
	PendingBefore(ctx context.Context, before time.Time, limit int) ([]domain.PaymentIntent, error)
	Settle(ctx context.Context, intent *domain.PaymentIntent, succeeded bool, externalID *string, source string) (*domain.CallbackOutcome, error)
}

type Gateway interface {
	Status(ctx context.Context, orderID string) (*epoint.Callback, error)
}

type Config struct {
	Interval      time.Duration
	StaleAfter    time.Duration
	BatchSize     int
	Workers       int
	MaxRetries    int
	RetryInterval time.Duration
}

func (c Config) withDefaults() Config {
	if c.Interval <= 0 {
		c.Interval = time.Minute
	}
	if c.StaleAfter <= 0 {
		c.StaleAfter = 15 * time.Minute
	}
	if c.BatchSize <= 0 {
		c.BatchSize = 100
	}
	if c.Workers <= 0 {
		c.Workers = 5
	}
	if c.MaxRetries <= 0 {
		c.MaxRetries = 3
	}
	if c.RetryInterval <= 0 {
		c.RetryInterval = time.Second
	}
	return c
}

// Service settles payment intents whose callback never arrived by polling the gateway.
type Service struct {
	payments   Payments
	gateway    Gateway
	workerPool WorkerPoolI
	cfg        Config
	inFlight   sync.Map
	now        func() time.Time
}

func New(payments Payments, gateway Gateway, cfg Config) *Service {
	cfg = cfg.withDefaults()
	return &Service{
		payments:   payments,
		gateway:    gateway,
		workerPool: NewWorkerPool(cfg.Workers),
		cfg:        cfg,
		now:        time.Now,
	}
}

// Run polls until ctx is done and returns once in-flight reconciliations have finished.
func (s *Service) Run(ctx context.Context) {
	zap.L().Info("payment reconciliation started",
		zap.Duration("interval", s.cfg.Interval),
		zap.Duration("staleAfter", s.cfg.StaleAfter),
	)

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()
	defer s.workerPool.Close()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("payment reconciliation stopped")
			return
		case <-ticker.C:
			s.processPending(ctx)
		}
	}
}

func (s *Service) processPending(ctx context.Context) {
	intents, err := s.payments.PendingBefore(ctx, s.now().Add(-s.cfg.StaleAfter), s.cfg.BatchSize)
	if err != nil {
		zap.L().Error("failed to fetch pending payments", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, intent := range intents {
		if _, loaded := s.inFlight.LoadOrStore(intent.OrderID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer s.inFlight.Delete(intent.OrderID)
				return s.reconcile(ctx, intent)
			})
			if err != nil {
				s.inFlight.Delete(intent.OrderID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("failed to schedule reconciliation", zap.Error(err))
	}
}

func (s *Service) reconcile(ctx context.Context, intent domain.PaymentIntent) error {
	status, err := s.status(ctx, intent.OrderID)
	if err != nil {
		return err
	}
	if !status.Terminal() {
		zap.L().Debug("payment still open at gateway",
			zap.String("orderID", intent.OrderID),
			zap.String("status", status.Status),
		)
		return nil
	}

	var externalID *string
	if status.Transaction != "" {
		externalID = &status.Transaction
	}
	if _, err := s.payments.Settle(ctx, &intent, status.Succeeded(), externalID, source); err != nil {
		return fmt.Errorf("settle %s: %w", intent.OrderID, err)
	}
	return nil
}

// status retries transport failures with a linear backoff and honours the gateway's Retry-After.
func (s *Service) status(ctx context.Context, orderID string) (*epoint.Callback, error) {
	var lastErr error
	for attempt := 1; attempt <= s.cfg.MaxRetries; attempt++ {
		res, err := s.gateway.Status(ctx, orderID)
		if err == nil {
			return res, nil
		}
		lastErr = err

		wait := s.cfg.RetryInterval * time.Duration(attempt)
		var rateLimited *epoint.RateLimitError
		switch {
		case errors.As(err, &rateLimited):
			wait = rateLimited.RetryAfter
			zap.L().Warn("gateway rate limit", zap.String("orderID", orderID), zap.Duration("retryAfter", wait))
		case errors.Is(err, epoint.ErrUnexpectedStatus):
			return nil, fmt.Errorf("status %s: %w", orderID, err)
		}
		if attempt == s.cfg.MaxRetries {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}
	return nil, fmt.Errorf("status %s after %d attempts: %w", orderID, s.cfg.MaxRetries, lastErr)
}
