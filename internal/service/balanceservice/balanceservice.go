package balanceservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/vivento/internal/domain"
	"github.com/GlebRadaev/vivento/internal/pg"
	"github.com/GlebRadaev/vivento/pkg/metrics"
)

//go:generate mockgen -source=balanceservice.go -destination=mock_balanceservice.go -package=balanceservice

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

type BalanceRepo interface {
	GetAccount(ctx context.Context, userID int) (*domain.BalanceAccount, error)
	LockAccount(ctx context.Context, userID int) (*domain.BalanceAccount, error)
	Credit(ctx context.Context, userID int, amount decimal.Decimal) (decimal.Decimal, error)
	ApplyCharge(ctx context.Context, userID int, cost decimal.Decimal, freeUsed int) (*domain.BalanceAccount, error)
}

type LedgerRepo interface {
	Create(ctx context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error)
	ListByUser(ctx context.Context, userID, limit, offset int) ([]domain.LedgerEntry, error)
	CountByUser(ctx context.Context, userID int) (int, error)
}

type EventRepo interface {
	FindByIDAndUser(ctx context.Context, id, userID int) (*domain.Event, error)
}

type TemplateRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Template, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Incr(ctx context.Context, key string) (int64, error)
}

var (
	ErrEventNotFound     = errors.New("event not found")
	ErrInvalidGuestCount = errors.New("guest count must be positive")
)

type Config struct {
	FreeAllowance int
	CacheTTL      time.Duration
}

type Service struct {
	balanceRepo  BalanceRepo
	ledgerRepo   LedgerRepo
	eventRepo    EventRepo
	templateRepo TemplateRepo
	txManager    pg.TXManager
	cache        Cache
	cfg          Config
}

func New(balanceRepo BalanceRepo, ledgerRepo LedgerRepo, eventRepo EventRepo, templateRepo TemplateRepo,
	txManager pg.TXManager, cache Cache, cfg Config) *Service {
	return &Service{
		balanceRepo:  balanceRepo,
		ledgerRepo:   ledgerRepo,
		eventRepo:    eventRepo,
		templateRepo: templateRepo,
		txManager:    txManager,
		cache:        cache,
		cfg:          cfg,
	}
}

func generationKey(userID int) string {
	return fmt.Sprintf("balance:user:%d:gen", userID)
}

func snapshotKey(userID int, generation int64) string {
	return fmt.Sprintf("balance:user:%d:v%d", userID, generation)
}

func (s *Service) summary(account *domain.BalanceAccount) *domain.BalanceSummary {
	return &domain.BalanceSummary{
		Balance:                  account.Balance,
		FreeInvitationsUsed:      account.FreeInvitationsUsed,
		FreeInvitationsRemaining: account.FreeRemaining(s.cfg.FreeAllowance),
	}
}

// GetBalance serves a snapshot stored under the user's current cache generation.
// A snapshot built from a read that raced a mutation is written under a generation
// Invalidate has already retired, so it is never served.
func (s *Service) GetBalance(ctx context.Context, userID int) (*domain.BalanceSummary, error) {
	var generation int64
	if _, err := s.cache.Get(ctx, generationKey(userID), &generation); err != nil {
		zap.L().Warn("balance cache read failed", zap.Int("userID", userID), zap.Error(err))
		return s.loadBalance(ctx, userID)
	}

	key := snapshotKey(userID, generation)
	var cached domain.BalanceSummary
	found, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		zap.L().Warn("balance cache read failed", zap.Int("userID", userID), zap.Error(err))
	}
	if found && err == nil {
		return &cached, nil
	}

	summary, err := s.loadBalance(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, key, summary, s.cfg.CacheTTL); err != nil {
		zap.L().Warn("balance cache write failed", zap.Int("userID", userID), zap.Error(err))
	}
	return summary, nil
}

func (s *Service) loadBalance(ctx context.Context, userID int) (*domain.BalanceSummary, error) {
	account, err := s.balanceRepo.GetAccount(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get balance", zap.Error(err))
		return nil, err
	}
	return s.summary(account), nil
}

// Invalidate retires the cached balance snapshot after a mutation.
func (s *Service) Invalidate(ctx context.Context, userID int) {
	generation, err := s.cache.Incr(ctx, generationKey(userID))
	if err != nil {
		zap.L().Warn("balance cache invalidation failed", zap.Int("userID", userID), zap.Error(err))
		return
	}
	if err := s.cache.Delete(ctx, snapshotKey(userID, generation-1)); err != nil {
		zap.L().Warn("balance cache cleanup failed", zap.Int("userID", userID), zap.Error(err))
	}
}

func (s *Service) ListTransactions(ctx context.Context, userID, limit, offset int) (*domain.TransactionPage, error) {
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	if offset < 0 {
		offset = 0
	}

	entries, err := s.ledgerRepo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	total, err := s.ledgerRepo.CountByUser(ctx, userID)
	if err != nil {
		zap.L().Error("failed to count transactions", zap.Error(err))
		return nil, err
	}

	return &domain.TransactionPage{
		Entries: entries,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
	}, nil
}

// Quote is the pure charge arithmetic for a locked account.
func Quote(account domain.BalanceAccount, allowance, guestCount int, price decimal.Decimal) domain.ChargeOutcome {
	freeRemaining := account.FreeRemaining(allowance)
	freeUsed := min(guestCount, freeRemaining)
	paid := guestCount - freeUsed
	cost := price.Mul(decimal.NewFromInt(int64(paid)))

	outcome := domain.ChargeOutcome{
		Success:            true,
		GuestCount:         guestCount,
		FreeUsed:           freeUsed,
		PaidCount:          paid,
		PricePerInvitation: price,
		TotalCost:          cost,
		Balance:            account.Balance,
	}
	if cost.GreaterThan(account.Balance) {
		outcome.Success = false
		outcome.FreeUsed = 0
		outcome.RequiredBalance = cost
		outcome.Shortfall = cost.Sub(account.Balance)
	}
	return outcome
}

func (s *Service) ChargeForInvitations(ctx context.Context, userID, eventID, guestCount int) (*domain.ChargeOutcome, error) {
	if guestCount <= 0 {
		return nil, ErrInvalidGuestCount
	}

	event, err := s.eventRepo.FindByIDAndUser(ctx, eventID, userID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}

	price := decimal.Zero
	if event.TemplateID != nil {
		tpl, err := s.templateRepo.FindByID(ctx, *event.TemplateID)
		if err != nil {
			return nil, err
		}
		if tpl != nil {
			price = tpl.InvitationPrice()
		}
	}

	var outcome domain.ChargeOutcome
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		account, err := s.balanceRepo.LockAccount(ctx, userID)
		if err != nil {
			return err
		}

		outcome = Quote(*account, s.cfg.FreeAllowance, guestCount, price)
		if !outcome.Success {
			return nil
		}

		if outcome.TotalCost.IsPositive() || outcome.FreeUsed > 0 {
			updated, err := s.balanceRepo.ApplyCharge(ctx, userID, outcome.TotalCost, outcome.FreeUsed)
			if err != nil {
				return err
			}
			outcome.Balance = updated.Balance
		}

		if outcome.TotalCost.IsPositive() {
			_, err := s.ledgerRepo.Create(ctx, &domain.LedgerEntry{
				UserID:      userID,
				Amount:      outcome.TotalCost.Neg(),
				Category:    domain.CategoryInvitationCharge,
				Description: fmt.Sprintf("%d invitations for %q", outcome.PaidCount, event.Name),
				Status:      "completed",
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		zap.L().Error("invitation charge failed", zap.Int("userID", userID), zap.Int("eventID", eventID), zap.Error(err))
		metrics.InvitationCharges.WithLabelValues("error").Inc()
		return nil, err
	}

	if !outcome.Success {
		zap.L().Info("invitation charge declined, insufficient balance",
			zap.Int("userID", userID),
			zap.String("required", outcome.RequiredBalance.String()),
			zap.String("balance", outcome.Balance.String()),
		)
		metrics.InvitationCharges.WithLabelValues("insufficient_funds").Inc()
		return &outcome, nil
	}

	s.Invalidate(ctx, userID)
	metrics.InvitationCharges.WithLabelValues("charged").Inc()
	zap.L().Info("invitations charged",
		zap.Int("userID", userID),
		zap.Int("eventID", eventID),
		zap.Int("free", outcome.FreeUsed),
		zap.Int("paid", outcome.PaidCount),
		zap.String("cost", outcome.TotalCost.String()),
	)
	return &outcome, nil
}
