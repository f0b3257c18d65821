package balanceservice

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/vivento/internal/domain"
	"github.com/GlebRadaev/vivento/internal/pg"
	"github.com/GlebRadaev/vivento/pkg/cache"
)

type decimalMatcher struct {
	want decimal.Decimal
}

func decEq(s string) gomock.Matcher {
	return decimalMatcher{want: decimal.RequireFromString(s)}
}

func (m decimalMatcher) Matches(x any) bool {
	d, ok := x.(decimal.Decimal)
	return ok && d.Equal(m.want)
}

func (m decimalMatcher) String() string {
	return fmt.Sprintf("is decimal %s", m.want)
}

type mocks struct {
	balance  *MockBalanceRepo
	ledger   *MockLedgerRepo
	events   *MockEventRepo
	template *MockTemplateRepo
	cache    *MockCache
	tx       *pg.MockTXManager
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		balance:  NewMockBalanceRepo(ctrl),
		ledger:   NewMockLedgerRepo(ctrl),
		events:   NewMockEventRepo(ctrl),
		template: NewMockTemplateRepo(ctrl),
		cache:    NewMockCache(ctrl),
		tx:       pg.NewMockTXManager(ctrl),
	}
	m.tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	}).AnyTimes()

	service := New(m.balance, m.ledger, m.events, m.template, m.tx, m.cache, Config{FreeAllowance: 30, CacheTTL: time.Minute})
	return service, m
}

func TestQuote(t *testing.T) {
	tests := []struct {
		name          string
		account       domain.BalanceAccount
		guests        int
		price         string
		wantSuccess   bool
		wantFree      int
		wantPaid      int
		wantCost      string
		wantShortfall string
	}{
		{
			name:        "partly free",
			account:     domain.BalanceAccount{Balance: decimal.RequireFromString("1.00"), FreeInvitationsUsed: 28},
			guests:      5,
			price:       "0.10",
			wantSuccess: true,
			wantFree:    2,
			wantPaid:    3,
			wantCost:    "0.30",
		},
		{
			name:        "fully free",
			account:     domain.BalanceAccount{Balance: decimal.Zero, FreeInvitationsUsed: 0},
			guests:      10,
			price:       "0.50",
			wantSuccess: true,
			wantFree:    10,
			wantPaid:    0,
			wantCost:    "0",
		},
		{
			name:        "allowance overspent",
			account:     domain.BalanceAccount{Balance: decimal.RequireFromString("5"), FreeInvitationsUsed: 40},
			guests:      4,
			price:       "1.25",
			wantSuccess: true,
			wantFree:    0,
			wantPaid:    4,
			wantCost:    "5",
		},
		{
			name:          "insufficient balance",
			account:       domain.BalanceAccount{Balance: decimal.RequireFromString("0.20"), FreeInvitationsUsed: 30},
			guests:        5,
			price:         "0.10",
			wantSuccess:   false,
			wantFree:      0,
			wantPaid:      5,
			wantCost:      "0.50",
			wantShortfall: "0.30",
		},
		{
			name:          "two free left, three paid, balance short",
			account:       domain.BalanceAccount{Balance: decimal.RequireFromString("0.20"), FreeInvitationsUsed: 28},
			guests:        5,
			price:         "0.10",
			wantSuccess:   false,
			wantFree:      0,
			wantPaid:      3,
			wantCost:      "0.30",
			wantShortfall: "0.10",
		},
		{
			name:        "standard template",
			account:     domain.BalanceAccount{Balance: decimal.Zero, FreeInvitationsUsed: 30},
			guests:      100,
			price:       "0",
			wantSuccess: true,
			wantFree:    0,
			wantPaid:    100,
			wantCost:    "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Quote(tt.account, 30, tt.guests, decimal.RequireFromString(tt.price))
			assert.Equal(t, tt.wantSuccess, got.Success)
			assert.Equal(t, tt.wantFree, got.FreeUsed)
			assert.Equal(t, tt.wantPaid, got.PaidCount)
			assert.True(t, got.TotalCost.Equal(decimal.RequireFromString(tt.wantCost)), "cost %s", got.TotalCost)
			if tt.wantShortfall != "" {
				assert.True(t, got.Shortfall.Equal(decimal.RequireFromString(tt.wantShortfall)), "shortfall %s", got.Shortfall)
				assert.True(t, got.RequiredBalance.Equal(got.TotalCost))
			}
		})
	}
}

func TestChargeForInvitations(t *testing.T) {
	ctx := context.Background()
	templateID := 7
	event := &domain.Event{ID: 3, UserID: 1, Name: "Wedding", TemplateID: &templateID}
	premium := &domain.Template{ID: templateID, IsPremium: true, PricePerInvitation: decimal.RequireFromString("0.10")}

	t.Run("charges paid guests and records ledger entry", func(t *testing.T) {
		service, m := NewMock(t)
		m.events.EXPECT().FindByIDAndUser(ctx, 3, 1).Return(event, nil)
		m.template.EXPECT().FindByID(ctx, templateID).Return(premium, nil)
		m.balance.EXPECT().LockAccount(ctx, 1).Return(&domain.BalanceAccount{
			UserID: 1, Balance: decimal.RequireFromString("1.00"), FreeInvitationsUsed: 28,
		}, nil)
		m.balance.EXPECT().ApplyCharge(ctx, 1, decEq("0.30"), 2).Return(&domain.BalanceAccount{
			UserID: 1, Balance: decimal.RequireFromString("0.70"), FreeInvitationsUsed: 30,
		}, nil)
		m.ledger.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e *domain.LedgerEntry) (*domain.LedgerEntry, error) {
			assert.Equal(t, domain.CategoryInvitationCharge, e.Category)
			assert.True(t, e.Amount.Equal(decimal.RequireFromString("-0.30")))
			e.ID = 11
			return e, nil
		})
		m.cache.EXPECT().Incr(ctx, "balance:user:1:gen").Return(int64(4), nil)
		m.cache.EXPECT().Delete(ctx, "balance:user:1:v3").Return(nil)

		outcome, err := service.ChargeForInvitations(ctx, 1, 3, 5)
		require.NoError(t, err)
		assert.True(t, outcome.Success)
		assert.Equal(t, 3, outcome.PaidCount)
		assert.Equal(t, 2, outcome.FreeUsed)
		assert.True(t, outcome.Balance.Equal(decimal.RequireFromString("0.70")))
	})

	t.Run("free guests only skip ledger", func(t *testing.T) {
		service, m := NewMock(t)
		m.events.EXPECT().FindByIDAndUser(ctx, 3, 1).Return(event, nil)
		m.template.EXPECT().FindByID(ctx, templateID).Return(premium, nil)
		m.balance.EXPECT().LockAccount(ctx, 1).Return(&domain.BalanceAccount{UserID: 1, Balance: decimal.Zero}, nil)
		m.balance.EXPECT().ApplyCharge(ctx, 1, decEq("0"), 4).Return(&domain.BalanceAccount{
			UserID: 1, Balance: decimal.Zero, FreeInvitationsUsed: 4,
		}, nil)
		m.cache.EXPECT().Incr(ctx, "balance:user:1:gen").Return(int64(4), nil)
		m.cache.EXPECT().Delete(ctx, "balance:user:1:v3").Return(nil)

		outcome, err := service.ChargeForInvitations(ctx, 1, 3, 4)
		require.NoError(t, err)
		assert.True(t, outcome.Success)
		assert.Equal(t, 0, outcome.PaidCount)
	})

	t.Run("insufficient balance leaves account untouched", func(t *testing.T) {
		service, m := NewMock(t)
		m.events.EXPECT().FindByIDAndUser(ctx, 3, 1).Return(event, nil)
		m.template.EXPECT().FindByID(ctx, templateID).Return(premium, nil)
		m.balance.EXPECT().LockAccount(ctx, 1).Return(&domain.BalanceAccount{
			UserID: 1, Balance: decimal.RequireFromString("0.05"), FreeInvitationsUsed: 30,
		}, nil)

		outcome, err := service.ChargeForInvitations(ctx, 1, 3, 2)
		require.NoError(t, err)
		assert.False(t, outcome.Success)
		assert.True(t, outcome.RequiredBalance.Equal(decimal.RequireFromString("0.20")))
		assert.True(t, outcome.Shortfall.Equal(decimal.RequireFromString("0.15")))
	})

	t.Run("partial allowance with short balance reports required amount", func(t *testing.T) {
		service, m := NewMock(t)
		m.events.EXPECT().FindByIDAndUser(ctx, 3, 1).Return(event, nil)
		m.template.EXPECT().FindByID(ctx, templateID).Return(premium, nil)
		m.balance.EXPECT().LockAccount(ctx, 1).Return(&domain.BalanceAccount{
			UserID: 1, Balance: decimal.RequireFromString("0.20"), FreeInvitationsUsed: 28,
		}, nil)

		outcome, err := service.ChargeForInvitations(ctx, 1, 3, 5)
		require.NoError(t, err)
		assert.False(t, outcome.Success)
		assert.Equal(t, 3, outcome.PaidCount)
		assert.True(t, outcome.RequiredBalance.Equal(decimal.RequireFromString("0.30")), "required %s", outcome.RequiredBalance)
		assert.True(t, outcome.Shortfall.Equal(decimal.RequireFromString("0.10")), "shortfall %s", outcome.Shortfall)
	})

	t.Run("event of another user", func(t *testing.T) {
		service, m := NewMock(t)
		m.events.EXPECT().FindByIDAndUser(ctx, 3, 2).Return(nil, nil)

		_, err := service.ChargeForInvitations(ctx, 2, 3, 2)
		assert.ErrorIs(t, err, ErrEventNotFound)
	})

	t.Run("non positive guest count", func(t *testing.T) {
		service, _ := NewMock(t)
		_, err := service.ChargeForInvitations(ctx, 1, 3, 0)
		assert.ErrorIs(t, err, ErrInvalidGuestCount)
	})

	t.Run("ledger failure aborts charge", func(t *testing.T) {
		service, m := NewMock(t)
		m.events.EXPECT().FindByIDAndUser(ctx, 3, 1).Return(event, nil)
		m.template.EXPECT().FindByID(ctx, templateID).Return(premium, nil)
		m.balance.EXPECT().LockAccount(ctx, 1).Return(&domain.BalanceAccount{
			UserID: 1, Balance: decimal.RequireFromString("10"), FreeInvitationsUsed: 30,
		}, nil)
		m.balance.EXPECT().ApplyCharge(ctx, 1, decEq("0.20"), 0).Return(&domain.BalanceAccount{
			UserID: 1, Balance: decimal.RequireFromString("9.80"), FreeInvitationsUsed: 30,
		}, nil)
		m.ledger.EXPECT().Create(ctx, gomock.Any()).Return(nil, errors.New("insert failed"))

		_, err := service.ChargeForInvitations(ctx, 1, 3, 2)
		assert.EqualError(t, err, "insert failed")
	})
}

func TestGetBalance(t *testing.T) {
	ctx := context.Background()
	withGeneration := func(generation int64) func(context.Context, string, any) (bool, error) {
		return func(_ context.Context, _ string, dest any) (bool, error) {
			*dest.(*int64) = generation
			return true, nil
		}
	}

	t.Run("cache miss reads account", func(t *testing.T) {
		service, m := NewMock(t)
		m.cache.EXPECT().Get(ctx, "balance:user:1:gen", gomock.Any()).DoAndReturn(withGeneration(2))
		m.cache.EXPECT().Get(ctx, "balance:user:1:v2", gomock.Any()).Return(false, nil)
		m.balance.EXPECT().GetAccount(ctx, 1).Return(&domain.BalanceAccount{
			UserID: 1, Balance: decimal.RequireFromString("12.50"), FreeInvitationsUsed: 12,
		}, nil)
		m.cache.EXPECT().Set(ctx, "balance:user:1:v2", gomock.Any(), time.Minute).Return(nil)

		summary, err := service.GetBalance(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 12, summary.FreeInvitationsUsed)
		assert.Equal(t, 18, summary.FreeInvitationsRemaining)
		assert.True(t, summary.Balance.Equal(decimal.RequireFromString("12.5")))
	})

	t.Run("cache hit", func(t *testing.T) {
		service, m := NewMock(t)
		m.cache.EXPECT().Get(ctx, "balance:user:1:gen", gomock.Any()).Return(false, nil)
		m.cache.EXPECT().Get(ctx, "balance:user:1:v0", gomock.Any()).DoAndReturn(func(_ context.Context, _ string, dest any) (bool, error) {
			*dest.(*domain.BalanceSummary) = domain.BalanceSummary{Balance: decimal.NewFromInt(3), FreeInvitationsRemaining: 30}
			return true, nil
		})

		summary, err := service.GetBalance(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 30, summary.FreeInvitationsRemaining)
	})

	t.Run("cache failure falls back to database", func(t *testing.T) {
		service, m := NewMock(t)
		m.cache.EXPECT().Get(ctx, "balance:user:1:gen", gomock.Any()).Return(false, errors.New("connection refused"))
		m.balance.EXPECT().GetAccount(ctx, 1).Return(&domain.BalanceAccount{UserID: 1}, nil)

		summary, err := service.GetBalance(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 30, summary.FreeInvitationsRemaining)
	})

	t.Run("snapshot read failure still caches", func(t *testing.T) {
		service, m := NewMock(t)
		m.cache.EXPECT().Get(ctx, "balance:user:1:gen", gomock.Any()).DoAndReturn(withGeneration(1))
		m.cache.EXPECT().Get(ctx, "balance:user:1:v1", gomock.Any()).Return(false, errors.New("bad payload"))
		m.balance.EXPECT().GetAccount(ctx, 1).Return(&domain.BalanceAccount{UserID: 1}, nil)
		m.cache.EXPECT().Set(ctx, "balance:user:1:v1", gomock.Any(), time.Minute).Return(errors.New("connection refused"))

		summary, err := service.GetBalance(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 30, summary.FreeInvitationsRemaining)
	})

	t.Run("account missing", func(t *testing.T) {
		service, m := NewMock(t)
		m.cache.EXPECT().Get(ctx, "balance:user:9:gen", gomock.Any()).Return(false, nil)
		m.cache.EXPECT().Get(ctx, "balance:user:9:v0", gomock.Any()).Return(false, nil)
		m.balance.EXPECT().GetAccount(ctx, 9).Return(nil, errors.New("account not found"))

		_, err := service.GetBalance(ctx, 9)
		assert.Error(t, err)
	})
}

func TestGetBalance_MutationDuringRead(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	ctrl := gomock.NewController(t)
	balanceRepo := NewMockBalanceRepo(ctrl)
	service := New(balanceRepo, NewMockLedgerRepo(ctrl), NewMockEventRepo(ctrl), NewMockTemplateRepo(ctrl),
		pg.NewMockTXManager(ctrl), cache.NewRedis(rdb), Config{FreeAllowance: 30, CacheTTL: time.Minute})

	gomock.InOrder(
		balanceRepo.EXPECT().GetAccount(ctx, 1).DoAndReturn(func(ctx context.Context, _ int) (*domain.BalanceAccount, error) {
			// a top-up commits and invalidates while this read is in flight
			service.Invalidate(ctx, 1)
			return &domain.BalanceAccount{UserID: 1, Balance: decimal.RequireFromString("10")}, nil
		}),
		balanceRepo.EXPECT().GetAccount(ctx, 1).Return(&domain.BalanceAccount{UserID: 1, Balance: decimal.RequireFromString("35")}, nil),
	)

	first, err := service.GetBalance(ctx, 1)
	require.NoError(t, err)
	assert.True(t, first.Balance.Equal(decimal.RequireFromString("10")))

	second, err := service.GetBalance(ctx, 1)
	require.NoError(t, err)
	assert.True(t, second.Balance.Equal(decimal.RequireFromString("35")), "balance %s", second.Balance)

	third, err := service.GetBalance(ctx, 1)
	require.NoError(t, err)
	assert.True(t, third.Balance.Equal(decimal.RequireFromString("35")))
	assert.True(t, mr.Exists("balance:user:1:v1"))
}

func TestListTransactions(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name       string
		limit      int
		offset     int
		wantLimit  int
		wantOffset int
	}{
		{name: "defaults", limit: 0, offset: -5, wantLimit: DefaultPageLimit, wantOffset: 0},
		{name: "clamped", limit: 1000, offset: 10, wantLimit: MaxPageLimit, wantOffset: 10},
		{name: "as given", limit: 5, offset: 5, wantLimit: 5, wantOffset: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			m.ledger.EXPECT().ListByUser(ctx, 1, tt.wantLimit, tt.wantOffset).Return([]domain.LedgerEntry{{ID: 1}}, nil)
			m.ledger.EXPECT().CountByUser(ctx, 1).Return(42, nil)

			page, err := service.ListTransactions(ctx, 1, tt.limit, tt.offset)
			require.NoError(t, err)
			assert.Equal(t, 42, page.Total)
			assert.Equal(t, tt.wantLimit, page.Limit)
			assert.Equal(t, tt.wantOffset, page.Offset)
			assert.Len(t, page.Entries, 1)
		})
	}

	t.Run("count error", func(t *testing.T) {
		service, m := NewMock(t)
		m.ledger.EXPECT().ListByUser(ctx, 1, DefaultPageLimit, 0).Return([]domain.LedgerEntry{}, nil)
		m.ledger.EXPECT().CountByUser(ctx, 1).Return(0, errors.New("db down"))

		_, err := service.ListTransactions(ctx, 1, 0, 0)
		assert.EqualError(t, err, "db down")
	})
}
