package ledgerrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/vivento/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return New(mockDB), mockDB
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Now()
	paymentID := 11
	externalID := "te000123"
	query := regexp.QuoteMeta("INSERT INTO ledger_entries (user_id, amount, category, description, payment_id, external_id, status)")

	tests := []struct {
		name      string
		entry     *domain.LedgerEntry
		mockSetup func(e *domain.LedgerEntry)
		expectErr bool
	}{
		{
			name: "Top-up entry",
			entry: &domain.LedgerEntry{
				UserID:      1,
				Amount:      decimal.RequireFromString("10"),
				Category:    domain.CategoryTopUp,
				Description: "Balance top-up",
				PaymentID:   &paymentID,
				ExternalID:  &externalID,
				Status:      "completed",
			},
			mockSetup: func(e *domain.LedgerEntry) {
				mock.ExpectQuery(query).
					WithArgs(e.UserID, e.Amount, e.Category, e.Description, e.PaymentID, e.ExternalID, e.Status).
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(5, createdAt))
			},
		},
		{
			name: "Database error",
			entry: &domain.LedgerEntry{
				UserID:   1,
				Amount:   decimal.RequireFromString("-3"),
				Category: domain.CategoryInvitationCharge,
				Status:   "completed",
			},
			mockSetup: func(e *domain.LedgerEntry) {
				mock.ExpectQuery(query).
					WithArgs(e.UserID, e.Amount, e.Category, e.Description, e.PaymentID, e.ExternalID, e.Status).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup(tt.entry)
			result, err := repo.Create(context.Background(), tt.entry)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				assert.Equal(t, 5, result.ID)
				assert.Equal(t, createdAt, result.CreatedAt)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_ListByUser(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	paymentID := 11
	query := regexp.QuoteMeta("FROM ledger_entries WHERE user_id = $1 ORDER BY created_at DESC, id DESC LIMIT $2 OFFSET $3")
	cols := []string{"id", "user_id", "amount", "category", "description", "payment_id", "external_id", "status", "created_at"}

	t.Run("Entries returned newest first", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(1, 20, 0).
			WillReturnRows(pgxmock.NewRows(cols).
				AddRow(2, 1, decimal.RequireFromString("-4.5"), domain.CategoryInvitationCharge, "Invitations", nil, nil, "completed", now).
				AddRow(1, 1, decimal.RequireFromString("10"), domain.CategoryTopUp, "Top-up", &paymentID, nil, "completed", now.Add(-time.Hour)))

		entries, err := repo.ListByUser(context.Background(), 1, 20, 0)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "-4.5", entries[0].Amount.String())
		assert.Nil(t, entries[0].PaymentID)
		assert.Equal(t, 11, *entries[1].PaymentID)
	})

	t.Run("No entries", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(2, 20, 40).WillReturnRows(pgxmock.NewRows(cols))

		entries, err := repo.ListByUser(context.Background(), 2, 20, 40)
		require.NoError(t, err)
		assert.NotNil(t, entries)
		assert.Empty(t, entries)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(1, 20, 0).WillReturnError(errors.New("database error"))

		_, err := repo.ListByUser(context.Background(), 1, 20, 0)
		assert.Error(t, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CountByUser(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta("SELECT COUNT(*) FROM ledger_entries WHERE user_id = $1")

	mock.ExpectQuery(query).WithArgs(1).WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(42))
	mock.ExpectQuery(query).WithArgs(2).WillReturnError(errors.New("database error"))

	total, err := repo.CountByUser(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 42, total)

	_, err = repo.CountByUser(context.Background(), 2)
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}
