package balancerepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type decimalArg string

func (d decimalArg) Match(v any) bool {
	got, ok := v.(decimal.Decimal)
	return ok && got.Equal(decimal.RequireFromString(string(d)))
}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return New(mockDB), mockDB
}

func TestRepository_GetAccount(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta("SELECT id, balance, free_invitations_used FROM users WHERE id = $1")

	tests := []struct {
		name      string
		userID    int
		mockSetup func()
		expectErr error
		balance   string
		freeUsed  int
	}{
		{
			name:   "Account found",
			userID: 1,
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(1).
					WillReturnRows(pgxmock.NewRows([]string{"id", "balance", "free_invitations_used"}).
						AddRow(1, decimal.RequireFromString("42.10"), 12))
			},
			balance:  "42.1",
			freeUsed: 12,
		},
		{
			name:   "Account missing",
			userID: 99,
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(99).WillReturnError(pgx.ErrNoRows)
			},
			expectErr: ErrAccountNotFound,
		},
		{
			name:   "Database error",
			userID: 1,
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(1).WillReturnError(errors.New("database error"))
			},
			expectErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			account, err := repo.GetAccount(context.Background(), tt.userID)
			if tt.expectErr != nil {
				assert.EqualError(t, err, tt.expectErr.Error())
				assert.Nil(t, account)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.balance, account.Balance.String())
			assert.Equal(t, tt.freeUsed, account.FreeInvitationsUsed)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_LockAccount(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1 FOR UPDATE")).
		WithArgs(5).
		WillReturnRows(pgxmock.NewRows([]string{"id", "balance", "free_invitations_used"}).
			AddRow(5, decimal.RequireFromString("3"), 30))

	account, err := repo.LockAccount(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, 5, account.UserID)
	assert.Equal(t, 30, account.FreeInvitationsUsed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Credit(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta("UPDATE users SET balance = balance + $1 WHERE id = $2 RETURNING balance")

	mock.ExpectQuery(query).
		WithArgs(decimalArg("10.00"), 1).
		WillReturnRows(pgxmock.NewRows([]string{"balance"}).AddRow(decimal.RequireFromString("25.50")))
	mock.ExpectQuery(query).
		WithArgs(decimalArg("10.00"), 2).
		WillReturnError(pgx.ErrNoRows)

	balance, err := repo.Credit(context.Background(), 1, decimal.RequireFromString("10"))
	require.NoError(t, err)
	assert.Equal(t, "25.5", balance.String())

	_, err = repo.Credit(context.Background(), 2, decimal.RequireFromString("10"))
	assert.ErrorIs(t, err, ErrAccountNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ApplyCharge(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta("SET balance = balance - $1, free_invitations_used = free_invitations_used + $2 WHERE id = $3")

	mock.ExpectQuery(query).
		WithArgs(decimalArg("1.5"), 2, 7).
		WillReturnRows(pgxmock.NewRows([]string{"id", "balance", "free_invitations_used"}).
			AddRow(7, decimal.RequireFromString("8.5"), 30))
	mock.ExpectQuery(query).
		WithArgs(decimalArg("0"), 3, 7).
		WillReturnError(errors.New("database error"))

	account, err := repo.ApplyCharge(context.Background(), 7, decimal.RequireFromString("1.5"), 2)
	require.NoError(t, err)
	assert.Equal(t, "8.5", account.Balance.String())
	assert.Equal(t, 30, account.FreeInvitationsUsed)

	_, err = repo.ApplyCharge(context.Background(), 7, decimal.Zero, 3)
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}
