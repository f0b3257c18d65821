package balancerepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/vivento/internal/domain"
	"github.com/GlebRadaev/vivento/internal/pg"
)

var ErrAccountNotFound = errors.New("balance account not found")

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) scanAccount(row pgx.Row, op string) (*domain.BalanceAccount, error) {
	var account domain.BalanceAccount
	err := row.Scan(&account.UserID, &account.Balance, &account.FreeInvitationsUsed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		zap.L().Error("failed to "+op, zap.Error(err))
		return nil, err
	}
	return &account, nil
}

func (r *Repository) GetAccount(ctx context.Context, userID int) (*domain.BalanceAccount, error) {
	query := `
        SELECT id, balance, free_invitations_used
        FROM users
        WHERE id = $1
    `
	return r.scanAccount(r.db.QueryRow(ctx, query, userID), "get balance account")
}

// LockAccount must run inside a transaction; the row stays locked until it ends.
func (r *Repository) LockAccount(ctx context.Context, userID int) (*domain.BalanceAccount, error) {
	query := `
        SELECT id, balance, free_invitations_used
        FROM users
        WHERE id = $1
        FOR UPDATE
    `
	return r.scanAccount(r.db.QueryRow(ctx, query, userID), "lock balance account")
}

func (r *Repository) Credit(ctx context.Context, userID int, amount decimal.Decimal) (decimal.Decimal, error) {
	query := `
		UPDATE users
		SET balance = balance + $1
		WHERE id = $2
		RETURNING balance
	`
	var balance decimal.Decimal
	err := r.db.QueryRow(ctx, query, amount, userID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, ErrAccountNotFound
		}
		zap.L().Error("failed to credit balance", zap.Int("userID", userID), zap.Error(err))
		return decimal.Zero, err
	}
	return balance, nil
}

func (r *Repository) ApplyCharge(ctx context.Context, userID int, cost decimal.Decimal, freeUsed int) (*domain.BalanceAccount, error) {
	query := `
		UPDATE users
		SET balance = balance - $1, free_invitations_used = free_invitations_used + $2
		WHERE id = $3
		RETURNING id, balance, free_invitations_used
	`
	return r.scanAccount(r.db.QueryRow(ctx, query, cost, freeUsed, userID), "apply invitation charge")
}
