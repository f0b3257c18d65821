package paymentrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/vivento/internal/domain"
	"github.com/GlebRadaev/vivento/internal/pg"
)

const intentColumns = `id, order_id, user_id, amount, currency, description, status, external_id, checkout_url, created_at, completed_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanIntent(row pgx.Row) (*domain.PaymentIntent, error) {
	var p domain.PaymentIntent
	err := row.Scan(
		&p.ID,
		&p.OrderID,
		&p.UserID,
		&p.Amount,
		&p.Currency,
		&p.Description,
		&p.Status,
		&p.ExternalID,
		&p.CheckoutURL,
		&p.CreatedAt,
		&p.CompletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) Create(ctx context.Context, intent *domain.PaymentIntent) (*domain.PaymentIntent, error) {
	query := `
        INSERT INTO payment_intents (order_id, user_id, amount, currency, description, status, checkout_url)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING ` + intentColumns
	created, err := scanIntent(r.db.QueryRow(ctx, query,
		intent.OrderID, intent.UserID, intent.Amount, intent.Currency, intent.Description, intent.Status, intent.CheckoutURL,
	))
	if err != nil {
		zap.L().Error("can't save payment intent", zap.String("orderID", intent.OrderID), zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) findOne(ctx context.Context, query string, args ...any) (*domain.PaymentIntent, error) {
	intent, err := scanIntent(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find payment intent", zap.Error(err))
		return nil, err
	}
	return intent, nil
}

func (r *Repository) FindByOrderID(ctx context.Context, orderID string) (*domain.PaymentIntent, error) {
	return r.findOne(ctx, "SELECT "+intentColumns+" FROM payment_intents WHERE order_id = $1", orderID)
}

func (r *Repository) FindByIDAndUser(ctx context.Context, id, userID int) (*domain.PaymentIntent, error) {
	return r.findOne(ctx, "SELECT "+intentColumns+" FROM payment_intents WHERE id = $1 AND user_id = $2", id, userID)
}

// Resolve moves a pending intent to status. The boolean is false when the
// intent was not pending any more (or does not exist) and nothing changed.
func (r *Repository) Resolve(ctx context.Context, orderID string, status domain.PaymentStatus, externalID *string) (*domain.PaymentIntent, bool, error) {
	query := `
        UPDATE payment_intents
        SET status = $1, external_id = COALESCE($2, external_id), completed_at = NOW()
        WHERE order_id = $3 AND status = 'pending'
        RETURNING ` + intentColumns
	intent, err := scanIntent(r.db.QueryRow(ctx, query, status, externalID, orderID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		zap.L().Error("can't resolve payment intent", zap.String("orderID", orderID), zap.Error(err))
		return nil, false, err
	}
	return intent, true, nil
}

// FindStalePending returns pending intents created before the given moment, oldest first.
func (r *Repository) FindStalePending(ctx context.Context, before time.Time, limit int) ([]domain.PaymentIntent, error) {
	query := `
        SELECT ` + intentColumns + `
        FROM payment_intents
        WHERE status = 'pending' AND created_at < $1
        ORDER BY created_at ASC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, before, limit)
	if err != nil {
		zap.L().Error("can't get pending payment intents", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var intents []domain.PaymentIntent
	for rows.Next() {
		intent, err := scanIntent(rows)
		if err != nil {
			zap.L().Error("can't scan payment intent row", zap.Error(err))
			return nil, err
		}
		intents = append(intents, *intent)
	}
	return intents, rows.Err()
}
