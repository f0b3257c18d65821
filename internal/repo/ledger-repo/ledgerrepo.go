package ledgerrepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/GlebRadaev/vivento/internal/domain"
	"github.com/GlebRadaev/vivento/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error) {
	query := `
		INSERT INTO ledger_entries (user_id, amount, category, description, payment_id, external_id, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		entry.UserID, entry.Amount, entry.Category, entry.Description, entry.PaymentID, entry.ExternalID, entry.Status,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		zap.L().Error("can't save ledger entry", zap.Int("userID", entry.UserID), zap.Error(err))
		return nil, err
	}
	return entry, nil
}

// ListByUser returns newest entries first.
func (r *Repository) ListByUser(ctx context.Context, userID, limit, offset int) ([]domain.LedgerEntry, error) {
	query := `
        SELECT id, user_id, amount, category, description, payment_id, external_id, status, created_at
        FROM ledger_entries
        WHERE user_id = $1
        ORDER BY created_at DESC, id DESC
        LIMIT $2 OFFSET $3
    `
	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		zap.L().Error("failed to fetch ledger entries", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	entries := make([]domain.LedgerEntry, 0, limit)
	for rows.Next() {
		var e domain.LedgerEntry
		err := rows.Scan(&e.ID, &e.UserID, &e.Amount, &e.Category, &e.Description, &e.PaymentID, &e.ExternalID, &e.Status, &e.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan ledger row", zap.Error(err))
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("failed to iterate ledger rows", zap.Error(err))
		return nil, err
	}

	return entries, nil
}

func (r *Repository) CountByUser(ctx context.Context, userID int) (int, error) {
	var total int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM ledger_entries WHERE user_id = $1", userID).Scan(&total)
	if err != nil {
		zap.L().Error("failed to count ledger entries", zap.Error(err))
		return 0, err
	}
	return total, nil
}
