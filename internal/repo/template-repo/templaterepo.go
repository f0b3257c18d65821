package templaterepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/vivento/internal/domain"
	"github.com/GlebRadaev/vivento/internal/pg"
)

const templateColumns = `id, name, category, thumbnail_url, design_data, is_premium, price_per_invitation, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanTemplate(row pgx.Row) (*domain.Template, error) {
	var (
		t      domain.Template
		design []byte
	)
	err := row.Scan(&t.ID, &t.Name, &t.Category, &t.ThumbnailURL, &design, &t.IsPremium, &t.PricePerInvitation, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	if len(design) > 0 {
		if err := json.Unmarshal(design, &t.Design); err != nil {
			return nil, fmt.Errorf("decode design of template %d: %w", t.ID, err)
		}
	}
	return &t, nil
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]domain.Template, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get templates", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	templates := []domain.Template{}
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			zap.L().Error("can't scan template row", zap.Error(err))
			return nil, err
		}
		templates = append(templates, *t)
	}
	return templates, rows.Err()
}

func (r *Repository) List(ctx context.Context) ([]domain.Template, error) {
	return r.list(ctx, "SELECT "+templateColumns+" FROM templates ORDER BY created_at DESC")
}

func (r *Repository) ListByCategory(ctx context.Context, category domain.Category) ([]domain.Template, error) {
	return r.list(ctx, "SELECT "+templateColumns+" FROM templates WHERE category = $1 ORDER BY created_at DESC", category)
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Template, error) {
	t, err := scanTemplate(r.db.QueryRow(ctx, "SELECT "+templateColumns+" FROM templates WHERE id = $1", id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find template", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return t, nil
}

func (r *Repository) Create(ctx context.Context, t *domain.Template) (*domain.Template, error) {
	design, err := json.Marshal(t.Design)
	if err != nil {
		return nil, err
	}
	query := `
		INSERT INTO templates (name, category, thumbnail_url, design_data, is_premium, price_per_invitation)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + templateColumns
	created, err := scanTemplate(r.db.QueryRow(ctx, query, t.Name, t.Category, t.ThumbnailURL, design, t.IsPremium, t.PricePerInvitation))
	if err != nil {
		zap.L().Error("can't save template", zap.Error(err))
		return nil, err
	}
	return created, nil
}

// Update returns nil without error when the template does not exist.
func (r *Repository) Update(ctx context.Context, t *domain.Template) (*domain.Template, error) {
	design, err := json.Marshal(t.Design)
	if err != nil {
		return nil, err
	}
	query := `
		UPDATE templates
		SET name = $1, category = $2, thumbnail_url = $3, design_data = $4, is_premium = $5, price_per_invitation = $6
		WHERE id = $7
		RETURNING ` + templateColumns
	updated, err := scanTemplate(r.db.QueryRow(ctx, query, t.Name, t.Category, t.ThumbnailURL, design, t.IsPremium, t.PricePerInvitation, t.ID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't update template", zap.Int("id", t.ID), zap.Error(err))
		return nil, err
	}
	return updated, nil
}

func (r *Repository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.db.Exec(ctx, "DELETE FROM templates WHERE id = $1", id)
	if err != nil {
		zap.L().Error("can't delete template", zap.Int("id", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
