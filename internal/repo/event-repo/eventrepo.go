package eventrepo

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

const eventColumns = `id, user_id, name, date, location, map_link, additional_notes, template_id, custom_design, created_at, updated_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanEvent(row pgx.Row) (*domain.Event, error) {
	var (
		e      domain.Event
		design []byte
	)
	err := row.Scan(&e.ID, &e.UserID, &e.Name, &e.Date, &e.Location, &e.MapLink, &e.AdditionalNotes, &e.TemplateID, &design, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if len(design) > 0 {
		e.CustomDesign = &domain.DesignData{}
		if err := json.Unmarshal(design, e.CustomDesign); err != nil {
			return nil, fmt.Errorf("decode design of event %d: %w", e.ID, err)
		}
	}
	return &e, nil
}

func encodeDesign(d *domain.DesignData) ([]byte, error) {
	if d == nil {
		return nil, nil
	}
	return json.Marshal(d)
}

func (r *Repository) Create(ctx context.Context, e *domain.Event) (*domain.Event, error) {
	design, err := encodeDesign(e.CustomDesign)
	if err != nil {
		return nil, err
	}
	query := `
		INSERT INTO events (user_id, name, date, location, map_link, additional_notes, template_id, custom_design)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + eventColumns
	created, err := scanEvent(r.db.QueryRow(ctx, query,
		e.UserID, e.Name, e.Date, e.Location, e.MapLink, e.AdditionalNotes, e.TemplateID, design,
	))
	if err != nil {
		zap.L().Error("can't save event", zap.Int("userID", e.UserID), zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) FindByUser(ctx context.Context, userID int) ([]domain.Event, error) {
	query := `
        SELECT ` + eventColumns + `
        FROM events
        WHERE user_id = $1
        ORDER BY date DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get events", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	events := []domain.Event{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			zap.L().Error("can't scan event row", zap.Error(err))
			return nil, err
		}
		events = append(events, *e)
	}
	return events, rows.Err()
}

// FindByIDAndUser returns nil when the event does not exist or belongs to someone else.
func (r *Repository) FindByIDAndUser(ctx context.Context, id, userID int) (*domain.Event, error) {
	return r.findOne(ctx, "SELECT "+eventColumns+" FROM events WHERE id = $1 AND user_id = $2", id, userID)
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Event, error) {
	return r.findOne(ctx, "SELECT "+eventColumns+" FROM events WHERE id = $1", id)
}

func (r *Repository) findOne(ctx context.Context, query string, args ...any) (*domain.Event, error) {
	e, err := scanEvent(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find event", zap.Error(err))
		return nil, err
	}
	return e, nil
}

func (r *Repository) Update(ctx context.Context, e *domain.Event) (*domain.Event, error) {
	design, err := encodeDesign(e.CustomDesign)
	if err != nil {
		return nil, err
	}
	query := `
		UPDATE events
		SET name = $1, date = $2, location = $3, map_link = $4, additional_notes = $5,
		    template_id = $6, custom_design = $7, updated_at = NOW()
		WHERE id = $8 AND user_id = $9
		RETURNING ` + eventColumns
	updated, err := scanEvent(r.db.QueryRow(ctx, query,
		e.Name, e.Date, e.Location, e.MapLink, e.AdditionalNotes, e.TemplateID, design, e.ID, e.UserID,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't update event", zap.Int("id", e.ID), zap.Error(err))
		return nil, err
	}
	return updated, nil
}
