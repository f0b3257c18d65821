package guestrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/vivento/internal/domain"
	"github.com/GlebRadaev/vivento/internal/pg"
)

const guestColumns = `id, event_id, name, phone, email, unique_token, rsvp_status, created_at, responded_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanGuest(row pgx.Row) (*domain.Guest, error) {
	var g domain.Guest
	err := row.Scan(&g.ID, &g.EventID, &g.Name, &g.Phone, &g.Email, &g.Token, &g.RSVPStatus, &g.CreatedAt, &g.RespondedAt)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *Repository) Create(ctx context.Context, g *domain.Guest) (*domain.Guest, error) {
	query := `
		INSERT INTO guests (event_id, name, phone, email, unique_token, rsvp_status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + guestColumns
	created, err := scanGuest(r.db.QueryRow(ctx, query, g.EventID, g.Name, g.Phone, g.Email, g.Token, g.RSVPStatus))
	if err != nil {
		zap.L().Error("can't save guest", zap.Int("eventID", g.EventID), zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) FindByEvent(ctx context.Context, eventID int) ([]domain.Guest, error) {
	rows, err := r.db.Query(ctx, "SELECT "+guestColumns+" FROM guests WHERE event_id = $1 ORDER BY created_at ASC", eventID)
	if err != nil {
		zap.L().Error("can't get guests", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	guests := []domain.Guest{}
	for rows.Next() {
		g, err := scanGuest(rows)
		if err != nil {
			zap.L().Error("can't scan guest row", zap.Error(err))
			return nil, err
		}
		guests = append(guests, *g)
	}
	return guests, rows.Err()
}

func (r *Repository) FindByToken(ctx context.Context, token string) (*domain.Guest, error) {
	g, err := scanGuest(r.db.QueryRow(ctx, "SELECT "+guestColumns+" FROM guests WHERE unique_token = $1", token))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find guest", zap.Error(err))
		return nil, err
	}
	return g, nil
}

func (r *Repository) SetRSVP(ctx context.Context, token string, status domain.RSVPStatus) (*domain.Guest, error) {
	query := `
		UPDATE guests
		SET rsvp_status = $1, responded_at = NOW()
		WHERE unique_token = $2
		RETURNING ` + guestColumns
	g, err := scanGuest(r.db.QueryRow(ctx, query, status, token))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't save rsvp", zap.Error(err))
		return nil, err
	}
	return g, nil
}
