package userrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/vivento/internal/domain"
	"github.com/GlebRadaev/vivento/internal/pg"
)

const userColumns = `id, email, name, password_hash, facebook_id, profile_picture, role, balance, free_invitations_used, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.PasswordHash,
		&user.FacebookID,
		&user.ProfilePicture,
		&user.Role,
		&user.Balance,
		&user.FreeInvitationsUsed,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) findOne(ctx context.Context, where string, arg any) (*domain.User, error) {
	user, err := scanUser(repo.db.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE "+where, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.String("by", where), zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return repo.findOne(ctx, "lower(email) = lower($1)", email)
}

func (repo *Repository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	return repo.findOne(ctx, "id = $1", id)
}

func (repo *Repository) FindByFacebookID(ctx context.Context, facebookID string) (*domain.User, error) {
	return repo.findOne(ctx, "facebook_id = $1", facebookID)
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (email, name, password_hash, facebook_id, profile_picture, role)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + userColumns
	created, err := scanUser(repo.db.QueryRow(ctx, query,
		user.Email, user.Name, user.PasswordHash, user.FacebookID, user.ProfilePicture, user.Role,
	))
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (repo *Repository) LinkFacebook(ctx context.Context, userID int, facebookID string, picture *string) error {
	query := `
		UPDATE users
		SET facebook_id = $1, profile_picture = COALESCE(profile_picture, $2)
		WHERE id = $3
	`
	if _, err := repo.db.Exec(ctx, query, facebookID, picture, userID); err != nil {
		zap.L().Error("can't link facebook account", zap.Int("userID", userID), zap.Error(err))
		return err
	}
	return nil
}
