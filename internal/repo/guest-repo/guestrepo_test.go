package guestrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/vivento/internal/domain"
)

var columns = []string{"id", "event_id", "name", "phone", "email", "unique_token", "rsvp_status", "created_at", "responded_at"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return New(mockDB), mockDB
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	guest := &domain.Guest{EventID: 10, Name: "Rauf", Phone: "+994500000000", Token: "tok-1", RSVPStatus: domain.RSVPPending}
	query := regexp.QuoteMeta("INSERT INTO guests (event_id, name, phone, email, unique_token, rsvp_status)")

	mock.ExpectQuery(query).
		WithArgs(10, "Rauf", "+994500000000", "", "tok-1", domain.RSVPPending).
		WillReturnRows(pgxmock.NewRows(columns).AddRow(1, 10, "Rauf", "+994500000000", "", "tok-1", domain.RSVPPending, time.Now(), nil))
	mock.ExpectQuery(query).
		WithArgs(10, "Rauf", "+994500000000", "", "tok-1", domain.RSVPPending).
		WillReturnError(errors.New("database error"))

	created, err := repo.Create(context.Background(), guest)
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
	assert.Nil(t, created.RespondedAt)

	_, err = repo.Create(context.Background(), guest)
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByEvent(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta("FROM guests WHERE event_id = $1 ORDER BY created_at ASC")

	mock.ExpectQuery(query).WithArgs(10).
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow(1, 10, "Rauf", "", "", "tok-1", domain.RSVPPending, time.Now(), nil).
			AddRow(2, 10, "Nigar", "", "n@example.com", "tok-2", domain.RSVPAttending, time.Now(), nil))
	mock.ExpectQuery(query).WithArgs(11).WillReturnError(errors.New("database error"))

	guests, err := repo.FindByEvent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, guests, 2)
	assert.Equal(t, domain.RSVPAttending, guests[1].RSVPStatus)

	_, err = repo.FindByEvent(context.Background(), 11)
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByToken(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta("FROM guests WHERE unique_token = $1")

	mock.ExpectQuery(query).WithArgs("tok-1").
		WillReturnRows(pgxmock.NewRows(columns).AddRow(1, 10, "Rauf", "", "", "tok-1", domain.RSVPPending, time.Now(), nil))
	mock.ExpectQuery(query).WithArgs("missing").WillReturnError(pgx.ErrNoRows)

	guest, err := repo.FindByToken(context.Background(), "tok-1")
	require.NoError(t, err)
	assert.Equal(t, 10, guest.EventID)

	guest, err = repo.FindByToken(context.Background(), "missing")
	assert.NoError(t, err)
	assert.Nil(t, guest)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SetRSVP(t *testing.T) {
	repo, mock := NewMock(t)
	respondedAt := time.Now()
	query := regexp.QuoteMeta("UPDATE guests SET rsvp_status = $1, responded_at = NOW() WHERE unique_token = $2")

	mock.ExpectQuery(query).WithArgs(domain.RSVPNotAttending, "tok-1").
		WillReturnRows(pgxmock.NewRows(columns).AddRow(1, 10, "Rauf", "", "", "tok-1", domain.RSVPNotAttending, time.Now(), &respondedAt))
	mock.ExpectQuery(query).WithArgs(domain.RSVPAttending, "missing").WillReturnError(pgx.ErrNoRows)
	mock.ExpectQuery(query).WithArgs(domain.RSVPAttending, "tok-1").WillReturnError(errors.New("database error"))

	guest, err := repo.SetRSVP(context.Background(), "tok-1", domain.RSVPNotAttending)
	require.NoError(t, err)
	assert.Equal(t, domain.RSVPNotAttending, guest.RSVPStatus)
	require.NotNil(t, guest.RespondedAt)

	guest, err = repo.SetRSVP(context.Background(), "missing", domain.RSVPAttending)
	assert.NoError(t, err)
	assert.Nil(t, guest)

	_, err = repo.SetRSVP(context.Background(), "tok-1", domain.RSVPAttending)
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}
