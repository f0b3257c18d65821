package eventservice

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/vivento/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockEventRepo, *MockGuestRepo, *MockTemplateRepo) {
	ctrl := gomock.NewController(t)
	events := NewMockEventRepo(ctrl)
	guests := NewMockGuestRepo(ctrl)
	templates := NewMockTemplateRepo(ctrl)
	return New(events, guests, templates), events, guests, templates
}

func intPtr(i int) *int { return &i }

func strPtr(s string) *string { return &s }

var eventDate = time.Date(2026, 6, 20, 18, 0, 0, 0, time.UTC)

func TestCreateEvent(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		event       domain.Event
		prepareMock func(events *MockEventRepo, templates *MockTemplateRepo)
		wantErr     error
	}{
		{
			name:  "with template",
			event: domain.Event{UserID: 1, Name: "Wedding", Location: "Baku", Date: eventDate, TemplateID: intPtr(2)},
			prepareMock: func(events *MockEventRepo, templates *MockTemplateRepo) {
				templates.EXPECT().FindByID(ctx, 2).Return(&domain.Template{ID: 2}, nil)
				events.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e *domain.Event) (*domain.Event, error) {
					e.ID = 10
					return e, nil
				})
			},
		},
		{
			name:    "missing name",
			event:   domain.Event{UserID: 1, Location: "Baku", Date: eventDate},
			wantErr: ErrInvalidEvent,
		},
		{
			name:    "missing date",
			event:   domain.Event{UserID: 1, Name: "Party", Location: "Baku"},
			wantErr: ErrInvalidEvent,
		},
		{
			name:  "unknown template",
			event: domain.Event{UserID: 1, Name: "Wedding", Location: "Baku", Date: eventDate, TemplateID: intPtr(99)},
			prepareMock: func(_ *MockEventRepo, templates *MockTemplateRepo) {
				templates.EXPECT().FindByID(ctx, 99).Return(nil, nil)
			},
			wantErr: ErrTemplateNotFound,
		},
		{
			name: "invalid custom design",
			event: domain.Event{
				UserID: 1, Name: "Wedding", Location: "Baku", Date: eventDate,
				CustomDesign: &domain.DesignData{Canvas: domain.Canvas{Width: 0, Height: 100}},
			},
			wantErr: ErrInvalidEvent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, events, _, templates := NewMock(t)
			if tt.prepareMock != nil {
				tt.prepareMock(events, templates)
			}
			e := tt.event
			_, err := service.CreateEvent(ctx, &e)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestUpdateEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("partial update keeps other fields", func(t *testing.T) {
		service, events, _, _ := NewMock(t)
		events.EXPECT().FindByIDAndUser(ctx, 5, 1).Return(&domain.Event{
			ID: 5, UserID: 1, Name: "Wedding", Location: "Baku", Date: eventDate, MapLink: "https://maps/1",
		}, nil)
		events.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e *domain.Event) (*domain.Event, error) {
			assert.Equal(t, "Ganja", e.Location)
			assert.Equal(t, "Wedding", e.Name)
			assert.Equal(t, "https://maps/1", e.MapLink)
			return e, nil
		})

		updated, err := service.UpdateEvent(ctx, 1, 5, EventPatch{Location: strPtr("Ganja")})
		require.NoError(t, err)
		assert.Equal(t, "Ganja", updated.Location)
	})

	t.Run("foreign event", func(t *testing.T) {
		service, events, _, _ := NewMock(t)
		events.EXPECT().FindByIDAndUser(ctx, 5, 2).Return(nil, nil)

		_, err := service.UpdateEvent(ctx, 2, 5, EventPatch{Name: strPtr("Mine")})
		assert.ErrorIs(t, err, ErrEventNotFound)
	})

	t.Run("blank name rejected", func(t *testing.T) {
		service, events, _, _ := NewMock(t)
		events.EXPECT().FindByIDAndUser(ctx, 5, 1).Return(&domain.Event{ID: 5, UserID: 1, Name: "Wedding", Location: "Baku", Date: eventDate}, nil)

		_, err := service.UpdateEvent(ctx, 1, 5, EventPatch{Name: strPtr("  ")})
		assert.ErrorIs(t, err, ErrInvalidEvent)
	})
}

func TestGuests(t *testing.T) {
	ctx := context.Background()

	t.Run("add guest issues token", func(t *testing.T) {
		service, events, guests, _ := NewMock(t)
		events.EXPECT().FindByIDAndUser(ctx, 5, 1).Return(&domain.Event{ID: 5, UserID: 1}, nil)
		guests.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, g *domain.Guest) (*domain.Guest, error) {
			_, err := uuid.Parse(g.Token)
			assert.NoError(t, err)
			assert.Equal(t, 5, g.EventID)
			assert.Equal(t, domain.RSVPPending, g.RSVPStatus)
			g.ID = 3
			return g, nil
		})

		guest, err := service.AddGuest(ctx, 1, 5, &domain.Guest{Name: "Leyla", Phone: "+994501112233"})
		require.NoError(t, err)
		assert.Equal(t, 3, guest.ID)
	})

	t.Run("guest needs a name", func(t *testing.T) {
		service, _, _, _ := NewMock(t)
		_, err := service.AddGuest(ctx, 1, 5, &domain.Guest{})
		assert.ErrorIs(t, err, ErrInvalidGuest)
	})

	t.Run("list guests of foreign event", func(t *testing.T) {
		service, events, _, _ := NewMock(t)
		events.EXPECT().FindByIDAndUser(ctx, 5, 2).Return(nil, nil)
		_, err := service.ListGuests(ctx, 2, 5)
		assert.ErrorIs(t, err, ErrEventNotFound)
	})

	t.Run("list guests", func(t *testing.T) {
		service, events, guests, _ := NewMock(t)
		events.EXPECT().FindByIDAndUser(ctx, 5, 1).Return(&domain.Event{ID: 5, UserID: 1}, nil)
		guests.EXPECT().FindByEvent(ctx, 5).Return([]domain.Guest{{ID: 1}, {ID: 2}}, nil)
		list, err := service.ListGuests(ctx, 1, 5)
		require.NoError(t, err)
		assert.Len(t, list, 2)
	})
}

func TestInvitation(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves guest event and template", func(t *testing.T) {
		service, events, guests, templates := NewMock(t)
		guests.EXPECT().FindByToken(ctx, "tok").Return(&domain.Guest{ID: 1, EventID: 5, Token: "tok"}, nil)
		events.EXPECT().FindByID(ctx, 5).Return(&domain.Event{ID: 5, TemplateID: intPtr(2)}, nil)
		templates.EXPECT().FindByID(ctx, 2).Return(&domain.Template{ID: 2, Name: "Gold"}, nil)

		inv, err := service.GetInvitation(ctx, "tok")
		require.NoError(t, err)
		assert.Equal(t, 5, inv.Event.ID)
		assert.Equal(t, "Gold", inv.Template.Name)
	})

	t.Run("unknown token", func(t *testing.T) {
		service, _, guests, _ := NewMock(t)
		guests.EXPECT().FindByToken(ctx, "nope").Return(nil, nil)
		_, err := service.GetInvitation(ctx, "nope")
		assert.ErrorIs(t, err, ErrInvitationNotFound)
	})

	t.Run("rsvp accepted", func(t *testing.T) {
		service, _, guests, _ := NewMock(t)
		guests.EXPECT().SetRSVP(ctx, "tok", domain.RSVPAttending).Return(&domain.Guest{ID: 1, RSVPStatus: domain.RSVPAttending}, nil)
		g, err := service.RespondRSVP(ctx, "tok", domain.RSVPAttending)
		require.NoError(t, err)
		assert.Equal(t, domain.RSVPAttending, g.RSVPStatus)
	})

	t.Run("rsvp pending is not a response", func(t *testing.T) {
		service, _, _, _ := NewMock(t)
		_, err := service.RespondRSVP(ctx, "tok", domain.RSVPPending)
		assert.ErrorIs(t, err, ErrInvalidRSVP)
	})

	t.Run("rsvp unknown token", func(t *testing.T) {
		service, _, guests, _ := NewMock(t)
		guests.EXPECT().SetRSVP(ctx, "nope", domain.RSVPNotAttending).Return(nil, nil)
		_, err := service.RespondRSVP(ctx, "nope", domain.RSVPNotAttending)
		assert.ErrorIs(t, err, ErrInvitationNotFound)
	})
}
