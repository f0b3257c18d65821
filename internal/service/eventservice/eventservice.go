package eventservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/vivento/internal/domain"
	"github.com/GlebRadaev/vivento/pkg/validate"
)

//go:generate mockgen -source=eventservice.go -destination=mock_eventservice.go -package=eventservice

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) (*domain.Event, error)
	FindByUser(ctx context.Context, userID int) ([]domain.Event, error)
	FindByIDAndUser(ctx context.Context, id, userID int) (*domain.Event, error)
	FindByID(ctx context.Context, id int) (*domain.Event, error)
	Update(ctx context.Context, e *domain.Event) (*domain.Event, error)
}

type GuestRepo interface {
	Create(ctx context.Context, g *domain.Guest) (*domain.Guest, error)
	FindByEvent(ctx context.Context, eventID int) ([]domain.Guest, error)
	FindByToken(ctx context.Context, token string) (*domain.Guest, error)
	SetRSVP(ctx context.Context, token string, status domain.RSVPStatus) (*domain.Guest, error)
}

type TemplateRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Template, error)
}

var (
	ErrEventNotFound      = errors.New("event not found")
	ErrInvalidEvent       = errors.New("invalid event")
	ErrTemplateNotFound   = errors.New("template not found")
	ErrInvalidGuest       = errors.New("invalid guest")
	ErrInvitationNotFound = errors.New("invitation not found")
	ErrInvalidRSVP        = errors.New("rsvp status must be attending or not_attending")
)

// EventPatch carries a partial update; nil fields keep their stored values.
type EventPatch struct {
	Name            *string
	Date            *time.Time
	Location        *string
	MapLink         *string
	AdditionalNotes *string
	TemplateID      *int
	CustomDesign    *domain.DesignData
}

type Service struct {
	events    EventRepo
	guests    GuestRepo
	templates TemplateRepo
}

func New(events EventRepo, guests GuestRepo, templates TemplateRepo) *Service {
	return &Service{
		events:    events,
		guests:    guests,
		templates: templates,
	}
}

func (s *Service) check(ctx context.Context, e *domain.Event) error {
	if strings.TrimSpace(e.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidEvent)
	}
	if strings.TrimSpace(e.Location) == "" {
		return fmt.Errorf("%w: location is required", ErrInvalidEvent)
	}
	if e.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidEvent)
	}
	if e.CustomDesign != nil {
		if err := validate.Struct(e.CustomDesign); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidEvent, err)
		}
	}
	if e.TemplateID != nil {
		tpl, err := s.templates.FindByID(ctx, *e.TemplateID)
		if err != nil {
			return err
		}
		if tpl == nil {
			return ErrTemplateNotFound
		}
	}
	return nil
}

func (s *Service) CreateEvent(ctx context.Context, e *domain.Event) (*domain.Event, error) {
	if err := s.check(ctx, e); err != nil {
		return nil, err
	}
	created, err := s.events.Create(ctx, e)
	if err != nil {
		return nil, err
	}
	zap.L().Info("event created", zap.Int("eventID", created.ID), zap.Int("userID", created.UserID))
	return created, nil
}

func (s *Service) ListEvents(ctx context.Context, userID int) ([]domain.Event, error) {
	return s.events.FindByUser(ctx, userID)
}

func (s *Service) GetEvent(ctx context.Context, userID, eventID int) (*domain.Event, error) {
	e, err := s.events.FindByIDAndUser(ctx, eventID, userID)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, ErrEventNotFound
	}
	return e, nil
}

func (s *Service) UpdateEvent(ctx context.Context, userID, eventID int, patch EventPatch) (*domain.Event, error) {
	e, err := s.GetEvent(ctx, userID, eventID)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		e.Name = *patch.Name
	}
	if patch.Date != nil {
		e.Date = *patch.Date
	}
	if patch.Location != nil {
		e.Location = *patch.Location
	}
	if patch.MapLink != nil {
		e.MapLink = *patch.MapLink
	}
	if patch.AdditionalNotes != nil {
		e.AdditionalNotes = *patch.AdditionalNotes
	}
	if patch.TemplateID != nil {
		e.TemplateID = patch.TemplateID
	}
	if patch.CustomDesign != nil {
		e.CustomDesign = patch.CustomDesign
	}

	if err := s.check(ctx, e); err != nil {
		return nil, err
	}
	updated, err := s.events.Update(ctx, e)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrEventNotFound
	}
	return updated, nil
}

func (s *Service) AddGuest(ctx context.Context, userID, eventID int, g *domain.Guest) (*domain.Guest, error) {
	if strings.TrimSpace(g.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidGuest)
	}
	if _, err := s.GetEvent(ctx, userID, eventID); err != nil {
		return nil, err
	}

	g.EventID = eventID
	g.Token = uuid.NewString()
	g.RSVPStatus = domain.RSVPPending
	created, err := s.guests.Create(ctx, g)
	if err != nil {
		return nil, err
	}
	zap.L().Info("guest added", zap.Int("eventID", eventID), zap.Int("guestID", created.ID))
	return created, nil
}

func (s *Service) ListGuests(ctx context.Context, userID, eventID int) ([]domain.Guest, error) {
	if _, err := s.GetEvent(ctx, userID, eventID); err != nil {
		return nil, err
	}
	return s.guests.FindByEvent(ctx, eventID)
}

func (s *Service) GetInvitation(ctx context.Context, token string) (*domain.Invitation, error) {
	guest, err := s.guests.FindByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if guest == nil {
		return nil, ErrInvitationNotFound
	}

	event, err := s.events.FindByID(ctx, guest.EventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrInvitationNotFound
	}

	inv := &domain.Invitation{Guest: *guest, Event: *event}
	if event.TemplateID != nil {
		tpl, err := s.templates.FindByID(ctx, *event.TemplateID)
		if err != nil {
			return nil, err
		}
		inv.Template = tpl
	}
	return inv, nil
}

func (s *Service) RespondRSVP(ctx context.Context, token string, status domain.RSVPStatus) (*domain.Guest, error) {
	if status != domain.RSVPAttending && status != domain.RSVPNotAttending {
		return nil, ErrInvalidRSVP
	}
	guest, err := s.guests.SetRSVP(ctx, token, status)
	if err != nil {
		return nil, err
	}
	if guest == nil {
		return nil, ErrInvitationNotFound
	}
	zap.L().Info("rsvp recorded", zap.Int("guestID", guest.ID), zap.String("status", string(status)))
	return guest, nil
}
