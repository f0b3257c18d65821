package dto

import (
	"time"

	"github.com/GlebRadaev/vivento/internal/domain"
)

type CreateEventRequestDTO struct {
	Name            string             `json:"name" validate:"required,max=255" example:"Aysel & Murad"`
	Date            time.Time          `json:"date" validate:"required" example:"2026-06-20T18:00:00Z"`
	Location        string             `json:"location" validate:"required,max=512" example:"Baku, Four Seasons"`
	MapLink         string             `json:"map_link" validate:"omitempty,url"`
	AdditionalNotes string             `json:"additional_notes"`
	TemplateID      *int               `json:"template_id"`
	CustomDesign    *domain.DesignData `json:"custom_design"`
}

// UpdateEventRequestDTO fields left out of the body keep their stored values.
type UpdateEventRequestDTO struct {
	Name            *string            `json:"name" validate:"omitempty,max=255"`
	Date            *time.Time         `json:"date"`
	Location        *string            `json:"location" validate:"omitempty,max=512"`
	MapLink         *string            `json:"map_link" validate:"omitempty,url"`
	AdditionalNotes *string            `json:"additional_notes"`
	TemplateID      *int               `json:"template_id"`
	CustomDesign    *domain.DesignData `json:"custom_design"`
}

type EventDTO struct {
	ID              int                `json:"id" example:"5"`
	Name            string             `json:"name"`
	Date            time.Time          `json:"date"`
	Location        string             `json:"location"`
	MapLink         string             `json:"map_link,omitempty"`
	AdditionalNotes string             `json:"additional_notes,omitempty"`
	TemplateID      *int               `json:"template_id,omitempty"`
	CustomDesign    *domain.DesignData `json:"custom_design,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

type CreateGuestRequestDTO struct {
	Name  string `json:"name" validate:"required,max=255" example:"Leyla"`
	Phone string `json:"phone" validate:"max=64" example:"+994501112233"`
	Email string `json:"email" validate:"omitempty,email"`
}

type GuestDTO struct {
	ID          int        `json:"id"`
	EventID     int        `json:"event_id"`
	Name        string     `json:"name"`
	Phone       string     `json:"phone,omitempty"`
	Email       string     `json:"email,omitempty"`
	Token       string     `json:"unique_token"`
	RSVPStatus  string     `json:"rsvp_status" example:"pending"`
	CreatedAt   time.Time  `json:"created_at"`
	RespondedAt *time.Time `json:"responded_at,omitempty"`
}

type RSVPRequestDTO struct {
	Status string `json:"status" validate:"required,oneof=attending not_attending" example:"attending"`
}

type InvitationDTO struct {
	Guest    GuestDTO     `json:"guest"`
	Event    EventDTO     `json:"event"`
	Template *TemplateDTO `json:"template,omitempty"`
}

func (r CreateEventRequestDTO) ToDomain(userID int) *domain.Event {
	return &domain.Event{
		UserID:          userID,
		Name:            r.Name,
		Date:            r.Date,
		Location:        r.Location,
		MapLink:         r.MapLink,
		AdditionalNotes: r.AdditionalNotes,
		TemplateID:      r.TemplateID,
		CustomDesign:    r.CustomDesign,
	}
}

func NewEventDTO(e *domain.Event) EventDTO {
	return EventDTO{
		ID:              e.ID,
		Name:            e.Name,
		Date:            e.Date,
		Location:        e.Location,
		MapLink:         e.MapLink,
		AdditionalNotes: e.AdditionalNotes,
		TemplateID:      e.TemplateID,
		CustomDesign:    e.CustomDesign,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func NewEventDTOs(list []domain.Event) []EventDTO {
	out := make([]EventDTO, len(list))
	for i := range list {
		out[i] = NewEventDTO(&list[i])
	}
	return out
}

func NewGuestDTO(g *domain.Guest) GuestDTO {
	return GuestDTO{
		ID:          g.ID,
		EventID:     g.EventID,
		Name:        g.Name,
		Phone:       g.Phone,
		Email:       g.Email,
		Token:       g.Token,
		RSVPStatus:  string(g.RSVPStatus),
		CreatedAt:   g.CreatedAt,
		RespondedAt: g.RespondedAt,
	}
}

func NewGuestDTOs(list []domain.Guest) []GuestDTO {
	out := make([]GuestDTO, len(list))
	for i := range list {
		out[i] = NewGuestDTO(&list[i])
	}
	return out
}

func NewInvitationDTO(inv *domain.Invitation) InvitationDTO {
	resp := InvitationDTO{
		Guest: NewGuestDTO(&inv.Guest),
		Event: NewEventDTO(&inv.Event),
	}
	if inv.Template != nil {
		tpl := NewTemplateDTO(inv.Template)
		resp.Template = &tpl
	}
	return resp
}
