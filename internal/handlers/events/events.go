package events

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/vivento/internal/domain"
	"github.com/GlebRadaev/vivento/internal/dto"
	"github.com/GlebRadaev/vivento/internal/service/eventservice"
	"github.com/GlebRadaev/vivento/pkg/auth"
	"github.com/GlebRadaev/vivento/pkg/utils"
	"github.com/GlebRadaev/vivento/pkg/validate"
)

//go:generate mockgen -source=events.go -destination=mock_events.go -package=events

type Service interface {
	CreateEvent(ctx context.Context, e *domain.Event) (*domain.Event, error)
	ListEvents(ctx context.Context, userID int) ([]domain.Event, error)
	GetEvent(ctx context.Context, userID, eventID int) (*domain.Event, error)
	UpdateEvent(ctx context.Context, userID, eventID int, patch eventservice.EventPatch) (*domain.Event, error)
	AddGuest(ctx context.Context, userID, eventID int, g *domain.Guest) (*domain.Guest, error)
	ListGuests(ctx context.Context, userID, eventID int) ([]domain.Guest, error)
}

type EventHandler struct {
	eventService Service
}

func New(eventService Service) *EventHandler {
	return &EventHandler{
		eventService: eventService,
	}
}

func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, eventservice.ErrEventNotFound), errors.Is(err, eventservice.ErrTemplateNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, eventservice.ErrInvalidEvent), errors.Is(err, eventservice.ErrInvalidGuest):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func eventID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	return id, err == nil
}

// CreateEvent godoc
//
//	@Summary		Create event
//	@Tags			Events
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateEventRequestDTO	true	"Event"
//	@Success		201		{object}	dto.EventDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Template not found"
//	@Failure		422		{object}	utils.Response	"Validation failed"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/events [post]
func (h *EventHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreateEventRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	event, err := h.eventService.CreateEvent(r.Context(), req.ToDomain(userID))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewEventDTO(event))
}

// ListEvents godoc
//
//	@Summary		List own events
//	@Tags			Events
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.EventDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/events [get]
func (h *EventHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	events, err := h.eventService.ListEvents(r.Context(), userID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewEventDTOs(events))
}

// GetEvent godoc
//
//	@Summary		Get event
//	@Tags			Events
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Event ID"
//	@Success		200	{object}	dto.EventDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Event not found"
//	@Router			/api/events/{id} [get]
func (h *EventHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	id, ok := eventID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid event id")
		return
	}

	event, err := h.eventService.GetEvent(r.Context(), userID, id)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewEventDTO(event))
}

// UpdateEvent godoc
//
//	@Summary		Update event
//	@Description	Fields missing from the body keep their values.
//	@Tags			Events
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Event ID"
//	@Param			request	body		dto.UpdateEventRequestDTO	true	"Changed fields"
//	@Success		200		{object}	dto.EventDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Event not found"
//	@Failure		422		{object}	utils.Response	"Validation failed"
//	@Router			/api/events/{id} [put]
func (h *EventHandler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	id, ok := eventID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid event id")
		return
	}

	var req dto.UpdateEventRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	event, err := h.eventService.UpdateEvent(r.Context(), userID, id, eventservice.EventPatch{
		Name:            req.Name,
		Date:            req.Date,
		Location:        req.Location,
		MapLink:         req.MapLink,
		AdditionalNotes: req.AdditionalNotes,
		TemplateID:      req.TemplateID,
		CustomDesign:    req.CustomDesign,
	})
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewEventDTO(event))
}

// AddGuest godoc
//
//	@Summary		Add guest
//	@Description	Creates a guest with a personal invitation token.
//	@Tags			Guests
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Event ID"
//	@Param			request	body		dto.CreateGuestRequestDTO	true	"Guest"
//	@Success		201		{object}	dto.GuestDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Event not found"
//	@Failure		422		{object}	utils.Response	"Validation failed"
//	@Router			/api/events/{id}/guests [post]
func (h *EventHandler) AddGuest(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	id, ok := eventID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid event id")
		return
	}

	var req dto.CreateGuestRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	guest, err := h.eventService.AddGuest(r.Context(), userID, id, &domain.Guest{
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
	})
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewGuestDTO(guest))
}

// ListGuests godoc
//
//	@Summary		List guests
//	@Tags			Guests
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Event ID"
//	@Success		200	{array}		dto.GuestDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Event not found"
//	@Router			/api/events/{id}/guests [get]
func (h *EventHandler) ListGuests(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	id, ok := eventID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid event id")
		return
	}

	guests, err := h.eventService.ListGuests(r.Context(), userID, id)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewGuestDTOs(guests))
}
