package invite

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/vivento/internal/domain"
	"github.com/GlebRadaev/vivento/internal/dto"
	"github.com/GlebRadaev/vivento/internal/service/eventservice"
	"github.com/GlebRadaev/vivento/pkg/utils"
	"github.com/GlebRadaev/vivento/pkg/validate"
)

//go:generate mockgen -source=invite.go -destination=mock_invite.go -package=invite

type Service interface {
	GetInvitation(ctx context.Context, token string) (*domain.Invitation, error)
	RespondRSVP(ctx context.Context, token string, status domain.RSVPStatus) (*domain.Guest, error)
}

// InviteHandler serves the public invitation page. Guests authenticate by token only.
type InviteHandler struct {
	eventService Service
}

func New(eventService Service) *InviteHandler {
	return &InviteHandler{
		eventService: eventService,
	}
}

// GetInvitation godoc
//
//	@Summary		Open invitation
//	@Tags			Invitations
//	@Produce		json
//	@Param			token	path		string	true	"Invitation token"
//	@Success		200		{object}	dto.InvitationDTO
//	@Failure		404		{object}	utils.Response	"Invitation not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/invite/{token} [get]
func (h *InviteHandler) GetInvitation(w http.ResponseWriter, r *http.Request) {
	inv, err := h.eventService.GetInvitation(r.Context(), chi.URLParam(r, "token"))
	if err != nil {
		if errors.Is(err, eventservice.ErrInvitationNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewInvitationDTO(inv))
}

// RespondRSVP godoc
//
//	@Summary		Answer invitation
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			token	path		string				true	"Invitation token"
//	@Param			request	body		dto.RSVPRequestDTO	true	"Answer"
//	@Success		200		{object}	dto.GuestDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Invitation not found"
//	@Failure		422		{object}	utils.Response	"Invalid status"
//	@Router			/api/invite/{token}/rsvp [post]
func (h *InviteHandler) RespondRSVP(w http.ResponseWriter, r *http.Request) {
	var req dto.RSVPRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	guest, err := h.eventService.RespondRSVP(r.Context(), chi.URLParam(r, "token"), domain.RSVPStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, eventservice.ErrInvitationNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, eventservice.ErrInvalidRSVP):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewGuestDTO(guest))
}
