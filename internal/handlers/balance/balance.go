package balance

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/vivento/internal/domain"
	"github.com/GlebRadaev/vivento/internal/dto"
	"github.com/GlebRadaev/vivento/internal/service/balanceservice"
	"github.com/GlebRadaev/vivento/pkg/auth"
	"github.com/GlebRadaev/vivento/pkg/utils"
	"github.com/GlebRadaev/vivento/pkg/validate"
)

//go:generate mockgen -source=balance.go -destination=mock_balance.go -package=balance

type Service interface {
	GetBalance(ctx context.Context, userID int) (*domain.BalanceSummary, error)
	ListTransactions(ctx context.Context, userID, limit, offset int) (*domain.TransactionPage, error)
	ChargeForInvitations(ctx context.Context, userID, eventID, guestCount int) (*domain.ChargeOutcome, error)
}

type BalanceHandler struct {
	balanceService Service
}

func New(balanceService Service) *BalanceHandler {
	return &BalanceHandler{
		balanceService: balanceService,
	}
}

// GetBalance godoc
//
//	@Summary		Get current user balance
//	@Description	Balance in AZN and the state of the free invitation allowance.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/balance [get]
func (h *BalanceHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	balance, err := h.balanceService.GetBalance(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		Balance:                  dto.Money(balance.Balance),
		FreeInvitationsUsed:      balance.FreeInvitationsUsed,
		FreeInvitationsRemaining: balance.FreeInvitationsRemaining,
	})
}

func queryInt(r *http.Request, key string) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

// GetTransactions godoc
//
//	@Summary		Ledger history
//	@Description	Balance movements of the authenticated user, newest first.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int	false	"Page size (default 20, max 100)"
//	@Param			offset	query		int	false	"Entries to skip"
//	@Success		200		{object}	dto.TransactionsResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid pagination"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/balance/transactions [get]
func (h *BalanceHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	limit, err := queryInt(r, "limit")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid limit")
		return
	}
	offset, err := queryInt(r, "offset")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid offset")
		return
	}

	page, err := h.balanceService.ListTransactions(r.Context(), userID, limit, offset)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewTransactionsResponseDTO(page))
}

// ChargeInvitations godoc
//
//	@Summary		Pay for sending invitations
//	@Description	Consumes the free allowance first, then debits the balance at the template price.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Event ID"
//	@Param			request	body		dto.ChargeRequestDTO	true	"Number of guests to invite"
//	@Success		200		{object}	dto.ChargeResponseDTO
//	@Failure		400		{object}	utils.Response			"Invalid request"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		402		{object}	dto.ChargeResponseDTO	"Insufficient balance"
//	@Failure		404		{object}	utils.Response			"Event not found"
//	@Failure		422		{object}	utils.Response			"Invalid guest count"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/events/{id}/charge [post]
func (h *BalanceHandler) ChargeInvitations(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	eventID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid event id")
		return
	}

	var req dto.ChargeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	outcome, err := h.balanceService.ChargeForInvitations(r.Context(), userID, eventID, req.GuestCount)
	if err != nil {
		switch {
		case errors.Is(err, balanceservice.ErrEventNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, balanceservice.ErrInvalidGuestCount):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	if !outcome.Success {
		utils.RespondWithJSON(w, http.StatusPaymentRequired, dto.NewChargeResponseDTO(outcome))
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewChargeResponseDTO(outcome))
}
