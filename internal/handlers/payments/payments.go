package payments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/vivento/internal/domain"
	"github.com/GlebRadaev/vivento/internal/dto"
	"github.com/GlebRadaev/vivento/internal/service/paymentservice"
	"github.com/GlebRadaev/vivento/pkg/auth"
	"github.com/GlebRadaev/vivento/pkg/utils"
	"github.com/GlebRadaev/vivento/pkg/validate"
)

//go:generate mockgen -source=payments.go -destination=mock_payments.go -package=payments

type Service interface {
	CreatePayment(ctx context.Context, userID int, amount decimal.Decimal, description string) (*domain.CheckoutSession, error)
	HandleCallback(ctx context.Context, data, signature string) (*domain.CallbackOutcome, error)
	GetPaymentStatus(ctx context.Context, userID, paymentID int) (*domain.PaymentIntent, error)
}

type PaymentHandler struct {
	paymentService Service
}

func New(paymentService Service) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// CreatePayment godoc
//
//	@Summary		Start a balance top-up
//	@Description	Registers a pending payment and returns the signed Epoint checkout form.
//	@Tags			Payments
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreatePaymentRequestDTO	true	"Top-up amount in AZN"
//	@Success		200		{object}	dto.CreatePaymentResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		422		{object}	utils.Response	"Invalid amount"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/payments/create [post]
func (h *PaymentHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreatePaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	session, err := h.paymentService.CreatePayment(r.Context(), userID, req.Amount, req.Description)
	if err != nil {
		switch {
		case errors.Is(err, paymentservice.ErrInvalidAmount), errors.Is(err, paymentservice.ErrAmountAboveLimit):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.CreatePaymentResponseDTO{
		OrderID:     session.Intent.OrderID,
		PaymentID:   session.Intent.ID,
		CheckoutURL: session.URL,
		Data:        session.Data,
		Signature:   session.Signature,
		Amount:      dto.Money(session.Intent.Amount),
	})
}

func callbackParams(r *http.Request) (dto.CallbackRequestDTO, error) {
	var req dto.CallbackRequestDTO
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		err := json.NewDecoder(r.Body).Decode(&req)
		return req, err
	}
	if err := r.ParseForm(); err != nil {
		return req, err
	}
	req.Data = r.PostFormValue("data")
	req.Signature = r.PostFormValue("signature")
	return req, nil
}

// Callback godoc
//
//	@Summary		Epoint payment notification
//	@Description	Server-to-server notification signed with the merchant key. Redelivery is harmless.
//	@Tags			Payments
//	@Accept			x-www-form-urlencoded,json
//	@Produce		json
//	@Param			data		formData	string	true	"Base64 payload"
//	@Param			signature	formData	string	true	"Payload signature"
//	@Success		200			{object}	dto.CallbackResponseDTO
//	@Failure		400			{object}	utils.Response	"Missing data or signature"
//	@Failure		401			{object}	utils.Response	"Invalid signature"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/payments/callback [post]
func (h *PaymentHandler) Callback(w http.ResponseWriter, r *http.Request) {
	req, err := callbackParams(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "data and signature are required")
		return
	}

	outcome, err := h.paymentService.HandleCallback(r.Context(), req.Data, req.Signature)
	if err != nil {
		switch {
		case errors.Is(err, paymentservice.ErrInvalidSignature):
			utils.RespondWithError(w, http.StatusUnauthorized, err.Error())
		case errors.Is(err, paymentservice.ErrMissingCallbackID):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.CallbackResponseDTO{
		Status:        string(outcome.Status),
		OrderID:       outcome.OrderID,
		PaymentStatus: string(outcome.PaymentStatus),
	})
}

// GetPaymentStatus godoc
//
//	@Summary		Payment status
//	@Tags			Payments
//	@Security		BearerAuth
//	@Produce		json
//	@Param			payment_id	path		int	true	"Payment ID"
//	@Success		200			{object}	dto.PaymentStatusResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid payment id"
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		404			{object}	utils.Response	"Payment not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/payments/{payment_id}/status [get]
func (h *PaymentHandler) GetPaymentStatus(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	paymentID, err := strconv.Atoi(chi.URLParam(r, "payment_id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid payment id")
		return
	}

	intent, err := h.paymentService.GetPaymentStatus(r.Context(), userID, paymentID)
	if err != nil {
		if errors.Is(err, paymentservice.ErrPaymentNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.PaymentStatusResponseDTO{
		PaymentID:   intent.ID,
		OrderID:     intent.OrderID,
		Amount:      dto.Money(intent.Amount),
		Currency:    intent.Currency,
		Status:      string(intent.Status),
		CreatedAt:   intent.CreatedAt,
		CompletedAt: intent.CompletedAt,
	})
}
