package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/vivento/internal/domain"
)

type BalanceResponseDTO struct {
	Balance                  string `json:"balance" example:"12.50"`
	FreeInvitationsUsed      int    `json:"free_invitations_used" example:"12"`
	FreeInvitationsRemaining int    `json:"free_invitations_remaining" example:"18"`
}

type TransactionDTO struct {
	ID          int       `json:"id" example:"17"`
	Amount      string    `json:"amount" example:"-0.30"`
	Category    string    `json:"category" example:"invitation_charge"`
	Description string    `json:"description"`
	PaymentID   *int      `json:"payment_id,omitempty"`
	ExternalID  *string   `json:"external_id,omitempty"`
	Status      string    `json:"status" example:"completed"`
	CreatedAt   time.Time `json:"created_at"`
}

type TransactionsResponseDTO struct {
	Transactions []TransactionDTO `json:"transactions"`
	Total        int              `json:"total" example:"42"`
	Limit        int              `json:"limit" example:"20"`
	Offset       int              `json:"offset" example:"0"`
}

type ChargeRequestDTO struct {
	GuestCount int `json:"guest_count" validate:"required,gt=0" example:"5"`
}

type ChargeResponseDTO struct {
	Success            bool   `json:"success"`
	GuestCount         int    `json:"guest_count" example:"5"`
	FreeUsed           int    `json:"free_invitations_used" example:"2"`
	PaidInvitations    int    `json:"paid_invitations" example:"3"`
	PricePerInvitation string `json:"price_per_invitation" example:"0.10"`
	TotalCost          string `json:"total_cost" example:"0.30"`
	RemainingBalance   string `json:"remaining_balance" example:"0.70"`
	RequiredBalance    string `json:"required_balance,omitempty" example:"0.30"`
	Shortfall          string `json:"shortfall,omitempty" example:"0.10"`
	Message            string `json:"message,omitempty"`
}

func Money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func NewTransactionsResponseDTO(page *domain.TransactionPage) TransactionsResponseDTO {
	items := make([]TransactionDTO, len(page.Entries))
	for i, e := range page.Entries {
		items[i] = TransactionDTO{
			ID:          e.ID,
			Amount:      Money(e.Amount),
			Category:    string(e.Category),
			Description: e.Description,
			PaymentID:   e.PaymentID,
			ExternalID:  e.ExternalID,
			Status:      e.Status,
			CreatedAt:   e.CreatedAt,
		}
	}
	return TransactionsResponseDTO{
		Transactions: items,
		Total:        page.Total,
		Limit:        page.Limit,
		Offset:       page.Offset,
	}
}

func NewChargeResponseDTO(o *domain.ChargeOutcome) ChargeResponseDTO {
	resp := ChargeResponseDTO{
		Success:            o.Success,
		GuestCount:         o.GuestCount,
		FreeUsed:           o.FreeUsed,
		PaidInvitations:    o.PaidCount,
		PricePerInvitation: Money(o.PricePerInvitation),
		TotalCost:          Money(o.TotalCost),
		RemainingBalance:   Money(o.Balance),
	}
	if !o.Success {
		resp.RequiredBalance = Money(o.RequiredBalance)
		resp.Shortfall = Money(o.Shortfall)
		resp.Message = "insufficient balance"
	}
	return resp
}
