package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreatePaymentRequestDTO struct {
	Amount      decimal.Decimal `json:"amount" swaggertype:"number" example:"25.5"`
	Description string          `json:"description" validate:"max=255" example:"Balance top-up"`
}

type CreatePaymentResponseDTO struct {
	OrderID     string `json:"order_id" example:"1-6f1c2d7e-3b0a-4b8e-9a51-0d2f4c9e7a11"`
	PaymentID   int    `json:"payment_id" example:"9"`
	CheckoutURL string `json:"checkout_url" example:"https://epoint.az/api/1/checkout"`
	Data        string `json:"data"`
	Signature   string `json:"signature"`
	Amount      string `json:"amount" example:"25.50"`
}

type CallbackRequestDTO struct {
	Data      string `json:"data" validate:"required"`
	Signature string `json:"signature" validate:"required"`
}

type CallbackResponseDTO struct {
	Status        string `json:"status" example:"processed"`
	OrderID       string `json:"order_id,omitempty"`
	PaymentStatus string `json:"payment_status,omitempty" example:"completed"`
}

type PaymentStatusResponseDTO struct {
	PaymentID   int        `json:"payment_id" example:"9"`
	OrderID     string     `json:"order_id"`
	Amount      string     `json:"amount" example:"25.50"`
	Currency    string     `json:"currency" example:"AZN"`
	Status      string     `json:"status" example:"pending"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}
