package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	ID                  int             `db:"id"`
	Email               string          `db:"email"`
	Name                string          `db:"name"`
	PasswordHash        *string         `db:"password_hash"`
	FacebookID          *string         `db:"facebook_id"`
	ProfilePicture      *string         `db:"profile_picture"`
	Role                Role            `db:"role"`
	Balance             decimal.Decimal `db:"balance"`
	FreeInvitationsUsed int             `db:"free_invitations_used"`
	CreatedAt           time.Time       `db:"created_at"`
}

// BalanceAccount is the money-relevant slice of a user row.
type BalanceAccount struct {
	UserID              int             `db:"id"`
	Balance             decimal.Decimal `db:"balance"`
	FreeInvitationsUsed int             `db:"free_invitations_used"`
}

func (a BalanceAccount) FreeRemaining(allowance int) int {
	if a.FreeInvitationsUsed >= allowance {
		return 0
	}
	return allowance - a.FreeInvitationsUsed
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

type PaymentIntent struct {
	ID          int             `db:"id"`
	OrderID     string          `db:"order_id"`
	UserID      int             `db:"user_id"`
	Amount      decimal.Decimal `db:"amount"`
	Currency    string          `db:"currency"`
	Description string          `db:"description"`
	Status      PaymentStatus   `db:"status"`
	ExternalID  *string         `db:"external_id"`
	CheckoutURL string          `db:"checkout_url"`
	CreatedAt   time.Time       `db:"created_at"`
	CompletedAt *time.Time      `db:"completed_at"`
}

type EntryCategory string

const (
	CategoryTopUp            EntryCategory = "top_up"
	CategoryInvitationCharge EntryCategory = "invitation_charge"
	CategoryRefund           EntryCategory = "refund"
)

// LedgerEntry amounts are signed: credits positive, debits negative.
type LedgerEntry struct {
	ID          int             `db:"id"`
	UserID      int             `db:"user_id"`
	Amount      decimal.Decimal `db:"amount"`
	Category    EntryCategory   `db:"category"`
	Description string          `db:"description"`
	PaymentID   *int            `db:"payment_id"`
	ExternalID  *string         `db:"external_id"`
	Status      string          `db:"status"`
	CreatedAt   time.Time       `db:"created_at"`
}

type Category string

const (
	CategoryWedding    Category = "wedding"
	CategoryEngagement Category = "engagement"
	CategoryBirthday   Category = "birthday"
	CategoryCorporate  Category = "corporate"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryWedding, CategoryEngagement, CategoryBirthday, CategoryCorporate:
		return true
	}
	return false
}

type Template struct {
	ID                 int             `db:"id"`
	Name               string          `db:"name"`
	Category           Category        `db:"category"`
	ThumbnailURL       string          `db:"thumbnail_url"`
	Design             DesignData      `db:"design_data"`
	IsPremium          bool            `db:"is_premium"`
	PricePerInvitation decimal.Decimal `db:"price_per_invitation"`
	CreatedAt          time.Time       `db:"created_at"`
}

// InvitationPrice is zero for standard templates regardless of the stored price.
func (t Template) InvitationPrice() decimal.Decimal {
	if !t.IsPremium {
		return decimal.Zero
	}
	return t.PricePerInvitation
}

type Event struct {
	ID              int         `db:"id"`
	UserID          int         `db:"user_id"`
	Name            string      `db:"name"`
	Date            time.Time   `db:"date"`
	Location        string      `db:"location"`
	MapLink         string      `db:"map_link"`
	AdditionalNotes string      `db:"additional_notes"`
	TemplateID      *int        `db:"template_id"`
	CustomDesign    *DesignData `db:"custom_design"`
	CreatedAt       time.Time   `db:"created_at"`
	UpdatedAt       time.Time   `db:"updated_at"`
}

type RSVPStatus string

const (
	RSVPPending      RSVPStatus = "pending"
	RSVPAttending    RSVPStatus = "attending"
	RSVPNotAttending RSVPStatus = "not_attending"
)

type Guest struct {
	ID          int        `db:"id"`
	EventID     int        `db:"event_id"`
	Name        string     `db:"name"`
	Phone       string     `db:"phone"`
	Email       string     `db:"email"`
	Token       string     `db:"unique_token"`
	RSVPStatus  RSVPStatus `db:"rsvp_status"`
	CreatedAt   time.Time  `db:"created_at"`
	RespondedAt *time.Time `db:"responded_at"`
}

type Invitation struct {
	Guest    Guest
	Event    Event
	Template *Template
}

type CheckoutSession struct {
	Intent    *PaymentIntent
	URL       string
	Data      string
	Signature string
}

type CallbackStatus string

const (
	CallbackProcessed CallbackStatus = "processed"
	CallbackIgnored   CallbackStatus = "ignored"
)

type CallbackOutcome struct {
	Status        CallbackStatus
	OrderID       string
	PaymentStatus PaymentStatus
}

type ChargeOutcome struct {
	Success            bool
	GuestCount         int
	FreeUsed           int
	PaidCount          int
	PricePerInvitation decimal.Decimal
	TotalCost          decimal.Decimal
	Balance            decimal.Decimal
	RequiredBalance    decimal.Decimal
	Shortfall          decimal.Decimal
}

type BalanceSummary struct {
	Balance                  decimal.Decimal `json:"balance"`
	FreeInvitationsUsed      int             `json:"free_invitations_used"`
	FreeInvitationsRemaining int             `json:"free_invitations_remaining"`
}

type TransactionPage struct {
	Entries []LedgerEntry
	Total   int
	Limit   int
	Offset  int
}
