package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// ChargeStatus represents the delivery/payment lifecycle of a charge.
//
// Lifecycle:
//   - PENDING -> SCHEDULED -> SENT -> PAID (terminal)
//   - any state before PAID -> FAILED (retriable) or CANCELLED (terminal, administrative)

type ChargeStatus string

const (
	ChargeStatusPending   ChargeStatus = "PENDING"
	ChargeStatusScheduled ChargeStatus = "SCHEDULED"
	ChargeStatusSent      ChargeStatus = "SENT"
	ChargeStatusPaid      ChargeStatus = "PAID"
	ChargeStatusFailed    ChargeStatus = "FAILED"
	ChargeStatusCancelled ChargeStatus = "CANCELLED"
)

type ScheduleType string

const (
	ScheduleTypeImmediate        ScheduleType = "IMMEDIATE"
	ScheduleTypeScheduledOnce    ScheduleType = "SCHEDULED_ONCE"
	ScheduleTypeMonthlyRecurring ScheduleType = "MONTHLY_RECURRING"
)

var chargeTransitions = map[ChargeStatus]map[ChargeStatus]struct{}{
	ChargeStatusPending: {
		ChargeStatusScheduled: {},
		ChargeStatusSent:      {},
		ChargeStatusPaid:      {},
		ChargeStatusFailed:    {},
		ChargeStatusCancelled: {},
	},
	ChargeStatusScheduled: {
		ChargeStatusSent:      {},
		ChargeStatusPaid:      {},
		ChargeStatusFailed:    {},
		ChargeStatusCancelled: {},
	},
	ChargeStatusSent: {
		ChargeStatusPaid:      {},
		ChargeStatusFailed:    {},
		ChargeStatusCancelled: {},
	},
	ChargeStatusFailed: {
		ChargeStatusSent:      {},
		ChargeStatusPaid:      {},
		ChargeStatusCancelled: {},
	},
	ChargeStatusPaid:      {},
	ChargeStatusCancelled: {},
}

// CanTransition reports whether a charge may move from one status to another.
// Staying in the same status is always allowed.
func CanTransition(from, to ChargeStatus) bool {
	if from == to {
		return true
	}
	allowed, ok := chargeTransitions[from]
	if !ok {
		return false
	}
	_, ok = allowed[to]
	return ok
}

// IsTerminal reports whether the status no longer accepts delivery or payment updates.
func (s ChargeStatus) IsTerminal() bool {
	return s == ChargeStatusPaid || s == ChargeStatusCancelled
}

// Charge is a single billing intent persisted by the billing-service.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI status-next_send_date-index: status / next_send_date
//   - GSI status-created_at-index: status / created_at
//
// Monetary representation:
//   - Amount is a positive decimal in BRL units.
type Charge struct {
	ID       string `json:"id"`
	TenantID string `json:"tenant_id"`

	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	CustomerEmail string `json:"customer_email,omitempty"`

	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	ProductName string          `json:"product_name,omitempty"`
	ImageURL    string          `json:"image_url,omitempty"`
	DueDate     *time.Time      `json:"due_date,omitempty"`

	ScheduleType ScheduleType `json:"schedule_type"`
	ScheduleDay  int          `json:"schedule_day,omitempty"`
	NextSendDate *time.Time   `json:"next_send_date,omitempty"`

	Status      ChargeStatus `json:"status"`
	CreatedAt   time.Time    `json:"created_at"`
	SentAt      *time.Time   `json:"sent_at,omitempty"`
	PaidAt      *time.Time   `json:"paid_at,omitempty"`
	CancelledAt *time.Time   `json:"cancelled_at,omitempty"`

	PixReferenceID    string `json:"pix_reference_id,omitempty"`
	PixCode           string `json:"pix_code,omitempty"`
	MercadoPagoLink   string `json:"mercado_pago_link,omitempty"`
	WhatsAppMessageID string `json:"whatsapp_message_id,omitempty"`
}

// DisplayName is the product label shown to the customer.
func (c Charge) DisplayName() string {
	if c.ProductName != "" {
		return c.ProductName
	}
	return c.Description
}

// ChargeUpdate lists the fields a single conditional update may set.
// Nil pointers leave the stored value untouched.
type ChargeUpdate struct {
	Status            *ChargeStatus
	SentAt            *time.Time
	PaidAt            *time.Time
	CancelledAt       *time.Time
	PixReferenceID    *string
	PixCode           *string
	MercadoPagoLink   *string
	WhatsAppMessageID *string
}

// IsEmpty reports whether the update would write nothing.
func (u ChargeUpdate) IsEmpty() bool {
	return u.Status == nil && u.SentAt == nil && u.PaidAt == nil && u.CancelledAt == nil &&
		u.PixReferenceID == nil && u.PixCode == nil && u.MercadoPagoLink == nil && u.WhatsAppMessageID == nil
}

// SortOrder for charge listings.
type SortOrder string

const (
	SortAscending  SortOrder = "asc"
	SortDescending SortOrder = "desc"
)

// ChargeFilter selects charges for batch delivery and reconciliation scans.
type ChargeFilter struct {
	Statuses       []ChargeStatus
	NextSendBefore *time.Time
	CreatedAfter   *time.Time
	Limit          int
	Order          SortOrder
}
