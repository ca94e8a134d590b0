package response

import (
	"encoding/json"
	"time"

	"paguezap/internal/domain/entities"
	"paguezap/internal/usecase"
)

type SendChargeResponse struct {
	Success   bool            `json:"success"`
	MessageID string          `json:"messageId,omitempty"`
	Error     string          `json:"error,omitempty"`
	Details   json.RawMessage `json:"details,omitempty" swaggertype:"object"`
}

func FromSendChargeResult(r usecase.SendChargeResult) SendChargeResponse {
	return SendChargeResponse{
		Success:   r.Success,
		MessageID: r.MessageID,
		Error:     r.Error,
		Details:   r.Details,
	}
}

type ChargeResponse struct {
	ID            string     `json:"id"`
	TenantID      string     `json:"user_id"`
	CustomerName  string     `json:"customer_name"`
	CustomerPhone string     `json:"customer_phone"`
	Amount        string     `json:"amount"`
	Description   string     `json:"description"`
	ScheduleType  string     `json:"schedule_type"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	SentAt        *time.Time `json:"sent_at,omitempty"`
	PaidAt        *time.Time `json:"paid_at,omitempty"`
	CancelledAt   *time.Time `json:"cancelled_at,omitempty"`
	PaymentLink   string     `json:"mercado_pago_link,omitempty"`
}

func FromCharge(c entities.Charge) ChargeResponse {
	return ChargeResponse{
		ID:            c.ID,
		TenantID:      c.TenantID,
		CustomerName:  c.CustomerName,
		CustomerPhone: c.CustomerPhone,
		Amount:        c.Amount.StringFixed(2),
		Description:   c.Description,
		ScheduleType:  string(c.ScheduleType),
		Status:        string(c.Status),
		CreatedAt:     c.CreatedAt,
		SentAt:        c.SentAt,
		PaidAt:        c.PaidAt,
		CancelledAt:   c.CancelledAt,
		PaymentLink:   c.MercadoPagoLink,
	}
}
