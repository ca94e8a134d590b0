package entities

import (
	"encoding/json"
	"time"
)

// AuditLogEntry records one outbound attempt (or system action) for a tenant.
// Entries are append-only.
type AuditLogEntry struct {
	ID         string          `json:"id"`
	TenantID   string          `json:"tenant_id"`
	ChargeID   string          `json:"charge_id,omitempty"`
	Endpoint   string          `json:"endpoint"`
	Method     string          `json:"method"`
	StatusCode int             `json:"status_code,omitempty"`
	Error      string          `json:"error,omitempty"`
	Request    json.RawMessage `json:"request,omitempty"`
	Response   json.RawMessage `json:"response,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

type ReconciliationStatus string

const (
	ReconciliationReceived       ReconciliationStatus = "RECEIVED"
	ReconciliationProcessed      ReconciliationStatus = "PROCESSED"
	ReconciliationRejected       ReconciliationStatus = "REJECTED"
	ReconciliationTenantNotFound ReconciliationStatus = "TENANT_NOT_FOUND"
)

// ReconciliationLog records one inbound payment notification. Append-only.
type ReconciliationLog struct {
	ID        string               `json:"id"`
	Provider  string               `json:"provider"`
	EventType string               `json:"event_type"`
	PaymentID string               `json:"payment_id,omitempty"`
	TenantID  string               `json:"tenant_id,omitempty"`
	ChargeID  string               `json:"charge_id,omitempty"`
	Payload   json.RawMessage      `json:"payload"`
	Status    ReconciliationStatus `json:"status"`
	Error     string               `json:"error,omitempty"`
	CreatedAt time.Time            `json:"created_at"`
}
