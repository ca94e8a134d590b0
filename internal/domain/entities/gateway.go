package entities

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Value types exchanged with the messaging provider and the payment processor.
//
// Integration methods never return Go errors: failures are reported through
// Success=false and the provider's raw error body in Error.

type MessagingCredentials struct {
	PhoneNumberID string
	AccessToken   string
}

type PaymentMessage struct {
	To              string
	CustomerName    string
	ProductName     string
	Amount          decimal.Decimal
	ImageURL        string
	PixReferenceID  string
	PixCode         string
	PixKey          string
	PixKeyType      string
	MerchantName    string
	MercadoPagoLink string
}

type MessageResult struct {
	Success   bool
	MessageID string
	Error     json.RawMessage
	Data      json.RawMessage
}

type ConnectionResult struct {
	Success bool
	Data    json.RawMessage
	Error   json.RawMessage
}

type PreferenceParams struct {
	Title             string
	Description       string
	Amount            decimal.Decimal
	ExternalReference string
	PayerEmail        string
	PayerName         string
	BackURL           string
	NotificationURL   string
}

type PreferenceResult struct {
	Success      bool
	PreferenceID string
	PaymentLink  string
	Error        json.RawMessage
}

// ProcessorPayment is the subset of a processor payment the core relies on;
// Raw keeps the complete provider body for audit.
type ProcessorPayment struct {
	ID                string          `json:"id"`
	Status            string          `json:"status"`
	StatusDetail      string          `json:"status_detail,omitempty"`
	ExternalReference string          `json:"external_reference"`
	Raw               json.RawMessage `json:"-"`
}

type PaymentResult struct {
	Success bool
	Payment *ProcessorPayment
	Error   json.RawMessage
}

type PaymentSearchResult struct {
	Success  bool
	Payments []ProcessorPayment
	Error    json.RawMessage
}

// ErrorBody renders an arbitrary error description as a JSON value so it can be
// stored next to provider bodies.
func ErrorBody(body []byte, fallback string) json.RawMessage {
	if len(body) > 0 && json.Valid(body) {
		return json.RawMessage(body)
	}
	msg := fallback
	if len(body) > 0 {
		msg = string(body)
	}
	b, _ := json.Marshal(msg)
	return b
}
