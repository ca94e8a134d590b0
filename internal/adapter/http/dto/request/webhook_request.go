package request

import (
	"bytes"
	"encoding/json"
	"net/url"
	"strings"
)

// MercadoPagoNotification is the webhook body sent by Mercado Pago.
//
// data.id arrives as a string in webhooks and as a number in some IPN retries.
type MercadoPagoNotification struct {
	Type   string `json:"type"`
	Action string `json:"action,omitempty"`
	Data   struct {
		ID flexibleID `json:"id"`
	} `json:"data"`
}

type flexibleID string

func (f *flexibleID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = flexibleID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexibleID(n.String())
	return nil
}

// ParseMercadoPagoNotification resolves the event type and payment id from the
// JSON body, falling back to the query string (type|topic, data.id|id) used by
// IPN-style callbacks. A body that is not JSON is an error unless the query
// string carries the event.
func ParseMercadoPagoNotification(body []byte, query url.Values) (eventType, paymentID string, err error) {
	if len(bytes.TrimSpace(body)) > 0 {
		var n MercadoPagoNotification
		if err = json.Unmarshal(body, &n); err == nil {
			eventType, paymentID = strings.TrimSpace(n.Type), strings.TrimSpace(string(n.Data.ID))
		}
	}

	if eventType == "" {
		eventType = firstQuery(query, "type", "topic")
	}
	if paymentID == "" {
		paymentID = firstQuery(query, "data.id", "id")
	}
	if eventType != "" {
		err = nil
	}
	return eventType, paymentID, err
}

func firstQuery(q url.Values, keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(q.Get(k)); v != "" {
			return v
		}
	}
	return ""
}
