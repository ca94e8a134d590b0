package response

// WebhookAckResponse is returned to the processor for every notification.
type WebhookAckResponse struct {
	Message string `json:"message"`
}
