package handlers

import (
	"encoding/json"
	"net/http"

	request "paguezap/internal/adapter/http/dto/request"
	response "paguezap/internal/adapter/http/dto/response"
	"paguezap/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const tenantHintParam = "userId"

// WebhookHandler receives Mercado Pago payment notifications.
//
// Every POST is acknowledged with 200 so the processor never retries.
type WebhookHandler struct {
	usecase usecase.IReconciliationUseCase
	logger  *zap.Logger
}

func NewWebhookHandler(uc usecase.IReconciliationUseCase, logger *zap.Logger) *WebhookHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WebhookHandler{usecase: uc, logger: logger}
}

// MercadoPago handles a payment notification.
//
//	@Summary	Mercado Pago notification
//	@Tags		webhooks
//	@Accept		json
//	@Produce	json
//	@Param		userId	query		string	false	"Account hint"
//	@Success	200		{object}	response.WebhookAckResponse
//	@Router		/webhooks/mercado-pago [post]
func (h *WebhookHandler) MercadoPago(c *gin.Context) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("webhook handler panicked", zap.Any("panic", r))
			c.JSON(http.StatusOK, response.WebhookAckResponse{Message: "notification received"})
		}
	}()

	body, err := c.GetRawData()
	if err != nil {
		h.logger.Warn("webhook body unreadable", zap.Error(err))
	}

	n := usecase.PaymentNotification{
		TenantHint: c.Query(tenantHintParam),
		Raw:        json.RawMessage(body),
	}
	eventType, paymentID, parseErr := request.ParseMercadoPagoNotification(body, c.Request.URL.Query())
	n.Type, n.PaymentID = eventType, paymentID
	if parseErr != nil {
		n.ParseError = parseErr.Error()
	}

	out := h.usecase.HandleNotification(c.Request.Context(), n)
	c.JSON(http.StatusOK, response.WebhookAckResponse{Message: out.Message})
}

// Liveness lets the processor dashboard validate the URL.
//
//	@Summary	Webhook liveness
//	@Tags		webhooks
//	@Produce	json
//	@Success	200	{object}	response.WebhookAckResponse
//	@Router		/webhooks/mercado-pago [get]
func (h *WebhookHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, response.WebhookAckResponse{Message: "webhook endpoint active"})
}
