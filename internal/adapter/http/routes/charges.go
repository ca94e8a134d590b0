package routes

import (
	"paguezap/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCharges  = "/charges"
	PathCron     = "/cron"
	PathWebhooks = "/webhooks"
	PathSettings = "/settings"
)

func addChargeRoutes(rg *gin.RouterGroup, h *handlers.ChargeHandler, rh *handlers.ReconcileHandler) {
	charges := rg.Group(PathCharges)
	{
		charges.POST("/:charge_id/send", h.SendCharge)
		charges.POST("/:charge_id/cancel", h.CancelCharge)
		charges.POST("/:charge_id/reconcile", rh.ReconcileCharge)
	}
}

func addCronRoutes(rg *gin.RouterGroup, h *handlers.CronHandler) {
	cron := rg.Group(PathCron)
	{
		// Schedulers differ in the verb they use.
		cron.GET("/process-charges", h.ProcessCharges)
		cron.POST("/process-charges", h.ProcessCharges)
	}
}

func addWebhookRoutes(rg *gin.RouterGroup, h *handlers.WebhookHandler) {
	webhooks := rg.Group(PathWebhooks)
	{
		webhooks.POST("/mercado-pago", h.MercadoPago)
		webhooks.GET("/mercado-pago", h.Liveness)
	}
}

func addSettingsRoutes(rg *gin.RouterGroup, h *handlers.SettingsHandler) {
	settings := rg.Group(PathSettings)
	{
		settings.POST("/test-whatsapp", h.TestWhatsApp)
		settings.POST("/test-mercado-pago", h.TestMercadoPago)
	}
}
