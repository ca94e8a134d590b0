package handlers

import (
	"net/http"

	"paguezap/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReconcileHandler lets operators pull a charge's payment state from the processor.
type ReconcileHandler struct {
	usecase usecase.IReconciliationUseCase
	logger  *zap.Logger
}

func NewReconcileHandler(uc usecase.IReconciliationUseCase, logger *zap.Logger) *ReconcileHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReconcileHandler{usecase: uc, logger: logger}
}

// ReconcileCharge looks the charge up at Mercado Pago and applies the payment status.
//
//	@Summary	Reconcile a charge with Mercado Pago
//	@Tags		charges
//	@Produce	json
//	@Param		charge_id	path		string	true	"Charge ID"
//	@Success	200			{object}	usecase.ReconciliationOutcome
//	@Failure	400			{object}	pkg.HTTPError
//	@Failure	404			{object}	pkg.HTTPError
//	@Failure	502			{object}	pkg.HTTPError
//	@Router		/charges/{charge_id}/reconcile [post]
func (h *ReconcileHandler) ReconcileCharge(c *gin.Context) {
	chargeID := c.Param("charge_id")

	out, err := h.usecase.ReconcileCharge(c.Request.Context(), chargeID)
	if err != nil {
		h.logger.Info("reconcile charge failed", zap.String("charge_id", chargeID), zap.Error(err))
		appErr := mapChargeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, out)
}
