package handlers

import (
	"errors"
	"net/http"

	response "paguezap/internal/adapter/http/dto/response"
	"paguezap/internal/usecase"
	"paguezap/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChargeHandler exposes manual delivery and cancellation of charges.

type ChargeHandler struct {
	usecase usecase.IChargeLifecycleUseCase
	logger  *zap.Logger
}

func NewChargeHandler(uc usecase.IChargeLifecycleUseCase, logger *zap.Logger) *ChargeHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChargeHandler{usecase: uc, logger: logger}
}

// SendCharge delivers a charge over WhatsApp.
//
//	@Summary	Send a charge
//	@Tags		charges
//	@Produce	json
//	@Param		charge_id	path		string	true	"Charge ID"
//	@Success	200			{object}	response.SendChargeResponse
//	@Failure	400			{object}	response.SendChargeResponse
//	@Failure	404			{object}	pkg.HTTPError
//	@Failure	409			{object}	pkg.HTTPError
//	@Router		/charges/{charge_id}/send [post]
func (h *ChargeHandler) SendCharge(c *gin.Context) {
	chargeID := c.Param("charge_id")

	res, err := h.usecase.SendCharge(c.Request.Context(), chargeID)
	if err == nil {
		c.JSON(http.StatusOK, response.FromSendChargeResult(res))
		return
	}

	h.logger.Info("send charge rejected", zap.String("charge_id", chargeID), zap.Error(err))
	if isSendRejection(err) {
		c.JSON(http.StatusBadRequest, response.FromSendChargeResult(res))
		return
	}
	appErr := mapChargeError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// CancelCharge moves a charge to CANCELLED.
//
//	@Summary	Cancel a charge
//	@Tags		charges
//	@Produce	json
//	@Param		charge_id	path		string	true	"Charge ID"
//	@Success	200			{object}	response.ChargeResponse
//	@Failure	404			{object}	pkg.HTTPError
//	@Failure	409			{object}	pkg.HTTPError
//	@Router		/charges/{charge_id}/cancel [post]
func (h *ChargeHandler) CancelCharge(c *gin.Context) {
	chargeID := c.Param("charge_id")

	charge, err := h.usecase.CancelCharge(c.Request.Context(), chargeID)
	if err != nil {
		h.logger.Info("cancel charge failed", zap.String("charge_id", chargeID), zap.Error(err))
		appErr := mapChargeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCharge(charge))
}

// isSendRejection reports errors the caller can act on; they are rendered with
// the provider details instead of the generic error envelope.
func isSendRejection(err error) bool {
	for _, target := range []error{
		usecase.ErrMessagingNotConfigured,
		usecase.ErrPixNotConfigured,
		usecase.ErrInvalidPixKey,
		usecase.ErrChargeAlreadyPaid,
		usecase.ErrChargeCancelled,
		usecase.ErrChargeAlreadySent,
		usecase.ErrInvalidChargeAmount,
		usecase.ErrDeliveryFailed,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func mapChargeError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidChargeID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrChargeNotFound):
		return pkg.NewDomainErrorSimple("CHARGE_NOT_FOUND", "Charge not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTenantNotFound):
		return pkg.NewDomainErrorSimple("ACCOUNT_NOT_FOUND", "Account not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrChargeAlreadyPaid):
		return pkg.NewDomainErrorSimple("CHARGE_ALREADY_PAID", "Charge already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrSendInProgress):
		return pkg.NewDomainErrorSimple("SEND_IN_PROGRESS", "Charge is being sent", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentsNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENTS_NOT_CONFIGURED", "Mercado Pago not configured", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentLookupFailed):
		return pkg.NewDomainError("PAYMENT_PROVIDER_ERROR", "Payment provider lookup failed", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
