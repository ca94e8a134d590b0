package handlers

import (
	"errors"
	"net/http"

	request "paguezap/internal/adapter/http/dto/request"
	response "paguezap/internal/adapter/http/dto/response"
	"paguezap/internal/domain/entities"
	"paguezap/internal/usecase"
	"paguezap/pkg"

	"github.com/gin-gonic/gin"
)

var errMissingCredentials = pkg.NewDomainErrorSimple("MISSING_CREDENTIALS", "Missing credentials", http.StatusBadRequest)

// SettingsHandler checks integration credentials before they are saved.

type SettingsHandler struct {
	usecase usecase.ISettingsUseCase
}

func NewSettingsHandler(uc usecase.ISettingsUseCase) *SettingsHandler {
	return &SettingsHandler{usecase: uc}
}

// TestWhatsApp
//
//	@Summary	Test WhatsApp credentials
//	@Tags		settings
//	@Accept		json
//	@Produce	json
//	@Param		body	body		request.TestWhatsAppRequest	true	"Credentials"
//	@Success	200		{object}	response.ConnectionTestResponse
//	@Failure	400		{object}	response.ConnectionTestResponse
//	@Router		/settings/test-whatsapp [post]
func (h *SettingsHandler) TestWhatsApp(c *gin.Context) {
	var payload request.TestWhatsAppRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errMissingCredentials.HTTPStatus, errMissingCredentials.ToHTTPError())
		return
	}

	res, err := h.usecase.TestWhatsApp(c.Request.Context(), entities.MessagingCredentials{
		PhoneNumberID: payload.PhoneNumberID,
		AccessToken:   payload.AccessToken,
	})
	h.renderConnection(c, res, err)
}

// TestMercadoPago
//
//	@Summary	Test Mercado Pago access token
//	@Tags		settings
//	@Accept		json
//	@Produce	json
//	@Param		body	body		request.TestMercadoPagoRequest	true	"Credentials"
//	@Success	200		{object}	response.ConnectionTestResponse
//	@Failure	400		{object}	response.ConnectionTestResponse
//	@Router		/settings/test-mercado-pago [post]
func (h *SettingsHandler) TestMercadoPago(c *gin.Context) {
	var payload request.TestMercadoPagoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errMissingCredentials.HTTPStatus, errMissingCredentials.ToHTTPError())
		return
	}

	res, err := h.usecase.TestMercadoPago(c.Request.Context(), payload.AccessToken)
	h.renderConnection(c, res, err)
}

func (h *SettingsHandler) renderConnection(c *gin.Context, res entities.ConnectionResult, err error) {
	switch {
	case err == nil:
		c.JSON(http.StatusOK, response.FromConnectionResult(res))
	case errors.Is(err, usecase.ErrConnectionFailed):
		c.JSON(http.StatusBadRequest, response.FromConnectionResult(res))
	default:
		appErr := mapSettingsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
	}
}

func mapSettingsError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingCredentials):
		return errMissingCredentials
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
