package handlers

import (
	"crypto/subtle"
	"net/http"
	"strings"

	response "paguezap/internal/adapter/http/dto/response"
	"paguezap/internal/usecase"
	"paguezap/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errUnauthorizedCron = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Unauthorized", http.StatusUnauthorized)

// CronHandler is the entry point for the external scheduler.

type CronHandler struct {
	usecase usecase.IChargeLifecycleUseCase
	secret  string
	logger  *zap.Logger
}

func NewCronHandler(uc usecase.IChargeLifecycleUseCase, secret string, logger *zap.Logger) *CronHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CronHandler{usecase: uc, secret: secret, logger: logger}
}

// ProcessCharges sends every due scheduled charge.
//
//	@Summary	Process scheduled charges
//	@Tags		cron
//	@Produce	json
//	@Param		key				query		string	false	"Cron secret"
//	@Param		Authorization	header		string	false	"Bearer <cron secret>"
//	@Success	200				{object}	response.ProcessChargesResponse
//	@Failure	401				{object}	pkg.HTTPError
//	@Router		/cron/process-charges [post]
func (h *CronHandler) ProcessCharges(c *gin.Context) {
	if !h.authorized(c) {
		c.JSON(errUnauthorizedCron.HTTPStatus, errUnauthorizedCron.ToHTTPError())
		return
	}

	results, err := h.usecase.ProcessScheduledCharges(c.Request.Context())
	if err != nil {
		h.logger.Error("scheduled charges failed", zap.Error(err))
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "Failed to process charges", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBatchResults(results))
}

func (h *CronHandler) authorized(c *gin.Context) bool {
	if h.secret == "" {
		return false
	}
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if token == "" || token == c.GetHeader("Authorization") {
		token = c.Query("key")
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(h.secret)) == 1
}
