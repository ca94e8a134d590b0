package routes

import (
	"context"
	"fmt"
	"net/http"
	"time"

	_ "paguezap/docs"
	"paguezap/internal/adapter/http/handlers"
	"paguezap/internal/app"
	"paguezap/internal/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// Handlers groups the HTTP handlers mounted under /v1.
type Handlers struct {
	Charges   *handlers.ChargeHandler
	Reconcile *handlers.ReconcileHandler
	Cron      *handlers.CronHandler
	Webhooks  *handlers.WebhookHandler
	Settings  *handlers.SettingsHandler
}

// Run will start the server and block until ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	container, err := app.Build(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := container.Close(); err != nil {
			logger.Warn("close dependencies", zap.Error(err))
		}
	}()

	router := NewRouter(Handlers{
		Charges:   handlers.NewChargeHandler(container.ChargeLifecycle, logger.Named("http")),
		Reconcile: handlers.NewReconcileHandler(container.Reconciliation, logger.Named("http")),
		Cron:      handlers.NewCronHandler(container.ChargeLifecycle, cfg.Cron.Secret, logger.Named("http")),
		Webhooks:  handlers.NewWebhookHandler(container.Reconciliation, logger.Named("http")),
		Settings:  handlers.NewSettingsHandler(container.Settings),
	}, logger)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", zap.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to startup the application: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	logger.Info("http server shutting down")
	return srv.Shutdown(shutdownCtx)
}

// NewRouter builds the gin engine with middlewares, swagger and the /v1 routes.
func NewRouter(h Handlers, logger *zap.Logger) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	router := gin.New()
	setMiddlewares(router, logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addChargeRoutes(v1, h.Charges, h.Reconcile)
	addCronRoutes(v1, h.Cron)
	addWebhookRoutes(v1, h.Webhooks)
	addSettingsRoutes(v1, h.Settings)
	return router
}

func setMiddlewares(router *gin.Engine, logger *zap.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("recovered from panic", zap.Any("panic", recovered), zap.String("path", c.FullPath()))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
