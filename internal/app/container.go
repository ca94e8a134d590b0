package app

import (
	"context"
	"fmt"
	"net/http"

	"paguezap/internal/adapter/persistence/repository"
	"paguezap/internal/config"
	"paguezap/internal/infrastructure/database"
	"paguezap/internal/infrastructure/lock"
	"paguezap/internal/infrastructure/messaging"
	"paguezap/internal/infrastructure/payments"
	"paguezap/internal/usecase"
	"paguezap/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Container holds the use cases shared by the HTTP server and the CLI.
type Container struct {
	ChargeLifecycle *usecase.ChargeLifecycleUseCase
	Reconciliation  *usecase.ReconciliationUseCase
	Settings        *usecase.SettingsUseCase

	redis *redis.Client
}

// Build connects to DynamoDB (and Redis when configured) and wires every use case.
func Build(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Container, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
	if err != nil {
		return nil, fmt.Errorf("connect dynamodb: %w", err)
	}
	rdb, err := database.ConnectRedis(ctx, cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}

	charges := repository.NewChargeDynamoRepository(ddb, cfg.DynamoDB)
	tenants := repository.NewTenantDynamoRepository(ddb, cfg.DynamoDB)
	auditLog := repository.NewAuditLogDynamoRepository(ddb, cfg.DynamoDB)
	webhookLog := repository.NewWebhookLogDynamoRepository(ddb, cfg.DynamoDB)

	httpClient := &http.Client{Timeout: cfg.HTTP.Timeout}
	whatsApp := messaging.NewWhatsAppGatewayFactory(messaging.Options{
		BaseURL:  cfg.WhatsApp.BaseURL,
		Template: cfg.WhatsApp.Template,
		Language: cfg.WhatsApp.Language,
		Timeout:  cfg.HTTP.Timeout,
	}, httpClient, logger.Named("whatsapp"))
	mercadoPago := payments.NewMercadoPagoGatewayFactory(logger.Named("mercadopago"))

	var locker interfaces.IChargeLocker
	if rdb != nil {
		locker = lock.NewRedisChargeLocker(rdb, cfg.Redis.LockTTL, logger.Named("lock"))
	} else {
		logger.Info("redis not configured; send lock is process-local")
	}

	return &Container{
		ChargeLifecycle: usecase.NewChargeLifecycleUseCase(charges, tenants, auditLog, whatsApp, mercadoPago, locker, usecase.LifecycleOptions{
			BatchSize:  cfg.Batch.Size,
			Location:   cfg.Location(),
			PixCity:    cfg.Pix.City,
			WebhookURL: cfg.WebhookURL,
			ReturnURL:  cfg.ReturnURL(),
		}, logger.Named("charges")),
		Reconciliation: usecase.NewReconciliationUseCase(charges, tenants, auditLog, webhookLog, mercadoPago, usecase.ReconciliationOptions{
			ScanLimit:  cfg.Reconciliation.ScanLimit,
			ScanWindow: cfg.Reconciliation.ScanWindow,
		}, logger.Named("reconciliation")),
		Settings: usecase.NewSettingsUseCase(whatsApp, mercadoPago, logger.Named("settings")),
		redis:    rdb,
	}, nil
}

func (c *Container) Close() error {
	if c.redis != nil {
		return c.redis.Close()
	}
	return nil
}
