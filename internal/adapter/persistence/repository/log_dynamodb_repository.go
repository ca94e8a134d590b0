package repository

import (
	"context"
	"time"

	"paguezap/internal/config"
	"paguezap/internal/domain/entities"
	"paguezap/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/google/uuid"
)

type auditLogItem struct {
	ID         string `dynamodbav:"id"`
	TenantID   string `dynamodbav:"user_id"`
	ChargeID   string `dynamodbav:"charge_id,omitempty"`
	Endpoint   string `dynamodbav:"endpoint"`
	Method     string `dynamodbav:"method"`
	StatusCode int    `dynamodbav:"status_code,omitempty"`
	Error      string `dynamodbav:"error,omitempty"`
	Request    string `dynamodbav:"request_body,omitempty"`
	Response   string `dynamodbav:"response_body,omitempty"`
	CreatedAt  string `dynamodbav:"created_at"`
}

type webhookLogItem struct {
	ID        string `dynamodbav:"id"`
	Provider  string `dynamodbav:"provider"`
	EventType string `dynamodbav:"event_type"`
	PaymentID string `dynamodbav:"payment_id,omitempty"`
	TenantID  string `dynamodbav:"user_id,omitempty"`
	ChargeID  string `dynamodbav:"charge_id,omitempty"`
	Payload   string `dynamodbav:"payload"`
	Status    string `dynamodbav:"status"`
	Error     string `dynamodbav:"error,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
}

// AuditLogDynamoRepository appends outbound integration attempts (api_logs).
type AuditLogDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.IAuditLogWriter = (*AuditLogDynamoRepository)(nil)

func NewAuditLogDynamoRepository(ddb dynamoAPI, cfg config.DynamoDBConfig) *AuditLogDynamoRepository {
	return &AuditLogDynamoRepository{ddb: ddb, tableName: cfg.AuditLogsTable, now: time.Now}
}

func (r *AuditLogDynamoRepository) Append(ctx context.Context, e entities.AuditLogEntry) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = r.now()
	}
	return putNew(ctx, r.ddb, r.tableName, auditLogItem{
		ID:         e.ID,
		TenantID:   e.TenantID,
		ChargeID:   e.ChargeID,
		Endpoint:   e.Endpoint,
		Method:     e.Method,
		StatusCode: e.StatusCode,
		Error:      e.Error,
		Request:    string(e.Request),
		Response:   string(e.Response),
		CreatedAt:  formatTime(e.CreatedAt),
	})
}

// WebhookLogDynamoRepository appends inbound payment notifications (webhook_logs).
type WebhookLogDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.IReconciliationLogWriter = (*WebhookLogDynamoRepository)(nil)

func NewWebhookLogDynamoRepository(ddb dynamoAPI, cfg config.DynamoDBConfig) *WebhookLogDynamoRepository {
	return &WebhookLogDynamoRepository{ddb: ddb, tableName: cfg.WebhookLogsTable, now: time.Now}
}

func (r *WebhookLogDynamoRepository) Append(ctx context.Context, l entities.ReconciliationLog) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = r.now()
	}
	return putNew(ctx, r.ddb, r.tableName, webhookLogItem{
		ID:        l.ID,
		Provider:  l.Provider,
		EventType: l.EventType,
		PaymentID: l.PaymentID,
		TenantID:  l.TenantID,
		ChargeID:  l.ChargeID,
		Payload:   string(l.Payload),
		Status:    string(l.Status),
		Error:     l.Error,
		CreatedAt: formatTime(l.CreatedAt),
	})
}

// putNew inserts an append-only record; an existing id is never overwritten.
func putNew(ctx context.Context, ddb dynamoAPI, table string, item any) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return err
	}
	_, err = ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(table),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}
