package usecase

//go:generate mockgen -source=charge_lifecycle_usecase.go -destination=../adapter/http/handlers/mocks/mock_charge_lifecycle_usecase.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"paguezap/internal/domain/entities"
	"paguezap/internal/domain/pix"
	"paguezap/internal/usecase/interfaces"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

var (
	ErrInvalidChargeID        = errors.New("invalid charge id")
	ErrChargeNotFound         = errors.New("charge not found")
	ErrTenantNotFound         = errors.New("tenant not found")
	ErrMessagingNotConfigured = errors.New("whatsapp not configured for this account")
	ErrPixNotConfigured       = errors.New("pix not configured for this account")
	ErrInvalidPixKey          = errors.New("pix key is too long")
	ErrChargeAlreadyPaid      = errors.New("charge already paid")
	ErrChargeCancelled        = errors.New("charge was cancelled")
	ErrChargeAlreadySent      = errors.New("charge already sent")
	ErrInvalidChargeAmount    = errors.New("charge amount must be positive")
	ErrDeliveryFailed         = errors.New("failed to deliver message")
	ErrSendInProgress         = errors.New("charge is being sent by another process")
)

const (
	DefaultBatchSize = 50

	endpointMessages    = "/messages"
	endpointPreferences = "/checkout/preferences"
	endpointRecurrence  = "SYSTEM/recurrence"
	methodCreate        = "CREATE"
)

// SendChargeResult is the outcome reported to the caller of SendCharge.
type SendChargeResult struct {
	Success   bool            `json:"success"`
	Error     string          `json:"error,omitempty"`
	Details   json.RawMessage `json:"details,omitempty"`
	MessageID string          `json:"messageId,omitempty"`
}

// BatchItemResult is the per-charge outcome of ProcessScheduledCharges.
type BatchItemResult struct {
	ChargeID  string `json:"chargeId"`
	Success   bool   `json:"success"`
	MessageID string `json:"messageId,omitempty"`
	Error     string `json:"error,omitempty"`
}

// IChargeLifecycleUseCase drives a charge from creation to delivery.
//
// Requested behavior:
//   - deliver one charge on demand (manual send) or in batch (scheduled sends)
//   - create the next occurrence of monthly charges after a successful send
//   - cancel a charge administratively

type IChargeLifecycleUseCase interface {
	SendCharge(ctx context.Context, chargeID string) (SendChargeResult, error)
	ProcessScheduledCharges(ctx context.Context) ([]BatchItemResult, error)
	CancelCharge(ctx context.Context, chargeID string) (entities.Charge, error)
}

type LifecycleOptions struct {
	BatchSize int
	Location  *time.Location
	PixCity   string
	// WebhookURL renders the processor notification URL for a tenant.
	WebhookURL func(tenantID string) string
	// ReturnURL receives the payer after checkout.
	ReturnURL string
}

type ChargeLifecycleUseCase struct {
	charges   interfaces.IChargeRepository
	tenants   interfaces.ITenantConfigRepository
	auditLog  interfaces.IAuditLogWriter
	messaging interfaces.IMessagingGatewayFactory
	payments  interfaces.IPaymentLinkProviderFactory
	locker    interfaces.IChargeLocker
	codes     *pix.Generator
	opts      LifecycleOptions
	logger    *zap.Logger

	inflight     singleflight.Group
	now          func() time.Time
	newReference func() string
}

var _ IChargeLifecycleUseCase = (*ChargeLifecycleUseCase)(nil)

// NewChargeLifecycleUseCase wires the lifecycle. locker may be nil, in which
// case only in-process duplicate sends are collapsed.
func NewChargeLifecycleUseCase(
	charges interfaces.IChargeRepository,
	tenants interfaces.ITenantConfigRepository,
	auditLog interfaces.IAuditLogWriter,
	messaging interfaces.IMessagingGatewayFactory,
	payments interfaces.IPaymentLinkProviderFactory,
	locker interfaces.IChargeLocker,
	opts LifecycleOptions,
	logger *zap.Logger,
) *ChargeLifecycleUseCase {
	if opts.BatchSize <= 0 {
		opts.BatchSize = DefaultBatchSize
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChargeLifecycleUseCase{
		charges:      charges,
		tenants:      tenants,
		auditLog:     auditLog,
		messaging:    messaging,
		payments:     payments,
		locker:       locker,
		codes:        pix.NewGenerator(opts.PixCity),
		opts:         opts,
		logger:       logger,
		now:          time.Now,
		newReference: pix.GenerateReferenceID,
	}
}

// SendCharge delivers one charge. Precondition and delivery failures come back
// as a non-nil sentinel error together with a result describing it; storage
// failures are returned wrapped.
func (u *ChargeLifecycleUseCase) SendCharge(ctx context.Context, chargeID string) (SendChargeResult, error) {
	chargeID = strings.TrimSpace(chargeID)
	if chargeID == "" {
		return failed(ErrInvalidChargeID, nil)
	}

	// Concurrent callers for the same id share one delivery.
	v, err, _ := u.inflight.Do(chargeID, func() (any, error) {
		return u.sendExclusive(ctx, chargeID)
	})
	res, _ := v.(SendChargeResult)
	return res, err
}

func (u *ChargeLifecycleUseCase) sendExclusive(ctx context.Context, chargeID string) (SendChargeResult, error) {
	if u.locker == nil {
		return u.send(ctx, chargeID)
	}

	release, acquired, err := u.locker.Acquire(ctx, chargeID)
	if err != nil {
		return SendChargeResult{Error: "send lock unavailable"}, fmt.Errorf("acquire send lock: %w", err)
	}
	if !acquired {
		return failed(ErrSendInProgress, nil)
	}
	defer release()
	return u.send(ctx, chargeID)
}

func (u *ChargeLifecycleUseCase) send(ctx context.Context, chargeID string) (SendChargeResult, error) {
	logger := u.logger.With(zap.String("charge_id", chargeID))

	charge, err := u.charges.GetByID(ctx, chargeID)
	if err != nil {
		return SendChargeResult{Error: "internal error"}, fmt.Errorf("load charge: %w", err)
	}
	if charge.ID == "" {
		return failed(ErrChargeNotFound, nil)
	}

	tenant, err := u.tenants.GetByID(ctx, charge.TenantID)
	if err != nil {
		return SendChargeResult{Error: "internal error"}, fmt.Errorf("load tenant: %w", err)
	}
	if tenant.ID == "" {
		return failed(ErrTenantNotFound, nil)
	}
	logger = logger.With(zap.String("tenant_id", tenant.ID))

	if err := checkSendable(charge, tenant); err != nil {
		logger.Info("charge not sendable", zap.String("status", string(charge.Status)), zap.Error(err))
		return failed(err, nil)
	}

	reference := u.newReference()
	code := u.codes.GenerateCode(tenant.PixKey, tenant.MerchantName, charge.Amount, reference)
	link := u.createPaymentLink(ctx, charge, tenant)

	msg := entities.PaymentMessage{
		To:              charge.CustomerPhone,
		CustomerName:    charge.CustomerName,
		ProductName:     charge.DisplayName(),
		Amount:          charge.Amount,
		ImageURL:        firstNonEmpty(charge.ImageURL, tenant.DefaultImageURL),
		PixReferenceID:  reference,
		PixCode:         code,
		PixKey:          tenant.PixKey,
		PixKeyType:      tenant.EffectivePixKeyType(),
		MerchantName:    tenant.MerchantName,
		MercadoPagoLink: link,
	}
	result := u.messaging.New(tenant.MessagingCredentials()).SendPaymentMessage(ctx, msg)

	if !result.Success {
		logger.Warn("whatsapp delivery failed", zap.ByteString("provider_error", result.Error))
		u.appendAudit(ctx, entities.AuditLogEntry{
			TenantID: tenant.ID,
			ChargeID: charge.ID,
			Endpoint: endpointMessages,
			Method:   http.MethodPost,
			Error:    string(result.Error),
		})
		if err := u.markFailed(ctx, charge); err != nil {
			return SendChargeResult{Error: ErrDeliveryFailed.Error(), Details: result.Error}, err
		}
		return failed(ErrDeliveryFailed, result.Error)
	}

	sentAt := u.now()
	sent := entities.ChargeStatusSent
	update := entities.ChargeUpdate{
		Status:            &sent,
		SentAt:            &sentAt,
		PixReferenceID:    &reference,
		PixCode:           &code,
		WhatsAppMessageID: &result.MessageID,
	}
	if link != "" {
		update.MercadoPagoLink = &link
	}

	res := SendChargeResult{Success: true, MessageID: result.MessageID}
	if _, err := u.charges.UpdateFields(ctx, charge.ID, update, charge.Status); err != nil {
		if !errors.Is(err, interfaces.ErrStatusConflict) {
			return res, fmt.Errorf("persist sent charge: %w", err)
		}
		// A webhook settled the charge while the message was in flight; keep its status.
		logger.Warn("charge changed during send; status left untouched", zap.String("read_status", string(charge.Status)))
	}

	u.appendAudit(ctx, entities.AuditLogEntry{
		TenantID:   tenant.ID,
		ChargeID:   charge.ID,
		Endpoint:   endpointMessages,
		Method:     http.MethodPost,
		StatusCode: http.StatusOK,
		Response:   result.Data,
	})
	logger.Info("charge sent", zap.String("message_id", result.MessageID))

	if charge.ScheduleType == entities.ScheduleTypeMonthlyRecurring && charge.ScheduleDay > 0 {
		u.scheduleNextOccurrence(ctx, charge, sentAt)
	}
	return res, nil
}

func checkSendable(charge entities.Charge, tenant entities.TenantConfig) error {
	switch {
	case !tenant.HasMessagingCredentials():
		return ErrMessagingNotConfigured
	case !tenant.HasPixCredentials():
		return ErrPixNotConfigured
	case len(tenant.PixKey) > pix.MaxKeyLength:
		return ErrInvalidPixKey
	case charge.Status == entities.ChargeStatusPaid:
		return ErrChargeAlreadyPaid
	case charge.Status == entities.ChargeStatusCancelled:
		return ErrChargeCancelled
	case charge.Status == entities.ChargeStatusSent:
		return ErrChargeAlreadySent
	case !charge.Amount.IsPositive():
		return ErrInvalidChargeAmount
	}
	return nil
}

// createPaymentLink returns an empty link when the tenant has no processor
// token or the preference could not be created.
func (u *ChargeLifecycleUseCase) createPaymentLink(ctx context.Context, charge entities.Charge, tenant entities.TenantConfig) string {
	if !tenant.HasProcessorCredentials() {
		return ""
	}

	params := entities.PreferenceParams{
		Title:             charge.DisplayName(),
		Description:       charge.Description,
		Amount:            charge.Amount,
		ExternalReference: charge.ID,
		PayerEmail:        charge.CustomerEmail,
		PayerName:         charge.CustomerName,
		BackURL:           u.opts.ReturnURL,
	}
	if u.opts.WebhookURL != nil {
		params.NotificationURL = u.opts.WebhookURL(tenant.ID)
	}

	pref := u.payments.New(tenant.MercadoPagoToken).CreatePreference(ctx, params)
	if pref.Success && pref.PaymentLink != "" {
		return pref.PaymentLink
	}

	u.logger.Warn("payment link unavailable; sending pix only", zap.String("charge_id", charge.ID))
	u.appendAudit(ctx, entities.AuditLogEntry{
		TenantID: tenant.ID,
		ChargeID: charge.ID,
		Endpoint: endpointPreferences,
		Method:   http.MethodPost,
		Error:    string(pref.Error),
	})
	return ""
}

func (u *ChargeLifecycleUseCase) markFailed(ctx context.Context, charge entities.Charge) error {
	if !entities.CanTransition(charge.Status, entities.ChargeStatusFailed) || charge.Status == entities.ChargeStatusFailed {
		return nil
	}
	status := entities.ChargeStatusFailed
	_, err := u.charges.UpdateFields(ctx, charge.ID, entities.ChargeUpdate{Status: &status}, charge.Status)
	if errors.Is(err, interfaces.ErrStatusConflict) {
		u.logger.Warn("charge changed during failed send; status left untouched", zap.String("charge_id", charge.ID))
		return nil
	}
	if err != nil {
		return fmt.Errorf("persist failed charge: %w", err)
	}
	return nil
}

func (u *ChargeLifecycleUseCase) scheduleNextOccurrence(ctx context.Context, charge entities.Charge, now time.Time) {
	bestEffort(ctx, u.logger, "recurrence", func(ctx context.Context) error {
		next := successorCharge(charge, now, u.opts.Location)
		if _, err := u.charges.Create(ctx, next); err != nil {
			u.appendAudit(ctx, entities.AuditLogEntry{
				TenantID: charge.TenantID,
				ChargeID: charge.ID,
				Endpoint: endpointRecurrence,
				Method:   methodCreate,
				Error:    err.Error(),
			})
			return fmt.Errorf("create next occurrence of %s: %w", charge.ID, err)
		}

		body, _ := json.Marshal(map[string]any{"message": "recurrence created", "date": next.NextSendDate})
		u.appendAudit(ctx, entities.AuditLogEntry{
			TenantID:   charge.TenantID,
			ChargeID:   next.ID,
			Endpoint:   endpointRecurrence,
			Method:     methodCreate,
			StatusCode: http.StatusCreated,
			Response:   body,
		})
		u.logger.Info("next occurrence scheduled",
			zap.String("charge_id", charge.ID),
			zap.String("next_charge_id", next.ID),
			zap.Time("next_send_date", *next.NextSendDate))
		return nil
	})
}

func (u *ChargeLifecycleUseCase) appendAudit(ctx context.Context, entry entities.AuditLogEntry) {
	bestEffort(ctx, u.logger, "audit "+entry.Endpoint, func(ctx context.Context) error {
		return u.auditLog.Append(ctx, entry)
	})
}

// ProcessScheduledCharges sends every SCHEDULED charge whose next send date has
// passed, oldest first and at most BatchSize per call. A failing charge never
// stops the batch.
func (u *ChargeLifecycleUseCase) ProcessScheduledCharges(ctx context.Context) ([]BatchItemResult, error) {
	now := u.now()
	due, err := u.charges.FindMany(ctx, entities.ChargeFilter{
		Statuses:       []entities.ChargeStatus{entities.ChargeStatusScheduled},
		NextSendBefore: &now,
		Limit:          u.opts.BatchSize,
		Order:          entities.SortAscending,
	})
	if err != nil {
		return nil, fmt.Errorf("find scheduled charges: %w", err)
	}
	u.logger.Info("processing scheduled charges", zap.Int("due", len(due)))

	results := make([]BatchItemResult, 0, len(due))
	for _, c := range due {
		if ctx.Err() != nil {
			u.logger.Warn("batch interrupted", zap.Int("processed", len(results)), zap.Error(ctx.Err()))
			break
		}
		results = append(results, u.sendBatchItem(ctx, c.ID))
	}
	return results, nil
}

func (u *ChargeLifecycleUseCase) sendBatchItem(ctx context.Context, chargeID string) (item BatchItemResult) {
	item.ChargeID = chargeID
	defer func() {
		if r := recover(); r != nil {
			u.logger.Error("charge send panicked", zap.String("charge_id", chargeID), zap.Any("panic", r))
			item.Success = false
			item.Error = panicError(r).Error()
		}
	}()

	res, err := u.SendCharge(ctx, chargeID)
	item.Success = res.Success && err == nil
	item.MessageID = res.MessageID
	if err != nil {
		item.Error = err.Error()
	}
	return item
}

// CancelCharge moves a charge to CANCELLED. Cancelling twice is a no-op.
func (u *ChargeLifecycleUseCase) CancelCharge(ctx context.Context, chargeID string) (entities.Charge, error) {
	chargeID = strings.TrimSpace(chargeID)
	if chargeID == "" {
		return entities.Charge{}, ErrInvalidChargeID
	}

	charge, err := u.charges.GetByID(ctx, chargeID)
	if err != nil {
		return entities.Charge{}, fmt.Errorf("load charge: %w", err)
	}
	if charge.ID == "" {
		return entities.Charge{}, ErrChargeNotFound
	}
	switch charge.Status {
	case entities.ChargeStatusCancelled:
		return charge, nil
	case entities.ChargeStatusPaid:
		return entities.Charge{}, ErrChargeAlreadyPaid
	}

	now := u.now()
	status := entities.ChargeStatusCancelled
	updated, err := u.charges.UpdateFields(ctx, charge.ID, entities.ChargeUpdate{Status: &status, CancelledAt: &now}, charge.Status)
	if err != nil {
		return entities.Charge{}, fmt.Errorf("cancel charge: %w", err)
	}
	u.logger.Info("charge cancelled", zap.String("charge_id", charge.ID), zap.String("previous_status", string(charge.Status)))
	return updated, nil
}

func failed(err error, details json.RawMessage) (SendChargeResult, error) {
	return SendChargeResult{Error: err.Error(), Details: details}, err
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
