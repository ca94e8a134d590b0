package usecase

//go:generate mockgen -source=reconciliation_usecase.go -destination=../adapter/http/handlers/mocks/mock_reconciliation_usecase.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"paguezap/internal/domain/entities"
	"paguezap/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrPaymentsNotConfigured = errors.New("mercado pago not configured for this account")
	ErrPaymentLookupFailed   = errors.New("payment lookup failed")
)

const (
	ProviderMercadoPago = "mercado_pago"

	NotificationTypePayment = "payment"

	DefaultScanLimit  = 50
	DefaultScanWindow = 24 * time.Hour

	endpointWebhook = "/webhooks/mercado-pago"
	eventReconcile  = "reconcile"

	processorStatusApproved  = "approved"
	processorStatusRejected  = "rejected"
	processorStatusCancelled = "cancelled"
	processorStatusRefunded  = "refunded"
)

// PaymentNotification is an inbound processor event already parsed by the transport.
// ParseError is set when the transport could not decode the body.
type PaymentNotification struct {
	Type       string
	PaymentID  string
	TenantHint string
	Raw        json.RawMessage
	ParseError string
}

// ReconciliationOutcome summarizes what a notification did. It is always
// recorded in the webhook log.
type ReconciliationOutcome struct {
	Status       entities.ReconciliationStatus `json:"status"`
	ChargeID     string                        `json:"chargeId,omitempty"`
	TenantID     string                        `json:"tenantId,omitempty"`
	ChargeStatus entities.ChargeStatus         `json:"chargeStatus,omitempty"`
	Updated      bool                          `json:"updated"`
	Message      string                        `json:"message"`
	Error        string                        `json:"error,omitempty"`
}

// IReconciliationUseCase applies processor payment status to charges.
//
// HandleNotification never fails: every outcome, including internal errors,
// is logged and acknowledged.
type IReconciliationUseCase interface {
	HandleNotification(ctx context.Context, n PaymentNotification) ReconciliationOutcome
	ReconcileCharge(ctx context.Context, chargeID string) (ReconciliationOutcome, error)
}

type ReconciliationOptions struct {
	ScanLimit  int
	ScanWindow time.Duration
}

type ReconciliationUseCase struct {
	charges    interfaces.IChargeRepository
	tenants    interfaces.ITenantConfigRepository
	auditLog   interfaces.IAuditLogWriter
	webhookLog interfaces.IReconciliationLogWriter
	payments   interfaces.IPaymentLinkProviderFactory
	opts       ReconciliationOptions
	logger     *zap.Logger

	now func() time.Time
}

var _ IReconciliationUseCase = (*ReconciliationUseCase)(nil)

func NewReconciliationUseCase(
	charges interfaces.IChargeRepository,
	tenants interfaces.ITenantConfigRepository,
	auditLog interfaces.IAuditLogWriter,
	webhookLog interfaces.IReconciliationLogWriter,
	payments interfaces.IPaymentLinkProviderFactory,
	opts ReconciliationOptions,
	logger *zap.Logger,
) *ReconciliationUseCase {
	if opts.ScanLimit <= 0 {
		opts.ScanLimit = DefaultScanLimit
	}
	if opts.ScanWindow <= 0 {
		opts.ScanWindow = DefaultScanWindow
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReconciliationUseCase{
		charges:    charges,
		tenants:    tenants,
		auditLog:   auditLog,
		webhookLog: webhookLog,
		payments:   payments,
		opts:       opts,
		logger:     logger,
		now:        time.Now,
	}
}

// match is a charge paired with the processor payment that references it.
type match struct {
	charge  entities.Charge
	payment entities.ProcessorPayment
}

func (u *ReconciliationUseCase) HandleNotification(ctx context.Context, n PaymentNotification) (out ReconciliationOutcome) {
	n.Type = strings.TrimSpace(n.Type)
	n.PaymentID = strings.TrimSpace(n.PaymentID)
	n.TenantHint = strings.TrimSpace(n.TenantHint)
	logger := u.logger.With(zap.String("payment_id", n.PaymentID), zap.String("event_type", n.Type))

	defer func() {
		if r := recover(); r != nil {
			logger.Error("notification handling panicked", zap.Any("panic", r))
			out = ReconciliationOutcome{Status: entities.ReconciliationReceived, Message: "notification received", Error: panicError(r).Error()}
		}
		u.record(ctx, n.Type, n.PaymentID, n.Raw, out)
	}()

	if n.ParseError != "" {
		return ReconciliationOutcome{Status: entities.ReconciliationRejected, Message: "malformed notification", Error: n.ParseError}
	}
	if n.Type != NotificationTypePayment {
		return ReconciliationOutcome{Status: entities.ReconciliationReceived, Message: "notification type not processed"}
	}
	if n.PaymentID == "" {
		return ReconciliationOutcome{Status: entities.ReconciliationRejected, Message: "payment id not provided", Error: "missing payment id"}
	}

	m, found, tenantMissing := u.resolveByTenant(ctx, n, logger)
	if !found {
		m, found = u.resolveByScan(ctx, n.PaymentID, logger)
	}
	if !found {
		if tenantMissing {
			return ReconciliationOutcome{Status: entities.ReconciliationTenantNotFound, TenantID: n.TenantHint, Message: "tenant not found"}
		}
		logger.Info("no charge matched payment notification")
		return ReconciliationOutcome{Status: entities.ReconciliationReceived, Message: "notification received"}
	}

	return u.apply(ctx, m, n.Raw)
}

// resolveByTenant is the fast path: the hinted tenant's processor resolves the
// payment and its external reference names the charge.
func (u *ReconciliationUseCase) resolveByTenant(ctx context.Context, n PaymentNotification, logger *zap.Logger) (m match, found, tenantMissing bool) {
	if n.TenantHint == "" {
		return match{}, false, false
	}

	tenant, err := u.tenants.GetByID(ctx, n.TenantHint)
	if err != nil {
		logger.Warn("tenant lookup failed; falling back to scan", zap.String("tenant_id", n.TenantHint), zap.Error(err))
		return match{}, false, false
	}
	if tenant.ID == "" {
		return match{}, false, true
	}
	if !tenant.HasProcessorCredentials() {
		return match{}, false, false
	}

	res := u.payments.New(tenant.MercadoPagoToken).GetPayment(ctx, n.PaymentID)
	if !res.Success || res.Payment == nil || res.Payment.ExternalReference == "" {
		return match{}, false, false
	}

	charge, err := u.charges.GetByID(ctx, res.Payment.ExternalReference)
	if err != nil {
		logger.Warn("charge lookup failed; falling back to scan", zap.String("charge_id", res.Payment.ExternalReference), zap.Error(err))
		return match{}, false, false
	}
	if charge.ID == "" || charge.TenantID != tenant.ID {
		return match{}, false, false
	}
	return match{charge: charge, payment: *res.Payment}, true, false
}

// resolveByScan walks recent in-flight charges and asks each tenant's processor
// about the payment. The first charge the payment references wins.
func (u *ReconciliationUseCase) resolveByScan(ctx context.Context, paymentID string, logger *zap.Logger) (match, bool) {
	since := u.now().Add(-u.opts.ScanWindow)
	candidates, err := u.charges.FindMany(ctx, entities.ChargeFilter{
		Statuses:     []entities.ChargeStatus{entities.ChargeStatusSent, entities.ChargeStatusPending},
		CreatedAfter: &since,
		Limit:        u.opts.ScanLimit,
		Order:        entities.SortDescending,
	})
	if err != nil {
		logger.Warn("reconciliation scan failed", zap.Error(err))
		return match{}, false
	}

	tenants := make(map[string]entities.TenantConfig)
	lookups := make(map[string]entities.PaymentResult)
	for _, c := range candidates {
		if ctx.Err() != nil {
			return match{}, false
		}

		tenant, ok := tenants[c.TenantID]
		if !ok {
			tenant, err = u.tenants.GetByID(ctx, c.TenantID)
			if err != nil {
				logger.Warn("tenant lookup failed during scan", zap.String("tenant_id", c.TenantID), zap.Error(err))
			}
			tenants[c.TenantID] = tenant
		}
		if !tenant.HasProcessorCredentials() {
			continue
		}

		// One processor call per tenant: the payment id does not change across its charges.
		res, ok := lookups[tenant.ID]
		if !ok {
			res = u.payments.New(tenant.MercadoPagoToken).GetPayment(ctx, paymentID)
			lookups[tenant.ID] = res
		}
		if res.Success && res.Payment != nil && res.Payment.ExternalReference == c.ID {
			return match{charge: c, payment: *res.Payment}, true
		}
	}
	return match{}, false
}

// apply maps the processor status onto the charge. Replays are no-ops.
func (u *ReconciliationUseCase) apply(ctx context.Context, m match, request json.RawMessage) ReconciliationOutcome {
	charge, payment := m.charge, m.payment
	logger := u.logger.With(
		zap.String("charge_id", charge.ID),
		zap.String("tenant_id", charge.TenantID),
		zap.String("payment_id", payment.ID),
		zap.String("processor_status", payment.Status))

	bestEffort(ctx, logger, "audit "+endpointWebhook, func(ctx context.Context) error {
		return u.auditLog.Append(ctx, entities.AuditLogEntry{
			TenantID:   charge.TenantID,
			ChargeID:   charge.ID,
			Endpoint:   endpointWebhook,
			Method:     http.MethodPost,
			StatusCode: http.StatusOK,
			Request:    request,
			Response:   payment.Raw,
		})
	})

	out := ReconciliationOutcome{
		Status:       entities.ReconciliationProcessed,
		ChargeID:     charge.ID,
		TenantID:     charge.TenantID,
		ChargeStatus: charge.Status,
		Message:      "notification processed",
	}

	target, ok := targetStatus(payment.Status)
	if !ok || charge.Status == target || charge.Status.IsTerminal() || !entities.CanTransition(charge.Status, target) {
		logger.Info("charge status unchanged", zap.String("status", string(charge.Status)))
		return out
	}

	update := entities.ChargeUpdate{Status: &target}
	if target == entities.ChargeStatusPaid {
		paidAt := u.now()
		update.PaidAt = &paidAt
	}
	updated, err := u.charges.UpdateFields(ctx, charge.ID, update, charge.Status)
	switch {
	case errors.Is(err, interfaces.ErrStatusConflict):
		logger.Warn("charge changed concurrently; notification not applied")
		out.Error = err.Error()
		return out
	case err != nil:
		logger.Error("failed to update charge from notification", zap.Error(err))
		out.Status = entities.ReconciliationReceived
		out.Message = "notification received"
		out.Error = err.Error()
		return out
	}

	out.Updated = true
	out.ChargeStatus = target
	if updated.ID != "" {
		out.ChargeStatus = updated.Status
	}
	logger.Info("charge reconciled", zap.String("from", string(charge.Status)), zap.String("to", string(target)))
	return out
}

func targetStatus(processorStatus string) (entities.ChargeStatus, bool) {
	switch processorStatus {
	case processorStatusApproved:
		return entities.ChargeStatusPaid, true
	case processorStatusRejected, processorStatusCancelled, processorStatusRefunded:
		return entities.ChargeStatusFailed, true
	}
	return "", false
}

// ReconcileCharge pulls the processor state for one charge on demand, using its
// id as external reference. An approved payment wins over newer attempts.
func (u *ReconciliationUseCase) ReconcileCharge(ctx context.Context, chargeID string) (ReconciliationOutcome, error) {
	chargeID = strings.TrimSpace(chargeID)
	if chargeID == "" {
		return ReconciliationOutcome{}, ErrInvalidChargeID
	}

	charge, err := u.charges.GetByID(ctx, chargeID)
	if err != nil {
		return ReconciliationOutcome{}, fmt.Errorf("load charge: %w", err)
	}
	if charge.ID == "" {
		return ReconciliationOutcome{}, ErrChargeNotFound
	}
	tenant, err := u.tenants.GetByID(ctx, charge.TenantID)
	if err != nil {
		return ReconciliationOutcome{}, fmt.Errorf("load tenant: %w", err)
	}
	if tenant.ID == "" {
		return ReconciliationOutcome{}, ErrTenantNotFound
	}
	if !tenant.HasProcessorCredentials() {
		return ReconciliationOutcome{}, ErrPaymentsNotConfigured
	}

	res := u.payments.New(tenant.MercadoPagoToken).SearchPaymentsByReference(ctx, charge.ID)
	if !res.Success {
		return ReconciliationOutcome{}, fmt.Errorf("%w: %s", ErrPaymentLookupFailed, string(res.Error))
	}

	var out ReconciliationOutcome
	var paymentID string
	if p, ok := pickPayment(res.Payments); ok {
		paymentID = p.ID
		out = u.apply(ctx, match{charge: charge, payment: p}, nil)
	} else {
		out = ReconciliationOutcome{
			Status:       entities.ReconciliationReceived,
			ChargeID:     charge.ID,
			TenantID:     charge.TenantID,
			ChargeStatus: charge.Status,
			Message:      "no payments found",
		}
	}
	u.record(ctx, eventReconcile, paymentID, nil, out)
	return out, nil
}

// pickPayment expects payments newest first.
func pickPayment(payments []entities.ProcessorPayment) (entities.ProcessorPayment, bool) {
	if len(payments) == 0 {
		return entities.ProcessorPayment{}, false
	}
	for _, p := range payments {
		if p.Status == processorStatusApproved {
			return p, true
		}
	}
	return payments[0], true
}

func (u *ReconciliationUseCase) record(ctx context.Context, eventType, paymentID string, payload json.RawMessage, out ReconciliationOutcome) {
	switch {
	case len(payload) == 0:
		payload = json.RawMessage("{}")
	case !json.Valid(payload):
		// Keep undecodable bodies as a JSON string.
		payload, _ = json.Marshal(string(payload))
	}
	bestEffort(ctx, u.logger, "webhook log", func(ctx context.Context) error {
		return u.webhookLog.Append(ctx, entities.ReconciliationLog{
			Provider:  ProviderMercadoPago,
			EventType: eventType,
			PaymentID: paymentID,
			TenantID:  out.TenantID,
			ChargeID:  out.ChargeID,
			Payload:   payload,
			Status:    out.Status,
			Error:     out.Error,
		})
	})
}
