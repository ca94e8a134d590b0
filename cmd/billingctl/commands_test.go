package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"paguezap/internal/adapter/http/handlers/mocks"
	"paguezap/internal/domain/entities"
	"paguezap/internal/usecase"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	lifecycle      *mocks.MockIChargeLifecycleUseCase
	reconciliation *mocks.MockIReconciliationUseCase
	settings       *mocks.MockISettingsUseCase
	closed         bool
}

func newFixture(ctrl *gomock.Controller) *fixture {
	return &fixture{
		lifecycle:      mocks.NewMockIChargeLifecycleUseCase(ctrl),
		reconciliation: mocks.NewMockIReconciliationUseCase(ctrl),
		settings:       mocks.NewMockISettingsUseCase(ctrl),
	}
}

func (f *fixture) build(context.Context) (*services, error) {
	return &services{
		lifecycle:      f.lifecycle,
		reconciliation: f.reconciliation,
		settings:       f.settings,
		close: func() error {
			f.closed = true
			return nil
		},
	}, nil
}

func run(f *fixture, args ...string) (string, error) {
	var out bytes.Buffer
	cmd := newRootCmd(f.build)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestProcessChargesCmd(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newFixture(ctrl)

	f.lifecycle.EXPECT().ProcessScheduledCharges(gomock.Any()).Return([]usecase.BatchItemResult{
		{ChargeID: "charge-1", Success: true, MessageID: "wamid.1"},
		{ChargeID: "charge-2", Success: false, Error: "delivery failed"},
	}, nil)

	out, err := run(f, "process-charges")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	var body struct {
		Message string                    `json:"message"`
		Results []usecase.BatchItemResult `json:"results"`
	}
	if err := json.Unmarshal([]byte(out), &body); err != nil {
		t.Fatalf("expected JSON output, got %q", out)
	}
	if body.Message != "Processed 2 charges" || len(body.Results) != 2 {
		t.Fatalf("expected 2 results, got %+v", body)
	}
	if !f.closed {
		t.Fatalf("expected services to be closed")
	}
}

func TestSendCmd(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newFixture(ctrl)

		f.lifecycle.EXPECT().SendCharge(gomock.Any(), "charge-1").
			Return(usecase.SendChargeResult{Success: true, MessageID: "wamid.1"}, nil)

		out, err := run(f, "send", "charge-1")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.Contains(out, "wamid.1") {
			t.Fatalf("expected message id in output, got %q", out)
		}
	})

	t.Run("rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newFixture(ctrl)

		f.lifecycle.EXPECT().SendCharge(gomock.Any(), "charge-1").
			Return(usecase.SendChargeResult{Error: usecase.ErrChargeAlreadyPaid.Error()}, usecase.ErrChargeAlreadyPaid)

		out, err := run(f, "send", "charge-1")
		if !errors.Is(err, usecase.ErrChargeAlreadyPaid) {
			t.Fatalf("expected ErrChargeAlreadyPaid, got %v", err)
		}
		if !strings.Contains(out, usecase.ErrChargeAlreadyPaid.Error()) {
			t.Fatalf("expected rejection in output, got %q", out)
		}
	})

	t.Run("missing argument", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		if _, err := run(newFixture(ctrl), "send"); err == nil {
			t.Fatalf("expected argument error")
		}
	})
}

func TestCancelCmd(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newFixture(ctrl)

	f.lifecycle.EXPECT().CancelCharge(gomock.Any(), "charge-1").Return(entities.Charge{
		ID:     "charge-1",
		Status: entities.ChargeStatusCancelled,
		Amount: decimal.NewFromInt(10),
	}, nil)

	out, err := run(f, "cancel", "charge-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(out, `"status": "CANCELLED"`) {
		t.Fatalf("expected cancelled charge, got %q", out)
	}
}

func TestReconcileCmd(t *testing.T) {
	t.Run("passes payment and tenant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newFixture(ctrl)

		f.reconciliation.EXPECT().HandleNotification(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, n usecase.PaymentNotification) usecase.ReconciliationOutcome {
				if n.PaymentID != "PAY123" || n.TenantHint != "tenant-1" || n.Type != usecase.NotificationTypePayment {
					t.Fatalf("expected PAY123 for tenant-1, got %+v", n)
				}
				return usecase.ReconciliationOutcome{
					Status:       entities.ReconciliationProcessed,
					ChargeID:     "CHG1",
					ChargeStatus: entities.ChargeStatusPaid,
					Updated:      true,
				}
			},
		)

		out, err := run(f, "reconcile", "--payment-id", "PAY123", "--tenant", "tenant-1")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.Contains(out, "PROCESSED") {
			t.Fatalf("expected PROCESSED, got %q", out)
		}
	})

	t.Run("payment id required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		if _, err := run(newFixture(ctrl), "reconcile"); err == nil {
			t.Fatalf("expected required flag error")
		}
	})
}

func TestReconcileChargeCmd(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newFixture(ctrl)

	f.reconciliation.EXPECT().ReconcileCharge(gomock.Any(), "CHG1").
		Return(usecase.ReconciliationOutcome{}, usecase.ErrPaymentLookupFailed)

	if _, err := run(f, "reconcile-charge", "CHG1"); !errors.Is(err, usecase.ErrPaymentLookupFailed) {
		t.Fatalf("expected ErrPaymentLookupFailed, got %v", err)
	}
}

func TestConnectionCmds(t *testing.T) {
	t.Run("whatsapp ok", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newFixture(ctrl)

		f.settings.EXPECT().TestWhatsApp(gomock.Any(), entities.MessagingCredentials{PhoneNumberID: "123", AccessToken: "tok"}).
			Return(entities.ConnectionResult{Success: true, Data: json.RawMessage(`{"id":"123"}`)}, nil)

		out, err := run(f, "test-whatsapp", "--phone-number-id", "123", "--access-token", "tok")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.Contains(out, `"success": true`) {
			t.Fatalf("expected success output, got %q", out)
		}
	})

	t.Run("mercado pago failure prints body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newFixture(ctrl)

		f.settings.EXPECT().TestMercadoPago(gomock.Any(), "bad").
			Return(entities.ConnectionResult{Error: json.RawMessage(`{"message":"invalid token"}`)}, usecase.ErrConnectionFailed)

		out, err := run(f, "test-mercadopago", "--access-token", "bad")
		if !errors.Is(err, usecase.ErrConnectionFailed) {
			t.Fatalf("expected ErrConnectionFailed, got %v", err)
		}
		if !strings.Contains(out, "invalid token") {
			t.Fatalf("expected provider error in output, got %q", out)
		}
	})

	t.Run("missing credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newFixture(ctrl)

		f.settings.EXPECT().TestMercadoPago(gomock.Any(), "").
			Return(entities.ConnectionResult{}, usecase.ErrMissingCredentials)

		out, err := run(f, "test-mercadopago")
		if !errors.Is(err, usecase.ErrMissingCredentials) {
			t.Fatalf("expected ErrMissingCredentials, got %v", err)
		}
		if out != "" {
			t.Fatalf("expected no output, got %q", out)
		}
	})
}
