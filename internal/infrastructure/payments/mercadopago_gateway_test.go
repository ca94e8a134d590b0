package payments

import (
	"context"
	"errors"
	"testing"

	"paguezap/internal/domain/entities"

	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"github.com/mercadopago/sdk-go/pkg/user"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type fakePreferences struct {
	got  preference.Request
	resp *preference.Response
	err  error
}

func (f *fakePreferences) Create(_ context.Context, req preference.Request) (*preference.Response, error) {
	f.got = req
	return f.resp, f.err
}

type fakePayments struct {
	gotID     int
	gotSearch payment.SearchRequest
	resp      *payment.Response
	search    *payment.SearchResponse
	err       error
}

func (f *fakePayments) Get(_ context.Context, id int) (*payment.Response, error) {
	f.gotID = id
	return f.resp, f.err
}

func (f *fakePayments) Search(_ context.Context, req payment.SearchRequest) (*payment.SearchResponse, error) {
	f.gotSearch = req
	return f.search, f.err
}

type fakeAccount struct {
	resp *user.Response
	err  error
}

func (f *fakeAccount) Get(context.Context) (*user.Response, error) {
	return f.resp, f.err
}

func TestMercadoPagoGateway_CreatePreference(t *testing.T) {
	params := entities.PreferenceParams{
		Title:             "Mensalidade Academia Premium Plus",
		Description:       "Plano anual",
		Amount:            decimal.RequireFromString("149.9"),
		ExternalReference: "charge-1",
		PayerEmail:        "cliente@example.com",
		PayerName:         "Cliente",
		NotificationURL:   "https://app.example.com/v1/webhooks/mercado-pago?userId=t1",
	}

	t.Run("success uses init point", func(t *testing.T) {
		prefs := &fakePreferences{resp: &preference.Response{ID: "pref-1", InitPoint: "https://mp/init", SandboxInitPoint: "https://mp/sandbox"}}
		g := &MercadoPagoGateway{preferences: prefs, logger: zap.NewNop()}

		res := g.CreatePreference(context.Background(), params)
		if !res.Success || res.PreferenceID != "pref-1" || res.PaymentLink != "https://mp/init" {
			t.Fatalf("unexpected result %+v", res)
		}
		if prefs.got.ExternalReference != "charge-1" || prefs.got.NotificationURL != params.NotificationURL {
			t.Fatalf("unexpected request %+v", prefs.got)
		}
		if len(prefs.got.Items) != 1 || prefs.got.Items[0].UnitPrice != 149.9 || prefs.got.Items[0].CurrencyID != "BRL" || prefs.got.Items[0].Quantity != 1 {
			t.Fatalf("unexpected items %+v", prefs.got.Items)
		}
		if prefs.got.StatementDescriptor != "Mensalidade Academia P" {
			t.Fatalf("expected 22-char descriptor, got %q", prefs.got.StatementDescriptor)
		}
		if prefs.got.PaymentMethods == nil || prefs.got.PaymentMethods.Installments != 12 {
			t.Fatalf("expected 12 installments, got %+v", prefs.got.PaymentMethods)
		}
		if prefs.got.Payer == nil || prefs.got.Payer.Email != "cliente@example.com" {
			t.Fatalf("expected payer, got %+v", prefs.got.Payer)
		}
		if prefs.got.BackURLs != nil {
			t.Fatalf("expected no back urls without a base url, got %+v", prefs.got.BackURLs)
		}
		if prefs.got.AutoReturn != "approved" {
			t.Fatalf("expected auto return approved, got %q", prefs.got.AutoReturn)
		}
	})

	t.Run("sandbox fallback and back urls", func(t *testing.T) {
		prefs := &fakePreferences{resp: &preference.Response{ID: "pref-2", SandboxInitPoint: "https://mp/sandbox"}}
		g := &MercadoPagoGateway{preferences: prefs, logger: zap.NewNop()}
		p := params
		p.BackURL = "https://app.example.com/return"

		res := g.CreatePreference(context.Background(), p)
		if res.PaymentLink != "https://mp/sandbox" {
			t.Fatalf("expected sandbox link, got %q", res.PaymentLink)
		}
		if prefs.got.BackURLs == nil || prefs.got.BackURLs.Success != "https://app.example.com/return?status=success&id=charge-1" {
			t.Fatalf("unexpected back urls %+v", prefs.got.BackURLs)
		}
		if prefs.got.AutoReturn != "approved" {
			t.Fatalf("expected auto return approved, got %q", prefs.got.AutoReturn)
		}
	})

	t.Run("sdk error", func(t *testing.T) {
		prefs := &fakePreferences{err: errors.New(`{"message":"invalid access token","status":401}`)}
		g := &MercadoPagoGateway{preferences: prefs, logger: zap.NewNop()}

		res := g.CreatePreference(context.Background(), params)
		if res.Success || string(res.Error) != `{"message":"invalid access token","status":401}` {
			t.Fatalf("expected json error passthrough, got %+v", res)
		}
	})
}

func TestMercadoPagoGateway_GetPayment(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		pays := &fakePayments{resp: &payment.Response{ID: 123, Status: "approved", StatusDetail: "accredited", ExternalReference: "charge-1"}}
		g := &MercadoPagoGateway{payments: pays, logger: zap.NewNop()}

		res := g.GetPayment(context.Background(), "123")
		if !res.Success || res.Payment == nil {
			t.Fatalf("expected success, got %+v", res)
		}
		if pays.gotID != 123 {
			t.Fatalf("expected id 123, got %d", pays.gotID)
		}
		if res.Payment.ID != "123" || res.Payment.Status != "approved" || res.Payment.ExternalReference != "charge-1" {
			t.Fatalf("unexpected payment %+v", res.Payment)
		}
		if len(res.Payment.Raw) == 0 {
			t.Fatalf("expected raw body")
		}
	})

	t.Run("non numeric id", func(t *testing.T) {
		g := &MercadoPagoGateway{payments: &fakePayments{}, logger: zap.NewNop()}
		if res := g.GetPayment(context.Background(), "abc"); res.Success {
			t.Fatalf("expected failure")
		}
	})

	t.Run("sdk error", func(t *testing.T) {
		g := &MercadoPagoGateway{payments: &fakePayments{err: errors.New("not found")}, logger: zap.NewNop()}
		res := g.GetPayment(context.Background(), "9")
		if res.Success || string(res.Error) != `"not found"` {
			t.Fatalf("expected quoted error, got %+v", res)
		}
	})
}

func TestMercadoPagoGateway_SearchPaymentsByReference(t *testing.T) {
	pays := &fakePayments{search: &payment.SearchResponse{Results: []payment.Response{
		{ID: 1, Status: "rejected", ExternalReference: "charge-1"},
		{ID: 2, Status: "approved", ExternalReference: "charge-1"},
	}}}
	g := &MercadoPagoGateway{payments: pays, logger: zap.NewNop()}

	res := g.SearchPaymentsByReference(context.Background(), "charge-1")
	if !res.Success || len(res.Payments) != 2 {
		t.Fatalf("expected 2 payments, got %+v", res)
	}
	if pays.gotSearch.Filters["external_reference"] != "charge-1" {
		t.Fatalf("expected reference filter, got %+v", pays.gotSearch.Filters)
	}
	if res.Payments[1].ID != "2" || res.Payments[1].Status != "approved" {
		t.Fatalf("unexpected payment %+v", res.Payments[1])
	}
}

func TestMercadoPagoGateway_TestConnection(t *testing.T) {
	g := &MercadoPagoGateway{account: &fakeAccount{resp: &user.Response{}}, logger: zap.NewNop()}
	if res := g.TestConnection(context.Background()); !res.Success || len(res.Data) == 0 {
		t.Fatalf("expected success with data, got %+v", res)
	}

	g = &MercadoPagoGateway{account: &fakeAccount{err: errors.New("unauthorized")}, logger: zap.NewNop()}
	if res := g.TestConnection(context.Background()); res.Success {
		t.Fatalf("expected failure")
	}
}

func TestMercadoPagoGatewayFactory_MissingToken(t *testing.T) {
	p := NewMercadoPagoGatewayFactory(nil).New("  ")
	if res := p.CreatePreference(context.Background(), entities.PreferenceParams{}); res.Success || len(res.Error) == 0 {
		t.Fatalf("expected configuration error, got %+v", res)
	}
	if res := p.GetPayment(context.Background(), "1"); res.Success {
		t.Fatalf("expected configuration error")
	}
}
