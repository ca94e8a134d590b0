package payments

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"paguezap/internal/domain/entities"
	"paguezap/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"github.com/mercadopago/sdk-go/pkg/user"
	"go.uber.org/zap"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing mercado pago access token")

const (
	currencyBRL                = "BRL"
	preferenceInstallments     = 12
	statementDescriptorMaxSize = 22
	referenceSearchLimit       = 30
	autoReturnApproved         = "approved"
)

type preferenceCreator interface {
	Create(ctx context.Context, request preference.Request) (*preference.Response, error)
}

type paymentReader interface {
	Get(ctx context.Context, id int) (*payment.Response, error)
	Search(ctx context.Context, request payment.SearchRequest) (*payment.SearchResponse, error)
}

type accountReader interface {
	Get(ctx context.Context) (*user.Response, error)
}

// MercadoPagoGatewayFactory builds a gateway per tenant access token.
type MercadoPagoGatewayFactory struct {
	logger *zap.Logger
}

var _ interfaces.IPaymentLinkProviderFactory = (*MercadoPagoGatewayFactory)(nil)

func NewMercadoPagoGatewayFactory(logger *zap.Logger) *MercadoPagoGatewayFactory {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MercadoPagoGatewayFactory{logger: logger}
}

func (f *MercadoPagoGatewayFactory) New(accessToken string) interfaces.IPaymentLinkProvider {
	g, err := NewMercadoPagoGateway(accessToken, f.logger)
	if err != nil {
		return &unconfiguredGateway{err: err}
	}
	return g
}

// MercadoPagoGateway wraps the official SDK clients for one seller account.
type MercadoPagoGateway struct {
	preferences preferenceCreator
	payments    paymentReader
	account     accountReader
	logger      *zap.Logger
}

var _ interfaces.IPaymentLinkProvider = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string, logger *zap.Logger) (*MercadoPagoGateway, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if strings.TrimSpace(accessToken) == "" {
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		logger.Warn("mercado pago sdk config failed", zap.Error(err))
		return nil, err
	}

	return &MercadoPagoGateway{
		preferences: preference.NewClient(cfg),
		payments:    payment.NewClient(cfg),
		account:     user.NewClient(cfg),
		logger:      logger,
	}, nil
}

// CreatePreference opens a hosted checkout for a single item.
func (g *MercadoPagoGateway) CreatePreference(ctx context.Context, params entities.PreferenceParams) entities.PreferenceResult {
	amount, _ := params.Amount.Round(2).Float64()
	req := preference.Request{
		Items: []preference.ItemRequest{{
			Title:       params.Title,
			Description: params.Description,
			Quantity:    1,
			UnitPrice:   amount,
			CurrencyID:  currencyBRL,
		}},
		ExternalReference:   params.ExternalReference,
		NotificationURL:     params.NotificationURL,
		StatementDescriptor: statementDescriptor(params.Title),
		PaymentMethods:      &preference.PaymentMethodsRequest{Installments: preferenceInstallments},
		AutoReturn:          autoReturnApproved,
	}
	if params.PayerEmail != "" || params.PayerName != "" {
		req.Payer = &preference.PayerRequest{Name: params.PayerName, Email: params.PayerEmail}
	}
	if params.BackURL != "" {
		req.BackURLs = &preference.BackURLsRequest{
			Success: backURL(params.BackURL, "success", params.ExternalReference),
			Pending: backURL(params.BackURL, "pending", params.ExternalReference),
			Failure: backURL(params.BackURL, "failure", params.ExternalReference),
		}
	}

	resp, err := g.preferences.Create(ctx, req)
	if err != nil {
		g.logger.Warn("mercado pago preference failed", zap.String("external_reference", params.ExternalReference), zap.Error(err))
		return entities.PreferenceResult{Error: sdkErrorBody(err)}
	}

	link := resp.InitPoint
	if link == "" {
		link = resp.SandboxInitPoint
	}
	return entities.PreferenceResult{Success: true, PreferenceID: resp.ID, PaymentLink: link}
}

// GetPayment fetches one payment by its numeric processor id.
func (g *MercadoPagoGateway) GetPayment(ctx context.Context, paymentID string) entities.PaymentResult {
	id, err := strconv.Atoi(strings.TrimSpace(paymentID))
	if err != nil {
		return entities.PaymentResult{Error: entities.ErrorBody(nil, "invalid payment id: "+paymentID)}
	}

	resp, err := g.payments.Get(ctx, id)
	if err != nil {
		g.logger.Warn("mercado pago payment lookup failed", zap.String("payment_id", paymentID), zap.Error(err))
		return entities.PaymentResult{Error: sdkErrorBody(err)}
	}

	p := toProcessorPayment(resp)
	return entities.PaymentResult{Success: true, Payment: &p}
}

// SearchPaymentsByReference lists payments whose external_reference matches.
func (g *MercadoPagoGateway) SearchPaymentsByReference(ctx context.Context, externalReference string) entities.PaymentSearchResult {
	resp, err := g.payments.Search(ctx, payment.SearchRequest{
		Filters: map[string]string{
			"external_reference": externalReference,
			"sort":               "date_created",
			"criteria":           "desc",
		},
		Limit: referenceSearchLimit,
	})
	if err != nil {
		g.logger.Warn("mercado pago payment search failed", zap.String("external_reference", externalReference), zap.Error(err))
		return entities.PaymentSearchResult{Error: sdkErrorBody(err)}
	}

	out := make([]entities.ProcessorPayment, 0, len(resp.Results))
	for i := range resp.Results {
		out = append(out, toProcessorPayment(&resp.Results[i]))
	}
	return entities.PaymentSearchResult{Success: true, Payments: out}
}

// TestConnection reads the seller account bound to the token.
func (g *MercadoPagoGateway) TestConnection(ctx context.Context) entities.ConnectionResult {
	resp, err := g.account.Get(ctx)
	if err != nil {
		return entities.ConnectionResult{Error: sdkErrorBody(err)}
	}
	b, err := json.Marshal(resp)
	if err != nil {
		return entities.ConnectionResult{Error: entities.ErrorBody(nil, err.Error())}
	}
	return entities.ConnectionResult{Success: true, Data: b}
}

func toProcessorPayment(resp *payment.Response) entities.ProcessorPayment {
	raw, err := json.Marshal(resp)
	if err != nil {
		raw = nil
	}
	return entities.ProcessorPayment{
		ID:                strconv.Itoa(resp.ID),
		Status:            resp.Status,
		StatusDetail:      resp.StatusDetail,
		ExternalReference: resp.ExternalReference,
		Raw:               raw,
	}
}

func backURL(base, status, ref string) string {
	return base + "?status=" + status + "&id=" + ref
}

func statementDescriptor(title string) string {
	r := []rune(title)
	if len(r) > statementDescriptorMaxSize {
		return string(r[:statementDescriptorMaxSize])
	}
	return title
}

// The SDK folds the HTTP response body into the error text.
func sdkErrorBody(err error) json.RawMessage {
	return entities.ErrorBody([]byte(err.Error()), "")
}

// unconfiguredGateway reports a construction failure on every call.
type unconfiguredGateway struct {
	err error
}

func (u *unconfiguredGateway) CreatePreference(context.Context, entities.PreferenceParams) entities.PreferenceResult {
	return entities.PreferenceResult{Error: entities.ErrorBody(nil, u.err.Error())}
}

func (u *unconfiguredGateway) GetPayment(context.Context, string) entities.PaymentResult {
	return entities.PaymentResult{Error: entities.ErrorBody(nil, u.err.Error())}
}

func (u *unconfiguredGateway) SearchPaymentsByReference(context.Context, string) entities.PaymentSearchResult {
	return entities.PaymentSearchResult{Error: entities.ErrorBody(nil, u.err.Error())}
}

func (u *unconfiguredGateway) TestConnection(context.Context) entities.ConnectionResult {
	return entities.ConnectionResult{Error: entities.ErrorBody(nil, u.err.Error())}
}
