package messaging

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"paguezap/internal/domain/entities"
	"paguezap/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	DefaultBaseURL  = "https://graph.facebook.com/v18.0"
	DefaultTemplate = "paymentswa"
	DefaultLanguage = "pt_BR"

	minorUnitOffset = 100
	orderRetailerID = "1234567"
)

var decimalHundred = decimal.NewFromInt(minorUnitOffset)

// Options configures every gateway built by the factory.
type Options struct {
	BaseURL  string
	Template string
	Language string
	Timeout  time.Duration
}

// WhatsAppGatewayFactory builds per-tenant gateways sharing one HTTP client.
type WhatsAppGatewayFactory struct {
	opts       Options
	httpClient *http.Client
	logger     *zap.Logger
}

var _ interfaces.IMessagingGatewayFactory = (*WhatsAppGatewayFactory)(nil)

func NewWhatsAppGatewayFactory(opts Options, httpClient *http.Client, logger *zap.Logger) *WhatsAppGatewayFactory {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Template == "" {
		opts.Template = DefaultTemplate
	}
	if opts.Language == "" {
		opts.Language = DefaultLanguage
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 15 * time.Second
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WhatsAppGatewayFactory{opts: opts, httpClient: httpClient, logger: logger}
}

func (f *WhatsAppGatewayFactory) New(creds entities.MessagingCredentials) interfaces.IMessagingGateway {
	return &WhatsAppGateway{
		opts:       f.opts,
		creds:      creds,
		httpClient: f.httpClient,
		logger:     f.logger.With(zap.String("phone_number_id", creds.PhoneNumberID)),
	}
}

// WhatsAppGateway talks to the WhatsApp Cloud API on behalf of one phone number.
type WhatsAppGateway struct {
	opts       Options
	creds      entities.MessagingCredentials
	httpClient *http.Client
	logger     *zap.Logger
}

var _ interfaces.IMessagingGateway = (*WhatsAppGateway)(nil)

type money struct {
	Value  int64 `json:"value"`
	Offset int   `json:"offset"`
}

type orderItem struct {
	RetailerID string `json:"retailer_id"`
	Name       string `json:"name"`
	Amount     money  `json:"amount"`
	Quantity   int    `json:"quantity"`
}

type order struct {
	Status   string      `json:"status"`
	Items    []orderItem `json:"items"`
	Subtotal money       `json:"subtotal"`
}

type pixDynamicCode struct {
	Code         string `json:"code"`
	MerchantName string `json:"merchant_name"`
	Key          string `json:"key"`
	KeyType      string `json:"key_type"`
}

type paymentLink struct {
	URI string `json:"uri"`
}

type paymentSetting struct {
	Type           string          `json:"type"`
	PixDynamicCode *pixDynamicCode `json:"pix_dynamic_code,omitempty"`
	PaymentLink    *paymentLink    `json:"payment_link,omitempty"`
}

type orderDetails struct {
	ReferenceID     string           `json:"reference_id"`
	Type            string           `json:"type"`
	PaymentType     string           `json:"payment_type"`
	PaymentSettings []paymentSetting `json:"payment_settings"`
	Currency        string           `json:"currency"`
	TotalAmount     money            `json:"total_amount"`
	Order           order            `json:"order"`
}

type componentParameter struct {
	Type   string        `json:"type"`
	Text   string        `json:"text,omitempty"`
	Image  *imageLink    `json:"image,omitempty"`
	Action *buttonAction `json:"action,omitempty"`
}

type imageLink struct {
	Link string `json:"link"`
}

type buttonAction struct {
	OrderDetails orderDetails `json:"order_details"`
}

type templateComponent struct {
	Type       string               `json:"type"`
	SubType    string               `json:"sub_type,omitempty"`
	Index      *int                 `json:"index,omitempty"`
	Parameters []componentParameter `json:"parameters"`
}

type templateLanguage struct {
	Policy string `json:"policy"`
	Code   string `json:"code"`
}

type messageTemplate struct {
	Name       string              `json:"name"`
	Language   templateLanguage    `json:"language"`
	Components []templateComponent `json:"components"`
}

type sendMessageRequest struct {
	MessagingProduct string          `json:"messaging_product"`
	To               string          `json:"to"`
	Type             string          `json:"type"`
	Template         messageTemplate `json:"template"`
}

type sendMessageResponse struct {
	Messages []struct {
		ID string `json:"id"`
	} `json:"messages"`
}

func (g *WhatsAppGateway) buildRequest(msg entities.PaymentMessage) sendMessageRequest {
	cents := msg.Amount.Mul(decimalHundred).Round(0).IntPart()
	amount := money{Value: cents, Offset: minorUnitOffset}

	settings := []paymentSetting{{
		Type: "pix_dynamic_code",
		PixDynamicCode: &pixDynamicCode{
			Code:         msg.PixCode,
			MerchantName: msg.MerchantName,
			Key:          msg.PixKey,
			KeyType:      msg.PixKeyType,
		},
	}}
	if msg.MercadoPagoLink != "" {
		settings = append(settings, paymentSetting{
			Type:        "payment_link",
			PaymentLink: &paymentLink{URI: msg.MercadoPagoLink},
		})
	}

	buttonIndex := 0
	return sendMessageRequest{
		MessagingProduct: "whatsapp",
		To:               msg.To,
		Type:             "template",
		Template: messageTemplate{
			Name:     g.opts.Template,
			Language: templateLanguage{Policy: "deterministic", Code: g.opts.Language},
			Components: []templateComponent{
				{
					Type:       "header",
					Parameters: []componentParameter{{Type: "image", Image: &imageLink{Link: msg.ImageURL}}},
				},
				{
					Type: "body",
					Parameters: []componentParameter{
						{Type: "text", Text: msg.CustomerName},
						{Type: "text", Text: msg.ProductName},
					},
				},
				{
					Type:    "button",
					SubType: "order_details",
					Index:   &buttonIndex,
					Parameters: []componentParameter{{
						Type: "action",
						Action: &buttonAction{OrderDetails: orderDetails{
							ReferenceID:     msg.PixReferenceID,
							Type:            "digital-goods",
							PaymentType:     "br",
							PaymentSettings: settings,
							Currency:        "BRL",
							TotalAmount:     amount,
							Order: order{
								Status: "pending",
								Items: []orderItem{{
									RetailerID: orderRetailerID,
									Name:       msg.ProductName,
									Amount:     amount,
									Quantity:   1,
								}},
								Subtotal: amount,
							},
						}},
					}},
				},
			},
		},
	}
}

// SendPaymentMessage sends the payment template to msg.To.
func (g *WhatsAppGateway) SendPaymentMessage(ctx context.Context, msg entities.PaymentMessage) entities.MessageResult {
	body, err := json.Marshal(g.buildRequest(msg))
	if err != nil {
		return entities.MessageResult{Error: entities.ErrorBody(nil, err.Error())}
	}

	status, respBody, err := g.do(ctx, http.MethodPost, "/messages", body)
	if err != nil {
		g.logger.Warn("whatsapp send failed", zap.Error(err))
		return entities.MessageResult{Error: entities.ErrorBody(nil, err.Error())}
	}
	if status >= http.StatusMultipleChoices {
		g.logger.Warn("whatsapp send rejected", zap.Int("status", status))
		return entities.MessageResult{Error: entities.ErrorBody(respBody, http.StatusText(status))}
	}

	var parsed sendMessageResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil || len(parsed.Messages) == 0 || parsed.Messages[0].ID == "" {
		return entities.MessageResult{Error: entities.ErrorBody(respBody, "missing message id in response"), Data: entities.ErrorBody(respBody, "")}
	}

	g.logger.Info("whatsapp message accepted", zap.String("message_id", parsed.Messages[0].ID))
	return entities.MessageResult{Success: true, MessageID: parsed.Messages[0].ID, Data: json.RawMessage(respBody)}
}

// TestConnection reads the phone number resource to validate the credentials.
func (g *WhatsAppGateway) TestConnection(ctx context.Context) entities.ConnectionResult {
	status, respBody, err := g.do(ctx, http.MethodGet, "", nil)
	if err != nil {
		return entities.ConnectionResult{Error: entities.ErrorBody(nil, err.Error())}
	}
	if status >= http.StatusMultipleChoices {
		return entities.ConnectionResult{Error: entities.ErrorBody(respBody, http.StatusText(status))}
	}
	return entities.ConnectionResult{Success: true, Data: entities.ErrorBody(respBody, "")}
}

func (g *WhatsAppGateway) do(ctx context.Context, method, suffix string, body []byte) (int, []byte, error) {
	url := fmt.Sprintf("%s/%s%s", strings.TrimRight(g.opts.BaseURL, "/"), g.creds.PhoneNumberID, suffix)

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Authorization", "Bearer "+g.creds.AccessToken)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, respBody, nil
}
