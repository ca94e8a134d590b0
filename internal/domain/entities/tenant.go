package entities

// TenantConfig is the subset of the account record the billing core reads.
// It is owned by account settings; the core never writes it.
type TenantConfig struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`

	WhatsAppPhoneNumberID string `json:"whatsapp_phone_number_id,omitempty"`
	WhatsAppToken         string `json:"whatsapp_token,omitempty"`

	PixKey       string `json:"pix_key,omitempty"`
	PixKeyType   string `json:"pix_key_type,omitempty"`
	MerchantName string `json:"merchant_name,omitempty"`

	MercadoPagoToken string `json:"mercado_pago_token,omitempty"`
	DefaultImageURL  string `json:"default_image_url,omitempty"`
}

const DefaultPixKeyType = "EVP"

func (t TenantConfig) HasMessagingCredentials() bool {
	return t.WhatsAppPhoneNumberID != "" && t.WhatsAppToken != ""
}

func (t TenantConfig) HasPixCredentials() bool {
	return t.PixKey != "" && t.MerchantName != ""
}

func (t TenantConfig) HasProcessorCredentials() bool {
	return t.MercadoPagoToken != ""
}

func (t TenantConfig) MessagingCredentials() MessagingCredentials {
	return MessagingCredentials{PhoneNumberID: t.WhatsAppPhoneNumberID, AccessToken: t.WhatsAppToken}
}

func (t TenantConfig) EffectivePixKeyType() string {
	if t.PixKeyType != "" {
		return t.PixKeyType
	}
	return DefaultPixKeyType
}
