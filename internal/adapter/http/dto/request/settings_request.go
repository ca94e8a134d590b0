package request

// TestWhatsAppRequest carries credentials to validate before they are saved.
type TestWhatsAppRequest struct {
	PhoneNumberID string `json:"phoneNumberId" binding:"required"`
	AccessToken   string `json:"accessToken" binding:"required"`
}

type TestMercadoPagoRequest struct {
	AccessToken string `json:"accessToken" binding:"required"`
}
