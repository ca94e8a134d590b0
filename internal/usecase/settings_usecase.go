package usecase

//go:generate mockgen -source=settings_usecase.go -destination=../adapter/http/handlers/mocks/mock_settings_usecase.go -package=mocks

import (
	"context"
	"errors"
	"strings"

	"paguezap/internal/domain/entities"
	"paguezap/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrMissingCredentials = errors.New("missing credentials")
	ErrConnectionFailed   = errors.New("connection failed")
)

// ISettingsUseCase validates integration credentials before a tenant saves them.
type ISettingsUseCase interface {
	TestWhatsApp(ctx context.Context, creds entities.MessagingCredentials) (entities.ConnectionResult, error)
	TestMercadoPago(ctx context.Context, accessToken string) (entities.ConnectionResult, error)
}

type SettingsUseCase struct {
	messaging interfaces.IMessagingGatewayFactory
	payments  interfaces.IPaymentLinkProviderFactory
	logger    *zap.Logger
}

var _ ISettingsUseCase = (*SettingsUseCase)(nil)

func NewSettingsUseCase(messaging interfaces.IMessagingGatewayFactory, payments interfaces.IPaymentLinkProviderFactory, logger *zap.Logger) *SettingsUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SettingsUseCase{messaging: messaging, payments: payments, logger: logger}
}

func (u *SettingsUseCase) TestWhatsApp(ctx context.Context, creds entities.MessagingCredentials) (entities.ConnectionResult, error) {
	creds.PhoneNumberID = strings.TrimSpace(creds.PhoneNumberID)
	creds.AccessToken = strings.TrimSpace(creds.AccessToken)
	if creds.PhoneNumberID == "" || creds.AccessToken == "" {
		return entities.ConnectionResult{}, ErrMissingCredentials
	}

	res := u.messaging.New(creds).TestConnection(ctx)
	if !res.Success {
		u.logger.Info("whatsapp connection test failed", zap.String("phone_number_id", creds.PhoneNumberID))
		return res, ErrConnectionFailed
	}
	return res, nil
}

func (u *SettingsUseCase) TestMercadoPago(ctx context.Context, accessToken string) (entities.ConnectionResult, error) {
	accessToken = strings.TrimSpace(accessToken)
	if accessToken == "" {
		return entities.ConnectionResult{}, ErrMissingCredentials
	}

	res := u.payments.New(accessToken).TestConnection(ctx)
	if !res.Success {
		u.logger.Info("mercado pago connection test failed")
		return res, ErrConnectionFailed
	}
	return res, nil
}
