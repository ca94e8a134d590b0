package interfaces

import (
	"context"

	"paguezap/internal/domain/entities"
)

//go:generate mockgen -source=messaging_gateway_interface.go -destination=mocks/mock_messaging_gateway_interface.go -package=mock_interfaces

// IMessagingGateway delivers payment messages through the tenant's WhatsApp number.
// Failures are reported in the result, never as Go errors.
type IMessagingGateway interface {
	SendPaymentMessage(ctx context.Context, msg entities.PaymentMessage) entities.MessageResult
	TestConnection(ctx context.Context) entities.ConnectionResult
}

// IMessagingGatewayFactory builds a short-lived gateway bound to one tenant's credentials.
type IMessagingGatewayFactory interface {
	New(creds entities.MessagingCredentials) IMessagingGateway
}
