package interfaces

import (
	"context"

	"paguezap/internal/domain/entities"
)

//go:generate mockgen -source=payment_link_provider_interface.go -destination=mocks/mock_payment_link_provider_interface.go -package=mock_interfaces

// IPaymentLinkProvider abstracts the payment processor (Mercado Pago).
// Failures are reported in the result, never as Go errors.
type IPaymentLinkProvider interface {
	CreatePreference(ctx context.Context, params entities.PreferenceParams) entities.PreferenceResult
	GetPayment(ctx context.Context, paymentID string) entities.PaymentResult
	SearchPaymentsByReference(ctx context.Context, externalReference string) entities.PaymentSearchResult
	TestConnection(ctx context.Context) entities.ConnectionResult
}

// IPaymentLinkProviderFactory builds a provider bound to one tenant's access token.
type IPaymentLinkProviderFactory interface {
	New(accessToken string) IPaymentLinkProvider
}
