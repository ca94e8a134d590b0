package interfaces

import (
	"context"

	"paguezap/internal/domain/entities"
)

//go:generate mockgen -source=charge_repository_interface.go -destination=mocks/mock_charge_repository_interface.go -package=mock_interfaces

// IChargeRepository abstracts DynamoDB persistence for Charge.
//
// GetByID returns a zero Charge and a nil error when the id is unknown.
// UpdateFields applies the update only while the stored status equals
// expectedStatus; an empty expectedStatus means unconditional. A lost
// condition is reported as ErrStatusConflict.

type IChargeRepository interface {
	Create(ctx context.Context, c entities.Charge) (entities.Charge, error)
	GetByID(ctx context.Context, id string) (entities.Charge, error)
	UpdateFields(ctx context.Context, id string, update entities.ChargeUpdate, expectedStatus entities.ChargeStatus) (entities.Charge, error)
	FindMany(ctx context.Context, filter entities.ChargeFilter) ([]entities.Charge, error)
}
