package interfaces

import "context"

//go:generate mockgen -source=charge_locker_interface.go -destination=mocks/mock_charge_locker_interface.go -package=mock_interfaces

// IChargeLocker serializes deliveries of the same charge across processes.
// Acquire reports false without error when another holder owns the lock.
type IChargeLocker interface {
	Acquire(ctx context.Context, chargeID string) (release func(), acquired bool, err error)
}
