package interfaces

import (
	"context"

	"paguezap/internal/domain/entities"
)

//go:generate mockgen -source=tenant_repository_interface.go -destination=mocks/mock_tenant_repository_interface.go -package=mock_interfaces

// ITenantConfigRepository reads tenant settings. Unknown ids yield a zero value and nil error.
type ITenantConfigRepository interface {
	GetByID(ctx context.Context, id string) (entities.TenantConfig, error)
}
