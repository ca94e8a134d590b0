package interfaces

import (
	"context"

	"paguezap/internal/domain/entities"
)

//go:generate mockgen -source=log_writer_interface.go -destination=mocks/mock_log_writer_interface.go -package=mock_interfaces

// IAuditLogWriter appends outbound integration attempts.
type IAuditLogWriter interface {
	Append(ctx context.Context, entry entities.AuditLogEntry) error
}

// IReconciliationLogWriter appends inbound payment notifications.
type IReconciliationLogWriter interface {
	Append(ctx context.Context, entry entities.ReconciliationLog) error
}
