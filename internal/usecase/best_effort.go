package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// bestEffort runs a side effect whose failure must not change the caller's
// control flow. Errors and panics are logged and dropped.
func bestEffort(ctx context.Context, logger *zap.Logger, name string, fn func(context.Context) error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("best-effort step panicked", zap.String("step", name), zap.Any("panic", r))
		}
	}()
	if err := fn(ctx); err != nil {
		logger.Warn("best-effort step failed", zap.String("step", name), zap.Error(err))
	}
}

func panicError(r any) error {
	if err, ok := r.(error); ok {
		return fmt.Errorf("panic: %w", err)
	}
	return fmt.Errorf("panic: %v", r)
}
