package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"paguezap/internal/app"
	"paguezap/internal/config"

	_ "github.com/joho/godotenv/autoload"
)

var Version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rootCmd := newRootCmd(buildServices)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// buildServices wires the same use cases the HTTP server runs.
func buildServices(ctx context.Context) (*services, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger, err := app.NewLogger()
	if err != nil {
		return nil, err
	}
	container, err := app.Build(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	return &services{
		lifecycle:      container.ChargeLifecycle,
		reconciliation: container.Reconciliation,
		settings:       container.Settings,
		close: func() error {
			_ = logger.Sync()
			return container.Close()
		},
	}, nil
}
