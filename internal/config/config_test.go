package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	chdir(t, t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Fatalf("expected port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Cron.Secret != "paguezap_cron_secret" {
		t.Fatalf("expected default cron secret, got %q", cfg.Cron.Secret)
	}
	if cfg.Batch.Size != 50 || cfg.Reconciliation.ScanLimit != 50 {
		t.Fatalf("expected limits of 50, got %d/%d", cfg.Batch.Size, cfg.Reconciliation.ScanLimit)
	}
	if cfg.Reconciliation.ScanWindow != 24*time.Hour {
		t.Fatalf("expected 24h scan window, got %s", cfg.Reconciliation.ScanWindow)
	}
	if cfg.WhatsApp.Template != "paymentswa" || cfg.WhatsApp.Language != "pt_BR" {
		t.Fatalf("unexpected whatsapp defaults: %+v", cfg.WhatsApp)
	}
	if cfg.Redis.Addr != "" || cfg.Redis.LockTTL != 2*time.Minute {
		t.Fatalf("unexpected redis defaults: %+v", cfg.Redis)
	}
	if cfg.Location().String() != "America/Sao_Paulo" {
		t.Fatalf("expected Sao Paulo location, got %s", cfg.Location())
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "paguezap.yaml")
	content := []byte("public_base_url: https://app.example.com/\ncron:\n  secret: from-file\nbatch:\n  size: 10\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(EnvConfigPath, path)
	t.Setenv("CRON_SECRET", "from-env")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Cron.Secret != "from-env" {
		t.Fatalf("expected env to win, got %q", cfg.Cron.Secret)
	}
	if cfg.Batch.Size != 10 {
		t.Fatalf("expected batch size from file, got %d", cfg.Batch.Size)
	}
	if got := cfg.WebhookURL("tenant-1"); got != "https://app.example.com/v1/webhooks/mercado-pago?userId=tenant-1" {
		t.Fatalf("unexpected webhook url %q", got)
	}
	if got := cfg.ReturnURL(); got != "https://app.example.com/payments/return" {
		t.Fatalf("unexpected return url %q", got)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	t.Setenv(EnvConfigPath, filepath.Join(t.TempDir(), "missing.yaml"))
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for missing explicit config file")
	}
}

func TestLoad_InvalidTimezone(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	chdir(t, t.TempDir())
	t.Setenv("TIMEZONE", "Mars/Olympus")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestConfig_ReturnURL(t *testing.T) {
	if got := (&Config{}).ReturnURL(); got != "" {
		t.Fatalf("expected empty return url without a base url, got %q", got)
	}
	if got := (&Config{PublicBaseURL: "https://app.example.com"}).ReturnURL(); got != "https://app.example.com/payments/return" {
		t.Fatalf("unexpected return url %q", got)
	}
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains: it changes
// the working directory for the duration of the test and restores it after.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir %s: %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Errorf("restore working directory: %v", err)
		}
	})
}
