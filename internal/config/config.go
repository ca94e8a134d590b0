package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvConfigPath points at an optional YAML file. When unset, ./config.yaml is tried.
const EnvConfigPath = "PAGUEZAP_CONFIG"

const defaultConfigFile = "config.yaml"

const returnPath = "/payments/return"

type Config struct {
	Server         ServerConfig         `mapstructure:"server"`
	PublicBaseURL  string               `mapstructure:"public_base_url"`
	Cron           CronConfig           `mapstructure:"cron"`
	Batch          BatchConfig          `mapstructure:"batch"`
	Reconciliation ReconciliationConfig `mapstructure:"reconciliation"`
	Timezone       string               `mapstructure:"timezone"`
	WhatsApp       WhatsAppConfig       `mapstructure:"whatsapp"`
	Pix            PixConfig            `mapstructure:"pix"`
	DynamoDB       DynamoDBConfig       `mapstructure:"dynamodb"`
	Redis          RedisConfig          `mapstructure:"redis"`
	HTTP           HTTPConfig           `mapstructure:"http"`
}

type ServerConfig struct {
	Port int `mapstructure:"port"`
}

type CronConfig struct {
	Secret string `mapstructure:"secret"`
}

type BatchConfig struct {
	Size int `mapstructure:"size"`
}

type ReconciliationConfig struct {
	ScanLimit  int           `mapstructure:"scan_limit"`
	ScanWindow time.Duration `mapstructure:"scan_window"`
}

type WhatsAppConfig struct {
	BaseURL  string `mapstructure:"base_url"`
	Template string `mapstructure:"template"`
	Language string `mapstructure:"language"`
}

type PixConfig struct {
	City string `mapstructure:"city"`
}

type DynamoDBConfig struct {
	Region              string `mapstructure:"region"`
	Endpoint            string `mapstructure:"endpoint"`
	ChargesTable        string `mapstructure:"charges_table"`
	TenantsTable        string `mapstructure:"tenants_table"`
	AuditLogsTable      string `mapstructure:"audit_logs_table"`
	WebhookLogsTable    string `mapstructure:"webhook_logs_table"`
	StatusNextSendIndex string `mapstructure:"status_next_send_index"`
	StatusCreatedIndex  string `mapstructure:"status_created_index"`
}

type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	LockTTL  time.Duration `mapstructure:"lock_ttl"`
}

type HTTPConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("public_base_url", "http://localhost:3000")
	v.SetDefault("cron.secret", "paguezap_cron_secret")
	v.SetDefault("batch.size", 50)
	v.SetDefault("reconciliation.scan_limit", 50)
	v.SetDefault("reconciliation.scan_window", 24*time.Hour)
	v.SetDefault("timezone", "America/Sao_Paulo")
	v.SetDefault("whatsapp.base_url", "https://graph.facebook.com/v18.0")
	v.SetDefault("whatsapp.template", "paymentswa")
	v.SetDefault("whatsapp.language", "pt_BR")
	v.SetDefault("pix.city", "SAO PAULO")
	v.SetDefault("dynamodb.region", "us-east-1")
	v.SetDefault("dynamodb.endpoint", "")
	v.SetDefault("dynamodb.charges_table", "charges")
	v.SetDefault("dynamodb.tenants_table", "tenants")
	v.SetDefault("dynamodb.audit_logs_table", "api_logs")
	v.SetDefault("dynamodb.webhook_logs_table", "webhook_logs")
	v.SetDefault("dynamodb.status_next_send_index", "status-next_send_date-index")
	v.SetDefault("dynamodb.status_created_index", "status-created_at-index")
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.lock_ttl", 2*time.Minute)
	v.SetDefault("http.timeout", 15*time.Second)
}

// Load resolves configuration from defaults, an optional YAML file and the
// environment (SERVER_PORT, CRON_SECRET, REDIS_ADDR, ...), in increasing precedence.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("dynamodb.region", "DYNAMODB_REGION", "AWS_REGION")
	_ = v.BindEnv("dynamodb.endpoint", "DYNAMODB_ENDPOINT")

	path := os.Getenv(EnvConfigPath)
	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}
	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if explicit {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Batch.Size <= 0 {
		return errors.New("batch.size must be positive")
	}
	if c.Reconciliation.ScanLimit <= 0 {
		return errors.New("reconciliation.scan_limit must be positive")
	}
	if c.Reconciliation.ScanWindow <= 0 {
		return errors.New("reconciliation.scan_window must be positive")
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("timezone %q: %w", c.Timezone, err)
	}
	return nil
}

// Location returns the configured business timezone, UTC if it cannot be loaded.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// WebhookURL is the notification URL handed to the payment processor for a tenant.
func (c *Config) WebhookURL(tenantID string) string {
	return strings.TrimRight(c.PublicBaseURL, "/") + "/v1/webhooks/mercado-pago?userId=" + tenantID
}

// ReturnURL is where the hosted checkout sends the payer back to.
// Empty when no public base URL is configured.
func (c *Config) ReturnURL() string {
	base := strings.TrimRight(c.PublicBaseURL, "/")
	if base == "" {
		return ""
	}
	return base + returnPath
}
