package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const DefaultPath = "config.yaml"

type HTTPServer struct {
	Port string `mapstructure:"port"`
}

type DbServer struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Pass     string `mapstructure:"pass"`
	Name     string `mapstructure:"name"`
	MaxConns int32  `mapstructure:"max_conns"`
}

func (config *DbServer) GetConnectionStr() string {
	return fmt.Sprintf(
		"user=%s password=%s host=%s port=%s dbname=%s sslmode=disable pool_max_conns=10",
		config.User, config.Pass, config.Host, config.Port, config.Name,
	)
}

type HTTPClient struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

type Logging struct {
	Level string `mapstructure:"level"`
}

// Ledger names the two identities the service acts with.
type Ledger struct {
	Admin     string `mapstructure:"admin"`
	Custodian string `mapstructure:"custodian"`
}

const (
	AssetLedgerPostgres = "postgres"
	AssetLedgerHTTP     = "http"
)

type AssetLedger struct {
	Driver  string `mapstructure:"driver"`
	BaseURL string `mapstructure:"base_url"`
}

type Scheduler struct {
	SnapshotJobDurationSec int `mapstructure:"snapshot_job_duration_sec"`
}

type Cache struct {
	ReceiptMaxItems   int64 `mapstructure:"receipt_max_items"`
	ReceiptTTLSeconds int   `mapstructure:"receipt_ttl_seconds"`
}

func (c Cache) ReceiptTTL() time.Duration {
	return time.Duration(c.ReceiptTTLSeconds) * time.Second
}

type AppConfig struct {
	HTTPServer  HTTPServer  `mapstructure:"http_server"`
	DbServer    DbServer    `mapstructure:"db_server"`
	HTTPClient  HTTPClient  `mapstructure:"http_client"`
	Logging     Logging     `mapstructure:"logging"`
	Ledger      Ledger      `mapstructure:"ledger"`
	AssetLedger AssetLedger `mapstructure:"asset_ledger"`
	Scheduler   Scheduler   `mapstructure:"scheduler"`
	Cache       Cache       `mapstructure:"cache"`
}

func (cfg *AppConfig) validate() error {
	if cfg.Ledger.Admin == "" {
		return errors.New("ledger admin identity is required")
	}
	if cfg.Ledger.Custodian == "" {
		return errors.New("ledger custodian identity is required")
	}
	if cfg.Ledger.Admin == cfg.Ledger.Custodian {
		return errors.New("ledger admin and custodian must be different identities")
	}
	switch cfg.AssetLedger.Driver {
	case AssetLedgerPostgres:
	case AssetLedgerHTTP:
		if cfg.AssetLedger.BaseURL == "" {
			return errors.New("asset ledger base url is required for the http driver")
		}
	default:
		return fmt.Errorf("unknown asset ledger driver %q", cfg.AssetLedger.Driver)
	}
	return nil
}

// Init reads the yaml file at path, then applies .env and environment overrides.
func Init(path string) (*AppConfig, error) {
	var cfg AppConfig

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetDefault("http_server.port", "8080")
	v.SetDefault("db_server.max_conns", 10)
	v.SetDefault("http_client.timeout_seconds", 10)
	v.SetDefault("logging.level", "info")
	v.SetDefault("asset_ledger.driver", AssetLedgerPostgres)
	v.SetDefault("scheduler.snapshot_job_duration_sec", 30)
	v.SetDefault("cache.receipt_max_items", 10_000)
	v.SetDefault("cache.receipt_ttl_seconds", 600)

	// db server env vars
	_ = v.BindEnv("db_server.host", "DB_HOST")
	_ = v.BindEnv("db_server.port", "DB_PORT")
	_ = v.BindEnv("db_server.user", "DB_USER")
	_ = v.BindEnv("db_server.pass", "DB_PASS")
	_ = v.BindEnv("db_server.name", "DB_NAME")
	_ = v.BindEnv("db_server.max_conns", "DB_MAX_CONNS")

	// http client env vars
	_ = v.BindEnv("http_client.timeout_seconds", "HTTP_CLIENT_TIMEOUT_SECONDS")

	// ledger env vars
	_ = v.BindEnv("http_server.port", "HTTP_PORT")
	_ = v.BindEnv("logging.level", "LOG_LEVEL")
	_ = v.BindEnv("ledger.admin", "LEDGER_ADMIN")
	_ = v.BindEnv("ledger.custodian", "LEDGER_CUSTODIAN")
	_ = v.BindEnv("asset_ledger.driver", "ASSET_LEDGER_DRIVER")
	_ = v.BindEnv("asset_ledger.base_url", "ASSET_LEDGER_BASE_URL")

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}
