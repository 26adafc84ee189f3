package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"stableswap/internal/adapters"
	"stableswap/internal/adapters/cache"
	"stableswap/internal/adapters/httpclient"
	"stableswap/internal/adapters/postgres"
	"stableswap/internal/api"
	"stableswap/internal/config"
	"stableswap/internal/domain"
	"stableswap/internal/ledger"
	"stableswap/internal/ledger/handler"
	"stableswap/internal/platform/db"
	httpserver "stableswap/internal/platform/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

const startupTimeout = 10 * time.Second

// Run wires the application components, starts HTTP server and scheduler
func Run(configPath string) error {
	appCfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	// Root context bound to OS signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Bounded context for startup operations (DB connect, migrations, initial reads)
	startupCtx, cancel := context.WithTimeout(ctx, startupTimeout)
	defer cancel()

	// DB pool
	pool, err := db.CreatePoolAndPing(startupCtx, appCfg.DbServer)
	if err != nil {
		logrus.WithError(err).Error("Error connecting to db")
		return err
	}
	defer pool.Close()
	logrus.Info("✅ Postgres connection successful")

	if err = db.Migrate(startupCtx, pool); err != nil {
		logrus.WithError(err).Error("Error migrating db")
		return err
	}
	logrus.Info("✅ Migrations applied")

	// Asset ledger
	assets, catalog, err := newAssetLedger(appCfg, pool)
	if err != nil {
		return err
	}
	logrus.Infof("✅ Asset ledger driver %q ready", appCfg.AssetLedger.Driver)

	// Load supported assets
	supportedAssets, err := loadSupportedAssets(startupCtx, catalog)
	if err != nil || len(supportedAssets) == 0 {
		if err == nil {
			err = errors.New("no assets registered with the asset ledger")
		}
		logrus.WithError(err).Error("Failed to load supported assets")
		return err
	}
	logrus.Info("✅ Supported assets loaded")

	receipts, err := cache.NewReceiptCache(appCfg.Cache.ReceiptMaxItems)
	if err != nil {
		return err
	}
	defer receipts.Close()

	// Ledger
	validator := ledger.NewValidator(supportedAssets)
	swapLedger := ledger.NewLedger(
		domain.Identity(appCfg.Ledger.Admin),
		domain.Identity(appCfg.Ledger.Custodian),
		ledger.Deps{
			Assets:     assets,
			Catalog:    catalog,
			Supported:  validator,
			Rates:      postgres.NewRateRepository(pool),
			Journal:    postgres.NewOperationJournal(pool),
			Receipts:   receipts,
			ReceiptTTL: appCfg.Cache.ReceiptTTL(),
		},
	)
	restored, err := swapLedger.Restore(startupCtx)
	if err != nil {
		logrus.WithError(err).Error("Failed to restore swap rates")
		return err
	}
	logrus.Infof("✅ Ledger ready, %d swap rates restored", restored)

	snapshotRepo := postgres.NewSnapshotRepository(pool)
	scheduler := ledger.NewScheduler(swapLedger, snapshotRepo, time.Duration(appCfg.Scheduler.SnapshotJobDurationSec)*time.Second)
	// Ensure scheduler stops before DB pool closes
	defer func() {
		if shutDownErr := scheduler.Shutdown(); shutDownErr != nil {
			logrus.Errorf("Scheduler shutdown error: %v", shutDownErr)
		}
	}()
	// Start scheduler tied to root context
	if startErr := scheduler.Start(ctx); startErr != nil {
		logrus.WithError(startErr).Error("Failed to start scheduler")
		return startErr
	}
	logrus.Info("✅ Scheduler activation successful")

	// Handlers and router
	ledgerHandler := handler.NewLedgerHandler(swapLedger, validator, snapshotRepo)
	router := api.NewRouter(ledgerHandler)

	logrus.Info("Starting http server")
	// Block until context is canceled, then perform graceful shutdown.
	if serverErr := httpserver.Start(ctx, appCfg.HTTPServer, router); serverErr != nil {
		// Cancel the root context to stop scheduler and other in-flight work
		stop()
		logrus.Errorf("HTTP server error: %v", serverErr)
		return serverErr
	}
	return nil
}

// Migrate applies pending migrations and exits.
func Migrate(configPath string) error {
	appCfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	pool, err := db.CreatePoolAndPing(ctx, appCfg.DbServer)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err = db.Migrate(ctx, pool); err != nil {
		return err
	}
	logrus.Info("✅ Migrations applied")
	return nil
}

// WithAssetBank opens the postgres asset bank for one administrative command.
func WithAssetBank(configPath string, fn func(ctx context.Context, bank *postgres.AssetBank) error) error {
	appCfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	pool, err := db.CreatePoolAndPing(ctx, appCfg.DbServer)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err = db.Migrate(ctx, pool); err != nil {
		return err
	}
	return fn(ctx, postgres.NewAssetBank(pool))
}

func loadConfig(configPath string) (*config.AppConfig, error) {
	appCfg, err := config.Init(configPath)
	if err != nil {
		return nil, err
	}
	// Logger
	logrus.SetOutput(os.Stdout)
	cfgLevel := appCfg.Logging.Level
	if parsedLvl, parseErr := logrus.ParseLevel(cfgLevel); parseErr != nil {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(parsedLvl)
	}
	logrus.Info("✅ Config initialization successful")
	return appCfg, nil
}

type assetLedger interface {
	adapters.AssetTransfer
	adapters.AssetCatalog
}

func newAssetLedger(appCfg *config.AppConfig, pool *pgxpool.Pool) (adapters.AssetTransfer, adapters.AssetCatalog, error) {
	var l assetLedger
	switch appCfg.AssetLedger.Driver {
	case config.AssetLedgerHTTP:
		// Base HTTP client (configurable timeout)
		httpTimeout := time.Duration(appCfg.HTTPClient.TimeoutSeconds) * time.Second
		if httpTimeout <= 0 {
			httpTimeout = 10 * time.Second
		}
		baseURL := strings.TrimSuffix(appCfg.AssetLedger.BaseURL, "/")
		l = httpclient.NewAssetLedgerClient(&http.Client{Timeout: httpTimeout}, baseURL)
	case config.AssetLedgerPostgres:
		l = postgres.NewAssetBank(pool)
	default:
		return nil, nil, fmt.Errorf("unknown asset ledger driver %q", appCfg.AssetLedger.Driver)
	}
	return l, l, nil
}

// loadSupportedAssets loads registered asset handles from the asset ledger
func loadSupportedAssets(ctx context.Context, catalog adapters.AssetCatalog) (map[domain.AssetHandle]struct{}, error) {
	listed, err := catalog.ListAssets(ctx)
	if err != nil {
		return nil, err
	}

	m := make(map[domain.AssetHandle]struct{}, len(listed))
	for _, a := range listed {
		m[a] = struct{}{}
	}
	return m, nil
}
