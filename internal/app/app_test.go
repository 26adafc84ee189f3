package app

import (
	"context"
	"errors"
	"testing"

	assetmock "stableswap/internal/adapters/mock"
	"stableswap/internal/config"
	"stableswap/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestLoadSupportedAssets(t *testing.T) {
	bank := assetmock.NewAssetLedger("usdc", "eurc")

	got, err := loadSupportedAssets(context.Background(), bank)
	require.NoError(t, err)
	require.Equal(t, map[domain.AssetHandle]struct{}{"usdc": {}, "eurc": {}}, got)
}

func TestLoadSupportedAssets_Error(t *testing.T) {
	bank := assetmock.NewAssetLedger("usdc")
	bank.FailNext(assetmock.OpListAssets, errors.New("ledger down"))

	_, err := loadSupportedAssets(context.Background(), bank)
	require.Error(t, err)
}

func TestNewAssetLedger_Drivers(t *testing.T) {
	cfg := &config.AppConfig{AssetLedger: config.AssetLedger{Driver: config.AssetLedgerHTTP, BaseURL: "http://ledger.local/"}}
	transfer, catalog, err := newAssetLedger(cfg, nil)
	require.NoError(t, err)
	require.NotNil(t, transfer)
	require.Same(t, transfer, catalog)

	cfg.AssetLedger.Driver = config.AssetLedgerPostgres
	transfer, _, err = newAssetLedger(cfg, nil)
	require.NoError(t, err)
	require.NotNil(t, transfer)

	cfg.AssetLedger.Driver = "redis"
	_, _, err = newAssetLedger(cfg, nil)
	require.Error(t, err)
}
