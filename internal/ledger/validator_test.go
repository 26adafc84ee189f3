package ledger

import (
	"testing"

	"stableswap/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestAssetValidator_ValidatePair_Errors(t *testing.T) {
	validator := NewValidator(map[domain.AssetHandle]struct{}{tokenA: {}, tokenB: {}})

	require.Equal(t, ErrFromRequired, validator.ValidatePair("", tokenB))
	require.Equal(t, ErrToRequired, validator.ValidatePair(tokenA, ""))
	require.Equal(t, ErrAssetMalformed, validator.ValidatePair("token A", tokenB))
	require.Equal(t, ErrAssetMalformed, validator.ValidatePair(tokenA, "token/B"))
}

func TestAssetValidator_ValidatePair_LeavesMembershipToLedger(t *testing.T) {
	validator := NewValidator(map[domain.AssetHandle]struct{}{tokenA: {}, tokenB: {}})

	require.NoError(t, validator.ValidatePair(tokenA, tokenB))
	require.NoError(t, validator.ValidatePair(tokenA, tokenA))
	require.NoError(t, validator.ValidatePair(tokenC, tokenB))
}

func TestAssetValidator_ValidateHandle(t *testing.T) {
	validator := NewValidator(map[domain.AssetHandle]struct{}{tokenA: {}})

	require.Equal(t, ErrAssetRequired, validator.ValidateHandle(""))
	require.Equal(t, ErrAssetMalformed, validator.ValidateHandle("usd/eur"))
	require.NoError(t, validator.ValidateHandle(tokenB))
}

func TestAssetValidator_ValidateAsset(t *testing.T) {
	validator := NewValidator(map[domain.AssetHandle]struct{}{tokenA: {}, "erc20:0xA0b8.usdc": {}})

	require.Equal(t, ErrAssetRequired, validator.ValidateAsset(""))
	require.Equal(t, ErrAssetMalformed, validator.ValidateAsset("usd/eur"))
	require.Equal(t, domain.ErrUnsupportedAsset, validator.ValidateAsset(tokenB))
	require.NoError(t, validator.ValidateAsset(tokenA))
	require.NoError(t, validator.ValidateAsset("erc20:0xA0b8.usdc"))
}

func TestNewValidator_ClonesMap(t *testing.T) {
	sourceAssets := map[domain.AssetHandle]struct{}{tokenA: {}, tokenB: {}}
	validator := NewValidator(sourceAssets)

	// mutate source after creation
	delete(sourceAssets, tokenA)

	// validator should still allow tokenA (clone must not be affected)
	require.NoError(t, validator.ValidateAsset(tokenA))
}

func TestAssetValidator_SupportedAssets(t *testing.T) {
	validator := NewValidator(map[domain.AssetHandle]struct{}{tokenC: {}, tokenA: {}, tokenB: {}})

	got := validator.SupportedAssets()

	require.Equal(t, []domain.AssetHandle{tokenA, tokenB, tokenC}, got)

	// ensure caller modifications do not affect validator internal state
	got[0] = "XXX"
	require.Equal(t, []domain.AssetHandle{tokenA, tokenB, tokenC}, validator.SupportedAssets())
}
