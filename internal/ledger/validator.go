package ledger

import (
	"errors"
	"maps"
	"regexp"
	"slices"

	"stableswap/internal/domain"
)

var (
	ErrAssetRequired  = errors.New("asset is required")
	ErrFromRequired   = errors.New("from asset is required")
	ErrToRequired     = errors.New("to asset is required")
	ErrAssetMalformed = errors.New("asset handle must be 1-64 characters of letters, digits, '.', '_', ':' or '-'")
)

var assetHandlePattern = regexp.MustCompile(`^[A-Za-z0-9._:-]{1,64}$`)

type AssetValidator struct {
	supportedSet map[domain.AssetHandle]struct{} // read only copy
	supportedLst []domain.AssetHandle            // read only copy
}

// ValidateHandle checks the form of a handle only.
func (v *AssetValidator) ValidateHandle(asset domain.AssetHandle) error {
	if asset == "" {
		return ErrAssetRequired
	}
	if !assetHandlePattern.MatchString(string(asset)) {
		return ErrAssetMalformed
	}
	return nil
}

// ValidatePair checks the form of both handles. Whether the pair can be
// configured or swapped is up to the ledger.
func (v *AssetValidator) ValidatePair(from, to domain.AssetHandle) error {
	if from == "" {
		return ErrFromRequired
	}
	if to == "" {
		return ErrToRequired
	}
	if !assetHandlePattern.MatchString(string(from)) || !assetHandlePattern.MatchString(string(to)) {
		return ErrAssetMalformed
	}
	return nil
}

// ValidateAsset checks the form of a handle and that the asset is registered.
func (v *AssetValidator) ValidateAsset(asset domain.AssetHandle) error {
	if err := v.ValidateHandle(asset); err != nil {
		return err
	}
	if _, ok := v.supportedSet[asset]; !ok {
		return domain.ErrUnsupportedAsset
	}
	return nil
}

func (v *AssetValidator) SupportedAssets() []domain.AssetHandle {
	return slices.Clone(v.supportedLst)
}

func NewValidator(supportedAssets map[domain.AssetHandle]struct{}) *AssetValidator {
	assetSet := maps.Clone(supportedAssets)
	assetLst := slices.Collect(maps.Keys(assetSet))
	slices.Sort(assetLst)

	return &AssetValidator{
		supportedSet: assetSet,
		supportedLst: assetLst,
	}
}
