package ledger

import (
	"context"
	"fmt"
	"slices"

	"stableswap/internal/domain"
)

const opSetSwapRate = "set_swap_rate"

// SetSwapRate installs x->y and y->x together. The rate repository is written
// first, so a storage failure leaves the registry untouched.
func (l *Ledger) SetSwapRate(ctx context.Context, caller domain.Identity, x, y domain.AssetHandle, rateXToY, rateYToX int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	err := l.setSwapRate(ctx, caller, x, y, rateXToY, rateYToX)
	observe(opSetSwapRate, err)
	return err
}

func (l *Ledger) setSwapRate(ctx context.Context, caller domain.Identity, x, y domain.AssetHandle, rateXToY, rateYToX int64) error {
	if err := l.gate.RequireAdmin(caller); err != nil {
		return err
	}
	if rateXToY <= 0 {
		return domain.ErrInvalidForwardRate
	}
	if rateYToX <= 0 {
		return domain.ErrInvalidReverseRate
	}
	if x == y {
		return domain.ErrSameAsset
	}
	if err := l.requireSupported(x, y); err != nil {
		return err
	}

	forward := domain.RateEntry{From: x, To: y, Rate: rateXToY}
	reverse := domain.RateEntry{From: y, To: x, Rate: rateYToX}
	if l.rates != nil {
		if err := l.rates.SavePair(ctx, forward, reverse); err != nil {
			return fmt.Errorf("failed to store swap rate %q/%q: %w", x, y, err)
		}
	}
	l.registry.SetPair(forward, reverse)
	return nil
}

func (l *Ledger) Swappable(from, to domain.AssetHandle) bool {
	return l.registry.Swappable(from, to)
}

// SwapRate returns 0 for a direction that was never configured.
func (l *Ledger) SwapRate(from, to domain.AssetHandle) int64 {
	return l.registry.Rate(from, to)
}

func (l *Ledger) SwappablePairs() domain.SwappablePairs {
	return l.registry.Pairs()
}

// ListedAssets returns the assets that take part in at least one configured pair.
func (l *Ledger) ListedAssets() []domain.AssetHandle {
	return l.registry.Assets()
}

// CustodyAssets returns the listed assets followed by every other asset the
// catalog knows, so custody of an asset without a pair is still visible.
func (l *Ledger) CustodyAssets(ctx context.Context) ([]domain.AssetHandle, error) {
	assets := l.registry.Assets()
	if l.catalog == nil {
		return assets, nil
	}
	registered, err := l.catalog.ListAssets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list registered assets: %w", err)
	}
	for _, asset := range registered {
		if !slices.Contains(assets, asset) {
			assets = append(assets, asset)
		}
	}
	return assets, nil
}
