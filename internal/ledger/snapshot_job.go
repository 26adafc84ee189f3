package ledger

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"stableswap/internal/adapters"
	"stableswap/internal/domain"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const numWorkers = 5
const perRequestTimeout = 5 * time.Second

// custodySource is the part of the Ledger the snapshot job reads.
type custodySource interface {
	CustodyAssets(ctx context.Context) ([]domain.AssetHandle, error)
	CustodyBalance(ctx context.Context, asset domain.AssetHandle) (int64, error)
}

// TakeCustodySnapshot reads the custody balance of every known asset and stores them as one snapshot.
func TakeCustodySnapshot(ctx context.Context, execID string, source custodySource, snapshots adapters.SnapshotRepository) error {
	// STEP 1: listed assets first, then the rest of the catalog
	assets, err := source.CustodyAssets(ctx)
	if err != nil {
		return fmt.Errorf("failed to get assets to snapshot: %w", err)
	}
	if len(assets) == 0 {
		logrus.Infof("Nothing to snapshot this time; execID: %s", execID)
		return nil
	}

	// STEP 2: balances are read in parallel, failed assets are skipped until the next run
	found := collectInParallel(ctx, source, assets)
	if len(found) == 0 {
		return errors.New("no custody balance could be read")
	}

	// STEP 3: keep asset order so consecutive snapshots line up
	balances := make([]domain.AssetBalance, 0, len(found))
	for _, asset := range assets {
		if amount, ok := found[asset]; ok {
			balances = append(balances, domain.AssetBalance{Asset: asset, Amount: amount})
		}
	}

	snapshot := domain.CustodySnapshot{ID: uuid.New(), TakenAt: time.Now().UTC(), Balances: balances}
	if err := snapshots.Save(ctx, snapshot); err != nil {
		return fmt.Errorf("failed to save custody snapshot: %w", err)
	}

	logrus.Infof("Custody snapshot %s saved with %d of %d assets; execID: %s", snapshot.ID, len(balances), len(assets), execID)
	return nil
}

func collectInParallel(ctx context.Context, source custodySource, assets []domain.AssetHandle) map[domain.AssetHandle]int64 {
	workQueue := make(chan domain.AssetHandle, len(assets))
	for _, asset := range assets {
		workQueue <- asset
	}
	close(workQueue)

	resultsCh := make(chan domain.AssetBalance, len(assets))

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			runWorker(ctx, workerID, workQueue, source, resultsCh)
		}(i)
	}

	wg.Wait()
	close(resultsCh)

	found := make(map[domain.AssetHandle]int64, len(assets))
	for b := range resultsCh {
		found[b.Asset] = b.Amount
	}
	return found
}

func runWorker(ctx context.Context, workerID int, workQueue <-chan domain.AssetHandle, source custodySource, resultsCh chan<- domain.AssetBalance) {
	for {
		select {
		case <-ctx.Done():
			return
		case asset, ok := <-workQueue:
			if !ok {
				return
			}
			readBalance(ctx, workerID, asset, source, resultsCh)
		}
	}
}

func readBalance(ctx context.Context, workerID int, asset domain.AssetHandle, source custodySource, resultsCh chan<- domain.AssetBalance) {
	reqCtx, cancel := context.WithTimeout(ctx, perRequestTimeout)
	defer cancel()

	amount, err := source.CustodyBalance(reqCtx, asset)
	if err != nil {
		logrus.Warnf("Asset '%s' wasn't processed by Worker %d: %s", asset, workerID, err)
		return
	}
	resultsCh <- domain.AssetBalance{Asset: asset, Amount: amount}
}
