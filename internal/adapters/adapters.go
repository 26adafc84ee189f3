package adapters

import (
	"context"
	"time"

	"stableswap/internal/domain"

	"github.com/google/uuid"
)

// AssetTransfer is the external asset ledger as seen by the custodian.
type AssetTransfer interface {
	BalanceOf(ctx context.Context, holder domain.Identity, asset domain.AssetHandle) (int64, error)
	// TransferFrom pulls amount from holder into custodian, spending holder's allowance for custodian.
	TransferFrom(ctx context.Context, holder domain.Identity, custodian domain.Identity, asset domain.AssetHandle, amount int64) error
	// Transfer pushes amount from custodian's own holding to recipient.
	Transfer(ctx context.Context, custodian domain.Identity, recipient domain.Identity, asset domain.AssetHandle, amount int64) error
}

type AssetCatalog interface {
	ListAssets(ctx context.Context) ([]domain.AssetHandle, error)
}

type RateRepository interface {
	// SavePair installs or overwrites both directions in a single write.
	SavePair(ctx context.Context, forward domain.RateEntry, reverse domain.RateEntry) error
	// ListRates returns every stored direction in first-installation order.
	ListRates(ctx context.Context) ([]domain.RateEntry, error)
}

// OperationJournal is the durable record of completed operations and the
// idempotency store of keyed swaps.
type OperationJournal interface {
	// Record fails if receipt carries an idempotency key the caller already used.
	Record(ctx context.Context, receipt domain.Receipt) error
	GetByID(ctx context.Context, id uuid.UUID) (domain.Receipt, error)
	FindByIdempotencyKey(ctx context.Context, caller domain.Identity, key string) (domain.Receipt, bool, error)
}

// ReceiptCache sits in front of the journal for keyed swaps. It may drop entries.
type ReceiptCache interface {
	Get(caller domain.Identity, key string) (domain.Receipt, bool)
	// Set reports whether the receipt was admitted.
	Set(receipt domain.Receipt, ttl time.Duration) bool
}

type SnapshotRepository interface {
	Save(ctx context.Context, snapshot domain.CustodySnapshot) error
	Latest(ctx context.Context) (domain.CustodySnapshot, error)
}
