package ledger

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"stableswap/internal/adapters"
	"stableswap/internal/domain"
	"stableswap/internal/platform/metrics"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const defaultReceiptTTL = 10 * time.Minute

// AssetSupport decides which assets admin operations may name.
type AssetSupport interface {
	ValidateAsset(asset domain.AssetHandle) error
}

// Deps are the collaborators of a Ledger. Only Assets is required.
type Deps struct {
	Assets     adapters.AssetTransfer
	Catalog    adapters.AssetCatalog
	Supported  AssetSupport
	Rates      adapters.RateRepository
	Journal    adapters.OperationJournal
	Receipts   adapters.ReceiptCache
	ReceiptTTL time.Duration
}

// Ledger holds assets in custody of a single custodian identity and swaps
// them at admin-configured rates. Every mutating operation runs under mu from
// its first check to its last transfer.
type Ledger struct {
	mu         sync.Mutex
	gate       Gate
	custodian  domain.Identity
	registry   *Registry
	assets     adapters.AssetTransfer
	catalog    adapters.AssetCatalog
	supported  AssetSupport
	rates      adapters.RateRepository
	journal    adapters.OperationJournal
	receipts   adapters.ReceiptCache
	receiptTTL time.Duration
	now        func() time.Time
}

func NewLedger(admin, custodian domain.Identity, deps Deps) *Ledger {
	ttl := deps.ReceiptTTL
	if ttl <= 0 {
		ttl = defaultReceiptTTL
	}
	return &Ledger{
		gate:       NewGate(admin),
		custodian:  custodian,
		registry:   NewRegistry(),
		assets:     deps.Assets,
		catalog:    deps.Catalog,
		supported:  deps.Supported,
		rates:      deps.Rates,
		journal:    deps.Journal,
		receipts:   deps.Receipts,
		receiptTTL: ttl,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Restore loads previously configured rates from the rate repository.
func (l *Ledger) Restore(ctx context.Context) (int, error) {
	if l.rates == nil {
		return 0, nil
	}
	entries, err := l.rates.ListRates(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to restore swap rates: %w", err)
	}
	l.registry.Load(entries)
	return len(entries), nil
}

func (l *Ledger) Admin() domain.Identity {
	return l.gate.Admin()
}

func (l *Ledger) Custodian() domain.Identity {
	return l.custodian
}

// Operation looks up the receipt of a past deposit, withdraw or swap.
func (l *Ledger) Operation(ctx context.Context, id uuid.UUID) (domain.Receipt, error) {
	if l.journal == nil {
		return domain.Receipt{}, domain.ErrOperationNotFound
	}
	return l.journal.GetByID(ctx, id)
}

// requireSupported runs after the admin gate, so a non-admin never learns
// which assets are supported.
func (l *Ledger) requireSupported(assets ...domain.AssetHandle) error {
	if l.supported == nil {
		return nil
	}
	for _, asset := range assets {
		if err := l.supported.ValidateAsset(asset); err != nil {
			return err
		}
	}
	return nil
}

func (l *Ledger) newReceipt(kind domain.OperationKind, caller domain.Identity) domain.Receipt {
	return domain.Receipt{
		ID:         uuid.New(),
		Kind:       kind,
		Caller:     caller,
		ExecutedAt: l.now(),
	}
}

// record journals a completed operation. The value already moved, so a
// journal failure is only logged.
func (l *Ledger) record(ctx context.Context, receipt domain.Receipt) {
	logrus.WithFields(logrus.Fields{
		"operation_id": receipt.ID,
		"kind":         receipt.Kind,
		"caller":       receipt.Caller,
		"from_asset":   receipt.FromAsset,
		"to_asset":     receipt.ToAsset,
		"amount_in":    receipt.AmountIn,
		"amount_out":   receipt.AmountOut,
	}).Info("ledger operation completed")

	if l.journal == nil {
		return
	}
	if err := l.journal.Record(context.WithoutCancel(ctx), receipt); err != nil {
		entry := logrus.WithError(err).WithField("operation_id", receipt.ID)
		if receipt.IdempotencyKey != "" {
			entry.WithField("idempotency_key", receipt.IdempotencyKey).Error("keyed swap wasn't journaled, a replay after cache eviction will execute again")
			return
		}
		entry.Warn("operation wasn't journaled")
	}
}

func observe(kind string, err error) {
	metrics.ObserveOperation(kind, outcome(err))
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, domain.ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, domain.ErrInvalidRate):
		return "invalid_rate"
	case errors.Is(err, domain.ErrSameAsset):
		return "same_asset"
	case errors.Is(err, domain.ErrUnsupportedAsset):
		return "unsupported_asset"
	case errors.Is(err, domain.ErrIdempotencyKeyReused):
		return "idempotency_key_reused"
	case errors.Is(err, domain.ErrInsufficientCallerFunds):
		return "insufficient_caller_funds"
	case errors.Is(err, domain.ErrInsufficientContractFunds):
		return "insufficient_contract_funds"
	case errors.Is(err, domain.ErrUnsupportedPair):
		return "unsupported_pair"
	case errors.Is(err, domain.ErrInsufficientLiquidity):
		return "insufficient_liquidity"
	default:
		return "error"
	}
}
