package ledger

import (
	"context"
	"fmt"
	"sync"
	"time"

	"stableswap/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// --- Testify mocks ---

type MockRateRepository struct{ mock.Mock }

func (m *MockRateRepository) SavePair(ctx context.Context, forward domain.RateEntry, reverse domain.RateEntry) error {
	args := m.Called(ctx, forward, reverse)
	return args.Error(0)
}

func (m *MockRateRepository) ListRates(ctx context.Context) ([]domain.RateEntry, error) {
	args := m.Called(ctx)
	entries, _ := args.Get(0).([]domain.RateEntry)
	return entries, args.Error(1)
}

type MockOperationJournal struct{ mock.Mock }

func (m *MockOperationJournal) Record(ctx context.Context, receipt domain.Receipt) error {
	args := m.Called(ctx, receipt)
	return args.Error(0)
}

func (m *MockOperationJournal) GetByID(ctx context.Context, id uuid.UUID) (domain.Receipt, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(domain.Receipt)
	return r, args.Error(1)
}

func (m *MockOperationJournal) FindByIdempotencyKey(ctx context.Context, caller domain.Identity, key string) (domain.Receipt, bool, error) {
	args := m.Called(ctx, caller, key)
	r, _ := args.Get(0).(domain.Receipt)
	return r, args.Bool(1), args.Error(2)
}

type MockReceiptCache struct{ mock.Mock }

func (m *MockReceiptCache) Get(caller domain.Identity, key string) (domain.Receipt, bool) {
	args := m.Called(caller, key)
	r, _ := args.Get(0).(domain.Receipt)
	return r, args.Bool(1)
}

func (m *MockReceiptCache) Set(receipt domain.Receipt, ttl time.Duration) bool {
	args := m.Called(receipt, ttl)
	return args.Bool(0)
}

// --- Fakes ---

// memJournal keeps receipts in memory and enforces the per-caller key uniqueness of the real journal.
type memJournal struct {
	mu       sync.Mutex
	receipts []domain.Receipt
}

func (j *memJournal) Record(_ context.Context, receipt domain.Receipt) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	for _, r := range j.receipts {
		if receipt.IdempotencyKey != "" && r.Caller == receipt.Caller && r.IdempotencyKey == receipt.IdempotencyKey {
			return fmt.Errorf("idempotency key %q of %q already recorded", receipt.IdempotencyKey, receipt.Caller)
		}
	}
	j.receipts = append(j.receipts, receipt)
	return nil
}

func (j *memJournal) GetByID(_ context.Context, id uuid.UUID) (domain.Receipt, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	for _, r := range j.receipts {
		if r.ID == id {
			return r, nil
		}
	}
	return domain.Receipt{}, domain.ErrOperationNotFound
}

func (j *memJournal) FindByIdempotencyKey(_ context.Context, caller domain.Identity, key string) (domain.Receipt, bool, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	for _, r := range j.receipts {
		if r.Caller == caller && r.IdempotencyKey == key {
			return r, true, nil
		}
	}
	return domain.Receipt{}, false, nil
}

func (j *memJournal) Len() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return len(j.receipts)
}

type MockSnapshotRepository struct{ mock.Mock }

func (m *MockSnapshotRepository) Save(ctx context.Context, snapshot domain.CustodySnapshot) error {
	args := m.Called(ctx, snapshot)
	return args.Error(0)
}

func (m *MockSnapshotRepository) Latest(ctx context.Context) (domain.CustodySnapshot, error) {
	args := m.Called(ctx)
	s, _ := args.Get(0).(domain.CustodySnapshot)
	return s, args.Error(1)
}

type MockCustodySource struct{ mock.Mock }

func (m *MockCustodySource) CustodyAssets(ctx context.Context) ([]domain.AssetHandle, error) {
	args := m.Called(ctx)
	assets, _ := args.Get(0).([]domain.AssetHandle)
	return assets, args.Error(1)
}

func (m *MockCustodySource) CustodyBalance(ctx context.Context, asset domain.AssetHandle) (int64, error) {
	args := m.Called(ctx, asset)
	amount, _ := args.Get(0).(int64)
	return amount, args.Error(1)
}
