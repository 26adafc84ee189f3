package mock

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"stableswap/internal/domain"
)

// Operation names accepted by FailNext.
const (
	OpBalanceOf    = "balance_of"
	OpTransferFrom = "transfer_from"
	OpTransfer     = "transfer"
	OpListAssets   = "list_assets"
)

type holding struct {
	holder domain.Identity
	asset  domain.AssetHandle
}

type allowance struct {
	owner   domain.Identity
	spender domain.Identity
	asset   domain.AssetHandle
}

// Call is one recorded invocation of a mutating method.
type Call struct {
	Op     string
	From   domain.Identity
	To     domain.Identity
	Asset  domain.AssetHandle
	Amount int64
}

// AssetLedger is an in-memory asset ledger with ERC-20 like semantics.
// Tests use FailNext to make a chosen operation fail once.
type AssetLedger struct {
	mu         sync.Mutex
	assets     map[domain.AssetHandle]struct{}
	balances   map[holding]int64
	allowances map[allowance]int64
	failures   map[string][]error
	calls      []Call
}

func NewAssetLedger(assets ...domain.AssetHandle) *AssetLedger {
	l := &AssetLedger{
		assets:     make(map[domain.AssetHandle]struct{}, len(assets)),
		balances:   make(map[holding]int64),
		allowances: make(map[allowance]int64),
		failures:   make(map[string][]error),
	}
	for _, a := range assets {
		l.assets[a] = struct{}{}
	}
	return l
}

// Mint credits amount of a registered asset to holder.
func (l *AssetLedger) Mint(holder domain.Identity, asset domain.AssetHandle, amount int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.assets[asset] = struct{}{}
	l.balances[holding{holder, asset}] += amount
}

// Approve sets the allowance spender may pull from owner, replacing the previous value.
func (l *AssetLedger) Approve(owner, spender domain.Identity, asset domain.AssetHandle, amount int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.allowances[allowance{owner, spender, asset}] = amount
}

func (l *AssetLedger) Allowance(owner, spender domain.Identity, asset domain.AssetHandle) int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.allowances[allowance{owner, spender, asset}]
}

// Balance reads a balance without going through failure injection.
func (l *AssetLedger) Balance(holder domain.Identity, asset domain.AssetHandle) int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balances[holding{holder, asset}]
}

// FailNext makes the next call of op return err.
func (l *AssetLedger) FailNext(op string, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.failures[op] = append(l.failures[op], err)
}

// Calls returns the successful mutating calls in execution order.
func (l *AssetLedger) Calls() []Call {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.calls)
}

func (l *AssetLedger) BalanceOf(_ context.Context, holder domain.Identity, asset domain.AssetHandle) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.popFailure(OpBalanceOf); err != nil {
		return 0, err
	}
	if _, ok := l.assets[asset]; !ok {
		return 0, fmt.Errorf("balance of %q: %w", asset, domain.ErrUnknownAsset)
	}
	return l.balances[holding{holder, asset}], nil
}

func (l *AssetLedger) TransferFrom(_ context.Context, holder, custodian domain.Identity, asset domain.AssetHandle, amount int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.popFailure(OpTransferFrom); err != nil {
		return err
	}
	if _, ok := l.assets[asset]; !ok {
		return fmt.Errorf("transfer from %q: %w", holder, domain.ErrUnknownAsset)
	}
	key := allowance{holder, custodian, asset}
	if l.allowances[key] < amount {
		return fmt.Errorf("transfer from %q: %w", holder, domain.ErrInsufficientAllowance)
	}
	if l.balances[holding{holder, asset}] < amount {
		return fmt.Errorf("transfer from %q: %w", holder, domain.ErrInsufficientBalance)
	}
	l.allowances[key] -= amount
	l.move(holder, custodian, asset, amount)
	l.calls = append(l.calls, Call{Op: OpTransferFrom, From: holder, To: custodian, Asset: asset, Amount: amount})
	return nil
}

func (l *AssetLedger) Transfer(_ context.Context, custodian, recipient domain.Identity, asset domain.AssetHandle, amount int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.popFailure(OpTransfer); err != nil {
		return err
	}
	if _, ok := l.assets[asset]; !ok {
		return fmt.Errorf("transfer to %q: %w", recipient, domain.ErrUnknownAsset)
	}
	if l.balances[holding{custodian, asset}] < amount {
		return fmt.Errorf("transfer to %q: %w", recipient, domain.ErrInsufficientBalance)
	}
	l.move(custodian, recipient, asset, amount)
	l.calls = append(l.calls, Call{Op: OpTransfer, From: custodian, To: recipient, Asset: asset, Amount: amount})
	return nil
}

func (l *AssetLedger) ListAssets(_ context.Context) ([]domain.AssetHandle, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.popFailure(OpListAssets); err != nil {
		return nil, err
	}
	assets := make([]domain.AssetHandle, 0, len(l.assets))
	for a := range l.assets {
		assets = append(assets, a)
	}
	slices.Sort(assets)
	return assets, nil
}

func (l *AssetLedger) move(from, to domain.Identity, asset domain.AssetHandle, amount int64) {
	l.balances[holding{from, asset}] -= amount
	l.balances[holding{to, asset}] += amount
}

func (l *AssetLedger) popFailure(op string) error {
	queue := l.failures[op]
	if len(queue) == 0 {
		return nil
	}
	err := queue[0]
	l.failures[op] = queue[1:]
	return err
}
