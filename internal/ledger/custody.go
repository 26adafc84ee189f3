package ledger

import (
	"context"
	"errors"
	"fmt"

	"stableswap/internal/domain"
)

// Deposit pulls amount of asset from the admin into custody.
func (l *Ledger) Deposit(ctx context.Context, caller domain.Identity, asset domain.AssetHandle, amount int64) (domain.Receipt, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	err := l.deposit(ctx, caller, asset, amount)
	observe(string(domain.OperationDeposit), err)
	if err != nil {
		return domain.Receipt{}, err
	}

	receipt := l.newReceipt(domain.OperationDeposit, caller)
	receipt.FromAsset = asset
	receipt.AmountIn = amount
	l.record(ctx, receipt)
	return receipt, nil
}

func (l *Ledger) deposit(ctx context.Context, caller domain.Identity, asset domain.AssetHandle, amount int64) error {
	if err := l.gate.RequireAdmin(caller); err != nil {
		return err
	}
	if err := l.requireSupported(asset); err != nil {
		return err
	}
	if amount <= 0 {
		return domain.ErrInvalidAmount
	}

	balance, err := l.assets.BalanceOf(ctx, caller, asset)
	if err != nil {
		return fmt.Errorf("failed to get balance of %q for %q: %w", asset, caller, err)
	}
	if balance < amount {
		return domain.ErrInsufficientCallerFunds
	}

	if err = l.assets.TransferFrom(ctx, caller, l.custodian, asset, amount); err != nil {
		if errors.Is(err, domain.ErrInsufficientBalance) {
			return domain.ErrInsufficientCallerFunds
		}
		return fmt.Errorf("failed to pull %d of %q from %q: %w", amount, asset, caller, err)
	}
	return nil
}

// Withdraw pushes amount of asset from custody to the admin.
func (l *Ledger) Withdraw(ctx context.Context, caller domain.Identity, asset domain.AssetHandle, amount int64) (domain.Receipt, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	err := l.withdraw(ctx, caller, asset, amount)
	observe(string(domain.OperationWithdraw), err)
	if err != nil {
		return domain.Receipt{}, err
	}

	receipt := l.newReceipt(domain.OperationWithdraw, caller)
	receipt.ToAsset = asset
	receipt.AmountOut = amount
	l.record(ctx, receipt)
	return receipt, nil
}

func (l *Ledger) withdraw(ctx context.Context, caller domain.Identity, asset domain.AssetHandle, amount int64) error {
	if err := l.gate.RequireAdmin(caller); err != nil {
		return err
	}
	if err := l.requireSupported(asset); err != nil {
		return err
	}
	if amount <= 0 {
		return domain.ErrInvalidAmount
	}

	custody, err := l.assets.BalanceOf(ctx, l.custodian, asset)
	if err != nil {
		return fmt.Errorf("failed to get custody balance of %q: %w", asset, err)
	}
	if custody < amount {
		return domain.ErrInsufficientContractFunds
	}

	if err = l.assets.Transfer(ctx, l.custodian, caller, asset, amount); err != nil {
		if errors.Is(err, domain.ErrInsufficientBalance) {
			return domain.ErrInsufficientContractFunds
		}
		return fmt.Errorf("failed to push %d of %q to %q: %w", amount, asset, caller, err)
	}
	return nil
}

// CustodyBalance is the live holding of asset by the custodian; it is never cached.
func (l *Ledger) CustodyBalance(ctx context.Context, asset domain.AssetHandle) (int64, error) {
	balance, err := l.assets.BalanceOf(ctx, l.custodian, asset)
	if err != nil {
		return 0, fmt.Errorf("failed to get custody balance of %q: %w", asset, err)
	}
	return balance, nil
}
