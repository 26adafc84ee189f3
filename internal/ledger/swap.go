package ledger

import (
	"context"
	"errors"
	"fmt"

	"stableswap/internal/domain"

	"github.com/sirupsen/logrus"
)

type SwapRequest struct {
	Caller domain.Identity
	From   domain.AssetHandle
	To     domain.AssetHandle
	Amount int64
	// IdempotencyKey, when set, makes a repeated request from the same caller
	// return the first receipt instead of swapping again. Reusing it for a
	// different request fails with ErrIdempotencyKeyReused.
	IdempotencyKey string
}

// Swap exchanges req.Amount of req.From for the configured amount of req.To.
// Anyone may swap; the checks run in a fixed order and the first failing one
// determines the error.
func (l *Ledger) Swap(ctx context.Context, req SwapRequest) (domain.Receipt, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if req.IdempotencyKey != "" {
		receipt, found, err := l.replay(ctx, req)
		if err != nil {
			observe(string(domain.OperationSwap), err)
			return domain.Receipt{}, err
		}
		if found {
			logrus.WithFields(logrus.Fields{"operation_id": receipt.ID, "caller": req.Caller}).Info("swap replayed from idempotency key")
			return receipt, nil
		}
	}

	receipt, err := l.swap(ctx, req)
	observe(string(domain.OperationSwap), err)
	if err != nil {
		return domain.Receipt{}, err
	}

	receipt.IdempotencyKey = req.IdempotencyKey
	l.record(ctx, receipt)
	l.remember(receipt)
	return receipt, nil
}

// replay finds the receipt of an earlier swap under the same key, first in
// the receipt cache, then in the journal. A key reused for a different
// request is rejected.
func (l *Ledger) replay(ctx context.Context, req SwapRequest) (domain.Receipt, bool, error) {
	var receipt domain.Receipt
	found := false
	if l.receipts != nil {
		receipt, found = l.receipts.Get(req.Caller, req.IdempotencyKey)
	}
	if !found && l.journal != nil {
		var err error
		receipt, found, err = l.journal.FindByIdempotencyKey(ctx, req.Caller, req.IdempotencyKey)
		if err != nil {
			return domain.Receipt{}, false, fmt.Errorf("failed to look up idempotency key of %q: %w", req.Caller, err)
		}
		if found {
			l.remember(receipt)
		}
	}
	if !found {
		return domain.Receipt{}, false, nil
	}
	if !receipt.Replays(req.From, req.To, req.Amount) {
		return domain.Receipt{}, false, domain.ErrIdempotencyKeyReused
	}
	return receipt, true, nil
}

func (l *Ledger) remember(receipt domain.Receipt) {
	if l.receipts == nil || receipt.IdempotencyKey == "" {
		return
	}
	if !l.receipts.Set(receipt, l.receiptTTL) {
		logrus.WithField("operation_id", receipt.ID).Debug("receipt wasn't admitted to the cache")
	}
}

func (l *Ledger) swap(ctx context.Context, req SwapRequest) (domain.Receipt, error) {
	if !l.registry.Swappable(req.From, req.To) {
		return domain.Receipt{}, domain.ErrUnsupportedPair
	}
	if req.Amount <= 0 {
		return domain.Receipt{}, domain.ErrInvalidAmount
	}

	rate := l.registry.Rate(req.From, req.To)
	out, err := OutAmount(req.Amount, rate)
	if err != nil {
		return domain.Receipt{}, err
	}

	liquidity, err := l.assets.BalanceOf(ctx, l.custodian, req.To)
	if err != nil {
		return domain.Receipt{}, fmt.Errorf("failed to get custody balance of %q: %w", req.To, err)
	}
	if liquidity < out {
		return domain.Receipt{}, domain.ErrInsufficientLiquidity
	}

	if err = l.assets.TransferFrom(ctx, req.Caller, l.custodian, req.From, req.Amount); err != nil {
		return domain.Receipt{}, fmt.Errorf("failed to pull %d of %q from %q: %w", req.Amount, req.From, req.Caller, err)
	}
	// A swap worth less than one unit of output keeps the whole input.
	if out > 0 {
		if err = l.assets.Transfer(ctx, l.custodian, req.Caller, req.To, out); err != nil {
			return domain.Receipt{}, l.refund(ctx, req, out, err)
		}
	}

	receipt := l.newReceipt(domain.OperationSwap, req.Caller)
	receipt.FromAsset = req.From
	receipt.ToAsset = req.To
	receipt.AmountIn = req.Amount
	receipt.AmountOut = out
	receipt.Rate = rate
	return receipt, nil
}

// refund returns the pulled input after the output push failed.
func (l *Ledger) refund(ctx context.Context, req SwapRequest, out int64, pushErr error) error {
	if errors.Is(pushErr, domain.ErrInsufficientBalance) {
		pushErr = fmt.Errorf("%w: %w", domain.ErrInsufficientLiquidity, pushErr)
	}
	pushErr = fmt.Errorf("failed to push %d of %q to %q: %w", out, req.To, req.Caller, pushErr)

	refundErr := l.assets.Transfer(context.WithoutCancel(ctx), l.custodian, req.Caller, req.From, req.Amount)
	if refundErr == nil {
		return pushErr
	}

	logrus.WithError(refundErr).WithFields(logrus.Fields{
		"caller":     req.Caller,
		"from_asset": req.From,
		"amount_in":  req.Amount,
	}).Error("swap input wasn't refunded, custody holds the caller's funds")
	return errors.Join(pushErr, fmt.Errorf("failed to refund %d of %q to %q: %w", req.Amount, req.From, req.Caller, refundErr))
}
