package domain

import (
	"time"

	"github.com/google/uuid"
)

type OperationKind string

const (
	OperationDeposit  OperationKind = "deposit"
	OperationWithdraw OperationKind = "withdraw"
	OperationSwap     OperationKind = "swap"
)

// Receipt describes a completed value movement. Deposit fills only the "in" side,
// withdraw only the "out" side, swap both plus the applied rate.
type Receipt struct {
	ID         uuid.UUID     `json:"id"`
	Kind       OperationKind `json:"kind"`
	Caller     Identity      `json:"caller"`
	FromAsset  AssetHandle   `json:"from_asset,omitempty"`
	ToAsset    AssetHandle   `json:"to_asset,omitempty"`
	AmountIn   int64         `json:"amount_in"`
	AmountOut  int64         `json:"amount_out"`
	Rate       int64         `json:"rate,omitempty"`
	ExecutedAt time.Time     `json:"executed_at"`

	// IdempotencyKey is set on swaps submitted with one; it is unique per caller.
	IdempotencyKey string `json:"-"`
}

// Replays reports whether a swap request repeats the one this receipt was issued for.
func (r Receipt) Replays(from, to AssetHandle, amount int64) bool {
	return r.FromAsset == from && r.ToAsset == to && r.AmountIn == amount
}

type CustodySnapshot struct {
	ID       uuid.UUID
	TakenAt  time.Time
	Balances []AssetBalance
}
