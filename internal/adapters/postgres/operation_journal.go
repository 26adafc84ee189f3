package postgres

import (
	"context"
	"errors"
	"fmt"

	"stableswap/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const selectOperation = `
	select id, kind, caller, coalesce(from_asset, ''), coalesce(to_asset, ''),
	       amount_in, amount_out, coalesce(rate, 0), executed_at, coalesce(idempotency_key, '')
	from ledger_operations
`

type OperationJournal struct {
	pool *pgxpool.Pool
}

func (j *OperationJournal) Record(ctx context.Context, receipt domain.Receipt) error {
	const q = `
		insert into ledger_operations(id, kind, caller, from_asset, to_asset, amount_in, amount_out, rate, executed_at, idempotency_key)
		values ($1, $2, $3, nullif($4::text, ''), nullif($5::text, ''), $6, $7, nullif($8::bigint, 0), $9, nullif($10::text, ''));
	`

	_, err := j.pool.Exec(ctx, q,
		receipt.ID,
		receipt.Kind,
		receipt.Caller,
		string(receipt.FromAsset),
		string(receipt.ToAsset),
		receipt.AmountIn,
		receipt.AmountOut,
		receipt.Rate,
		receipt.ExecutedAt,
		receipt.IdempotencyKey,
	)
	if err != nil {
		return fmt.Errorf("failed to insert operation %s: %w", receipt.ID, err)
	}
	return nil
}

func (j *OperationJournal) GetByID(ctx context.Context, id uuid.UUID) (domain.Receipt, error) {
	r, err := scanReceipt(j.pool.QueryRow(ctx, selectOperation+`where id = $1;`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Receipt{}, domain.ErrOperationNotFound
		}
		return domain.Receipt{}, fmt.Errorf("failed to select operation %s: %w", id, err)
	}
	return r, nil
}

// FindByIdempotencyKey returns the receipt of the swap caller executed under key.
func (j *OperationJournal) FindByIdempotencyKey(ctx context.Context, caller domain.Identity, key string) (domain.Receipt, bool, error) {
	r, err := scanReceipt(j.pool.QueryRow(ctx, selectOperation+`where caller = $1 and idempotency_key = $2;`, caller, key))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Receipt{}, false, nil
		}
		return domain.Receipt{}, false, fmt.Errorf("failed to select operation of %q by idempotency key: %w", caller, err)
	}
	return r, true, nil
}

func scanReceipt(row pgx.Row) (domain.Receipt, error) {
	var r domain.Receipt
	if err := row.Scan(
		&r.ID,
		&r.Kind,
		&r.Caller,
		&r.FromAsset,
		&r.ToAsset,
		&r.AmountIn,
		&r.AmountOut,
		&r.Rate,
		&r.ExecutedAt,
		&r.IdempotencyKey,
	); err != nil {
		return domain.Receipt{}, err
	}
	r.ExecutedAt = r.ExecutedAt.UTC()
	return r, nil
}

func NewOperationJournal(pool *pgxpool.Pool) *OperationJournal {
	return &OperationJournal{pool: pool}
}
