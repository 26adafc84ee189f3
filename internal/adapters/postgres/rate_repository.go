package postgres

import (
	"context"
	"fmt"

	"stableswap/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RateRepository struct {
	pool *pgxpool.Pool
}

func (r *RateRepository) SavePair(ctx context.Context, forward domain.RateEntry, reverse domain.RateEntry) error {
	// an existing row keeps its id, so the listing order follows first installation
	const q = `
		insert into swap_rates(from_asset, to_asset, rate, updated_at) values ($1, $2, $3, now())
		on conflict (from_asset, to_asset) do update
		set rate = excluded.rate, updated_at = now();
	`

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, e := range []domain.RateEntry{forward, reverse} {
		if _, err = tx.Exec(ctx, q, e.From, e.To, e.Rate); err != nil {
			return fmt.Errorf("failed to upsert rate %q/%q: %w", e.From, e.To, err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (r *RateRepository) ListRates(ctx context.Context) ([]domain.RateEntry, error) {
	const q = `select from_asset, to_asset, rate from swap_rates order by id;`

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to query swap rates: %w", err)
	}
	defer rows.Close()

	entries := make([]domain.RateEntry, 0, 16)
	for rows.Next() {
		var e domain.RateEntry
		if err = rows.Scan(&e.From, &e.To, &e.Rate); err != nil {
			return nil, fmt.Errorf("failed to scan swap rate: %w", err)
		}
		entries = append(entries, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating swap rates: %w", err)
	}
	return entries, nil
}

func NewRateRepository(pool *pgxpool.Pool) *RateRepository {
	return &RateRepository{pool: pool}
}
