package postgres

import (
	"context"
	"errors"
	"fmt"

	"stableswap/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SnapshotRepository struct {
	pool *pgxpool.Pool
}

func (r *SnapshotRepository) Save(ctx context.Context, snapshot domain.CustodySnapshot) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err = tx.Exec(ctx, `insert into custody_snapshots(id, taken_at) values ($1, $2);`, snapshot.ID, snapshot.TakenAt); err != nil {
		return fmt.Errorf("failed to insert snapshot %s: %w", snapshot.ID, err)
	}

	rows := make([][]any, 0, len(snapshot.Balances))
	for i, b := range snapshot.Balances {
		rows = append(rows, []any{snapshot.ID, int32(i), string(b.Asset), b.Amount})
	}
	if _, err = tx.CopyFrom(ctx,
		pgx.Identifier{"custody_snapshot_balances"},
		[]string{"snapshot_id", "seq", "asset", "amount"},
		pgx.CopyFromRows(rows),
	); err != nil {
		return fmt.Errorf("failed to copy balances of snapshot %s: %w", snapshot.ID, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (r *SnapshotRepository) Latest(ctx context.Context) (domain.CustodySnapshot, error) {
	var s domain.CustodySnapshot
	err := r.pool.QueryRow(ctx, `select id, taken_at from custody_snapshots order by taken_at desc limit 1;`).
		Scan(&s.ID, &s.TakenAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.CustodySnapshot{}, domain.ErrSnapshotNotFound
		}
		return domain.CustodySnapshot{}, fmt.Errorf("failed to select latest snapshot: %w", err)
	}
	s.TakenAt = s.TakenAt.UTC()

	rows, err := r.pool.Query(ctx, `select asset, amount from custody_snapshot_balances where snapshot_id = $1 order by seq;`, s.ID)
	if err != nil {
		return domain.CustodySnapshot{}, fmt.Errorf("failed to query balances of snapshot %s: %w", s.ID, err)
	}
	defer rows.Close()

	s.Balances = make([]domain.AssetBalance, 0, 16)
	for rows.Next() {
		var b domain.AssetBalance
		if err = rows.Scan(&b.Asset, &b.Amount); err != nil {
			return domain.CustodySnapshot{}, fmt.Errorf("failed to scan snapshot balance: %w", err)
		}
		s.Balances = append(s.Balances, b)
	}
	if err = rows.Err(); err != nil {
		return domain.CustodySnapshot{}, fmt.Errorf("error iterating snapshot balances: %w", err)
	}
	return s, nil
}

func NewSnapshotRepository(pool *pgxpool.Pool) *SnapshotRepository {
	return &SnapshotRepository{pool: pool}
}
