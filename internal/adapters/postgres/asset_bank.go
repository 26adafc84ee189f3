package postgres

import (
	"context"
	"fmt"

	"stableswap/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AssetBank is a postgres-backed asset ledger with ERC-20 like balances and
// allowances. Every transfer runs in its own transaction and no balance or
// allowance ever goes negative.
type AssetBank struct {
	pool *pgxpool.Pool
}

func (b *AssetBank) RegisterAsset(ctx context.Context, asset domain.AssetHandle) error {
	const q = `insert into assets(handle) values ($1) on conflict (handle) do nothing;`
	if _, err := b.pool.Exec(ctx, q, asset); err != nil {
		return fmt.Errorf("failed to register asset %q: %w", asset, err)
	}
	return nil
}

func (b *AssetBank) ListAssets(ctx context.Context) ([]domain.AssetHandle, error) {
	rows, err := b.pool.Query(ctx, `select handle from assets order by handle;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query assets: %w", err)
	}
	defer rows.Close()

	assets := make([]domain.AssetHandle, 0, 16)
	for rows.Next() {
		var a domain.AssetHandle
		if err = rows.Scan(&a); err != nil {
			return nil, fmt.Errorf("failed to scan asset: %w", err)
		}
		assets = append(assets, a)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating assets: %w", err)
	}
	return assets, nil
}

func (b *AssetBank) BalanceOf(ctx context.Context, holder domain.Identity, asset domain.AssetHandle) (int64, error) {
	const q = `
		select exists(select 1 from assets where handle = $2),
		       coalesce((select amount from asset_balances where holder = $1 and asset = $2), 0);
	`

	var (
		known   bool
		balance int64
	)
	if err := b.pool.QueryRow(ctx, q, holder, asset).Scan(&known, &balance); err != nil {
		return 0, fmt.Errorf("failed to select balance of %q for %q: %w", asset, holder, err)
	}
	if !known {
		return 0, fmt.Errorf("balance of %q: %w", asset, domain.ErrUnknownAsset)
	}
	return balance, nil
}

func (b *AssetBank) Allowance(ctx context.Context, owner, spender domain.Identity, asset domain.AssetHandle) (int64, error) {
	const q = `
		select coalesce((select amount from asset_allowances where owner = $1 and spender = $2 and asset = $3), 0);
	`

	var amount int64
	if err := b.pool.QueryRow(ctx, q, owner, spender, asset).Scan(&amount); err != nil {
		return 0, fmt.Errorf("failed to select allowance of %q for %q/%q: %w", asset, owner, spender, err)
	}
	return amount, nil
}

// Approve replaces the amount spender may pull from owner.
func (b *AssetBank) Approve(ctx context.Context, owner, spender domain.Identity, asset domain.AssetHandle, amount int64) error {
	if amount < 0 {
		return fmt.Errorf("approve %d of %q: %w", amount, asset, domain.ErrInvalidAmount)
	}
	const q = `
		insert into asset_allowances(owner, spender, asset, amount) values ($1, $2, $3, $4)
		on conflict (owner, spender, asset) do update
		set amount = excluded.amount;
	`

	return b.inTx(ctx, func(tx pgx.Tx) error {
		if err := requireAsset(ctx, tx, asset); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, q, owner, spender, asset, amount); err != nil {
			return fmt.Errorf("failed to upsert allowance of %q for %q/%q: %w", asset, owner, spender, err)
		}
		return nil
	})
}

// Mint credits amount of a registered asset to holder.
func (b *AssetBank) Mint(ctx context.Context, holder domain.Identity, asset domain.AssetHandle, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("mint %d of %q: %w", amount, asset, domain.ErrInvalidAmount)
	}
	return b.inTx(ctx, func(tx pgx.Tx) error {
		if err := requireAsset(ctx, tx, asset); err != nil {
			return err
		}
		return credit(ctx, tx, holder, asset, amount)
	})
}

// TransferFrom checks the allowance before the balance.
func (b *AssetBank) TransferFrom(ctx context.Context, holder, custodian domain.Identity, asset domain.AssetHandle, amount int64) error {
	if amount < 0 {
		return fmt.Errorf("transfer from %q: %w", holder, domain.ErrInvalidAmount)
	}
	const spendAllowance = `
		update asset_allowances set amount = amount - $4
		where owner = $1 and spender = $2 and asset = $3 and amount >= $4;
	`

	return b.inTx(ctx, func(tx pgx.Tx) error {
		if err := requireAsset(ctx, tx, asset); err != nil {
			return err
		}
		if amount == 0 {
			return nil
		}
		tag, err := tx.Exec(ctx, spendAllowance, holder, custodian, asset, amount)
		if err != nil {
			return fmt.Errorf("failed to spend allowance of %q for %q: %w", asset, holder, err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("transfer from %q: %w", holder, domain.ErrInsufficientAllowance)
		}
		if err = debit(ctx, tx, holder, asset, amount); err != nil {
			return err
		}
		return credit(ctx, tx, custodian, asset, amount)
	})
}

func (b *AssetBank) Transfer(ctx context.Context, custodian, recipient domain.Identity, asset domain.AssetHandle, amount int64) error {
	if amount < 0 {
		return fmt.Errorf("transfer to %q: %w", recipient, domain.ErrInvalidAmount)
	}
	return b.inTx(ctx, func(tx pgx.Tx) error {
		if err := requireAsset(ctx, tx, asset); err != nil {
			return err
		}
		if amount == 0 {
			return nil
		}
		if err := debit(ctx, tx, custodian, asset, amount); err != nil {
			return err
		}
		return credit(ctx, tx, recipient, asset, amount)
	})
}

func (b *AssetBank) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := b.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err = fn(tx); err != nil {
		return err
	}
	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func requireAsset(ctx context.Context, tx pgx.Tx, asset domain.AssetHandle) error {
	var known bool
	if err := tx.QueryRow(ctx, `select exists(select 1 from assets where handle = $1);`, asset).Scan(&known); err != nil {
		return fmt.Errorf("failed to look up asset %q: %w", asset, err)
	}
	if !known {
		return fmt.Errorf("asset %q: %w", asset, domain.ErrUnknownAsset)
	}
	return nil
}

func debit(ctx context.Context, tx pgx.Tx, holder domain.Identity, asset domain.AssetHandle, amount int64) error {
	const q = `
		update asset_balances set amount = amount - $3
		where holder = $1 and asset = $2 and amount >= $3;
	`
	tag, err := tx.Exec(ctx, q, holder, asset, amount)
	if err != nil {
		return fmt.Errorf("failed to debit %q from %q: %w", asset, holder, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("debit %q from %q: %w", asset, holder, domain.ErrInsufficientBalance)
	}
	return nil
}

func credit(ctx context.Context, tx pgx.Tx, holder domain.Identity, asset domain.AssetHandle, amount int64) error {
	const q = `
		insert into asset_balances(holder, asset, amount) values ($1, $2, $3)
		on conflict (holder, asset) do update
		set amount = asset_balances.amount + excluded.amount;
	`
	if _, err := tx.Exec(ctx, q, holder, asset, amount); err != nil {
		return fmt.Errorf("failed to credit %q to %q: %w", asset, holder, err)
	}
	return nil
}

func NewAssetBank(pool *pgxpool.Pool) *AssetBank {
	return &AssetBank{pool: pool}
}
