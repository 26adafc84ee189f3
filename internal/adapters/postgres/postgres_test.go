package postgres_test

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"stableswap/internal/adapters/postgres"
	"stableswap/internal/domain"
	"stableswap/internal/platform/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
	tcpg "github.com/testcontainers/testcontainers-go/modules/postgres"
)

var (
	pgSetupOnce sync.Once

	pgContainer *tcpg.PostgresContainer
	pgConnStr   string
)

func TestMain(m *testing.M) {
	code := m.Run()
	if pgContainer != nil {
		_ = pgContainer.Terminate(context.Background())
	}
	os.Exit(code)
}

func setupPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()

	pgSetupOnce.Do(func() {
		startPostgres(t)
	})

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, pgConnStr)
	require.NoError(t, err)
	t.Cleanup(func() { pool.Close() })

	require.NoError(t, resetDatabase(ctx, pool))

	return pool
}

func startPostgres(t *testing.T) {
	ctx := context.Background()
	pg, err := tcpg.Run(ctx,
		"postgres:16-alpine",
		tcpg.WithDatabase("postgres"),
		tcpg.WithUsername("postgres"),
		tcpg.WithPassword("postgres"),
	)
	require.NoError(t, err)

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	sqlDB, err := goose.OpenDBWithDriver("pgx", dsn)
	require.NoError(t, err)
	defer func() { _ = sqlDB.Close() }()

	require.Eventually(t, func() bool {
		pingCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		return sqlDB.PingContext(pingCtx) == nil
	}, 15*time.Second, 500*time.Millisecond)

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	defer pool.Close()
	require.NoError(t, db.Migrate(ctx, pool))

	pgContainer = pg
	pgConnStr = dsn
}

func resetDatabase(ctx context.Context, pool *pgxpool.Pool) error {
	const q = `
		truncate table swap_rates, asset_allowances, asset_balances, assets,
		ledger_operations, custody_snapshot_balances, custody_snapshots restart identity cascade
	`
	_, err := pool.Exec(ctx, q)
	return err
}

// ---------- RateRepository tests ----------

func TestRateRepository_ListRates_Empty(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewRateRepository(pool)

	rates, err := repo.ListRates(context.Background())
	require.NoError(t, err)
	require.Empty(t, rates)
}

func TestRateRepository_SavePair_OverwriteKeepsOrder(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewRateRepository(pool)
	ctx := context.Background()

	require.NoError(t, repo.SavePair(ctx,
		domain.RateEntry{From: "usdc", To: "eurc", Rate: 92},
		domain.RateEntry{From: "eurc", To: "usdc", Rate: 108}))
	require.NoError(t, repo.SavePair(ctx,
		domain.RateEntry{From: "usdc", To: "gbpt", Rate: 79},
		domain.RateEntry{From: "gbpt", To: "usdc", Rate: 126}))
	require.NoError(t, repo.SavePair(ctx,
		domain.RateEntry{From: "usdc", To: "eurc", Rate: 93},
		domain.RateEntry{From: "eurc", To: "usdc", Rate: 107}))

	rates, err := repo.ListRates(ctx)
	require.NoError(t, err)
	require.Equal(t, []domain.RateEntry{
		{From: "usdc", To: "eurc", Rate: 93},
		{From: "eurc", To: "usdc", Rate: 107},
		{From: "usdc", To: "gbpt", Rate: 79},
		{From: "gbpt", To: "usdc", Rate: 126},
	}, rates)
}

func TestRateRepository_SavePair_RejectedRowRollsBackPair(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewRateRepository(pool)
	ctx := context.Background()

	// reverse violates the rate > 0 check, forward must not survive
	err := repo.SavePair(ctx,
		domain.RateEntry{From: "usdc", To: "eurc", Rate: 92},
		domain.RateEntry{From: "eurc", To: "usdc", Rate: 0})
	require.Error(t, err)

	rates, err := repo.ListRates(ctx)
	require.NoError(t, err)
	require.Empty(t, rates)
}

func TestRateRepository_DBError(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewRateRepository(pool)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.ListRates(ctx)
	require.Error(t, err)
	require.Error(t, repo.SavePair(ctx, domain.RateEntry{From: "a", To: "b", Rate: 1}, domain.RateEntry{From: "b", To: "a", Rate: 1}))
}

// ---------- AssetBank tests ----------

func seedBank(t *testing.T, bank *postgres.AssetBank, assets ...domain.AssetHandle) {
	t.Helper()
	for _, a := range assets {
		require.NoError(t, bank.RegisterAsset(context.Background(), a))
	}
}

func TestAssetBank_ListAssets_SortedAndIdempotentRegister(t *testing.T) {
	pool := setupPostgres(t)
	bank := postgres.NewAssetBank(pool)
	seedBank(t, bank, "usdc", "eurc", "usdc")

	assets, err := bank.ListAssets(context.Background())
	require.NoError(t, err)
	require.Equal(t, []domain.AssetHandle{"eurc", "usdc"}, assets)
}

func TestAssetBank_BalanceOf(t *testing.T) {
	pool := setupPostgres(t)
	bank := postgres.NewAssetBank(pool)
	ctx := context.Background()
	seedBank(t, bank, "usdc")

	balance, err := bank.BalanceOf(ctx, "nobody", "usdc")
	require.NoError(t, err)
	require.Zero(t, balance)

	require.NoError(t, bank.Mint(ctx, "owner", "usdc", 500))
	balance, err = bank.BalanceOf(ctx, "owner", "usdc")
	require.NoError(t, err)
	require.Equal(t, int64(500), balance)

	_, err = bank.BalanceOf(ctx, "owner", "doge")
	require.ErrorIs(t, err, domain.ErrUnknownAsset)
}

func TestAssetBank_Mint_Invalid(t *testing.T) {
	pool := setupPostgres(t)
	bank := postgres.NewAssetBank(pool)
	ctx := context.Background()
	seedBank(t, bank, "usdc")

	require.ErrorIs(t, bank.Mint(ctx, "owner", "usdc", 0), domain.ErrInvalidAmount)
	require.ErrorIs(t, bank.Mint(ctx, "owner", "doge", 1), domain.ErrUnknownAsset)
}

func TestAssetBank_TransferFrom(t *testing.T) {
	pool := setupPostgres(t)
	bank := postgres.NewAssetBank(pool)
	ctx := context.Background()
	seedBank(t, bank, "usdc")
	require.NoError(t, bank.Mint(ctx, "owner", "usdc", 100))

	// no allowance yet
	err := bank.TransferFrom(ctx, "owner", "custody", "usdc", 40)
	require.ErrorIs(t, err, domain.ErrInsufficientAllowance)

	require.NoError(t, bank.Approve(ctx, "owner", "custody", "usdc", 500))

	// allowance covers it, balance doesn't
	err = bank.TransferFrom(ctx, "owner", "custody", "usdc", 101)
	require.ErrorIs(t, err, domain.ErrInsufficientBalance)

	require.NoError(t, bank.TransferFrom(ctx, "owner", "custody", "usdc", 40))

	owner, err := bank.BalanceOf(ctx, "owner", "usdc")
	require.NoError(t, err)
	custody, err := bank.BalanceOf(ctx, "custody", "usdc")
	require.NoError(t, err)
	allowance, err := bank.Allowance(ctx, "owner", "custody", "usdc")
	require.NoError(t, err)
	require.Equal(t, int64(60), owner)
	require.Equal(t, int64(40), custody)
	require.Equal(t, int64(460), allowance)
}

func TestAssetBank_TransferFrom_FailedBalanceKeepsAllowance(t *testing.T) {
	pool := setupPostgres(t)
	bank := postgres.NewAssetBank(pool)
	ctx := context.Background()
	seedBank(t, bank, "usdc")
	require.NoError(t, bank.Approve(ctx, "owner", "custody", "usdc", 50))

	err := bank.TransferFrom(ctx, "owner", "custody", "usdc", 10)
	require.ErrorIs(t, err, domain.ErrInsufficientBalance)

	allowance, err := bank.Allowance(ctx, "owner", "custody", "usdc")
	require.NoError(t, err)
	require.Equal(t, int64(50), allowance)
}

func TestAssetBank_Transfer(t *testing.T) {
	pool := setupPostgres(t)
	bank := postgres.NewAssetBank(pool)
	ctx := context.Background()
	seedBank(t, bank, "usdc")
	require.NoError(t, bank.Mint(ctx, "custody", "usdc", 30))

	require.ErrorIs(t, bank.Transfer(ctx, "custody", "user1", "usdc", 31), domain.ErrInsufficientBalance)
	require.ErrorIs(t, bank.Transfer(ctx, "custody", "user1", "doge", 1), domain.ErrUnknownAsset)
	require.NoError(t, bank.Transfer(ctx, "custody", "user1", "usdc", 0))
	require.NoError(t, bank.Transfer(ctx, "custody", "user1", "usdc", 30))

	user, err := bank.BalanceOf(ctx, "user1", "usdc")
	require.NoError(t, err)
	custody, err := bank.BalanceOf(ctx, "custody", "usdc")
	require.NoError(t, err)
	require.Equal(t, int64(30), user)
	require.Zero(t, custody)
}

// ---------- OperationJournal tests ----------

func TestOperationJournal_RecordAndGet(t *testing.T) {
	pool := setupPostgres(t)
	journal := postgres.NewOperationJournal(pool)
	ctx := context.Background()

	swap := domain.Receipt{
		ID:         uuid.New(),
		Kind:       domain.OperationSwap,
		Caller:     "user1",
		FromAsset:  "usdc",
		ToAsset:    "eurc",
		AmountIn:   100,
		AmountOut:  92,
		Rate:       92,
		ExecutedAt: time.Date(2025, 1, 2, 15, 4, 5, 0, time.UTC),
	}
	deposit := domain.Receipt{
		ID:         uuid.New(),
		Kind:       domain.OperationDeposit,
		Caller:     "owner",
		FromAsset:  "usdc",
		AmountIn:   300,
		ExecutedAt: time.Date(2025, 1, 2, 15, 0, 0, 0, time.UTC),
	}
	require.NoError(t, journal.Record(ctx, swap))
	require.NoError(t, journal.Record(ctx, deposit))

	got, err := journal.GetByID(ctx, swap.ID)
	require.NoError(t, err)
	require.Equal(t, swap, got)

	got, err = journal.GetByID(ctx, deposit.ID)
	require.NoError(t, err)
	require.Equal(t, deposit, got)
	require.Empty(t, got.ToAsset)
	require.Zero(t, got.Rate)
}

func TestOperationJournal_GetByID_NotFound(t *testing.T) {
	pool := setupPostgres(t)
	journal := postgres.NewOperationJournal(pool)

	_, err := journal.GetByID(context.Background(), uuid.New())
	require.ErrorIs(t, err, domain.ErrOperationNotFound)
}

func TestOperationJournal_Record_DuplicateID(t *testing.T) {
	pool := setupPostgres(t)
	journal := postgres.NewOperationJournal(pool)
	ctx := context.Background()
	receipt := domain.Receipt{ID: uuid.New(), Kind: domain.OperationWithdraw, Caller: "owner", ToAsset: "usdc", AmountOut: 1, ExecutedAt: time.Now().UTC()}

	require.NoError(t, journal.Record(ctx, receipt))
	require.Error(t, journal.Record(ctx, receipt))
}

func TestOperationJournal_FindByIdempotencyKey(t *testing.T) {
	pool := setupPostgres(t)
	journal := postgres.NewOperationJournal(pool)
	ctx := context.Background()

	swap := domain.Receipt{
		ID:             uuid.New(),
		Kind:           domain.OperationSwap,
		Caller:         "user1",
		FromAsset:      "usdc",
		ToAsset:        "eurc",
		AmountIn:       100,
		AmountOut:      92,
		Rate:           92,
		ExecutedAt:     time.Date(2025, 1, 2, 15, 4, 5, 0, time.UTC),
		IdempotencyKey: "order-42",
	}
	require.NoError(t, journal.Record(ctx, swap))

	got, found, err := journal.FindByIdempotencyKey(ctx, "user1", "order-42")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, swap, got)

	_, found, err = journal.FindByIdempotencyKey(ctx, "user2", "order-42")
	require.NoError(t, err)
	require.False(t, found)

	_, found, err = journal.FindByIdempotencyKey(ctx, "user1", "order-43")
	require.NoError(t, err)
	require.False(t, found)
}

func TestOperationJournal_Record_IdempotencyKeyUniquePerCaller(t *testing.T) {
	pool := setupPostgres(t)
	journal := postgres.NewOperationJournal(pool)
	ctx := context.Background()
	keyed := func(caller domain.Identity) domain.Receipt {
		return domain.Receipt{ID: uuid.New(), Kind: domain.OperationSwap, Caller: caller, FromAsset: "usdc", ToAsset: "eurc",
			AmountIn: 1, ExecutedAt: time.Now().UTC(), IdempotencyKey: "order-42"}
	}

	require.NoError(t, journal.Record(ctx, keyed("user1")))
	require.NoError(t, journal.Record(ctx, keyed("user2")))
	require.Error(t, journal.Record(ctx, keyed("user1")))

	// unkeyed receipts never collide
	unkeyed := domain.Receipt{Kind: domain.OperationSwap, Caller: "user1", FromAsset: "usdc", ToAsset: "eurc", AmountIn: 1, ExecutedAt: time.Now().UTC()}
	unkeyed.ID = uuid.New()
	require.NoError(t, journal.Record(ctx, unkeyed))
	unkeyed.ID = uuid.New()
	require.NoError(t, journal.Record(ctx, unkeyed))
}

// ---------- SnapshotRepository tests ----------

func TestSnapshotRepository_Latest_NotFound(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewSnapshotRepository(pool)

	_, err := repo.Latest(context.Background())
	require.ErrorIs(t, err, domain.ErrSnapshotNotFound)
}

func TestSnapshotRepository_SaveAndLatest(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewSnapshotRepository(pool)
	ctx := context.Background()

	older := domain.CustodySnapshot{
		ID:       uuid.New(),
		TakenAt:  time.Date(2025, 1, 2, 15, 0, 0, 0, time.UTC),
		Balances: []domain.AssetBalance{{Asset: "usdc", Amount: 1}},
	}
	newer := domain.CustodySnapshot{
		ID:      uuid.New(),
		TakenAt: time.Date(2025, 1, 2, 15, 0, 30, 0, time.UTC),
		Balances: []domain.AssetBalance{
			{Asset: "usdc", Amount: 300},
			{Asset: "eurc", Amount: 0},
			{Asset: "gbpt", Amount: 12},
		},
	}
	require.NoError(t, repo.Save(ctx, older))
	require.NoError(t, repo.Save(ctx, newer))

	got, err := repo.Latest(ctx)
	require.NoError(t, err)
	require.Equal(t, newer, got)
}

func TestSnapshotRepository_DBError(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewSnapshotRepository(pool)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.Latest(ctx)
	require.Error(t, err)
	require.NotErrorIs(t, err, domain.ErrSnapshotNotFound)
}
