package cache

import (
	"fmt"
	"testing"
	"time"

	"stableswap/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func keyedReceipt(caller domain.Identity, key string) domain.Receipt {
	return domain.Receipt{
		ID:             uuid.New(),
		Kind:           domain.OperationSwap,
		Caller:         caller,
		FromAsset:      "usdc",
		ToAsset:        "eurc",
		AmountIn:       100,
		AmountOut:      92,
		IdempotencyKey: key,
	}
}

func TestReceiptCache_SetAndGet(t *testing.T) {
	c, err := NewReceiptCache(128)
	require.NoError(t, err)
	defer c.Close()

	receipt := keyedReceipt("user1", "order-42")

	require.True(t, c.Set(receipt, time.Minute))

	got, ok := c.Get("user1", "order-42")
	require.True(t, ok)
	require.Equal(t, receipt, got)
}

func TestReceiptCache_GetMissWhenEmpty(t *testing.T) {
	c, err := NewReceiptCache(64)
	require.NoError(t, err)
	defer c.Close()

	got, ok := c.Get("user1", "order-42")
	require.False(t, ok)
	require.Equal(t, domain.Receipt{}, got)
}

func TestReceiptCache_KeysAreScopedByCaller(t *testing.T) {
	c, err := NewReceiptCache(128)
	require.NoError(t, err)
	defer c.Close()

	require.True(t, c.Set(keyedReceipt("user1", "order-42"), time.Minute))

	_, ok := c.Get("user2", "order-42")
	require.False(t, ok)
	_, ok = c.Get("user1", "order-43")
	require.False(t, ok)
}

func TestReceiptCache_UnkeyedReceiptIsNotCached(t *testing.T) {
	c, err := NewReceiptCache(128)
	require.NoError(t, err)
	defer c.Close()

	require.False(t, c.Set(keyedReceipt("user1", ""), time.Minute))
	_, ok := c.Get("user1", "")
	require.False(t, ok)
}

func TestReceiptCache_HoldsConfiguredNumberOfReceipts(t *testing.T) {
	c, err := NewReceiptCache(10_000)
	require.NoError(t, err)
	defer c.Close()

	const n = 2000
	for i := 0; i < n; i++ {
		require.True(t, c.Set(keyedReceipt("user1", fmt.Sprintf("order-%d", i)), time.Minute))
	}

	for i := 0; i < n; i++ {
		_, ok := c.Get("user1", fmt.Sprintf("order-%d", i))
		require.True(t, ok, "order-%d was evicted", i)
	}
}

func TestReceiptCache_Expires(t *testing.T) {
	c, err := NewReceiptCache(128)
	require.NoError(t, err)
	defer c.Close()

	require.True(t, c.Set(keyedReceipt("user1", "order-42"), 50*time.Millisecond))

	require.Eventually(t, func() bool {
		_, ok := c.Get("user1", "order-42")
		return !ok
	}, 2*time.Second, 20*time.Millisecond)
}
