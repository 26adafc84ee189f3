package cache

import (
	"fmt"
	"time"

	"stableswap/internal/domain"

	"github.com/dgraph-io/ristretto"
)

// RistrettoReceiptCache remembers swap receipts by caller and idempotency key.
// It is a read-through in front of the operation journal, not the source of truth.
type RistrettoReceiptCache struct {
	cache *ristretto.Cache
}

// NewReceiptCache holds up to maxItems receipts, each costing 1.
func NewReceiptCache(maxItems int64) (*RistrettoReceiptCache, error) {
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters:        10 * maxItems,
		MaxCost:            maxItems,
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("create receipt cache failed: %w", err)
	}
	return &RistrettoReceiptCache{cache: c}, nil
}

func (c *RistrettoReceiptCache) Get(caller domain.Identity, key string) (domain.Receipt, bool) {
	if v, ok := c.cache.Get(toKey(caller, key)); ok {
		receipt, ok := v.(domain.Receipt)
		return receipt, ok
	}
	return domain.Receipt{}, false
}

// Set waits for the write to land, so a replay right after the first swap hits.
// Receipts without an idempotency key are never cached.
func (c *RistrettoReceiptCache) Set(receipt domain.Receipt, ttl time.Duration) bool {
	if receipt.IdempotencyKey == "" {
		return false
	}
	if !c.cache.SetWithTTL(toKey(receipt.Caller, receipt.IdempotencyKey), receipt, 1, ttl) {
		return false
	}
	c.cache.Wait()
	return true
}

func (c *RistrettoReceiptCache) Close() { c.cache.Close() }

// the caller can't contain a newline, it comes from a single header line
func toKey(caller domain.Identity, key string) string { return string(caller) + "\n" + key }
