package ledger

import (
	"sync"

	"stableswap/internal/domain"
)

// Registry keeps directed swap rates. Lookups go through the map, enumeration
// through order, which only grows when a pair is installed for the first time.
type Registry struct {
	mu    sync.RWMutex
	rates map[domain.RatePair]int64
	order []domain.RatePair
}

func NewRegistry() *Registry {
	return &Registry{rates: make(map[domain.RatePair]int64)}
}

// SetPair installs both directions under one write lock.
func (r *Registry) SetPair(forward, reverse domain.RateEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.put(forward)
	r.put(reverse)
}

// Load installs stored entries one by one, keeping their order.
func (r *Registry) Load(entries []domain.RateEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range entries {
		r.put(e)
	}
}

func (r *Registry) put(e domain.RateEntry) {
	pair := e.Pair()
	if _, ok := r.rates[pair]; !ok {
		r.order = append(r.order, pair)
	}
	r.rates[pair] = e.Rate
}

func (r *Registry) Swappable(from, to domain.AssetHandle) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.rates[domain.RatePair{From: from, To: to}]
	return ok
}

// Rate returns 0 when the direction is not registered.
func (r *Registry) Rate(from, to domain.AssetHandle) int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.rates[domain.RatePair{From: from, To: to}]
}

func (r *Registry) Pairs() domain.SwappablePairs {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := domain.SwappablePairs{
		From:  make([]domain.AssetHandle, 0, len(r.order)),
		To:    make([]domain.AssetHandle, 0, len(r.order)),
		Rates: make([]int64, 0, len(r.order)),
	}
	for _, p := range r.order {
		res.From = append(res.From, p.From)
		res.To = append(res.To, p.To)
		res.Rates = append(res.Rates, r.rates[p])
	}
	return res
}

// Assets lists every asset appearing in a registered pair, in first-seen order.
func (r *Registry) Assets() []domain.AssetHandle {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := make(map[domain.AssetHandle]struct{}, len(r.order))
	assets := make([]domain.AssetHandle, 0, len(r.order))
	for _, p := range r.order {
		for _, a := range []domain.AssetHandle{p.From, p.To} {
			if _, ok := seen[a]; ok {
				continue
			}
			seen[a] = struct{}{}
			assets = append(assets, a)
		}
	}
	return assets
}
