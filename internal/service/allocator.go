package service

import (
	"context"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/mmynk/splitter/internal/allocation"
	"github.com/mmynk/splitter/internal/metrics"
)

//go:generate mockgen -destination=mocks/mock_snapshot_source.go -source=allocator.go

// SnapshotSource loads everything the allocation engine needs for a receipt.
type SnapshotSource interface {
	LoadSnapshot(ctx context.Context, receiptID string) (*allocation.Snapshot, error)
}

// Allocator computes receipt allocations from full snapshots and caches the
// results until the receipt changes or the TTL passes.
type Allocator struct {
	source  SnapshotSource
	cache   *cache.Cache
	metrics *metrics.Metrics

	mu          sync.Mutex
	generations map[string]uint64
}

// NewAllocator creates an allocator. A zero ttl keeps results until they are
// invalidated. A nil m records into an unregistered set of collectors.
func NewAllocator(source SnapshotSource, ttl time.Duration, m *metrics.Metrics) *Allocator {
	if m == nil {
		m = metrics.NewNop()
	}
	cleanup := 2 * ttl
	if ttl <= 0 {
		ttl = cache.NoExpiration
		cleanup = 0
	}
	return &Allocator{
		source:      source,
		cache:       cache.New(ttl, cleanup),
		metrics:     m,
		generations: make(map[string]uint64),
	}
}

// Allocate returns the breakdown for a receipt. The result may be shared with
// other callers and must not be modified.
func (a *Allocator) Allocate(ctx context.Context, receiptID string) (*allocation.Breakdown, error) {
	if cached, ok := a.cache.Get(receiptID); ok {
		a.metrics.Allocations.WithLabelValues(metrics.SourceCache).Inc()
		return cached.(*allocation.Breakdown), nil
	}
	return a.Recompute(ctx, receiptID)
}

// Recompute bypasses the cache, computes a fresh breakdown and caches it
// unless the receipt was invalidated in the meantime.
func (a *Allocator) Recompute(ctx context.Context, receiptID string) (*allocation.Breakdown, error) {
	gen := a.generation(receiptID)
	start := time.Now()

	snapshot, err := a.source.LoadSnapshot(ctx, receiptID)
	if err != nil {
		return nil, err
	}
	b := allocation.Compute(*snapshot)

	a.metrics.AllocationDuration.Observe(time.Since(start).Seconds())
	a.metrics.Allocations.WithLabelValues(metrics.SourceComputed).Inc()

	a.mu.Lock()
	if a.generations[receiptID] == gen {
		a.cache.Set(receiptID, b, cache.DefaultExpiration)
	}
	a.mu.Unlock()
	return b, nil
}

// Invalidate drops the cached result for a receipt. Computations that started
// before the call will not repopulate the cache.
func (a *Allocator) Invalidate(receiptID string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.generations[receiptID]++
	a.cache.Delete(receiptID)
}

func (a *Allocator) generation(receiptID string) uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.generations[receiptID]
}
