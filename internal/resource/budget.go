package resource

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
)

// Budget tracks and optionally limits a countable resource.
type Budget struct {
	limit int64
	sem   *semaphore.Weighted // nil if unlimited
	used  atomic.Int64
}

// NewBudget creates a Budget. A limit of zero or less means unlimited.
func NewBudget(limit int64) *Budget {
	b := &Budget{limit: max(limit, 0)}
	if limit > 0 {
		b.sem = semaphore.NewWeighted(limit)
	}
	return b
}

// TryAcquire reserves n units without blocking. It reports false if the
// reservation would exceed the limit.
func (b *Budget) TryAcquire(n int64) bool {
	if b == nil || n <= 0 {
		return true
	}
	if b.sem != nil && !b.sem.TryAcquire(n) {
		return false
	}
	b.used.Add(n)
	return true
}

// Acquire reserves n units, waiting until they are available or ctx ends.
func (b *Budget) Acquire(ctx context.Context, n int64) error {
	if b == nil || n <= 0 {
		return nil
	}
	if b.sem != nil {
		if err := b.sem.Acquire(ctx, n); err != nil {
			return err
		}
	}
	b.used.Add(n)
	return nil
}

// Release returns n units.
func (b *Budget) Release(n int64) {
	if b == nil || n <= 0 {
		return
	}
	if b.sem != nil {
		b.sem.Release(n)
	}
	b.used.Add(-n)
}

// Used returns the number of units currently reserved.
func (b *Budget) Used() int64 {
	if b == nil {
		return 0
	}
	return b.used.Load()
}

// Limit returns the configured limit (0 if unlimited).
func (b *Budget) Limit() int64 {
	if b == nil {
		return 0
	}
	return b.limit
}
