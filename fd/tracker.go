package fd

import (
	"sync"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/syskit/internal/resource"
)

// Tracker records which descriptors are owned by guards created with
// WithTracker. It rejects a second owner for the same descriptor and can
// cap the number of live descriptors. It is safe for concurrent use.
//
// A nil *Tracker tracks nothing.
type Tracker struct {
	mu     sync.Mutex
	live   *roaring.Bitmap
	budget *resource.Budget
}

// NewTracker creates a Tracker. A limit of zero or less means unlimited.
func NewTracker(limit int) *Tracker {
	return &Tracker{
		live:   roaring.New(),
		budget: resource.NewBudget(int64(limit)),
	}
}

func (t *Tracker) add(id int) error {
	if t == nil {
		return nil
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.live.Contains(uint32(id)) {
		return ErrAlreadyOwned
	}
	if !t.budget.TryAcquire(1) {
		return ErrTooMany
	}
	t.live.Add(uint32(id))
	return nil
}

func (t *Tracker) forget(id int) {
	if t == nil || id < 0 {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.live.CheckedRemove(uint32(id)) {
		t.budget.Release(1)
	}
}

// Contains reports whether id is owned by a tracked guard.
func (t *Tracker) Contains(id int) bool {
	if t == nil || id < 0 {
		return false
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.live.Contains(uint32(id))
}

// Len returns the number of live tracked descriptors.
func (t *Tracker) Len() int {
	if t == nil {
		return 0
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return int(t.live.GetCardinality())
}

// Live returns the live tracked descriptors in ascending order.
func (t *Tracker) Live() []int {
	if t == nil {
		return nil
	}
	t.mu.Lock()
	ids := t.live.ToArray()
	t.mu.Unlock()

	out := make([]int, len(ids))
	for i, id := range ids {
		out[i] = int(id)
	}
	return out
}

// Limit returns the configured limit (0 if unlimited).
func (t *Tracker) Limit() int {
	if t == nil {
		return 0
	}
	return int(t.budget.Limit())
}
