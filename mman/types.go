package mman

import (
	"context"
	"fmt"

	"github.com/hupe1980/syskit/errno"
	"github.com/hupe1980/syskit/internal/resource"
	"golang.org/x/sys/unix"
)

// AccessPattern provides hints to the kernel about how the data will be accessed.
type AccessPattern int

const (
	// AccessDefault is the default access pattern (no specific advice).
	AccessDefault AccessPattern = iota
	// AccessSequential expects data to be accessed sequentially.
	AccessSequential
	// AccessRandom expects data to be accessed randomly.
	AccessRandom
	// AccessWillNeed expects data to be accessed in the near future.
	AccessWillNeed
	// AccessDontNeed expects data to not be accessed in the near future.
	AccessDontNeed
)

// Limit caps the number of bytes mapped through it. It is safe for
// concurrent use.
type Limit struct {
	budget *resource.Budget
}

// NewLimit creates a Limit of the given size in bytes. Zero or less means
// unlimited, which still tracks usage.
func NewLimit(bytes int64) *Limit {
	return &Limit{budget: resource.NewBudget(bytes)}
}

// Used returns the number of bytes currently mapped through l.
func (l *Limit) Used() int64 {
	if l == nil {
		return 0
	}
	return l.budget.Used()
}

func (l *Limit) acquire(n int) bool {
	if l == nil {
		return true
	}
	return l.budget.TryAcquire(int64(n))
}

// wait reserves n bytes, blocking until earlier mappings release enough of
// the limit or ctx ends. A request larger than the whole limit fails at once.
func (l *Limit) wait(ctx context.Context, n int) error {
	if l == nil {
		return nil
	}
	if lim := l.budget.Limit(); lim > 0 && int64(n) > lim {
		return errno.FromCode(int(unix.ENOMEM))
	}
	if err := l.budget.Acquire(ctx, int64(n)); err != nil {
		return fmt.Errorf("%w: %w", errno.FromCode(int(unix.ENOMEM)), err)
	}
	return nil
}

func (l *Limit) release(n int) {
	if l != nil {
		l.budget.Release(int64(n))
	}
}

// Option configures a Mapping.
type Option func(*options)

type options struct {
	limit *Limit
	ctx   context.Context // non-nil when the limit is waited on
}

// WithLimit charges the mapping's length against l until it is unmapped.
// If l is exhausted, mapping fails with ENOMEM.
func WithLimit(l *Limit) Option {
	return func(o *options) {
		o.limit = l
		o.ctx = nil
	}
}

// WithLimitWait is WithLimit, except that an exhausted l is waited on until
// other mappings are closed or ctx ends. The failure then wraps both ENOMEM
// and the context error.
func WithLimitWait(ctx context.Context, l *Limit) Option {
	return func(o *options) {
		o.limit = l
		o.ctx = ctx
	}
}

func (o *options) acquire(n int) error {
	if o.ctx != nil {
		return o.limit.wait(o.ctx, n)
	}
	if !o.limit.acquire(n) {
		return errno.FromCode(int(unix.ENOMEM))
	}
	return nil
}
