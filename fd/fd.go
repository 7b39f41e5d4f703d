package fd

import (
	"context"
	"errors"
	"io"
	"runtime"
	"sync/atomic"

	"github.com/hupe1980/syskit"
)

// Releaser performs the native release of a descriptor.
type Releaser func(id int) error

// Option configures an owning guard.
type Option func(*owner)

// WithReleaser replaces the native close. It is intended for tests and for
// descriptors that need a different release call.
func WithReleaser(r Releaser) Option {
	return func(o *owner) {
		if r != nil {
			o.release = r
		}
	}
}

// WithTracker registers the guard with t for as long as it is owned.
func WithTracker(t *Tracker) Option {
	return func(o *owner) {
		o.tracker = t
	}
}

// owner is what a guard needs to release its descriptor. Duplicates inherit
// it. It must not reference the guard itself, so the cleanup can run.
type owner struct {
	release Releaser
	tracker *Tracker
}

func newOwner(opts []Option) owner {
	o := owner{release: closeRaw}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o owner) releaseID(id int, automatic bool) error {
	err := o.release(id)
	o.tracker.forget(id)
	syskit.CurrentMetrics().RecordRelease("close", automatic, err)
	syskit.CurrentLogger().LogRelease(context.Background(), "close", id, automatic, err)
	return err
}

// discard releases an id that was never owned by a guard.
func (o owner) discard(id int) error {
	err := o.release(id)
	syskit.CurrentMetrics().RecordRelease("close", false, err)
	syskit.CurrentLogger().LogRelease(context.Background(), "close", id, false, err)
	return err
}

type handle struct {
	id    int
	owner owner
}

// FD owns a file descriptor.
//
// The zero FD is released. FD values must not be copied; pass *FD.
type FD struct {
	// raw holds id+1 while owned and 0 once released.
	raw     atomic.Int64
	owner   owner
	cleanup runtime.Cleanup
}

// New takes ownership of id without validation. A negative id yields a
// guard that is already released. New does not register with a Tracker;
// use Adopt for that.
func New(id int, opts ...Option) *FD {
	o := newOwner(opts)
	o.tracker = nil
	f := &FD{owner: o}
	if id < 0 {
		return f
	}
	f.own(id)
	return f
}

// Adopt takes ownership of id. It fails with ErrInvalid for negative ids and
// with ErrAlreadyOwned or ErrTooMany if the configured Tracker rejects id.
// On failure the descriptor is not closed.
func Adopt(id int, opts ...Option) (*FD, error) {
	if id < 0 {
		return nil, ErrInvalid
	}
	o := newOwner(opts)
	if err := o.tracker.add(id); err != nil {
		return nil, err
	}
	f := &FD{owner: o}
	f.own(id)
	return f, nil
}

// adopt takes ownership of a descriptor the package just created. If the
// tracker rejects it the descriptor is released through o without touching
// the tracker, which may hold the same id for another owner.
func adopt(id int, o owner) (*FD, error) {
	if err := o.tracker.add(id); err != nil {
		_ = o.discard(id)
		return nil, err
	}
	f := &FD{owner: o}
	f.own(id)
	return f, nil
}

func (f *FD) own(id int) {
	f.raw.Store(int64(id) + 1)
	f.cleanup = runtime.AddCleanup(f, func(h handle) {
		_ = h.owner.releaseID(h.id, true)
	}, handle{id: id, owner: f.owner})
}

// take ends ownership and returns the id, or false if already released.
func (f *FD) take() (int, bool) {
	raw := f.raw.Swap(0)
	if raw == 0 {
		return -1, false
	}
	f.cleanup.Stop()
	return int(raw - 1), true
}

// Close releases the descriptor with exactly one native close. The guard is
// released even if close fails; the error is advisory. Closing a released
// guard returns ErrReleased without a native call.
func (f *FD) Close() error {
	id, ok := f.take()
	if !ok {
		return ErrReleased
	}
	return f.owner.releaseID(id, false)
}

// IntoRaw ends ownership and returns the descriptor, which the caller must
// now release.
func (f *FD) IntoRaw() (int, error) {
	id, ok := f.take()
	if !ok {
		return -1, ErrReleased
	}
	f.owner.tracker.forget(id)
	return id, nil
}

// Fd returns the descriptor, or -1 once released.
func (f *FD) Fd() int {
	return int(f.raw.Load() - 1)
}

// Released reports whether the guard has been released.
func (f *FD) Released() bool {
	return f.raw.Load() == 0
}

// Borrow returns a checked view of the descriptor.
func (f *FD) Borrow() (Borrowed, error) {
	id := f.Fd()
	if id < 0 {
		return Borrowed{}, ErrReleased
	}
	return Borrowed{id: id, owner: f, live: true}, nil
}

// Dup duplicates the descriptor into a new independent owner. The new
// descriptor has close-on-exec cleared and inherits this guard's options.
func (f *FD) Dup() (*FD, error) {
	b, err := f.Borrow()
	if err != nil {
		return nil, err
	}
	return b.dup(false, f.owner)
}

// DupCloseOnExec is Dup with close-on-exec set on the new descriptor.
func (f *FD) DupCloseOnExec() (*FD, error) {
	b, err := f.Borrow()
	if err != nil {
		return nil, err
	}
	return b.dup(true, f.owner)
}

// Read implements io.Reader. A zero-byte read into a non-empty buffer is
// reported as io.EOF.
func (f *FD) Read(p []byte) (int, error) {
	b, err := f.Borrow()
	if err != nil {
		return 0, err
	}
	n, err := b.Read(p)
	if err == nil && n == 0 && len(p) > 0 {
		return 0, io.EOF
	}
	return n, err
}

// Write implements io.Writer. Short writes are retried.
func (f *FD) Write(p []byte) (int, error) {
	b, err := f.Borrow()
	if err != nil {
		return 0, err
	}
	return b.writeAll(p)
}

// Seek implements io.Seeker.
func (f *FD) Seek(offset int64, whence int) (int64, error) {
	b, err := f.Borrow()
	if err != nil {
		return 0, err
	}
	return b.Seek(offset, whence)
}

// With runs fn with a view of f and releases f on every exit path. A release
// failure is joined to fn's error; ErrReleased is ignored if fn consumed f.
func With(f *FD, fn func(Borrowed) error) (err error) {
	defer func() {
		if cerr := f.Close(); cerr != nil && !errors.Is(cerr, ErrReleased) {
			err = errors.Join(err, cerr)
		}
	}()
	b, err := f.Borrow()
	if err != nil {
		return err
	}
	return fn(b)
}

var (
	_ io.Reader = (*FD)(nil)
	_ io.Writer = (*FD)(nil)
	_ io.Seeker = (*FD)(nil)
	_ io.Closer = (*FD)(nil)
)
