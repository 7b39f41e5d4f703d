package mman

import (
	"context"
	"io"
	"runtime"
	"sync/atomic"

	"github.com/hupe1980/syskit"
	"github.com/hupe1980/syskit/fd"
	"golang.org/x/sys/unix"
)

// Mapping owns a memory mapping.
type Mapping struct {
	data    []byte
	closed  atomic.Bool
	limit   *Limit
	cleanup runtime.Cleanup
}

type region struct {
	data  []byte
	limit *Limit
}

func (r region) release(automatic bool) error {
	err := munmap(r.data)
	syskit.CurrentMetrics().RecordRelease("munmap", automatic, err)
	syskit.CurrentLogger().LogRelease(context.Background(), "munmap", 0, automatic, err)
	r.limit.release(len(r.data))
	return err
}

func newMapping(length int, opts []Option, mapFn func() ([]byte, error)) (*Mapping, error) {
	if length < 0 {
		return nil, ErrInvalidSize
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if length == 0 {
		return &Mapping{}, nil
	}
	if err := o.acquire(length); err != nil {
		return nil, err
	}
	data, err := mapFn()
	if err != nil {
		o.limit.release(length)
		return nil, err
	}
	m := &Mapping{data: data, limit: o.limit}
	m.cleanup = runtime.AddCleanup(m, func(r region) {
		_ = r.release(true)
	}, region{data: data, limit: o.limit})
	return m, nil
}

// Map maps length bytes of the file behind b, starting at offset. The
// descriptor may be closed once Map returns. A zero length yields an empty
// Mapping without a native call.
func Map(b fd.Borrowed, offset int64, length, prot, flags int, opts ...Option) (*Mapping, error) {
	if offset < 0 {
		return nil, ErrInvalidOffset
	}
	return newMapping(length, opts, func() (data []byte, err error) {
		err = b.Control(func(id int) (cerr error) {
			data, cerr = mmap(id, offset, length, prot, flags)
			return
		})
		return data, err
	})
}

// MapAnon creates a private read-write anonymous mapping of length bytes.
func MapAnon(length int, opts ...Option) (*Mapping, error) {
	return newMapping(length, opts, func() ([]byte, error) {
		return mmap(-1, 0, length, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	})
}

// Open maps the whole file at path read-only.
func Open(path string, opts ...Option) (*Mapping, error) {
	f, err := fd.Open(path, unix.O_RDONLY|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	b, err := f.Borrow()
	if err != nil {
		return nil, err
	}
	st, err := b.Stat()
	if err != nil {
		return nil, err
	}
	if st.Size < 0 || st.Size > int64(^uint(0)>>1) {
		return nil, ErrInvalidSize
	}
	return Map(b, 0, int(st.Size), unix.PROT_READ, unix.MAP_SHARED, opts...)
}

// Close unmaps the memory. Closing twice returns ErrClosed.
func (m *Mapping) Close() error {
	if m.closed.Swap(true) {
		return ErrClosed
	}
	if m.data == nil {
		return nil
	}
	m.cleanup.Stop()
	return region{data: m.data, limit: m.limit}.release(false)
}

// Bytes returns the mapped memory, or nil once closed.
// The slice is valid only until Close is called.
func (m *Mapping) Bytes() []byte {
	if m.closed.Load() {
		return nil
	}
	return m.data
}

// Len returns the size of the mapping in bytes.
func (m *Mapping) Len() int {
	return len(m.data)
}

// Advise provides hints to the kernel about how the memory will be accessed.
func (m *Mapping) Advise(pattern AccessPattern) error {
	return m.apply(func(data []byte) error { return advise(data, pattern) })
}

// Protect changes the protection of the whole mapping.
func (m *Mapping) Protect(prot int) error {
	return m.apply(func(data []byte) error { return mprotect(data, prot) })
}

// Sync flushes a shared file mapping; flags is MS_SYNC or MS_ASYNC,
// optionally with MS_INVALIDATE.
func (m *Mapping) Sync(flags int) error {
	return m.apply(func(data []byte) error { return msync(data, flags) })
}

// Lock locks the mapping into memory.
func (m *Mapping) Lock() error {
	return m.apply(mlock)
}

// Unlock undoes Lock.
func (m *Mapping) Unlock() error {
	return m.apply(munlock)
}

func (m *Mapping) apply(fn func([]byte) error) error {
	if m.closed.Load() {
		return ErrClosed
	}
	if len(m.data) == 0 {
		return nil
	}
	err := fn(m.data)
	runtime.KeepAlive(m)
	return err
}

// ReadAt implements io.ReaderAt.
func (m *Mapping) ReadAt(p []byte, off int64) (n int, err error) {
	if m.closed.Load() {
		return 0, ErrClosed
	}
	if off < 0 {
		return 0, ErrInvalidOffset
	}
	if off >= int64(len(m.data)) {
		return 0, io.EOF
	}
	n = copy(p, m.data[off:])
	runtime.KeepAlive(m)
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

var _ io.ReaderAt = (*Mapping)(nil)
