package fd

import (
	"encoding/binary"

	"github.com/hupe1980/syskit/errno"
	"github.com/hupe1980/syskit/scall"
	"golang.org/x/sys/unix"
)

var opEventFD = scall.NewOp("eventfd2", scall.Sentinel)

// EventFD creates an eventfd with the given initial counter. flags accepts
// EFD_CLOEXEC, EFD_NONBLOCK and EFD_SEMAPHORE.
func EventFD(initval uint, flags int, opts ...Option) (*FD, error) {
	r, err := scall.Invoke(opEventFD, func() (uintptr, unix.Errno) {
		r, _, e := unix.RawSyscall(unix.SYS_EVENTFD2, uintptr(initval), uintptr(flags), 0)
		return r, e
	})
	if err != nil {
		return nil, err
	}
	return adopt(int(r), newOwner(opts))
}

// EventRead reads and resets (or, with EFD_SEMAPHORE, decrements) the
// counter of an eventfd.
func EventRead(b Borrowed) (uint64, error) {
	var buf [8]byte
	if err := b.ReadExact(buf[:]); err != nil {
		return 0, err
	}
	return binary.NativeEndian.Uint64(buf[:]), nil
}

// EventWrite adds v to the counter of an eventfd.
func EventWrite(b Borrowed, v uint64) error {
	var buf [8]byte
	binary.NativeEndian.PutUint64(buf[:], v)
	n, err := b.Write(buf[:])
	if err != nil {
		return err
	}
	if n != len(buf) {
		return errno.FromCode(int(unix.EIO))
	}
	return nil
}
