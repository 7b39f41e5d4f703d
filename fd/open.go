//go:build unix

package fd

import (
	"time"

	"golang.org/x/sys/unix"
)

// Open opens path and returns the owning guard. O_CLOEXEC is not implied;
// pass it in flags.
func Open(path string, flags int, mode uint32, opts ...Option) (*FD, error) {
	id, err := open(path, flags, mode)
	if err != nil {
		return nil, err
	}
	return adopt(id, newOwner(opts))
}

// Pipe creates a pipe. flags accepts O_CLOEXEC and O_NONBLOCK.
func Pipe(flags int, opts ...Option) (r, w *FD, err error) {
	p, err := pipe(flags)
	if err != nil {
		return nil, nil, err
	}
	o := newOwner(opts)
	if r, err = adopt(p[0], o); err != nil {
		_ = o.discard(p[1])
		return nil, nil, err
	}
	if w, err = adopt(p[1], o); err != nil {
		_ = r.Close()
		return nil, nil, err
	}
	return r, w, nil
}

// Poll waits for events on fds. A negative timeout waits indefinitely.
//
// Poll is never restarted after EINTR: the interruption is returned so the
// caller can recompute its deadline.
func Poll(fds []unix.PollFd, timeout time.Duration) (int, error) {
	ms := -1
	if timeout >= 0 {
		ms = int((timeout + time.Millisecond - 1) / time.Millisecond)
	}
	return poll(fds, ms)
}

// PollFd returns a poll entry for the descriptor.
func (b Borrowed) PollFd(events int16) unix.PollFd {
	return unix.PollFd{Fd: int32(b.Fd()), Events: events}
}
