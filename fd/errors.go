package fd

import (
	"github.com/hupe1980/syskit/errno"
	"golang.org/x/sys/unix"
)

// stateError is a guard state failure that classifies as a native code.
type stateError struct {
	msg  string
	code unix.Errno
}

func (e *stateError) Error() string { return e.msg }

func (e *stateError) Unwrap() error { return errno.FromCode(int(e.code)) }

var (
	// ErrReleased is returned by operations on a guard that was closed or
	// consumed. It unwraps to EBADF.
	ErrReleased error = &stateError{msg: "fd: descriptor already released", code: unix.EBADF}

	// ErrAlreadyOwned is returned when a Tracker already owns the descriptor.
	// It unwraps to EBUSY.
	ErrAlreadyOwned error = &stateError{msg: "fd: descriptor already owned", code: unix.EBUSY}

	// ErrInvalid is returned for negative descriptors and zero Borrowed
	// values. It unwraps to EBADF.
	ErrInvalid error = &stateError{msg: "fd: invalid descriptor", code: unix.EBADF}

	// ErrTooMany is returned when a Tracker's limit is reached. It unwraps
	// to EMFILE.
	ErrTooMany error = &stateError{msg: "fd: tracker limit reached", code: unix.EMFILE}
)
