package mman

import (
	"github.com/hupe1980/syskit/errno"
	"golang.org/x/sys/unix"
)

// stateError is a mapping failure detected before any native call. It
// unwraps to the code the kernel would have reported.
type stateError struct {
	msg  string
	code unix.Errno
}

func (e *stateError) Error() string { return e.msg }

func (e *stateError) Unwrap() error { return errno.FromCode(int(e.code)) }

var (
	// ErrClosed is returned when attempting to use an unmapped mapping.
	// It unwraps to EBADF.
	ErrClosed error = &stateError{msg: "mman: mapping is closed", code: unix.EBADF}
	// ErrInvalidSize is returned for negative or oversized lengths. It
	// unwraps to EINVAL.
	ErrInvalidSize error = &stateError{msg: "mman: invalid size", code: unix.EINVAL}
	// ErrOutOfBounds is returned when a region falls outside the mapping.
	// It unwraps to ERANGE.
	ErrOutOfBounds error = &stateError{msg: "mman: out of bounds", code: unix.ERANGE}
	// ErrInvalidOffset is returned for negative offsets. It unwraps to
	// EINVAL.
	ErrInvalidOffset error = &stateError{msg: "mman: invalid offset", code: unix.EINVAL}
)
