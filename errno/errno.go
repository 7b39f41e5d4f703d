package errno

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"golang.org/x/sys/unix"
)

// ErrNoCode is returned by FromError when the error carries no native code.
var ErrNoCode = errors.New("errno: no native error code")

// Error represents an OS error encountered when performing an operation.
type Error struct {
	code int
}

// FromCode constructs an Error from a native error code.
// The code is stored verbatim.
func FromCode(code int) Error {
	return Error{code: code}
}

// Last wraps the error indicator captured together with a failed native call.
//
// Go's system call entry points hand the indicator back in the same call
// that returns the result registers, so nothing can overwrite it between
// failure detection and this read. A zero indicator (a failure reported
// without a cause) is mapped to EIO, keeping the stored code inside the
// platform's own code space.
func Last(ind unix.Errno) Error {
	if ind == 0 {
		return Error{code: int(unix.EIO)}
	}
	return Error{code: int(ind)}
}

// FromError extracts the native code carried by err.
//
// Both Error and unix.Errno values are found anywhere in the wrap chain,
// which covers *os.SyscallError, *fs.PathError and *os.LinkError. If the
// chain holds no nonzero code, FromError returns ErrNoCode wrapping err.
func FromError(err error) (Error, error) {
	if err == nil {
		return Error{}, ErrNoCode
	}
	var e Error
	if errors.As(err, &e) && e.code != 0 {
		return e, nil
	}
	var no unix.Errno
	if errors.As(err, &no) && no != 0 {
		return Error{code: int(no)}, nil
	}
	return Error{}, fmt.Errorf("%w: %w", ErrNoCode, err)
}

// Code returns the native error code.
func (e Error) Code() int {
	return e.code
}

// Errno returns the code as a unix.Errno.
func (e Error) Errno() unix.Errno {
	return unix.Errno(e.code)
}

// Name returns the symbolic name of the code (e.g. "ENOENT"), or "Unknown".
func (e Error) Name() string {
	if e.code <= 0 {
		return "Unknown"
	}
	if name := unix.ErrnoName(unix.Errno(e.code)); name != "" {
		return name
	}
	return "Unknown"
}

// Message returns the platform's description of the code.
//
// Codes the platform does not know (including negative ones) are rendered as
// "unknown error" rather than a per-code message.
func (e Error) Message() string {
	switch {
	case e.code < 0:
		return "unknown error"
	case e.code == 0:
		return "success"
	case unix.ErrnoName(unix.Errno(e.code)) == "":
		return "unknown error"
	}
	return unix.Errno(e.code).Error()
}

func (e Error) Error() string {
	return e.Message() + " (code " + strconv.Itoa(e.code) + ")"
}

// GoString implements fmt.GoStringer.
func (e Error) GoString() string {
	return "errno.Error{" + e.Name() + "=" + strconv.Itoa(e.code) + "}"
}

// Unwrap returns the code as a unix.Errno, or nil for the zero Error.
func (e Error) Unwrap() error {
	if e.code == 0 {
		return nil
	}
	return unix.Errno(e.code)
}

// Temporary reports whether the failure is transient: the call was
// interrupted or would have blocked.
func (e Error) Temporary() bool {
	k := e.Kind()
	return k == Interrupted || k == WouldBlock
}

// Timeout reports whether the failure means "not ready yet" or "timed out".
func (e Error) Timeout() bool {
	return e.Kind() == WouldBlock || e.code == int(unix.ETIMEDOUT)
}

// SyscallError converts e to the generic error used by the os package.
// The code stays retrievable through FromError and errors.As.
func (e Error) SyscallError(op string) error {
	return os.NewSyscallError(op, e.Errno())
}

// PathError converts e to an *fs.PathError for an operation on path.
func (e Error) PathError(op, path string) error {
	return &fs.PathError{Op: op, Path: path, Err: e.Errno()}
}
