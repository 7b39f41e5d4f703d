package errno

import (
	"golang.org/x/sys/unix"
)

// Kind is a coarse, platform-independent classification of an Error.
// Callers branch on Kind instead of hardcoding numeric codes.
type Kind uint8

const (
	// Other is every code without a more specific kind.
	Other Kind = iota
	// Interrupted means a signal arrived before the call completed.
	Interrupted
	// WouldBlock means the call cannot make progress without waiting.
	WouldBlock
	// NotFound means the named object does not exist.
	NotFound
	// PermissionDenied means the caller lacks the required privilege.
	PermissionDenied
	// AlreadyExists means the object to be created is already there.
	AlreadyExists
	// ResourceExhausted covers memory, descriptor, space and buffer limits.
	ResourceExhausted
	// InvalidArgument means an argument or handle was rejected.
	InvalidArgument
)

func (k Kind) String() string {
	switch k {
	case Interrupted:
		return "interrupted"
	case WouldBlock:
		return "would block"
	case NotFound:
		return "not found"
	case PermissionDenied:
		return "permission denied"
	case AlreadyExists:
		return "already exists"
	case ResourceExhausted:
		return "resource exhausted"
	case InvalidArgument:
		return "invalid argument"
	default:
		return "other"
	}
}

// kinds is built with assignments rather than a literal: aliases such as
// EAGAIN/EWOULDBLOCK share a value on some platforms.
var kinds = func() map[unix.Errno]Kind {
	m := make(map[unix.Errno]Kind, 32)
	add := func(k Kind, codes ...unix.Errno) {
		for _, c := range codes {
			m[c] = k
		}
	}
	add(Interrupted, unix.EINTR)
	add(WouldBlock, unix.EAGAIN, unix.EWOULDBLOCK, unix.EINPROGRESS, unix.EALREADY)
	add(NotFound, unix.ENOENT, unix.ESRCH, unix.ENXIO, unix.ENODEV)
	add(PermissionDenied, unix.EACCES, unix.EPERM, unix.EROFS)
	add(AlreadyExists, unix.EEXIST, unix.ENOTEMPTY)
	add(ResourceExhausted,
		unix.ENOMEM, unix.ENOSPC, unix.EMFILE, unix.ENFILE, unix.ENOBUFS,
		unix.ERANGE, unix.E2BIG, unix.EDQUOT, unix.EOVERFLOW)
	add(InvalidArgument, unix.EINVAL, unix.EBADF, unix.ENAMETOOLONG, unix.EDOM, unix.ENOTTY)
	return m
}()

// Classify returns the Kind of a native code.
func Classify(code int) Kind {
	if code <= 0 {
		return Other
	}
	return kinds[unix.Errno(code)]
}

// Kind returns the classification of e.
func (e Error) Kind() Kind {
	return Classify(e.code)
}
