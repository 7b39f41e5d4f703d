package sigset

import (
	"unsafe"

	"github.com/hupe1980/syskit/scall"
	"golang.org/x/sys/unix"
)

// Size of the kernel sigset_t passed to rt_sigprocmask and signalfd4.
const kernelSetSize = 8

var opSigprocmask = scall.NewOp("rt_sigprocmask", scall.Sentinel)

func sigprocmask(how int, set *uint64) (Set, error) {
	var old uint64
	_, err := scall.Invoke(opSigprocmask, func() (uintptr, unix.Errno) {
		r, _, e := unix.RawSyscall6(unix.SYS_RT_SIGPROCMASK, uintptr(how),
			uintptr(unsafe.Pointer(set)), uintptr(unsafe.Pointer(&old)), kernelSetSize, 0, 0)
		return r, e
	})
	if err != nil {
		return Set{}, err
	}
	return FromMask(old), nil
}

// Block adds s to the current thread's mask and returns the previous mask.
func Block(s Set) (Set, error) {
	m := s.Mask()
	return sigprocmask(unix.SIG_BLOCK, &m)
}

// Unblock removes s from the current thread's mask and returns the previous
// mask.
func Unblock(s Set) (Set, error) {
	m := s.Mask()
	return sigprocmask(unix.SIG_UNBLOCK, &m)
}

// SetMask replaces the current thread's mask and returns the previous one.
// The kernel silently keeps SIGKILL and SIGSTOP unblocked.
func SetMask(s Set) (Set, error) {
	m := s.Mask()
	return sigprocmask(unix.SIG_SETMASK, &m)
}

// Current returns the current thread's mask.
func Current() (Set, error) {
	return sigprocmask(unix.SIG_BLOCK, nil)
}
