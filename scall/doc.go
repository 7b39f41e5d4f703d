// Package scall turns errno-reporting native calls into checked Go calls.
//
// # Calling conventions
//
// A native call reports failure in one of three ways, described by a
// Convention:
//
//   - Sentinel: the return value is -1 and the cause is in the error
//     indicator (read, write, open, ...).
//   - NonZero: any nonzero return is a failure and the cause is in the
//     indicator (pipe2, sigprocmask, ...).
//   - Direct: the return value itself is the code (pthread-style calls).
//
// Raw calls are given in the register shape of unix.Syscall, where the
// indicator is returned by the same call that produced the result:
//
//	n, err := scall.Invoke(op, func() (uintptr, unix.Errno) {
//	    r, _, e := unix.Syscall(unix.SYS_READ, uintptr(fd), uintptr(p), uintptr(len(buf)))
//	    return r, e
//	})
//
// Calls from golang.org/x/sys/unix that already return an error go through
// Do, which extracts the code from the error.
//
// # Interruption
//
// When a call fails with EINTR, the adapter issues it again, without bound,
// unless the Op's Policy is Surface. Operations with caller-visible partial
// side effects or timeouts (close, poll, nanosleep, ...) surface the
// interruption instead; PolicyFor holds the table.
//
// Every other failure is returned as an errno.Error. The adapter never
// panics.
package scall
