// Package errno provides the portable error value reported by every syskit
// wrapper.
//
// # Error
//
// An Error wraps exactly one native error code from the unix.Errno space.
// It is a comparable value: two Errors are equal iff their codes are equal,
// and classification depends on nothing but the code.
//
//	e := errno.FromCode(int(unix.ENOENT))
//	e.Kind()    // errno.NotFound
//	e.Name()    // "ENOENT"
//	e.Error()   // "no such file or directory (code 2)"
//
// # Conversion
//
// Errors convert to the error values used by the os and io/fs packages and
// back again:
//
//	err := e.SyscallError("open")  // *os.SyscallError
//	back, _ := errno.FromError(err) // back == e
//
// FromError fails with ErrNoCode when the error chain carries no native code;
// there is no native code for an unknown cause.
//
// Errors unwrap to their unix.Errno, so errors.Is(err, os.ErrNotExist) and
// errors.Is(err, unix.ENOENT) work on any Error.
package errno
