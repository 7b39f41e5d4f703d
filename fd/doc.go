// Package fd provides owning and borrowing handles for file descriptors.
//
// An *FD owns a descriptor: it is released exactly once, either by an
// explicit Close or, if the guard becomes unreachable while still owned, by
// a runtime cleanup. Ownership moves by handing over the pointer; IntoRaw
// ends it without releasing.
//
//	f, err := fd.Open("/etc/hostname", unix.O_RDONLY|unix.O_CLOEXEC, 0)
//	if err != nil {
//	    return err
//	}
//	defer f.Close()
//
//	b, err := f.Borrow()
//	if err != nil {
//	    return err
//	}
//	n, err := b.Read(buf)
//
// A Borrowed is a non-owning view. One created by Borrow checks on every
// operation that its owner has not been released and keeps the owner
// reachable for the duration of the native call. Views of descriptors owned
// elsewhere are created with Raw, Stdin, Stdout and Stderr.
//
// Close is never restarted after EINTR: on Linux the descriptor is gone even
// when close reports an interruption, and a retry could close a descriptor
// that another goroutine just received. The descriptor is considered released
// whatever close reports; its error is advisory.
//
// No locks are taken. A Close racing with an operation on a Borrowed of the
// same owner may let that operation observe a closed or reused descriptor,
// exactly as with raw descriptors.
//
// The package targets Linux; the BSD family and macOS are served through
// golang.org/x/sys/unix without the raw system call fast path.
package fd
