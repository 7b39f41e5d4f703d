package fd

import (
	"runtime"

	"github.com/hupe1980/syskit/errno"
	"golang.org/x/sys/unix"
)

// Borrowed is a non-owning view of a descriptor.
//
// The zero Borrowed is invalid; its operations fail with ErrInvalid.
type Borrowed struct {
	id    int
	owner *FD
	live  bool
}

// Raw returns an unchecked view of a descriptor owned elsewhere. The caller
// guarantees id stays open while the view is used.
func Raw(id int) Borrowed {
	if id < 0 {
		return Borrowed{}
	}
	return Borrowed{id: id, live: true}
}

// Stdin returns a view of descriptor 0.
func Stdin() Borrowed { return Raw(0) }

// Stdout returns a view of descriptor 1.
func Stdout() Borrowed { return Raw(1) }

// Stderr returns a view of descriptor 2.
func Stderr() Borrowed { return Raw(2) }

// Fd returns the descriptor, or -1 for the zero Borrowed. It does not check
// the owner.
func (b Borrowed) Fd() int {
	if !b.live {
		return -1
	}
	return b.id
}

func (b Borrowed) check() (int, error) {
	if !b.live {
		return -1, ErrInvalid
	}
	if b.owner != nil && b.owner.Fd() != b.id {
		return -1, ErrReleased
	}
	return b.id, nil
}

// Control runs fn with the descriptor after checking the owner, keeping the
// owner reachable until fn returns. Wrappers for calls this package does not
// cover build on it.
func (b Borrowed) Control(fn func(fd int) error) error {
	id, err := b.check()
	if err != nil {
		return err
	}
	err = fn(id)
	runtime.KeepAlive(b.owner)
	return err
}

// Read reads up to len(p) bytes. Unlike io.Reader, end of file is reported
// as (0, nil).
func (b Borrowed) Read(p []byte) (n int, err error) {
	err = b.Control(func(id int) (cerr error) {
		n, cerr = read(id, p)
		return
	})
	return n, err
}

// Write issues a single write and returns the count it reports.
func (b Borrowed) Write(p []byte) (n int, err error) {
	err = b.Control(func(id int) (cerr error) {
		n, cerr = write(id, p)
		return
	})
	return n, err
}

// WriteAll writes all of p, retrying short writes. A write that makes no
// progress fails with EIO.
func (b Borrowed) WriteAll(p []byte) error {
	_, err := b.writeAll(p)
	return err
}

func (b Borrowed) writeAll(p []byte) (int, error) {
	total := 0
	for total < len(p) {
		n, err := b.Write(p[total:])
		if err != nil {
			return total, err
		}
		if n == 0 {
			return total, errno.FromCode(int(unix.EIO))
		}
		total += n
	}
	return total, nil
}

// ReadExact fills p completely. Reaching end of file first fails with
// EINVAL; bytes read so far remain in p.
func (b Borrowed) ReadExact(p []byte) error {
	for len(p) > 0 {
		n, err := b.Read(p)
		if err != nil {
			return err
		}
		if n == 0 {
			return errno.FromCode(int(unix.EINVAL))
		}
		p = p[n:]
	}
	return nil
}

// Pread reads at offset without moving the file position.
func (b Borrowed) Pread(p []byte, offset int64) (n int, err error) {
	err = b.Control(func(id int) (cerr error) {
		n, cerr = pread(id, p, offset)
		return
	})
	return n, err
}

// Pwrite writes at offset without moving the file position.
func (b Borrowed) Pwrite(p []byte, offset int64) (n int, err error) {
	err = b.Control(func(id int) (cerr error) {
		n, cerr = pwrite(id, p, offset)
		return
	})
	return n, err
}

// Seek sets the file position; whence is io.SeekStart, io.SeekCurrent or
// io.SeekEnd.
func (b Borrowed) Seek(offset int64, whence int) (pos int64, err error) {
	err = b.Control(func(id int) (cerr error) {
		pos, cerr = seek(id, offset, whence)
		return
	})
	return pos, err
}

// Tell returns the file position.
func (b Borrowed) Tell() (int64, error) {
	return b.Seek(0, unix.SEEK_CUR)
}

// CloseOnExec reports whether FD_CLOEXEC is set.
func (b Borrowed) CloseOnExec() (bool, error) {
	var flags int
	err := b.Control(func(id int) (cerr error) {
		flags, cerr = fcntl(id, unix.F_GETFD, 0)
		return
	})
	return flags&unix.FD_CLOEXEC != 0, err
}

// SetCloseOnExec sets or clears FD_CLOEXEC.
func (b Borrowed) SetCloseOnExec(on bool) error {
	return b.Control(func(id int) error {
		flags, err := fcntl(id, unix.F_GETFD, 0)
		if err != nil {
			return err
		}
		next := flags &^ unix.FD_CLOEXEC
		if on {
			next |= unix.FD_CLOEXEC
		}
		if next == flags {
			return nil
		}
		_, err = fcntl(id, unix.F_SETFD, next)
		return err
	})
}

// Nonblock reports whether O_NONBLOCK is set.
func (b Borrowed) Nonblock() (bool, error) {
	var flags int
	err := b.Control(func(id int) (cerr error) {
		flags, cerr = fcntl(id, unix.F_GETFL, 0)
		return
	})
	return flags&unix.O_NONBLOCK != 0, err
}

// SetNonblock sets or clears O_NONBLOCK on the open file description, which
// is shared with every duplicate.
func (b Borrowed) SetNonblock(on bool) error {
	return b.Control(func(id int) error {
		flags, err := fcntl(id, unix.F_GETFL, 0)
		if err != nil {
			return err
		}
		next := flags &^ unix.O_NONBLOCK
		if on {
			next |= unix.O_NONBLOCK
		}
		if next == flags {
			return nil
		}
		_, err = fcntl(id, unix.F_SETFL, next)
		return err
	})
}

// IsTerminal reports whether the descriptor refers to a terminal.
func (b Borrowed) IsTerminal() bool {
	var tty bool
	_ = b.Control(func(id int) error {
		tty = isTerminal(id)
		return nil
	})
	return tty
}

// Sync flushes file data and metadata to storage.
func (b Borrowed) Sync() error {
	return b.Control(fsync)
}

// SyncData flushes file data, and only the metadata needed to read it back.
func (b Borrowed) SyncData() error {
	return b.Control(fdatasync)
}

// Stat returns the file status.
func (b Borrowed) Stat() (st unix.Stat_t, err error) {
	err = b.Control(func(id int) (cerr error) {
		st, cerr = fstat(id)
		return
	})
	return st, err
}

// Dup duplicates the descriptor into a new owner with close-on-exec
// cleared. Duplicates of a checked view inherit the owner's options.
func (b Borrowed) Dup() (*FD, error) {
	return b.dup(false, b.inherit())
}

// DupCloseOnExec is Dup with close-on-exec set on the new descriptor.
func (b Borrowed) DupCloseOnExec() (*FD, error) {
	return b.dup(true, b.inherit())
}

func (b Borrowed) inherit() owner {
	if b.owner != nil {
		return b.owner.owner
	}
	return newOwner(nil)
}

func (b Borrowed) dup(cloexec bool, o owner) (*FD, error) {
	var nid int
	err := b.Control(func(id int) (cerr error) {
		if cloexec {
			nid, cerr = dupCloexec(id)
		} else {
			nid, cerr = dup(id)
		}
		return
	})
	if err != nil {
		return nil, err
	}
	return adopt(nid, o)
}
