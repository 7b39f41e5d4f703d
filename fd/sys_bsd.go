//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package fd

import (
	"github.com/hupe1980/syskit/scall"
	"golang.org/x/sys/unix"
)

func read(fd int, p []byte) (int, error) {
	return scall.Do(opRead, func() (int, error) {
		return unix.Read(fd, p)
	})
}

func write(fd int, p []byte) (int, error) {
	return scall.Do(opWrite, func() (int, error) {
		return unix.Write(fd, p)
	})
}

func closeRaw(fd int) error {
	return scall.Exec(opClose, func() error {
		return unix.Close(fd)
	})
}

func dup(fd int) (int, error) {
	return scall.Do(opDup, func() (int, error) {
		return unix.Dup(fd)
	})
}

func dupCloexec(fd int) (int, error) {
	return fcntl(fd, unix.F_DUPFD_CLOEXEC, 0)
}

func fcntl(fd, cmd, arg int) (int, error) {
	return scall.Do(opFcntl, func() (int, error) {
		return unix.FcntlInt(uintptr(fd), cmd, arg)
	})
}

func open(path string, flags int, mode uint32) (int, error) {
	return scall.Do(opOpen, func() (int, error) {
		return unix.Open(path, flags, mode)
	})
}

// pipe emulates pipe2 where the platform lacks it. The flags are applied
// after creation, so a concurrent fork may inherit the descriptors.
func pipe(flags int) ([2]int, error) {
	var p [2]int
	if err := scall.Exec(opPipe, func() error { return unix.Pipe(p[:]) }); err != nil {
		return [2]int{-1, -1}, err
	}
	for _, id := range p {
		b := Raw(id)
		if flags&unix.O_CLOEXEC != 0 {
			if err := b.SetCloseOnExec(true); err != nil {
				_ = closeRaw(p[0])
				_ = closeRaw(p[1])
				return [2]int{-1, -1}, err
			}
		}
		if flags&unix.O_NONBLOCK != 0 {
			if err := b.SetNonblock(true); err != nil {
				_ = closeRaw(p[0])
				_ = closeRaw(p[1])
				return [2]int{-1, -1}, err
			}
		}
	}
	return p, nil
}

func fsync(fd int) error {
	return scall.Exec(opFsync, func() error {
		return unix.Fsync(fd)
	})
}

// fdatasync falls back to fsync, which is a superset.
func fdatasync(fd int) error {
	return fsync(fd)
}

func isTerminal(fd int) bool {
	_, err := scall.Do(opIoctl, func() (*unix.Termios, error) {
		return unix.IoctlGetTermios(fd, unix.TIOCGETA)
	})
	return err == nil
}
