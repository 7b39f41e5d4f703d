package fd

import (
	"unsafe"

	"github.com/hupe1980/syskit/scall"
	"golang.org/x/sys/unix"
)

// A variable, so it converts to uintptr at run time.
var atFDCWD = unix.AT_FDCWD

func read(fd int, p []byte) (int, error) {
	r, err := scall.Invoke(opRead, func() (uintptr, unix.Errno) {
		r, _, e := unix.Syscall(unix.SYS_READ, uintptr(fd), uintptr(unsafe.Pointer(unsafe.SliceData(p))), uintptr(len(p)))
		return r, e
	})
	return int(r), err
}

func write(fd int, p []byte) (int, error) {
	r, err := scall.Invoke(opWrite, func() (uintptr, unix.Errno) {
		r, _, e := unix.Syscall(unix.SYS_WRITE, uintptr(fd), uintptr(unsafe.Pointer(unsafe.SliceData(p))), uintptr(len(p)))
		return r, e
	})
	return int(r), err
}

func closeRaw(fd int) error {
	_, err := scall.Invoke(opClose, func() (uintptr, unix.Errno) {
		r, _, e := unix.Syscall(unix.SYS_CLOSE, uintptr(fd), 0, 0)
		return r, e
	})
	return err
}

func dup(fd int) (int, error) {
	r, err := scall.Invoke(opDup, func() (uintptr, unix.Errno) {
		r, _, e := unix.RawSyscall(unix.SYS_DUP, uintptr(fd), 0, 0)
		return r, e
	})
	return int(r), err
}

func dupCloexec(fd int) (int, error) {
	return fcntl(fd, unix.F_DUPFD_CLOEXEC, 0)
}

func fcntl(fd, cmd, arg int) (int, error) {
	r, err := scall.Invoke(opFcntl, func() (uintptr, unix.Errno) {
		r, _, e := unix.Syscall(unix.SYS_FCNTL, uintptr(fd), uintptr(cmd), uintptr(arg))
		return r, e
	})
	return int(r), err
}

func open(path string, flags int, mode uint32) (int, error) {
	p, err := unix.BytePtrFromString(path)
	if err != nil {
		return -1, err
	}
	r, err := scall.Invoke(opOpen, func() (uintptr, unix.Errno) {
		r, _, e := unix.Syscall6(unix.SYS_OPENAT, uintptr(atFDCWD), uintptr(unsafe.Pointer(p)), uintptr(flags|unix.O_LARGEFILE), uintptr(mode), 0, 0)
		return r, e
	})
	if err != nil {
		return -1, err
	}
	return int(r), nil
}

func pipe(flags int) ([2]int, error) {
	var p [2]int32
	_, err := scall.Invoke(opPipe, func() (uintptr, unix.Errno) {
		r, _, e := unix.RawSyscall(unix.SYS_PIPE2, uintptr(unsafe.Pointer(&p)), uintptr(flags), 0)
		return r, e
	})
	if err != nil {
		return [2]int{-1, -1}, err
	}
	return [2]int{int(p[0]), int(p[1])}, nil
}

func fsync(fd int) error {
	_, err := scall.Invoke(opFsync, func() (uintptr, unix.Errno) {
		r, _, e := unix.Syscall(unix.SYS_FSYNC, uintptr(fd), 0, 0)
		return r, e
	})
	return err
}

func fdatasync(fd int) error {
	_, err := scall.Invoke(opFdatasync, func() (uintptr, unix.Errno) {
		r, _, e := unix.Syscall(unix.SYS_FDATASYNC, uintptr(fd), 0, 0)
		return r, e
	})
	return err
}

func isTerminal(fd int) bool {
	_, err := scall.Do(opIoctl, func() (*unix.Termios, error) {
		return unix.IoctlGetTermios(fd, unix.TCGETS)
	})
	return err == nil
}
