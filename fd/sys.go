//go:build unix

package fd

import (
	"github.com/hupe1980/syskit/scall"
	"golang.org/x/sys/unix"
)

var (
	opRead      = scall.NewOp("read", scall.Sentinel)
	opWrite     = scall.NewOp("write", scall.Sentinel)
	opClose     = scall.NewOp("close", scall.Sentinel)
	opDup       = scall.NewOp("dup", scall.Sentinel)
	opFcntl     = scall.NewOp("fcntl", scall.Sentinel)
	opOpen      = scall.NewOp("openat", scall.Sentinel)
	opPipe      = scall.NewOp("pipe2", scall.NonZero)
	opFsync     = scall.NewOp("fsync", scall.Sentinel)
	opFdatasync = scall.NewOp("fdatasync", scall.Sentinel)
	opPread     = scall.NewOp("pread64", scall.Sentinel)
	opPwrite    = scall.NewOp("pwrite64", scall.Sentinel)
	opSeek      = scall.NewOp("lseek", scall.Sentinel)
	opFstat     = scall.NewOp("fstat", scall.Sentinel)
	opIoctl     = scall.NewOp("ioctl", scall.Sentinel)
	opPoll      = scall.NewOp("poll", scall.Sentinel)
)

func pread(fd int, p []byte, off int64) (int, error) {
	return scall.Do(opPread, func() (int, error) {
		return unix.Pread(fd, p, off)
	})
}

func pwrite(fd int, p []byte, off int64) (int, error) {
	return scall.Do(opPwrite, func() (int, error) {
		return unix.Pwrite(fd, p, off)
	})
}

func seek(fd int, off int64, whence int) (int64, error) {
	return scall.Do(opSeek, func() (int64, error) {
		return unix.Seek(fd, off, whence)
	})
}

func fstat(fd int) (unix.Stat_t, error) {
	return scall.Do(opFstat, func() (st unix.Stat_t, err error) {
		err = unix.Fstat(fd, &st)
		return st, err
	})
}

func poll(fds []unix.PollFd, ms int) (int, error) {
	return scall.Do(opPoll, func() (int, error) {
		return unix.Poll(fds, ms)
	})
}
