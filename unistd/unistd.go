//go:build unix

package unistd

import (
	"bytes"

	"github.com/hupe1980/syskit/errno"
	"github.com/hupe1980/syskit/negotiate"
	"github.com/hupe1980/syskit/scall"
	"golang.org/x/sys/unix"
)

// pathMax is the usual PATH_MAX, used as the first capacity for paths.
const pathMax = 4096

var (
	opGetcwd   = scall.NewOp("getcwd", scall.Sentinel)
	opReadlink = scall.NewOp("readlink", scall.Sentinel)
	opChdir    = scall.NewOp("chdir", scall.Sentinel)
	opAccess   = scall.NewOp("faccessat", scall.Sentinel)
	opKill     = scall.NewOp("kill", scall.Sentinel)
)

func strategy(s negotiate.Strategy, initial int) negotiate.Strategy {
	if s != nil {
		return s
	}
	return negotiate.Default(negotiate.WithInitialSize(initial))
}

// Getcwd returns the current working directory.
func Getcwd(s negotiate.Strategy) (string, error) {
	out, err := strategy(s, pathMax).Negotiate(opGetcwd.Name, func(buf []byte) (int, error) {
		if len(buf) == 0 {
			return 0, errno.FromCode(int(unix.ERANGE))
		}
		return scall.Do(opGetcwd, func() (int, error) {
			return unix.Getcwd(buf)
		})
	})
	if err != nil {
		return "", err
	}
	if i := bytes.IndexByte(out, 0); i >= 0 {
		out = out[:i]
	}
	return string(out), nil
}

// Readlink returns the target of the symbolic link at path.
//
// readlink truncates silently, so a result that fills the buffer is
// reported to the strategy as ERANGE and retried with a larger one.
func Readlink(path string, s negotiate.Strategy) (string, error) {
	out, err := strategy(s, 256).Negotiate(opReadlink.Name, func(buf []byte) (int, error) {
		n, err := scall.Do(opReadlink, func() (int, error) {
			return unix.Readlink(path, buf)
		})
		if err == nil && n >= len(buf) {
			return n, errno.FromCode(int(unix.ERANGE))
		}
		return n, err
	})
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Chdir changes the current working directory.
func Chdir(path string) error {
	return scall.Exec(opChdir, func() error {
		return unix.Chdir(path)
	})
}

// Access checks whether the calling process can access path; mode is F_OK
// or a combination of R_OK, W_OK and X_OK.
func Access(path string, mode uint32) error {
	return scall.Exec(opAccess, func() error {
		return unix.Access(path, mode)
	})
}

// Getpid returns the process id. It cannot fail.
func Getpid() int {
	return unix.Getpid()
}

// Kill sends sig to pid. Signal 0 only checks that pid exists and may be
// signalled.
func Kill(pid int, sig unix.Signal) error {
	return scall.Exec(opKill, func() error {
		return unix.Kill(pid, sig)
	})
}
