//go:build unix

package mman

import (
	"github.com/hupe1980/syskit/errno"
	"github.com/hupe1980/syskit/scall"
	"golang.org/x/sys/unix"
)

var (
	opMmap     = scall.NewOp("mmap", scall.Sentinel)
	opMunmap   = scall.NewOp("munmap", scall.Sentinel)
	opMadvise  = scall.NewOp("madvise", scall.Sentinel)
	opMprotect = scall.NewOp("mprotect", scall.Sentinel)
	opMsync    = scall.NewOp("msync", scall.Sentinel)
	opMlock    = scall.NewOp("mlock", scall.Sentinel)
	opMunlock  = scall.NewOp("munlock", scall.Sentinel)
)

func mmap(id int, offset int64, length, prot, flags int) ([]byte, error) {
	return scall.Do(opMmap, func() ([]byte, error) {
		return unix.Mmap(id, offset, length, prot, flags)
	})
}

func munmap(data []byte) error {
	return scall.Exec(opMunmap, func() error { return unix.Munmap(data) })
}

func advise(data []byte, pattern AccessPattern) error {
	if len(data) == 0 {
		return nil
	}

	var advice int
	switch pattern {
	case AccessSequential:
		advice = unix.MADV_SEQUENTIAL
	case AccessRandom:
		advice = unix.MADV_RANDOM
	case AccessWillNeed:
		advice = unix.MADV_WILLNEED
	case AccessDontNeed:
		advice = unix.MADV_DONTNEED
	default:
		advice = unix.MADV_NORMAL
	}

	// madvise needs a page-aligned start. Regions rarely are, and the hint
	// is advisory, so EINVAL is dropped.
	err := scall.Exec(opMadvise, func() error { return unix.Madvise(data, advice) })
	if e, ok := err.(errno.Error); ok && e.Errno() == unix.EINVAL {
		return nil
	}
	return err
}

func mprotect(data []byte, prot int) error {
	return scall.Exec(opMprotect, func() error { return unix.Mprotect(data, prot) })
}

func msync(data []byte, flags int) error {
	return scall.Exec(opMsync, func() error { return unix.Msync(data, flags) })
}

func mlock(data []byte) error {
	return scall.Exec(opMlock, func() error { return unix.Mlock(data) })
}

func munlock(data []byte) error {
	return scall.Exec(opMunlock, func() error { return unix.Munlock(data) })
}
