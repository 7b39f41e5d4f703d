//go:build unix && !syskit_alloc && !syskit_minimal

package fd

import (
	"os"
)

// FromFile returns a new owner of a close-on-exec duplicate of f's
// descriptor. f stays open and independent.
func FromFile(f *os.File, opts ...Option) (*FD, error) {
	rc, err := f.SyscallConn()
	if err != nil {
		return nil, err
	}
	var (
		nid  int
		derr error
	)
	if err := rc.Control(func(s uintptr) {
		nid, derr = dupCloexec(int(s))
	}); err != nil {
		return nil, err
	}
	if derr != nil {
		return nil, derr
	}
	return adopt(nid, newOwner(opts))
}

// File consumes the guard and returns an *os.File owning the descriptor.
func (f *FD) File(name string) (*os.File, error) {
	id, err := f.IntoRaw()
	if err != nil {
		return nil, err
	}
	return os.NewFile(uintptr(id), name), nil
}
