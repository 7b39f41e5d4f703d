package sigset

import (
	"unsafe"

	"github.com/hupe1980/syskit/fd"
	"github.com/hupe1980/syskit/scall"
	"golang.org/x/sys/unix"
)

var opSignalfd = scall.NewOp("signalfd4", scall.Sentinel)

// Passed as the descriptor argument to create a new signalfd.
var newSignalFD = -1

// SignalFD creates a descriptor from which the signals in s can be read.
// The signals must be blocked, or they are delivered the usual way. flags
// accepts SFD_CLOEXEC and SFD_NONBLOCK.
func SignalFD(s Set, flags int, opts ...fd.Option) (*fd.FD, error) {
	m := s.Mask()
	r, err := scall.Invoke(opSignalfd, func() (uintptr, unix.Errno) {
		r, _, e := unix.RawSyscall6(unix.SYS_SIGNALFD4, uintptr(newSignalFD),
			uintptr(unsafe.Pointer(&m)), kernelSetSize, uintptr(flags), 0, 0)
		return r, e
	})
	if err != nil {
		return nil, err
	}
	f, err := fd.Adopt(int(r), opts...)
	if err != nil {
		_ = fd.New(int(r)).Close()
		return nil, err
	}
	return f, nil
}

// ReadSignal reads one signal record from a signalfd.
func ReadSignal(b fd.Borrowed) (unix.SignalfdSiginfo, error) {
	var info unix.SignalfdSiginfo
	buf := unsafe.Slice((*byte)(unsafe.Pointer(&info)), unsafe.Sizeof(info))
	if err := b.ReadExact(buf); err != nil {
		return unix.SignalfdSiginfo{}, err
	}
	return info, nil
}
