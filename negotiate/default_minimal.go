//go:build syskit_minimal

package negotiate

import (
	"github.com/hupe1980/syskit/errno"
	"golang.org/x/sys/unix"
)

type once struct {
	size func() (int, error)
	cfg  Config
}

// Default returns a Strategy that makes a single fill into a buffer of
// InitialSize bytes.
func Default(opts ...Option) Strategy {
	return &once{cfg: newConfig(opts)}
}

// DefaultQuery returns a Strategy that queries the size once and makes a
// single fill. A change in size is reported as Insufficient.
func DefaultQuery(size func() (int, error), opts ...Option) Strategy {
	return &once{size: size, cfg: newConfig(opts)}
}

func (o *once) Negotiate(op string, fill Fill) ([]byte, error) {
	n := o.cfg.InitialSize
	if o.size != nil {
		var err error
		if n, err = o.size(); err != nil {
			report(op, 0, 1, err)
			return nil, err
		}
		if n < 0 {
			err := errno.FromCode(int(unix.EIO))
			report(op, 0, 1, err)
			return nil, err
		}
		if n == 0 {
			report(op, 0, 1, nil)
			return []byte{}, nil
		}
		if n > o.cfg.MaxSize {
			cerr := &CapacityError{Op: op, Kind: Exceeded, Size: n, Attempts: 1}
			report(op, n, 1, cerr)
			return nil, cerr
		}
	}
	return (&fixed{buf: make([]byte, n), cfg: o.cfg}).Negotiate(op, fill)
}
