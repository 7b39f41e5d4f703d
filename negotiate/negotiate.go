package negotiate

import (
	"context"

	"github.com/hupe1980/syskit"
	"github.com/hupe1980/syskit/errno"
	"golang.org/x/sys/unix"
)

// Fill is one native fill step. It writes into buf and returns the number
// of bytes produced.
type Fill func(buf []byte) (n int, err error)

// Strategy chooses the buffers offered to a Fill.
//
// The returned slice has length and capacity n, where n is the count the
// fill reported.
type Strategy interface {
	Negotiate(op string, fill Fill) ([]byte, error)
}

// TooSmall reports whether a fill into buf, which returned n and err,
// failed because buf was too small.
type TooSmall func(buf []byte, n int, err error) bool

// Code returns a TooSmall that matches fills failing with code.
func Code(code unix.Errno) TooSmall {
	return func(_ []byte, _ int, err error) bool {
		if err == nil {
			return false
		}
		e, cerr := errno.FromError(err)
		return cerr == nil && e.Errno() == code
	}
}

// RangeError is the default predicate: the fill failed with ERANGE.
var RangeError = Code(unix.ERANGE)

// FullBuffer treats a fill that used the whole buffer as truncated, for
// calls like readlink that never report truncation. ERANGE also counts.
func FullBuffer(buf []byte, n int, err error) bool {
	if err != nil {
		return RangeError(buf, n, err)
	}
	return n >= len(buf)
}

// attempt runs one fill. A count outside [0, len(buf)] is treated as too
// small so that the caller can never see bytes the fill did not write.
func attempt(c *Config, buf []byte, fill Fill) (out []byte, small bool, err error) {
	n, err := fill(buf)
	if n > len(buf) || c.TooSmall(buf, n, err) {
		return nil, true, err
	}
	if err != nil {
		return nil, false, err
	}
	if n < 0 {
		return nil, false, errno.FromCode(int(unix.EIO))
	}
	return buf[:n:n], false, nil
}

func report(op string, size, attempts int, err error) {
	syskit.CurrentMetrics().RecordNegotiation(op, size, attempts, err)
	syskit.CurrentLogger().LogNegotiation(context.Background(), op, size, attempts, err)
}

type fixed struct {
	buf []byte
	cfg Config
}

// Fixed returns a Strategy that fills buf once. If buf is too small the
// result is a *CapacityError of kind Insufficient.
//
// Only WithTooSmall is meaningful for Fixed; size options are ignored.
func Fixed(buf []byte, opts ...Option) Strategy {
	return &fixed{buf: buf, cfg: newConfig(opts)}
}

func (f *fixed) Negotiate(op string, fill Fill) ([]byte, error) {
	out, small, err := attempt(&f.cfg, f.buf, fill)
	if small {
		err = &CapacityError{Op: op, Kind: Insufficient, Size: len(f.buf), Attempts: 1, Err: err}
	}
	report(op, len(f.buf), 1, err)
	if err != nil {
		return nil, err
	}
	return out, nil
}
