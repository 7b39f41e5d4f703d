//go:build !syskit_minimal

package negotiate

import (
	"github.com/hupe1980/syskit/errno"
	"golang.org/x/sys/unix"
)

type query struct {
	size func() (int, error)
	cfg  Config
}

// Query returns a Strategy that asks size for the required capacity,
// allocates exactly that and fills it. If the fill reports the buffer too
// small (the value grew in between) the size is queried again, up to
// MaxAttempts times. A queried size above MaxSize fails immediately with a
// *CapacityError of kind Exceeded.
//
// A queried size of zero yields an empty result without calling the fill;
// a negative size fails with EIO.
func Query(size func() (int, error), opts ...Option) Strategy {
	return &query{size: size, cfg: newConfig(opts)}
}

func (q *query) Negotiate(op string, fill Fill) ([]byte, error) {
	var (
		size int
		last error
	)
	for attempts := 1; attempts <= q.cfg.MaxAttempts; attempts++ {
		var err error
		size, err = q.size()
		if err != nil {
			report(op, size, attempts, err)
			return nil, err
		}
		if size < 0 {
			err := errno.FromCode(int(unix.EIO))
			report(op, 0, attempts, err)
			return nil, err
		}
		if size == 0 {
			report(op, 0, attempts, nil)
			return []byte{}, nil
		}
		if size > q.cfg.MaxSize {
			cerr := &CapacityError{Op: op, Kind: Exceeded, Size: size, Attempts: attempts}
			report(op, size, attempts, cerr)
			return nil, cerr
		}
		out, small, err := attempt(&q.cfg, make([]byte, size), fill)
		if !small {
			report(op, size, attempts, err)
			return out, err
		}
		last = err
	}
	cerr := &CapacityError{Op: op, Kind: Exceeded, Size: size, Attempts: q.cfg.MaxAttempts, Err: last}
	report(op, size, q.cfg.MaxAttempts, cerr)
	return nil, cerr
}
