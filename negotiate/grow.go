//go:build !syskit_minimal

package negotiate

type grow struct {
	cfg Config
}

// Grow returns a Strategy that allocates InitialSize bytes and multiplies
// the capacity by GrowthFactor after every too-small fill. It gives up with
// a *CapacityError of kind Exceeded once a MaxSize buffer was too small or
// MaxAttempts fills were made.
func Grow(opts ...Option) Strategy {
	return &grow{cfg: newConfig(opts)}
}

func (g *grow) Negotiate(op string, fill Fill) ([]byte, error) {
	size := g.cfg.InitialSize
	var last error
	for attempts := 1; ; attempts++ {
		out, small, err := attempt(&g.cfg, make([]byte, size), fill)
		if !small {
			report(op, size, attempts, err)
			return out, err
		}
		last = err
		if size >= g.cfg.MaxSize || attempts >= g.cfg.MaxAttempts {
			cerr := &CapacityError{Op: op, Kind: Exceeded, Size: size, Attempts: attempts, Err: last}
			report(op, size, attempts, cerr)
			return nil, cerr
		}
		size = g.cfg.next(size)
	}
}
