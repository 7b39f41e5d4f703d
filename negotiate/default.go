//go:build !syskit_minimal

package negotiate

// Default returns Grow(opts...).
func Default(opts ...Option) Strategy {
	return Grow(opts...)
}

// DefaultQuery returns Query(size, opts...).
func DefaultQuery(size func() (int, error), opts ...Option) Strategy {
	return Query(size, opts...)
}
