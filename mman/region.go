package mman

import "runtime"

// Region is a view of part of a Mapping. It does not own the memory; every
// call checks that the parent is still mapped and keeps it reachable.
type Region struct {
	parent *Mapping
	offset int
	size   int
}

// Region creates a view of size bytes starting at offset.
func (m *Mapping) Region(offset, size int) (*Region, error) {
	if m.closed.Load() {
		return nil, ErrClosed
	}
	if offset < 0 || size < 0 || offset > len(m.data)-size {
		return nil, ErrOutOfBounds
	}
	return &Region{
		parent: m,
		offset: offset,
		size:   size,
	}, nil
}

// Bytes returns the region's memory, or nil once the parent is closed.
// The slice is valid only until the parent Mapping is closed.
func (r *Region) Bytes() []byte {
	if r.parent.closed.Load() {
		return nil
	}
	return r.parent.data[r.offset : r.offset+r.size]
}

// Len returns the size of the region in bytes.
func (r *Region) Len() int {
	return r.size
}

// Advise provides hints to the kernel about how this region will be accessed.
func (r *Region) Advise(pattern AccessPattern) error {
	if r.parent.closed.Load() {
		return ErrClosed
	}
	err := advise(r.parent.data[r.offset:r.offset+r.size], pattern)
	runtime.KeepAlive(r.parent)
	return err
}
