// Package mman provides owned memory mappings.
//
// # Overview
//
// A *Mapping owns a region created by mmap(2). It is unmapped exactly once,
// by an explicit Close or by a runtime cleanup once the Mapping becomes
// unreachable. Mappings of files are created from a borrowed descriptor; the
// descriptor may be closed right after mapping.
//
// # Usage
//
//	m, err := mman.Open("segment.bin")
//	if err != nil { ... }
//	defer m.Close()
//
//	// Zero-copy access to file contents
//	data := m.Bytes()
//
//	// Create a view into a specific region
//	region, _ := m.Region(offset, size)
//
//	// Provide kernel hints for access patterns
//	m.Advise(mman.AccessSequential)
//
// # Lifetime
//
// Slices returned by Bytes do not keep the Mapping reachable. Keep the
// Mapping alive (or call runtime.KeepAlive) for as long as its bytes are
// used. Region checks its parent on every call.
//
// # Limits
//
// A Limit caps the bytes mapped by every Mapping created with WithLimit.
// Exceeding it fails with ENOMEM before any native call is made;
// WithLimitWait waits for other mappings to be closed instead.
//
// Errors detected before a native call (ErrClosed, ErrInvalidSize,
// ErrInvalidOffset, ErrOutOfBounds) unwrap to EBADF, EINVAL and ERANGE like
// the kernel's own failures.
package mman
