// Package negotiate sizes output buffers for native calls whose result
// length is not known in advance.
//
// A native call is expressed as a Fill that writes into a caller-provided
// buffer and reports how many bytes it produced. A Strategy decides which
// buffers to offer:
//
//	Fixed(buf)      one attempt against buf, never grows
//	Grow(opts...)   grow-and-retry, bounded by MaxSize and MaxAttempts
//	Query(q, ...)   ask the size first, allocate exactly that, re-query on change
//
// Whether a failed (or truncated) fill means "buffer too small" is decided by
// a TooSmall predicate. The default treats ERANGE as too small; wrappers for
// calls that truncate silently use FullBuffer instead.
//
// Growable strategies are excluded from builds with the syskit_minimal tag.
// Default and DefaultQuery pick the best strategy available in the build.
package negotiate
