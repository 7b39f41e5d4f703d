// Package unistd wraps process and path system calls whose results need a
// negotiated buffer.
//
// Calls that return strings of unknown length take a negotiate.Strategy
// (nil selects negotiate.Default) or, when the kernel can report the size
// up front, negotiate options for a query-then-allocate strategy:
//
//	cwd, err := unistd.Getcwd(nil)
//	target, err := unistd.Readlink("/proc/self/exe", negotiate.Grow(negotiate.WithMaxSize(1<<16)))
//	names, err := unistd.Listxattr("/data/file")
package unistd
