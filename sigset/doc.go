// Package sigset manipulates signal sets and the calling thread's signal
// mask.
//
// Mask operations act on the current OS thread only. Goroutines migrate
// between threads, so callers bracket them with runtime.LockOSThread:
//
//	runtime.LockOSThread()
//	defer runtime.UnlockOSThread()
//
//	old, err := sigset.Block(sigset.Of(unix.SIGUSR1))
//	if err != nil { ... }
//	defer sigset.SetMask(old)
//
// On Linux a blocked set can be consumed synchronously through SignalFD.
package sigset
