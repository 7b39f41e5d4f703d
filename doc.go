// Package syskit provides safe, zero-overhead-in-spirit wrappers over
// POSIX and Linux system primitives.
//
// The module is organized as a small core and a catalog of wrappers built
// on it:
//
//   - errno: the Error value every wrapper reports, with a portable Kind
//   - scall: the adapter that issues a native call, checks its failure
//     convention and restarts it after EINTR according to a per-op policy
//   - fd: owning (*FD) and borrowing (Borrowed) descriptor handles that
//     release exactly once, explicitly or on drop
//   - negotiate: buffer sizing for calls with results of unknown length
//   - mman, unistd, sigset: wrappers over memory mappings, path and process
//     calls, and signal masks
//
// # Quick Start
//
//	r, w, err := fd.Pipe(unix.O_CLOEXEC)
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
//	defer w.Close()
//
//	if _, err := w.Write([]byte("ping")); err != nil {
//	    e, _ := errno.FromError(err)
//	    if e.Kind() == errno.WouldBlock {
//	        // retry later
//	    }
//	    return err
//	}
//
// # Errors
//
// Every failure carries a native code: errno.FromError recovers it from any
// error returned by the module, including guard state errors (which map to
// EBADF) and capacity errors (ERANGE).
//
// # Observability
//
// The package-level configuration holds a structured logger and a metrics
// collector shared by all wrappers. Both default to no-ops:
//
//	syskit.Configure(
//	    syskit.WithLogger(syskit.NewJSONLogger(slog.LevelDebug)),
//	    syskit.WithMetrics(&syskit.BasicMetricsCollector{}),
//	)
//
// Interrupted calls that are restarted are logged at debug level; failed
// automatic releases are logged at warn level since no caller can observe
// them.
//
// # Tiers
//
// Build tags select how much the module may do on its own. The default
// build is TierFull. With -tags syskit_alloc the os.File bridges are left
// out; with -tags syskit_minimal only caller-supplied fixed buffers are
// available to buffer negotiation. BuildTier reports the selection.
package syskit
