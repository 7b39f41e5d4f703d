// Package testutil provides testing utilities for syskit.
//
// This package is intended for use in tests only. It provides scripted
// native calls for exercising the adapter without touching the kernel, and
// recorders for counting release calls issued by resource guards.
//
// # Scripted Calls
//
//	s := testutil.NewScript(
//	    testutil.Fail(unix.EINTR),
//	    testutil.Fail(unix.EINTR),
//	    testutil.Ok(3),
//	)
//	r, err := scall.Invoke(op, s.Raw) // r == 3 after three invocations
//	s.Calls()                         // 3
//
// # Release Recording
//
//	rec := testutil.NewReleaseRecorder(nil)
//	f := fd.New(7, fd.WithReleaser(rec.Release))
//	f.Close()
//	rec.Count(7) // 1
package testutil
