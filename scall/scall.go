package scall

import (
	"context"

	"github.com/hupe1980/syskit"
	"github.com/hupe1980/syskit/errno"
	"golang.org/x/sys/unix"
)

// Convention describes how a native call reports failure.
type Convention uint8

const (
	// Sentinel calls return -1 on failure and leave the code in the indicator.
	Sentinel Convention = iota
	// NonZero calls return nonzero on failure and leave the code in the indicator.
	NonZero
	// Direct calls return the code itself, zero meaning success.
	Direct
)

func (c Convention) String() string {
	switch c {
	case Sentinel:
		return "sentinel"
	case NonZero:
		return "nonzero"
	case Direct:
		return "direct"
	default:
		return "unknown"
	}
}

// Raw is a native call in the register shape of unix.Syscall: the primary
// return value and the error indicator captured with it.
type Raw func() (r uintptr, ind unix.Errno)

// Op describes one native operation.
type Op struct {
	Name       string
	Convention Convention
	Policy     Policy
}

// NewOp returns an Op whose policy is looked up in the policy table.
func NewOp(name string, conv Convention) Op {
	return Op{Name: name, Convention: conv, Policy: PolicyFor(name)}
}

// WithPolicy returns a copy of op with the given policy.
func (op Op) WithPolicy(p Policy) Op {
	op.Policy = p
	return op
}

func (op Op) check(r uintptr, ind unix.Errno) (errno.Error, bool) {
	switch op.Convention {
	case NonZero:
		if r == 0 {
			return errno.Error{}, false
		}
		return errno.Last(ind), true
	case Direct:
		if r == 0 {
			return errno.Error{}, false
		}
		return errno.FromCode(int(r)), true
	default:
		if int(r) != -1 {
			return errno.Error{}, false
		}
		return errno.Last(ind), true
	}
}

func (op Op) restart(e errno.Error, attempt int) bool {
	if op.Policy != Restart || e.Kind() != errno.Interrupted {
		return false
	}
	syskit.CurrentLogger().LogRestart(context.Background(), op.Name, attempt)
	return true
}

func (op Op) report(attempts int, err error) {
	syskit.CurrentMetrics().RecordCall(op.Name, attempts, err)
}

// Invoke issues fn and interprets its result according to op.
//
// On success the raw return value is returned. On failure the indicator is
// converted to an errno.Error immediately; the raw value is not returned.
func Invoke(op Op, fn Raw) (uintptr, error) {
	for attempt := 1; ; attempt++ {
		r, ind := fn()
		e, failed := op.check(r, ind)
		if !failed {
			op.report(attempt, nil)
			return r, nil
		}
		if op.restart(e, attempt) {
			continue
		}
		op.report(attempt, e)
		return 0, e
	}
}

// Do issues fn, a call that reports its code inside the returned error, as
// the high-level functions of golang.org/x/sys/unix do.
//
// Errors carrying a native code are returned as errno.Error; errors without
// one (argument validation in Go code, for instance) pass through unchanged
// and are never retried.
func Do[T any](op Op, fn func() (T, error)) (T, error) {
	for attempt := 1; ; attempt++ {
		v, err := fn()
		if err == nil {
			op.report(attempt, nil)
			return v, nil
		}
		e, cerr := errno.FromError(err)
		if cerr != nil {
			op.report(attempt, err)
			var zero T
			return zero, err
		}
		if op.restart(e, attempt) {
			continue
		}
		op.report(attempt, e)
		var zero T
		return zero, e
	}
}

// Exec is Do for calls that return only an error.
func Exec(op Op, fn func() error) error {
	_, err := Do(op, func() (struct{}, error) {
		return struct{}{}, fn()
	})
	return err
}
