package scall

import (
	"sync"
)

// Policy selects what the adapter does when a call is interrupted.
type Policy uint8

const (
	// Restart issues the call again until it completes or fails otherwise.
	Restart Policy = iota
	// Surface returns the interruption to the caller after one invocation.
	Surface
)

func (p Policy) String() string {
	switch p {
	case Restart:
		return "restart"
	case Surface:
		return "surface"
	default:
		return "unknown"
	}
}

// Calls listed here must not be restarted transparently.
//
// close releases the descriptor even when interrupted on Linux, so a retry
// could close a descriptor reused by another goroutine. The waiting calls
// carry a timeout that a restart would silently extend.
var policies = struct {
	sync.RWMutex
	m map[string]Policy
}{
	m: map[string]Policy{
		"close":           Surface,
		"poll":            Surface,
		"ppoll":           Surface,
		"select":          Surface,
		"pselect6":        Surface,
		"epoll_wait":      Surface,
		"epoll_pwait":     Surface,
		"nanosleep":       Surface,
		"clock_nanosleep": Surface,
		"rt_sigtimedwait": Surface,
		"rt_sigsuspend":   Surface,
		"pause":           Surface,
	},
}

// PolicyFor returns the interruption policy for the named operation.
// Operations not in the table are restarted.
func PolicyFor(name string) Policy {
	policies.RLock()
	defer policies.RUnlock()
	if p, ok := policies.m[name]; ok {
		return p
	}
	return Restart
}

// RegisterPolicy records the policy for an operation. Ops built with NewOp
// after the call pick it up; existing Op values keep theirs.
func RegisterPolicy(name string, p Policy) {
	policies.Lock()
	defer policies.Unlock()
	policies.m[name] = p
}
