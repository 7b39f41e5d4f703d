package testutil

import (
	"sync"

	"golang.org/x/sys/unix"
)

// RawResult is one scripted outcome of a native call.
type RawResult struct {
	R   uintptr
	Ind unix.Errno
}

// Ok returns a successful outcome with return value r.
func Ok(r uintptr) RawResult {
	return RawResult{R: r}
}

// Fail returns a sentinel failure (-1) with the given indicator.
func Fail(ind unix.Errno) RawResult {
	return RawResult{R: ^uintptr(0), Ind: ind}
}

// Script replays a fixed sequence of outcomes. Once exhausted, the last
// outcome repeats. It is safe for concurrent use.
type Script struct {
	mu    sync.Mutex
	steps []RawResult
	calls int
}

// NewScript creates a Script from the given outcomes.
func NewScript(steps ...RawResult) *Script {
	return &Script{steps: steps}
}

// Interrupts scripts n EINTR failures followed by then.
func Interrupts(n int, then RawResult) *Script {
	steps := make([]RawResult, 0, n+1)
	for range n {
		steps = append(steps, Fail(unix.EINTR))
	}
	return NewScript(append(steps, then)...)
}

// Raw has the shape of scall.Raw.
func (s *Script) Raw() (uintptr, unix.Errno) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.steps) == 0 {
		s.calls++
		return 0, 0
	}
	i := s.calls
	if i >= len(s.steps) {
		i = len(s.steps) - 1
	}
	s.calls++
	return s.steps[i].R, s.steps[i].Ind
}

// Err has the shape of a golang.org/x/sys/unix call returning (int, error):
// failures are reported as unix.Errno values.
func (s *Script) Err() (int, error) {
	r, ind := s.Raw()
	if int(r) == -1 {
		return -1, ind
	}
	return int(r), nil
}

// Calls returns how many times the script was invoked.
func (s *Script) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}
