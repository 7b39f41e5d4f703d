package testutil

import (
	"sync"
)

// ReleaseRecorder counts release calls per identifier. It is safe for
// concurrent use, including from runtime cleanup goroutines.
type ReleaseRecorder struct {
	mu     sync.Mutex
	counts map[int]int
	order  []int
	err    error
	done   chan int
}

// NewReleaseRecorder creates a recorder whose Release returns err.
func NewReleaseRecorder(err error) *ReleaseRecorder {
	return &ReleaseRecorder{
		counts: make(map[int]int),
		err:    err,
		done:   make(chan int, 64),
	}
}

// Release records a release of id and returns the configured error.
func (r *ReleaseRecorder) Release(id int) error {
	r.mu.Lock()
	r.counts[id]++
	r.order = append(r.order, id)
	r.mu.Unlock()

	select {
	case r.done <- id:
	default:
	}
	return r.err
}

// Count returns how many times id was released.
func (r *ReleaseRecorder) Count(id int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.counts[id]
}

// Total returns the number of release calls across all identifiers.
func (r *ReleaseRecorder) Total() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.order)
}

// Released delivers identifiers as they are released.
func (r *ReleaseRecorder) Released() <-chan int {
	return r.done
}
