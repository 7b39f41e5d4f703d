package syskit

import (
	"sync/atomic"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Collectors are called synchronously on the calling goroutine (and, for
// automatic releases, on the runtime's cleanup goroutine), so
// implementations must be cheap and safe for concurrent use.
type MetricsCollector interface {
	// RecordCall is called after each adapted native call completes.
	// attempts counts restarts after interruption (1 means no restart),
	// err is nil if successful.
	RecordCall(op string, attempts int, err error)

	// RecordRelease is called after an owned handle is released.
	// automatic reports whether the release was issued by a cleanup.
	RecordRelease(op string, automatic bool, err error)

	// RecordNegotiation is called after each buffer negotiation.
	// size is the last capacity tried.
	RecordNegotiation(op string, size, attempts int, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordCall(string, int, error)             {}
func (NoopMetricsCollector) RecordRelease(string, bool, error)         {}
func (NoopMetricsCollector) RecordNegotiation(string, int, int, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	Calls               atomic.Int64
	CallErrors          atomic.Int64
	Restarts            atomic.Int64
	Releases            atomic.Int64
	AutomaticReleases   atomic.Int64
	ReleaseErrors       atomic.Int64
	Negotiations        atomic.Int64
	NegotiationErrors   atomic.Int64
	NegotiationAttempts atomic.Int64
}

// RecordCall implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCall(_ string, attempts int, err error) {
	b.Calls.Add(1)
	if attempts > 1 {
		b.Restarts.Add(int64(attempts - 1))
	}
	if err != nil {
		b.CallErrors.Add(1)
	}
}

// RecordRelease implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRelease(_ string, automatic bool, err error) {
	b.Releases.Add(1)
	if automatic {
		b.AutomaticReleases.Add(1)
	}
	if err != nil {
		b.ReleaseErrors.Add(1)
	}
}

// RecordNegotiation implements MetricsCollector.
func (b *BasicMetricsCollector) RecordNegotiation(_ string, _ int, attempts int, err error) {
	b.Negotiations.Add(1)
	b.NegotiationAttempts.Add(int64(attempts))
	if err != nil {
		b.NegotiationErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		Calls:               b.Calls.Load(),
		CallErrors:          b.CallErrors.Load(),
		Restarts:            b.Restarts.Load(),
		Releases:            b.Releases.Load(),
		AutomaticReleases:   b.AutomaticReleases.Load(),
		ReleaseErrors:       b.ReleaseErrors.Load(),
		Negotiations:        b.Negotiations.Load(),
		NegotiationErrors:   b.NegotiationErrors.Load(),
		NegotiationAttempts: b.NegotiationAttempts.Load(),
	}
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	Calls               int64
	CallErrors          int64
	Restarts            int64
	Releases            int64
	AutomaticReleases   int64
	ReleaseErrors       int64
	Negotiations        int64
	NegotiationErrors   int64
	NegotiationAttempts int64
}
