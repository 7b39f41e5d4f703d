package syskit

import (
	"sync/atomic"
)

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
}

// Option configures the process-wide ambient stack used by every syskit
// package (logging and metrics).
type Option func(*options)

// WithLogger configures the logger used for restart and release events.
//
// If nil is passed, NoopLogger is used.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetrics configures the metrics collector.
//
// If nil is passed, NoopMetricsCollector is used.
func WithMetrics(m MetricsCollector) Option {
	return func(o *options) {
		if m == nil {
			m = NoopMetricsCollector{}
		}
		o.metricsCollector = m
	}
}

var current atomic.Pointer[options]

func init() {
	current.Store(defaultOptions())
}

func defaultOptions() *options {
	return &options{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
}

// Configure replaces the ambient configuration. Options not given fall back
// to their defaults, so Configure() with no arguments resets everything.
//
// Configure is safe to call concurrently with system calls in flight; calls
// already running keep the configuration they started with.
func Configure(opts ...Option) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	current.Store(o)
}

// CurrentLogger returns the configured logger.
func CurrentLogger() *Logger {
	return current.Load().logger
}

// CurrentMetrics returns the configured metrics collector.
func CurrentMetrics() MetricsCollector {
	return current.Load().metricsCollector
}
