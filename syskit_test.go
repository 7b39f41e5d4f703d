package syskit

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigure(t *testing.T) {
	t.Cleanup(func() { Configure() })

	m := &BasicMetricsCollector{}
	l := NewTextLogger(slog.LevelDebug)
	Configure(WithLogger(l), WithMetrics(m))
	assert.Same(t, l, CurrentLogger())
	assert.Same(t, m, CurrentMetrics())

	Configure()
	assert.NotSame(t, l, CurrentLogger())
	assert.IsType(t, NoopMetricsCollector{}, CurrentMetrics())

	Configure(WithLogger(nil), WithMetrics(nil))
	require.NotNil(t, CurrentLogger())
	assert.IsType(t, NoopMetricsCollector{}, CurrentMetrics())
}

func TestBasicMetricsCollector(t *testing.T) {
	m := &BasicMetricsCollector{}
	errBoom := errors.New("boom")

	m.RecordCall("read", 1, nil)
	m.RecordCall("read", 4, errBoom)
	m.RecordRelease("close", false, nil)
	m.RecordRelease("close", true, errBoom)
	m.RecordNegotiation("getcwd", 512, 2, nil)
	m.RecordNegotiation("getcwd", 1024, 3, errBoom)

	assert.Equal(t, BasicMetricsStats{
		Calls:               2,
		CallErrors:          1,
		Restarts:            3,
		Releases:            2,
		AutomaticReleases:   1,
		ReleaseErrors:       1,
		Negotiations:        2,
		NegotiationErrors:   1,
		NegotiationAttempts: 5,
	}, m.GetStats())
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := context.Background()

	l.LogRestart(ctx, "read", 2)
	require.Contains(t, buf.String(), "native call interrupted, restarting")
	require.Contains(t, buf.String(), `"attempt":2`)

	buf.Reset()
	l.LogRelease(ctx, "close", 7, true, errors.New("bad descriptor"))
	require.Contains(t, buf.String(), `"level":"WARN"`)
	require.Contains(t, buf.String(), `"id":7`)

	buf.Reset()
	l.LogRelease(ctx, "close", 7, false, nil)
	assert.Empty(t, buf.String())

	l.LogNegotiation(ctx, "getcwd", 4096, 3, nil)
	require.Contains(t, buf.String(), `"size":4096`)

	buf.Reset()
	l.WithOp("mmap").Info("mapped")
	require.Contains(t, buf.String(), `"op":"mmap"`)
}

func TestLogger_InfoLevelSkipsDebug(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.NewTextHandler(&buf, nil))

	l.LogRestart(context.Background(), "read", 1)
	l.LogNegotiation(context.Background(), "getcwd", 256, 2, nil)
	assert.Empty(t, buf.String())

	NoopLogger().Error("dropped")
}

func TestTier(t *testing.T) {
	assert.Equal(t, "minimal", TierMinimal.String())
	assert.Equal(t, "alloc", TierAlloc.String())
	assert.Equal(t, "full", TierFull.String())
	assert.Equal(t, "unknown", Tier(9).String())

	assert.False(t, TierMinimal.Allocates())
	assert.True(t, TierAlloc.Allocates())
	assert.True(t, TierFull.Allocates())
	assert.NotEmpty(t, BuildTier.String())
}
