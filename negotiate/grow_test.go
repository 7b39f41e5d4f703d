//go:build !syskit_minimal

package negotiate

import (
	"errors"
	"testing"

	"github.com/hupe1980/syskit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestGrow(t *testing.T) {
	data := make([]byte, 1000)
	for i := range data {
		data[i] = byte(i)
	}
	var sizes []int
	fill := func(buf []byte) (int, error) {
		sizes = append(sizes, len(buf))
		if len(buf) < len(data) {
			return -1, unix.ERANGE
		}
		return copy(buf, data), nil
	}

	out, err := Grow(WithInitialSize(100)).Negotiate("test", fill)
	require.NoError(t, err)
	assert.Equal(t, data, out)
	assert.Equal(t, len(data), cap(out))
	assert.Equal(t, []int{100, 200, 400, 800, 1600}, sizes)
}

func TestGrow_AlwaysTooSmallIsBounded(t *testing.T) {
	calls := 0
	alwaysSmall := func([]byte) (int, error) {
		calls++
		return -1, unix.ERANGE
	}

	_, err := Grow(WithInitialSize(16), WithMaxSize(1024)).Negotiate("test", alwaysSmall)
	var cerr *CapacityError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, Exceeded, cerr.Kind)
	assert.Equal(t, 1024, cerr.Size)
	assert.Equal(t, 7, calls) // 16 32 64 128 256 512 1024
	assert.ErrorIs(t, err, ErrExceeded)

	calls = 0
	_, err = Grow(WithInitialSize(16), WithMaxAttempts(3)).Negotiate("test", alwaysSmall)
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, 3, calls)
	assert.Equal(t, 3, cerr.Attempts)
	assert.Equal(t, 64, cerr.Size)
}

func TestGrow_StopsOnOtherErrors(t *testing.T) {
	errBoom := errors.New("boom")
	calls := 0

	_, err := Grow().Negotiate("test", func([]byte) (int, error) {
		calls++
		return 0, errBoom
	})
	assert.Same(t, errBoom, err)
	assert.Equal(t, 1, calls)
}

func TestGrow_RecordsNegotiation(t *testing.T) {
	m := &syskit.BasicMetricsCollector{}
	syskit.Configure(syskit.WithMetrics(m))
	t.Cleanup(func() { syskit.Configure() })

	calls := 0
	_, err := Grow(WithInitialSize(2)).Negotiate("test", source([]byte("abcdef"), &calls))
	require.NoError(t, err)

	stats := m.GetStats()
	assert.Equal(t, int64(1), stats.Negotiations)
	assert.Equal(t, int64(3), stats.NegotiationAttempts)
	assert.Zero(t, stats.NegotiationErrors)
}

func TestDefault(t *testing.T) {
	calls := 0
	out, err := Default(WithInitialSize(1)).Negotiate("test", source([]byte("xyz"), &calls))
	require.NoError(t, err)
	assert.Equal(t, "xyz", string(out))
	assert.Equal(t, 3, calls)
}
