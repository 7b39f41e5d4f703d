package sigset

import (
	"testing"

	"github.com/hupe1980/syskit/errno"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestSet(t *testing.T) {
	var s Set
	assert.Zero(t, s.Len())
	assert.False(t, s.Contains(unix.SIGINT))
	assert.Nil(t, s.Signals())

	require.NoError(t, s.Add(unix.SIGTERM))
	require.NoError(t, s.Add(unix.SIGINT))
	require.NoError(t, s.Add(unix.SIGINT))
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []unix.Signal{unix.SIGINT, unix.SIGTERM}, s.Signals())

	require.NoError(t, s.Remove(unix.SIGINT))
	assert.False(t, s.Contains(unix.SIGINT))
	assert.True(t, s.Contains(unix.SIGTERM))
}

func TestSet_OutOfRange(t *testing.T) {
	var s Set
	for _, sig := range []unix.Signal{0, -1, MaxSignal + 1} {
		assert.Equal(t, errno.FromCode(int(unix.EINVAL)), s.Add(sig))
		assert.Equal(t, errno.FromCode(int(unix.EINVAL)), s.Remove(sig))
		assert.False(t, s.Contains(sig))
	}
	assert.Zero(t, Of(0, MaxSignal+1).Len())
}

func TestSet_Mask(t *testing.T) {
	s := Of(unix.SIGHUP, unix.SIGUSR1, MaxSignal)
	m := s.Mask()
	assert.Equal(t, uint64(1)<<(unix.SIGHUP-1)|uint64(1)<<(unix.SIGUSR1-1)|uint64(1)<<63, m)
	assert.True(t, FromMask(m).Equal(s))

	assert.Equal(t, MaxSignal, Full().Len())
	assert.Equal(t, ^uint64(0), Full().Mask())
	assert.Zero(t, Set{}.Mask())
}

func TestSet_Algebra(t *testing.T) {
	a := Of(unix.SIGINT, unix.SIGTERM)
	b := Of(unix.SIGTERM, unix.SIGUSR1)

	assert.Equal(t, []unix.Signal{unix.SIGINT, unix.SIGUSR1, unix.SIGTERM}, a.Union(b).Signals())
	assert.Equal(t, []unix.Signal{unix.SIGTERM}, a.Intersect(b).Signals())
	assert.Equal(t, []unix.Signal{unix.SIGINT}, a.Difference(b).Signals())
	assert.Equal(t, []unix.Signal{unix.SIGINT}, a.Intersect(Set{}).Union(a).Difference(b).Signals())

	// Operations do not modify their operands.
	assert.Equal(t, 2, a.Len())
	assert.Equal(t, 2, b.Len())
}

func TestSet_Clone(t *testing.T) {
	a := Of(unix.SIGINT)
	c := a.Clone()
	require.NoError(t, c.Add(unix.SIGTERM))
	assert.False(t, a.Contains(unix.SIGTERM))
	assert.Zero(t, Set{}.Clone().Len())
}

func TestSet_String(t *testing.T) {
	assert.Equal(t, "{}", Set{}.String())
	assert.Equal(t, "{SIGINT, SIGTERM}", Of(unix.SIGTERM, unix.SIGINT).String())
}
