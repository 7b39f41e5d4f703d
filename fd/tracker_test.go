package fd

import (
	"testing"

	"github.com/hupe1980/syskit"
	"github.com/hupe1980/syskit/errno"
	"github.com/hupe1980/syskit/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestTracker_RejectsSecondOwner(t *testing.T) {
	tr := NewTracker(0)
	rec := testutil.NewReleaseRecorder(nil)
	opts := []Option{WithTracker(tr), WithReleaser(rec.Release)}

	f, err := Adopt(7, opts...)
	require.NoError(t, err)
	assert.True(t, tr.Contains(7))

	_, err = Adopt(7, opts...)
	assert.ErrorIs(t, err, ErrAlreadyOwned)
	e, cerr := errno.FromError(err)
	require.NoError(t, cerr)
	assert.Equal(t, unix.EBUSY, e.Errno())

	require.NoError(t, f.Close())
	assert.False(t, tr.Contains(7))

	g, err := Adopt(7, opts...)
	require.NoError(t, err)
	id, err := g.IntoRaw()
	require.NoError(t, err)
	assert.Equal(t, 7, id)
	assert.Zero(t, tr.Len())
}

func TestTracker_Limit(t *testing.T) {
	tr := NewTracker(2)
	rec := testutil.NewReleaseRecorder(nil)
	opts := []Option{WithTracker(tr), WithReleaser(rec.Release)}

	a, err := Adopt(10, opts...)
	require.NoError(t, err)
	_, err = Adopt(11, opts...)
	require.NoError(t, err)

	_, err = Adopt(12, opts...)
	assert.ErrorIs(t, err, ErrTooMany)
	e, cerr := errno.FromError(err)
	require.NoError(t, cerr)
	assert.Equal(t, errno.ResourceExhausted, e.Kind())

	assert.Equal(t, []int{10, 11}, tr.Live())
	assert.Equal(t, 2, tr.Limit())

	require.NoError(t, a.Close())
	_, err = Adopt(12, opts...)
	require.NoError(t, err)
	assert.Equal(t, []int{11, 12}, tr.Live())
}

func TestTracker_Nil(t *testing.T) {
	var tr *Tracker
	assert.False(t, tr.Contains(1))
	assert.Zero(t, tr.Len())
	assert.Nil(t, tr.Live())
	assert.Zero(t, tr.Limit())
}

func TestTracker_RealDescriptors(t *testing.T) {
	tr := NewTracker(0)
	r, w, err := Pipe(unix.O_CLOEXEC, WithTracker(tr))
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{r.Fd(), w.Fd()}, tr.Live())

	d, err := w.Dup()
	require.NoError(t, err)
	assert.True(t, tr.Contains(d.Fd()))
	assert.Equal(t, 3, tr.Len())

	require.NoError(t, r.Close())
	require.NoError(t, w.Close())
	require.NoError(t, d.Close())
	assert.Zero(t, tr.Len())
}

func TestTracker_RejectedDupUsesReleaser(t *testing.T) {
	m := &syskit.BasicMetricsCollector{}
	syskit.Configure(syskit.WithMetrics(m))
	t.Cleanup(func() { syskit.Configure() })

	rec := testutil.NewReleaseRecorder(nil)
	release := func(id int) error {
		_ = rec.Release(id)
		return unix.Close(id)
	}
	tr := NewTracker(2)

	r, w, err := Pipe(unix.O_CLOEXEC, WithTracker(tr), WithReleaser(release))
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	_, err = w.DupCloseOnExec()
	assert.ErrorIs(t, err, ErrTooMany)
	assert.Equal(t, 1, rec.Total())
	assert.Zero(t, rec.Count(r.Fd()))
	assert.Zero(t, rec.Count(w.Fd()))
	assert.GreaterOrEqual(t, m.GetStats().Releases, int64(1))

	// The rejected id never entered the tracker.
	assert.ElementsMatch(t, []int{r.Fd(), w.Fd()}, tr.Live())
}
