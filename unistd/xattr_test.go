//go:build linux || darwin

package unistd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hupe1980/syskit/errno"
	"github.com/hupe1980/syskit/negotiate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func xattrFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "f")
	require.NoError(t, os.WriteFile(path, nil, 0o600))
	if err := unix.Setxattr(path, "user.syskit.a", []byte("alpha"), 0); err != nil {
		t.Skipf("user xattrs unsupported here: %v", err)
	}
	require.NoError(t, unix.Setxattr(path, "user.syskit.b", []byte("beta"), 0))
	return path
}

func TestListxattr(t *testing.T) {
	path := xattrFile(t)

	names, err := Listxattr(path)
	require.NoError(t, err)
	assert.Subset(t, names, []string{"user.syskit.a", "user.syskit.b"})
}

func TestGetxattr(t *testing.T) {
	path := xattrFile(t)

	v, err := Getxattr(path, "user.syskit.a")
	require.NoError(t, err)
	assert.Equal(t, []byte("alpha"), v)
	assert.Equal(t, len(v), cap(v))

	_, err = Getxattr(path, "user.syskit.missing")
	e, cerr := errno.FromError(err)
	require.NoError(t, cerr)
	assert.Equal(t, errno.Other, e.Kind()) // ENODATA

	_, err = Getxattr(path, "user.syskit.a", negotiate.WithMaxSize(2))
	assert.ErrorIs(t, err, negotiate.ErrExceeded)
}

func TestListxattr_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	names, err := Listxattr(path)
	if err != nil {
		t.Skipf("listxattr unsupported here: %v", err)
	}
	for _, n := range names {
		assert.NotContains(t, n, "user.syskit")
	}
}
