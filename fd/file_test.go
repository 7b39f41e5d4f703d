//go:build unix && !syskit_alloc && !syskit_minimal

package fd

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f")
	require.NoError(t, os.WriteFile(path, []byte("contents"), 0o600))

	osf, err := os.Open(path)
	require.NoError(t, err)

	f, err := FromFile(osf)
	require.NoError(t, err)
	require.NoError(t, osf.Close())

	got, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "contents", string(got))

	back, err := f.File("f")
	require.NoError(t, err)
	defer back.Close()
	assert.True(t, f.Released())

	_, err = back.Seek(0, io.SeekStart)
	require.NoError(t, err)
	got, err = io.ReadAll(back)
	require.NoError(t, err)
	assert.Equal(t, "contents", string(got))
}
