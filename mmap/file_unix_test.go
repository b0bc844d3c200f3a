//go:build unix

package mmap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// Writes through a shared mapping land in the page cache, so another reader
// of the same file sees them without an explicit Sync.
func TestWriteThroughVisibility(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping mmap test in short mode")
	}
	path := filepath.Join(t.TempDir(), "shared.vec")

	f, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	require.NoError(t, f.Grow(32))
	copy(f.Bytes(), "written via mapping")

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, []byte("written via mapping"), got[:19])
}

func TestRemapPreservesAcrossManyResizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resize.vec")
	f, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	size := 8
	require.NoError(t, f.Grow(size))
	f.Bytes()[0] = 0xAB

	for i := 0; i < 10; i++ {
		size *= 2
		require.NoError(t, f.Grow(size))
		require.Len(t, f.Bytes(), size)
		require.Equal(t, byte(0xAB), f.Bytes()[0])
	}
}
