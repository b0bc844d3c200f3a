package backup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/veckit/mmap"
	"github.com/joshuapare/veckit/vec"
)

type event struct {
	ID      uint32
	Kind    uint32
	Payload [8]byte
}

// writeVectorFile builds a real vector file with n records and returns its
// path and raw bytes.
func writeVectorFile(t *testing.T, dir string, n int) (string, []byte) {
	t.Helper()
	path := filepath.Join(dir, "events.vec")

	f, err := mmap.Open(path)
	require.NoError(t, err)
	v, err := vec.Attach[event](f)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		require.NoError(t, v.Push(event{ID: uint32(i), Kind: uint32(i % 3)}))
	}
	require.NoError(t, f.Sync())
	require.NoError(t, f.Close())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	return path, raw
}

func TestCreateRestoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	src, want := writeVectorFile(t, dir, 100)
	snap := filepath.Join(dir, "events.vec.zst")
	out := filepath.Join(dir, "restored.vec")

	require.NoError(t, Create(src, snap))
	require.NoError(t, Restore(snap, out))

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, want, got, "restore must reproduce the source bytes exactly")

	// The restored file attaches cleanly and carries the records.
	f, err := mmap.Open(out)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	v, err := vec.Attach[event](f)
	require.NoError(t, err)
	require.Equal(t, 100, v.Len())
	rec, err := v.Get(42)
	require.NoError(t, err)
	require.EqualValues(t, 42, rec.ID)
}

func TestSnapshotIsCompressed(t *testing.T) {
	dir := t.TempDir()
	src, raw := writeVectorFile(t, dir, 2000)
	snap := filepath.Join(dir, "events.vec.zst")

	require.NoError(t, Create(src, snap))

	st, err := os.Stat(snap)
	require.NoError(t, err)
	require.Less(t, st.Size(), int64(len(raw)),
		"mostly zero records must compress below the raw size")
}

func TestCreateRefusesNonVectorFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "not-a-vector.bin")
	require.NoError(t, os.WriteFile(src, []byte("just some bytes, no header"), 0o644))

	err := Create(src, filepath.Join(dir, "out.zst"))
	require.ErrorIs(t, err, vec.ErrSizeMismatch)
}

func TestCreateRefusesBadMagic(t *testing.T) {
	dir := t.TempDir()
	src, _ := writeVectorFile(t, dir, 3)

	raw, err := os.ReadFile(src)
	require.NoError(t, err)
	raw[0] = 'X'
	require.NoError(t, os.WriteFile(src, raw, 0o644))

	err = Create(src, filepath.Join(dir, "out.zst"))
	require.ErrorIs(t, err, vec.ErrBadMagic)
}

func TestCreateMissingSource(t *testing.T) {
	dir := t.TempDir()
	err := Create(filepath.Join(dir, "absent.vec"), filepath.Join(dir, "out.zst"))
	require.Error(t, err)
	require.NotErrorIs(t, err, vec.ErrBadMagic, "I/O failures are not corruption")
}

func TestRestoreRefusesGarbage(t *testing.T) {
	dir := t.TempDir()
	snap := filepath.Join(dir, "garbage.zst")
	require.NoError(t, os.WriteFile(snap, []byte("not a zstd stream"), 0o644))

	err := Restore(snap, filepath.Join(dir, "out.vec"))
	require.Error(t, err)
}

func TestRestoreNeverTearsDestination(t *testing.T) {
	dir := t.TempDir()
	dst, want := writeVectorFile(t, dir, 10)

	// A snapshot whose payload is not a vector file: compress arbitrary bytes
	// by snapshotting a valid file, then truncate the archive mid-stream.
	goodSrc, _ := writeVectorFile(t, t.TempDir(), 500)
	snap := filepath.Join(dir, "torn.zst")
	require.NoError(t, Create(goodSrc, snap))
	raw, err := os.ReadFile(snap)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(snap, raw[:len(raw)/2], 0o644))

	require.Error(t, Restore(snap, dst))

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	require.Equal(t, want, got, "failed restore must leave the destination byte-identical")

	// No stray temp files left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		require.NotContains(t, e.Name(), ".tmp-", "temp files must be cleaned up")
	}
}

// compressFile writes src's bytes to dst as a bare zstd stream, with none of
// Create's validation.
func compressFile(src, dst string) error {
	raw, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()
	zw, err := zstd.NewWriter(out)
	if err != nil {
		return err
	}
	if _, err := zw.Write(raw); err != nil {
		_ = zw.Close()
		return err
	}
	return zw.Close()
}

func TestRestoreValidatesPayload(t *testing.T) {
	// A well-formed zstd stream whose content is not a vector file must be
	// rejected before it reaches the destination.
	dir := t.TempDir()
	junk := filepath.Join(dir, "junk.bin")
	require.NoError(t, os.WriteFile(junk, make([]byte, 64), 0o644))

	snap := filepath.Join(dir, "junk.zst")
	require.NoError(t, compressFile(junk, snap))

	dst := filepath.Join(dir, "out.vec")
	err := Restore(snap, dst)
	require.ErrorIs(t, err, vec.ErrBadMagic)
	_, statErr := os.Stat(dst)
	require.True(t, os.IsNotExist(statErr), "rejected restore must not create the destination")
}
