package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestBackupRestoreRoundTrip(t *testing.T) {
	resetFlags()

	dir := t.TempDir()
	src := writeVectorFixture(t, dir, 50)
	archive := filepath.Join(dir, "fixture.vec.zst")
	restored := filepath.Join(dir, "restored.vec")

	output, err := captureOutput(t, func() error {
		return runBackup([]string{src, archive})
	})
	if err != nil {
		t.Fatalf("backup failed: %v", err)
	}
	assertContains(t, output, []string{"Backed up"})

	output, err = captureOutput(t, func() error {
		return runRestore([]string{archive, restored})
	})
	if err != nil {
		t.Fatalf("restore failed: %v", err)
	}
	assertContains(t, output, []string{"Restored"})

	want, err := os.ReadFile(src)
	if err != nil {
		t.Fatalf("failed to read source: %v", err)
	}
	got, err := os.ReadFile(restored)
	if err != nil {
		t.Fatalf("failed to read restored file: %v", err)
	}
	if !bytes.Equal(want, got) {
		t.Errorf("restored bytes differ from source (%d vs %d bytes)", len(got), len(want))
	}
}

func TestBackupRejectsNonVectorFile(t *testing.T) {
	resetFlags()

	dir := t.TempDir()
	src := filepath.Join(dir, "random.bin")
	if err := os.WriteFile(src, []byte("not a vector file at all....."), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	_, err := captureOutput(t, func() error {
		return runBackup([]string{src, filepath.Join(dir, "out.zst")})
	})
	if err == nil {
		t.Fatal("expected error backing up a non-vector file")
	}
}

func TestBackupJSONOutput(t *testing.T) {
	resetFlags()
	jsonOut = true

	dir := t.TempDir()
	src := writeVectorFixture(t, dir, 10)
	archive := filepath.Join(dir, "fixture.vec.zst")

	output, err := captureOutput(t, func() error {
		return runBackup([]string{src, archive})
	})
	if err != nil {
		t.Fatalf("backup failed: %v", err)
	}
	assertJSON(t, output)
	assertContains(t, output, []string{`"archive"`, `"source"`})
}

func TestRestoreRefusesGarbageArchive(t *testing.T) {
	resetFlags()

	dir := t.TempDir()
	archive := filepath.Join(dir, "garbage.zst")
	if err := os.WriteFile(archive, []byte("zstd this is not"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	dst := filepath.Join(dir, "out.vec")
	_, err := captureOutput(t, func() error {
		return runRestore([]string{archive, dst})
	})
	if err == nil {
		t.Fatal("expected error restoring a garbage archive")
	}
	if _, statErr := os.Stat(dst); !os.IsNotExist(statErr) {
		t.Errorf("failed restore must not create the destination")
	}
}
