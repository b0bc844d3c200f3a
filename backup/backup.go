// Package backup creates and restores compressed snapshots of vector files.
//
// A snapshot is the vector file's bytes as a single zstd stream. Both
// directions validate the vector header, so a snapshot can never be taken of
// something that is not a vector file and a restore can never install one.
// Restore writes through a temporary file and renames it into place; a
// failed restore leaves the destination untouched.
package backup

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"

	"github.com/joshuapare/veckit/mmap"
	"github.com/joshuapare/veckit/vec"
)

// Create writes a compressed snapshot of the vector file at src to dst. The
// source must carry a valid vector header.
func Create(src, dst string) error {
	f, err := mmap.OpenReadOnly(src)
	if err != nil {
		return fmt.Errorf("backup: open %s: %w", src, err)
	}
	defer f.Close()

	if _, err := vec.ReadStats(f.Bytes()); err != nil {
		return fmt.Errorf("backup: %s is not a vector file: %w", src, err)
	}

	return writeAtomic(dst, func(w io.Writer) error {
		zw, err := zstd.NewWriter(w)
		if err != nil {
			return fmt.Errorf("backup: create compressor: %w", err)
		}
		if _, err := zw.Write(f.Bytes()); err != nil {
			_ = zw.Close()
			return fmt.Errorf("backup: compress %s: %w", src, err)
		}
		if err := zw.Close(); err != nil {
			return fmt.Errorf("backup: finish compression: %w", err)
		}
		return nil
	}, nil)
}

// Restore decompresses the snapshot at src into the vector file at dst,
// replacing any existing file. The decompressed bytes must carry a valid
// vector header or the destination is left untouched.
func Restore(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("backup: open %s: %w", src, err)
	}
	defer in.Close()

	zr, err := zstd.NewReader(in)
	if err != nil {
		return fmt.Errorf("backup: create decompressor: %w", err)
	}
	defer zr.Close()

	write := func(w io.Writer) error {
		if _, err := io.Copy(w, zr); err != nil {
			return fmt.Errorf("backup: decompress %s: %w", src, err)
		}
		return nil
	}
	return writeAtomic(dst, write, validateVectorFile)
}

// validateVectorFile checks that the file at path carries a vector header.
func validateVectorFile(path string) error {
	f, err := mmap.OpenReadOnly(path)
	if err != nil {
		return fmt.Errorf("backup: reopen restored file: %w", err)
	}
	defer f.Close()
	if _, err := vec.ReadStats(f.Bytes()); err != nil {
		return fmt.Errorf("backup: restored bytes are not a vector file: %w", err)
	}
	return nil
}

// writeAtomic writes through a temporary file in dst's directory and renames
// it into place, optionally validating the finished temporary first. The
// temporary file is removed on every failure path, so dst is either replaced
// whole or untouched.
func writeAtomic(dst string, write func(io.Writer) error, validate func(path string) error) error {
	dir := filepath.Dir(dst)
	tmp, err := os.CreateTemp(dir, filepath.Base(dst)+".tmp-*")
	if err != nil {
		return fmt.Errorf("backup: create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		_ = tmp.Close()
		if tmpName != "" {
			_ = os.Remove(tmpName)
		}
	}()

	if err := write(tmp); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("backup: sync %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("backup: close %s: %w", tmpName, err)
	}

	if validate != nil {
		if err := validate(tmpName); err != nil {
			return err
		}
	}

	if err := os.Rename(tmpName, dst); err != nil {
		return fmt.Errorf("backup: install %s: %w", dst, err)
	}
	tmpName = "" // the rename consumed the temp file

	// Make the rename durable where the platform allows it.
	if d, err := os.Open(dir); err == nil {
		_ = d.Sync()
		_ = d.Close()
	}
	return nil
}
