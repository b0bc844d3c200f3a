//go:build unix && !linux && !freebsd && !darwin

package mmap

import "golang.org/x/sys/unix"

// flushFile forces file data to stable storage. Generic unix fallback for
// systems without fdatasync.
func flushFile(fd int) error {
	return unix.Fsync(fd)
}
