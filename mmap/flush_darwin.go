//go:build darwin

package mmap

import "golang.org/x/sys/unix"

// flushFile forces file data to stable storage.
//
// On macOS, F_FULLFSYNC ensures data is written to the physical disk, not
// just the drive cache. Plain fsync does not give that guarantee there.
func flushFile(fd int) error {
	_, err := unix.FcntlInt(uintptr(fd), unix.F_FULLFSYNC, 0)
	return err
}
