//go:build unix

package malloc

import "golang.org/x/sys/unix"

// osreserve a zero initialized, read-write, anonymous mapping of
// `size` bytes. Callers are expected to pass page granular sizes.
func osreserve(size int) ([]byte, error) {
	return unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
}

// osrelease a mapping obtained from osreserve.
func osrelease(data []byte) error {
	return unix.Munmap(data)
}
