package entropy

import (
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// devicePath is the fallback entropy device for kernels that predate the
// getrandom syscall (added in Linux 3.17).
const devicePath = "/dev/urandom"

func getrandom(p []byte) error {
	n, err := unix.Getrandom(p, 0)
	if err != nil {
		return err
	}
	if n != len(p) {
		return unix.EIO
	}
	return nil
}

func openDevice() (io.Reader, error) {
	return os.Open(devicePath)
}

var platform = NewReader(getrandom, openDevice)

// Platform returns the entropy backend for Linux. The same Reader is
// returned on every call so the capability probe runs at most once per
// process.
func Platform() Backend {
	return platform
}
