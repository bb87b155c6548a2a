package entropy

import (
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// devicePath is the fallback entropy device. Solaris backs /dev/random
// with the SP 800-90A Hash_DRBG (SHA-512), while /dev/urandom uses the
// older FIPS 186-2 generator, so the stronger device is preferred.
const devicePath = "/dev/random"

// The getrandom syscall exists since Solaris 11.3. illumos and other
// OpenSolaris derivatives may lack it; libc reports ENOSYS there and the
// reader falls back to the device.
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

// Platform returns the entropy backend for the Solaris family. The same
// Reader is returned on every call so the capability probe runs at most
// once per process.
func Platform() Backend {
	return platform
}
