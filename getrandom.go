// Package getrandom provides a uniform, cross-platform interface to the
// operating system's cryptographically secure randomness source.
//
// On platforms with a fast entropy syscall the package uses it directly,
// probing once per process for its presence; where the syscall is missing
// it falls back to the platform's entropy device. Targets with no known
// entropy source get a stub backend that always fails with ErrUnavailable.
//
// All calls are synchronous and blocking. There are no internal retries:
// every failure is surfaced immediately, and retry policy belongs to the
// caller. A blocking read on a starved entropy device can stall the
// calling goroutine indefinitely; that is a platform limitation, not
// something this package works around.
package getrandom

import (
	"io"

	"github.com/Kazhuu/getrandom/internal/entropy"
)

// backend is the entropy backend compiled for this target.
var backend = entropy.Platform()

// Fill overwrites every byte of dest with random bytes obtained from the
// operating system. On failure the contents of dest are unspecified (a
// partial fill is possible) and must not be used as entropy. A zero-length
// dest is a no-op success. Fill is safe for concurrent use.
func Fill(dest []byte) error {
	return backend.Fill(dest)
}

// Read fills p with OS-sourced random bytes, following the io.Reader
// convention. It returns len(p) on success and 0 with an error otherwise.
func Read(p []byte) (int, error) {
	if err := Fill(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Bytes returns n freshly filled random bytes.
func Bytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if err := Fill(b); err != nil {
		return nil, err
	}
	return b, nil
}

// Reader is an io.Reader view over the OS entropy source, safe for
// concurrent use.
var Reader io.Reader = reader{}

type reader struct{}

func (reader) Read(p []byte) (int, error) {
	return Read(p)
}
