// Package entropy locates and drains the operating system's randomness
// source. It probes once per process for the fast getrandom syscall,
// falls back to reading the platform's entropy device when the syscall is
// missing, and caches the resolved source per worker so repeated calls
// avoid re-resolving it.
//
// The package generates no randomness of its own; it only selects and
// reads an already-random OS-provided source.
package entropy

import (
	"errors"
	"io"
	"sync"
	"syscall"
)

// maxChunkSize bounds a single request to either source. getrandom is
// documented to return at most 1024 bytes per call and the entropy device
// at most 1040 per read; the smaller bound is used on both paths.
const maxChunkSize = 1024

var (
	// ErrUnknown reports that opening or reading the entropy source failed.
	// The underlying OS error code is deliberately not propagated; the
	// destination buffer must be treated as not reliably randomized.
	ErrUnknown = errors.New("entropy: unknown I/O failure")

	// ErrUnavailable reports that the target platform has no known entropy
	// source. Only the stub backend returns it.
	ErrUnavailable = errors.New("entropy: no entropy source available on this platform")
)

// Backend fills caller buffers with OS-sourced random bytes.
type Backend interface {
	// Fill overwrites every byte of dest on success. On failure the
	// contents of dest are unspecified and the caller must not use them.
	Fill(dest []byte) error
}

type sourceKind uint8

const (
	sourceUnresolved sourceKind = iota
	sourceSyscall
	sourceDevice
)

// source is one worker's view of the entropy source. A source is owned
// exclusively by the goroutine that checked it out of the pool, so its
// fields need no locking. Once resolved to sourceSyscall or sourceDevice
// it never returns to sourceUnresolved, and a device handle stays open for
// the life of the source.
type source struct {
	kind sourceKind
	dev  io.Reader
}

// Reader drains OS entropy into caller buffers. Construct one with
// NewReader; the zero value has no boundary functions and is not usable.
// A Reader is safe for concurrent use.
type Reader struct {
	// getrandom issues one fast-path request, filling p completely or
	// returning an error. A zero-length p probes for the syscall's
	// existence without blocking or consuming entropy.
	getrandom func(p []byte) error
	// openDevice opens the fallback entropy device.
	openDevice func() (io.Reader, error)

	probeOnce sync.Once
	fastOK    bool

	pool sync.Pool // *source
}

// NewReader returns a Reader wired to the given boundary functions.
func NewReader(getrandom func(p []byte) error, openDevice func() (io.Reader, error)) *Reader {
	return &Reader{getrandom: getrandom, openDevice: openDevice}
}

// available reports whether the fast syscall exists on the running kernel.
// The detection runs at most once per Reader: a zero-length request
// succeeds if the syscall is present and fails with ENOSYS if it is not.
// Any other failure means the syscall exists but this particular call
// failed for unrelated reasons, which still counts as present.
func (r *Reader) available() bool {
	r.probeOnce.Do(func() {
		err := r.getrandom(nil)
		r.fastOK = err == nil || !errors.Is(err, syscall.ENOSYS)
	})
	return r.fastOK
}

// Fill implements Backend, draining dest in chunks of at most
// maxChunkSize. Each chunk is satisfied in full before the next; any short
// read or error aborts the whole call with ErrUnknown and nothing is
// retried. A zero-length dest succeeds without touching the OS.
func (r *Reader) Fill(dest []byte) error {
	if len(dest) == 0 {
		return nil
	}
	src, _ := r.pool.Get().(*source)
	if src == nil {
		src = &source{}
	}
	defer r.pool.Put(src)
	for len(dest) > 0 {
		n := min(len(dest), maxChunkSize)
		if err := r.fillChunk(src, dest[:n]); err != nil {
			return err
		}
		dest = dest[n:]
	}
	return nil
}

// fillChunk resolves the source on first use and satisfies one chunk in
// full. A failed device open leaves the source unresolved so a later call
// retries the open; open failure is never cached.
func (r *Reader) fillChunk(src *source, chunk []byte) error {
	if src.kind == sourceUnresolved {
		if r.available() {
			src.kind = sourceSyscall
		} else {
			dev, err := r.openDevice()
			if err != nil {
				return ErrUnknown
			}
			src.kind = sourceDevice
			src.dev = dev
		}
	}
	if src.kind == sourceDevice {
		if _, err := io.ReadFull(src.dev, chunk); err != nil {
			return ErrUnknown
		}
		return nil
	}
	if err := r.getrandom(chunk); err != nil {
		return ErrUnknown
	}
	return nil
}
