//go:build !linux && !solaris

package entropy

// unavailable is the stub backend for targets with no known entropy
// source. It exposes the same signature as the real backends so callers
// are insulated from which one is active.
type unavailable struct{}

// Fill implements Backend. It always fails with ErrUnavailable and never
// touches the OS.
func (unavailable) Fill(dest []byte) error {
	return ErrUnavailable
}

// Platform returns the stub backend.
func Platform() Backend {
	return unavailable{}
}
