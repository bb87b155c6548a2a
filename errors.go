package getrandom

import "github.com/Kazhuu/getrandom/internal/entropy"

// The failure set is deliberately closed: every open or read problem
// collapses to ErrUnknown and the underlying OS error code is not
// propagated. Callers that need finer diagnosis must inspect the OS
// themselves.
var (
	// ErrUnknown reports that opening or reading the entropy source failed.
	// After receiving it the destination buffer must be treated as not
	// reliably randomized.
	ErrUnknown = entropy.ErrUnknown

	// ErrUnavailable reports that the target platform has no known entropy
	// source. It is only returned on targets compiled with the stub
	// backend.
	ErrUnavailable = entropy.ErrUnavailable
)
