package getrandom

import (
	"bufio"
	"io"
	"sync"
)

// NewBuffered returns an io.Reader that serves small, frequent requests
// from a buffer refilled in bulk from the OS source, amortizing the
// per-call syscall or device-read cost. The reader is safe for concurrent
// use. Reads larger than the internal buffer bypass it and go straight to
// the source. A failed refill surfaces the usual Fill errors.
func NewBuffered() io.Reader {
	return &buffered{br: bufio.NewReader(Reader)}
}

type buffered struct {
	mu sync.Mutex
	br *bufio.Reader
}

func (b *buffered) Read(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.br.Read(p)
}
