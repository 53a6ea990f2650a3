package logincount

import (
	"errors"
	"io"
	"os"
)

// ReadAutoCloser wraps an io.Reader, and closes it automatically, if closable,
// once it has been completely read. Closing is idempotent, so a reader that
// was already closed at EOF can be closed again by a deferred call.
type ReadAutoCloser struct {
	r      io.ReadCloser
	closed bool
	eof    bool
}

// NewReadAutoCloser returns a ReadAutoCloser wrapping r. If r is not a Closer,
// it is wrapped with io.NopCloser.
func NewReadAutoCloser(r io.Reader) *ReadAutoCloser {
	if rc, ok := r.(io.ReadCloser); ok {
		return &ReadAutoCloser{r: rc}
	}
	return &ReadAutoCloser{r: io.NopCloser(r)}
}

// Read reads up to len(b) bytes from the data source into b. At end of file the
// data source is closed, and every later Read returns 0, io.EOF. Reading after
// an explicit Close, before end of file was reached, returns os.ErrClosed.
func (a *ReadAutoCloser) Read(b []byte) (int, error) {
	if a == nil || a.r == nil {
		return 0, io.EOF
	}
	if a.eof {
		return 0, io.EOF
	}
	if a.closed {
		return 0, os.ErrClosed
	}
	n, err := a.r.Read(b)
	if errors.Is(err, io.EOF) {
		a.eof = true
		a.Close()
	}
	return n, err
}

// Close closes the data source associated with a, and returns the result of
// that close operation. Later calls return nil.
func (a *ReadAutoCloser) Close() error {
	if a == nil || a.r == nil || a.closed {
		return nil
	}
	a.closed = true
	return a.r.Close()
}
