package logincount

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"testing"
)

// closeRecorder is a ReadCloser that remembers whether it was closed.
type closeRecorder struct {
	io.Reader
	closed bool
	closes int
}

func (c *closeRecorder) Close() error {
	c.closed = true
	c.closes++
	return nil
}

func TestReadAutoCloser(t *testing.T) {
	t.Parallel()
	want, err := os.ReadFile("testdata/hello.txt")
	if err != nil {
		t.Fatal(err)
	}
	input, err := os.Open("testdata/hello.txt")
	if err != nil {
		t.Fatal(err)
	}
	acr := NewReadAutoCloser(input)
	got, err := io.ReadAll(acr)
	if err != nil {
		t.Error(err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("want %q, got %q", want, got)
	}
	got, err = io.ReadAll(acr)
	if err != nil {
		t.Errorf("want no error reading after EOF, got %v", err)
	}
	if len(got) != 0 {
		t.Errorf("want no data reading after EOF, got %q", got)
	}
}

func TestReadAutoCloserReturnsEOFAfterAutoClose(t *testing.T) {
	t.Parallel()
	r := &closeRecorder{Reader: strings.NewReader("x")}
	acr := NewReadAutoCloser(r)
	if _, err := io.ReadAll(acr); err != nil {
		t.Fatal(err)
	}
	if !r.closed {
		t.Fatal("want reader closed at EOF")
	}
	buf := make([]byte, 1)
	for range 2 {
		n, err := acr.Read(buf)
		if n != 0 || err != io.EOF {
			t.Errorf("want 0, io.EOF, got %d, %v", n, err)
		}
	}
}

func TestReadAutoCloserExplicitCloseBeforeEOF(t *testing.T) {
	t.Parallel()
	r := &closeRecorder{Reader: strings.NewReader("unread")}
	acr := NewReadAutoCloser(r)
	if err := acr.Close(); err != nil {
		t.Fatal(err)
	}
	if !r.closed {
		t.Fatal("want reader closed")
	}
	_, err := acr.Read(make([]byte, 8))
	if !errors.Is(err, os.ErrClosed) {
		t.Errorf("want os.ErrClosed reading after Close, got %v", err)
	}
}

func TestReadAutoCloserClosesOnce(t *testing.T) {
	t.Parallel()
	r := &closeRecorder{Reader: strings.NewReader("x")}
	acr := NewReadAutoCloser(r)
	if _, err := io.ReadAll(acr); err != nil {
		t.Fatal(err)
	}
	if err := acr.Close(); err != nil {
		t.Fatal(err)
	}
	if r.closes != 1 {
		t.Errorf("want 1 close, got %d", r.closes)
	}
}

func TestReadAutoCloserWrapsNonClosers(t *testing.T) {
	t.Parallel()
	acr := NewReadAutoCloser(strings.NewReader("plain"))
	got, err := io.ReadAll(acr)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "plain" {
		t.Errorf("want %q, got %q", "plain", got)
	}
	if err := acr.Close(); err != nil {
		t.Errorf("want nil from second Close, got %v", err)
	}
}
