// Package logincount counts player logins in Minecraft server logs and renders
// the totals as a fixed-width table.
//
// Reading is done through a Pipe, which wraps a data source and carries an
// error status. Once a pipe operation fails, every later operation on that
// pipe is a no-op that returns the same error, so a chain can be checked once
// at the end:
//
//	p := logincount.File("data/latest.log")
//	for line := range p.Lines() {
//		if logincount.IsLogin(line) {
//			name, err := logincount.ParseLogin(line)
//			...
//		}
//	}
//	if err := p.Error(); err != nil {
//		...
//	}
//
// Counts are accumulated in a Tally and rendered with a Table.
package logincount

import (
	"io"
	"os"

	"github.com/spf13/afero"
)

// Pipe represents a pipe object with an associated ReadAutoCloser.
type Pipe struct {
	Reader *ReadAutoCloser
	err    error
	stdout io.Writer
	fs     afero.Fs
}

// NewPipe returns a pointer to a new empty pipe that writes to os.Stdout and
// uses the operating system's filesystem.
func NewPipe() *Pipe {
	return &Pipe{
		Reader: &ReadAutoCloser{},
		stdout: os.Stdout,
		fs:     afero.NewOsFs(),
	}
}

// Close closes the pipe's associated reader. This is always safe to do, even
// more than once, and on a nil or zero pipe.
func (p *Pipe) Close() error {
	if p == nil {
		return nil
	}
	return p.Reader.Close()
}

// Error returns the last error returned by any pipe operation, or nil otherwise.
func (p *Pipe) Error() error {
	if p == nil {
		return nil
	}
	return p.err
}

// Read reads up to len(b) bytes from the data source into b. At end of file,
// or on a nil pipe, Read returns 0, io.EOF.
func (p *Pipe) Read(b []byte) (int, error) {
	if p == nil {
		return 0, io.EOF
	}
	return p.Reader.Read(b)
}

// SetError sets the pipe's error status to the specified error. A non-nil
// error also closes the pipe's reader.
func (p *Pipe) SetError(err error) {
	if p == nil {
		return
	}
	if err != nil {
		p.Close()
	}
	p.err = err
}

// WithReader associates the pipe with r. The reader is closed automatically,
// if closable, once it has been completely read.
func (p *Pipe) WithReader(r io.Reader) *Pipe {
	if p == nil {
		return nil
	}
	p.Reader = NewReadAutoCloser(r)
	return p
}

// WithStdout associates the pipe's standard output with w instead of the
// default os.Stdout.
func (p *Pipe) WithStdout(w io.Writer) *Pipe {
	if p == nil {
		return nil
	}
	p.stdout = w
	return p
}

// WithFs sets the filesystem used by file sinks such as WriteFile.
func (p *Pipe) WithFs(fsys afero.Fs) *Pipe {
	if p == nil {
		return nil
	}
	p.fs = fsys
	return p
}

// WithError sets the pipe's error status to the specified error and returns the
// modified pipe.
func (p *Pipe) WithError(err error) *Pipe {
	p.SetError(err)
	return p
}

func (p *Pipe) filesystem() afero.Fs {
	if p.fs == nil {
		return afero.NewOsFs()
	}
	return p.fs
}

func (p *Pipe) output() io.Writer {
	if p.stdout == nil {
		return os.Stdout
	}
	return p.stdout
}
