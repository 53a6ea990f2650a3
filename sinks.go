package logincount

import (
	"io"
	"os"
)

// String returns the contents of the pipe as a string, or an error, and closes
// the pipe after reading. If there is an error reading, the pipe's error status
// is also set.
func (p *Pipe) String() (string, error) {
	if p == nil {
		return "", nil
	}
	if p.Error() != nil {
		return "", p.Error()
	}
	defer p.Close()
	res, err := io.ReadAll(p.Reader)
	if err != nil {
		p.SetError(err)
		return "", err
	}
	return string(res), nil
}

// Stdout copies the contents of the pipe to the pipe's standard output, which
// is os.Stdout unless changed with WithStdout. It returns the number of bytes
// written, or an error. If the pipe has error status, Stdout returns zero plus
// the existing error.
func (p *Pipe) Stdout() (int64, error) {
	if p == nil {
		return 0, nil
	}
	if p.Error() != nil {
		return 0, p.Error()
	}
	defer p.Close()
	n, err := io.Copy(p.output(), p.Reader)
	if err != nil {
		p.SetError(err)
		return n, err
	}
	return n, nil
}

// WriteFile writes the contents of the pipe to the named file, replacing
// anything it held before, and closes the pipe after reading. It returns the
// number of bytes written, or an error. If there is an error reading or
// writing, the pipe's error status is also set.
func (p *Pipe) WriteFile(name string) (int64, error) {
	if p == nil {
		return 0, nil
	}
	if p.Error() != nil {
		return 0, p.Error()
	}
	defer p.Close()
	out, err := p.filesystem().OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		p.SetError(err)
		return 0, err
	}
	wrote, err := io.Copy(out, p.Reader)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		p.SetError(err)
		return wrote, err
	}
	return wrote, nil
}
