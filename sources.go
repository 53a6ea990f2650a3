package logincount

import (
	"os"
	"strings"

	"github.com/spf13/afero"
)

// Echo returns a pipe containing the supplied string.
func Echo(s string) *Pipe {
	return NewPipe().WithReader(strings.NewReader(s))
}

// File returns a *Pipe associated with the named file on the operating
// system's filesystem. If there is an error opening the file, the pipe's error
// status will be set.
func File(name string) *Pipe {
	return FileFs(afero.NewOsFs(), name)
}

// FileFs is like File, but opens name on fsys. The returned pipe also uses
// fsys for its file sinks.
func FileFs(fsys afero.Fs, name string) *Pipe {
	p := NewPipe().WithFs(fsys)
	f, err := fsys.Open(name)
	if err != nil {
		return p.WithError(err)
	}
	return p.WithReader(f)
}

// Stdin returns a pipe which reads from the program's standard input.
func Stdin() *Pipe {
	return NewPipe().WithReader(os.Stdin)
}
