package logincount

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"
	"unicode/utf8"
)

// ErrInvalidUTF8 is the error status set by Lines when a line is not valid
// UTF-8 text.
var ErrInvalidUTF8 = errors.New("invalid UTF-8")

// Lines returns an iterator over the lines of the pipe's reader, without line
// terminators ("\n" or "\r\n"). Lines are read one at a time, so memory use
// grows with the longest line rather than with the size of the input. There is
// no limit on line length. The reader is closed when iteration ends, including
// when the loop body breaks early.
//
// If there is an error reading the pipe, or a line is not valid UTF-8, the
// pipe's error status is set and iteration stops. Callers should check Error
// after the loop.
func (p *Pipe) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		if p == nil || p.Error() != nil {
			return
		}
		defer p.Close()
		reader := bufio.NewReaderSize(p.Reader, 64*1024)
		var n int
		for {
			line, err := reader.ReadString('\n')
			if err != nil && !errors.Is(err, io.EOF) {
				p.SetError(err)
				return
			}
			if line == "" && err != nil {
				return
			}
			n++
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			if !utf8.ValidString(line) {
				p.SetError(fmt.Errorf("line %d: %w", n, ErrInvalidUTF8))
				return
			}
			if !yield(line) {
				return
			}
			if err != nil {
				return
			}
		}
	}
}
