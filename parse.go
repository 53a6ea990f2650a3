package logincount

import (
	"errors"
	"fmt"
	"strings"
)

// LoginMarker is the text that identifies a login line in a server log:
//
//	[12:00:00] [Server thread/INFO]: Alice[/127.0.0.1:50432] logged in with entity id 5 at (...)
const LoginMarker = "logged in with entity id"

// nameField is the index of the "name[/address]" field in a login line split
// on single spaces.
const nameField = 3

// ErrMalformedLine is wrapped by every error ParseLogin returns.
var ErrMalformedLine = errors.New("malformed login line")

// IsLogin reports whether line contains LoginMarker.
func IsLogin(line string) bool {
	return strings.Contains(line, LoginMarker)
}

// ParseLogin returns the player name from a login line. The line is split on
// single spaces, not arbitrary whitespace, and the name is everything in the
// fourth field before its first '['. ParseLogin does not check for
// LoginMarker; callers should filter with IsLogin first.
func ParseLogin(line string) (string, error) {
	fields := strings.Split(line, " ")
	if len(fields) <= nameField {
		return "", fmt.Errorf("%w: want at least %d space-separated fields, got %d",
			ErrMalformedLine, nameField+1, len(fields))
	}
	name, _, ok := strings.Cut(fields[nameField], "[")
	if !ok {
		return "", fmt.Errorf("%w: no '[' in %q", ErrMalformedLine, fields[nameField])
	}
	return name, nil
}

// ParseError records a login line that could not be parsed, and where it was.
type ParseError struct {
	Path string
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %v", e.Path, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
