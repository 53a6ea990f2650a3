package logincount

import (
	"errors"
	"testing"
)

func TestParseLogin(t *testing.T) {
	t.Parallel()
	tcs := []struct {
		line string
		want string
	}{
		{"[12:00:00] [Server thread/INFO]: Alice[/127.0.0.1] logged in with entity id 5 at (...)", "Alice"},
		{"[09:00:12] [Server thread/INFO]: Steve[/192.168.1.20:50432] logged in with entity id 142 at (12.5, 64.0, -33.5)", "Steve"},
		{"[09:00:12] [Server thread/INFO]: x_Player_99[local] logged in with entity id 1 at (0, 0, 0)", "x_Player_99"},
		{"a b c [/1.2.3.4] logged in with entity id 1", ""},
		{"a b c Jöns[/1.2.3.4] logged in with entity id 1", "Jöns"},
		{"a b c Nested[x[y] logged in with entity id 1", "Nested"},
	}
	for _, tc := range tcs {
		got, err := ParseLogin(tc.line)
		if err != nil {
			t.Errorf("%q: %v", tc.line, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%q: want %q, got %q", tc.line, tc.want, got)
		}
	}
}

func TestParseLoginMalformed(t *testing.T) {
	t.Parallel()
	tcs := []string{
		"",
		"logged in with",
		"a b c",
		"Alice logged in with entity id 6",
		// Fields are split on single spaces, so a double space shifts them.
		"[12:00:00]  [Server thread/INFO]: Alice[/127.0.0.1] logged in with entity id 5",
	}
	for _, line := range tcs {
		_, err := ParseLogin(line)
		if !errors.Is(err, ErrMalformedLine) {
			t.Errorf("%q: want ErrMalformedLine, got %v", line, err)
		}
	}
}

func TestIsLogin(t *testing.T) {
	t.Parallel()
	if !IsLogin("[12:00:00] [Server thread/INFO]: Alice[/127.0.0.1] logged in with entity id 5 at (...)") {
		t.Error("want login line recognised")
	}
	if IsLogin("[12:10:00] [Server thread/INFO]: Alice lost connection: Disconnected") {
		t.Error("want disconnect line not recognised as login")
	}
}

func TestParseError(t *testing.T) {
	t.Parallel()
	_, cause := ParseLogin("Alice logged in with entity id 6")
	var err error = &ParseError{Path: "data/a.log", Line: 2, Text: "Alice logged in with entity id 6", Err: cause}
	want := `data/a.log:2: malformed login line: no '[' in "with"`
	if err.Error() != want {
		t.Errorf("want %q, got %q", want, err.Error())
	}
	if !errors.Is(err, ErrMalformedLine) {
		t.Error("want ParseError to unwrap to ErrMalformedLine")
	}
}
