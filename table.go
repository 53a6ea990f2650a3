package logincount

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Table header labels.
const (
	NameHeader  = "Name"
	CountHeader = "No. of logins"
)

const (
	// DefaultPadding is the number of fill characters added after the widest
	// cell in the first column.
	DefaultPadding = 5

	// DefaultFill pads the first column.
	DefaultFill = '_'
)

// Table renders ranked entries as fixed-width text:
//
//	Name______________No. of logins
//	Alice_____________2
//	Bob_______________1
//
// The first column is padded with Fill to Width; the second column follows it
// directly.
type Table struct {
	Entries []Entry
	Padding int
	Fill    rune
}

// NewTable returns a Table for entries with the default padding and fill.
func NewTable(entries []Entry) *Table {
	return &Table{
		Entries: entries,
		Padding: DefaultPadding,
		Fill:    DefaultFill,
	}
}

// Width returns the width of the first column: the length in characters of
// the longest cell, counting both headers, every name and every count, plus
// Padding.
func (t *Table) Width() int {
	widest := max(utf8.RuneCountInString(NameHeader), utf8.RuneCountInString(CountHeader))
	for _, e := range t.Entries {
		widest = max(widest, utf8.RuneCountInString(e.Name), len(strconv.Itoa(e.Count)))
	}
	return widest + t.Padding
}

// Lines returns the header line followed by one line per entry, without line
// terminators.
func (t *Table) Lines() []string {
	width := t.Width()
	lines := make([]string, 0, len(t.Entries)+1)
	lines = append(lines, t.pad(NameHeader, width)+CountHeader)
	for _, e := range t.Entries {
		lines = append(lines, t.pad(e.Name, width)+strconv.Itoa(e.Count))
	}
	return lines
}

// String returns the rendered table with a newline after every line.
func (t *Table) String() string {
	var b strings.Builder
	for _, line := range t.Lines() {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// Pipe returns a pipe containing the rendered table.
func (t *Table) Pipe() *Pipe {
	return Echo(t.String())
}

func (t *Table) pad(s string, width int) string {
	fill := t.Fill
	if fill == 0 {
		fill = DefaultFill
	}
	n := width - utf8.RuneCountInString(s)
	if n <= 0 {
		return s
	}
	return s + strings.Repeat(string(fill), n)
}
