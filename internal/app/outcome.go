package app

import "github.com/mcstats/logincount"

// Status says how a run ended.
type Status int

const (
	// StatusCompleted means the table was printed and written.
	StatusCompleted Status = iota

	// StatusNoInput means the data directory was missing and has been
	// created.
	StatusNoInput

	// StatusEmptyInput means the data directory had no entries.
	StatusEmptyInput

	// StatusNoLogins means the log files held no login lines.
	StatusNoLogins
)

func (s Status) String() string {
	switch s {
	case StatusCompleted:
		return "completed"
	case StatusNoInput:
		return "no input"
	case StatusEmptyInput:
		return "empty input"
	case StatusNoLogins:
		return "no logins"
	default:
		return "unknown"
	}
}

// Outcome is the result of a run. Entries, Table and Total are only set when
// Status is StatusCompleted.
type Outcome struct {
	Status  Status
	Entries []logincount.Entry
	Table   string
	Total   int
	Files   int
}
