/*
Package app runs a login count: it checks the data directory, reads every log
file in it, tallies logins per player and writes the ranked table to stdout and
to the output file.

Usage:

	a := app.New(app.DefaultConfig(), app.WithLogger(log))
	outcome, err := a.Run()
	if err != nil {
	    return err
	}
	if outcome.Status != app.StatusCompleted {
	    // nothing was written
	}
*/
package app

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/mcstats/logincount"
	"github.com/mcstats/logincount/internal/logger"
)

// Messages printed to the user when a run stops early or creates a directory.
const (
	MsgDataDirCreated   = "Data directory not found. I have created a data folder, please populate it with log files and try again"
	MsgDataDirEmpty     = "Your data directory is empty. Please populate it with log files and try again"
	MsgOutputDirCreated = "Output folder not found, creating one..."
)

// Config controls a run.
type Config struct {
	DataDir    string
	OutputDir  string
	OutputFile string

	// Extension is the case-sensitive suffix a file name must end with to be
	// read.
	Extension string

	// Marker identifies login lines.
	Marker string

	Padding int

	// SkipMalformed logs and skips login lines that cannot be parsed. When
	// false, such a line aborts the run.
	SkipMalformed bool

	DataDirCreated   string
	DataDirEmpty     string
	OutputDirCreated string
}

// DefaultConfig returns the configuration for reading ./data and writing
// ./output/output.txt.
func DefaultConfig() Config {
	return Config{
		DataDir:          "data",
		OutputDir:        "output",
		OutputFile:       "output.txt",
		Extension:        ".log",
		Marker:           logincount.LoginMarker,
		Padding:          logincount.DefaultPadding,
		DataDirCreated:   MsgDataDirCreated,
		DataDirEmpty:     MsgDataDirEmpty,
		OutputDirCreated: MsgOutputDirCreated,
	}
}

// OutputPath returns the full path of the table file.
func (c Config) OutputPath() string {
	return filepath.Join(c.OutputDir, c.OutputFile)
}

// App runs login counts against a filesystem.
type App struct {
	config Config
	fs     afero.Fs
	stdout io.Writer
	log    logger.Logger
}

// Option configures an App.
type Option func(*App)

// WithFs sets the filesystem the App reads and writes. The default is the
// operating system's filesystem.
func WithFs(fsys afero.Fs) Option {
	return func(a *App) { a.fs = fsys }
}

// WithStdout sets where the table and user messages are printed. The default
// is os.Stdout.
func WithStdout(w io.Writer) Option {
	return func(a *App) { a.stdout = w }
}

// WithLogger sets the diagnostic logger. The default discards everything.
func WithLogger(log logger.Logger) Option {
	return func(a *App) { a.log = log }
}

// New returns an App for cfg.
func New(cfg Config, opts ...Option) *App {
	a := &App{
		config: cfg,
		fs:     afero.NewOsFs(),
		stdout: os.Stdout,
		log:    logger.Nop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run performs one login count. A missing or empty data directory, or logs
// with no logins in them, are not errors: Run reports them in the returned
// Outcome and writes nothing. Any read error, and in strict mode any
// unparseable login line, aborts the run before anything is written.
func (a *App) Run() (Outcome, error) {
	a.log.WithFields(logger.Fields{
		"dataDir":   a.config.DataDir,
		"output":    a.config.OutputPath(),
		"extension": a.config.Extension,
	}).Info("Starting login count")

	created, err := a.ensureDataDir()
	if err != nil {
		return Outcome{}, err
	}
	if created {
		a.say(a.config.DataDirCreated)
		return Outcome{Status: StatusNoInput}, nil
	}

	entries, err := afero.ReadDir(a.fs, a.config.DataDir)
	if err != nil {
		return Outcome{}, fmt.Errorf("list data directory: %w", err)
	}
	if len(entries) == 0 {
		a.say(a.config.DataDirEmpty)
		return Outcome{Status: StatusEmptyInput}, nil
	}

	tally := logincount.NewTally()
	var files int
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), a.config.Extension) {
			a.log.WithFields(logger.Fields{"name": entry.Name()}).Trace("Skipping entry")
			continue
		}
		if err := a.scanFile(filepath.Join(a.config.DataDir, entry.Name()), tally); err != nil {
			return Outcome{}, err
		}
		files++
	}

	if tally.Len() == 0 {
		a.log.WithFields(logger.Fields{"files": files}).Info("No logins found")
		return Outcome{Status: StatusNoLogins, Files: files}, nil
	}

	ranked := tally.Ranked()
	table := logincount.NewTable(ranked)
	table.Padding = a.config.Padding

	if _, err := table.Pipe().WithStdout(a.stdout).Stdout(); err != nil {
		return Outcome{}, fmt.Errorf("print table: %w", err)
	}
	if err := a.writeTable(table); err != nil {
		return Outcome{}, err
	}

	outcome := Outcome{
		Status:  StatusCompleted,
		Entries: ranked,
		Table:   table.String(),
		Total:   tally.Total(),
		Files:   files,
	}
	a.log.WithFields(logger.Fields{
		"files":   outcome.Files,
		"players": len(outcome.Entries),
		"logins":  outcome.Total,
		"output":  a.config.OutputPath(),
	}).Info("Login count completed")
	return outcome, nil
}

// ensureDataDir creates the data directory if it is missing, and reports
// whether it did.
func (a *App) ensureDataDir() (bool, error) {
	info, err := a.fs.Stat(a.config.DataDir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err := a.fs.MkdirAll(a.config.DataDir, 0o755); err != nil {
			return false, fmt.Errorf("create data directory: %w", err)
		}
		a.log.WithFields(logger.Fields{"path": a.config.DataDir}).Info("Created data directory")
		return true, nil
	case err != nil:
		return false, fmt.Errorf("stat data directory: %w", err)
	case !info.IsDir():
		return false, fmt.Errorf("data directory %s is not a directory", a.config.DataDir)
	}
	return false, nil
}

// scanFile records every login in the file at path. The file is closed before
// scanFile returns.
func (a *App) scanFile(path string, tally *logincount.Tally) error {
	log := a.log.WithFields(logger.Fields{"path": path})
	log.Debug("Reading log file")

	p := logincount.FileFs(a.fs, path)
	var n, logins int
	for line := range p.Lines() {
		n++
		if !strings.Contains(line, a.config.Marker) {
			continue
		}
		name, err := logincount.ParseLogin(line)
		if err != nil {
			perr := &logincount.ParseError{Path: path, Line: n, Text: line, Err: err}
			if !a.config.SkipMalformed {
				return perr
			}
			log.WithFields(logger.Fields{"line": n, "error": err.Error()}).Warn("Skipping malformed login line")
			continue
		}
		tally.Record(name)
		logins++
	}
	if err := p.Error(); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	log.WithFields(logger.Fields{"lines": n, "logins": logins}).Debug("Finished log file")
	return nil
}

// writeTable writes the table to the output file, creating the output
// directory first if needed.
func (a *App) writeTable(table *logincount.Table) error {
	_, err := a.fs.Stat(a.config.OutputDir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		a.say(a.config.OutputDirCreated)
		if err := a.fs.MkdirAll(a.config.OutputDir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	case err != nil:
		return fmt.Errorf("stat output directory: %w", err)
	}

	if _, err := table.Pipe().WithFs(a.fs).WriteFile(a.config.OutputPath()); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	return nil
}

func (a *App) say(msg string) {
	fmt.Fprintln(a.stdout, msg)
}
