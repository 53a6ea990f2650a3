/*
Package config loads logincount settings from defaults, an optional config
file and the environment, in increasing order of precedence. Command-line flags
are applied on top by the caller.

Environment Variables:

	LOGINCOUNT_DATA_DIR        Directory holding the server logs
	LOGINCOUNT_OUTPUT_DIR      Directory the table is written to
	LOGINCOUNT_OUTPUT_FILE     Name of the table file inside the output directory
	LOGINCOUNT_EXTENSION       Only files ending in this suffix are read
	LOGINCOUNT_PADDING         Fill characters after the widest name
	LOGINCOUNT_SKIP_MALFORMED  Skip unparseable login lines instead of failing
	LOGINCOUNT_VERBOSE         Verbosity, as a number or a string of 'v's

Directory values may refer to environment variables ($HOME/logs, ${SERVER}/logs)
and may start with ~/.
*/
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"mvdan.cc/sh/v3/shell"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "LOGINCOUNT"

// Defaults.
const (
	DefaultDataDir    = "data"
	DefaultOutputDir  = "output"
	DefaultOutputFile = "output.txt"
	DefaultExtension  = ".log"
	DefaultPadding    = 5
)

// Config holds every user-adjustable setting.
type Config struct {
	DataDir       string
	OutputDir     string
	OutputFile    string
	Extension     string
	Padding       int
	SkipMalformed bool
	Verbose       int
}

var keys = []string{
	"data_dir",
	"output_dir",
	"output_file",
	"extension",
	"padding",
	"skip_malformed",
	"verbose",
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		DataDir:    DefaultDataDir,
		OutputDir:  DefaultOutputDir,
		OutputFile: DefaultOutputFile,
		Extension:  DefaultExtension,
		Padding:    DefaultPadding,
	}
}

// Load reads configuration from the config file at path, if path is not empty,
// and from the environment. The file format is chosen by its extension (.toml,
// .yaml, .json). Environment variables take precedence over the file.
//
// Load neither expands nor validates the result, so that callers can apply
// further overrides first. Call Expand and then Validate once all sources are
// merged.
func Load(path string) (Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("data_dir", def.DataDir)
	v.SetDefault("output_dir", def.OutputDir)
	v.SetDefault("output_file", def.OutputFile)
	v.SetDefault("extension", def.Extension)
	v.SetDefault("padding", def.Padding)
	v.SetDefault("skip_malformed", false)
	v.SetDefault("verbose", "0")

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	for _, k := range keys {
		if err := v.BindEnv(k); err != nil {
			return Config{}, fmt.Errorf("bind %s: %w", k, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := Config{
		DataDir:       v.GetString("data_dir"),
		OutputDir:     v.GetString("output_dir"),
		OutputFile:    v.GetString("output_file"),
		Extension:     v.GetString("extension"),
		Padding:       v.GetInt("padding"),
		SkipMalformed: v.GetBool("skip_malformed"),
		Verbose:       ParseVerbosity(v.GetString("verbose")),
	}
	return cfg, nil
}

// ParseVerbosity accepts either a number ("2") or a run of v's ("vv").
func ParseVerbosity(s string) int {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return strings.Count(s, "v")
}

// Expand expands environment variables and a leading ~/ in the directory
// settings.
func (c *Config) Expand() error {
	var err error
	if c.DataDir, err = expandPath(c.DataDir); err != nil {
		return fmt.Errorf("data directory: %w", err)
	}
	if c.OutputDir, err = expandPath(c.OutputDir); err != nil {
		return fmt.Errorf("output directory: %w", err)
	}
	return nil
}

func expandPath(p string) (string, error) {
	if p == "~" || strings.HasPrefix(p, "~/") {
		p = "$HOME" + p[1:]
	}
	expanded, err := shell.Expand(p, os.Getenv)
	if err != nil {
		return "", fmt.Errorf("expand %q: %w", p, err)
	}
	return expanded, nil
}

// Validate checks that the configuration can be used.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.DataDir) == "" {
		errs = append(errs, errors.New("data directory must not be empty"))
	}
	if strings.TrimSpace(c.OutputDir) == "" {
		errs = append(errs, errors.New("output directory must not be empty"))
	}
	switch {
	case strings.TrimSpace(c.OutputFile) == "":
		errs = append(errs, errors.New("output file must not be empty"))
	case filepath.Base(c.OutputFile) != c.OutputFile:
		errs = append(errs, fmt.Errorf("output file %q must be a plain file name", c.OutputFile))
	}
	if len(c.Extension) < 2 || !strings.HasPrefix(c.Extension, ".") {
		errs = append(errs, fmt.Errorf("extension %q must start with '.'", c.Extension))
	}
	if c.Padding < 0 {
		errs = append(errs, errors.New("padding must not be negative"))
	}
	if c.Verbose < 0 {
		errs = append(errs, errors.New("verbosity must not be negative"))
	}
	return errors.Join(errs...)
}

// OutputPath returns the full path of the table file.
func (c Config) OutputPath() string {
	return filepath.Join(c.OutputDir, c.OutputFile)
}
