// Command logincount counts player logins in the Minecraft server logs found
// in ./data and writes a ranked table to stdout and ./output/output.txt.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcstats/logincount/internal/app"
	"github.com/mcstats/logincount/internal/config"
	"github.com/mcstats/logincount/internal/logger"
	"github.com/mcstats/logincount/internal/version"
)

func main() {
	os.Exit(run())
}

func run() int {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

type options struct {
	configPath string
	cfg        config.Config
	verbosity  int
}

func newRootCommand() *cobra.Command {
	opts := &options{cfg: config.Default()}

	cmd := &cobra.Command{
		Use:   "logincount [flags]",
		Short: "Count player logins in Minecraft server logs",
		Long: `logincount reads every .log file in the data directory, counts the
"logged in with entity id" lines per player, and prints a table of players
ranked by number of logins. The same table is written to the output file.

If the data directory does not exist it is created and nothing else is done.

Environment Variables:
  LOGINCOUNT_DATA_DIR, LOGINCOUNT_OUTPUT_DIR, LOGINCOUNT_OUTPUT_FILE,
  LOGINCOUNT_EXTENSION, LOGINCOUNT_PADDING, LOGINCOUNT_SKIP_MALFORMED,
  LOGINCOUNT_VERBOSE`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCount(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "config file (toml, yaml or json)")
	flags.StringVarP(&opts.cfg.DataDir, "data", "d", config.DefaultDataDir, "directory holding the server logs")
	flags.StringVar(&opts.cfg.OutputDir, "output-dir", config.DefaultOutputDir, "directory to write the table to")
	flags.StringVarP(&opts.cfg.OutputFile, "output-file", "o", config.DefaultOutputFile, "name of the table file")
	flags.StringVar(&opts.cfg.Extension, "extension", config.DefaultExtension, "only read files ending in this suffix")
	flags.IntVar(&opts.cfg.Padding, "padding", config.DefaultPadding, "fill characters after the widest name")
	flags.BoolVar(&opts.cfg.SkipMalformed, "skip-malformed", false, "skip unparseable login lines instead of failing")
	flags.CountVarP(&opts.verbosity, "verbose", "v", "verbose logging to stderr (repeat for more)")

	cmd.AddCommand(newVersionCommand())
	return cmd
}

func runCount(cmd *cobra.Command, opts *options) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	if err := applyFlags(cmd, opts, &cfg); err != nil {
		return err
	}

	log := logger.NewLogger(logger.Config{
		Verbosity: cfg.Verbose,
		Output:    cmd.ErrOrStderr(),
	})
	log.WithFields(logger.Fields{"config": fmt.Sprintf("%+v", cfg)}).Debug("Configuration loaded")

	appCfg := app.DefaultConfig()
	appCfg.DataDir = cfg.DataDir
	appCfg.OutputDir = cfg.OutputDir
	appCfg.OutputFile = cfg.OutputFile
	appCfg.Extension = cfg.Extension
	appCfg.Padding = cfg.Padding
	appCfg.SkipMalformed = cfg.SkipMalformed

	outcome, err := app.New(appCfg,
		app.WithStdout(cmd.OutOrStdout()),
		app.WithLogger(log),
	).Run()
	if err != nil {
		log.WithFields(logger.Fields{"error": err.Error()}).Error("Login count failed")
		return err
	}
	log.WithFields(logger.Fields{"status": outcome.Status.String()}).Debug("Run finished")
	return nil
}

// applyFlags overrides cfg with every flag set on the command line, then
// expands and validates the merged result. Flags win over the environment,
// which wins over the config file.
func applyFlags(cmd *cobra.Command, opts *options, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("data") {
		cfg.DataDir = opts.cfg.DataDir
	}
	if flags.Changed("output-dir") {
		cfg.OutputDir = opts.cfg.OutputDir
	}
	if flags.Changed("output-file") {
		cfg.OutputFile = opts.cfg.OutputFile
	}
	if flags.Changed("extension") {
		cfg.Extension = opts.cfg.Extension
	}
	if flags.Changed("padding") {
		cfg.Padding = opts.cfg.Padding
	}
	if flags.Changed("skip-malformed") {
		cfg.SkipMalformed = opts.cfg.SkipMalformed
	}
	if flags.Changed("verbose") {
		cfg.Verbose = opts.verbosity
	}
	if err := cfg.Expand(); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func newVersionCommand() *cobra.Command {
	var full bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if full {
				fmt.Fprintln(cmd.OutOrStdout(), version.Full())
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), version.String())
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&full, "full", "f", false, "show commit, build date and platform")
	return cmd
}
