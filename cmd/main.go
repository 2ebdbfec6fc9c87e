package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/brettbedarf/dedupe/app"
	"github.com/brettbedarf/dedupe/config"
	"github.com/brettbedarf/dedupe/hashers"
	"github.com/brettbedarf/dedupe/internal/journal"
	"github.com/brettbedarf/dedupe/internal/report"
	"github.com/brettbedarf/dedupe/internal/util"
	"github.com/spf13/cobra"
)

var errUsage = errors.New("usage error")

type cliOptions struct {
	configPath string
	verbose    int
	hasher     string
	logFile    string
	summary    bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code. Every failure,
// usage or fatal, exits 1.
func run(args []string, stdout, stderr io.Writer) int {
	hashers.RegisterBuiltins()

	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(stderr, "ERROR: %s\n", err)
		if errors.Is(err, errUsage) {
			fmt.Fprint(stderr, cmd.UsageString())
		}
		return 1
	}
	return 0
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &cliOptions{}
	cmd := &cobra.Command{
		Use:   "dedupe [flags] <directory>",
		Short: "Delete duplicate files under a directory, keeping the most recently modified copy",
		Long: `Recursively scans <directory>, skipping hidden entries, and fingerprints every file.
When two files share a fingerprint the one with the earlier modification time is
deleted. Deletions are permanent. Every step is appended to the log file.`,
		Args: func(cmd *cobra.Command, args []string) error {
			switch {
			case len(args) == 0:
				return fmt.Errorf("%w: no directory path provided", errUsage)
			case len(args) > 1:
				return fmt.Errorf("%w: expected one directory, got %d arguments", errUsage, len(args))
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			return dedupeTree(cmd.Context(), cfg, args[0], stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", errUsage, err)
	})

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Path to a YAML or JSON config file")
	flags.IntVarP(&opts.verbose, "verbose", "v", config.DefaultVerbosity,
		"Log verbosity level between 1 (error) and 5 (trace). Default is 2 (warn).")
	flags.StringVar(&opts.hasher, "hasher", config.DefaultHasher,
		"Fingerprint backend: "+strings.Join(hashers.Names(), ", "))
	flags.StringVar(&opts.logFile, "log-file", config.DefaultLogFile, "Append-only run log")
	flags.BoolVarP(&opts.summary, "summary", "s", config.DefaultSummary, "Print a summary tree when done")
	return cmd
}

// loadConfig layers defaults, the optional config file, then explicitly set flags.
func loadConfig(cmd *cobra.Command, opts *cliOptions) (*config.Config, error) {
	cfg := config.NewDefaultConfig()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.NewConfigFromFile(opts.configPath); err != nil {
			return nil, fmt.Errorf("load config %q: %w", opts.configPath, err)
		}
	}

	override := &config.ConfigOverride{}
	flags := cmd.Flags()
	if flags.Changed("verbose") {
		override.LogLvl = &opts.verbose
	}
	if flags.Changed("hasher") {
		override.Hasher = &opts.hasher
	}
	if flags.Changed("log-file") {
		override.LogFile = &opts.logFile
	}
	if flags.Changed("summary") {
		override.Summary = &opts.summary
	}
	cfg.Merge(override)
	return cfg, nil
}

func dedupeTree(ctx context.Context, cfg *config.Config, root string, stdout, stderr io.Writer) error {
	util.InitializeLoggerTo(stderr, cfg.LogLvl)
	logger := util.GetLogger("main")
	logger.Info().Str("root", root).Str("hasher", cfg.Hasher).Str("log", cfg.LogFile).Msg("dedupe initializing")

	a, err := app.New(cfg, root)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			logger.Error().Err(err).Msg("Failed to close log file")
		}
	}()

	summary, err := a.Run(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, journal.CompletedMsg)
	if cfg.Summary {
		fmt.Fprint(stdout, report.Render(summary))
	}
	return nil
}
