// Package cli implements the goalgrid command-line interface.
//
// The tool has a single job: load a configuration, compute the page
// geometry, and write one printable goal tracker PDF. There are no
// subcommands; the root command runs the generation directly.
//
// # Logging
//
// --verbose (-v) enables debug-level logging. The logger is built with
// charmbracelet/log, writes to stderr, and travels through
// context.Context to keep the generation code free of globals.
//
// # Example
//
//	goalgrid 2027 --config config.yaml --output tracker_2027.pdf
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/goalgrid/goalgrid/pkg/config"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// This is typically called by the main package during initialization with
// values injected via ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the goalgrid CLI and returns an error if generation fails.
// Failures other than cancellation are reported on the terminal here, so
// callers only need to map the error to an exit code.
func Execute(ctx context.Context) error {
	err := newRootCommand().ExecuteContext(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		printError("%v", err)
	}
	return err
}

func newRootCommand() *cobra.Command {
	var verbose bool
	opts := generateOpts{
		configPath: config.DefaultPath,
		year:       time.Now().Year(),
	}

	root := &cobra.Command{
		Use:   "goalgrid [year]",
		Short: "goalgrid generates a printable annual goal tracker PDF",
		Long: `goalgrid generates a single-page, printable US Letter PDF for tracking one
goal across a year: quarterly and monthly goal columns, 52 weekly rows with
writing lines, and a checkbox per week. The optional year argument selects
the year shown in the header and used for the weekly date labels.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				year, err := parseYear(args[0])
				if err != nil {
					return err
				}
				opts.year = year
			}
			return runGenerate(cmd.Context(), &opts)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("goalgrid %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.Flags().StringVarP(&opts.configPath, "config", "c", opts.configPath, "path to configuration file")
	root.Flags().StringVarP(&opts.output, "output", "o", "", "output PDF filename (overrides output.filename)")

	return root
}

// parseYear validates the optional year argument. The range is generous
// but rejects obvious typos like two-digit or five-digit years.
func parseYear(s string) (int, error) {
	year, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid year %q", s)
	}
	if year < 1583 || year > 9999 {
		return 0, fmt.Errorf("year %d out of range 1583..9999", year)
	}
	return year, nil
}
