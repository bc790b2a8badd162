package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"coursegraph/internal/banner"
	"coursegraph/internal/telemetry"

	"github.com/spf13/cobra"
)

var (
	configPath string
	dumpDir    string
	verbose    bool

	exporters telemetry.Exporters
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "config.json5", "The config file to read the banner instance from.")
	flags.StringVar(&dumpDir, "dump", "", "A directory to write every http exchange to.")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Log every request and debug information.")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err: err}
	})

	initSearchFlags()
}

var rootCmd = &cobra.Command{
	Use:   "coursegraph [flags] <term>",
	Short: "coursegraph scrapes a banner class search and outputs the graph of course requisites.",
	Long: `coursegraph scrapes a banner class search and outputs the graph of course requisites.

The term can be given by code (201910) or by name ("Fall 2018 Semester"), so
can instructors. Levels and subjects are given by code, "%" matches any.`,
	Args:          exactArgs(1),
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		telemetry.InitSlog(verbose)

		var err error
		exporters, err = telemetry.SetupFromEnv(cmd.Context(), "coursegraph")
		if err != nil {
			slog.Warn("failed to setup telemetry export", "err", err)
		}
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()
		err := exporters.Shutdown(ctx)
		if err != nil {
			slog.Warn("failed to flush telemetry", "err", err)
		}
	},
	RunE: runSearch,
}

// usageError is an error caused by the arguments given rather than by
// banner or the network.
type usageError struct {
	err error
}

func (e usageError) Error() string {
	return e.err.Error()
}

func (e usageError) Unwrap() error {
	return e.err
}

func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		err := cobra.ExactArgs(n)(cmd, args)
		if err != nil {
			return usageError{err: err}
		}
		return nil
	}
}

func isUsageError(err error) bool {
	var usage usageError
	var invalid *banner.InvalidSelectionError
	var ambiguous *banner.AmbiguousSelectionError
	return errors.As(err, &usage) || errors.As(err, &invalid) || errors.As(err, &ambiguous)
}

func ExecuteContext(ctx context.Context) {
	cmd, err := rootCmd.ExecuteContextC(ctx)
	if err == nil {
		return
	}

	fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
	if isUsageError(err) {
		fmt.Fprint(os.Stderr, cmd.UsageString())
		os.Exit(2)
	}
	os.Exit(1)
}
