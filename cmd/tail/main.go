// Command tail prints the final window of each named file and can keep
// following a file as it grows, surviving truncation and rotation.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sys/unix"

	"asdutils/internal/config"
	"asdutils/internal/logging"
	"asdutils/internal/version"
	"asdutils/internal/view"
	"asdutils/internal/window"
)

func newTailCommand(cfg *config.Config) *cobra.Command {
	spec := window.Spec{Mode: window.LastLines, Count: uint64(cfg.View.DefaultLines)}
	var (
		quiet, silent, verbose bool
		followMode             bool
		sleepInterval          = cfg.View.Interval()
	)

	cmd := &cobra.Command{
		Use:   "tail [flag]... [file]...",
		Short: "Print the last 10 lines of each file to standard output",
		Long: "Print the last 10 lines of each FILE to standard output.\n" +
			"With more than one FILE, precede each with a header giving the file name.\n" +
			"If the first character of NUM is '+', output starts with the NUMth item.\n" +
			"With no FILE, or when FILE is -, read standard input.",
		Version:       version.Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if sleepInterval < 0 {
				sleepInterval = 1
			}
			opts := view.Options{
				Spec:     spec,
				Quiet:    quiet || silent,
				Verbose:  verbose,
				Follow:   followMode,
				Interval: time.Duration(sleepInterval) * time.Second,
				Log:      logging.New(cmd.ErrOrStderr(), "tail", cfg.View.LogLevel),
			}
			return view.Run(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), "tail", args, opts)
		},
	}

	cmd.Flags().VarP(view.NewCountValue(&spec, false, false), "lines", "n", "output the last NUM lines, instead of the last 10")
	cmd.Flags().VarP(view.NewCountValue(&spec, true, false), "bytes", "c", "output the last NUM bytes")
	cmd.Flags().BoolVarP(&followMode, "follow", "f", false, "output appended data as the file grows")
	cmd.Flags().IntVarP(&sleepInterval, "sleep-interval", "s", sleepInterval, "with -f, sleep for approximately NUM seconds between polls")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "never output headers giving file names")
	cmd.Flags().BoolVar(&silent, "silent", false, "same as --quiet")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "always output headers giving file names")
	cmd.Flags().BoolP("version", "V", false, "output version information and exit")

	return cmd
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, unix.SIGTERM)
	defer stop()

	cmd := newTailCommand(cfg)
	if err := cmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, view.ErrReported) && !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
