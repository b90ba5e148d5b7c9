// Command head prints the opening window of each named file, or of standard
// input when no file is given.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"asdutils/internal/config"
	"asdutils/internal/version"
	"asdutils/internal/view"
	"asdutils/internal/window"
)

func newHeadCommand(cfg *config.Config) *cobra.Command {
	spec := window.Spec{Mode: window.FirstLines, Count: uint64(cfg.View.DefaultLines)}
	var quiet, verbose bool

	cmd := &cobra.Command{
		Use:   "head [flag]... [file]...",
		Short: "Print the first 10 lines of each file to standard output",
		Long: "Print the first 10 lines of each FILE to standard output.\n" +
			"With more than one FILE, precede each with a header giving the file name.\n" +
			"With no FILE, or when FILE is -, read standard input.",
		Version:       version.Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := view.Options{
				Spec:           spec,
				Quiet:          quiet,
				Verbose:        verbose,
				HeadSeparators: true,
			}
			return view.Run(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), "head", args, opts)
		},
	}

	cmd.Flags().VarP(view.NewCountValue(&spec, false, true), "lines", "n", "print the first NUM lines instead of the first 10")
	cmd.Flags().VarP(view.NewCountValue(&spec, true, true), "bytes", "c", "print the first NUM bytes")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "never print headers giving file names")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "always print headers giving file names")
	cmd.Flags().BoolP("version", "V", false, "output version information and exit")

	return cmd
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cmd := newHeadCommand(cfg)
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, view.ErrReported) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
