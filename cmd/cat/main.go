// Command cat concatenates files to standard output, optionally applying
// numbering, squeezing, and visible-character transforms.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"asdutils/internal/bytesource"
	"asdutils/internal/catenate"
	"asdutils/internal/version"
)

func newCatCommand() *cobra.Command {
	var opts catenate.Options
	var showAll bool

	cmd := &cobra.Command{
		Use:           "cat [flag]... [file]...",
		Short:         "Concatenate file(s) to standard output",
		Version:       version.Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showAll {
				opts.ShowNonPrinting = true
				opts.ShowEnds = true
				opts.ShowTabs = true
			}
			if len(args) == 0 {
				args = []string{bytesource.Stdin}
			}

			state := catenate.NewState()
			failed := false
			for _, name := range args {
				src, err := bytesource.Open(name)
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "cat: %s: %v\n", name, pathReason(err))
					failed = true
					continue
				}
				if err := catenate.Stream(cmd.OutOrStdout(), src, state, opts); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "cat: %s: %v\n", name, pathReason(err))
					failed = true
				}
				src.Close()
			}
			if failed {
				return errReported
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&opts.NumberAll, "number", "n", false, "number all output lines")
	cmd.Flags().BoolVarP(&opts.NumberNonBlank, "number-nonblank", "b", false, "number nonempty output lines")
	cmd.Flags().BoolVarP(&opts.SqueezeBlank, "squeeze-blank", "s", false, "suppress repeated empty output lines")
	cmd.Flags().BoolVarP(&opts.ShowEnds, "show-ends", "E", false, "display $ at end of each line")
	cmd.Flags().BoolVarP(&opts.ShowTabs, "show-tabs", "T", false, "display TAB characters as ^I")
	cmd.Flags().BoolVarP(&opts.ShowNonPrinting, "show-nonprinting", "v", false, "use ^ and M- notation, except for LFD and TAB")
	cmd.Flags().BoolVarP(&showAll, "show-all", "A", false, "equivalent to -vET")
	cmd.Flags().BoolP("version", "V", false, "output version information and exit")

	return cmd
}

var errReported = errors.New("failures reported")

func pathReason(err error) error {
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}
	return err
}

func main() {
	cmd := newCatCommand()
	if err := cmd.Execute(); err != nil {
		if err != errReported {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
