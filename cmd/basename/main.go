// Command basename strips directory components (and optionally a suffix)
// from path arguments.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"asdutils/internal/pathname"
	"asdutils/internal/version"
)

func newBasenameCommand() *cobra.Command {
	var (
		multiple bool
		suffix   string
		zero     bool
	)

	cmd := &cobra.Command{
		Use:   "basename [flag]... name [suffix]",
		Short: "Print name with any leading directory components removed",
		Long: "Print NAME with any leading directory components removed.\n" +
			"If specified, also remove a trailing SUFFIX.",
		Version:       version.Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRun: func(cmd *cobra.Command, args []string) {
			// -s implies -a.
			if cmd.Flags().Changed("suffix") {
				multiple = true
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("missing operand")
			}

			names := args
			if !multiple {
				if len(args) > 2 {
					return fmt.Errorf("extra operand %q", args[2])
				}
				if len(args) == 2 {
					suffix = args[1]
				}
				names = args[:1]
			}

			terminator := byte('\n')
			if zero {
				terminator = 0
			}
			out := cmd.OutOrStdout()
			for _, name := range names {
				base := pathname.TrimSuffix(pathname.Base(name), suffix)
				fmt.Fprintf(out, "%s%c", base, terminator)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&multiple, "multiple", "a", false, "support multiple arguments and treat each as a NAME")
	cmd.Flags().StringVarP(&suffix, "suffix", "s", "", "remove a trailing SUFFIX; implies -a")
	cmd.Flags().BoolVarP(&zero, "zero", "z", false, "end each output line with NUL, not newline")
	cmd.Flags().BoolP("version", "V", false, "output version information and exit")

	return cmd
}

func main() {
	cmd := newBasenameCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "basename:", err)
		os.Exit(1)
	}
}
