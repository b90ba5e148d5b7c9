// Command dirname prints each argument with its last non-slash component
// and trailing slashes removed.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"asdutils/internal/pathname"
	"asdutils/internal/version"
)

func newDirnameCommand() *cobra.Command {
	var zero bool

	cmd := &cobra.Command{
		Use:   "dirname [flag]... name...",
		Short: "Strip the last component from file names",
		Long: "Output each NAME with its last non-slash component and trailing slashes\n" +
			"removed. If NAME contains no /'s, output '.' (meaning the current directory).",
		Version:       version.Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("missing operand")
			}
			terminator := byte('\n')
			if zero {
				terminator = 0
			}
			out := cmd.OutOrStdout()
			for _, name := range args {
				fmt.Fprintf(out, "%s%c", pathname.Dir(name), terminator)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&zero, "zero", "z", false, "end each output line with NUL, not newline")
	cmd.Flags().BoolP("version", "V", false, "output version information and exit")

	return cmd
}

func main() {
	cmd := newDirnameCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "dirname:", err)
		os.Exit(1)
	}
}
