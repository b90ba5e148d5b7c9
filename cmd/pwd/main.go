// Command pwd prints the current working directory.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"asdutils/internal/version"
)

func newPwdCommand() *cobra.Command {
	var logical, physical bool

	cmd := &cobra.Command{
		Use:           "pwd [flag]...",
		Short:         "Print the full filename of the current working directory",
		Version:       version.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// -P forces the physical path even when -L is also given.
			if logical && !physical {
				if pwd := os.Getenv("PWD"); pwd != "" {
					fmt.Fprintln(cmd.OutOrStdout(), pwd)
					return nil
				}
			}
			dir, err := os.Getwd()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), dir)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&logical, "logical", "L", false, "use PWD from environment, even if it contains symlinks")
	cmd.Flags().BoolVarP(&physical, "physical", "P", false, "avoid all symlinks (default)")
	cmd.Flags().BoolP("version", "V", false, "output version information and exit")

	return cmd
}

func main() {
	cmd := newPwdCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "pwd:", err)
		os.Exit(1)
	}
}
