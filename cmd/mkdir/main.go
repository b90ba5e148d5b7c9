// Command mkdir creates directories.
package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"asdutils/internal/version"
)

func newMkdirCommand() *cobra.Command {
	var (
		parents bool
		verbose bool
		modeStr string
	)

	cmd := &cobra.Command{
		Use:           "mkdir [flag]... directory...",
		Short:         "Create the directory(ies), if they do not already exist",
		Version:       version.Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("missing operand")
			}

			mode := os.FileMode(0o777)
			if modeStr != "" {
				parsed, err := strconv.ParseUint(modeStr, 8, 32)
				if err != nil {
					return fmt.Errorf("invalid mode: %q", modeStr)
				}
				mode = os.FileMode(parsed)
			}

			failed := false
			for _, dir := range args {
				var err error
				if parents {
					err = os.MkdirAll(dir, 0o777)
				} else {
					err = os.Mkdir(dir, mode)
				}
				// -m names the exact mode of the final directory; mkdir
				// alone leaves it umask-masked and ancestors keep defaults.
				if err == nil && modeStr != "" {
					err = os.Chmod(dir, mode)
				}
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "mkdir: cannot create directory %q: %v\n", dir, reason(err))
					failed = true
					continue
				}
				if verbose {
					fmt.Fprintf(cmd.OutOrStdout(), "mkdir: created directory %q\n", dir)
				}
			}
			if failed {
				return errReported
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&parents, "parents", "p", false, "no error if existing, make parent directories as needed")
	cmd.Flags().StringVarP(&modeStr, "mode", "m", "", "set file mode (as in chmod), not a=rwx - umask")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print a message for each created directory")
	cmd.Flags().BoolP("version", "V", false, "output version information and exit")

	return cmd
}

var errReported = errors.New("failures reported")

func reason(err error) error {
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}
	return err
}

func main() {
	cmd := newMkdirCommand()
	if err := cmd.Execute(); err != nil {
		if err != errReported {
			fmt.Fprintln(os.Stderr, "mkdir:", err)
		}
		os.Exit(1)
	}
}
