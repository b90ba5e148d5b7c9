// Command rmdir removes empty directories.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sys/unix"

	"asdutils/internal/pathname"
	"asdutils/internal/version"
)

func newRmdirCommand() *cobra.Command {
	var (
		parents        bool
		verbose        bool
		ignoreNonEmpty bool
	)

	cmd := &cobra.Command{
		Use:           "rmdir [flag]... directory...",
		Short:         "Remove empty directories",
		Version:       version.Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("missing operand")
			}

			failed := false
			for _, dir := range args {
				if !removeOne(cmd, dir, verbose, ignoreNonEmpty) {
					failed = true
					continue
				}
				if parents {
					for parent := pathname.Dir(dir); parent != "." && parent != "/"; parent = pathname.Dir(parent) {
						if !removeOne(cmd, parent, verbose, ignoreNonEmpty) {
							failed = true
							break
						}
					}
				}
			}
			if failed {
				return errReported
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&parents, "parents", "p", false, "remove DIRECTORY and its ancestors if they are empty")
	cmd.Flags().BoolVar(&ignoreNonEmpty, "ignore-fail-on-non-empty", false, "ignore each failure that is solely because a directory is non-empty")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "output a diagnostic for every directory processed")
	cmd.Flags().BoolP("version", "V", false, "output version information and exit")

	return cmd
}

func removeOne(cmd *cobra.Command, dir string, verbose, ignoreNonEmpty bool) bool {
	info, err := os.Lstat(dir)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "rmdir: failed to remove %q: %v\n", dir, reason(err))
		return false
	}
	if !info.IsDir() {
		fmt.Fprintf(cmd.ErrOrStderr(), "rmdir: failed to remove %q: Not a directory\n", dir)
		return false
	}
	if err := os.Remove(dir); err != nil {
		if ignoreNonEmpty && isNotEmpty(err) {
			if verbose {
				fmt.Fprintf(cmd.OutOrStdout(), "rmdir: failed to remove %q: Directory not empty (ignored)\n", dir)
			}
			return true
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "rmdir: failed to remove %q: %v\n", dir, reason(err))
		return false
	}
	if verbose {
		fmt.Fprintf(cmd.OutOrStdout(), "rmdir: removed %q\n", dir)
	}
	return true
}

func isNotEmpty(err error) bool {
	return errors.Is(err, unix.ENOTEMPTY) || errors.Is(err, unix.EEXIST)
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
	cmd := newRmdirCommand()
	if err := cmd.Execute(); err != nil {
		if err != errReported {
			fmt.Fprintln(os.Stderr, "rmdir:", err)
		}
		os.Exit(1)
	}
}
