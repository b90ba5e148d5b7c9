// Command mv renames files, falling back to copy+remove across filesystems.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"asdutils/internal/fileutil"
	"asdutils/internal/version"
)

var errReported = errors.New("mv: failures reported")

func newMoveCommand() *cobra.Command {
	var (
		force       bool
		interactive bool
		noClobber   bool
		verbose     bool
	)

	cmd := &cobra.Command{
		Use:           "mv [flags] SOURCE... DEST",
		Short:         "Move or rename files and directories",
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch len(args) {
			case 0:
				return errors.New("mv: missing file operand")
			case 1:
				return fmt.Errorf("mv: missing destination file operand after %q", args[0])
			}

			sources, dest := args[:len(args)-1], args[len(args)-1]
			destInfo, destErr := os.Stat(dest)
			destIsDir := destErr == nil && destInfo.IsDir()

			if len(sources) > 1 && !destIsDir {
				return fmt.Errorf("mv: target %q is not a directory", dest)
			}

			prompter := bufio.NewReader(cmd.InOrStdin())
			failed := false
			for _, src := range sources {
				target := dest
				if destIsDir {
					target = filepath.Join(dest, filepath.Base(src))
				}
				if err := moveOne(cmd, prompter, src, target, force, interactive, noClobber, verbose); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "mv: %v\n", err)
					failed = true
				}
			}
			if failed {
				return errReported
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "do not prompt before overwriting")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "prompt before overwrite")
	cmd.Flags().BoolVarP(&noClobber, "no-clobber", "n", false, "do not overwrite an existing file")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "explain what is being done")
	cmd.Flags().BoolP("version", "V", false, "print version information and exit")

	return cmd
}

func moveOne(cmd *cobra.Command, prompter *bufio.Reader, src, dst string, force, interactive, noClobber, verbose bool) error {
	if _, err := os.Lstat(src); err != nil {
		return fmt.Errorf("cannot stat %q: %v", src, reason(err))
	}

	if fileutil.SameFile(src, dst) {
		return fmt.Errorf("%q and %q are the same file", src, dst)
	}

	if _, err := os.Lstat(dst); err == nil {
		if noClobber {
			return nil
		}
		if interactive && !force && !confirm(cmd, prompter, fmt.Sprintf("mv: overwrite %q? ", dst)) {
			return nil
		}
	}

	if err := fileutil.Move(src, dst); err != nil {
		return fmt.Errorf("cannot move %q to %q: %v", src, dst, reason(err))
	}
	if verbose {
		fmt.Fprintf(cmd.OutOrStdout(), "%q -> %q\n", src, dst)
	}
	return nil
}

func confirm(cmd *cobra.Command, prompter *bufio.Reader, prompt string) bool {
	fmt.Fprint(cmd.ErrOrStderr(), prompt)
	line, err := prompter.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func reason(err error) error {
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}
	var linkErr *os.LinkError
	if errors.As(err, &linkErr) {
		return linkErr.Err
	}
	return err
}

func main() {
	cmd := newMoveCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
