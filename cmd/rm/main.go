// Command rm removes files and directories.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"asdutils/internal/version"
)

var errReported = errors.New("rm: failures reported")

func newRemoveCommand() *cobra.Command {
	var (
		force        bool
		interactive  bool
		recursive    bool
		recursiveAlt bool
		verbose      bool
		preserveRoot = true
	)

	cmd := &cobra.Command{
		Use:           "rm [flags] FILE...",
		Short:         "Remove files or directories",
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				if force {
					return nil
				}
				return errors.New("rm: missing operand")
			}

			if force {
				interactive = false
			}
			prompter := bufio.NewReader(cmd.InOrStdin())
			failed := false
			for _, name := range args {
				if preserveRoot && filepath.Clean(name) == "/" {
					fmt.Fprintln(cmd.ErrOrStderr(), "rm: it is dangerous to operate recursively on '/'")
					fmt.Fprintln(cmd.ErrOrStderr(), "rm: use --no-preserve-root to override this failsafe")
					failed = true
					continue
				}
				if err := removePath(cmd, prompter, name, force, interactive, recursive, verbose); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "rm: cannot remove %q: %v\n", name, reason(err))
					failed = true
				}
			}
			if failed {
				return errReported
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "ignore nonexistent files, never prompt")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "prompt before every removal")
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "remove directories and their contents recursively")
	cmd.Flags().BoolVarP(&recursiveAlt, "R", "R", false, "equivalent to -r")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "explain what is being done")
	cmd.Flags().BoolVar(&preserveRoot, "preserve-root", true, "do not remove '/' (default)")
	cmd.Flags().Bool("no-preserve-root", false, "do not treat '/' specially")
	cmd.Flags().BoolP("version", "V", false, "print version information and exit")

	cmd.PreRun = func(cmd *cobra.Command, args []string) {
		if recursiveAlt {
			recursive = true
		}
		if noPreserve, _ := cmd.Flags().GetBool("no-preserve-root"); noPreserve {
			preserveRoot = false
		}
	}

	return cmd
}

func removePath(cmd *cobra.Command, prompter *bufio.Reader, name string, force, interactive, recursive, verbose bool) error {
	info, err := os.Lstat(name)
	if err != nil {
		if force && os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if info.IsDir() {
		if !recursive {
			return errors.New("is a directory")
		}
		return removeTree(cmd, prompter, name, interactive, verbose)
	}

	if interactive && !confirm(cmd, prompter, fmt.Sprintf("rm: remove regular file %q? ", name)) {
		return nil
	}
	if err := os.Remove(name); err != nil {
		return err
	}
	if verbose {
		fmt.Fprintf(cmd.OutOrStdout(), "removed %q\n", name)
	}
	return nil
}

// removeTree removes a directory bottom-up so interactive prompting can
// skip individual entries without aborting the walk.
func removeTree(cmd *cobra.Command, prompter *bufio.Reader, dir string, interactive, verbose bool) error {
	if interactive && !confirm(cmd, prompter, fmt.Sprintf("rm: descend into directory %q? ", dir)) {
		return nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		child := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			if err := removeTree(cmd, prompter, child, interactive, verbose); err != nil {
				return err
			}
			continue
		}
		if interactive && !confirm(cmd, prompter, fmt.Sprintf("rm: remove file %q? ", child)) {
			continue
		}
		if err := os.Remove(child); err != nil {
			return err
		}
		if verbose {
			fmt.Fprintf(cmd.OutOrStdout(), "removed %q\n", child)
		}
	}

	if interactive && !confirm(cmd, prompter, fmt.Sprintf("rm: remove directory %q? ", dir)) {
		return nil
	}
	if err := os.Remove(dir); err != nil {
		return err
	}
	if verbose {
		fmt.Fprintf(cmd.OutOrStdout(), "removed directory %q\n", dir)
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
	return err
}

func main() {
	cmd := newRemoveCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
