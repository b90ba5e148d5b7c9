// Command cp copies files and directory trees.
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

var errReported = errors.New("cp: failures reported")

func newCopyCommand() *cobra.Command {
	var (
		recursive    bool
		recursiveAlt bool
		force        bool
		interactive  bool
		preserve     bool
		update       bool
		verbose      bool
		noTargetDir  bool
	)

	cmd := &cobra.Command{
		Use:           "cp [flags] SOURCE... DEST",
		Short:         "Copy files and directories",
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if recursiveAlt {
				recursive = true
			}
			switch len(args) {
			case 0:
				return errors.New("cp: missing file operand")
			case 1:
				return fmt.Errorf("cp: missing destination file operand after %q", args[0])
			}

			sources, dest := args[:len(args)-1], args[len(args)-1]
			destInfo, destErr := os.Stat(dest)
			destIsDir := destErr == nil && destInfo.IsDir()

			if noTargetDir && destIsDir {
				return fmt.Errorf("cp: cannot overwrite directory %q with non-directory", dest)
			}
			if len(sources) > 1 && !destIsDir {
				return fmt.Errorf("cp: target %q is not a directory", dest)
			}

			opts := copyOptions{
				recursive:   recursive,
				force:       force,
				interactive: interactive,
				preserve:    preserve,
				update:      update,
				verbose:     verbose,
			}
			prompter := bufio.NewReader(cmd.InOrStdin())

			failed := false
			for _, src := range sources {
				target := dest
				if destIsDir && !noTargetDir {
					target = filepath.Join(dest, filepath.Base(src))
				}
				if err := copyOne(cmd, prompter, src, target, opts); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "cp: %v\n", err)
					failed = true
				}
			}
			if failed {
				return errReported
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "copy directories recursively")
	cmd.Flags().BoolVarP(&recursiveAlt, "R", "R", false, "equivalent to -r")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "remove an unwritable destination before copying")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "prompt before overwrite")
	cmd.Flags().BoolVarP(&preserve, "preserve", "p", false, "preserve mode, ownership and timestamps")
	cmd.Flags().BoolVarP(&update, "update", "u", false, "copy only when the source is newer than the destination")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "explain what is being done")
	cmd.Flags().BoolVarP(&noTargetDir, "no-target-directory", "T", false, "treat DEST as a normal file")
	cmd.Flags().BoolP("version", "V", false, "print version information and exit")

	return cmd
}

type copyOptions struct {
	recursive   bool
	force       bool
	interactive bool
	preserve    bool
	update      bool
	verbose     bool
}

func copyOne(cmd *cobra.Command, prompter *bufio.Reader, src, dst string, opts copyOptions) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("cannot stat %q: %v", src, reason(err))
	}

	if srcInfo.IsDir() {
		if !opts.recursive {
			return fmt.Errorf("-r not specified; omitting directory %q", src)
		}
		if err := fileutil.CopyTree(src, dst, fileutil.CopyTreeOptions{Preserve: opts.preserve}); err != nil {
			return fmt.Errorf("cannot copy %q: %v", src, reason(err))
		}
		if opts.verbose {
			fmt.Fprintf(cmd.OutOrStdout(), "%q -> %q\n", src, dst)
		}
		return nil
	}

	if fileutil.SameFile(src, dst) {
		return fmt.Errorf("%q and %q are the same file", src, dst)
	}

	dstInfo, dstErr := os.Stat(dst)
	if dstErr == nil {
		if opts.update && !srcInfo.ModTime().After(dstInfo.ModTime()) {
			return nil
		}
		if opts.interactive && !confirm(cmd, prompter, fmt.Sprintf("cp: overwrite %q? ", dst)) {
			return nil
		}
	}

	if err := copyRegular(src, dst, opts); err != nil {
		return fmt.Errorf("cannot copy %q: %v", src, reason(err))
	}
	if opts.verbose {
		fmt.Fprintf(cmd.OutOrStdout(), "%q -> %q\n", src, dst)
	}
	return nil
}

func copyRegular(src, dst string, opts copyOptions) error {
	doCopy := func() error {
		if opts.preserve {
			return fileutil.CopyPreserve(src, dst)
		}
		return fileutil.CopyFile(src, dst)
	}

	err := doCopy()
	if err != nil && opts.force && errors.Is(err, os.ErrPermission) {
		if rmErr := os.Remove(dst); rmErr == nil {
			err = doCopy()
		}
	}
	return err
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
	cmd := newCopyCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
