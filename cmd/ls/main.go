// Command ls lists directory contents.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"asdutils/internal/listing"
	"asdutils/internal/version"
)

var errReported = errors.New("ls: failures reported")

func newListCommand() *cobra.Command {
	var (
		all       bool
		long      bool
		human     bool
		sortKey   string
		reverse   bool
		recursive bool
		color     string
	)

	cmd := &cobra.Command{
		Use:           "ls [flags] [PATH...]",
		Short:         "List directory contents",
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := listing.Options{
				All:       all,
				Long:      long,
				Human:     human,
				Sort:      listing.SortKey(sortKey),
				Reverse:   reverse,
				Recursive: recursive,
				Color:     listing.ColorMode(color),
			}
			switch opts.Sort {
			case listing.SortByName, listing.SortByTime, listing.SortBySize:
			default:
				return fmt.Errorf("ls: invalid argument %q for --sort", sortKey)
			}
			switch opts.Color {
			case listing.ColorNever, listing.ColorAuto, listing.ColorAlways:
			default:
				return fmt.Errorf("ls: invalid argument %q for --color", color)
			}

			paths := args
			if len(paths) == 0 {
				paths = []string{"."}
			}

			stdout := cmd.OutOrStdout()
			colorize := listing.Colorize(opts.Color, stdout)

			failed := false
			for i, path := range paths {
				if len(paths) > 1 {
					if i > 0 {
						fmt.Fprintln(stdout)
					}
					fmt.Fprintf(stdout, "%s:\n", path)
				}
				if err := listing.List(stdout, path, opts, colorize); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "ls: cannot access %q: %v\n", path, reason(err))
					failed = true
				}
			}
			if failed {
				return errReported
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "do not hide entries starting with .")
	cmd.Flags().BoolVarP(&long, "long", "l", false, "use a long listing format")
	cmd.Flags().BoolVarP(&human, "human-readable", "H", false, "print sizes like 1.0K, 2.3M")
	cmd.Flags().StringVar(&sortKey, "sort", string(listing.SortByName), "sort by name, time, or size")
	cmd.Flags().BoolVarP(&reverse, "reverse", "r", false, "reverse the sort order")
	cmd.Flags().BoolVarP(&recursive, "recursive", "R", false, "list subdirectories recursively")
	cmd.Flags().StringVar(&color, "color", string(listing.ColorAuto), "colorize output: never, auto, always")
	cmd.Flags().BoolP("version", "V", false, "print version information and exit")

	return cmd
}

func reason(err error) error {
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}
	return err
}

func main() {
	cmd := newListCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
