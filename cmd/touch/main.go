// Command touch updates file access and modification times, creating
// missing files unless told otherwise.
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"asdutils/internal/timestamp"
	"asdutils/internal/version"
)

var errReported = errors.New("touch: failures reported")

func newTouchCommand() *cobra.Command {
	var (
		accessOnly bool
		modifyOnly bool
		noCreate   bool
		reference  string
		stamp      string
	)

	cmd := &cobra.Command{
		Use:           "touch [flags] FILE...",
		Short:         "Update file timestamps",
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("touch: missing file operand")
			}

			now := time.Now()
			atime, mtime := now, now
			switch {
			case reference != "":
				var err error
				atime, mtime, err = timestamp.FileTimes(reference)
				if err != nil {
					return fmt.Errorf("touch: failed to get attributes of %q: %v", reference, reason(err))
				}
			case stamp != "":
				parsed, err := timestamp.Parse(stamp, now)
				if err != nil {
					return fmt.Errorf("touch: %v", err)
				}
				atime, mtime = parsed, parsed
			}

			failed := false
			for _, name := range args {
				if err := touchOne(name, atime, mtime, accessOnly, modifyOnly, noCreate); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "touch: cannot touch %q: %v\n", name, reason(err))
					failed = true
				}
			}
			if failed {
				return errReported
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&accessOnly, "access", "a", false, "change only the access time")
	cmd.Flags().BoolVarP(&modifyOnly, "modify", "m", false, "change only the modification time")
	cmd.Flags().BoolVarP(&noCreate, "no-create", "c", false, "do not create any files")
	cmd.Flags().StringVarP(&reference, "reference", "r", "", "use this file's times instead of the current time")
	cmd.Flags().StringVarP(&stamp, "time", "t", "", "use [[CC]YY]MMDDhhmm[.ss] instead of the current time")
	cmd.Flags().BoolP("version", "V", false, "print version information and exit")

	return cmd
}

func touchOne(name string, atime, mtime time.Time, accessOnly, modifyOnly, noCreate bool) error {
	if _, err := os.Stat(name); err != nil {
		if !os.IsNotExist(err) {
			return err
		}
		if noCreate {
			return nil
		}
		f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE, 0o644)
		if err != nil {
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
	}

	// -a keeps the existing mtime and -m keeps the existing atime.
	if accessOnly != modifyOnly {
		curAtime, curMtime, err := timestamp.FileTimes(name)
		if err != nil {
			return err
		}
		if accessOnly {
			mtime = curMtime
		} else {
			atime = curAtime
		}
	}

	return os.Chtimes(name, atime, mtime)
}

func reason(err error) error {
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}
	return err
}

func main() {
	cmd := newTouchCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
