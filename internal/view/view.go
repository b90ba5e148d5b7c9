// Package view drives head and tail over their operand lists: banner
// emission, window extraction, follow hand-off, and exit-status accounting.
package view

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"asdutils/internal/bytesource"
	"asdutils/internal/follow"
	"asdutils/internal/window"
)

// ErrReported signals that every failure has already been written to the
// diagnostic stream; main should exit non-zero without printing again.
var ErrReported = errors.New("failures reported")

// Options is the explicit option record shared by head and tail.
type Options struct {
	Spec    window.Spec
	Quiet   bool
	Verbose bool

	// Follow and Interval apply to tail only.
	Follow   bool
	Interval time.Duration

	// HeadSeparators inserts head's blank line between successive inputs.
	HeadSeparators bool

	Log *slog.Logger
}

// Run processes each named operand in order. Per-operand failures are
// reported to stderr under prog's name and turn the final status into
// ErrReported without stopping iteration. An empty operand list reads
// standard input. With Follow set, the loop on the first named file never
// returns until ctx is cancelled, so later operands are never reached.
func Run(ctx context.Context, stdout, stderr io.Writer, prog string, names []string, opts Options) error {
	if len(names) == 0 {
		names = []string{bytesource.Stdin}
	}
	banners := opts.Verbose || (len(names) > 1 && !opts.Quiet)

	out := bufio.NewWriter(stdout)
	defer out.Flush()

	failed := false
	emitted := false
	for _, name := range names {
		src, err := bytesource.Open(name)
		if err != nil {
			fmt.Fprintf(stderr, "%s: cannot open %s for reading: %v\n", prog, name, reason(err))
			failed = true
			continue
		}

		if banners {
			if opts.HeadSeparators && emitted {
				out.WriteByte('\n')
			}
			fmt.Fprintf(out, "==> %s <==\n", DisplayName(name))
		}
		emitted = true

		if err := window.Extract(out, src, opts.Spec); err != nil {
			fmt.Fprintf(stderr, "%s: error reading %s: %v\n", prog, DisplayName(name), reason(err))
			failed = true
			src.Close()
			continue
		}
		if err := out.Flush(); err != nil {
			fmt.Fprintf(stderr, "%s: write error: %v\n", prog, reason(err))
			failed = true
			src.Close()
			continue
		}

		if opts.Follow {
			if !follow.Supported(name) {
				fmt.Fprintf(stderr, "%s: %v\n", prog, follow.ErrUnsupported)
			} else {
				// Never returns until ctx is cancelled.
				err := follow.Run(ctx, out, src.File(), name, opts.Interval, opts.Log)
				if errors.Is(err, context.Canceled) {
					return err
				}
				if err != nil {
					fmt.Fprintf(stderr, "%s: error reading %s: %v\n", prog, name, reason(err))
					failed = true
				}
				continue
			}
		}
		src.Close()
	}

	if failed {
		return ErrReported
	}
	return nil
}

// DisplayName renders an operand for banners and diagnostics.
func DisplayName(name string) string {
	if name == bytesource.Stdin {
		return "standard input"
	}
	return name
}

// reason strips the redundant "open <path>:" prefix Go wraps around
// syscall errors so diagnostics read like the classical tools.
func reason(err error) error {
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}
	return err
}
