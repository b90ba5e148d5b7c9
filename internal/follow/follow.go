// Package follow keeps emitting a regular file's appended bytes after the
// initial window has been written, recovering from truncation and rotation.
package follow

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// DefaultInterval is the poll period between size checks.
const DefaultInterval = time.Second

// minInterval keeps the ticker legal when the caller asks for zero sleep.
const minInterval = 10 * time.Millisecond

// Identity distinguishes the file currently at a path from the one a handle
// was opened on. A changed (device, inode) pair means the path was rotated;
// a shrinking size with the same identity means it was truncated in place.
type Identity struct {
	Dev uint64
	Ino uint64
}

// Stat captures the identity and size of the file at path.
func Stat(path string) (Identity, int64, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return Identity{}, 0, err
	}
	return Identity{Dev: uint64(st.Dev), Ino: uint64(st.Ino)}, st.Size, nil
}

type flusher interface {
	Flush() error
}

// Run polls path until ctx is cancelled, copying newly appended bytes from
// file to out. file must already be positioned after the initial window.
// While the path cannot be stat'd the loop keeps polling silently; on
// reappearance or rotation it reopens and reads from the beginning. Run
// flushes out after every append and returns ctx.Err on cancellation.
func Run(ctx context.Context, out io.Writer, file *os.File, path string, interval time.Duration, log *slog.Logger) error {
	if interval <= 0 {
		interval = minInterval
	}
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	// Resume from the handle's position, not from a fresh stat: bytes
	// appended after the initial window was read must still be emitted.
	lastSize, err := file.Seek(0, io.SeekCurrent)
	if err != nil {
		return err
	}
	// A failed stat leaves a zero identity; the path vanished between
	// extraction and follow, and the first successful poll reopens.
	lastIdentity, _, _ := Stat(path)
	defer func() { file.Close() }()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		identity, size, err := Stat(path)
		if err != nil {
			continue
		}

		switch {
		case identity != lastIdentity:
			log.Info("file rotated; reopening", "path", path)
			reopened, err := os.Open(path)
			if err != nil {
				continue
			}
			file.Close()
			file = reopened
			lastIdentity = identity
			lastSize = 0
			fallthrough
		case size > lastSize:
			if _, err := file.Seek(lastSize, io.SeekStart); err != nil {
				return err
			}
			n, err := io.Copy(out, file)
			if err != nil {
				return err
			}
			lastSize += n
			if f, ok := out.(flusher); ok {
				if err := f.Flush(); err != nil {
					return err
				}
			}
			log.Debug("appended bytes emitted", "path", path, "bytes", n)
		case size < lastSize:
			log.Info("file truncated", "path", path)
			reopened, err := os.Open(path)
			if err != nil {
				continue
			}
			file.Close()
			file = reopened
			lastSize = 0
		}
	}
}

// Supported reports whether follow mode can serve the named operand.
// Standard input has no stable path to poll.
func Supported(name string) bool {
	return name != "-"
}

// ErrUnsupported reports a follow request on an input that has no path.
var ErrUnsupported = errors.New("cannot follow standard input")
