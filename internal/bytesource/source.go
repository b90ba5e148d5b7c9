package bytesource

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrNotSeekable reports that the underlying input has no known length and
// cannot be positioned. Window extraction treats it as a strategy signal, not
// a user-facing failure.
var ErrNotSeekable = errors.New("input is not seekable")

// Stdin is the operand that selects standard input.
const Stdin = "-"

// Source is a single open input: either a regular file with a known size or
// an unseekable stream such as a pipe or terminal. A Source owns its handle
// exclusively; it is consumed once and released with Close. Interrupted reads
// are restarted by the runtime, so Read fails only on true I/O errors.
type Source struct {
	name    string
	file    *os.File
	stdin   bool
	regular bool
}

// Open prepares the named input for reading. The name "-" selects standard
// input, which is never closed on release.
func Open(name string) (*Source, error) {
	if name == Stdin {
		src := &Source{name: name, file: os.Stdin, stdin: true}
		if info, err := os.Stdin.Stat(); err == nil {
			src.regular = info.Mode().IsRegular()
		}
		return src, nil
	}

	file, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("stat %s: %w", name, err)
	}
	return &Source{name: name, file: file, regular: info.Mode().IsRegular()}, nil
}

// Name returns the operand verbatim, including "-".
func (s *Source) Name() string { return s.name }

// IsStdin reports whether the source reads standard input.
func (s *Source) IsStdin() bool { return s.stdin }

// File exposes the underlying handle for follow-mode reuse.
func (s *Source) File() *os.File { return s.file }

func (s *Source) Read(p []byte) (int, error) {
	return s.file.Read(p)
}

// Size returns the current length of the input and whether it is known.
// The length is known only for regular files.
func (s *Source) Size() (int64, bool) {
	if !s.regular {
		return 0, false
	}
	info, err := s.file.Stat()
	if err != nil {
		return 0, false
	}
	return info.Size(), true
}

// SeekStart positions the next read at the absolute offset pos.
func (s *Source) SeekStart(pos int64) error {
	if !s.regular {
		return ErrNotSeekable
	}
	_, err := s.file.Seek(pos, io.SeekStart)
	return err
}

// SeekEnd positions the next read back bytes before the end of the input.
func (s *Source) SeekEnd(back int64) error {
	if !s.regular {
		return ErrNotSeekable
	}
	_, err := s.file.Seek(-back, io.SeekEnd)
	return err
}

// Close releases the handle. Standard input is left open for the process.
func (s *Source) Close() error {
	if s.stdin {
		return nil
	}
	return s.file.Close()
}
