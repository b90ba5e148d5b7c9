package window

import (
	"bufio"
	"errors"
	"io"
	"math"

	"asdutils/internal/bytesource"
)

const readerSize = 64 * 1024

// Extract realizes spec over src, writing the selected region to dst. It
// chooses seek-and-read when the source is a regular file and the window is
// anchored at the end, and a bounded ring otherwise. A source shorter than
// the requested window emits what exists and is not an error.
func Extract(dst io.Writer, src *bytesource.Source, spec Spec) error {
	switch spec.Mode {
	case FirstLines:
		return firstLines(dst, src, spec.Count)
	case FirstBytes:
		return firstBytes(dst, src, spec.Count)
	case LastLines:
		return lastLines(dst, src, spec.Count)
	case LastBytes:
		return lastBytes(dst, src, spec.Count)
	case FromLine:
		return fromLine(dst, src, spec.Count)
	case FromByte:
		return fromByte(dst, src, spec.Count)
	default:
		return errors.New("unknown window mode")
	}
}

// forEachLine invokes fn with every line record, terminators retained. A
// trailing unterminated segment is a record in its own right.
func forEachLine(r *bufio.Reader, fn func(record []byte) error) error {
	for {
		record, err := r.ReadBytes('\n')
		if len(record) > 0 {
			if fnErr := fn(record); fnErr != nil {
				return fnErr
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

var errStopReading = errors.New("window filled")

func firstLines(dst io.Writer, src *bytesource.Source, n uint64) error {
	if n == 0 {
		return nil
	}
	var emitted uint64
	err := forEachLine(bufio.NewReaderSize(src, readerSize), func(record []byte) error {
		if _, err := dst.Write(record); err != nil {
			return err
		}
		emitted++
		if emitted >= n {
			return errStopReading
		}
		return nil
	})
	if errors.Is(err, errStopReading) {
		return nil
	}
	return err
}

func firstBytes(dst io.Writer, src *bytesource.Source, n uint64) error {
	if n == 0 {
		return nil
	}
	_, err := io.CopyN(dst, src, clampedInt64(n))
	if err == io.EOF {
		return nil
	}
	return err
}

func lastLines(dst io.Writer, src *bytesource.Source, n uint64) error {
	if n == 0 {
		return nil
	}
	ring := newLineRing(n)
	err := forEachLine(bufio.NewReaderSize(src, readerSize), func(record []byte) error {
		ring.add(record)
		return nil
	})
	if err != nil {
		return err
	}
	return ring.writeTo(dst)
}

func lastBytes(dst io.Writer, src *bytesource.Source, n uint64) error {
	if n == 0 {
		return nil
	}
	if size, known := src.Size(); known {
		if n >= uint64(size) {
			_, err := io.Copy(dst, src)
			return err
		}
		if err := src.SeekEnd(int64(n)); err != nil {
			return err
		}
		_, err := io.Copy(dst, src)
		return err
	}
	ring := newByteRing(n)
	if _, err := io.Copy(ring, src); err != nil {
		return err
	}
	return ring.writeTo(dst)
}

func fromLine(dst io.Writer, src *bytesource.Source, m uint64) error {
	reader := bufio.NewReaderSize(src, readerSize)
	// Positions 0 and 1 both mean the first line.
	var skip uint64
	if m > 1 {
		skip = m - 1
	}
	for skip > 0 {
		if _, err := reader.ReadBytes('\n'); err != nil {
			if err == io.EOF {
				// Fewer than M lines: the window is empty.
				return nil
			}
			return err
		}
		skip--
	}
	_, err := io.Copy(dst, reader)
	return err
}

func fromByte(dst io.Writer, src *bytesource.Source, m uint64) error {
	var skip int64
	if m > 1 {
		skip = clampedInt64(m) - 1
	}
	if skip > 0 {
		if err := src.SeekStart(skip); err != nil {
			if !errors.Is(err, bytesource.ErrNotSeekable) {
				return err
			}
			if _, err := io.CopyN(io.Discard, src, skip); err != nil {
				if err == io.EOF {
					return nil
				}
				return err
			}
		}
	}
	_, err := io.Copy(dst, src)
	return err
}

// clampedInt64 bounds a parsed count for APIs that take int64 offsets; a
// count past MaxInt64 already exceeds any real input.
func clampedInt64(n uint64) int64 {
	if n > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(n)
}
