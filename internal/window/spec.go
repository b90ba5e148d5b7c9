package window

import (
	"fmt"
	"strconv"
	"strings"
)

// Mode selects which region of the input a Spec describes.
type Mode int

const (
	// FirstLines emits the opening N line records.
	FirstLines Mode = iota
	// FirstBytes emits the opening N bytes.
	FirstBytes
	// LastLines emits the final N line records.
	LastLines
	// LastBytes emits the final N bytes.
	LastBytes
	// FromLine emits every line starting with the Nth, 1-based.
	FromLine
	// FromByte emits every byte starting at 1-based position N.
	FromByte
)

// Spec is the window selected by a single head or tail invocation. Exactly
// one mode is active; Count carries the line or byte parameter. A count of
// zero emits nothing for the First/Last modes and everything for the From
// modes (positions 0 and 1 both mean "from the first item").
type Spec struct {
	Mode  Mode
	Count uint64
}

// DefaultHead is the first ten lines.
var DefaultHead = Spec{Mode: FirstLines, Count: 10}

// DefaultTail is the last ten lines.
var DefaultTail = Spec{Mode: LastLines, Count: 10}

// ParseTailCount interprets a raw NUM token for tail. A leading "+" flips the
// meaning from "last N" to "starting with the Nth". Negative or non-integer
// tokens are rejected.
func ParseTailCount(raw string, byBytes bool) (Spec, error) {
	trimmed := strings.TrimSpace(raw)
	fromStart := strings.HasPrefix(trimmed, "+")
	if fromStart {
		trimmed = trimmed[1:]
	}
	count, err := strconv.ParseUint(trimmed, 10, 64)
	if err != nil {
		return Spec{}, fmt.Errorf("invalid number of %s: %q", countNoun(byBytes), raw)
	}
	switch {
	case fromStart && byBytes:
		return Spec{Mode: FromByte, Count: count}, nil
	case fromStart:
		return Spec{Mode: FromLine, Count: count}, nil
	case byBytes:
		return Spec{Mode: LastBytes, Count: count}, nil
	default:
		return Spec{Mode: LastLines, Count: count}, nil
	}
}

// ParseHeadCount interprets a raw NUM token for head. head windows are always
// anchored at the start, so a "+" prefix is tolerated and means the same as
// no prefix.
func ParseHeadCount(raw string, byBytes bool) (Spec, error) {
	trimmed := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(raw), "+"))
	count, err := strconv.ParseUint(trimmed, 10, 64)
	if err != nil {
		return Spec{}, fmt.Errorf("invalid number of %s: %q", countNoun(byBytes), raw)
	}
	if byBytes {
		return Spec{Mode: FirstBytes, Count: count}, nil
	}
	return Spec{Mode: FirstLines, Count: count}, nil
}

func countNoun(byBytes bool) string {
	if byBytes {
		return "bytes"
	}
	return "lines"
}
