// Package catenate streams inputs to an output with cat's display
// transforms: line numbering, blank-line squeezing, and the visible
// renderings of ends, tabs, and non-printing bytes.
package catenate

import (
	"bufio"
	"fmt"
	"io"
)

// Options selects the display transforms. ShowAll is expanded by the
// command layer into ShowNonPrinting+ShowEnds+ShowTabs before streaming.
type Options struct {
	NumberAll       bool
	NumberNonBlank  bool
	SqueezeBlank    bool
	ShowEnds        bool
	ShowTabs        bool
	ShowNonPrinting bool
}

func (o Options) plain() bool {
	return !o.NumberAll && !o.NumberNonBlank && !o.SqueezeBlank &&
		!o.ShowEnds && !o.ShowTabs && !o.ShowNonPrinting
}

// State carries numbering and squeeze context across inputs so that line
// numbers keep counting through a multi-file invocation.
type State struct {
	lineNumber  int64
	atLineStart bool
	lastBlank   bool
}

// NewState starts numbering at one with the cursor at a line start.
func NewState() *State {
	return &State{lineNumber: 1, atLineStart: true}
}

// Stream copies r to w applying the configured transforms. With no
// transforms active it degrades to a plain buffered copy.
func Stream(w io.Writer, r io.Reader, st *State, opts Options) error {
	if opts.plain() {
		_, err := io.Copy(w, r)
		return err
	}

	in := bufio.NewReaderSize(r, 32*1024)
	out := bufio.NewWriterSize(w, 32*1024)

	for {
		c, err := in.ReadByte()
		if err == io.EOF {
			return out.Flush()
		}
		if err != nil {
			out.Flush()
			return err
		}

		if st.atLineStart {
			blank := c == '\n'
			if opts.SqueezeBlank && blank && st.lastBlank {
				continue
			}
			st.lastBlank = blank
			if opts.NumberNonBlank {
				if !blank {
					fmt.Fprintf(out, "%6d\t", st.lineNumber)
					st.lineNumber++
				}
			} else if opts.NumberAll {
				fmt.Fprintf(out, "%6d\t", st.lineNumber)
				st.lineNumber++
			}
		}
		st.atLineStart = c == '\n'

		if err := writeByte(out, c, opts); err != nil {
			return err
		}
	}
}

// writeByte renders one byte under the ^X / M- notation rules.
func writeByte(out *bufio.Writer, c byte, opts Options) error {
	if opts.ShowNonPrinting && c != '\n' && c != '\t' {
		switch {
		case c < 32:
			out.WriteByte('^')
			return out.WriteByte(c + 64)
		case c == 127:
			out.WriteByte('^')
			return out.WriteByte('?')
		case c >= 128:
			out.WriteString("M-")
			c -= 128
			if c < 32 {
				out.WriteByte('^')
				return out.WriteByte(c + 64)
			}
			if c == 127 {
				out.WriteByte('^')
				return out.WriteByte('?')
			}
			return out.WriteByte(c)
		}
	}

	switch {
	case c == '\t' && opts.ShowTabs:
		_, err := out.WriteString("^I")
		return err
	case c == '\n' && opts.ShowEnds:
		out.WriteByte('$')
		return out.WriteByte('\n')
	default:
		return out.WriteByte(c)
	}
}
