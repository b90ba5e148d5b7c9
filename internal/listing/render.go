package listing

import (
	"io"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
)

const (
	ansiReset = "\x1b[0m"
	ansiBlue  = "\x1b[34;1m"
	ansiCyan  = "\x1b[36m"
)

// Colorize resolves a ColorMode against the output destination.
func Colorize(mode ColorMode, w io.Writer) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		file, ok := w.(*os.File)
		if !ok {
			return false
		}
		fd := file.Fd()
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}
}

// renderLong writes the long-format listing as borderless aligned columns.
func renderLong(w io.Writer, entries []Entry, opts Options, colorize bool) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)

	style := table.StyleDefault
	style.Options.DrawBorder = false
	style.Options.SeparateColumns = false
	style.Options.SeparateHeader = false
	style.Options.SeparateRows = false
	style.Box.PaddingLeft = ""
	style.Box.PaddingRight = " "
	tw.SetStyle(style)

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft},
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignLeft},
		{Number: 4, Align: text.AlignLeft},
	})

	for _, entry := range entries {
		size := formatSize(entry.Size, opts.Human)
		tw.AppendRow(table.Row{
			PermString(entry.Mode),
			size,
			entry.ModTime.Format("Jan 02 15:04"),
			decorateName(entry, colorize),
		})
	}
	tw.Render()
}

func formatSize(size int64, human bool) string {
	if human {
		return HumanSize(size)
	}
	return strconv.FormatInt(size, 10)
}

func decorateName(entry Entry, colorize bool) string {
	switch {
	case entry.Dir && colorize:
		return ansiBlue + entry.Name + ansiReset + "/"
	case entry.Dir:
		return entry.Name + "/"
	case entry.Symlink && colorize:
		return ansiCyan + entry.Name + ansiReset + "@"
	case entry.Symlink:
		return entry.Name + "@"
	default:
		return entry.Name
	}
}
