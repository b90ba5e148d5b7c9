// Package listing collects, orders, and renders directory entries for ls.
package listing

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// SortKey selects the entry ordering.
type SortKey string

const (
	SortByName SortKey = "name"
	SortByTime SortKey = "time"
	SortBySize SortKey = "size"
)

// ColorMode controls name colorization.
type ColorMode string

const (
	ColorNever  ColorMode = "never"
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
)

// Options mirrors the ls flag surface.
type Options struct {
	All       bool
	Long      bool
	Human     bool
	Sort      SortKey
	Reverse   bool
	Recursive bool
	Color     ColorMode
}

// Entry is one directory member with the metadata the renderer needs.
type Entry struct {
	Name    string
	Size    int64
	Mode    fs.FileMode
	ModTime time.Time
	Dir     bool
	Symlink bool
}

// Read collects the entries of dir, hiding dotfiles unless opts.All, and
// orders them by the configured key.
func Read(dir string, opts Options) ([]Entry, error) {
	members, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(members))
	for _, member := range members {
		name := member.Name()
		if !opts.All && strings.HasPrefix(name, ".") {
			continue
		}
		info, err := member.Info()
		if err != nil {
			continue
		}
		entries = append(entries, Entry{
			Name:    name,
			Size:    info.Size(),
			Mode:    info.Mode(),
			ModTime: info.ModTime(),
			Dir:     member.IsDir(),
			Symlink: info.Mode()&fs.ModeSymlink != 0,
		})
	}

	sortEntries(entries, opts.Sort, opts.Reverse)
	return entries, nil
}

func sortEntries(entries []Entry, key SortKey, reverse bool) {
	var less func(a, b Entry) bool
	switch key {
	case SortByTime:
		less = func(a, b Entry) bool { return a.ModTime.Before(b.ModTime) }
	case SortBySize:
		less = func(a, b Entry) bool { return a.Size < b.Size }
	default:
		less = func(a, b Entry) bool { return a.Name < b.Name }
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if reverse {
			return less(entries[j], entries[i])
		}
		return less(entries[i], entries[j])
	})
}

// List renders dir to w and recurses when requested. Multi-path prefixes
// are the caller's concern.
func List(w io.Writer, dir string, opts Options, colorize bool) error {
	entries, err := Read(dir, opts)
	if err != nil {
		return err
	}

	if opts.Long {
		renderLong(w, entries, opts, colorize)
	} else {
		for _, entry := range entries {
			fmt.Fprintln(w, decorateName(entry, colorize))
		}
	}

	if opts.Recursive {
		for _, entry := range entries {
			if !entry.Dir {
				continue
			}
			sub := filepath.Join(dir, entry.Name)
			fmt.Fprintf(w, "\n%s:\n", sub)
			if err := List(w, sub, opts, colorize); err != nil {
				return err
			}
		}
	}
	return nil
}

// PermString renders the classical type+rwx permission column.
func PermString(mode fs.FileMode) string {
	var b strings.Builder
	switch {
	case mode.IsDir():
		b.WriteByte('d')
	case mode&fs.ModeSymlink != 0:
		b.WriteByte('l')
	default:
		b.WriteByte('-')
	}
	bits := mode.Perm()
	symbols := "rwxrwxrwx"
	for i := 0; i < 9; i++ {
		if bits&(1<<uint(8-i)) != 0 {
			b.WriteByte(symbols[i])
		} else {
			b.WriteByte('-')
		}
	}
	return b.String()
}

// HumanSize renders a byte count with a single-letter binary suffix.
func HumanSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%dB", size)
	}
	value := float64(size)
	for _, suffix := range []string{"K", "M", "G", "T"} {
		value /= unit
		if value < unit || suffix == "T" {
			return fmt.Sprintf("%.1f%s", value, suffix)
		}
	}
	return fmt.Sprintf("%d", size)
}
