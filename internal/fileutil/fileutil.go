// Package fileutil is the copy and move engine behind cp and mv.
package fileutil

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sys/unix"
)

// CopyFile streams src to dst using io.Copy with default permissions (0o644).
func CopyFile(src, dst string) error {
	return CopyFileMode(src, dst, 0o644)
}

// CopyFileMode streams src to dst, setting the given file mode on dst.
func CopyFileMode(src, dst string, mode os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}

// CopyPreserve streams src to dst and carries over the source's mode and
// timestamps. Ownership is restored best-effort: unprivileged processes
// cannot chown and that is not an error.
func CopyPreserve(src, dst string) error {
	var st unix.Stat_t
	if err := unix.Stat(src, &st); err != nil {
		return &os.PathError{Op: "stat", Path: src, Err: err}
	}

	if err := CopyFileMode(src, dst, os.FileMode(st.Mode)&os.ModePerm); err != nil {
		return err
	}

	atime := time.Unix(st.Atim.Sec, st.Atim.Nsec)
	mtime := time.Unix(st.Mtim.Sec, st.Mtim.Nsec)
	if err := os.Chtimes(dst, atime, mtime); err != nil {
		return err
	}
	_ = os.Chown(dst, int(st.Uid), int(st.Gid))
	return nil
}

// CopyTreeOptions controls recursive copying.
type CopyTreeOptions struct {
	Preserve bool
}

// CopyTree replicates the directory rooted at src under dst, creating dst
// if needed. Regular files are copied; other entry kinds are skipped.
func CopyTree(src, dst string, opts CopyTreeOptions) error {
	if err := os.MkdirAll(dst, 0o777); err != nil {
		return err
	}
	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		from := filepath.Join(src, entry.Name())
		to := filepath.Join(dst, entry.Name())
		if entry.IsDir() {
			if err := CopyTree(from, to, opts); err != nil {
				return err
			}
			continue
		}
		if !entry.Type().IsRegular() {
			continue
		}
		if opts.Preserve {
			err = CopyPreserve(from, to)
		} else {
			err = CopyFile(from, to)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// SameFile reports whether the two paths name the same inode on the same
// device. Missing paths are simply not the same file.
func SameFile(a, b string) bool {
	ai, err := os.Stat(a)
	if err != nil {
		return false
	}
	bi, err := os.Stat(b)
	if err != nil {
		return false
	}
	return os.SameFile(ai, bi)
}

// Move renames src to dst, falling back to copy-and-remove when the rename
// crosses a filesystem boundary.
func Move(src, dst string) error {
	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}
	var linkErr *os.LinkError
	if !errors.As(err, &linkErr) || !errors.Is(linkErr.Err, unix.EXDEV) {
		return err
	}

	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	if info.IsDir() {
		if err := CopyTree(src, dst, CopyTreeOptions{Preserve: true}); err != nil {
			return fmt.Errorf("copy across filesystems: %w", err)
		}
		return os.RemoveAll(src)
	}
	if err := CopyPreserve(src, dst); err != nil {
		return fmt.Errorf("copy across filesystems: %w", err)
	}
	return os.Remove(src)
}
