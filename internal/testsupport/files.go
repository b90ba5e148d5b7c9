// Package testsupport holds fixture helpers shared by the suite's tests.
package testsupport

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// WriteFile fills path with content, creating parent directories as needed.
func WriteFile(t testing.TB, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// TempFile writes content into a fresh file under t.TempDir and returns its
// path.
func TempFile(t testing.TB, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "input.txt")
	WriteFile(t, path, content)
	return path
}

// Append adds content to the end of an existing file.
func Append(t testing.TB, path, content string) {
	t.Helper()

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		t.Fatalf("open append %s: %v", path, err)
	}
	defer f.Close()
	if _, err := f.WriteString(content); err != nil {
		t.Fatalf("append %s: %v", path, err)
	}
}

// Lines builds an n-line body "1\n2\n...\n" for window tests.
func Lines(n int) string {
	var out []byte
	for i := 1; i <= n; i++ {
		out = append(out, fmt.Sprintf("%d\n", i)...)
	}
	return string(out)
}
