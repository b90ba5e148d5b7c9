package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"asdutils/internal/testsupport"
)

func runCp(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	cmd := newCopyCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCopiesFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	dst := filepath.Join(dir, "dst.txt")
	testsupport.WriteFile(t, src, "payload")

	if _, _, err := runCp(t, "", src, dst); err != nil {
		t.Fatalf("execute: %v", err)
	}
	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "payload" {
		t.Fatalf("dst = %q", data)
	}
}

func TestCopiesIntoDirectory(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	target := filepath.Join(dir, "into")
	testsupport.WriteFile(t, src, "payload")
	if err := os.Mkdir(target, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	if _, _, err := runCp(t, "", src, target); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if _, err := os.Stat(filepath.Join(target, "src.txt")); err != nil {
		t.Fatalf("stat: %v", err)
	}
}

func TestMultipleSourcesNeedDirectory(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	testsupport.WriteFile(t, a, "a")
	testsupport.WriteFile(t, b, "b")

	if _, _, err := runCp(t, "", a, b, filepath.Join(dir, "plain")); err == nil {
		t.Fatal("non-directory target with two sources must fail")
	}
}

func TestDirectoryNeedsRecursive(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	_, stderr, err := runCp(t, "", sub, filepath.Join(dir, "copy"))
	if err == nil {
		t.Fatal("directory source without -r must fail")
	}
	if !strings.Contains(stderr, "omitting directory") {
		t.Fatalf("stderr = %q", stderr)
	}
}

func TestRecursiveCopy(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "tree")
	dst := filepath.Join(dir, "copy")
	testsupport.WriteFile(t, filepath.Join(src, "nested", "leaf.txt"), "deep")

	if _, _, err := runCp(t, "", "-r", src, dst); err != nil {
		t.Fatalf("execute: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dst, "nested", "leaf.txt"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "deep" {
		t.Fatalf("leaf = %q", data)
	}
}

func TestSameFileRefused(t *testing.T) {
	path := testsupport.TempFile(t, "self")
	_, stderr, err := runCp(t, "", path, path)
	if err == nil {
		t.Fatal("copying a file onto itself must fail")
	}
	if !strings.Contains(stderr, "same file") {
		t.Fatalf("stderr = %q", stderr)
	}
}

func TestUpdateSkipsNewerDestination(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	dst := filepath.Join(dir, "dst.txt")
	testsupport.WriteFile(t, src, "old contents")
	testsupport.WriteFile(t, dst, "kept")
	stale := time.Now().Add(-time.Hour)
	if err := os.Chtimes(src, stale, stale); err != nil {
		t.Fatalf("chtimes: %v", err)
	}

	if _, _, err := runCp(t, "", "-u", src, dst); err != nil {
		t.Fatalf("execute: %v", err)
	}
	data, _ := os.ReadFile(dst)
	if string(data) != "kept" {
		t.Fatalf("dst = %q, newer destination must survive -u", data)
	}
}

func TestInteractiveDeclineKeepsDestination(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	dst := filepath.Join(dir, "dst.txt")
	testsupport.WriteFile(t, src, "replacement")
	testsupport.WriteFile(t, dst, "original")

	if _, _, err := runCp(t, "n\n", "-i", src, dst); err != nil {
		t.Fatalf("execute: %v", err)
	}
	data, _ := os.ReadFile(dst)
	if string(data) != "original" {
		t.Fatalf("dst = %q", data)
	}
}

func TestPreserveKeepsMode(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	dst := filepath.Join(dir, "dst.txt")
	testsupport.WriteFile(t, src, "x")
	if err := os.Chmod(src, 0o640); err != nil {
		t.Fatalf("chmod: %v", err)
	}

	if _, _, err := runCp(t, "", "-p", src, dst); err != nil {
		t.Fatalf("execute: %v", err)
	}
	info, err := os.Stat(dst)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o640 {
		t.Fatalf("perm = %o, want 640", perm)
	}
}

func TestNoTargetDirectory(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	target := filepath.Join(dir, "existing")
	testsupport.WriteFile(t, src, "x")
	if err := os.Mkdir(target, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	if _, _, err := runCp(t, "", "-T", src, target); err == nil {
		t.Fatal("-T onto a directory must fail")
	}
}
