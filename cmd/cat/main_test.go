package main

import (
	"bytes"
	"errors"
	"testing"

	"asdutils/internal/testsupport"
)

func runCat(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cmd := newCatCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestConcatenatesInOrder(t *testing.T) {
	a := testsupport.TempFile(t, "one\n")
	b := testsupport.TempFile(t, "two\n")
	stdout, _, err := runCat(t, a, b)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if stdout != "one\ntwo\n" {
		t.Fatalf("stdout = %q", stdout)
	}
}

func TestNumberingSpansFiles(t *testing.T) {
	a := testsupport.TempFile(t, "one\n")
	b := testsupport.TempFile(t, "two\n")
	stdout, _, err := runCat(t, "-n", a, b)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	want := "     1\tone\n     2\ttwo\n"
	if stdout != want {
		t.Fatalf("stdout = %q, want %q", stdout, want)
	}
}

func TestShowAll(t *testing.T) {
	path := testsupport.TempFile(t, "a\tb\n")
	stdout, _, err := runCat(t, "-A", path)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if stdout != "a^Ib$\n" {
		t.Fatalf("stdout = %q", stdout)
	}
}

func TestMissingFileContinues(t *testing.T) {
	present := testsupport.TempFile(t, "still\n")
	stdout, stderr, err := runCat(t, t.TempDir()+"/absent", present)
	if !errors.Is(err, errReported) {
		t.Fatalf("err = %v, want errReported", err)
	}
	if stderr == "" {
		t.Fatal("missing file must be diagnosed")
	}
	if stdout != "still\n" {
		t.Fatalf("stdout = %q", stdout)
	}
}
