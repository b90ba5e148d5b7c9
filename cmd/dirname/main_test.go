package main

import (
	"bytes"
	"testing"
)

func runDirname(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newDirnameCommand()
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func TestStripsLastComponent(t *testing.T) {
	got, err := runDirname(t, "/usr/bin/sort")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got != "/usr/bin\n" {
		t.Fatalf("got %q", got)
	}
}

func TestMultipleNames(t *testing.T) {
	got, err := runDirname(t, "dir1/str", "dir2/str", "stdio.h")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got != "dir1\ndir2\n.\n" {
		t.Fatalf("got %q", got)
	}
}

func TestZeroTerminator(t *testing.T) {
	got, err := runDirname(t, "-z", "a/b")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got != "a\x00" {
		t.Fatalf("got %q", got)
	}
}

func TestMissingOperand(t *testing.T) {
	if _, err := runDirname(t); err == nil {
		t.Fatal("expected missing operand error")
	}
}
