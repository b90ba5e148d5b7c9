package main

import (
	"bytes"
	"testing"

	"asdutils/internal/config"
	"asdutils/internal/testsupport"
)

func runHead(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cmd := newHeadCommand(config.Default())
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestDefaultWindow(t *testing.T) {
	path := testsupport.TempFile(t, testsupport.Lines(15))
	stdout, _, err := runHead(t, path)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if stdout != testsupport.Lines(10) {
		t.Fatalf("stdout = %q", stdout)
	}
}

func TestLinesFlag(t *testing.T) {
	path := testsupport.TempFile(t, testsupport.Lines(15))
	stdout, _, err := runHead(t, "-n", "3", path)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if stdout != "1\n2\n3\n" {
		t.Fatalf("stdout = %q", stdout)
	}
}

func TestBytesFlag(t *testing.T) {
	path := testsupport.TempFile(t, "abcdefgh")
	stdout, _, err := runHead(t, "-c", "4", path)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if stdout != "abcd" {
		t.Fatalf("stdout = %q", stdout)
	}
}

func TestLastCountFlagWins(t *testing.T) {
	path := testsupport.TempFile(t, testsupport.Lines(15))
	stdout, _, err := runHead(t, "-n", "3", "-c", "4", path)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if stdout != "1\n2\n" {
		t.Fatalf("stdout = %q, want the byte window to win", stdout)
	}
}

func TestInvalidCountRejected(t *testing.T) {
	path := testsupport.TempFile(t, "x\n")
	_, _, err := runHead(t, "-n", "bogus", path)
	if err == nil {
		t.Fatal("expected parse failure")
	}
}

func TestMissingFileContinues(t *testing.T) {
	path := testsupport.TempFile(t, "alive\n")
	stdout, stderr, err := runHead(t, "-q", t.TempDir()+"/absent", path)
	if err == nil {
		t.Fatal("missing operand must fail the run")
	}
	if stderr == "" {
		t.Fatal("missing operand must be diagnosed")
	}
	if stdout != "alive\n" {
		t.Fatalf("stdout = %q", stdout)
	}
}
