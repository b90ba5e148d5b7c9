package window_test

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"strings"
	"testing"

	"asdutils/internal/bytesource"
	"asdutils/internal/testsupport"
	"asdutils/internal/window"
)

func extract(t *testing.T, content string, spec window.Spec) string {
	t.Helper()

	src, err := bytesource.Open(testsupport.TempFile(t, content))
	if err != nil {
		t.Fatalf("open source: %v", err)
	}
	defer src.Close()

	var out bytes.Buffer
	if err := window.Extract(&out, src, spec); err != nil {
		t.Fatalf("extract: %v", err)
	}
	return out.String()
}

// extractNonSeekable routes content through a pipe posing as standard
// input, so the source has no known size and cannot seek.
func extractNonSeekable(t *testing.T, content string, spec window.Spec) string {
	t.Helper()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	orig := os.Stdin
	os.Stdin = r
	t.Cleanup(func() {
		os.Stdin = orig
		r.Close()
	})

	go func() {
		w.WriteString(content)
		w.Close()
	}()

	src, err := bytesource.Open(bytesource.Stdin)
	if err != nil {
		t.Fatalf("open stdin source: %v", err)
	}
	defer src.Close()

	var out bytes.Buffer
	if err := window.Extract(&out, src, spec); err != nil {
		t.Fatalf("extract: %v", err)
	}
	return out.String()
}

func TestNonSeekableMatchesSeekable(t *testing.T) {
	content := "a\nb\nc\nd\ne\n"
	specs := []window.Spec{
		{Mode: window.FirstLines, Count: 2},
		{Mode: window.FirstBytes, Count: 3},
		{Mode: window.LastLines, Count: 2},
		{Mode: window.LastBytes, Count: 4},
		{Mode: window.FromLine, Count: 3},
		{Mode: window.FromByte, Count: 5},
	}
	for _, spec := range specs {
		t.Run(fmt.Sprintf("mode %d count %d", spec.Mode, spec.Count), func(t *testing.T) {
			want := extract(t, content, spec)
			got := extractNonSeekable(t, content, spec)
			if got != want {
				t.Fatalf("pipe gave %q, file gave %q", got, want)
			}
		})
	}
}

func TestFirstLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		count   uint64
		want    string
	}{
		{"basic", testsupport.Lines(5), 3, "1\n2\n3\n"},
		{"shorter than window", "a\nb\n", 10, "a\nb\n"},
		{"zero emits nothing", testsupport.Lines(5), 0, ""},
		{"unterminated final line", "a\nb", 2, "a\nb"},
		{"empty input", "", 3, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extract(t, tt.content, window.Spec{Mode: window.FirstLines, Count: tt.count})
			if got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFirstBytes(t *testing.T) {
	got := extract(t, "abcdef\n", window.Spec{Mode: window.FirstBytes, Count: 4})
	if got != "abcd" {
		t.Fatalf("got %q, want %q", got, "abcd")
	}

	got = extract(t, "ab", window.Spec{Mode: window.FirstBytes, Count: 10})
	if got != "ab" {
		t.Fatalf("short input: got %q, want %q", got, "ab")
	}
}

func TestLastLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		count   uint64
		want    string
	}{
		{"basic", testsupport.Lines(5), 2, "4\n5\n"},
		{"window exceeds input", "a\nb\n", 10, "a\nb\n"},
		{"zero emits nothing", testsupport.Lines(5), 0, ""},
		{"unterminated final line", "a\nb\nc", 2, "b\nc"},
		{"single line no newline", "solo", 3, "solo"},
		{"empty input", "", 5, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extract(t, tt.content, window.Spec{Mode: window.LastLines, Count: tt.count})
			if got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLastLinesLargeInput(t *testing.T) {
	content := testsupport.Lines(10000)
	got := extract(t, content, window.Spec{Mode: window.LastLines, Count: 3})
	if got != "9998\n9999\n10000\n" {
		t.Fatalf("got %q", got)
	}
}

func TestLastBytes(t *testing.T) {
	got := extract(t, "abcdefgh", window.Spec{Mode: window.LastBytes, Count: 3})
	if got != "fgh" {
		t.Fatalf("got %q, want %q", got, "fgh")
	}

	got = extract(t, "abc", window.Spec{Mode: window.LastBytes, Count: 99})
	if got != "abc" {
		t.Fatalf("window exceeds input: got %q, want %q", got, "abc")
	}
}

func TestFromLine(t *testing.T) {
	content := testsupport.Lines(5)
	tests := []struct {
		name  string
		count uint64
		want  string
	}{
		{"middle", 3, "3\n4\n5\n"},
		{"one means everything", 1, content},
		{"zero means everything", 0, content},
		{"past the end is empty", 9, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extract(t, content, window.Spec{Mode: window.FromLine, Count: tt.count})
			if got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFromByte(t *testing.T) {
	got := extract(t, "abcdef", window.Spec{Mode: window.FromByte, Count: 3})
	if got != "cdef" {
		t.Fatalf("got %q, want %q", got, "cdef")
	}

	got = extract(t, "abcdef", window.Spec{Mode: window.FromByte, Count: 1})
	if got != "abcdef" {
		t.Fatalf("position one: got %q, want %q", got, "abcdef")
	}

	got = extract(t, "ab", window.Spec{Mode: window.FromByte, Count: 50})
	if got != "" {
		t.Fatalf("past the end: got %q, want empty", got)
	}
}

func TestByteCountsBeyondInt64(t *testing.T) {
	content := "abcdef"
	got := extract(t, content, window.Spec{Mode: window.FirstBytes, Count: math.MaxUint64})
	if got != content {
		t.Fatalf("first bytes: got %q, want whole input", got)
	}
	got = extract(t, content, window.Spec{Mode: window.LastBytes, Count: math.MaxUint64})
	if got != content {
		t.Fatalf("last bytes: got %q, want whole input", got)
	}
	got = extract(t, content, window.Spec{Mode: window.FromByte, Count: math.MaxUint64})
	if got != "" {
		t.Fatalf("from byte: got %q, want empty", got)
	}
}

func TestParseTailCount(t *testing.T) {
	tests := []struct {
		raw     string
		byBytes bool
		want    window.Spec
		wantErr bool
	}{
		{raw: "5", want: window.Spec{Mode: window.LastLines, Count: 5}},
		{raw: "5", byBytes: true, want: window.Spec{Mode: window.LastBytes, Count: 5}},
		{raw: "+3", want: window.Spec{Mode: window.FromLine, Count: 3}},
		{raw: "+3", byBytes: true, want: window.Spec{Mode: window.FromByte, Count: 3}},
		{raw: "+0", want: window.Spec{Mode: window.FromLine, Count: 0}},
		{raw: "0", want: window.Spec{Mode: window.LastLines, Count: 0}},
		{raw: "-5", wantErr: true},
		{raw: "x", wantErr: true},
		{raw: "", wantErr: true},
		{raw: "+", wantErr: true},
	}
	for _, tt := range tests {
		got, err := window.ParseTailCount(tt.raw, tt.byBytes)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseTailCount(%q, %v): expected error", tt.raw, tt.byBytes)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseTailCount(%q, %v): %v", tt.raw, tt.byBytes, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseTailCount(%q, %v) = %+v, want %+v", tt.raw, tt.byBytes, got, tt.want)
		}
	}
}

func TestParseTailCountErrorMentionsToken(t *testing.T) {
	_, err := window.ParseTailCount("bogus", false)
	if err == nil || !strings.Contains(err.Error(), `"bogus"`) {
		t.Fatalf("error should carry the offending token, got %v", err)
	}
	_, err = window.ParseTailCount("bogus", true)
	if err == nil || !strings.Contains(err.Error(), "bytes") {
		t.Fatalf("byte error should name bytes, got %v", err)
	}
}

func TestParseHeadCount(t *testing.T) {
	tests := []struct {
		raw     string
		byBytes bool
		want    window.Spec
		wantErr bool
	}{
		{raw: "7", want: window.Spec{Mode: window.FirstLines, Count: 7}},
		{raw: "7", byBytes: true, want: window.Spec{Mode: window.FirstBytes, Count: 7}},
		{raw: "+7", want: window.Spec{Mode: window.FirstLines, Count: 7}},
		{raw: "0", want: window.Spec{Mode: window.FirstLines, Count: 0}},
		{raw: "-2", wantErr: true},
		{raw: "abc", wantErr: true},
	}
	for _, tt := range tests {
		got, err := window.ParseHeadCount(tt.raw, tt.byBytes)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseHeadCount(%q, %v): expected error", tt.raw, tt.byBytes)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseHeadCount(%q, %v): %v", tt.raw, tt.byBytes, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHeadCount(%q, %v) = %+v, want %+v", tt.raw, tt.byBytes, got, tt.want)
		}
	}
}
