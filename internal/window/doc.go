// Package window selects a contiguous region of an input for head and tail.
//
// A Spec names the region: the opening or final N lines or bytes, or
// everything from the Nth line or byte onward (the "+N" forms). Extract
// realizes a Spec over a bytesource.Source with bounded memory: end-anchored
// windows seek when the source allows it and otherwise stream through a ring
// that retains only the survivors. Line terminators pass through verbatim and
// a trailing unterminated segment counts as a line of its own.
package window
