package view

import (
	"github.com/spf13/pflag"

	"asdutils/internal/window"
)

// CountValue is a pflag.Value that rewrites a shared window spec on every
// occurrence. Registering the lines flag and the bytes flag against the same
// destination makes option decoding order-sensitive: the last
// window-defining option wins, and bytes after lines cancels the line window
// and vice versa.
type CountValue struct {
	dst     *window.Spec
	byBytes bool
	head    bool
}

var _ pflag.Value = (*CountValue)(nil)

// NewCountValue binds a lines or bytes flag to dst using head or tail
// parsing rules.
func NewCountValue(dst *window.Spec, byBytes, head bool) *CountValue {
	return &CountValue{dst: dst, byBytes: byBytes, head: head}
}

func (v *CountValue) Set(raw string) error {
	var (
		spec window.Spec
		err  error
	)
	if v.head {
		spec, err = window.ParseHeadCount(raw, v.byBytes)
	} else {
		spec, err = window.ParseTailCount(raw, v.byBytes)
	}
	if err != nil {
		return err
	}
	*v.dst = spec
	return nil
}

func (v *CountValue) String() string { return "" }

func (v *CountValue) Type() string { return "num" }
