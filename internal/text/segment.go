// Package text provides the styled-run and display-segment primitives for
// the rendering pipeline. A Run associates sub-ranges of a string with
// styles; a Segment is an atomic (text, style) unit emitted to a console.
package text

import (
	"github.com/mattn/go-runewidth"

	"github.com/dshills/prism/internal/style"
)

// Segment is an atomic unit of display output: a text fragment with a
// style, or a bare line-break marker.
type Segment struct {
	Text  string
	Style style.Style
}

// NewLine returns a bare line-break segment.
func NewLine() Segment {
	return Segment{Text: "\n"}
}

// IsNewLine returns true for a bare line-break marker.
func (s Segment) IsNewLine() bool {
	return s.Text == "\n" && s.Style.IsZero()
}

// Width returns the display cell width of the segment's text.
func (s Segment) Width() int {
	return runewidth.StringWidth(s.Text)
}

// Pad returns a segment of n spaces in the given style.
func Pad(n int, st style.Style) Segment {
	if n <= 0 {
		return Segment{Style: st}
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return Segment{Text: string(b), Style: st}
}
