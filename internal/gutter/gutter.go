// Package gutter computes the numeric-gutter layout: the column width and
// the colors used for muted and highlighted line numbers.
package gutter

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/muesli/termenv"

	"github.com/dshills/prism/internal/highlight"
	"github.com/dshills/prism/internal/style"
)

// Blend fractions used for gutter number colors. Higher is closer to the
// foreground, so brighter.
const (
	mutedBlend     = 0.3
	highlightBlend = 0.9
)

// Width returns the gutter column width: enough digits for the last line
// number, plus one separator space and one pointer-marker column. Returns
// 0 when line numbers are disabled.
func Width(startLine, newlines int, numbered bool) int {
	if !numbered {
		return 0
	}
	return digits(startLine+newlines) + 2
}

// digits returns the number of decimal digits in n.
func digits(n int) int {
	if n <= 0 {
		return 1
	}
	count := 0
	for n > 0 {
		count++
		n /= 10
	}
	return count
}

// Styles holds the three gutter styles: the background fill, the muted
// number color, and the brighter bold color for highlighted line numbers.
type Styles struct {
	Background      style.Style
	Number          style.Style
	HighlightNumber style.Style
}

// NumberStyles derives the gutter styles from the theme and the reported
// color capability. Below 256 colors the number styles degrade to the
// unstyled default; this is a deliberate fallback, not an error.
func NumberStyles(profile termenv.Profile, res *highlight.Resolver) Styles {
	background := style.Style{Background: res.Theme().Background()}
	if profile != termenv.TrueColor && profile != termenv.ANSI256 {
		return Styles{Background: background}
	}

	plain := res.Resolve(chroma.Text)
	return Styles{
		Background: background,
		Number: style.Chain(background, plain, style.Style{
			Foreground: numberColor(res, mutedBlend),
		}),
		HighlightNumber: style.Chain(background, plain, style.Style{
			Foreground: numberColor(res, highlightBlend),
			Bold:       style.AttrOn,
		}),
	}
}

// numberColor blends the theme background toward the plain-text foreground.
// Blending needs two concrete RGB colors; otherwise the gutter falls back
// to the terminal's default color.
func numberColor(res *highlight.Resolver, frac float64) style.Color {
	background := res.Theme().Background()
	foreground := res.Resolve(chroma.Text).Foreground
	if !background.IsRGB() || !foreground.IsRGB() {
		return style.Default
	}
	return background.Blend(foreground, frac)
}
