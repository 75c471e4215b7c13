// Package theme adapts chroma's style database to the renderer's style
// model. A Theme maps token types to concrete styles and carries the
// theme's global background color.
package theme

import (
	"sort"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/dshills/prism/internal/style"
)

// DefaultName is the theme used when a requested theme does not exist.
const DefaultName = "monokai"

// Theme is an immutable named style database.
type Theme struct {
	name       string
	style      *chroma.Style
	background style.Color
}

// Load returns the named theme. An unknown name falls back to the
// built-in default theme rather than failing.
func Load(name string) *Theme {
	cs, ok := styles.Registry[name]
	if !ok {
		cs = styles.Get(DefaultName)
	}
	return FromChroma(cs)
}

// FromChroma wraps a pre-supplied chroma style as a Theme.
func FromChroma(cs *chroma.Style) *Theme {
	background := style.Default
	if bg := cs.Get(chroma.Background).Background; bg.IsSet() {
		background = style.RGB(bg.Red(), bg.Green(), bg.Blue())
	}
	return &Theme{
		name:       cs.Name,
		style:      cs,
		background: background,
	}
}

// Name returns the theme's name.
func (t *Theme) Name() string {
	return t.name
}

// Background returns the theme's global background color.
func (t *Theme) Background() style.Color {
	return t.background
}

// StyleFor returns the style for a token type. The second return value is
// false when the theme has no entry for the type anywhere in its token
// hierarchy; callers should treat that as "no styling" rather than an error.
//
// When an entry exists: a missing foreground defaults to pure black, and a
// missing background pins to the theme's global background so styled runs
// never show a mismatched background.
func (t *Theme) StyleFor(tokenType chroma.TokenType) (style.Style, bool) {
	if !t.has(tokenType) {
		return style.Style{}, false
	}

	entry := t.style.Get(tokenType)
	s := style.Style{
		Foreground: style.RGB(0, 0, 0),
		Background: t.background,
		Bold:       attr(entry.Bold),
		Italic:     attr(entry.Italic),
		Underline:  attr(entry.Underline),
	}
	if entry.Colour.IsSet() {
		s.Foreground = style.RGB(entry.Colour.Red(), entry.Colour.Green(), entry.Colour.Blue())
	}
	if entry.Background.IsSet() {
		s.Background = style.RGB(entry.Background.Red(), entry.Background.Green(), entry.Background.Blue())
	}
	return s, true
}

// has reports whether the theme styles the token type, either directly or
// via its sub-category or category.
func (t *Theme) has(tokenType chroma.TokenType) bool {
	return t.style.Has(tokenType) ||
		t.style.Has(tokenType.SubCategory()) ||
		t.style.Has(tokenType.Category())
}

func attr(tri chroma.Trilean) style.Attr {
	if tri == chroma.Yes {
		return style.AttrOn
	}
	return style.AttrOff
}

// Names returns all registered theme names, sorted.
func Names() []string {
	names := make([]string, 0, len(styles.Registry))
	for name := range styles.Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
