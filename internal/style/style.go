package style

import "strings"

// Attr is a tri-state text attribute: unset, on, or off.
// Only a set attribute (on or off) overrides an earlier layer when
// styles are chained.
type Attr uint8

const (
	AttrUnset Attr = iota
	AttrOn
	AttrOff
)

// Enabled returns true if the attribute is explicitly on.
func (a Attr) Enabled() bool {
	return a == AttrOn
}

// IsSet returns true if the attribute was explicitly assigned.
func (a Attr) IsSet() bool {
	return a != AttrUnset
}

// Style describes how a fragment of text is displayed. The zero value is
// the empty style: nothing set, everything inherited from earlier layers.
type Style struct {
	Foreground Color
	Background Color
	Bold       Attr
	Italic     Attr
	Underline  Attr
}

// IsZero returns true if no field of the style is set.
func (s Style) IsZero() bool {
	return s == Style{}
}

// Over layers s on top of base. Fields explicitly set in s win; unset
// fields fall through to base.
func (s Style) Over(base Style) Style {
	out := base
	if s.Foreground.IsSet() {
		out.Foreground = s.Foreground
	}
	if s.Background.IsSet() {
		out.Background = s.Background
	}
	if s.Bold.IsSet() {
		out.Bold = s.Bold
	}
	if s.Italic.IsSet() {
		out.Italic = s.Italic
	}
	if s.Underline.IsSet() {
		out.Underline = s.Underline
	}
	return out
}

// Chain combines style layers left to right. Later layers override only
// the fields they explicitly set.
func Chain(layers ...Style) Style {
	var out Style
	for _, layer := range layers {
		out = layer.Over(out)
	}
	return out
}

// String returns a debug representation of the style.
func (s Style) String() string {
	var parts []string
	if s.Foreground.IsSet() {
		parts = append(parts, "fg="+s.Foreground.String())
	}
	if s.Background.IsSet() {
		parts = append(parts, "bg="+s.Background.String())
	}
	if s.Bold.Enabled() {
		parts = append(parts, "bold")
	}
	if s.Italic.Enabled() {
		parts = append(parts, "italic")
	}
	if s.Underline.Enabled() {
		parts = append(parts, "underline")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, " ")
}
