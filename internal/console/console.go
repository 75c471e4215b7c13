// Package console writes display segments to a terminal, translating
// styles into ANSI sequences appropriate for the terminal's color
// capability.
package console

import (
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/dshills/prism/internal/render"
	"github.com/dshills/prism/internal/text"
)

// DefaultWidth is used when the output is not a terminal.
const DefaultWidth = 80

// Console renders segment streams to a writer.
type Console struct {
	out     *termenv.Output
	width   int
	profile termenv.Profile
}

// New creates a console for the writer, detecting width and color
// capability when the writer is a terminal.
func New(w io.Writer) *Console {
	profile := termenv.Ascii
	width := DefaultWidth

	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		profile = termenv.EnvColorProfile()
		if tw, _, err := term.GetSize(int(f.Fd())); err == nil && tw > 0 {
			width = tw
		}
	}
	return NewWithOptions(w, width, profile)
}

// NewWithOptions creates a console with an explicit width and profile.
func NewWithOptions(w io.Writer, width int, profile termenv.Profile) *Console {
	return &Console{
		out:     termenv.NewOutput(w, termenv.WithProfile(profile)),
		width:   width,
		profile: profile,
	}
}

// Width returns the console's display width.
func (c *Console) Width() int {
	return c.width
}

// Profile returns the console's color capability.
func (c *Console) Profile() termenv.Profile {
	return c.profile
}

// Print renders the syntax object to the console.
func (c *Console) Print(s *render.Syntax) error {
	for seg := range s.Segments(c.width, c.profile) {
		if _, err := io.WriteString(c.out, c.sgr(seg)); err != nil {
			return fmt.Errorf("writing segment: %w", err)
		}
	}
	return nil
}

// sgr converts a segment to its ANSI representation. Bare line breaks and
// unstyled text pass through untouched.
func (c *Console) sgr(seg text.Segment) string {
	if seg.Style.IsZero() || c.profile == termenv.Ascii {
		return seg.Text
	}

	st := c.out.String(seg.Text)
	if fg := seg.Style.Foreground; fg.IsRGB() {
		st = st.Foreground(c.profile.Color(fg.Hex()))
	}
	if bg := seg.Style.Background; bg.IsRGB() {
		st = st.Background(c.profile.Color(bg.Hex()))
	}
	if seg.Style.Bold.Enabled() {
		st = st.Bold()
	}
	if seg.Style.Italic.Enabled() {
		st = st.Italic()
	}
	if seg.Style.Underline.Enabled() {
		st = st.Underline()
	}
	return st.String()
}
