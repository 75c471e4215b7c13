// Package render turns source code into a stream of styled display
// segments: highlighted content, an optional numeric gutter, and
// width-bounded wrapping.
package render

import (
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/muesli/termenv"

	"github.com/dshills/prism/internal/gutter"
	"github.com/dshills/prism/internal/highlight"
	"github.com/dshills/prism/internal/style"
	"github.com/dshills/prism/internal/text"
	"github.com/dshills/prism/internal/theme"
)

// DefaultTabSize is the tab width used when none is configured.
const DefaultTabSize = 4

// linePointer marks highlighted lines in the gutter.
const linePointer = "❱ "

// LineRange restricts rendering to an inclusive 1-based line range.
// The zero value renders all lines.
type LineRange struct {
	Start int
	End   int
}

// IsZero returns true when no range is set.
func (lr LineRange) IsZero() bool {
	return lr == LineRange{}
}

// Options configure a Syntax renderer.
type Options struct {
	// Theme is the named color theme. Empty selects the default theme;
	// an unknown name falls back to it.
	Theme string

	// Style is a pre-supplied chroma style. When set it takes precedence
	// over Theme.
	Style *chroma.Style

	// Dedent strips the common leading whitespace before highlighting.
	Dedent bool

	// LineNumbers enables the numeric gutter.
	LineNumbers bool

	// StartLine is the number of the first line. Values below 1 are
	// normalized to 1.
	StartLine int

	// LineRange restricts output to a 1-based inclusive range.
	LineRange LineRange

	// HighlightLines marks line numbers to highlight with a pointer.
	HighlightLines map[int]bool

	// CodeWidth fixes the content width, excluding the gutter.
	// Zero uses all available width.
	CodeWidth int

	// TabSize is the tab stop width. Zero uses DefaultTabSize.
	TabSize int
}

// Syntax renders syntax-highlighted code. It is constructed once and may
// render any number of times; repeated renders yield identical output.
// Internal memoization is a pure speed optimization with no observable
// effect.
type Syntax struct {
	code      string
	lexerName string
	opts      Options
	resolver  *highlight.Resolver
}

// New creates a renderer for the given code and lexer name.
func New(code, lexerName string, opts Options) *Syntax {
	if opts.StartLine < 1 {
		opts.StartLine = 1
	}
	if opts.TabSize < 1 {
		opts.TabSize = DefaultTabSize
	}

	var th *theme.Theme
	if opts.Style != nil {
		th = theme.FromChroma(opts.Style)
	} else {
		name := opts.Theme
		if name == "" {
			name = theme.DefaultName
		}
		th = theme.Load(name)
	}

	return &Syntax{
		code:      code,
		lexerName: lexerName,
		opts:      opts,
		resolver:  highlight.NewResolver(th),
	}
}

// FromPath creates a renderer for a file, guessing the lexer from the
// filename and falling back to content analysis. An unguessable lexer
// degrades to plain text; a read failure is returned to the caller.
func FromPath(path string, opts Options) (*Syntax, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	code := string(data)

	lexerName := ""
	if lexer := lexers.Match(filepath.Base(path)); lexer != nil {
		lexerName = lexer.Config().Name
	} else if lexer := lexers.Analyse(code); lexer != nil {
		lexerName = lexer.Config().Name
	}

	return New(code, lexerName, opts), nil
}

// LexerName returns the configured lexer name.
func (s *Syntax) LexerName() string {
	return s.lexerName
}

// Theme returns the renderer's theme.
func (s *Syntax) Theme() *theme.Theme {
	return s.resolver.Theme()
}

// NumbersColumnWidth returns the gutter width in cells: digits of the
// last line number plus separator and marker columns, or 0 when line
// numbers are disabled.
func (s *Syntax) NumbersColumnWidth() int {
	return gutter.Width(s.opts.StartLine, strings.Count(s.code, "\n"), s.opts.LineNumbers)
}

// Measure reports the desired render width. With a fixed content width
// both bounds equal content plus gutter; otherwise both equal the
// available width.
func (s *Syntax) Measure(maxWidth int) (minWidth, maxW int) {
	if s.opts.CodeWidth > 0 {
		w := s.opts.CodeWidth + s.NumbersColumnWidth()
		return w, w
	}
	return maxWidth, maxWidth
}

// Segments returns a single-pass sequence of display segments for the
// given available width and color capability. The sequence is finite and
// may be re-created by calling Segments again; it recomputes from the
// renderer's cached style state.
func (s *Syntax) Segments(width int, profile termenv.Profile) iter.Seq[text.Segment] {
	return func(yield func(text.Segment) bool) {
		code := s.code
		if s.opts.Dedent {
			code = Dedent(code)
		}
		run := highlight.Highlight(code, s.lexerName, s.resolver, s.opts.TabSize)

		if !s.opts.LineNumbers {
			s.emitPlain(run, yield)
			return
		}

		lines := run.SplitLines()
		lineOffset := 0
		if !s.opts.LineRange.IsZero() {
			lineOffset = max(0, s.opts.LineRange.Start-1)
			if lineOffset > len(lines) {
				lineOffset = len(lines)
			}
			end := min(s.opts.LineRange.End, len(lines))
			if end < lineOffset {
				end = lineOffset
			}
			lines = lines[lineOffset:end]
		}

		numbersWidth := s.NumbersColumnWidth()
		contentWidth := s.opts.CodeWidth
		if contentWidth <= 0 {
			contentWidth = width - numbersWidth
		}

		styles := gutter.NumberStyles(profile, s.resolver)
		padding := text.Pad(numbersWidth, styles.Background)

		for i, line := range lines {
			lineNo := s.opts.StartLine + lineOffset + i
			for rowIdx, row := range line.Wrap(contentWidth, styles.Background) {
				if rowIdx == 0 {
					column := fmt.Sprintf("%*d ", numbersWidth-2, lineNo)
					if s.opts.HighlightLines[lineNo] {
						if !yield(text.Segment{Text: linePointer, Style: styles.Number}) {
							return
						}
						if !yield(text.Segment{Text: column, Style: styles.HighlightNumber}) {
							return
						}
					} else {
						if !yield(text.Segment{Text: "  ", Style: styles.HighlightNumber}) {
							return
						}
						if !yield(text.Segment{Text: column, Style: styles.Number}) {
							return
						}
					}
				} else if !yield(padding) {
					return
				}
				for _, seg := range row {
					if !yield(seg) {
						return
					}
				}
				if !yield(text.NewLine()) {
					return
				}
			}
		}
	}
}

// emitPlain handles rendering without a gutter: pure passthrough when no
// width is fixed, wrap-only output otherwise.
func (s *Syntax) emitPlain(run *text.Run, yield func(text.Segment) bool) {
	if s.opts.CodeWidth <= 0 {
		for _, seg := range run.Segments() {
			if !yield(seg) {
				return
			}
		}
		return
	}

	pad := style.Style{Background: s.resolver.Theme().Background()}
	for _, line := range run.SplitLines() {
		for _, row := range line.Wrap(s.opts.CodeWidth, pad) {
			for _, seg := range row {
				if !yield(seg) {
					return
				}
			}
			if !yield(text.NewLine()) {
				return
			}
		}
	}
}
