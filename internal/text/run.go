package text

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/dshills/prism/internal/style"
)

// Span marks a byte range of a Run's text with a style. The span style is
// layered over the run's base style for that range only.
type Span struct {
	Start int
	End   int
	Style style.Style
}

// Run is a single logical text object whose style varies by sub-range.
// Spans are appended in order and never overlap.
type Run struct {
	base    style.Style
	tabSize int
	text    strings.Builder
	spans   []Span
}

// NewRun creates an empty run with the given base style and tab size.
func NewRun(base style.Style, tabSize int) *Run {
	return &Run{base: base, tabSize: tabSize}
}

// Append adds a fragment in the given style. The style overrides the base
// style for this fragment only; a zero style inherits the base entirely.
func (r *Run) Append(fragment string, st style.Style) {
	if fragment == "" {
		return
	}
	start := r.text.Len()
	r.text.WriteString(fragment)
	r.spans = append(r.spans, Span{Start: start, End: r.text.Len(), Style: st})
}

// Text returns the run's full text.
func (r *Run) Text() string {
	return r.text.String()
}

// Len returns the byte length of the run's text.
func (r *Run) Len() int {
	return r.text.Len()
}

// BaseStyle returns the run's base style.
func (r *Run) BaseStyle() style.Style {
	return r.base
}

// Segments returns the run as display segments in text order. Adjacent
// fragments with identical resolved styles are merged; the merged output
// styles exactly match the unmerged ones.
func (r *Run) Segments() []Segment {
	text := r.Text()
	if text == "" {
		return nil
	}
	if len(r.spans) == 0 {
		return []Segment{{Text: text, Style: r.base}}
	}

	segs := make([]Segment, 0, len(r.spans))
	add := func(s Segment) {
		if s.Text == "" {
			return
		}
		if n := len(segs); n > 0 && segs[n-1].Style == s.Style {
			segs[n-1].Text += s.Text
			return
		}
		segs = append(segs, s)
	}

	pos := 0
	for _, sp := range r.spans {
		if sp.Start > pos {
			add(Segment{Text: text[pos:sp.Start], Style: r.base})
		}
		add(Segment{Text: text[sp.Start:sp.End], Style: sp.Style.Over(r.base)})
		pos = sp.End
	}
	if pos < len(text) {
		add(Segment{Text: text[pos:], Style: r.base})
	}
	return segs
}

// slice returns a new run covering text[start:end) with spans clipped and
// shifted. Base style and tab size carry over.
func (r *Run) slice(start, end int) *Run {
	out := NewRun(r.base, r.tabSize)
	text := r.Text()
	out.text.WriteString(text[start:end])
	for _, sp := range r.spans {
		if sp.End <= start || sp.Start >= end {
			continue
		}
		s := max(sp.Start, start)
		e := min(sp.End, end)
		out.spans = append(out.spans, Span{Start: s - start, End: e - start, Style: sp.Style})
	}
	return out
}

// SplitLines splits the run on line breaks. No emitted line contains a
// line break; span styles are preserved per sub-range. A trailing line
// break does not produce a trailing empty line.
func (r *Run) SplitLines() []*Run {
	text := r.Text()
	var lines []*Run
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			lines = append(lines, r.slice(start, i))
			start = i + 1
		}
	}
	if start < len(text) || len(lines) == 0 {
		lines = append(lines, r.slice(start, len(text)))
	}
	return lines
}

// ExpandTabs returns a run with tab characters replaced by spaces up to
// the next tab stop. Columns are measured in display cells and reset at
// line breaks. Returns the receiver unchanged when there are no tabs.
func (r *Run) ExpandTabs() *Run {
	text := r.Text()
	if r.tabSize <= 0 || !strings.Contains(text, "\t") {
		return r
	}

	out := NewRun(r.base, r.tabSize)
	col := 0
	var frag strings.Builder
	flush := func(st style.Style) {
		if frag.Len() > 0 {
			out.Append(frag.String(), st)
			frag.Reset()
		}
	}

	emit := func(s string, st style.Style) {
		for _, ch := range s {
			switch ch {
			case '\n':
				frag.WriteByte('\n')
				col = 0
			case '\t':
				n := r.tabSize - col%r.tabSize
				for i := 0; i < n; i++ {
					frag.WriteByte(' ')
				}
				col += n
			default:
				frag.WriteRune(ch)
				col += runewidth.RuneWidth(ch)
			}
		}
		flush(st)
	}

	if len(r.spans) == 0 {
		emit(text, style.Style{})
		return out
	}
	pos := 0
	for _, sp := range r.spans {
		if sp.Start > pos {
			emit(text[pos:sp.Start], style.Style{})
		}
		emit(text[sp.Start:sp.End], sp.Style)
		pos = sp.End
	}
	if pos < len(text) {
		emit(text[pos:], style.Style{})
	}
	return out
}

// Wrap hard-wraps the run (a single logical line) into physical rows of at
// most width display cells, padding every row to exactly width with spaces
// in the pad style. Always yields at least one row. A width of zero or
// less disables wrapping and padding.
func (r *Run) Wrap(width int, pad style.Style) [][]Segment {
	if width <= 0 {
		return [][]Segment{r.Segments()}
	}

	text := r.Text()
	var rows [][]Segment
	start := 0
	rowWidth := 0
	emitRow := func(end int) {
		row := r.slice(start, end).Segments()
		if fill := width - rowWidth; fill > 0 {
			row = append(row, Pad(fill, pad))
		}
		rows = append(rows, row)
		start = end
		rowWidth = 0
	}

	for i, ch := range text {
		w := runewidth.RuneWidth(ch)
		if rowWidth+w > width && rowWidth > 0 {
			emitRow(i)
		}
		rowWidth += w
	}
	emitRow(len(text))
	return rows
}
