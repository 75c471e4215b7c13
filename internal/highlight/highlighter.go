package highlight

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"

	"github.com/dshills/prism/internal/style"
	"github.com/dshills/prism/internal/text"
)

// Highlight tokenizes code with the named lexer and returns one styled
// run: each token's fragment is tagged with the resolved style for its
// token type, in token stream order. The run's base style is the
// resolver's default style.
//
// An unknown lexer name, or a lexer that fails to tokenize, degrades to a
// run of the raw code in the default style. Highlighting never fails.
func Highlight(code, lexerName string, res *Resolver, tabSize int) *text.Run {
	lexer := lexers.Get(lexerName)
	if lexer == nil {
		return plainRun(code, res, tabSize)
	}
	lexer = chroma.Coalesce(lexer)

	it, err := lexer.Tokenise(nil, code)
	if err != nil {
		return plainRun(code, res, tabSize)
	}

	run := text.NewRun(res.DefaultStyle(), tabSize)
	for token := it(); token != chroma.EOF; token = it() {
		run.Append(token.Value, res.Resolve(token.Type))
	}
	return run.ExpandTabs()
}

// plainRun wraps raw code as a single uniformly-styled run.
func plainRun(code string, res *Resolver, tabSize int) *text.Run {
	run := text.NewRun(res.DefaultStyle(), tabSize)
	run.Append(code, style.Style{})
	return run.ExpandTabs()
}
