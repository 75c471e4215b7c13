// Package highlight turns source code into a single styled run using a
// chroma lexer and a theme. Token-to-style resolution is memoized per
// resolver; a token kind always resolves to the same style within one
// resolver's lifetime.
package highlight

import (
	"sync"

	"github.com/alecthomas/chroma/v2"

	"github.com/dshills/prism/internal/style"
	"github.com/dshills/prism/internal/theme"
)

// Resolver resolves token types to concrete styles with caching.
// Safe for concurrent reads; cache population is serialized.
type Resolver struct {
	theme *theme.Theme

	mu    sync.RWMutex
	cache map[chroma.TokenType]style.Style
}

// NewResolver creates a resolver for the given theme.
func NewResolver(t *theme.Theme) *Resolver {
	return &Resolver{
		theme: t,
		cache: make(map[chroma.TokenType]style.Style),
	}
}

// Theme returns the resolver's theme.
func (r *Resolver) Theme() *theme.Theme {
	return r.theme
}

// Resolve returns the style for a token type. Token types absent from the
// theme resolve to the zero style; resolution never fails. Results are
// cached for the life of the resolver and never evicted.
func (r *Resolver) Resolve(tokenType chroma.TokenType) style.Style {
	r.mu.RLock()
	s, ok := r.cache[tokenType]
	r.mu.RUnlock()
	if ok {
		return s
	}

	s, _ = r.theme.StyleFor(tokenType)

	r.mu.Lock()
	r.cache[tokenType] = s
	r.mu.Unlock()
	return s
}

// DefaultStyle returns the style for plain text with its background forced
// to the theme's global background, so default text displays correctly
// against the chosen theme.
func (r *Resolver) DefaultStyle() style.Style {
	s := r.Resolve(chroma.Text)
	s.Background = r.theme.Background()
	return s
}
