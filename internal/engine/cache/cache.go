package cache

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dshills/scanline/internal/engine/buffer"
	"github.com/dshills/scanline/internal/scanner"
	"github.com/dshills/scanline/internal/token"
)

// ErrorCeiling is the maximum number of recoverable lexical errors tolerated
// within one scan generation. Once reached, expansion stops until the next
// invalidation and callers observe a truncated sequence.
const ErrorCeiling = 100

// Source is the minimal versioned-text contract the cache consumes.
// *buffer.Buffer satisfies it.
type Source interface {
	// Text returns the full current text.
	Text() string

	// Len returns the byte length of the current text.
	Len() buffer.ByteOffset

	// Revision returns the current revision tag. The cache only ever tests
	// it for equality against the revision its tokens were built at.
	Revision() buffer.RevisionID
}

// TokenCache lazily tokenizes a versioned text source and caches the result
// for the source's current revision. It is created once per buffer and lives
// as long as the buffer. Not safe for concurrent use.
type TokenCache struct {
	source Source
	opts   scanner.Options

	// tokens is sorted by Start.Offset, non-overlapping, and append-only
	// within one generation. Dropped wholesale on invalidation.
	tokens []token.Token

	scan      *scanner.Scanner
	revision  buffer.RevisionID
	armed     bool
	eof       bool
	errCount  int
	truncated bool

	invalidations uint64
}

// New creates a token cache over the given source. It panics if source is
// nil: querying an unarmed cache is a contract violation, not a runtime
// condition to tolerate.
func New(source Source, opts scanner.Options) *TokenCache {
	if source == nil {
		panic("cache: nil source")
	}
	return &TokenCache{source: source, opts: opts}
}

// AllTokens returns a lazy iterator over the full token stream. The stream
// expands one source line at a time as the iterator advances, bounding work
// to the current line plus one token of lookahead. Each call returns a fresh
// iterator that follows buffer growth; an iterator held across an edit
// terminates and must be re-issued.
func (c *TokenCache) AllTokens() *TokenIterator {
	c.ensureCurrent()
	return &TokenIterator{cache: c, revision: c.revision}
}

// TokensInRange returns a lazy iterator over all tokens overlapping the
// byte range [start, end]. Overlap uses exclusive-end semantics: a
// token ending exactly at start, or starting past end, is not part of the
// result. TokensInRange panics if start > end.
func (c *TokenCache) TokensInRange(start, end buffer.ByteOffset) *TokenIterator {
	if start > end {
		panic(fmt.Sprintf("cache: invalid range [%d,%d]", start, end))
	}

	// Cover everything that could overlap the query.
	c.ensureThrough(func(_, current token.Position) bool {
		return current.Offset <= end
	})

	// Lower-bound search against End.Offset alone, keyed by a synthetic
	// marker. Ties (equal end offsets) cannot occur for non-overlapping
	// tokens; one would indicate a scanner invariant violation.
	marker := token.RangeMarker(start)
	i := sort.Search(len(c.tokens), func(i int) bool {
		return c.tokens[i].End.Offset > marker.End.Offset
	})

	return &TokenIterator{cache: c, revision: c.revision, idx: i, limit: end, bounded: true}
}

// Invalidate eagerly drops the cached sequence. The next query re-arms the
// cache against the source's then-current revision. Invalidate is optional:
// every query also detects revision mismatches on its own.
func (c *TokenCache) Invalidate() {
	c.armed = false
}

// Truncated reports whether expansion stopped at the error ceiling for the
// current generation.
func (c *TokenCache) Truncated() bool {
	return c.truncated
}

// ErrorCount returns the number of lexical errors recovered in the current
// generation. It is monotonically non-decreasing within a generation and
// resets on invalidation.
func (c *TokenCache) ErrorCount() int {
	return c.errCount
}

// Stats reports cache state for diagnostics.
type Stats struct {
	Tokens        int
	Errors        int
	Truncated     bool
	Revision      buffer.RevisionID
	Invalidations uint64
}

// Stats returns a snapshot of the cache's state.
func (c *TokenCache) Stats() Stats {
	return Stats{
		Tokens:        len(c.tokens),
		Errors:        c.errCount,
		Truncated:     c.truncated,
		Revision:      c.revision,
		Invalidations: c.invalidations,
	}
}

// ensureCurrent arms the cache against the source's current revision,
// dropping the token sequence if it was built against an older one.
func (c *TokenCache) ensureCurrent() {
	rev := c.source.Revision()
	if c.armed && rev == c.revision {
		return
	}
	c.tokens = nil // fresh backing array; outstanding iterators keep nothing alive
	c.scan = scanner.New(c.source.Text(), c.opts)
	c.revision = rev
	c.errCount = 0
	c.truncated = false
	c.eof = false
	c.armed = true
	c.invalidations++
}

// ensureThrough extends the token sequence while pred holds. initial is the
// end of the last buffered token (buffer start when empty) and current
// tracks the end of the most recently appended token. The loop terminates at
// end of input, at the error ceiling, or when pred first turns false.
func (c *TokenCache) ensureThrough(pred func(initial, current token.Position) bool) {
	c.ensureCurrent()

	initial := c.lastEnd()
	current := initial
	for !c.truncated && !c.eof && pred(initial, current) {
		ok, err := c.scan.Advance()
		if err != nil {
			var lexErr *scanner.LexError
			if !errors.As(err, &lexErr) {
				// Scanner contract: every error is a *LexError.
				panic(fmt.Sprintf("cache: unexpected scanner error: %v", err))
			}
			tok := errorToken(lexErr)
			c.tokens = append(c.tokens, tok)
			c.errCount++
			if c.errCount >= ErrorCeiling {
				c.truncated = true
				return
			}
			current = tok.End
			continue
		}
		if !ok {
			c.eof = true
			return
		}
		tok := c.scan.Current()
		c.tokens = append(c.tokens, tok)
		current = tok.End
	}
}

// expandLine extends the sequence by one source line: expansion continues
// until a newly appended token ends on a different line than the expansion
// started on.
func (c *TokenCache) expandLine() {
	c.ensureThrough(func(initial, current token.Position) bool {
		return current.Line == initial.Line
	})
}

// lastEnd returns the end of the last buffered token, or the buffer start.
func (c *TokenCache) lastEnd() token.Position {
	if n := len(c.tokens); n > 0 {
		return c.tokens[n-1].End
	}
	return token.Position{}
}

// errorToken synthesizes an error token from a lexical error, widening
// zero-width spans to one byte so recovery always makes forward progress.
func errorToken(e *scanner.LexError) token.Token {
	start, end := e.Start, e.End
	if end.Offset <= start.Offset {
		end = token.Position{
			Offset: start.Offset + 1,
			Line:   start.Line,
			Column: start.Column + 1,
		}
	}
	return token.Token{Kind: token.KindError, Start: start, End: end}
}
