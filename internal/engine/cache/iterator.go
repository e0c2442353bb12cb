package cache

import (
	"github.com/dshills/scanline/internal/engine/buffer"
	"github.com/dshills/scanline/internal/token"
)

// TokenIterator walks the cached token sequence lazily, pulling more tokens
// from the scanner as needed. Unbounded iterators (AllTokens) expand the
// sequence line by line; bounded iterators (TokensInRange) only walk what
// TokensInRange already ensured.
//
// An iterator is pinned to the generation it was created in. If the cache is
// invalidated mid-iteration, Next returns false and the caller must re-issue
// the query.
type TokenIterator struct {
	cache    *TokenCache
	revision buffer.RevisionID
	idx      int
	tok      token.Token
	limit    buffer.ByteOffset
	bounded  bool
}

// Next advances to the next token.
// Returns true if there is a token, false when iteration is complete.
func (it *TokenIterator) Next() bool {
	c := it.cache
	if !c.armed || c.revision != it.revision {
		return false // invalidated; stale generation
	}

	if it.idx >= len(c.tokens) {
		if it.bounded {
			return false
		}
		c.expandLine()
		if c.revision != it.revision || it.idx >= len(c.tokens) {
			return false
		}
	}

	tok := c.tokens[it.idx]
	if it.bounded && tok.Start.Offset > it.limit {
		return false
	}
	it.tok = tok
	it.idx++
	return true
}

// Token returns the current token. Valid only after Next returned true.
func (it *TokenIterator) Token() token.Token {
	return it.tok
}

// Collect drains the iterator into a slice. Intended for tests and small
// bounded queries; an unbounded iterator collects through end of input.
func (it *TokenIterator) Collect() []token.Token {
	var out []token.Token
	for it.Next() {
		out = append(out, it.Token())
	}
	return out
}
