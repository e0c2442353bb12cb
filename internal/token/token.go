package token

import "fmt"

// Token is a classified half-open span [Start, End) of lexical input.
// Tokens are immutable values; Start.Offset <= End.Offset always holds for
// scanner-produced tokens, and error tokens additionally guarantee
// End.Offset > Start.Offset so that recovery makes forward progress.
type Token struct {
	Kind  Kind
	Start Position
	End   Position
}

// Len returns the byte length of the token's span.
func (t Token) Len() ByteOffset {
	return t.End.Offset - t.Start.Offset
}

// Contains returns true if the byte offset is within the token's span.
// The end offset is exclusive.
func (t Token) Contains(offset ByteOffset) bool {
	return offset >= t.Start.Offset && offset < t.End.Offset
}

// Overlaps returns true if the token's span intersects the half-open
// range [start, end).
func (t Token) Overlaps(start, end ByteOffset) bool {
	return t.Start.Offset < end && t.End.Offset > start
}

// IsError returns true if this is a synthetic error token.
func (t Token) IsError() bool {
	return t.Kind.IsError()
}

// String returns a human-readable representation of the token.
func (t Token) String() string {
	return fmt.Sprintf("%s[%d,%d)", t.Kind, t.Start.Offset, t.End.Offset)
}

// RangeMarker builds a synthetic token usable as a binary search key against
// a sequence ordered by End.Offset. Only End.Offset is populated; the marker
// must never appear in a token stream.
func RangeMarker(offset ByteOffset) Token {
	return Token{End: Position{Offset: offset}}
}
