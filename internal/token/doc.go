// Package token defines the position and token value types shared by the
// scanner and the token cache.
//
// A Position is an absolute coordinate into the buffer: a byte offset plus
// the derived line and column. Tokens are half-open spans [Start, End) over
// Positions, tagged with a Kind. Both are immutable value types; once a token
// has been produced by the scanner it is never modified.
//
// The package also provides RangeMarker, a synthetic token used as a binary
// search key when locating tokens by end offset. A marker compares correctly
// using only End.Offset; no other field is populated.
package token
