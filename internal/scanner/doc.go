// Package scanner implements the stateful pull scanner consumed by the token
// cache. It tokenizes YAML-flavored text: comments, document markers, block
// and flow structure indicators, quoted strings, anchors, aliases, tags,
// directives, and plain scalars classified as number, bool, null, or scalar.
//
// The scanner is inherently sequential: each Advance depends on all prior
// calls and it cannot be restarted mid-stream. Callers that need to rescan
// construct a new Scanner over the full text.
//
// Malformed input is reported as a *LexError carrying the offending span.
// The scanner always moves its cursor past the reported span before
// returning, so repeated Advance calls make forward progress even on
// pathological input.
package scanner
