package scanner

import (
	"fmt"

	"github.com/dshills/scanline/internal/token"
)

// LexError reports malformed lexical input at a specific span.
// It is recoverable: the scanner has already advanced past the span when the
// error is returned, and the next Advance resumes normally.
type LexError struct {
	// Start is the beginning of the offending span.
	Start token.Position

	// End is the end of the offending span (exclusive). End may equal Start
	// for errors detected at a single point, such as end of input.
	End token.Position

	// Msg describes the problem.
	Msg string
}

// Error implements the error interface.
func (e *LexError) Error() string {
	return fmt.Sprintf("lex error at %d:%d: %s", e.Start.Line, e.Start.Column, e.Msg)
}
