package scanner

import (
	"fmt"
	"strconv"
	"strings"

	"fortio.org/safecast"

	"github.com/dshills/scanline/internal/token"
)

// Scanner is a stateful cursor over buffer text. Each successful Advance
// produces one token, retrievable through Current until the next call.
type Scanner struct {
	text string
	pos  int

	// Line tracking. lineStart is the byte offset of the current line.
	line      uint32
	lineStart int

	// cur is valid only after Advance returned true.
	cur token.Token

	// lastEnd is the end of the last produced token or reported error.
	// Used to anchor end-of-input errors without overlapping earlier spans.
	lastEnd token.Position

	// flow holds the positions of currently open flow delimiters.
	flow        []token.Position
	flowErrored bool

	opts Options
}

// New creates a scanner over the full text of a buffer snapshot.
func New(text string, opts Options) *Scanner {
	return &Scanner{text: text, opts: opts}
}

// Current returns the most recently produced token.
// It is valid only after Advance returned true.
func (s *Scanner) Current() token.Token {
	return s.cur
}

// Advance moves the scanner to the next token. It returns (true, nil) when a
// token was produced, (false, nil) at end of input, and (false, *LexError)
// when malformed input was encountered. After an error the cursor has moved
// past the offending span, so the next Advance resumes normally.
func (s *Scanner) Advance() (bool, error) {
	for s.pos < len(s.text) {
		switch c := s.text[s.pos]; {
		case c == ' ' || c == '\r' || c == '\n':
			s.bump()
		case c == '\t':
			if s.inIndent() {
				return false, s.tabIndentError()
			}
			s.bump() // separator tab inside a line
		case c == '#':
			tok := s.scanComment()
			if s.opts.RetainComments {
				s.emit(tok)
				return true, nil
			}
		default:
			return s.scanToken()
		}
	}

	// End of input with an open flow collection: report the unscanned tail
	// once, then behave as a normal end of input.
	if len(s.flow) > 0 && !s.flowErrored {
		s.flowErrored = true
		open := s.flow[0]
		s.flow = nil
		err := &LexError{
			Start: s.lastEnd,
			End:   s.position(),
			Msg:   fmt.Sprintf("unterminated flow collection opened at %d:%d", open.Line, open.Column),
		}
		s.lastEnd = err.End
		return false, err
	}
	return false, nil
}

// scanToken dispatches on the first byte of a token.
func (s *Scanner) scanToken() (bool, error) {
	c := s.text[s.pos]

	switch c {
	case '-':
		if s.atLineStart() && s.hasMarker("---") {
			s.emit(s.marker(token.KindDocumentStart, 3))
			return true, nil
		}
		if s.boundaryAt(s.pos + 1) {
			s.emit(s.marker(token.KindSequenceDash, 1))
			return true, nil
		}
	case '.':
		if s.atLineStart() && s.hasMarker("...") {
			s.emit(s.marker(token.KindDocumentEnd, 3))
			return true, nil
		}
	case ':':
		if s.boundaryAt(s.pos+1) || s.inFlow() {
			s.emit(s.marker(token.KindKeyIndicator, 1))
			return true, nil
		}
	case '[':
		s.flow = append(s.flow, s.position())
		s.emit(s.marker(token.KindFlowSequenceStart, 1))
		return true, nil
	case '{':
		s.flow = append(s.flow, s.position())
		s.emit(s.marker(token.KindFlowMappingStart, 1))
		return true, nil
	case ']', '}':
		if !s.inFlow() {
			return false, s.byteError("unexpected %q outside flow collection", c)
		}
		s.flow = s.flow[:len(s.flow)-1]
		kind := token.KindFlowSequenceEnd
		if c == '}' {
			kind = token.KindFlowMappingEnd
		}
		s.emit(s.marker(kind, 1))
		return true, nil
	case ',':
		if s.inFlow() {
			s.emit(s.marker(token.KindFlowEntry, 1))
			return true, nil
		}
	case '&', '*', '!':
		s.emit(s.scanNodeProperty(c))
		return true, nil
	case '%':
		if s.atLineStart() {
			s.emit(s.scanDirective())
			return true, nil
		}
	case '"', '\'':
		return s.scanQuoted(c)
	}

	s.emit(s.scanPlain())
	return true, nil
}

// scanComment consumes a comment through the end of the line.
func (s *Scanner) scanComment() token.Token {
	start := s.position()
	for s.pos < len(s.text) && s.text[s.pos] != '\n' && s.text[s.pos] != '\r' {
		s.bump()
	}
	return token.Token{Kind: token.KindComment, Start: start, End: s.position()}
}

// scanDirective consumes a %-directive through the end of the line.
func (s *Scanner) scanDirective() token.Token {
	start := s.position()
	for s.pos < len(s.text) && s.text[s.pos] != '\n' && s.text[s.pos] != '\r' {
		s.bump()
	}
	return token.Token{Kind: token.KindDirective, Start: start, End: s.position()}
}

// scanNodeProperty consumes an anchor, alias, or tag.
func (s *Scanner) scanNodeProperty(c byte) token.Token {
	kind := token.KindAnchor
	switch c {
	case '*':
		kind = token.KindAlias
	case '!':
		kind = token.KindTag
	}
	start := s.position()
	s.bump()
	for s.pos < len(s.text) && !s.propertyEnd(s.text[s.pos]) {
		s.bump()
	}
	return token.Token{Kind: kind, Start: start, End: s.position()}
}

// scanQuoted consumes a single- or double-quoted string. Quoted strings may
// span lines. An unterminated string is an error covering the quote through
// end of input.
func (s *Scanner) scanQuoted(quote byte) (bool, error) {
	start := s.position()
	s.bump() // opening quote
	for s.pos < len(s.text) {
		c := s.bump()
		if c == '\\' && quote == '"' && s.pos < len(s.text) {
			s.bump() // escaped character
			continue
		}
		if c == quote {
			if quote == '\'' && s.pos < len(s.text) && s.text[s.pos] == '\'' {
				s.bump() // '' escape inside single-quoted
				continue
			}
			s.emit(token.Token{Kind: token.KindString, Start: start, End: s.position()})
			return true, nil
		}
	}
	err := &LexError{Start: start, End: s.position(), Msg: "unterminated quoted string"}
	s.lastEnd = err.End
	return false, err
}

// scanPlain consumes a plain scalar and classifies it.
func (s *Scanner) scanPlain() token.Token {
	start := s.position()
	for s.pos < len(s.text) {
		c := s.text[s.pos]
		if c == '\n' || c == '\r' {
			break
		}
		if s.inFlow() && (c == ',' || c == '[' || c == ']' || c == '{' || c == '}') {
			break
		}
		if c == ':' && (s.boundaryAt(s.pos+1) || s.inFlow()) {
			break
		}
		if c == '#' && s.pos > 0 && (s.text[s.pos-1] == ' ' || s.text[s.pos-1] == '\t') {
			break
		}
		s.bump()
	}

	raw := s.text[start.Offset:s.pos]
	trimmed := strings.TrimRight(raw, " \t")
	end := token.Position{
		Offset: start.Offset + int64(len(trimmed)),
		Line:   start.Line,
		Column: start.Column + s.mustU32(len(trimmed)),
	}
	return token.Token{Kind: classifyPlain(trimmed), Start: start, End: end}
}

// classifyPlain classifies plain scalar text.
func classifyPlain(text string) token.Kind {
	switch text {
	case "true", "True", "TRUE", "false", "False", "FALSE":
		return token.KindBool
	case "null", "Null", "NULL", "~", "":
		return token.KindNull
	}
	if isNumber(text) {
		return token.KindNumber
	}
	return token.KindScalar
}

// isNumber reports whether text parses as an integer or float literal.
func isNumber(text string) bool {
	if text == "" {
		return false
	}
	c := text[0]
	if c != '+' && c != '-' && c != '.' && (c < '0' || c > '9') {
		return false
	}
	if _, err := strconv.ParseInt(text, 0, 64); err == nil {
		return true
	}
	_, err := strconv.ParseFloat(text, 64)
	return err == nil
}

// tabIndentError reports a run of tab characters used for indentation and
// moves the cursor past the run.
func (s *Scanner) tabIndentError() *LexError {
	start := s.position()
	for s.pos < len(s.text) && s.text[s.pos] == '\t' {
		s.bump()
	}
	err := &LexError{Start: start, End: s.position(), Msg: "tab character used for indentation"}
	s.lastEnd = err.End
	return err
}

// byteError reports a single-byte error and moves the cursor past it.
func (s *Scanner) byteError(format string, c byte) *LexError {
	start := s.position()
	s.bump()
	err := &LexError{Start: start, End: s.position(), Msg: fmt.Sprintf(format, c)}
	s.lastEnd = err.End
	return err
}

// marker builds a token of the given width starting at the cursor and moves
// the cursor past it.
func (s *Scanner) marker(kind token.Kind, width int) token.Token {
	start := s.position()
	for i := 0; i < width; i++ {
		s.bump()
	}
	return token.Token{Kind: kind, Start: start, End: s.position()}
}

// emit records the token as current.
func (s *Scanner) emit(tok token.Token) {
	s.cur = tok
	s.lastEnd = tok.End
}

// bump consumes one byte, updating line tracking.
func (s *Scanner) bump() byte {
	c := s.text[s.pos]
	s.pos++
	if c == '\n' {
		s.line++
		s.lineStart = s.pos
	}
	return c
}

// position returns the position at the cursor.
func (s *Scanner) position() token.Position {
	return token.Position{
		Offset: token.ByteOffset(s.pos),
		Line:   s.line,
		Column: s.mustU32(s.pos - s.lineStart),
	}
}

// mustU32 converts a non-negative int to uint32.
func (s *Scanner) mustU32(v int) uint32 {
	u, err := safecast.Conv[uint32](v)
	if err != nil {
		panic(fmt.Errorf("scanner: column overflow: %w", err))
	}
	return u
}

// inFlow reports whether the cursor is inside an open flow collection.
func (s *Scanner) inFlow() bool {
	return len(s.flow) > 0
}

// atLineStart reports whether the cursor is at column 0.
func (s *Scanner) atLineStart() bool {
	return s.pos == s.lineStart
}

// inIndent reports whether everything before the cursor on this line is
// indentation whitespace.
func (s *Scanner) inIndent() bool {
	for i := s.lineStart; i < s.pos; i++ {
		if s.text[i] != ' ' && s.text[i] != '\t' {
			return false
		}
	}
	return true
}

// hasMarker reports whether a document marker starts at the cursor,
// followed by a token boundary.
func (s *Scanner) hasMarker(marker string) bool {
	return strings.HasPrefix(s.text[s.pos:], marker) && s.boundaryAt(s.pos+len(marker))
}

// boundaryAt reports whether the given offset is a token boundary:
// whitespace, a line break, or end of input.
func (s *Scanner) boundaryAt(off int) bool {
	if off >= len(s.text) {
		return true
	}
	c := s.text[off]
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// propertyEnd reports whether c terminates an anchor, alias, or tag name.
func (s *Scanner) propertyEnd(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', ',', '[', ']', '{', '}', ':':
		return true
	}
	return false
}
