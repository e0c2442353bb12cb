package scanner

import (
	"errors"
	"testing"

	"github.com/dshills/scanline/internal/token"
)

// scan drains the scanner, collecting tokens and errors in stream order.
func scan(t *testing.T, text string, opts Options) ([]token.Token, []*LexError) {
	t.Helper()
	s := New(text, opts)

	var tokens []token.Token
	var lexErrs []*LexError
	for {
		ok, err := s.Advance()
		if err != nil {
			var lexErr *LexError
			if !errors.As(err, &lexErr) {
				t.Fatalf("Advance() returned non-LexError: %v", err)
			}
			lexErrs = append(lexErrs, lexErr)
			continue
		}
		if !ok {
			return tokens, lexErrs
		}
		tokens = append(tokens, s.Current())
	}
}

func TestScanBlockMapping(t *testing.T) {
	tokens, lexErrs := scan(t, "name: scanline\ncount: 3\n", Options{})
	if len(lexErrs) != 0 {
		t.Fatalf("unexpected errors: %v", lexErrs)
	}

	want := []struct {
		kind       token.Kind
		start, end token.ByteOffset
	}{
		{token.KindScalar, 0, 4},         // name
		{token.KindKeyIndicator, 4, 5},   // :
		{token.KindScalar, 6, 14},        // scanline
		{token.KindScalar, 15, 20},       // count
		{token.KindKeyIndicator, 20, 21}, // :
		{token.KindNumber, 22, 23},       // 3
	}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(tokens), len(want), tokens)
	}
	for i, w := range want {
		got := tokens[i]
		if got.Kind != w.kind || got.Start.Offset != w.start || got.End.Offset != w.end {
			t.Errorf("token %d = %v, want %v[%d,%d)", i, got, w.kind, w.start, w.end)
		}
	}
}

func TestScanKinds(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []token.Kind
	}{
		{
			"sequence",
			"- one\n- 2\n",
			[]token.Kind{token.KindSequenceDash, token.KindScalar, token.KindSequenceDash, token.KindNumber},
		},
		{
			"flow sequence",
			"[1, two]",
			[]token.Kind{token.KindFlowSequenceStart, token.KindNumber, token.KindFlowEntry, token.KindScalar, token.KindFlowSequenceEnd},
		},
		{
			"flow mapping",
			"{a: 1}",
			[]token.Kind{token.KindFlowMappingStart, token.KindScalar, token.KindKeyIndicator, token.KindNumber, token.KindFlowMappingEnd},
		},
		{
			"document markers",
			"---\nkey: val\n...\n",
			[]token.Kind{token.KindDocumentStart, token.KindScalar, token.KindKeyIndicator, token.KindScalar, token.KindDocumentEnd},
		},
		{
			"directive",
			"%YAML 1.2\n---\n",
			[]token.Kind{token.KindDirective, token.KindDocumentStart},
		},
		{
			"anchor and alias",
			"base: &anchor 1\nref: *anchor\n",
			[]token.Kind{token.KindScalar, token.KindKeyIndicator, token.KindAnchor, token.KindNumber, token.KindScalar, token.KindKeyIndicator, token.KindAlias},
		},
		{
			"tag",
			"key: !!str value\n",
			[]token.Kind{token.KindScalar, token.KindKeyIndicator, token.KindTag, token.KindScalar},
		},
		{
			"quoted strings",
			`a: "double" # c` + "\nb: 'single'\n",
			[]token.Kind{token.KindScalar, token.KindKeyIndicator, token.KindString, token.KindScalar, token.KindKeyIndicator, token.KindString},
		},
		{
			"booleans and null",
			"a: true\nb: False\nc: ~\n",
			[]token.Kind{token.KindScalar, token.KindKeyIndicator, token.KindBool, token.KindScalar, token.KindKeyIndicator, token.KindBool, token.KindScalar, token.KindKeyIndicator, token.KindNull},
		},
		{
			"numbers",
			"a: -1\nb: 3.14\nc: 0x1f\n",
			[]token.Kind{token.KindScalar, token.KindKeyIndicator, token.KindNumber, token.KindScalar, token.KindKeyIndicator, token.KindNumber, token.KindScalar, token.KindKeyIndicator, token.KindNumber},
		},
		{
			"plain scalar with colon",
			"url: http://example.com\n",
			[]token.Kind{token.KindScalar, token.KindKeyIndicator, token.KindScalar},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, lexErrs := scan(t, tt.input, Options{})
			if len(lexErrs) != 0 {
				t.Fatalf("unexpected errors: %v", lexErrs)
			}
			if len(tokens) != len(tt.want) {
				t.Fatalf("got %d tokens %v, want kinds %v", len(tokens), tokens, tt.want)
			}
			for i, k := range tt.want {
				if tokens[i].Kind != k {
					t.Errorf("token %d = %v, want %v", i, tokens[i], k)
				}
			}
		})
	}
}

func TestScanComments(t *testing.T) {
	input := "# header\nkey: 1 # trailing\n"

	tokens, _ := scan(t, input, Options{})
	for _, tok := range tokens {
		if tok.Kind == token.KindComment {
			t.Errorf("comment token %v present without RetainComments", tok)
		}
	}

	tokens, _ = scan(t, input, Options{RetainComments: true})
	var comments []token.Token
	for _, tok := range tokens {
		if tok.Kind == token.KindComment {
			comments = append(comments, tok)
		}
	}
	if len(comments) != 2 {
		t.Fatalf("got %d comment tokens, want 2: %v", len(comments), tokens)
	}
	if comments[0].Start.Offset != 0 || comments[0].End.Offset != 8 {
		t.Errorf("header comment span = %v, want [0,8)", comments[0])
	}
}

func TestScanUnterminatedFlow(t *testing.T) {
	tokens, lexErrs := scan(t, "b: [2, 3\n", Options{})

	if len(tokens) != 6 {
		t.Fatalf("got %d tokens, want 6: %v", len(tokens), tokens)
	}
	if len(lexErrs) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(lexErrs), lexErrs)
	}

	lexErr := lexErrs[0]
	// The error covers the unscanned tail, starting where the last token
	// ended, and never overlaps tokens already produced.
	if last := tokens[len(tokens)-1]; lexErr.Start.Offset < last.End.Offset {
		t.Errorf("error start %d precedes last token end %d", lexErr.Start.Offset, last.End.Offset)
	}
	if lexErr.End.Offset != 9 {
		t.Errorf("error end = %d, want end of input 9", lexErr.End.Offset)
	}
}

func TestScanUnterminatedString(t *testing.T) {
	tokens, lexErrs := scan(t, `a: "oops`, Options{})

	if len(tokens) != 2 {
		t.Fatalf("got %d tokens, want 2: %v", len(tokens), tokens)
	}
	if len(lexErrs) != 1 {
		t.Fatalf("got %d errors, want 1", len(lexErrs))
	}
	if lexErrs[0].Start.Offset != 3 || lexErrs[0].End.Offset != 8 {
		t.Errorf("error span = [%d,%d), want [3,8)", lexErrs[0].Start.Offset, lexErrs[0].End.Offset)
	}
}

func TestScanTabIndentation(t *testing.T) {
	tokens, lexErrs := scan(t, "\t\tkey: 1\n", Options{})

	if len(lexErrs) != 1 {
		t.Fatalf("got %d errors, want 1", len(lexErrs))
	}
	if lexErrs[0].Start.Offset != 0 || lexErrs[0].End.Offset != 2 {
		t.Errorf("error span = [%d,%d), want [0,2) covering the tab run", lexErrs[0].Start.Offset, lexErrs[0].End.Offset)
	}
	// Scanning resumed past the tabs.
	if len(tokens) != 3 || tokens[0].Start.Offset != 2 {
		t.Errorf("tokens after recovery = %v, want key/:/1 from offset 2", tokens)
	}
}

func TestScanUnexpectedCloser(t *testing.T) {
	tokens, lexErrs := scan(t, "]\nok: 1\n", Options{})

	if len(lexErrs) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(lexErrs), lexErrs)
	}
	if lexErrs[0].Start.Offset != 0 || lexErrs[0].End.Offset != 1 {
		t.Errorf("error span = [%d,%d), want [0,1)", lexErrs[0].Start.Offset, lexErrs[0].End.Offset)
	}
	if len(tokens) != 3 {
		t.Errorf("tokens after recovery = %v, want 3", tokens)
	}
}

func TestScanMultilineString(t *testing.T) {
	tokens, lexErrs := scan(t, "a: \"one\ntwo\"\nb: 1\n", Options{})
	if len(lexErrs) != 0 {
		t.Fatalf("unexpected errors: %v", lexErrs)
	}

	str := tokens[2]
	if str.Kind != token.KindString {
		t.Fatalf("token 2 = %v, want string", str)
	}
	if str.Start.Line != 0 || str.End.Line != 1 {
		t.Errorf("string spans lines %d..%d, want 0..1", str.Start.Line, str.End.Line)
	}
	if tokens[3].Start.Line != 2 {
		t.Errorf("token after multi-line string on line %d, want 2", tokens[3].Start.Line)
	}
}

func TestScanPositions(t *testing.T) {
	tokens, _ := scan(t, "ab: 1\n  cd: 2\n", Options{})

	cd := tokens[3]
	if cd.Start.Line != 1 || cd.Start.Column != 2 {
		t.Errorf("cd starts at %d:%d, want 1:2", cd.Start.Line, cd.Start.Column)
	}
	if cd.Start.Offset != 8 {
		t.Errorf("cd offset = %d, want 8", cd.Start.Offset)
	}
}

func TestScanEmptyInput(t *testing.T) {
	s := New("", Options{})
	ok, err := s.Advance()
	if ok || err != nil {
		t.Errorf("Advance() on empty input = (%v, %v), want (false, nil)", ok, err)
	}
	// Repeated calls stay at end of input.
	ok, err = s.Advance()
	if ok || err != nil {
		t.Errorf("second Advance() = (%v, %v), want (false, nil)", ok, err)
	}
}
