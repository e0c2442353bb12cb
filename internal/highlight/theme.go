package highlight

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/scanline/internal/token"
)

// Theme defines styles for rendering tokens.
type Theme struct {
	// Name is the display name of the theme.
	Name string

	// Default is the style for unmapped kinds and plain text.
	Default tcell.Style

	// Styles maps token kinds to their styles.
	Styles map[token.Kind]tcell.Style
}

// StyleFor returns the style for a given token kind.
func (t *Theme) StyleFor(kind token.Kind) tcell.Style {
	if style, ok := t.Styles[kind]; ok {
		return style
	}
	return t.Default
}

// DefaultDark returns the built-in dark theme.
func DefaultDark() *Theme {
	base := tcell.StyleDefault.
		Foreground(tcell.NewHexColor(0xd4d4d4)).
		Background(tcell.NewHexColor(0x1e1e1e))

	return &Theme{
		Name:    "Default Dark",
		Default: base,
		Styles: map[token.Kind]tcell.Style{
			token.KindComment:           base.Foreground(tcell.NewHexColor(0x6a9955)),
			token.KindDocumentStart:     base.Foreground(tcell.NewHexColor(0x808080)),
			token.KindDocumentEnd:       base.Foreground(tcell.NewHexColor(0x808080)),
			token.KindDirective:         base.Foreground(tcell.NewHexColor(0xc586c0)),
			token.KindKeyIndicator:      base.Foreground(tcell.NewHexColor(0xd4d4d4)),
			token.KindSequenceDash:      base.Foreground(tcell.NewHexColor(0xd4d4d4)),
			token.KindFlowSequenceStart: base.Foreground(tcell.NewHexColor(0xffd700)),
			token.KindFlowSequenceEnd:   base.Foreground(tcell.NewHexColor(0xffd700)),
			token.KindFlowMappingStart:  base.Foreground(tcell.NewHexColor(0xffd700)),
			token.KindFlowMappingEnd:    base.Foreground(tcell.NewHexColor(0xffd700)),
			token.KindFlowEntry:         base.Foreground(tcell.NewHexColor(0xd4d4d4)),
			token.KindAnchor:            base.Foreground(tcell.NewHexColor(0x4ec9b0)),
			token.KindAlias:             base.Foreground(tcell.NewHexColor(0x4ec9b0)),
			token.KindTag:               base.Foreground(tcell.NewHexColor(0xc586c0)),
			token.KindScalar:            base.Foreground(tcell.NewHexColor(0x9cdcfe)),
			token.KindString:            base.Foreground(tcell.NewHexColor(0xce9178)),
			token.KindNumber:            base.Foreground(tcell.NewHexColor(0xb5cea8)),
			token.KindBool:              base.Foreground(tcell.NewHexColor(0x569cd6)),
			token.KindNull:              base.Foreground(tcell.NewHexColor(0x569cd6)),
			token.KindError:             base.Foreground(tcell.NewHexColor(0xf44747)).Underline(true),
		},
	}
}

// Light returns the built-in light theme.
func Light() *Theme {
	base := tcell.StyleDefault.
		Foreground(tcell.NewHexColor(0x000000)).
		Background(tcell.NewHexColor(0xffffff))

	return &Theme{
		Name:    "Light",
		Default: base,
		Styles: map[token.Kind]tcell.Style{
			token.KindComment: base.Foreground(tcell.NewHexColor(0x008000)),
			token.KindScalar:  base.Foreground(tcell.NewHexColor(0x001080)),
			token.KindString:  base.Foreground(tcell.NewHexColor(0xa31515)),
			token.KindNumber:  base.Foreground(tcell.NewHexColor(0x098658)),
			token.KindBool:    base.Foreground(tcell.NewHexColor(0x0000ff)),
			token.KindNull:    base.Foreground(tcell.NewHexColor(0x0000ff)),
			token.KindError:   base.Foreground(tcell.NewHexColor(0xcd3131)).Underline(true),
		},
	}
}

// builtin maps theme names to constructors.
var builtin = map[string]func() *Theme{
	"default-dark": DefaultDark,
	"light":        Light,
}

// ByName returns a built-in theme.
func ByName(name string) (*Theme, bool) {
	ctor, ok := builtin[name]
	if !ok {
		return nil, false
	}
	return ctor(), true
}
