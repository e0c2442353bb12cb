package main

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/dshills/scanline/internal/config"
	"github.com/dshills/scanline/internal/engine/buffer"
	"github.com/dshills/scanline/internal/engine/cache"
	"github.com/dshills/scanline/internal/highlight"
	"github.com/dshills/scanline/internal/scanner"
)

func newViewCmd(loadCfg func() (config.Config, error)) *cobra.Command {
	var themeName string

	cmd := &cobra.Command{
		Use:   "view <file>",
		Short: "View a file with cache-driven highlighting",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			cfg, err := loadCfg()
			if err != nil {
				return err
			}
			if themeName != "" {
				cfg.View.Theme = themeName
			}
			return runView(args[0], cfg)
		},
	}

	cmd.Flags().StringVar(&themeName, "theme", "", "built-in theme name or path to a YAML theme file")
	return cmd
}

func runView(path string, cfg config.Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	theme, err := resolveTheme(cfg.View.Theme)
	if err != nil {
		return err
	}

	buf := buffer.New(string(data))
	c := cache.New(buf, scanner.Options{RetainComments: cfg.Scanner.RetainComments})

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()

	view := &fileView{screen: screen, buf: buf, cache: c, theme: theme}
	view.draw()

	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
			view.draw()
		case *tcell.EventKey:
			if view.handleKey(ev) {
				return nil
			}
			view.draw()
		}
	}
}

// resolveTheme interprets the setting as a built-in name first, then as a
// theme file path.
func resolveTheme(name string) (*highlight.Theme, error) {
	if theme, ok := highlight.ByName(name); ok {
		return theme, nil
	}
	return highlight.LoadTheme(name)
}

// fileView renders a buffer through the token cache.
type fileView struct {
	screen tcell.Screen
	buf    *buffer.Buffer
	cache  *cache.TokenCache
	theme  *highlight.Theme
	top    uint32
}

// handleKey processes a key event. Returns true to quit.
func (v *fileView) handleKey(ev *tcell.EventKey) bool {
	_, height := v.screen.Size()
	page := uint32(1)
	if height > 1 {
		page = uint32(height - 1)
	}

	switch {
	case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q':
		return true
	case ev.Key() == tcell.KeyUp || ev.Rune() == 'k':
		v.scroll(-1)
	case ev.Key() == tcell.KeyDown || ev.Rune() == 'j':
		v.scroll(1)
	case ev.Key() == tcell.KeyPgUp:
		v.scroll(-int(page))
	case ev.Key() == tcell.KeyPgDn:
		v.scroll(int(page))
	case ev.Rune() == 'g':
		v.top = 0
	}
	return false
}

// scroll moves the viewport, clamped to the buffer.
func (v *fileView) scroll(delta int) {
	lines := v.buf.Snapshot().LineCount()
	next := int64(v.top) + int64(delta)
	if next < 0 {
		next = 0
	}
	if max := int64(lines) - 1; next > max {
		next = max
	}
	v.top = uint32(next)
}

// draw renders the visible lines, styling each byte by the token covering it.
func (v *fileView) draw() {
	v.screen.Clear()
	width, height := v.screen.Size()
	snap := v.buf.Snapshot()

	for row := 0; row < height; row++ {
		line := v.top + uint32(row)
		if line >= snap.LineCount() {
			break
		}

		start := snap.LineStartOffset(line)
		end := snap.LineEndOffset(line)
		text := snap.TextRange(start, end)

		styles := make([]tcell.Style, len(text))
		for i := range styles {
			styles[i] = v.theme.Default
		}
		it := v.cache.TokensInRange(start, end)
		for it.Next() {
			tok := it.Token()
			style := v.theme.StyleFor(tok.Kind)
			for i := range styles {
				if tok.Contains(start + buffer.ByteOffset(i)) {
					styles[i] = style
				}
			}
		}

		col := 0
		for i := 0; i < len(text) && col < width; {
			r, size := utf8.DecodeRuneInString(text[i:])
			v.screen.SetContent(col, row, r, nil, styles[i])
			i += size
			col++
		}
	}

	v.screen.Show()
}
