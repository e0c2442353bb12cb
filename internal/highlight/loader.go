package highlight

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"gopkg.in/yaml.v3"

	"github.com/dshills/scanline/internal/token"
)

// themeFile is the on-disk YAML shape of a theme.
type themeFile struct {
	Name       string            `yaml:"name"`
	Foreground string            `yaml:"foreground"`
	Background string            `yaml:"background"`
	Colors     map[string]string `yaml:"colors"`
}

// LoadTheme reads a theme from a YAML file. Colors are hex strings
// ("#rrggbb") or W3C color names; keys of the colors table are token kind
// names as reported by token.Kind.String.
func LoadTheme(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme: %w", err)
	}
	return ParseTheme(data)
}

// ParseTheme parses YAML theme data.
func ParseTheme(data []byte) (*Theme, error) {
	var file themeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse theme: %w", err)
	}
	if file.Name == "" {
		return nil, fmt.Errorf("parse theme: missing name")
	}

	base := tcell.StyleDefault
	if file.Foreground != "" {
		base = base.Foreground(tcell.GetColor(file.Foreground))
	}
	if file.Background != "" {
		base = base.Background(tcell.GetColor(file.Background))
	}

	theme := &Theme{
		Name:    file.Name,
		Default: base,
		Styles:  make(map[token.Kind]tcell.Style, len(file.Colors)),
	}
	for name, color := range file.Colors {
		kind := token.KindFromString(name)
		if kind == token.KindNone {
			return nil, fmt.Errorf("parse theme: unknown token kind %q", name)
		}
		theme.Styles[kind] = base.Foreground(tcell.GetColor(color))
	}
	return theme, nil
}
