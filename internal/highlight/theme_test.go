package highlight

import (
	"testing"

	"github.com/dshills/scanline/internal/token"
)

func TestDefaultDarkStyleFor(t *testing.T) {
	theme := DefaultDark()

	if theme.Name != "Default Dark" {
		t.Errorf("Name = %q, want 'Default Dark'", theme.Name)
	}
	if theme.StyleFor(token.KindComment) == theme.Default {
		t.Error("comment kind should have its own style")
	}
	// Unmapped kinds fall back to the default style.
	if theme.StyleFor(token.KindNone) != theme.Default {
		t.Error("unmapped kind should use the default style")
	}
}

func TestByName(t *testing.T) {
	if _, ok := ByName("default-dark"); !ok {
		t.Error("default-dark should be a built-in theme")
	}
	if _, ok := ByName("light"); !ok {
		t.Error("light should be a built-in theme")
	}
	if _, ok := ByName("no-such-theme"); ok {
		t.Error("unknown theme name should not resolve")
	}
}

func TestParseTheme(t *testing.T) {
	data := []byte(`
name: test-theme
foreground: "#d4d4d4"
background: "#101010"
colors:
  comment: "#00ff00"
  string: "#ff8800"
  error: "#ff0000"
`)

	theme, err := ParseTheme(data)
	if err != nil {
		t.Fatalf("ParseTheme() error: %v", err)
	}
	if theme.Name != "test-theme" {
		t.Errorf("Name = %q, want test-theme", theme.Name)
	}
	if len(theme.Styles) != 3 {
		t.Errorf("got %d styles, want 3", len(theme.Styles))
	}
	if theme.StyleFor(token.KindComment) == theme.Default {
		t.Error("comment should have a mapped style")
	}
	if theme.StyleFor(token.KindNumber) != theme.Default {
		t.Error("unmapped number kind should fall back to default")
	}
}

func TestParseThemeErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid yaml", "name: [unclosed"},
		{"missing name", "colors:\n  comment: \"#fff\"\n"},
		{"unknown kind", "name: x\ncolors:\n  nonsense: \"#fff\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseTheme([]byte(tt.data)); err == nil {
				t.Error("ParseTheme() should return an error")
			}
		})
	}
}
