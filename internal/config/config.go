package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config is the top-level scanline configuration.
type Config struct {
	Scanner ScannerConfig `toml:"scanner"`
	View    ViewConfig    `toml:"view"`
	Watch   WatchConfig   `toml:"watch"`
}

// ScannerConfig configures scanner construction.
type ScannerConfig struct {
	// RetainComments keeps comment tokens in the token stream.
	RetainComments bool `toml:"retain_comments"`
}

// ViewConfig configures the terminal viewer.
type ViewConfig struct {
	// Theme is a built-in theme name or a path to a YAML theme file.
	Theme string `toml:"theme"`
}

// WatchConfig configures the file watcher.
type WatchConfig struct {
	// DebounceMS coalesces bursts of file events within this window.
	DebounceMS int `toml:"debounce_ms"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Scanner: ScannerConfig{RetainComments: false},
		View:    ViewConfig{Theme: "default-dark"},
		Watch:   WatchConfig{DebounceMS: 100},
	}
}

// Load reads configuration from path, layered over the defaults.
// A missing file is not an error; it yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks configuration values.
func (c Config) Validate() error {
	if c.View.Theme == "" {
		return fmt.Errorf("view.theme must not be empty")
	}
	if c.Watch.DebounceMS < 0 {
		return fmt.Errorf("watch.debounce_ms must not be negative, got %d", c.Watch.DebounceMS)
	}
	return nil
}
