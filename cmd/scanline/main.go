// Package main is the entry point for the scanline CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dshills/scanline/internal/config"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "scanline",
		Short:         "Incremental token cache for YAML-flavored text",
		Long:          "scanline tokenizes versioned text lazily, caching tokens per buffer revision\nand recovering from malformed input with synthetic error tokens.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")

	loadCfg := func() (config.Config, error) {
		path := configPath
		if path == "" {
			path = defaultConfigPath()
		}
		return config.Load(path)
	}

	root.AddCommand(
		newTokensCmd(loadCfg),
		newViewCmd(loadCfg),
		newWatchCmd(loadCfg),
		newVersionCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "scanline %s (%s)\n", version, commit)
		},
	}
}

// defaultConfigPath returns the per-user config file location.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "scanline.toml"
	}
	return filepath.Join(dir, "scanline", "scanline.toml")
}
