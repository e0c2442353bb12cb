package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dshills/scanline/internal/config"
	"github.com/dshills/scanline/internal/engine/buffer"
	"github.com/dshills/scanline/internal/engine/cache"
	"github.com/dshills/scanline/internal/scanner"
	"github.com/dshills/scanline/internal/token"
)

func newTokensCmd(loadCfg func() (config.Config, error)) *cobra.Command {
	var rangeSpec string
	var keepComments bool

	cmd := &cobra.Command{
		Use:   "tokens <file>",
		Short: "Print the token stream for a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadCfg()
			if err != nil {
				return err
			}
			if keepComments {
				cfg.Scanner.RetainComments = true
			}
			return runTokens(cmd, args[0], rangeSpec, cfg)
		},
	}

	cmd.Flags().StringVar(&rangeSpec, "range", "", "byte range start:end to query instead of the full stream")
	cmd.Flags().BoolVar(&keepComments, "keep-comments", false, "retain comment tokens")
	return cmd
}

func runTokens(cmd *cobra.Command, path, rangeSpec string, cfg config.Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	buf := buffer.New(string(data))
	snap := buf.Snapshot()
	c := cache.New(buf, scanner.Options{RetainComments: cfg.Scanner.RetainComments})

	var it *cache.TokenIterator
	if rangeSpec != "" {
		start, end, err := parseRange(rangeSpec)
		if err != nil {
			return err
		}
		it = c.TokensInRange(start, end)
	} else {
		it = c.AllTokens()
	}

	out := cmd.OutOrStdout()
	count := 0
	for it.Next() {
		tok := it.Token()
		text := snap.TextRange(tok.Start.Offset, tok.End.Offset)
		fmt.Fprintf(out, "%4d:%-3d [%4d,%4d) %s %s\n",
			tok.Start.Line, tok.Start.Column,
			tok.Start.Offset, tok.End.Offset,
			colorFor(tok.Kind).Sprintf("%-19s", tok.Kind),
			strconv.Quote(text))
		count++
	}

	stats := c.Stats()
	faint := color.New(color.Faint)
	faint.Fprintf(out, "%d tokens, %d errors", count, stats.Errors)
	if stats.Truncated {
		color.New(color.FgRed).Fprintf(out, " (truncated at error ceiling)")
	}
	fmt.Fprintln(out)
	return nil
}

// parseRange parses a "start:end" byte range.
func parseRange(spec string) (start, end buffer.ByteOffset, err error) {
	parts := strings.SplitN(spec, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid range %q: want start:end", spec)
	}
	start, err = strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid range start %q: %w", parts[0], err)
	}
	end, err = strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid range end %q: %w", parts[1], err)
	}
	if start < 0 || start > end {
		return 0, 0, fmt.Errorf("invalid range %q: start must satisfy 0 <= start <= end", spec)
	}
	return start, end, nil
}

// colorFor maps token kinds to output colors.
func colorFor(kind token.Kind) *color.Color {
	switch {
	case kind == token.KindError:
		return color.New(color.FgRed, color.Bold)
	case kind == token.KindComment:
		return color.New(color.FgGreen)
	case kind == token.KindString:
		return color.New(color.FgYellow)
	case kind == token.KindNumber, kind == token.KindBool, kind == token.KindNull:
		return color.New(color.FgCyan)
	case kind.IsStructure():
		return color.New(color.FgMagenta)
	default:
		return color.New(color.FgBlue)
	}
}
