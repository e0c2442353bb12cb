package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/dshills/scanline/internal/config"
	"github.com/dshills/scanline/internal/engine/buffer"
	"github.com/dshills/scanline/internal/engine/cache"
	"github.com/dshills/scanline/internal/engine/change"
	"github.com/dshills/scanline/internal/scanner"
)

func newWatchCmd(loadCfg func() (config.Config, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "watch <file>",
		Short: "Watch a file and report token changes on every write",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			cfg, err := loadCfg()
			if err != nil {
				return err
			}
			return runWatch(args[0], cfg)
		},
	}
}

func runWatch(path string, cfg config.Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	buf := buffer.New(string(data))
	c := cache.New(buf, scanner.Options{RetainComments: cfg.Scanner.RetainComments})
	coord := change.NewCoordinator(buf, c)

	if _, err := coord.Subscribe(func(e change.TokensChangedEvent) {
		count := 0
		for it := c.TokensInRange(e.Span.Start, e.Span.End()); it.Next(); {
			count++
		}
		fmt.Printf("%s rev=%d span=[%d,%d) tokens=%d errors=%d\n",
			color.New(color.FgCyan).Sprint("changed"),
			e.Revision, e.Span.Start, e.Span.End(), count, c.ErrorCount())
	}); err != nil {
		return err
	}

	// Watch the directory: editors typically replace files on save, which
	// drops a watch registered on the file itself.
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(path), err)
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	// Token count of the initial state.
	fmt.Printf("watching %s (%d tokens)\n", path, len(c.AllTokens().Collect()))

	debounce := time.Duration(cfg.Watch.DebounceMS) * time.Millisecond
	var pending *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-signals:
			return nil
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "watch error: %v\n", err)
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(ev.Name) != filepath.Base(path) {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			// Coalesce bursts: editors often emit several events per save.
			if pending == nil {
				pending = time.NewTimer(debounce)
				fire = pending.C
			} else {
				pending.Reset(debounce)
			}
		case <-fire:
			pending = nil
			fire = nil
			if err := reload(path, buf, coord); err != nil {
				fmt.Fprintf(os.Stderr, "reload error: %v\n", err)
			}
		}
	}
}

// reload reads the file, applies the minimal replacing edit to the buffer,
// and routes the resulting notification through the coordinator.
func reload(path string, buf *buffer.Buffer, coord *change.Coordinator) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	newText := string(data)
	oldText := buf.Text()
	if newText == oldText {
		return nil
	}

	start, oldEnd, replacement := diffEdit(oldText, newText)
	note, err := buf.Replace(start, oldEnd, replacement)
	if err != nil {
		return err
	}
	return coord.OnBufferChanged(note)
}

// diffEdit computes the minimal single replacing edit turning oldText into
// newText: the differing middle after trimming the common prefix and suffix.
func diffEdit(oldText, newText string) (start, oldEnd buffer.ByteOffset, replacement string) {
	prefix := 0
	for prefix < len(oldText) && prefix < len(newText) && oldText[prefix] == newText[prefix] {
		prefix++
	}

	suffix := 0
	for suffix < len(oldText)-prefix && suffix < len(newText)-prefix &&
		oldText[len(oldText)-1-suffix] == newText[len(newText)-1-suffix] {
		suffix++
	}

	return buffer.ByteOffset(prefix),
		buffer.ByteOffset(len(oldText) - suffix),
		newText[prefix : len(newText)-suffix]
}
