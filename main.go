package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"tasktree/pkg/config"
	"tasktree/pkg/demo"
	"tasktree/pkg/tasktree"
)

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("tasktree", flag.ContinueOnError)
	plain := fs.Bool("plain", false, "disable colored glyphs")
	interval := fs.Duration("interval", 0, "spinner frame delay, overrides the config file")
	verbose := fs.Bool("verbose", false, "log pipeline details to stderr")
	tamper := fs.Bool("fail", false, "corrupt the payload to demonstrate failure output")
	saveCfg := fs.Bool("save-config", false, "write the effective settings to the config file and exit")
	if err := fs.Parse(args); err != nil {
		return err
	}

	// Log lines would tear the animation on stdout, so they go to stderr
	// when asked for and nowhere otherwise.
	if *verbose {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	} else {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	}

	settings, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	if *plain {
		settings.Plain = true
	}
	if *interval > 0 {
		settings.IntervalMS = int(*interval / time.Millisecond)
	}

	if *saveCfg {
		if err := settings.Save(); err != nil {
			return fmt.Errorf("error saving config: %w", err)
		}
		fmt.Println("Saved", config.Path())
		return nil
	}

	theme := tasktree.DefaultTheme()
	if settings.Plain {
		theme = tasktree.PlainTheme()
	}
	tree := tasktree.NewWriter(os.Stdout, theme)
	tree.SetInterval(settings.Interval())

	workdir, err := os.MkdirTemp("", "tasktree-demo-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(workdir)

	return demo.Run(ctx, tree, workdir, demo.Options{Tamper: *tamper})
}
