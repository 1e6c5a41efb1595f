package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/mkallio/moodlens/internal/analysis"
	"github.com/mkallio/moodlens/internal/config"
	"github.com/mkallio/moodlens/internal/logging"
	"github.com/mkallio/moodlens/internal/watch"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fatal("load config: %v", err)
	}

	log := logging.New(hasFlag(os.Args[2:], "--verbose"))
	defer log.Sync()

	switch os.Args[1] {
	case "analyze":
		if len(os.Args) < 3 || strings.HasPrefix(os.Args[2], "-") {
			fatal("usage: mood analyze <input.txt|input.csv> [--out <dir>] [--no-topics] [--csv]")
		}
		opts := runOptions(os.Args[2], os.Args[3:])
		r, err := analysis.Run(context.Background(), cfg, opts, log)
		if err != nil {
			fatal("analyze: %v", err)
		}
		fmt.Print(r.Report)

	case "watch":
		if len(os.Args) < 3 || strings.HasPrefix(os.Args[2], "-") {
			fatal("usage: mood watch <input.txt|input.csv> [--out <dir>] [--no-topics] [--csv]")
		}
		opts := runOptions(os.Args[2], os.Args[3:])

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		err := watch.Watch(ctx, opts.Input, func() {
			if _, err := analysis.Run(ctx, cfg, opts, log); err != nil {
				fmt.Fprintf(os.Stderr, "mood: analyze: %v\n", err)
			}
		})
		if err != nil && err != context.Canceled {
			fatal("watch: %v", err)
		}

	case "sample":
		opts := runOptions("", os.Args[2:])
		r, err := analysis.Run(context.Background(), cfg, opts, log)
		if err != nil {
			fatal("sample: %v", err)
		}
		fmt.Print(r.Report)

	case "init":
		path, err := config.WriteDefault(cfg.OutputDir)
		if err != nil {
			fatal("init: %v", err)
		}
		fmt.Printf("wrote %s\n", path)

	case "version":
		fmt.Printf("mood v%s (moodlens)\n", version)

	case "help", "--help", "-h":
		usage()

	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", os.Args[1])
		usage()
		os.Exit(1)
	}
}

func runOptions(input string, args []string) analysis.Options {
	return analysis.Options{
		Input:    input,
		OutDir:   flagValue(args, "--out"),
		NoTopics: hasFlag(args, "--no-topics"),
		CSV:      hasFlag(args, "--csv"),
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `mood v%s — sentiment and narrative analytics for short-text corpora

Usage:
  mood analyze <input>    Analyze a corpus (one text per line, or a CSV
                          with a text column and optional labels)
  mood watch <input>      Re-analyze whenever the input file changes
  mood sample             Analyze the built-in demo dataset
  mood init               Write a default config file
  mood version            Print version
  mood help               Show this help

Flags for analyze/watch/sample:
  --out <dir>             Write artifacts to <dir> instead of output_dir
  --no-topics             Skip topic modeling
  --csv                   Also write documents.csv and narratives.csv
  --verbose               Debug logging

Configuration: ~/.config/moodlens/config.toml
Classification needs an API key in the configured env var (default OPENAI_API_KEY);
pre-labeled CSV input works fully offline.
`, version)
}

func flagValue(args []string, flag string) string {
	for i, a := range args {
		if a == flag && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

func hasFlag(args []string, flag string) bool {
	for _, a := range args {
		if a == flag {
			return true
		}
	}
	return false
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "mood: "+format+"\n", args...)
	os.Exit(1)
}
