// Command mediastamp is the CLI entrypoint for the MediaStamp batch renamer.
//
// It parses flags, validates configuration, and either runs system
// diagnostics (--check), a read-only analysis table (--analyze), or the
// rename pipeline over a single directory of media files.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/backmassage/mediastamp/internal/check"
	"github.com/backmassage/mediastamp/internal/config"
	"github.com/backmassage/mediastamp/internal/display"
	"github.com/backmassage/mediastamp/internal/logging"
	"github.com/backmassage/mediastamp/internal/pipeline"
)

// version and commit are injected at build time via -ldflags.
// When built with plain "go build" (no make), these retain their defaults.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Phase 1: Bootstrap. The logger doesn't exist yet, so errors go
	// directly to stderr via fmt. Once NewLogger succeeds, all output
	// goes through the logger for consistent formatting and log-file capture.
	cfg := config.DefaultConfig()
	cfg.MetadataDevice = true
	if err := config.ParseFlags(&cfg, "mediastamp", version, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "mediastamp: %v\n", err)
		return 1
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "mediastamp: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mediastamp: %v\n", err)
		return 1
	}
	defer log.Close()

	// Phase 2: Logger available. All output goes through log from here on.
	display.PrintBanner()

	if cfg.CheckOnly {
		return check.RunCheck(&cfg, log)
	}

	// Renames happen in place inside a single directory, which must exist.
	abs, err := filepath.Abs(cfg.Dir)
	if err != nil {
		log.Error("Not a directory: %s", cfg.Dir)
		return 1
	}
	if fi, err := os.Stat(abs); err != nil || !fi.IsDir() {
		log.Error("Not a directory: %s", cfg.Dir)
		return 1
	}
	cfg.Dir = abs

	log.Info("=== MediaStamp v%s (%s) ===", version, commit)
	log.Info("Dir:  %s", cfg.Dir)
	log.Info("Zone: %s", cfg.Location)
	if cfg.DryRun {
		log.Warn("DRY RUN: no files will be renamed")
	}
	for _, w := range check.MissingTools(&cfg) {
		log.Warn("%s", w)
	}
	log.Info("")

	// Phase 3: Signal handling. Cancel context on SIGINT/SIGTERM so the
	// pipeline stops between files instead of mid-rename.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn("Received interrupt, finishing current file")
		cancel()
	}()

	// Phase 4: Run the read-only analysis or the rename pipeline.
	if cfg.Analyze {
		if err := pipeline.Analyze(ctx, &cfg, log); err != nil {
			log.Error("%v", err)
			return 1
		}
		return 0
	}

	stats, err := pipeline.Run(ctx, &cfg, log)
	if err != nil {
		log.Error("%v", err)
		return 1
	}
	if stats.Failed > 0 {
		return 1
	}
	return 0
}
