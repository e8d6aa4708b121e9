// Command videostamp is the videos-only variant of the MediaStamp renamer.
//
// It handles .mov and .mp4 files and classifies the device purely from
// the file extension, with no exiftool dependency. Everything else
// (timestamps, collisions, dry-run) works like mediastamp.
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
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.DefaultConfig()
	cfg.VideosOnly = true
	cfg.MetadataDevice = false
	if err := config.ParseFlags(&cfg, "videostamp", version, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "videostamp: %v\n", err)
		return 1
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "videostamp: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "videostamp: %v\n", err)
		return 1
	}
	defer log.Close()

	display.PrintBanner()

	if cfg.CheckOnly {
		return check.RunCheck(&cfg, log)
	}

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

	log.Info("=== VideoStamp v%s (%s) ===", version, commit)
	log.Info("Dir:  %s", cfg.Dir)
	log.Info("Zone: %s", cfg.Location)
	if cfg.DryRun {
		log.Warn("DRY RUN: no files will be renamed")
	}
	for _, w := range check.MissingTools(&cfg) {
		log.Warn("%s", w)
	}
	log.Info("")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn("Received interrupt, finishing current file")
		cancel()
	}()

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
