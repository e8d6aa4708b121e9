// Package pipeline drives a rename run: discover the files, plan each
// one, then apply or report the renames.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/backmassage/mediastamp/internal/config"
	"github.com/backmassage/mediastamp/internal/display"
	"github.com/backmassage/mediastamp/internal/logging"
	"github.com/backmassage/mediastamp/internal/naming"
	"github.com/backmassage/mediastamp/internal/planner"
)

// Run processes every in-scope file in cfg.Dir sequentially. Planning
// failures are logged and counted; a rename that fails on disk aborts
// the run, since a half-applied batch should not keep going silently.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger) (RunStats, error) {
	names, err := Discover(cfg)
	if err != nil {
		return RunStats{}, fmt.Errorf("scan %s: %w", cfg.Dir, err)
	}

	stats := RunStats{Total: len(names)}
	if stats.Total == 0 {
		log.Info("No media files found in %s", cfg.Dir)
		return stats, nil
	}

	cr := naming.NewCollisionResolver(cfg.Dir)
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		stats.Current++
		if err := processFile(ctx, cfg, log, cr, name, &stats); err != nil {
			stats.Failed++
			return stats, err
		}
	}

	logSummary(cfg, log, stats)
	return stats, nil
}

// processFile handles one file. Planning failures are soft (logged and
// counted); a rename that fails on disk is returned and aborts the run.
func processFile(ctx context.Context, cfg *config.Config, log *logging.Logger, cr *naming.CollisionResolver, name string, stats *RunStats) error {
	if naming.IsCanonical(name) {
		log.Info("[%d/%d] Skip %s (already renamed)", stats.Current, stats.Total, name)
		stats.Skipped++
		return nil
	}

	plan, err := planner.Build(ctx, cfg, cr, name)
	if err != nil {
		log.Error("[%d/%d] %s: %v", stats.Current, stats.Total, name, err)
		stats.Failed++
		return nil
	}
	logPlanDetail(cfg, log, plan)

	switch {
	case plan.Action == planner.ActionSkip:
		log.Info("[%d/%d] Skip %s (%s)", stats.Current, stats.Total, name, plan.Reason)
		stats.Skipped++
	case cfg.DryRun:
		log.Success("[%d/%d] [DRY] %s -> %s", stats.Current, stats.Total, plan.Src, plan.Dst)
		stats.Renamed++
	default:
		src := filepath.Join(cfg.Dir, plan.Src)
		dst := filepath.Join(cfg.Dir, plan.Dst)
		if err := os.Rename(src, dst); err != nil {
			return fmt.Errorf("rename %s -> %s: %w", plan.Src, plan.Dst, err)
		}
		log.Success("[%d/%d] %s -> %s", stats.Current, stats.Total, plan.Src, plan.Dst)
		stats.Renamed++
	}
	return nil
}

func logPlanDetail(cfg *config.Config, log *logging.Logger, plan planner.Plan) {
	if !cfg.Verbose {
		return
	}
	size := "?"
	if fi, err := os.Stat(filepath.Join(cfg.Dir, plan.Src)); err == nil {
		size = display.FormatBytes(fi.Size())
	}
	log.Debug(cfg.Verbose, "%s: device=%s (%s) time=%s (%s) size=%s",
		plan.Src, plan.Device, plan.DeviceSource,
		plan.Time.In(cfg.Location).Format("2006-01-02 15:04:05"),
		plan.TimeSource, size)
}

func logSummary(cfg *config.Config, log *logging.Logger, stats RunStats) {
	if cfg.DryRun {
		log.Info("Done (dry run): %d would be renamed, %d skipped, %d failed",
			stats.Renamed, stats.Skipped, stats.Failed)
		return
	}
	log.Info("Done: %d renamed, %d skipped, %d failed",
		stats.Renamed, stats.Skipped, stats.Failed)
}
