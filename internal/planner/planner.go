// Package planner decides the destination name for a single media file:
// it resolves the timestamp, classifies the device, and asks the collision
// resolver for a free canonical name.
package planner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/backmassage/mediastamp/internal/config"
	"github.com/backmassage/mediastamp/internal/device"
	"github.com/backmassage/mediastamp/internal/imagex"
	"github.com/backmassage/mediastamp/internal/naming"
	"github.com/backmassage/mediastamp/internal/probe"
	"github.com/backmassage/mediastamp/internal/timestamp"
)

// Build produces the plan for one file in cfg.Dir. Metadata probes that
// fail fall through to the mtime and extension fallbacks; the only hard
// error is a file that cannot be stat'ed at all.
func Build(ctx context.Context, cfg *config.Config, cr *naming.CollisionResolver, name string) (Plan, error) {
	path := filepath.Join(cfg.Dir, name)
	ext := strings.ToLower(filepath.Ext(name))

	t, tsrc, err := resolveTime(ctx, cfg, path, ext)
	if err != nil {
		return Plan{}, fmt.Errorf("resolve time for %s: %w", name, err)
	}

	var label device.Label
	var dsrc device.Source
	if cfg.MetadataDevice {
		label, dsrc = device.Classify(ctx, cfg.ExiftoolBin, path)
	} else {
		label, dsrc = device.FromExtension(ext), device.SourceExtension
	}

	prefix := cfg.AndroidPrefix
	if label == device.IPhone {
		prefix = cfg.IPhonePrefix
	}

	p := Plan{
		Src:          name,
		Action:       ActionRename,
		Device:       label,
		DeviceSource: dsrc,
		Time:         t,
		TimeSource:   tsrc,
	}

	// A file that already bears its computed name must not collide with
	// itself, so check before asking the resolver for a free name.
	base := naming.BaseName(t, cfg.Location, prefix)
	if base+ext == name {
		p.Dst = name
		p.Action = ActionSkip
		p.Reason = "already named"
		return p, nil
	}
	p.Dst = cr.Resolve(base, ext)
	return p, nil
}

func resolveTime(ctx context.Context, cfg *config.Config, path, ext string) (time.Time, timestamp.Source, error) {
	if res, err := probe.Probe(ctx, cfg.FfprobeBin, path); err == nil {
		if t, ok := timestamp.FromCandidates(res.Candidates); ok {
			return t, timestamp.SourceMetadata, nil
		}
	}

	switch ext {
	case ".heic", ".jpg", ".jpeg":
		if t, err := imagex.CreateDate(path); err == nil {
			return t, timestamp.SourceExif, nil
		}
	}

	fi, err := os.Stat(path)
	if err != nil {
		return time.Time{}, "", err
	}
	return fi.ModTime().UTC(), timestamp.SourceMtime, nil
}
