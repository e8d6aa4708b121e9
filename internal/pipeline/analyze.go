package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/backmassage/mediastamp/internal/config"
	"github.com/backmassage/mediastamp/internal/logging"
	"github.com/backmassage/mediastamp/internal/naming"
	"github.com/backmassage/mediastamp/internal/planner"
	"github.com/backmassage/mediastamp/internal/timestamp"
)

type analyzeRow struct {
	file   string
	device string
	stamp  string
	source string
	dst    string
	mtime  bool
}

var mtimeColor = color.New(color.FgYellow)

// Analyze prints a read-only table of what a run would decide for each
// file. It uses its own collision resolver, so the table shows the same
// suffixes an immediately following run would assign.
func Analyze(ctx context.Context, cfg *config.Config, log *logging.Logger) error {
	names, err := Discover(cfg)
	if err != nil {
		return fmt.Errorf("scan %s: %w", cfg.Dir, err)
	}
	if len(names) == 0 {
		log.Info("No media files found in %s", cfg.Dir)
		return nil
	}

	cr := naming.NewCollisionResolver(cfg.Dir)
	rows := make([]analyzeRow, 0, len(names))
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return err
		}
		if naming.IsCanonical(name) {
			rows = append(rows, analyzeRow{file: name, dst: "(already renamed)"})
			continue
		}
		plan, err := planner.Build(ctx, cfg, cr, name)
		if err != nil {
			log.Error("%s: %v", name, err)
			continue
		}
		rows = append(rows, analyzeRow{
			file:   name,
			device: string(plan.Device),
			stamp:  plan.Time.In(cfg.Location).Format("2006-01-02 15:04:05"),
			source: string(plan.TimeSource),
			dst:    plan.Dst,
			mtime:  plan.TimeSource == timestamp.SourceMtime,
		})
	}

	printTable(rows)
	return nil
}

func printTable(rows []analyzeRow) {
	headers := []string{"File", "Device", "Timestamp", "Source", "New Name"}
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, r := range rows {
		for i, cell := range r.cells() {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	printRow(headers, widths, nil)
	sep := make([]string, len(headers))
	for i, w := range widths {
		sep[i] = strings.Repeat("-", w)
	}
	printRow(sep, widths, nil)
	for _, r := range rows {
		var c *color.Color
		if r.mtime {
			c = mtimeColor
		}
		printRow(r.cells(), widths, c)
	}
}

func (r analyzeRow) cells() []string {
	return []string{r.file, r.device, r.stamp, r.source, r.dst}
}

func printRow(cells []string, widths []int, c *color.Color) {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		parts[i] = cell + strings.Repeat(" ", widths[i]-len(cell))
	}
	line := strings.Join(parts, "  ")
	if c != nil {
		c.Println(line)
		return
	}
	fmt.Println(line)
}
