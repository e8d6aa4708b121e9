// Package probe extracts creation-time metadata from media files via a
// single ffprobe JSON call per file.
package probe

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
)

// Probe asks ffprobe for creation_time tags at both the container and
// stream level and returns the parsed result. bin is the ffprobe binary to
// invoke (normally "ffprobe").
func Probe(ctx context.Context, bin, path string) (*Result, error) {
	cmd := exec.CommandContext(ctx, bin,
		"-v", "quiet",
		"-print_format", "json",
		"-show_entries", "format_tags=creation_time:stream_tags=creation_time",
		path,
	)

	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("ffprobe %q: %w", path, err)
	}

	return ParseJSON(out)
}

// ParseJSON converts raw ffprobe JSON output into a Result.
// Exported for testing without a real ffprobe binary.
func ParseJSON(data []byte) (*Result, error) {
	var raw ffprobeOutput
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse ffprobe JSON: %w", err)
	}
	return buildResult(&raw), nil
}

// --- ffprobe JSON wire types ---

type ffprobeOutput struct {
	Format  ffprobeFormat   `json:"format"`
	Streams []ffprobeStream `json:"streams"`
}

type ffprobeFormat struct {
	Tags map[string]string `json:"tags"`
}

type ffprobeStream struct {
	Tags map[string]string `json:"tags"`
}

// Result holds the creation_time candidates found in a file, in preference
// order: the container-level tag first, then stream-level tags in stream
// order.
type Result struct {
	Candidates []string
}

func buildResult(raw *ffprobeOutput) *Result {
	r := &Result{}
	if v, ok := raw.Format.Tags["creation_time"]; ok {
		r.Candidates = append(r.Candidates, v)
	}
	for _, s := range raw.Streams {
		if v, ok := s.Tags["creation_time"]; ok {
			r.Candidates = append(r.Candidates, v)
		}
	}
	return r
}
