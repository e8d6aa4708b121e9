// Package check verifies the external tools a run depends on.
package check

import (
	"os/exec"
	"strings"

	"github.com/backmassage/mediastamp/internal/config"
)

// Logger is the subset of the logging API the checks report through.
type Logger interface {
	Info(format string, args ...interface{})
	Success(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
	Debug(verbose bool, format string, args ...interface{})
}

// RunCheck reports the availability and versions of the external tools
// plus the configured timezone. It always returns 0; missing tools only
// degrade a run, they do not block it.
func RunCheck(cfg *config.Config, log Logger) int {
	log.Info("Checking environment")

	if v, ok := toolVersion(cfg.FfprobeBin, "-version"); ok {
		log.Success("ffprobe: %s", v)
	} else {
		log.Warn("ffprobe (%s): not found, timestamps will fall back to file mtime", cfg.FfprobeBin)
	}

	if !cfg.MetadataDevice {
		log.Info("exiftool: not used (videos-only)")
	} else if v, ok := toolVersion(cfg.ExiftoolBin, "-ver"); ok {
		log.Success("exiftool: %s", v)
	} else {
		log.Warn("exiftool (%s): not found, device detection will fall back to the file extension", cfg.ExiftoolBin)
	}

	log.Success("timezone: %s", cfg.Location)
	return 0
}

// MissingTools returns warning lines for tools a run would want but
// cannot find. The run itself still proceeds on fallbacks.
func MissingTools(cfg *config.Config) []string {
	var warns []string
	if _, err := exec.LookPath(cfg.FfprobeBin); err != nil {
		warns = append(warns, "ffprobe not found, timestamps will come from file mtime")
	}
	if cfg.MetadataDevice {
		if _, err := exec.LookPath(cfg.ExiftoolBin); err != nil {
			warns = append(warns, "exiftool not found, device detection will use the file extension")
		}
	}
	return warns
}

// toolVersion runs bin with a version flag and returns the first output
// line.
func toolVersion(bin, flag string) (string, bool) {
	out, err := exec.Command(bin, flag).Output()
	if err != nil {
		return "", false
	}
	line := strings.TrimSpace(string(out))
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = strings.TrimSpace(line[:i])
	}
	if line == "" {
		return "", false
	}
	return line, true
}
