// Package naming builds canonical media filenames, detects files that
// already carry one, and resolves destination collisions.
package naming

import (
	"regexp"
	"time"

	"github.com/backmassage/mediastamp/internal/timestamp"
)

// Canonical pattern: 8 digits, 6 digits, device token, recognized extension.
// The device tokens are fixed; a run with custom prefix overrides does not
// recognize its own output as already renamed and will reprocess it.
var reCanonical = regexp.MustCompile(
	`(?i)^\d{8}-\d{6}-(iphone|android)\.(mov|mp4|heic|jpg|jpeg)$`)

// IsCanonical reports whether name already matches the canonical
// YYYYMMDD-HHMMSS-<device>.<ext> pattern (case-insensitive).
func IsCanonical(name string) bool {
	return reCanonical.MatchString(name)
}

// BaseName builds the canonical base name (no extension) for an instant:
// the civil stamp in loc followed by the device prefix.
func BaseName(t time.Time, loc *time.Location, prefix string) string {
	return timestamp.Stamp(t, loc) + "-" + prefix
}
