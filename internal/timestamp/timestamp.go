// Package timestamp parses creation-time metadata strings and formats
// resolved instants as civil-time stamps.
package timestamp

import (
	"strings"
	"time"
)

// Source records where a resolved timestamp came from.
type Source string

const (
	SourceMetadata Source = "metadata" // ffprobe creation_time tag.
	SourceExif     Source = "exif"     // Native EXIF decode (images).
	SourceMtime    Source = "mtime"    // Filesystem modification time.
)

// StampLayout is the civil-time layout used in canonical names.
const StampLayout = "20060102-150405"

// Fallback layouts for candidates the RFC 3339 parse rejects. Both lack
// zone information, which time.Parse interprets as UTC.
var fallbackLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.999999",
}

// Parse converts one creation_time candidate into a UTC instant. The
// normalization mirrors the variety of forms media metadata carries:
// a trailing "Z" becomes an explicit zero offset and a space date/time
// separator becomes "T". A candidate without zone information is assumed
// to already be UTC.
func Parse(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if strings.HasSuffix(s, "Z") {
		s = strings.TrimSuffix(s, "Z") + "+00:00"
	}
	s = strings.ReplaceAll(s, " ", "T")

	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC(), true
	}
	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// FromCandidates returns the first candidate that parses. Candidates are
// expected in preference order (container tag before stream tags).
func FromCandidates(candidates []string) (time.Time, bool) {
	for _, c := range candidates {
		if t, ok := Parse(c); ok {
			return t, true
		}
	}
	return time.Time{}, false
}

// Stamp formats an absolute instant as its civil reading in loc,
// e.g. "20250820-112345". DST rules of loc apply.
func Stamp(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(StampLayout)
}
