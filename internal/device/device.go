// Package device classifies the capture device of a media file as iphone or
// android, preferring exiftool make/model metadata and falling back to an
// extension heuristic.
package device

import (
	"context"
	"encoding/json"
	"os/exec"
	"path/filepath"
	"strings"
)

// Label is the device classification token used in canonical names.
type Label string

const (
	IPhone  Label = "iphone"
	Android Label = "android"
)

// Source records how a label was determined.
type Source string

const (
	SourceMetadata  Source = "metadata"
	SourceExtension Source = "extension"
)

// Classify determines the device label for path. Metadata wins when exiftool
// runs and yields a classification; any process failure, malformed output,
// or inconclusive metadata falls back to the extension heuristic. bin is the
// exiftool binary to invoke.
func Classify(ctx context.Context, bin, path string) (Label, Source) {
	cmd := exec.CommandContext(ctx, bin,
		"-Make", "-Model", "-AndroidMake", "-AndroidModel", "-j", path)
	if out, err := cmd.Output(); err == nil {
		if label, ok := ClassifyJSON(out); ok {
			return label, SourceMetadata
		}
	}
	return FromExtension(filepath.Ext(path)), SourceExtension
}

// exiftool -j emits a JSON array with one object per input file.
type exifRecord struct {
	Make         string `json:"Make"`
	Model        string `json:"Model"`
	AndroidMake  string `json:"AndroidMake"`
	AndroidModel string `json:"AndroidModel"`
}

// ClassifyJSON applies the metadata classification rules to raw exiftool
// output. Rule order: Apple make or iPhone model first, then any Android
// signal (Android-specific fields, Google make, Pixel model). Returns
// ok=false when the output is malformed or carries no usable signal.
// Exported for testing without a real exiftool binary.
func ClassifyJSON(data []byte) (Label, bool) {
	var recs []exifRecord
	if err := json.Unmarshal(data, &recs); err != nil || len(recs) == 0 {
		return "", false
	}

	r := recs[0]
	mk := strings.ToLower(r.Make)
	mdl := strings.ToLower(r.Model)

	if mk == "apple" || strings.Contains(mdl, "iphone") {
		return IPhone, true
	}
	if r.AndroidMake != "" || r.AndroidModel != "" || mk == "google" || strings.Contains(mdl, "pixel") {
		return Android, true
	}
	return "", false
}

// FromExtension maps a file extension to its default device label:
// .mov and .heic are iPhone formats, every other recognized extension is
// treated as Android.
func FromExtension(ext string) Label {
	switch strings.ToLower(ext) {
	case ".mov", ".heic":
		return IPhone
	}
	return Android
}
