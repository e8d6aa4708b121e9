// Package imagex reads EXIF create dates natively. It is the middle rung of
// the timestamp fallback chain for image files: used when ffprobe yields no
// usable creation_time, before resorting to the file modification time.
package imagex

import (
	"errors"
	"os"
	"time"

	"github.com/evanoberholster/imagemeta"
)

// CreateDate returns the EXIF creation time of the image at path as a UTC
// instant. EXIF timestamps carry no zone; they are taken as UTC, matching
// how zoneless ffprobe tags are treated.
func CreateDate(path string) (time.Time, error) {
	f, err := os.Open(path)
	if err != nil {
		return time.Time{}, err
	}
	defer f.Close()

	e, err := imagemeta.Decode(f)
	if err != nil {
		return time.Time{}, err
	}
	t := e.CreateDate()
	if t.IsZero() {
		return time.Time{}, errors.New("no create date in EXIF")
	}
	return t.UTC(), nil
}
