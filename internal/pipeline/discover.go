package pipeline

import (
	"os"
	"strings"

	"github.com/backmassage/mediastamp/internal/config"
)

var videoExtensions = map[string]bool{
	".mov": true,
	".mp4": true,
}

var imageExtensions = map[string]bool{
	".heic": true,
	".jpg":  true,
	".jpeg": true,
}

// InScope reports whether a file with the given extension (lowercased,
// leading dot) is handled by this run.
func InScope(cfg *config.Config, ext string) bool {
	if videoExtensions[ext] {
		return true
	}
	return !cfg.VideosOnly && imageExtensions[ext]
}

// Discover lists the in-scope regular files directly inside cfg.Dir,
// sorted by name. Subdirectories are not descended into.
func Discover(cfg *config.Config) ([]string, error) {
	entries, err := os.ReadDir(cfg.Dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		name := e.Name()
		dot := strings.LastIndex(name, ".")
		if dot <= 0 {
			continue
		}
		if InScope(cfg, strings.ToLower(name[dot:])) {
			names = append(names, name)
		}
	}
	return names, nil
}
