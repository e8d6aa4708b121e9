package naming

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// CollisionResolver assigns unique destination names within one directory.
// It consults both the filesystem and the names it has already handed out
// during the run, so dry-run planning yields the same suffixes a real run
// would.
type CollisionResolver struct {
	dir     string
	claimed map[string]struct{}
}

func NewCollisionResolver(dir string) *CollisionResolver {
	return &CollisionResolver{
		dir:     dir,
		claimed: make(map[string]struct{}),
	}
}

// Resolve returns the first free filename for base and ext, appending
// -1, -2, ... before the extension when the plain name is taken. The
// returned name is claimed for the rest of the run.
func (cr *CollisionResolver) Resolve(base, ext string) string {
	ext = strings.ToLower(ext)
	name := base + ext
	for n := 1; cr.taken(name); n++ {
		name = fmt.Sprintf("%s-%d%s", base, n, ext)
	}
	cr.claimed[name] = struct{}{}
	return name
}

func (cr *CollisionResolver) taken(name string) bool {
	if _, ok := cr.claimed[name]; ok {
		return true
	}
	_, err := os.Stat(filepath.Join(cr.dir, name))
	return err == nil
}
