package pipeline

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"github.com/minha12/countimages/internal/config"
	"github.com/minha12/countimages/internal/logging"
)

// Supported image file extensions (lowercase, with leading dot).
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".bmp":  true,
	".webp": true,
}

// IsImagePath reports whether path carries one of the supported image
// extensions (case-insensitive).
func IsImagePath(path string) bool {
	return imageExtensions[strings.ToLower(filepath.Ext(path))]
}

// Discover walks dir recursively, collects files with image extensions, and
// returns the paths sorted lexicographically. Unreadable entries are
// skipped and a nonexistent directory yields an empty list; discovery never
// fails, it only finds fewer candidates.
func Discover(fsys afero.Fs, dir string) []string {
	var files []string
	_ = afero.Walk(fsys, dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // skip unreadable entries
		}
		if info.IsDir() {
			return nil
		}
		if IsImagePath(path) {
			files = append(files, path)
		}
		return nil
	})
	sort.Strings(files)
	return files
}

// BuildCache walks every unique instance directory referenced by a
// countable dataset exactly once and returns the directory → candidate
// list mapping. The cache is complete before any counting starts and is
// never mutated afterwards, so counting tasks may share it without
// synchronization. log may be nil.
func BuildCache(fsys afero.Fs, datasets []config.Dataset, log *logging.Logger) map[string][]string {
	dirs := make(map[string]bool)
	for i := range datasets {
		d := &datasets[i]
		if d.Countable() && d.InstanceDataDir != "" {
			dirs[d.InstanceDataDir] = true
		}
	}

	ordered := make([]string, 0, len(dirs))
	for dir := range dirs {
		ordered = append(ordered, dir)
	}
	sort.Strings(ordered)

	cache := make(map[string][]string, len(ordered))
	for _, dir := range ordered {
		if log != nil {
			log.Info("Finding all images in %s...", dir)
		}
		cache[dir] = Discover(fsys, dir)
	}
	return cache
}
