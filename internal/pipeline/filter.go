package pipeline

import (
	"github.com/spf13/afero"

	"github.com/minha12/countimages/internal/config"
	"github.com/minha12/countimages/internal/probe"
)

// Eligible decides whether the file at path counts toward ds. It is a pure
// predicate over (path, dataset); gates run cheapest first and
// short-circuit, so the image header is only read for files that already
// passed the extension and dataset-kind checks:
//
//  1. extension allow-list,
//  2. dataset kind (local, not text embeds),
//  3. dimension probe (unreadable or corrupt files are excluded),
//  4. inclusive min/max bounds on the smaller image dimension.
func Eligible(fsys afero.Fs, path string, ds *config.Dataset) bool {
	if !IsImagePath(path) {
		return false
	}
	if !ds.Countable() {
		return false
	}

	dim, ok := probe.Size(fsys, path)
	if !ok {
		return false
	}
	side := dim.MinSide()

	if min, active := ds.MinSizeBound(); active && side < min {
		return false
	}
	if max, active := ds.MaxSizeBound(); active && side > max {
		return false
	}
	return true
}
