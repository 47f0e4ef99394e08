package pipeline

import (
	"os"

	"github.com/spf13/afero"

	"github.com/minha12/countimages/internal/config"
)

// Result is the count produced for one dataset.
type Result struct {
	DatasetID string
	Count     int
}

// CountFromList counts the candidates that are eligible for ds. The kind
// gate and the directory-existence check come first, so datasets that
// cannot count images resolve to 0 without touching the filesystem or the
// list. Counting never fails: probe and filesystem errors exclude the file.
func CountFromList(fsys afero.Fs, ds *config.Dataset, candidates []string) Result {
	if !ds.Countable() {
		return Result{DatasetID: ds.ID}
	}
	if ds.InstanceDataDir == "" || !dirExists(fsys, ds.InstanceDataDir) {
		return Result{DatasetID: ds.ID}
	}

	n := 0
	for _, path := range candidates {
		if Eligible(fsys, path, ds) {
			n++
		}
	}
	return Result{DatasetID: ds.ID, Count: n}
}

// CountFromWalk counts eligible files by a fresh recursive walk of the
// dataset's directory, for callers without a prebuilt candidate list. For
// an unchanged directory it yields the same count as CountFromList over
// Discover's output.
func CountFromWalk(fsys afero.Fs, ds *config.Dataset) Result {
	if !ds.Countable() {
		return Result{DatasetID: ds.ID}
	}
	if ds.InstanceDataDir == "" || !dirExists(fsys, ds.InstanceDataDir) {
		return Result{DatasetID: ds.ID}
	}

	n := 0
	_ = afero.Walk(fsys, ds.InstanceDataDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if !info.IsDir() && Eligible(fsys, path, ds) {
			n++
		}
		return nil
	})
	return Result{DatasetID: ds.ID, Count: n}
}

// dirExists requires an existing directory: an instance_data_dir pointing at
// a regular file yields no images, the same as a missing directory.
func dirExists(fsys afero.Fs, path string) bool {
	ok, err := afero.DirExists(fsys, path)
	return err == nil && ok
}
