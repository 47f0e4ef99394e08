// Package check implements the --check diagnostics mode: it verifies each
// dataset's kind and source directory before an operator commits to a full
// counting run.
package check

import (
	"github.com/spf13/afero"

	"github.com/minha12/countimages/internal/config"
	"github.com/minha12/countimages/internal/logging"
	"github.com/minha12/countimages/internal/pipeline"
)

// RunCheck reports a per-dataset verdict and returns true when every
// countable dataset points at an existing directory. Non-countable entries
// are noted and never fail the check; a countable dataset without a usable
// directory does, since its count would silently be 0.
func RunCheck(fsys afero.Fs, datasets []config.Dataset, log *logging.Logger) bool {
	healthy := true

	for i := range datasets {
		d := &datasets[i]
		switch {
		case d.DatasetType == config.TypeTextEmbeds:
			log.Info("%s: skipped (text-embed dataset)", d.ID)
		case d.Type != config.TypeLocal:
			log.Info("%s: skipped (type %q is not counted)", d.ID, d.Type)
		case d.InstanceDataDir == "":
			log.Warn("%s: no instance_data_dir configured", d.ID)
			healthy = false
		default:
			ok, err := afero.DirExists(fsys, d.InstanceDataDir)
			if err != nil || !ok {
				log.Error("%s: directory not found: %s", d.ID, d.InstanceDataDir)
				healthy = false
				continue
			}
			candidates := pipeline.Discover(fsys, d.InstanceDataDir)
			log.Success("%s: %s (%d candidate files)", d.ID, d.InstanceDataDir, len(candidates))
		}
	}

	if healthy {
		log.Success("All dataset directories look usable")
	} else {
		log.Error("Some datasets cannot be counted; fix the configuration above")
	}
	return healthy
}
