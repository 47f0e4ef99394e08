package config

// This file defines the dataset configuration model and its JSON loading.
// The input is a JSON array of dataset objects; optional fields decode to
// nil or empty values and mean "not set".

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/afero"
)

// Dataset kind values that gate counting. Only local image datasets are
// counted; text-embed caches are configuration entries without image files.
const (
	TypeLocal      = "local"
	TypeTextEmbeds = "text_embeds"
)

// Dataset is one entry from the dataset configuration list. It is read once
// from input and never mutated afterwards.
type Dataset struct {
	ID              string `json:"id"`
	Type            string `json:"type"`
	DatasetType     string `json:"dataset_type"`
	InstanceDataDir string `json:"instance_data_dir"`

	// Size thresholds in pixels, compared against the smaller of an
	// image's width and height. Pointers so that an absent field is
	// distinguishable from an explicit 0 in the data model, although
	// both mean "no bound" (see MinSizeBound).
	MinimumImageSize *int `json:"minimum_image_size"`
	MaximumImageSize *int `json:"maximum_image_size"`

	// Probability is a display-only sampling weight of arbitrary JSON
	// type; nil means the config did not set one.
	Probability any `json:"probability"`
}

// Countable reports whether this dataset contributes to image counts:
// a local dataset that is not a text-embed cache.
func (d *Dataset) Countable() bool {
	return d.Type == TypeLocal && d.DatasetType != TypeTextEmbeds
}

// MinSizeBound returns the lower pixel bound and whether it is active.
// A nil or zero threshold is "no bound" — historical configs use 0 to
// disable the constraint, so 0 and unset are deliberately equivalent.
func (d *Dataset) MinSizeBound() (int, bool) {
	if d.MinimumImageSize == nil || *d.MinimumImageSize == 0 {
		return 0, false
	}
	return *d.MinimumImageSize, true
}

// MaxSizeBound returns the upper pixel bound and whether it is active,
// with the same zero-means-unset convention as MinSizeBound.
func (d *Dataset) MaxSizeBound() (int, bool) {
	if d.MaximumImageSize == nil || *d.MaximumImageSize == 0 {
		return 0, false
	}
	return *d.MaximumImageSize, true
}

// LoadDatasets reads the dataset list from path on fsys, or from stdin when
// path is empty. The top level must be a JSON array; every entry must carry
// a non-empty id, unique across the list (the report joins on id).
func LoadDatasets(fsys afero.Fs, path string, stdin io.Reader) ([]Dataset, error) {
	var data []byte
	var err error
	if path != "" {
		data, err = afero.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		data, err = io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read config from stdin: %w", err)
		}
	}

	var datasets []Dataset
	if err := json.Unmarshal(data, &datasets); err != nil {
		return nil, fmt.Errorf("parse config (expected a JSON list of dataset objects): %w", err)
	}

	if err := ValidateDatasets(datasets); err != nil {
		return nil, err
	}

	for i := range datasets {
		if datasets[i].InstanceDataDir != "" {
			datasets[i].InstanceDataDir = NormalizeDirArg(datasets[i].InstanceDataDir)
		}
	}
	return datasets, nil
}

// ValidateDatasets checks the identity contract: non-empty ids, no
// duplicates. Everything else is optional and interpreted as "not set".
func ValidateDatasets(datasets []Dataset) error {
	seen := make(map[string]bool, len(datasets))
	for i := range datasets {
		id := datasets[i].ID
		if id == "" {
			return fmt.Errorf("dataset at index %d has no id", i)
		}
		if seen[id] {
			return fmt.Errorf("duplicate dataset id %q", id)
		}
		seen[id] = true
	}
	return nil
}
