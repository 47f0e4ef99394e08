package config

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
)

func TestNormalizeDirArg(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no trailing slash", "/data/train", "/data/train"},
		{"single trailing slash", "/data/train/", "/data/train"},
		{"multiple trailing slashes", "/data/train///", "/data/train"},
		{"root path", "/", "/"},
		{"relative path", "train", "train"},
		{"empty string", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDirArg(tt.in)
			if got != tt.want {
				t.Errorf("NormalizeDirArg(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidate_ColorMode(t *testing.T) {
	tests := []struct {
		name    string
		mode    ColorMode
		wantErr bool
	}{
		{"auto is valid", ColorAuto, false},
		{"always is valid", ColorAlways, false},
		{"never is valid", ColorNever, false},
		{"empty is invalid", "", true},
		{"unknown is invalid", "rainbow", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			opts.ColorMode = tt.mode
			err := opts.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_Workers(t *testing.T) {
	opts := DefaultOptions()
	opts.Workers = -1
	if err := opts.Validate(); err == nil {
		t.Error("Validate() accepted negative workers")
	}
	opts.Workers = 0
	if err := opts.Validate(); err != nil {
		t.Errorf("Validate() rejected workers=0: %v", err)
	}
}

// --- Dataset model ---

func TestCountable(t *testing.T) {
	tests := []struct {
		name string
		ds   Dataset
		want bool
	}{
		{"local image dataset", Dataset{Type: "local"}, true},
		{"local with explicit image type", Dataset{Type: "local", DatasetType: "image"}, true},
		{"remote dataset", Dataset{Type: "aws"}, false},
		{"empty type", Dataset{}, false},
		{"text embeds", Dataset{Type: "local", DatasetType: "text_embeds"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ds.Countable(); got != tt.want {
				t.Errorf("Countable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSizeBounds_ZeroMeansUnset(t *testing.T) {
	// Historical configs use 0 to disable a bound, so an explicit 0 and
	// an absent field both resolve to "no constraint".
	zero, five := 0, 5

	tests := []struct {
		name       string
		threshold  *int
		wantActive bool
		wantValue  int
	}{
		{"absent", nil, false, 0},
		{"explicit zero", &zero, false, 0},
		{"positive", &five, true, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := Dataset{MinimumImageSize: tt.threshold, MaximumImageSize: tt.threshold}

			v, active := ds.MinSizeBound()
			if active != tt.wantActive || v != tt.wantValue {
				t.Errorf("MinSizeBound() = (%d, %v), want (%d, %v)", v, active, tt.wantValue, tt.wantActive)
			}
			v, active = ds.MaxSizeBound()
			if active != tt.wantActive || v != tt.wantValue {
				t.Errorf("MaxSizeBound() = (%d, %v), want (%d, %v)", v, active, tt.wantValue, tt.wantActive)
			}
		})
	}
}

// --- Loading ---

func TestLoadDatasets_FromFile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	cfg := `[
		{"id": "main", "type": "local", "instance_data_dir": "/data/main/", "minimum_image_size": 256, "probability": 0.5},
		{"id": "embeds", "type": "local", "dataset_type": "text_embeds"}
	]`
	if err := afero.WriteFile(fsys, "/config.json", []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}

	datasets, err := LoadDatasets(fsys, "/config.json", nil)
	if err != nil {
		t.Fatalf("LoadDatasets: %v", err)
	}
	if len(datasets) != 2 {
		t.Fatalf("got %d datasets, want 2", len(datasets))
	}

	main := datasets[0]
	if main.ID != "main" || main.Type != "local" {
		t.Errorf("unexpected first dataset: %+v", main)
	}
	if main.InstanceDataDir != "/data/main" {
		t.Errorf("InstanceDataDir = %q, want trailing slash stripped", main.InstanceDataDir)
	}
	if v, active := main.MinSizeBound(); !active || v != 256 {
		t.Errorf("MinSizeBound() = (%d, %v), want (256, true)", v, active)
	}
	if main.Probability == nil {
		t.Error("Probability should be set")
	}

	embeds := datasets[1]
	if embeds.Countable() {
		t.Error("text_embeds dataset should not be countable")
	}
	if embeds.MinimumImageSize != nil || embeds.MaximumImageSize != nil {
		t.Error("absent thresholds should decode to nil")
	}
	if embeds.Probability != nil {
		t.Error("absent probability should decode to nil")
	}
}

func TestLoadDatasets_FromStdin(t *testing.T) {
	fsys := afero.NewMemMapFs()
	stdin := strings.NewReader(`[{"id": "a", "type": "local"}]`)

	datasets, err := LoadDatasets(fsys, "", stdin)
	if err != nil {
		t.Fatalf("LoadDatasets: %v", err)
	}
	if len(datasets) != 1 || datasets[0].ID != "a" {
		t.Errorf("got %+v", datasets)
	}
}

func TestLoadDatasets_Rejects(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"top-level object", `{"id": "a"}`},
		{"invalid JSON", `[{"id": "a"`},
		{"missing id", `[{"type": "local"}]`},
		{"empty id", `[{"id": ""}]`},
		{"duplicate id", `[{"id": "a"}, {"id": "a"}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := afero.NewMemMapFs()
			_, err := LoadDatasets(fsys, "", strings.NewReader(tt.json))
			if err == nil {
				t.Errorf("LoadDatasets accepted %s", tt.json)
			}
		})
	}
}

func TestLoadDatasets_MissingFile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	if _, err := LoadDatasets(fsys, "/nope.json", nil); err == nil {
		t.Error("LoadDatasets should fail for a missing config file")
	}
}
