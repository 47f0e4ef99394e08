package probe

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/spf13/afero"
	"golang.org/x/image/bmp"
)

// writeImage encodes a blank w×h image at path in the given format.
func writeImage(t *testing.T, fsys afero.Fs, path, format string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	var buf bytes.Buffer
	var err error
	switch format {
	case "png":
		err = png.Encode(&buf, img)
	case "jpeg":
		err = jpeg.Encode(&buf, img, nil)
	case "bmp":
		err = bmp.Encode(&buf, img)
	default:
		t.Fatalf("unknown format %q", format)
	}
	if err != nil {
		t.Fatalf("encode %s: %v", format, err)
	}
	if err := afero.WriteFile(fsys, path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestSize_Formats(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		format string
		w, h   int
	}{
		{"png", "/img/a.png", "png", 512, 300},
		{"jpeg", "/img/b.jpg", "jpeg", 100, 100},
		{"bmp", "/img/c.bmp", "bmp", 64, 128},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := afero.NewMemMapFs()
			writeImage(t, fsys, tt.path, tt.format, tt.w, tt.h)

			dim, ok := Size(fsys, tt.path)
			if !ok {
				t.Fatalf("Size(%q) reported absence", tt.path)
			}
			if dim.Width != tt.w || dim.Height != tt.h {
				t.Errorf("Size(%q) = %dx%d, want %dx%d", tt.path, dim.Width, dim.Height, tt.w, tt.h)
			}
		})
	}
}

func TestSize_Unreadable(t *testing.T) {
	fsys := afero.NewMemMapFs()
	if err := afero.WriteFile(fsys, "/img/fake.webp", []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := afero.WriteFile(fsys, "/img/empty.png", nil, 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
	}{
		{"missing file", "/img/missing.jpg"},
		{"non-image content", "/img/fake.webp"},
		{"empty file", "/img/empty.png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := Size(fsys, tt.path); ok {
				t.Errorf("Size(%q) succeeded, want absence", tt.path)
			}
		})
	}
}

func TestSize_TruncatedHeader(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeImage(t, fsys, "/img/full.png", "png", 32, 32)
	data, _ := afero.ReadFile(fsys, "/img/full.png")
	if err := afero.WriteFile(fsys, "/img/cut.png", data[:8], 0o644); err != nil {
		t.Fatal(err)
	}

	if _, ok := Size(fsys, "/img/cut.png"); ok {
		t.Error("Size accepted a truncated header")
	}
}

func TestDimensions_MinSide(t *testing.T) {
	tests := []struct {
		name string
		dim  Dimensions
		want int
	}{
		{"landscape", Dimensions{Width: 512, Height: 300}, 300},
		{"portrait", Dimensions{Width: 300, Height: 512}, 300},
		{"square", Dimensions{Width: 256, Height: 256}, 256},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.dim.MinSide(); got != tt.want {
				t.Errorf("MinSide() = %d, want %d", got, tt.want)
			}
		})
	}
}
