// Package probe reads image geometry from file headers without decoding
// pixel data. Any failure — unsupported format, truncated file, permission
// error, non-image content — is reported as absence, never as an error:
// a file that cannot be probed is simply not a usable image.
package probe

import (
	"image"

	"github.com/spf13/afero"

	// Header decoders for the supported extensions. jpeg/png ship with
	// the standard library; bmp/webp come from golang.org/x/image.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Dimensions is the (width, height) pair of a successfully probed image.
// Both values are positive.
type Dimensions struct {
	Width  int
	Height int
}

// MinSide returns the smaller of width and height — the quantity compared
// against size thresholds (center-crop-oriented filtering).
func (d Dimensions) MinSide() int {
	if d.Height < d.Width {
		return d.Height
	}
	return d.Width
}

// Size opens path on fsys and reads its image header in one step.
// The second return value is false when the file is not a readable image;
// no partial result is ever returned.
func Size(fsys afero.Fs, path string) (Dimensions, bool) {
	f, err := fsys.Open(path)
	if err != nil {
		return Dimensions{}, false
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil || cfg.Width <= 0 || cfg.Height <= 0 {
		return Dimensions{}, false
	}
	return Dimensions{Width: cfg.Width, Height: cfg.Height}, true
}
