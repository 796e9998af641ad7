package assets

import (
	"fmt"
	"image"
	"image/png"
	"io"
)

// DecodePNG is the loader decoder for desktop image resources.
// The result is an image.Image.
func DecodePNG(r io.Reader) (any, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("png: %w", err)
	}
	return img, nil
}

// ImageSize returns the pixel size of a decoded image.
func ImageSize(img image.Image) (w, h int) {
	b := img.Bounds()
	return b.Dx(), b.Dy()
}
