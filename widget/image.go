// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"gioui.org/outline/f32"
)

// Bitmap is the size of an encoded raster image. Only the image
// header is decoded.
type Bitmap struct {
	// Format is the name of the image format, such as "png".
	Format        string
	Width, Height int
	// Scale is the ratio of image pixels to layout units. If
	// Scale is zero, 1 is used.
	Scale float32
}

// DecodeBitmap decodes the header of a PNG, JPEG, GIF, BMP, TIFF or
// WebP image.
func DecodeBitmap(r io.Reader) (Bitmap, error) {
	cfg, format, err := image.DecodeConfig(r)
	if err != nil {
		return Bitmap{}, fmt.Errorf("decoding image: %w", err)
	}
	return Bitmap{Format: format, Width: cfg.Width, Height: cfg.Height}, nil
}

// LoadBitmap decodes the header of the image file at path.
func LoadBitmap(path string) (Bitmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return Bitmap{}, err
	}
	defer f.Close()
	b, err := DecodeBitmap(f)
	if err != nil {
		return Bitmap{}, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

// IntrinsicSize implements layout.ImageContent.
func (b Bitmap) IntrinsicSize() f32.Point {
	scale := b.Scale
	if scale == 0 {
		scale = 1
	}
	return f32.Point{X: float32(b.Width) / scale, Y: float32(b.Height) / scale}
}
