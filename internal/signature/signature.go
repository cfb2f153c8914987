// Package signature validates and normalizes the freehand signature raster
// captured by the drawing surface. The surface delivers RGBA PNG bytes; the
// document composer needs an opaque white-background image so the artifact
// renders identically regardless of the originating alpha mode.
package signature

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
)

// ErrMissingSignature signals an absent or undecodable signature buffer.
var ErrMissingSignature = errors.New("missing signature")

// Decode parses PNG bytes into an image. A nil or empty buffer is a missing
// signature, not a render problem.
func Decode(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, ErrMissingSignature
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingSignature, err)
	}
	return img, nil
}

// IsBlank reports whether every pixel equals the background. Fully
// transparent pixels and opaque white both count as background, so an
// untouched canvas is blank in either alpha mode.
func IsBlank(img image.Image) bool {
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			if a == 0 {
				continue
			}
			if r != 0xffff || g != 0xffff || b != 0xffff {
				return false
			}
		}
	}
	return true
}

// Normalize composites the image onto an opaque white background and returns
// PNG bytes. Already-opaque images pass through the same draw path, which
// keeps the output byte-stable for identical inputs.
func Normalize(img image.Image) ([]byte, error) {
	bounds := img.Bounds()
	flat := image.NewRGBA(bounds)
	draw.Draw(flat, bounds, image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(flat, bounds, img, bounds.Min, draw.Over)

	var buf bytes.Buffer
	if err := png.Encode(&buf, flat); err != nil {
		return nil, fmt.Errorf("encode normalized signature: %w", err)
	}
	return buf.Bytes(), nil
}
