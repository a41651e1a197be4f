package raster

import (
	"bytes"
	"image"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

// Square scales src to exactly px×px. Non-square sources are scaled to cover
// the square and center-cropped.
func Square(src image.Image, px int) *image.NRGBA {
	return imaging.Fill(src, px, px, imaging.Center, imaging.Lanczos)
}

// EncodePNG encodes img as PNG.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, errors.Wrap(err, "encoding png")
	}
	return buf.Bytes(), nil
}
