package raster

import (
	"bytes"
	"image"
	"os"

	"github.com/disintegration/imaging"
	"github.com/h2non/filetype"
	"github.com/pkg/errors"
)

// ErrUnsupportedFormat is returned when the source is not a decodable image.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// decodable lists the formats imaging can decode.
var decodable = map[string]bool{
	"png":  true,
	"jpg":  true,
	"gif":  true,
	"bmp":  true,
	"tif":  true,
	"tiff": true,
}

// Load reads and decodes the image at path, honoring EXIF orientation.
func Load(path string) (image.Image, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading source image %s", path)
	}
	return Decode(b)
}

// Decode decodes an in-memory image after checking its magic bytes.
func Decode(b []byte) (image.Image, error) {
	kind, err := filetype.Match(b)
	if err != nil || !filetype.IsImage(b) || !decodable[kind.Extension] {
		return nil, errors.Wrapf(ErrUnsupportedFormat, "detected %q", kind.MIME.Value)
	}
	img, err := imaging.Decode(bytes.NewReader(b), imaging.AutoOrientation(true))
	if err != nil {
		return nil, errors.Wrap(err, "decoding source image")
	}
	return img, nil
}
