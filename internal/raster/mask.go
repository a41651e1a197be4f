package raster

import (
	"fmt"
	"image"
	"strings"

	"github.com/pkg/errors"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
)

// CornerRatio is the corner radius of rounded icons relative to their size.
const CornerRatio = 0.1

// maskSupersample is how many times larger than the icon the mask is
// rasterized before being scaled down.
const maskSupersample = 4

// roundedRectSVG renders an opaque rounded rectangle covering a size×size canvas.
func roundedRectSVG(size int) string {
	r := float64(size) * CornerRatio
	return fmt.Sprintf(
		`<svg width="%d" height="%d" viewBox="0 0 %d %d">`+
			`<rect x="0" y="0" width="%d" height="%d" rx="%g" ry="%g" fill="#000000"/></svg>`,
		size, size, size, size, size, size, r, r,
	)
}

// RoundedMask rasterizes a size×size rounded-rectangle alpha mask. The
// rectangle is drawn at maskSupersample times the size and scaled down
// bilinearly, which smooths the corner arcs of small icons.
func RoundedMask(size int) (*image.RGBA, error) {
	big := size * maskSupersample
	icon, err := oksvg.ReadIconStream(strings.NewReader(roundedRectSVG(big)))
	if err != nil {
		return nil, errors.Wrap(err, "parsing mask svg")
	}
	icon.SetTarget(0, 0, float64(big), float64(big))

	hi := image.NewRGBA(image.Rect(0, 0, big, big))
	dasher := rasterx.NewDasher(big, big, rasterx.NewScannerGV(big, big, hi, hi.Bounds()))
	icon.Draw(dasher, 1.0)

	mask := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.BiLinear.Scale(mask, mask.Rect, hi, hi.Bounds(), draw.Src, nil)
	return mask, nil
}

// ApplyMask keeps src only where mask is present (the "dest-in" rule): each
// output pixel is src scaled by the mask's alpha.
func ApplyMask(src image.Image, mask image.Image) *image.NRGBA {
	b := src.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.DrawMask(out, out.Bounds(), src, b.Min, mask, mask.Bounds().Min, draw.Src)
	return out
}

// Round applies a rounded-corner mask matching src's width.
func Round(src image.Image) (*image.NRGBA, error) {
	mask, err := RoundedMask(src.Bounds().Dx())
	if err != nil {
		return nil, err
	}
	return ApplyMask(src, mask), nil
}
