package domain

import (
	"fmt"
	"math"
	"strconv"
)

const (
	// LauncherIcon is the file and resource name of the regular Android icon.
	LauncherIcon = "ic_launcher"
	// LauncherIconRound is the file and resource name of the rounded Android icon.
	LauncherIconRound = "ic_launcher_round"
)

// MipmapSize is one Android density bucket.
type MipmapSize struct {
	Dir    string
	Pixels int
}

// MipmapSizes lists the density buckets written for every run.
var MipmapSizes = []MipmapSize{
	{Dir: "mipmap-mdpi", Pixels: 48},
	{Dir: "mipmap-hdpi", Pixels: 72},
	{Dir: "mipmap-xhdpi", Pixels: 96},
	{Dir: "mipmap-xxhdpi", Pixels: 144},
	{Dir: "mipmap-xxxhdpi", Pixels: 192},
}

// MipmapFileName returns the PNG name for a regular or rounded icon.
func MipmapFileName(rounded bool) string {
	if rounded {
		return LauncherIconRound + ".png"
	}
	return LauncherIcon + ".png"
}

// AppIconSize is one row of the iOS AppIcon table. Points may be fractional
// (83.5 for the iPad Pro icon).
type AppIconSize struct {
	Points float64
	Scale  int
	Idiom  string
}

// AppIconSizes lists every iOS icon variant written for every run.
var AppIconSizes = []AppIconSize{
	{Points: 20, Scale: 2, Idiom: "iphone"},
	{Points: 20, Scale: 3, Idiom: "iphone"},
	{Points: 29, Scale: 2, Idiom: "iphone"},
	{Points: 29, Scale: 1, Idiom: "iphone"},
	{Points: 29, Scale: 3, Idiom: "iphone"},
	{Points: 40, Scale: 2, Idiom: "iphone"},
	{Points: 40, Scale: 3, Idiom: "iphone"},
	{Points: 57, Scale: 1, Idiom: "iphone"},
	{Points: 57, Scale: 2, Idiom: "iphone"},
	{Points: 60, Scale: 2, Idiom: "iphone"},
	{Points: 60, Scale: 3, Idiom: "iphone"},
	{Points: 1024, Scale: 1, Idiom: "iphone"},
	{Points: 20, Scale: 1, Idiom: "ipad"},
	{Points: 20, Scale: 2, Idiom: "ipad"},
	{Points: 29, Scale: 1, Idiom: "ipad"},
	{Points: 29, Scale: 2, Idiom: "ipad"},
	{Points: 40, Scale: 1, Idiom: "ipad"},
	{Points: 40, Scale: 2, Idiom: "ipad"},
	{Points: 50, Scale: 1, Idiom: "ipad"},
	{Points: 50, Scale: 2, Idiom: "ipad"},
	{Points: 72, Scale: 1, Idiom: "ipad"},
	{Points: 72, Scale: 2, Idiom: "ipad"},
	{Points: 76, Scale: 2, Idiom: "ipad"},
	{Points: 76, Scale: 1, Idiom: "ipad"},
	{Points: 83.5, Scale: 2, Idiom: "ipad"},
}

// Pixels is ceil(points × scale).
func (s AppIconSize) Pixels() int {
	return int(math.Ceil(s.Points * float64(s.Scale)))
}

// FileName is the PNG written for this row. Rows with equal pixel sizes share it.
func (s AppIconSize) FileName() string {
	return strconv.Itoa(s.Pixels()) + ".png"
}

// Image builds the Contents.json record for this row.
func (s AppIconSize) Image() AppIconImage {
	px := s.Pixels()
	return AppIconImage{
		Size:     fmt.Sprintf("%dx%d", px, px),
		Idiom:    s.Idiom,
		Filename: s.FileName(),
		Scale:    fmt.Sprintf("%dx", s.Scale),
	}
}
