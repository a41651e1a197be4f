// Package raster holds the image operations behind icon generation.
//
// Load sniffs and decodes a source image once, Square produces a cover-fit
// square of any size from it, RoundedMask and ApplyMask cut rounded corners
// out of a square, and EncodePNG turns the result into bytes. Everything here
// is pure and safe to call from concurrent goroutines on a shared source.
package raster
