// Package ios writes an Xcode AppIcon.appiconset: one PNG per pixel size and a
// Contents.json listing every (size, scale, idiom) variant.
//
// Files are named by pixel size, so rows that resolve to the same size (20pt@2x
// and 40pt@1x are both 40.png) share a file; the last write wins and every row
// still references it in Contents.json.
package ios
