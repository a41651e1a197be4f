// Package android writes the launcher icons into an Android res directory.
//
// Every call renders all density buckets (mipmap-mdpi … mipmap-xxxhdpi) from a
// single decoded source; regular icons land in ic_launcher.png and rounded
// ones, cut with a rounded-rectangle mask, in ic_launcher_round.png.
package android
