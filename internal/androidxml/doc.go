// Package androidxml reads, patches and re-serializes Android manifests.
//
// Documents are github.com/beevik/etree trees, so prefixed names such as
// "android:icon" and "xmlns:tools" stay exactly as written, along with
// attribute order and comments. Output carries a standalone XML declaration
// and two-space indentation.
//
// PatchIcon is the single transform the launcher applies to a parsed
// document; it never touches the filesystem.
package androidxml
