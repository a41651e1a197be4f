// Package manifest applies androidxml.PatchIcon to an AndroidManifest.xml on
// disk: read, parse, patch, serialize, overwrite.
package manifest
