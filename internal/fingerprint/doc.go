// Package fingerprint computes short digests of generated assets for logging and
// reports.
//
// Digests are BLAKE2b-256 truncated to 10 bytes (20 hex chars); they identify
// file content, they are not a security boundary.
package fingerprint
