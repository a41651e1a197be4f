// Package store reads and writes the project files the launcher pipeline owns:
// launcher.json (created on first run, read afterwards) and package.json (read
// only, for the app name).
//
// Writes go through a temp file and rename so an interrupted run never leaves a
// half-written file behind.
package store
