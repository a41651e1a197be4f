// Package app wires the launcher pipeline and runs it.
//
// Run executes the steps strictly in order: bootstrap launcher.json, install
// declared packages, Android icons (regular then rounded), iOS icons, manifest
// patch (regular then round name), and finally package removal. Removal starts
// only once every generation step has returned.
//
// Only a config bootstrap failure aborts a run. Every other failure is logged
// and recorded in the Report, and the next step still runs.
package app
