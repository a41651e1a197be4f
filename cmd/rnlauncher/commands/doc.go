// Package commands defines the rnlauncher CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - (none), generate  Run the whole pipeline
//   - init              Create launcher.json with defaults if it is missing
//   - android           Write regular and rounded mipmap icons
//   - ios               Write the AppIcon set and Contents.json
//   - manifest [name]   Point AndroidManifest.xml at a mipmap icon
//
// # Implementation
//
// The root command builds the logger and the app (stores, services, package
// manager) before any subcommand runs, so handlers share one app context.
// Failures inside steps are logged and do not change the exit code unless
// --strict is set; a launcher.json that cannot be created or read always does.
package commands
