// Package deps manages the project packages the pipeline declares around a run.
//
// CLI talks to yarn when `yarn --version` succeeds and to npm otherwise. Every
// check shells out, so results are best-effort and environment dependent.
// Manager wraps any domain.DependencyProvider with the install-before /
// uninstall-after policy and turns every failure into a log line.
package deps
