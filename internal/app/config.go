package app

import (
	"github.com/sirupsen/logrus"

	"rnlauncher/internal/domain"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Root       string   // project root, e.g. the directory holding package.json
	ConfigPath string   // launcher.json; defaults to <Root>/launcher.json
	Packages   []string // project packages installed around a run; nil means deps.DefaultPackages
	SkipDeps   bool     // leave project packages alone

	Provider domain.DependencyProvider // optional; defaults to the yarn/npm CLI
	Log      logrus.FieldLogger        // optional; defaults to logrus.StandardLogger()
}
