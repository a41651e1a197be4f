package app

import (
	"github.com/sirupsen/logrus"

	"rnlauncher/internal/deps"
	"rnlauncher/internal/domain"
	"rnlauncher/internal/services/android"
	"rnlauncher/internal/services/ios"
	"rnlauncher/internal/services/manifest"
	"rnlauncher/internal/store"
)

// New constructs the dependency graph from cfg.
func New(cfg Config) *App {
	log := cfg.Log
	if log == nil {
		log = logrus.StandardLogger()
	}

	packages := cfg.Packages
	if packages == nil {
		packages = deps.DefaultPackages
	}

	var mgr *deps.Manager
	if !cfg.SkipDeps {
		provider := cfg.Provider
		if provider == nil {
			provider = deps.NewCLI(cfg.Root, nil)
		}
		mgr = deps.NewManager(provider, log)
	}

	return &App{
		Root:     cfg.Root,
		Store:    store.NewLauncherStore(cfg.Root, cfg.ConfigPath),
		Deps:     mgr,
		Packages: packages,
		Mipmaps:  android.New(),
		AppIcons: ios.New(),
		Manifest: manifest.New(),
		Log:      log,
	}
}

// Compile-time assertions for the default wiring.
var (
	_ domain.ConfigStore      = (*store.LauncherStore)(nil)
	_ domain.MipmapGenerator  = (*android.Service)(nil)
	_ domain.AppIconGenerator = (*ios.Service)(nil)
	_ domain.ManifestPatcher  = (*manifest.Service)(nil)
)
