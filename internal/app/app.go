package app

import (
	"context"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"rnlauncher/internal/deps"
	"rnlauncher/internal/domain"
	"rnlauncher/internal/services/ios"
	"rnlauncher/internal/services/manifest"
)

// App bundles the stores, services and settings of one project.
type App struct {
	Root     string
	Store    domain.ConfigStore
	Deps     *deps.Manager // nil when packages are left alone
	Packages []string

	Mipmaps  domain.MipmapGenerator
	AppIcons domain.AppIconGenerator
	Manifest domain.ManifestPatcher

	Log logrus.FieldLogger
}

// ResPath returns the Android res directory of the project.
func (a *App) ResPath() string {
	return filepath.Join(a.Root, "android", "app", "src", "main", "res")
}

// ManifestPath returns the project's AndroidManifest.xml.
func (a *App) ManifestPath() string { return manifest.Path(a.Root) }

// Run executes the whole pipeline. The returned error is non-nil only when
// launcher.json cannot be bootstrapped or read; step failures are in the
// Report.
func (a *App) Run(ctx context.Context) (Report, error) {
	var report Report

	created, cfg, err := a.Bootstrap()
	report.ConfigCreated = created
	if err != nil {
		return report, err
	}

	a.installDeps(ctx)

	report.add(a.Android(ctx, cfg, false))
	report.add(a.Android(ctx, cfg, true))
	report.add(a.IOS(ctx, cfg))
	report.add(a.PatchManifest(StepManifest, domain.LauncherIcon))
	report.add(a.PatchManifest(StepManifestRound, domain.LauncherIconRound))

	// Generation is over; removal must not be cut short by an interrupt.
	a.removeDeps(context.WithoutCancel(ctx))

	return report, nil
}

// Bootstrap creates launcher.json when missing, then loads it.
func (a *App) Bootstrap() (bool, domain.LauncherConfig, error) {
	created, err := a.Store.EnsureConfig()
	if err != nil {
		return false, domain.LauncherConfig{}, errors.Wrap(err, "bootstrapping launcher config")
	}
	if created {
		a.Log.Info("launcher.json file created successfully.")
	} else {
		a.Log.Debug("launcher.json file already exists. Skipping creation.")
	}

	cfg, err := a.Store.LoadConfig()
	if err != nil {
		return created, domain.LauncherConfig{}, errors.Wrap(err, "loading launcher config")
	}
	return created, cfg, nil
}

// Android renders the regular or rounded mipmap icons.
func (a *App) Android(ctx context.Context, cfg domain.LauncherConfig, rounded bool) StepResult {
	step, kind := StepAndroid, "Regular"
	if rounded {
		step, kind = StepAndroidRound, "Rounded"
	}
	log := a.Log.WithField("step", step)

	outputs, err := a.Mipmaps.Generate(ctx, cfg.Android.Icon, a.ResPath(), rounded)
	if err != nil {
		log.WithError(err).Errorf("Error generating %s mipmap icons", kind)
		return StepResult{Step: step, Err: err}
	}
	logOutputs(log, outputs)
	log.Infof("%s mipmap icons generated successfully.", kind)
	return StepResult{Step: step, Outputs: outputs}
}

// IOS renders the AppIcon set of the app named in package.json.
func (a *App) IOS(ctx context.Context, cfg domain.LauncherConfig) StepResult {
	log := a.Log.WithField("step", StepIOS)

	name, err := a.Store.AppName()
	if err != nil {
		log.WithError(err).Error("Error generating iOS icons")
		return StepResult{Step: StepIOS, Err: err}
	}

	_, outputs, err := a.AppIcons.Generate(ctx, cfg.IOS.Icon, ios.FolderPath(a.Root, name))
	if err != nil {
		log.WithError(err).Error("Error generating iOS icons")
		return StepResult{Step: StepIOS, Err: err}
	}
	logOutputs(log, outputs)
	log.Info("iOS icons generated successfully.")
	return StepResult{Step: StepIOS, Outputs: outputs}
}

// PatchManifest points the Android manifest at iconName.
func (a *App) PatchManifest(step, iconName string) StepResult {
	log := a.Log.WithFields(logrus.Fields{"step": step, "icon": iconName})

	if err := a.Manifest.UpdateIcon(a.ManifestPath(), iconName); err != nil {
		log.WithError(err).Error("Error updating AndroidManifest.xml")
		return StepResult{Step: step, Err: err}
	}
	log.Info("AndroidManifest.xml updated successfully.")
	return StepResult{Step: step}
}

func (a *App) installDeps(ctx context.Context) {
	if a.Deps == nil {
		return
	}
	a.Deps.EnsureInstalled(ctx, a.Packages...)
}

func (a *App) removeDeps(ctx context.Context) {
	if a.Deps == nil {
		return
	}
	a.Deps.EnsureUninstalled(ctx, deps.Reversed(a.Packages)...)
}

func logOutputs(log logrus.FieldLogger, outputs []domain.Output) {
	for _, o := range outputs {
		log.WithFields(logrus.Fields{
			"path":        o.Path,
			"px":          o.Pixels,
			"fingerprint": o.Fingerprint,
		}).Debug("wrote icon")
	}
}
