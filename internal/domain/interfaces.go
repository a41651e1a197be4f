package domain

import "context"

// ConfigStore owns launcher.json and the project's package.json.
type ConfigStore interface {
	EnsureConfig() (created bool, err error)
	LoadConfig() (LauncherConfig, error)
	AppName() (string, error)
}

// DependencyProvider checks, installs and removes project packages through
// whatever package manager the project uses.
type DependencyProvider interface {
	IsInstalled(ctx context.Context, pkg string) bool
	Install(ctx context.Context, pkg string) error
	Uninstall(ctx context.Context, pkg string) error
}

// MipmapGenerator writes the Android density-bucketed launcher icons.
type MipmapGenerator interface {
	Generate(ctx context.Context, source, outputRoot string, rounded bool) ([]Output, error)
}

// AppIconGenerator writes an iOS AppIcon set and its Contents.json.
type AppIconGenerator interface {
	Generate(ctx context.Context, source, outputFolder string) (AppIconContents, []Output, error)
}

// ManifestPatcher points the Android manifest at a mipmap icon.
type ManifestPatcher interface {
	UpdateIcon(path, iconName string) error
}
