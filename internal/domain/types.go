package domain

// DefaultIconPath is the source icon written into a fresh launcher.json.
const DefaultIconPath = "app/assets/icons/logo.png"

// PlatformIcon points at the source image for one platform.
type PlatformIcon struct {
	Icon string `json:"icon"`
}

// LauncherConfig is the launcher.json document at the project root.
type LauncherConfig struct {
	IOS     PlatformIcon `json:"ios"`
	Android PlatformIcon `json:"android"`
}

// DefaultLauncherConfig returns the mapping written when no config exists.
func DefaultLauncherConfig() LauncherConfig {
	return LauncherConfig{
		IOS:     PlatformIcon{Icon: DefaultIconPath},
		Android: PlatformIcon{Icon: DefaultIconPath},
	}
}

// Fingerprint is a short hex digest of a generated file.
type Fingerprint string

// Output describes one file written by a generator.
type Output struct {
	Path        string
	Pixels      int
	Fingerprint Fingerprint
}

// AppIconImage is one entry of an AppIcon.appiconset Contents.json.
type AppIconImage struct {
	Size     string `json:"size"`
	Idiom    string `json:"idiom"`
	Filename string `json:"filename"`
	Scale    string `json:"scale"`
}

// AppIconInfo is the fixed metadata block of Contents.json.
type AppIconInfo struct {
	Version int    `json:"version"`
	Author  string `json:"author"`
}

// AppIconContents is the Contents.json descriptor of an AppIcon set.
type AppIconContents struct {
	Images []AppIconImage `json:"images"`
	Info   AppIconInfo    `json:"info"`
}

// NewAppIconContents returns an empty descriptor with Xcode's metadata.
func NewAppIconContents() AppIconContents {
	return AppIconContents{
		Images: []AppIconImage{},
		Info:   AppIconInfo{Version: 1, Author: "xcode"},
	}
}
