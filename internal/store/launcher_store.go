package store

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"rnlauncher/internal/domain"
)

const (
	// ConfigFileName is the launcher config at the project root.
	ConfigFileName = "launcher.json"
	// PackageFileName is the npm manifest at the project root.
	PackageFileName = "package.json"

	envPrefix = "LAUNCHER"
)

// ErrNoAppName is returned when package.json is missing or has no name.
var ErrNoAppName = errors.New("package.json has no name")

type packageJSON struct {
	Name string `json:"name"`
}

// LauncherStore reads and bootstraps the config files of one project.
type LauncherStore struct {
	root       string
	configPath string
}

// NewLauncherStore returns a store rooted at root. An empty configPath means
// <root>/launcher.json.
func NewLauncherStore(root, configPath string) *LauncherStore {
	if configPath == "" {
		configPath = filepath.Join(root, ConfigFileName)
	}
	return &LauncherStore{root: root, configPath: configPath}
}

// ConfigPath returns the launcher.json location.
func (s *LauncherStore) ConfigPath() string { return s.configPath }

// EnsureConfig writes the default config if none exists. An existing file is
// never touched, so user edits survive every run.
func (s *LauncherStore) EnsureConfig() (bool, error) {
	_, err := os.Stat(s.configPath)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return false, errors.Wrapf(err, "checking %s", s.configPath)
	}
	if err := WriteJSON(s.configPath, domain.DefaultLauncherConfig()); err != nil {
		return false, errors.Wrap(err, "writing default launcher config")
	}
	return true, nil
}

// LoadConfig reads launcher.json. LAUNCHER_IOS_ICON and LAUNCHER_ANDROID_ICON
// override the file. Relative icon paths are resolved against the project root.
func (s *LauncherStore) LoadConfig() (domain.LauncherConfig, error) {
	v := viper.New()
	v.SetConfigFile(s.configPath)
	v.SetConfigType("json")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return domain.LauncherConfig{}, errors.Wrapf(err, "reading %s", s.configPath)
	}

	return domain.LauncherConfig{
		IOS:     domain.PlatformIcon{Icon: s.resolve(v.GetString("ios.icon"))},
		Android: domain.PlatformIcon{Icon: s.resolve(v.GetString("android.icon"))},
	}, nil
}

// AppName returns the "name" field of package.json.
func (s *LauncherStore) AppName() (string, error) {
	var pkg packageJSON
	if err := readJSON(filepath.Join(s.root, PackageFileName), &pkg); err != nil {
		return "", err
	}
	if pkg.Name == "" {
		return "", ErrNoAppName
	}
	return pkg.Name, nil
}

func (s *LauncherStore) resolve(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(s.root, p)
}

// Compile-time assertion that LauncherStore implements domain.ConfigStore.
var _ domain.ConfigStore = (*LauncherStore)(nil)
