package manifest

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"rnlauncher/internal/androidxml"
	"rnlauncher/internal/domain"
	"rnlauncher/internal/store"
)

// Path returns the main AndroidManifest.xml of a React Native project.
func Path(root string) string {
	return filepath.Join(root, "android", "app", "src", "main", "AndroidManifest.xml")
}

// Service rewrites the launcher icon of an Android manifest.
type Service struct{}

// New returns a manifest service.
func New() *Service { return &Service{} }

// UpdateIcon sets application/@android:icon of the manifest at path to
// @mipmap/<iconName> and rewrites the whole file. Nothing is written on error.
func (s *Service) UpdateIcon(path, iconName string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "reading %s", path)
	}
	doc, err := androidxml.Parse(bytes.NewReader(raw))
	if err != nil {
		return errors.Wrapf(err, "parsing %s", path)
	}
	if _, err := androidxml.PatchIcon(doc, iconName); err != nil {
		return errors.Wrapf(err, "patching %s", path)
	}
	out, err := androidxml.Marshal(doc)
	if err != nil {
		return err
	}
	return store.WriteFile(path, out)
}

// Compile-time assertion that Service implements domain.ManifestPatcher.
var _ domain.ManifestPatcher = (*Service)(nil)
