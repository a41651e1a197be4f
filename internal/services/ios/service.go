package ios

import (
	"context"
	"path/filepath"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"rnlauncher/internal/domain"
	"rnlauncher/internal/fingerprint"
	"rnlauncher/internal/raster"
	"rnlauncher/internal/store"
)

// ContentsFileName is the descriptor written next to the icons.
const ContentsFileName = "Contents.json"

// FolderPath returns the AppIcon set of appName inside the project root.
func FolderPath(root, appName string) string {
	return filepath.Join(root, "ios", appName, "Images.xcassets", "AppIcon.appiconset")
}

// Service renders iOS app icons.
type Service struct {
	sizes []domain.AppIconSize
}

// New returns a service over the fixed AppIcon table.
func New() *Service { return &Service{sizes: domain.AppIconSizes} }

// Generate renders every table row from source into outputFolder, then writes
// Contents.json. Rows render concurrently; the first failure cancels the rest
// and no descriptor is written.
func (s *Service) Generate(ctx context.Context, source, outputFolder string) (domain.AppIconContents, []domain.Output, error) {
	if source == "" {
		return domain.AppIconContents{}, nil, errors.New("no ios icon configured")
	}
	src, err := raster.Load(source)
	if err != nil {
		return domain.AppIconContents{}, nil, err
	}

	contents := domain.NewAppIconContents()
	images := make([]domain.AppIconImage, len(s.sizes))
	outputs := make([]domain.Output, len(s.sizes))

	g, ctx := errgroup.WithContext(ctx)
	for i, size := range s.sizes {
		i, size := i, size
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			px := size.Pixels()
			b, err := raster.EncodePNG(raster.Square(src, px))
			if err != nil {
				return errors.Wrapf(err, "%gpt@%dx", size.Points, size.Scale)
			}
			path := filepath.Join(outputFolder, size.FileName())
			if err := store.WriteFile(path, b); err != nil {
				return err
			}
			images[i] = size.Image()
			outputs[i] = domain.Output{Path: path, Pixels: px, Fingerprint: fingerprint.Sum(b)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return domain.AppIconContents{}, nil, err
	}

	contents.Images = images
	if err := store.WriteJSON(filepath.Join(outputFolder, ContentsFileName), contents); err != nil {
		return domain.AppIconContents{}, nil, err
	}
	return contents, outputs, nil
}

// Compile-time assertion that Service implements domain.AppIconGenerator.
var _ domain.AppIconGenerator = (*Service)(nil)
