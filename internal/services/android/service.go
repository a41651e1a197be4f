package android

import (
	"context"
	"image"
	"path/filepath"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"rnlauncher/internal/domain"
	"rnlauncher/internal/fingerprint"
	"rnlauncher/internal/raster"
	"rnlauncher/internal/store"
)

// Service renders mipmap icons.
type Service struct {
	sizes []domain.MipmapSize
}

// New returns a service over the fixed density buckets.
func New() *Service { return &Service{sizes: domain.MipmapSizes} }

// Generate renders every density bucket from source into outputRoot. All
// buckets are rendered concurrently; the first failure cancels the rest and
// is returned. Outputs are in bucket order.
func (s *Service) Generate(ctx context.Context, source, outputRoot string, rounded bool) ([]domain.Output, error) {
	if source == "" {
		return nil, errors.New("no android icon configured")
	}
	src, err := raster.Load(source)
	if err != nil {
		return nil, err
	}

	outputs := make([]domain.Output, len(s.sizes))
	g, ctx := errgroup.WithContext(ctx)
	for i, size := range s.sizes {
		i, size := i, size
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			path := filepath.Join(outputRoot, size.Dir, domain.MipmapFileName(rounded))
			out, err := render(src, size.Pixels, rounded, path)
			if err != nil {
				return errors.Wrapf(err, "%s", size.Dir)
			}
			outputs[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outputs, nil
}

func render(src image.Image, px int, rounded bool, path string) (domain.Output, error) {
	var img image.Image = raster.Square(src, px)
	if rounded {
		r, err := raster.Round(img)
		if err != nil {
			return domain.Output{}, err
		}
		img = r
	}
	b, err := raster.EncodePNG(img)
	if err != nil {
		return domain.Output{}, err
	}
	if err := store.WriteFile(path, b); err != nil {
		return domain.Output{}, err
	}
	return domain.Output{Path: path, Pixels: px, Fingerprint: fingerprint.Sum(b)}, nil
}

// Compile-time assertion that Service implements domain.MipmapGenerator.
var _ domain.MipmapGenerator = (*Service)(nil)
