package ios_test

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rnlauncher/internal/domain"
	"rnlauncher/internal/raster"
	"rnlauncher/internal/services/ios"
)

func writeLogo(t *testing.T, dir string) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 128, 128))
	for y := 0; y < 128; y++ {
		for x := 0; x < 128; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x * 2), G: 40, B: uint8(y * 2), A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	path := filepath.Join(dir, "logo.png")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

func TestFolderPath(t *testing.T) {
	assert.Equal(t,
		filepath.Join("/proj", "ios", "DemoApp", "Images.xcassets", "AppIcon.appiconset"),
		ios.FolderPath("/proj", "DemoApp"))
}

func TestGenerate_WritesEveryVariantAndContents(t *testing.T) {
	dir := t.TempDir()
	logo := writeLogo(t, dir)
	out := ios.FolderPath(dir, "DemoApp")

	contents, outputs, err := ios.New().Generate(context.Background(), logo, out)
	require.NoError(t, err)
	require.Len(t, contents.Images, len(domain.AppIconSizes))
	require.Len(t, outputs, len(domain.AppIconSizes))

	// One PNG per distinct pixel size plus Contents.json.
	distinct := map[string]int{}
	for _, s := range domain.AppIconSizes {
		distinct[s.FileName()] = s.Pixels()
	}
	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	assert.Len(t, entries, len(distinct)+1)

	for name, px := range distinct {
		img, err := raster.Load(filepath.Join(out, name))
		require.NoError(t, err, name)
		assert.Equal(t, image.Rect(0, 0, px, px), img.Bounds(), name)
	}

	raw, err := os.ReadFile(filepath.Join(out, "Contents.json"))
	require.NoError(t, err)
	var onDisk domain.AppIconContents
	require.NoError(t, json.Unmarshal(raw, &onDisk))
	assert.Equal(t, contents, onDisk)
	assert.Equal(t, 1, onDisk.Info.Version)
	assert.Equal(t, "xcode", onDisk.Info.Author)
	assert.Contains(t, string(raw), "\n  \"images\": [\n")
}

func TestGenerate_PixelNaming(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "AppIcon.appiconset")

	contents, _, err := ios.New().Generate(context.Background(), writeLogo(t, dir), out)
	require.NoError(t, err)

	assert.Contains(t, contents.Images, domain.AppIconImage{Size: "60x60", Idiom: "iphone", Filename: "60.png", Scale: "3x"})
	assert.Contains(t, contents.Images, domain.AppIconImage{Size: "167x167", Idiom: "ipad", Filename: "167.png", Scale: "2x"})
	assert.FileExists(t, filepath.Join(out, "60.png"))
	assert.FileExists(t, filepath.Join(out, "167.png"))
	assert.FileExists(t, filepath.Join(out, "1024.png"))
}

func TestGenerate_ReplacesPriorContents(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "AppIcon.appiconset")
	require.NoError(t, os.MkdirAll(out, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(out, "Contents.json"), []byte(`{"images":[{"filename":"stale.png"}]}`), 0o644))

	_, _, err := ios.New().Generate(context.Background(), writeLogo(t, dir), out)
	require.NoError(t, err)

	raw, err := os.ReadFile(filepath.Join(out, "Contents.json"))
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "stale.png")
}

func TestGenerate_BadSourceWritesNothing(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "AppIcon.appiconset")

	_, _, err := ios.New().Generate(context.Background(), filepath.Join(dir, "missing.png"), out)
	require.Error(t, err)
	assert.NoFileExists(t, filepath.Join(out, "Contents.json"))
}
