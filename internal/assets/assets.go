package assets

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Loader resolves opaque asset keys to decoded images. Keys are paths
// relative to the asset root; the format is picked by the registered
// decoders (png, jpeg, bmp, tiff, webp).
type Loader struct {
	root string
}

func NewLoader(root string) *Loader {
	return &Loader{root: root}
}

// LoadImage decodes the asset into straight RGBA pixel data and reports
// its dimensions.
func (l *Loader) LoadImage(key string) (*image.RGBA, int, int, error) {
	file, err := os.Open(filepath.Join(l.root, key))
	if err != nil {
		return nil, 0, 0, fmt.Errorf("failed to open asset: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("failed to decode image: %w", err)
	}

	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)

	size := rgba.Rect.Size()
	return rgba, size.X, size.Y, nil
}
