package assets

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writeTestPNG(t *testing.T, path string, w, h int) {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 0, A: 255})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
}

func TestLoadImage(t *testing.T) {
	root := t.TempDir()
	writeTestPNG(t, filepath.Join(root, "tex.png"), 8, 4)

	loader := NewLoader(root)
	rgba, w, h, err := loader.LoadImage("tex.png")
	if err != nil {
		t.Fatalf("LoadImage: %v", err)
	}
	if w != 8 || h != 4 {
		t.Errorf("dimensions (%d, %d), want (8, 4)", w, h)
	}
	if len(rgba.Pix) != 8*4*4 {
		t.Errorf("pixel buffer has %d bytes, want %d", len(rgba.Pix), 8*4*4)
	}

	r, g, _, a := rgba.At(3, 2).RGBA()
	if r>>8 != 3 || g>>8 != 2 || a>>8 != 255 {
		t.Errorf("pixel (3,2) decoded as r=%d g=%d a=%d", r>>8, g>>8, a>>8)
	}
}

func TestLoadImageSubdirectoryKey(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "textures"), 0o755); err != nil {
		t.Fatal(err)
	}
	writeTestPNG(t, filepath.Join(root, "textures", "tex.png"), 2, 2)

	loader := NewLoader(root)
	if _, _, _, err := loader.LoadImage(filepath.Join("textures", "tex.png")); err != nil {
		t.Fatalf("LoadImage with subdirectory key: %v", err)
	}
}

func TestLoadImageMissingFile(t *testing.T) {
	loader := NewLoader(t.TempDir())
	if _, _, _, err := loader.LoadImage("nope.png"); err == nil {
		t.Fatalf("expected error for missing asset")
	}
}

func TestLoadImageBadData(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "junk.png"), []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}

	loader := NewLoader(root)
	if _, _, _, err := loader.LoadImage("junk.png"); err == nil {
		t.Fatalf("expected decode error")
	}
}
