package graphics

import (
	"fmt"
	"log"
	"sync"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/paolovsrl/game-activity-opengl-test/internal/assets"
)

// TextureAsset is a GPU-resident 2D image. Assets are shared by pointer
// across every model that uses them; the cache is the owning registry
// and releases them at renderer teardown.
type TextureAsset struct {
	id     uint32
	width  int
	height int
	key    string
}

// ID returns the GL texture handle.
func (t *TextureAsset) ID() uint32 { return t.id }

// Size returns the pixel dimensions of the source image.
func (t *TextureAsset) Size() (int, int) { return t.width, t.height }

// Key returns the asset key the texture was loaded from.
func (t *TextureAsset) Key() string { return t.key }

// Destroy releases the GL texture. Safe to call more than once.
func (t *TextureAsset) Destroy() {
	if t.id != 0 {
		gl.DeleteTextures(1, &t.id)
		t.id = 0
	}
}

// loadTextureAsset decodes an image through the asset loader and uploads
// it to the GPU.
func loadTextureAsset(loader *assets.Loader, key string) (*TextureAsset, error) {
	rgba, w, h, err := loader.LoadImage(key)
	if err != nil {
		return nil, err
	}

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA,
		int32(w),
		int32(h),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(rgba.Pix),
	)

	gl.BindTexture(gl.TEXTURE_2D, 0)

	return &TextureAsset{id: tex, width: w, height: h, key: key}, nil
}

// textureCache deduplicates expensive texture loads by asset key.
// Repeated requests for the same key return the identical *TextureAsset,
// never a duplicate upload. The load function is called at most once per
// key; a failed load leaves the cache unmodified.
type textureCache struct {
	mu      sync.RWMutex
	entries map[string]*TextureAsset
	load    func(key string) (*TextureAsset, error)
}

func newTextureCache(load func(string) (*TextureAsset, error)) *textureCache {
	return &textureCache{
		entries: make(map[string]*TextureAsset),
		load:    load,
	}
}

// getOrLoad returns the cached texture for key, loading it on first use.
func (c *textureCache) getOrLoad(key string) (*TextureAsset, error) {
	c.mu.RLock()
	if tex, ok := c.entries[key]; ok {
		c.mu.RUnlock()
		return tex, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double check locking
	if tex, ok := c.entries[key]; ok {
		return tex, nil
	}

	log.Printf("Loading texture into cache: %s", key)
	tex, err := c.load(key)
	if err != nil {
		return nil, fmt.Errorf("load texture %q: %w", key, err)
	}

	c.entries[key] = tex
	return tex, nil
}

// destroyAll releases every cached texture.
func (c *textureCache) destroyAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, tex := range c.entries {
		tex.Destroy()
		delete(c.entries, key)
	}
}
