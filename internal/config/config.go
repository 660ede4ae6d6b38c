package config

import "sync"

// Window defaults
const (
	WinWidth  = 900
	WinHeight = 600
	WinTitle  = "quadpad"

	AssetRoot = "assets"
)

// RenderSettings holds runtime render configuration
type RenderSettings struct {
	mu           sync.RWMutex
	fpsLimit     int // 0 = uncapped
	vsync        bool
	clearColor   [4]float32
	spawnTexture string
}

var globalRenderSettings = &RenderSettings{
	fpsLimit:     0,
	vsync:        true,
	clearColor:   [4]float32{1, 1, 1, 0},
	spawnTexture: "android_robot.png",
}

// GetFPSLimit returns the frame rate cap, 0 meaning uncapped
func GetFPSLimit() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.fpsLimit
}

// SetFPSLimit sets the frame rate cap
func SetFPSLimit(limit int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	// Clamp to reasonable values
	if limit < 0 {
		limit = 0
	}
	if limit > 1000 {
		limit = 1000
	}

	globalRenderSettings.fpsLimit = limit
}

// GetVSync reports whether presentation waits for vertical sync
func GetVSync() bool {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.vsync
}

// SetVSync toggles vertical sync for presentation
func SetVSync(on bool) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.vsync = on
}

// GetClearColor returns the RGBA clear color
func GetClearColor() [4]float32 {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.clearColor
}

// SetClearColor sets the RGBA clear color, clamped to [0, 1]
func SetClearColor(c [4]float32) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	for i := range c {
		if c[i] < 0 {
			c[i] = 0
		}
		if c[i] > 1 {
			c[i] = 1
		}
	}
	globalRenderSettings.clearColor = c
}

// GetSpawnTexture returns the asset key for input-spawned quads
func GetSpawnTexture() string {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.spawnTexture
}

// SetSpawnTexture sets the asset key for input-spawned quads
func SetSpawnTexture(key string) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	if key == "" {
		return
	}
	globalRenderSettings.spawnTexture = key
}
