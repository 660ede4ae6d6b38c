package graphics

import (
	"fmt"
	"testing"
)

// testRenderer builds a renderer with a stubbed texture loader and a
// known surface size, without touching the GPU.
func testRenderer(load func(string) (*TextureAsset, error)) *Renderer {
	return &Renderer{
		width:        800,
		height:       600,
		depthCounter: depthSeed,
		textures:     newTextureCache(load),
	}
}

func stubLoader(string) (*TextureAsset, error) {
	return &TextureAsset{id: 1}, nil
}

func TestNextDepthMonotonic(t *testing.T) {
	r := testRenderer(stubLoader)

	seen := make(map[float32]bool)
	prev := float32(-1)
	for i := 0; i < 100; i++ {
		d := r.nextDepth()
		if d <= prev {
			t.Fatalf("depth %v at step %d not greater than previous %v", d, i, prev)
		}
		if seen[d] {
			t.Fatalf("depth %v repeated at step %d", d, i)
		}
		seen[d] = true
		prev = d
	}
}

func TestSpawnQuadAtCenter(t *testing.T) {
	r := testRenderer(stubLoader)

	if err := r.spawnQuadAt(400, 300); err != nil {
		t.Fatalf("spawnQuadAt: %v", err)
	}
	if len(r.texturedModels) != 1 {
		t.Fatalf("%d textured models after spawn, want 1", len(r.texturedModels))
	}

	m := r.texturedModels[0]
	var cx, cy float32
	for _, v := range m.vertices {
		cx += v.Pos.X()
		cy += v.Pos.Y()
	}
	cx /= float32(len(m.vertices))
	cy /= float32(len(m.vertices))

	if !almostEqual(cx, 0) || !almostEqual(cy, 0) {
		t.Errorf("surface-center spawn has world center (%v, %v), want (0, 0)", cx, cy)
	}
	if m.Texture() == nil {
		t.Errorf("spawned quad has no texture")
	}
}

func TestSpawnQuadAtTopLeft(t *testing.T) {
	r := testRenderer(stubLoader)

	if err := r.spawnQuadAt(0, 0); err != nil {
		t.Fatalf("spawnQuadAt: %v", err)
	}

	m := r.texturedModels[0]
	var cx, cy float32
	for _, v := range m.vertices {
		cx += v.Pos.X()
		cy += v.Pos.Y()
	}
	cx /= float32(len(m.vertices))
	cy /= float32(len(m.vertices))

	aspect := float32(800) / float32(600)
	if !almostEqual(cx, -projectionHalfHeight*aspect) || !almostEqual(cy, projectionHalfHeight) {
		t.Errorf("top-left spawn has world center (%v, %v), want (%v, %v)",
			cx, cy, -projectionHalfHeight*aspect, projectionHalfHeight)
	}
}

func TestSpawnedQuadsGetDistinctDepths(t *testing.T) {
	r := testRenderer(stubLoader)

	for i := 0; i < 10; i++ {
		if err := r.spawnQuadAt(float32(i*10), float32(i*10)); err != nil {
			t.Fatalf("spawn %d: %v", i, err)
		}
	}

	seen := make(map[float32]bool)
	for i, m := range r.texturedModels {
		z := m.vertices[0].Pos.Z()
		if seen[z] {
			t.Errorf("model %d reuses depth %v", i, z)
		}
		seen[z] = true
	}
}

func TestSpawnSkippedOnTextureFailure(t *testing.T) {
	r := testRenderer(func(string) (*TextureAsset, error) {
		return nil, fmt.Errorf("no such asset")
	})

	before := r.depthCounter
	if err := r.spawnQuadAt(10, 10); err == nil {
		t.Fatalf("expected spawn failure")
	}
	if len(r.texturedModels) != 0 {
		t.Errorf("failed spawn still appended %d models", len(r.texturedModels))
	}
	if r.depthCounter != before {
		t.Errorf("failed spawn advanced the depth counter")
	}
}

func TestNoteSizeResizeIdempotence(t *testing.T) {
	r := &Renderer{width: invalidExtent, height: invalidExtent}

	// First measurement always counts as a change.
	if !r.noteSize(800, 600) {
		t.Fatalf("first measurement reported no change")
	}
	if !r.needsProjectionRebuild {
		t.Fatalf("rebuild flag not set after size change")
	}

	// Projection rebuilt; flag cleared.
	r.needsProjectionRebuild = false

	if r.noteSize(800, 600) {
		t.Errorf("unchanged size reported as change")
	}
	if r.needsProjectionRebuild {
		t.Errorf("rebuild flag set without a size change")
	}

	if !r.noteSize(1024, 768) {
		t.Errorf("resize not reported")
	}
	if !r.needsProjectionRebuild {
		t.Errorf("rebuild flag not set after resize")
	}
}

func TestBackgroundGoesToSolidList(t *testing.T) {
	r := testRenderer(stubLoader)

	r.createBackground()
	if err := r.createDemoModel(); err != nil {
		t.Fatalf("createDemoModel: %v", err)
	}

	if len(r.solidModels) != 1 {
		t.Fatalf("%d solid models, want 1", len(r.solidModels))
	}
	if r.solidModels[0].Texture() != nil {
		t.Errorf("background model has a texture")
	}
	if len(r.texturedModels) != 1 {
		t.Fatalf("%d textured models, want 1", len(r.texturedModels))
	}
	if r.texturedModels[0].Texture() == nil {
		t.Errorf("demo model has no texture")
	}
}
